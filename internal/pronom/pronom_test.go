package pronom

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/guidodo/mdto/internal/files/filesystem"
	"github.com/guidodo/mdto/pkg/mdto"
)

type call struct {
	name string
	args []string
}

type fakeRunner struct {
	stdout, stderr []byte
	err            error
	calls          []call
}

func (f *fakeRunner) Run(_ context.Context, name string, args ...string) ([]byte, []byte, error) {
	f.calls = append(f.calls, call{name: name, args: args})
	return f.stdout, f.stderr, f.err
}

func installed(programs ...string) LookPathFunc {
	return func(file string) (string, error) {
		for _, p := range programs {
			if p == file {
				return "/usr/bin/" + file, nil
			}
		}
		return "", exec.ErrNotFound
	}
}

func readFixture(t *testing.T, name string) []byte {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	return data
}

func sampleFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "0090101KapvergunningHooigracht.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.7\n"), 0644))
	return path
}

func TestParseBackend(t *testing.T) {
	tests := []struct {
		in   string
		want Backend
	}{
		{"", Auto},
		{"sf", Siegfried},
		{"siegfried", Siegfried},
		{"FIDO", Fido},
	}
	for _, tt := range tests {
		got, err := ParseBackend(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseBackend("droid")
	assert.ErrorIs(t, err, mdto.ErrInvalidConfig)
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name      string
		backend   Backend
		installed []string
		want      Backend
		wantErr   error
	}{
		{name: "auto prefers siegfried", installed: []string{"sf", "fido"}, want: Siegfried},
		{name: "auto falls back to fido", installed: []string{"fido"}, want: Fido},
		{name: "auto without programs", wantErr: mdto.ErrNoBackend},
		{name: "explicit fido", backend: Fido, installed: []string{"sf", "fido"}, want: Fido},
		{name: "explicit but missing", backend: Siegfried, installed: []string{"fido"}, wantErr: mdto.ErrNoBackend},
		{name: "unknown backend", backend: Backend("droid"), installed: []string{"sf"}, wantErr: mdto.ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id := New(tt.backend, WithLookPath(installed(tt.installed...)))
			got, err := id.Resolve()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIdentify_Siegfried(t *testing.T) {
	runner := &fakeRunner{stdout: readFixture(t, "sf_pdf.json")}
	id := New(Auto, WithRunner(runner), WithLookPath(installed("sf")))
	path := sampleFile(t)

	got, err := id.Identify(context.Background(), path)
	require.NoError(t, err)

	want := mdto.NewBegrip("Acrobat PDF/A - Portable Document Format",
		mdto.NewVerwijzing("PRONOM-register", nil), "fmt/354")
	assert.True(t, got.Equal(want), "got %s", got)

	require.Len(t, runner.calls, 1)
	assert.Equal(t, "sf", runner.calls[0].name)
	assert.Equal(t, []string{"--json", "--sym", path}, runner.calls[0].args)
}

func TestIdentify_Fido(t *testing.T) {
	runner := &fakeRunner{stdout: []byte("OK,Acrobat PDF/A - Portable Document Format,fmt/354,\n")}
	id := New(Fido, WithRunner(runner), WithLookPath(installed("fido")))
	path := sampleFile(t)

	got, err := id.Identify(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "fmt/354", got.Text("begripCode"))
	assert.Equal(t, "Acrobat PDF/A - Portable Document Format", got.Text("begripLabel"))

	require.Len(t, runner.calls, 1)
	assert.Equal(t, "fido", runner.calls[0].name)
	assert.Equal(t, []string{
		"-q", "-matchprintf", "OK,%(info.formatname)s,%(info.puid)s,\n", "-nomatchprintf", "FAIL", path,
	}, runner.calls[0].args)
}

func TestIdentify_ProgramFailure(t *testing.T) {
	boom := errors.New("exit status 1")
	id := New(Siegfried, WithRunner(&fakeRunner{err: boom}), WithLookPath(installed("sf")))

	_, err := id.Identify(context.Background(), sampleFile(t))
	assert.ErrorIs(t, err, boom)
}

func TestIdentify_MissingFile(t *testing.T) {
	runner := &fakeRunner{}
	id := New(Auto, WithRunner(runner), WithLookPath(installed("sf")))

	_, err := id.Identify(context.Background(), filepath.Join(t.TempDir(), "missing.pdf"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Empty(t, runner.calls)
}

func TestIdentify_Directory(t *testing.T) {
	id := New(Auto, WithRunner(&fakeRunner{}), WithLookPath(installed("sf")))
	_, err := id.Identify(context.Background(), t.TempDir())
	assert.Error(t, err)
}

func TestIdentify_WithStat(t *testing.T) {
	mfs := filesystem.NewMemoryFileSystem("/archief")
	mfs.AddFile("brief.pdf", "%PDF-1.7\n")
	runner := &fakeRunner{stdout: readFixture(t, "sf_pdf.json")}
	id := New(Siegfried, WithRunner(runner), WithLookPath(installed("sf")), WithStat(mfs.Stat))

	t.Run("file only in the provided filesystem", func(t *testing.T) {
		got, err := id.Identify(context.Background(), "/archief/brief.pdf")
		require.NoError(t, err)
		want := mdto.NewBegrip("Acrobat PDF/A - Portable Document Format",
			mdto.NewVerwijzing("PRONOM-register", nil), "fmt/354")
		assert.True(t, got.Equal(want), "got %s", got)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := id.Identify(context.Background(), "/archief/ontbreekt.pdf")
		assert.ErrorIs(t, err, fs.ErrNotExist)
	})

	t.Run("directory", func(t *testing.T) {
		_, err := id.Identify(context.Background(), "/archief")
		assert.Error(t, err)
	})

	assert.Len(t, runner.calls, 1)
}

func TestWithStat_NilKeepsDefault(t *testing.T) {
	id := New(Auto, WithStat(nil))
	assert.NotNil(t, id.stat)
}

func TestParseSiegfried(t *testing.T) {
	t.Run("unknown format", func(t *testing.T) {
		_, err := parseSiegfried(readFixture(t, "sf_unknown.json"), "blob.bin", zap.NewNop())
		assert.ErrorIs(t, err, mdto.ErrIdentification)
		assert.Equal(t, mdto.ExitFormatError, mdto.ExitCodeForError(err))
	})

	t.Run("empty file warns", func(t *testing.T) {
		core, logs := observer.New(zapcore.WarnLevel)
		_, err := parseSiegfried(readFixture(t, "sf_empty.json"), "leeg.txt", zap.New(core))
		assert.ErrorIs(t, err, mdto.ErrIdentification)
		assert.Equal(t, 1, logs.FilterMessage("File appears to be empty").Len())
	})

	t.Run("multiple matches select the first", func(t *testing.T) {
		core, logs := observer.New(zapcore.WarnLevel)
		got, err := parseSiegfried(readFixture(t, "sf_multiple.json"), "notitie.txt", zap.New(core))
		require.NoError(t, err)
		assert.Equal(t, "x-fmt/111", got.Text("begripCode"))
		assert.Equal(t, "Plain Text File", got.Text("begripLabel"))

		assert.Equal(t, 1, logs.FilterMessageSnippet("more than one PRONOM match").Len())
		warnings := logs.FilterMessage("siegfried reports a PRONOM warning").All()
		require.Len(t, warnings, 1)
		assert.Equal(t, "match on text only; extension mismatch", warnings[0].ContextMap()["warning"])
	})

	t.Run("malformed json", func(t *testing.T) {
		_, err := parseSiegfried([]byte("{"), "x", zap.NewNop())
		assert.Error(t, err)
	})

	t.Run("no files", func(t *testing.T) {
		_, err := parseSiegfried([]byte(`{"files":[]}`), "x", zap.NewNop())
		assert.ErrorIs(t, err, mdto.ErrIdentification)
	})
}

func TestParseFido(t *testing.T) {
	t.Run("no match", func(t *testing.T) {
		_, err := parseFido([]byte("FAIL"), nil, "x", zap.NewNop())
		assert.ErrorIs(t, err, mdto.ErrIdentification)
	})

	t.Run("format name with comma", func(t *testing.T) {
		got, err := parseFido([]byte("OK,Microsoft Word, 97-2003,fmt/40,\n"), nil, "x", zap.NewNop())
		require.NoError(t, err)
		assert.Equal(t, "Microsoft Word, 97-2003", got.Text("begripLabel"))
		assert.Equal(t, "fmt/40", got.Text("begripCode"))
	})

	t.Run("multiple matches and empty file", func(t *testing.T) {
		core, logs := observer.New(zapcore.WarnLevel)
		out := "OK,Plain Text File,x-fmt/111,\nOK,Markdown,fmt/1217,\n"
		got, err := parseFido([]byte(out), []byte("WARNING: (EMPTY) file"), "x", zap.New(core))
		require.NoError(t, err)
		assert.Equal(t, "x-fmt/111", got.Text("begripCode"))
		assert.Equal(t, 2, logs.Len())
	})

	t.Run("truncated line", func(t *testing.T) {
		_, err := parseFido([]byte("OK,fmt/40"), nil, "x", zap.NewNop())
		assert.ErrorIs(t, err, mdto.ErrIdentification)
	})
}
