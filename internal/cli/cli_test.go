package cli

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/guidodo/mdto/internal/config"
	"github.com/guidodo/mdto/internal/logging"
	"github.com/guidodo/mdto/internal/pronom"
	"github.com/guidodo/mdto/internal/tui"
)

const mdtoTestdata = "../../pkg/mdto/testdata"

func resetFlags() {
	rootFlags = rootFlagValues{configDir: "."}
	validateFlags = validateFlagValues{}
	fmtFlags = fmtFlagValues{}
	inspectFlags = inspectFlagValues{format: "yaml"}
	checksumFlags = checksumFlagValues{}
	pronomFlags = pronomFlagValues{}
	bestandFlags = bestandFlagValues{}
	newFlags = newFlagValues{beperking: "nvt"}
	configFlags = configFlagValues{}
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		config.EnvIdentificatieBron, config.EnvChecksumAlgorithm, config.EnvXSD, config.EnvLogLevel,
		logging.EnvFormat, pronom.EnvBackend,
	} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
	t.Setenv(tui.EnvNonInteractive, "1")
}

// execute runs mdto with args against an empty config directory.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	return executeIn(t, t.TempDir(), args...)
}

// executeIn runs mdto with args and --config configDir.
func executeIn(t *testing.T, configDir string, args ...string) (string, string, error) {
	t.Helper()
	resetFlags()
	clearEnv(t)

	fixed := time.Date(2024, 3, 2, 10, 15, 0, 0, time.UTC)
	now = func() time.Time { return fixed }
	t.Cleanup(func() { now = time.Now })

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetIn(strings.NewReader(""))
	rootCmd.SetArgs(append(args, "--config", configDir))
	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func copyTestdata(t *testing.T, dir, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(mdtoTestdata, name))
	require.NoError(t, err)
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

type fakeRunner struct {
	stdout []byte
	calls  [][]string
}

func (f *fakeRunner) Run(_ context.Context, name string, args ...string) ([]byte, []byte, error) {
	f.calls = append(f.calls, append([]string{name}, args...))
	return f.stdout, nil, nil
}

// fakeSiegfried makes every Identifier run a fake sf that prints report.
func fakeSiegfried(t *testing.T, report string) *fakeRunner {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("../pronom/testdata", report))
	require.NoError(t, err)

	runner := &fakeRunner{stdout: data}
	pronomOptions = []pronom.Option{
		pronom.WithRunner(runner),
		pronom.WithLookPath(func(file string) (string, error) {
			if file == "sf" {
				return "/usr/bin/sf", nil
			}
			return "", exec.ErrNotFound
		}),
	}
	t.Cleanup(func() { pronomOptions = nil })
	return runner
}
