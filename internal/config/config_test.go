package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guidodo/mdto/internal/pronom"
	"github.com/guidodo/mdto/pkg/mdto"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0644))
}

// clearEnv unsets the override variables for the duration of a test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{EnvIdentificatieBron, EnvChecksumAlgorithm, EnvXSD, EnvLogLevel, pronom.EnvBackend} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoad_AllFields(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `identificatie_bron: Gemeente Den Haag Zaaksysteem
pronom_backend: fido
checksum_algorithm: sha512
xsd: schemas/MDTO-XML1.0.1.xsd
log_level: debug
`)

	cfg, err := Load(dir)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "Gemeente Den Haag Zaaksysteem", cfg.IdentificatieBron)
	assert.Equal(t, "fido", cfg.PronomBackend)
	assert.Equal(t, "sha512", cfg.ChecksumAlgorithm)
	assert.Equal(t, "schemas/MDTO-XML1.0.1.xsd", cfg.XSD)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_FileNotFound(t *testing.T) {
	cfg, err := Load(t.TempDir())
	assert.True(t, errors.Is(err, ErrConfigNotFound), "expected ErrConfigNotFound, got: %v", err)
	assert.Nil(t, cfg)
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "{{invalid")

	cfg, err := Load(dir)
	assert.ErrorIs(t, err, mdto.ErrInvalidConfig)
	assert.Nil(t, cfg)
}

func TestLoad_EmptyFile(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "")

	cfg, err := Load(dir)
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, ProjectConfig{}, *cfg)
}

func TestResolve_DefaultsWithoutFile(t *testing.T) {
	clearEnv(t)

	cfg, err := Resolve(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, DefaultIdentificatieBron, cfg.Bron())
	assert.Empty(t, cfg.PronomBackend)
}

func TestResolve_EnvironmentOverridesFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	writeConfig(t, dir, "pronom_backend: fido\nchecksum_algorithm: sha1\n")

	t.Setenv(pronom.EnvBackend, "sf")
	t.Setenv(EnvChecksumAlgorithm, "sha256")

	cfg, err := Resolve(dir)
	require.NoError(t, err)
	assert.Equal(t, "sf", cfg.PronomBackend)
	assert.Equal(t, "sha256", cfg.ChecksumAlgorithm)
}

func TestResolve_LoadsDotEnv(t *testing.T) {
	clearEnv(t)
	t.Cleanup(func() { os.Unsetenv(EnvIdentificatieBron) })

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"),
		[]byte("MDTO_IDENTIFICATIE_BRON=Corsa (Geldermalsen)\n"), 0644))

	cfg, err := Resolve(dir)
	require.NoError(t, err)
	assert.Equal(t, "Corsa (Geldermalsen)", cfg.Bron())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     ProjectConfig
		wantErr bool
	}{
		{name: "empty", cfg: ProjectConfig{}},
		{name: "siegfried alias", cfg: ProjectConfig{PronomBackend: "siegfried"}},
		{name: "blake2b", cfg: ProjectConfig{ChecksumAlgorithm: "blake2b"}},
		{name: "unknown backend", cfg: ProjectConfig{PronomBackend: "droid"}, wantErr: true},
		{name: "unknown algorithm", cfg: ProjectConfig{ChecksumAlgorithm: "crc32"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, mdto.ErrInvalidConfig)
				assert.Equal(t, mdto.ExitConfigError, mdto.ExitCodeForError(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSave_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	cfg := &ProjectConfig{IdentificatieBron: "Zaaksysteem", ChecksumAlgorithm: "sha512"}
	require.NoError(t, cfg.Save(dir))

	loaded, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, *cfg, *loaded)
}

func TestBron_NilConfig(t *testing.T) {
	var cfg *ProjectConfig
	assert.Equal(t, DefaultIdentificatieBron, cfg.Bron())
}
