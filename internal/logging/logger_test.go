package logging

import (
	"bytes"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew_ConsoleDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(Options{Output: &buf})
	require.NoError(t, err)

	log.Debug("hidden")
	log.Warn("naam is long", zap.String("field", "Informatieobject.naam"))
	require.NoError(t, log.Sync())

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "WARN")
	assert.Contains(t, out, "naam is long")
	assert.Contains(t, out, "Informatieobject.naam")
}

func TestNew_VerboseEnablesDebug(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(Options{Verbose: true, Output: &buf})
	require.NoError(t, err)

	log.Debug("visible")
	assert.Contains(t, buf.String(), "visible")
}

func TestNew_LevelOverridesVerbose(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(Options{Verbose: true, Level: "error", Output: &buf})
	require.NoError(t, err)

	log.Warn("suppressed")
	assert.Empty(t, buf.String())
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(Options{JSON: true, Output: &buf})
	require.NoError(t, err)

	log.Info("validated", zap.String("file", "a.xml"))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "validated", entry["msg"])
	assert.Equal(t, "a.xml", entry["file"])
	assert.Equal(t, "info", entry["level"])
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New(Options{Level: "loud"})
	assert.Error(t, err)
}

func TestOptions_FromEnv(t *testing.T) {
	t.Setenv(EnvLevel, "warn")
	t.Setenv(EnvFormat, "JSON")

	opts := Options{}.FromEnv()
	assert.Equal(t, "warn", opts.Level)
	assert.True(t, opts.JSON)

	opts = Options{Level: "debug"}.FromEnv()
	assert.Equal(t, "debug", opts.Level, "explicit level wins")
}

func TestNewNop(t *testing.T) {
	assert.NotPanics(t, func() {
		NewNop().Warn("discarded")
	})
}
