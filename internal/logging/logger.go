package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Environment variables read by FromEnv.
const (
	EnvFormat = "MDTO_LOG_FORMAT"
	EnvLevel  = "MDTO_LOG_LEVEL"
)

// Options configures New.
type Options struct {
	// Verbose lowers the level to debug.
	Verbose bool
	// Level, when set, overrides Verbose. One of debug, info, warn, error.
	Level string
	// JSON selects the JSON encoder instead of the console encoder.
	JSON bool
	// Output defaults to os.Stderr.
	Output io.Writer
}

// FromEnv fills Level and JSON from the environment, keeping values that
// are already set.
func (o Options) FromEnv() Options {
	if o.Level == "" {
		o.Level = os.Getenv(EnvLevel)
	}
	if !o.JSON {
		o.JSON = strings.EqualFold(os.Getenv(EnvFormat), "json")
	}
	return o
}

// New builds a logger. An unknown level is an error.
func New(opts Options) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	if opts.Verbose {
		level = zapcore.DebugLevel
	}
	if opts.Level != "" {
		parsed, err := zapcore.ParseLevel(opts.Level)
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", opts.Level, err)
		}
		level = parsed
	}

	out := opts.Output
	if out == nil {
		out = os.Stderr
	}

	var encoder zapcore.Encoder
	if opts.JSON {
		cfg := zap.NewProductionEncoderConfig()
		cfg.EncodeTime = zapcore.ISO8601TimeEncoder
		encoder = zapcore.NewJSONEncoder(cfg)
	} else {
		cfg := zap.NewDevelopmentEncoderConfig()
		cfg.TimeKey = ""
		cfg.CallerKey = ""
		cfg.EncodeLevel = zapcore.CapitalLevelEncoder
		encoder = zapcore.NewConsoleEncoder(cfg)
	}

	core := zapcore.NewCore(encoder, zapcore.Lock(zapcore.AddSync(out)), level)
	return zap.New(core), nil
}

// NewNop returns a logger that discards everything.
func NewNop() *zap.Logger {
	return zap.NewNop()
}
