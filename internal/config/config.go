package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/guidodo/mdto/internal/checksum"
	"github.com/guidodo/mdto/internal/pronom"
	"github.com/guidodo/mdto/pkg/mdto"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// Environment variables that override file values.
const (
	EnvIdentificatieBron = "MDTO_IDENTIFICATIE_BRON"
	EnvChecksumAlgorithm = "MDTO_CHECKSUM_ALGORITHM"
	EnvXSD               = "MDTO_XSD"
	EnvLogLevel          = "MDTO_LOG_LEVEL"
)

// DefaultIdentificatieBron is used for generated identifiers when no
// source system is configured.
const DefaultIdentificatieBron = "mdto"

type ProjectConfig struct {
	// IdentificatieBron names the source system of generated identifiers.
	IdentificatieBron string `yaml:"identificatie_bron,omitempty"`
	PronomBackend     string `yaml:"pronom_backend,omitempty"`
	ChecksumAlgorithm string `yaml:"checksum_algorithm,omitempty"`
	// XSD is a schema used by `mdto validate` in addition to the built-in rules.
	XSD      string `yaml:"xsd,omitempty"`
	LogLevel string `yaml:"log_level,omitempty"`
}

const ConfigFileName = "mdto.yaml"

func Load(sourcePath string) (*ProjectConfig, error) {
	configPath := filepath.Join(sourcePath, ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", mdto.ErrInvalidConfig, configPath, err)
	}
	return &cfg, nil
}

// Resolve loads .env from sourcePath, then mdto.yaml, and applies the
// environment on top. A missing mdto.yaml yields the defaults.
func Resolve(sourcePath string) (*ProjectConfig, error) {
	_ = godotenv.Load(filepath.Join(sourcePath, ".env"))

	cfg, err := Load(sourcePath)
	if err != nil {
		if !errors.Is(err, ErrConfigNotFound) {
			return nil, err
		}
		cfg = &ProjectConfig{}
	}
	cfg.ApplyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv overrides fields with the environment variables that are set.
func (c *ProjectConfig) ApplyEnv() {
	override := func(field *string, key string) {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			*field = v
		}
	}
	override(&c.IdentificatieBron, EnvIdentificatieBron)
	override(&c.PronomBackend, pronom.EnvBackend)
	override(&c.ChecksumAlgorithm, EnvChecksumAlgorithm)
	override(&c.XSD, EnvXSD)
	override(&c.LogLevel, EnvLogLevel)
}

// Validate rejects unknown backends and checksum algorithms.
func (c *ProjectConfig) Validate() error {
	if _, err := pronom.ParseBackend(c.PronomBackend); err != nil {
		return err
	}
	if c.ChecksumAlgorithm != "" && !checksum.Supported(c.ChecksumAlgorithm) {
		return fmt.Errorf("%w: unknown checksum_algorithm %q", mdto.ErrInvalidConfig, c.ChecksumAlgorithm)
	}
	return nil
}

// Bron returns the configured identificatie source or the default.
func (c *ProjectConfig) Bron() string {
	if c == nil || c.IdentificatieBron == "" {
		return DefaultIdentificatieBron
	}
	return c.IdentificatieBron
}

// Save writes the config to sourcePath/mdto.yaml.
func (c *ProjectConfig) Save(sourcePath string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(sourcePath, ConfigFileName), data, 0644)
}
