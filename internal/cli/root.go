package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/guidodo/mdto/internal/config"
	"github.com/guidodo/mdto/internal/logging"
	"github.com/guidodo/mdto/pkg/mdto"
)

var rootCmd = &cobra.Command{
	Use:   "mdto",
	Short: "Read, write and validate MDTO archival metadata",
	Long: `mdto reads, writes and validates MDTO (Metagegevens Duurzaam Toegankelijke
Overheidsinformatie) XML documents: informatieobjecten and bestanden.

Configuration is read from mdto.yaml and .env in the --config directory;
MDTO_* environment variables override both.

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Document violates the MDTO structure
  11 - Document could not be decoded
  12 - File format identification failed
  13 - Invalid configuration
  14 - Document violates the XSD`,
	SilenceUsage:      true,
	PersistentPreRunE: setupApp,
}

// rootFlagValues holds the persistent flags.
type rootFlagValues struct {
	verbose   bool
	configDir string
}

var rootFlags rootFlagValues

// appContext is resolved once per invocation, before the command runs.
type appContext struct {
	cfg *config.ProjectConfig
	log *zap.Logger
}

var app = appContext{cfg: &config.ProjectConfig{}, log: zap.NewNop()}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo(rootCmd)
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&rootFlags.verbose, "verbose", "v", false,
		"Enable verbose output for all commands")
	rootCmd.PersistentFlags().StringVar(&rootFlags.configDir, "config", ".",
		"Directory holding mdto.yaml and .env")
}

func setupApp(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Resolve(rootFlags.configDir)
	if err != nil {
		return err
	}

	log, err := logging.New(logging.Options{
		Verbose: rootFlags.verbose,
		Level:   cfg.LogLevel,
		Output:  cmd.ErrOrStderr(),
	}.FromEnv())
	if err != nil {
		return fmt.Errorf("%w: %v", mdto.ErrInvalidConfig, err)
	}

	app = appContext{cfg: cfg, log: log}
	log.Debug("Configuration resolved",
		zap.String("config", rootFlags.configDir),
		zap.String("identificatieBron", cfg.Bron()),
		zap.String("pronomBackend", cfg.PronomBackend),
		zap.String("checksumAlgorithm", cfg.ChecksumAlgorithm))
	return nil
}
