package cli

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/guidodo/mdto/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or write the effective configuration",
	Long: `Print the configuration mdto uses after reading mdto.yaml, .env and
MDTO_* environment variables.

With --init the effective configuration is written to mdto.yaml in the
--config directory, which makes environment settings permanent for the
project.`,
	Example: `  # Show what mdto would use
  mdto config

  # Record the identificatie source for this archive
  MDTO_IDENTIFICATIE_BRON="Zaaksysteem" mdto config --init`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

type configFlagValues struct {
	init  bool
	force bool
}

var configFlags configFlagValues

func init() {
	rootCmd.AddCommand(configCmd)

	configCmd.Flags().BoolVar(&configFlags.init, "init", false,
		"Write the effective configuration to mdto.yaml")
	configCmd.Flags().BoolVar(&configFlags.force, "force", false,
		"Overwrite an existing mdto.yaml")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	if !configFlags.init {
		data, err := yaml.Marshal(app.cfg)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}

	path := filepath.Join(rootFlags.configDir, config.ConfigFileName)
	if _, err := os.Stat(path); err == nil && !configFlags.force {
		return usageErrorf("%s already exists (use --force to overwrite)", path)
	}
	if err := app.cfg.Save(rootFlags.configDir); err != nil {
		return err
	}
	app.log.Info("Wrote configuration", zap.String("file", path))
	return nil
}
