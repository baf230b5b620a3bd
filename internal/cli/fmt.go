package cli

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/guidodo/mdto/pkg/mdto"
)

var fmtCmd = &cobra.Command{
	Use:   "fmt <file>",
	Short: "Rewrite a document in canonical MDTO layout",
	Long: `Decode and validate a document, then encode it again with elements in
MDTO order, tab indentation and an XML declaration.

The result is printed to stdout unless -w is given.`,
	Example: `  mdto fmt dossier.xml
  mdto fmt -w dossier.xml`,
	Args: RequireFile,
	RunE: runFmt,
}

type fmtFlagValues struct {
	write bool
}

var fmtFlags fmtFlagValues

func init() {
	rootCmd.AddCommand(fmtCmd)

	fmtCmd.Flags().BoolVarP(&fmtFlags.write, "write", "w", false,
		"Write the result back to the file instead of stdout")
}

func runFmt(cmd *cobra.Command, args []string) error {
	path := args[0]
	log := app.log.With(zap.String("file", path))

	original, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	obj, err := mdto.DecodeBytes(original)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	formatted, err := mdto.Marshal(obj, mdto.WithLogger(log))
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	if !fmtFlags.write {
		_, err = cmd.OutOrStdout().Write(formatted)
		return err
	}
	if bytes.Equal(original, formatted) {
		log.Debug("Already formatted")
		return nil
	}
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, formatted, info.Mode().Perm()); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	log.Info("Formatted")
	return nil
}
