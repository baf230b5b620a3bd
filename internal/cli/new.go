package cli

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/guidodo/mdto/internal/tui"
	"github.com/guidodo/mdto/internal/tui/wizards"
)

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Create a minimal informatieobject",
	Long: `Create an informatieobject with its mandatory fields: identificatie,
naam, waardering, archiefvormer and beperkingGebruik.

When a terminal is attached and a mandatory flag is missing, an interactive
form asks for the remaining values. Otherwise every flag except
--beperking and --bron (which have defaults) is required.`,
	Example: `  mdto new
  mdto new --naam "Verlenen kapvergunning" --kenmerk abcd-1234 \
    --archiefvormer Geldermalsen --waardering V -o dossier.xml`,
	Args: cobra.NoArgs,
	RunE: runNew,
}

type newFlagValues struct {
	naam, kenmerk, bron string
	archiefvormer       string
	waardering          string
	beperking           string
	output              string
	force               bool
}

var newFlags newFlagValues

// runWizard is replaced in tests.
var runWizard = wizards.RunInformatieobjectWizard

func init() {
	rootCmd.AddCommand(newCmd)

	newCmd.Flags().StringVar(&newFlags.naam, "naam", "", "naam of the informatieobject")
	newCmd.Flags().StringVar(&newFlags.kenmerk, "kenmerk", "", "identificatieKenmerk")
	newCmd.Flags().StringVar(&newFlags.bron, "bron", "", "identificatieBron (default from config)")
	newCmd.Flags().StringVar(&newFlags.archiefvormer, "archiefvormer", "", "Name of the archiefvormer")
	newCmd.Flags().StringVar(&newFlags.waardering, "waardering", "", "Waardering: V, B or O")
	newCmd.Flags().StringVar(&newFlags.beperking, "beperking", "nvt", "beperkingGebruikType label")
	newCmd.Flags().StringVarP(&newFlags.output, "output", "o", "", "Write the document to this file instead of stdout")
	newCmd.Flags().BoolVar(&newFlags.force, "force", false, "Overwrite an existing output file")
}

func runNew(cmd *cobra.Command, _ []string) error {
	values := wizards.InformatieobjectValues{
		Naam:             newFlags.naam,
		Kenmerk:          newFlags.kenmerk,
		Bron:             newFlags.bron,
		Archiefvormer:    newFlags.archiefvormer,
		Waardering:       strings.ToUpper(newFlags.waardering),
		BeperkingGebruik: newFlags.beperking,
	}
	if values.Bron == "" {
		values.Bron = app.cfg.Bron()
	}

	if values.Missing() {
		if !tui.IsInteractive() {
			return usageErrorf("missing required flags: %s", strings.Join(missingNewFlags(values), ", "))
		}
		result, err := runWizard(values)
		if err != nil {
			return err
		}
		if result.Cancelled {
			app.log.Info("Cancelled")
			return nil
		}
		values = result.Values
	}

	if newFlags.output != "" && !newFlags.force {
		if _, err := os.Stat(newFlags.output); err == nil {
			if !tui.IsInteractive() {
				return usageErrorf("%s already exists (use --force to overwrite)", newFlags.output)
			}
			if !tui.Confirm("Overwrite "+newFlags.output+"?", cmd.InOrStdin(), cmd.ErrOrStderr()) {
				return nil
			}
		}
	}

	return writeDocument(cmd, values.Entity(), newFlags.output)
}

func missingNewFlags(v wizards.InformatieobjectValues) []string {
	var missing []string
	for _, f := range []struct{ flag, value string }{
		{"--naam", v.Naam},
		{"--kenmerk", v.Kenmerk},
		{"--bron", v.Bron},
		{"--archiefvormer", v.Archiefvormer},
		{"--waardering", v.Waardering},
		{"--beperking", v.BeperkingGebruik},
	} {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.flag)
		}
	}
	return missing
}
