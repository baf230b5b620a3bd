package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/guidodo/mdto/internal/bestand"
	"github.com/guidodo/mdto/internal/checksum"
	"github.com/guidodo/mdto/internal/files/filesystem"
	"github.com/guidodo/mdto/internal/pronom"
	"github.com/guidodo/mdto/pkg/mdto"
)

var bestandCmd = &cobra.Command{
	Use:   "bestand <file>",
	Short: "Create a Bestand document for a file",
	Long: `Create a Bestand document describing a file: its name, size, checksum
and PRONOM format, and the informatieobject it represents.

The informatieobject is read from an MDTO document with --representatie-van
or named directly with --representatie-naam. Without --kenmerk a stable
identifier is derived from the file path.`,
	Example: `  mdto bestand brief.pdf --representatie-van dossier.xml -o brief.bestand.xml
  mdto bestand scan.tif --kenmerk 34c5-4379 --bron "Proza (DMS)" \
    --representatie-naam "Verlenen kapvergunning"`,
	Args: RequireFile,
	RunE: runBestand,
}

type bestandFlagValues struct {
	kenmerk, bron        string
	representatieVan     string
	representatieNaam    string
	url, output, backend string
	algorithm            string
}

var bestandFlags bestandFlagValues

func init() {
	rootCmd.AddCommand(bestandCmd)

	bestandCmd.Flags().StringVar(&bestandFlags.kenmerk, "kenmerk", "",
		"identificatieKenmerk of the Bestand")
	bestandCmd.Flags().StringVar(&bestandFlags.bron, "bron", "",
		"identificatieBron of the Bestand (default from config)")
	bestandCmd.Flags().StringVar(&bestandFlags.representatieVan, "representatie-van", "",
		"MDTO document of the informatieobject this file represents")
	bestandCmd.Flags().StringVar(&bestandFlags.representatieNaam, "representatie-naam", "",
		"Name of the informatieobject this file represents")
	bestandCmd.Flags().StringVar(&bestandFlags.url, "url", "",
		"URLBestand")
	bestandCmd.Flags().StringVarP(&bestandFlags.output, "output", "o", "",
		"Write the document to this file instead of stdout")
	bestandCmd.Flags().StringVarP(&bestandFlags.backend, "backend", "b", "",
		"Format identification backend: siegfried (sf) or fido")
	bestandCmd.Flags().StringVarP(&bestandFlags.algorithm, "algorithm", "a", "",
		"Checksum algorithm (default from config, else sha256)")
}

func runBestand(cmd *cobra.Command, args []string) error {
	if bestandFlags.representatieVan == "" && bestandFlags.representatieNaam == "" {
		return usageErrorf("one of --representatie-van or --representatie-naam is required")
	}
	if bestandFlags.representatieVan != "" && bestandFlags.representatieNaam != "" {
		return usageErrorf("--representatie-van and --representatie-naam are mutually exclusive")
	}

	hasher, err := checksum.New(checksumAlgorithm(bestandFlags.algorithm))
	if err != nil {
		return err
	}
	provider := filesystem.NewOSFileSystem()
	id, err := newIdentifier(bestandFlags.backend, pronom.WithStat(provider.Stat))
	if err != nil {
		return err
	}

	builder := bestand.NewBuilder(provider, hasher, id, app.log)
	builder.Bron = app.cfg.Bron()
	builder.Now = now

	opts := bestand.Options{
		Path:                 args[0],
		RepresentatieVanFile: bestandFlags.representatieVan,
		URL:                  bestandFlags.url,
	}
	if bestandFlags.representatieNaam != "" {
		opts.RepresentatieVan = mdto.NewVerwijzing(bestandFlags.representatieNaam, nil)
	}
	if bestandFlags.kenmerk != "" {
		bron := bestandFlags.bron
		if bron == "" {
			bron = app.cfg.Bron()
		}
		opts.Identificatie = []*mdto.Entity{mdto.NewIdentificatie(bestandFlags.kenmerk, bron)}
	}

	obj, err := builder.Build(cmd.Context(), opts)
	if err != nil {
		return err
	}
	return writeDocument(cmd, obj, bestandFlags.output)
}

// writeDocument saves obj to path, or prints it when path is empty.
func writeDocument(cmd *cobra.Command, obj *mdto.Entity, path string) error {
	if path == "" {
		return mdto.Write(cmd.OutOrStdout(), obj)
	}
	if err := mdto.Save(path, obj); err != nil {
		return err
	}
	app.log.Info("Wrote document", zap.String("file", path))
	return nil
}
