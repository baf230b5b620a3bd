package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/guidodo/mdto/internal/checksum"
	"github.com/guidodo/mdto/pkg/mdto"
)

var checksumCmd = &cobra.Command{
	Use:   "checksum <file>",
	Short: "Print a checksum element for a file",
	Long: `Compute the checksum of a file and print the <checksum> element of a
Bestand: algorithm, value and date.

Supported algorithms: ` + strings.Join(checksum.Algorithms(), ", ") + `.
The default is the checksum_algorithm setting, or sha256.`,
	Example: `  mdto checksum brief.pdf
  mdto checksum brief.pdf --algorithm sha512`,
	Args: RequireFile,
	RunE: runChecksum,
}

type checksumFlagValues struct {
	algorithm string
}

var checksumFlags checksumFlagValues

// now is replaced in tests.
var now = time.Now

func init() {
	rootCmd.AddCommand(checksumCmd)

	checksumCmd.Flags().StringVarP(&checksumFlags.algorithm, "algorithm", "a", "",
		"Checksum algorithm (default from config, else sha256)")
}

func checksumAlgorithm(flag string) string {
	if flag != "" {
		return flag
	}
	return app.cfg.ChecksumAlgorithm
}

func runChecksum(cmd *cobra.Command, args []string) error {
	hasher, err := checksum.New(checksumAlgorithm(checksumFlags.algorithm))
	if err != nil {
		return err
	}

	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	sum, err := hasher.Create(f, now())
	if err != nil {
		return err
	}
	app.log.Debug("Computed checksum",
		zap.String("file", args[0]),
		zap.String("algorithm", hasher.Algorithm()),
		zap.String("value", sum.Text("checksumWaarde")))

	fragment, err := mdto.EncodeFragment(sum, "checksum")
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), fragment)
	return nil
}
