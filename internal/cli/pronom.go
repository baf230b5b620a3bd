package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/guidodo/mdto/internal/pronom"
	"github.com/guidodo/mdto/pkg/mdto"
)

var pronomCmd = &cobra.Command{
	Use:   "pronom <file>",
	Short: "Print a bestandsformaat element for a file",
	Long: `Identify the format of a file with siegfried (sf) or fido and print the
<bestandsformaat> element of a Bestand, with the PRONOM PUID as begripCode.

The backend is --backend, else pronom_backend / PRONOM_BACKEND, else the
first of sf and fido found on PATH.`,
	Example: `  mdto pronom brief.pdf
  mdto pronom brief.pdf --backend fido`,
	Args: RequireFile,
	RunE: runPronom,
}

type pronomFlagValues struct {
	backend string
}

var pronomFlags pronomFlagValues

// pronomOptions are passed to every Identifier; tests inject a runner.
var pronomOptions []pronom.Option

func init() {
	rootCmd.AddCommand(pronomCmd)

	pronomCmd.Flags().StringVarP(&pronomFlags.backend, "backend", "b", "",
		"Format identification backend: siegfried (sf) or fido")
}

func newIdentifier(flag string, extra ...pronom.Option) (*pronom.Identifier, error) {
	name := flag
	if name == "" {
		name = app.cfg.PronomBackend
	}
	backend, err := pronom.ParseBackend(name)
	if err != nil {
		return nil, err
	}
	opts := append([]pronom.Option{pronom.WithLogger(app.log)}, extra...)
	opts = append(opts, pronomOptions...)
	return pronom.New(backend, opts...), nil
}

func runPronom(cmd *cobra.Command, args []string) error {
	id, err := newIdentifier(pronomFlags.backend)
	if err != nil {
		return err
	}
	formaat, err := id.Identify(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	fragment, err := mdto.EncodeFragment(formaat, "bestandsformaat")
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), fragment)
	return nil
}
