package cli

import (
	"bytes"
	"fmt"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/guidodo/mdto/pkg/mdto"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "Print the decoded tree of a document",
	Long: `Decode a document and print its fields in MDTO order as YAML or JSON.

The output is meant for reading and scripting; it is not decoded again.
The document is not validated.`,
	Example: `  mdto inspect dossier.xml
  mdto inspect dossier.xml --format json | jq .naam`,
	Args: RequireFile,
	RunE: runInspect,
}

type inspectFlagValues struct {
	format string
}

var inspectFlags inspectFlagValues

func init() {
	rootCmd.AddCommand(inspectCmd)

	inspectCmd.Flags().StringVarP(&inspectFlags.format, "format", "f", "yaml",
		"Output format: yaml or json")
}

func runInspect(cmd *cobra.Command, args []string) error {
	if inspectFlags.format != "yaml" && inspectFlags.format != "json" {
		return usageErrorf("unknown --format %q (expected yaml or json)", inspectFlags.format)
	}

	obj, err := mdto.DecodeFile(args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if inspectFlags.format == "json" {
		compact, err := obj.MarshalJSON()
		if err != nil {
			return err
		}
		var buf bytes.Buffer
		if err := json.Indent(&buf, compact, "", "  "); err != nil {
			return err
		}
		fmt.Fprintln(out, buf.String())
		return nil
	}

	data, err := yaml.Marshal(obj)
	if err != nil {
		return err
	}
	_, err = out.Write(data)
	return err
}
