package cli

import (
	"fmt"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/guidodo/mdto/internal/files/filesystem"
	"github.com/guidodo/mdto/internal/schema"
	"github.com/guidodo/mdto/internal/tui"
	"github.com/guidodo/mdto/pkg/mdto"
)

var validateCmd = &cobra.Command{
	Use:   "validate <path>...",
	Short: "Validate MDTO documents",
	Long: `Decode and validate MDTO documents.

Each path is a document or a directory; directories are searched for *.xml
files recursively. Every document is reported as valid (✓) or invalid (✗),
followed by its advisories. With --xsd, valid documents are also checked
against an XML schema (the xsd setting in mdto.yaml is used when the flag
is not given).`,
	Example: `  # Validate one document
  mdto validate dossier.xml

  # Validate everything below a directory, with a JSON report
  mdto validate ./archief --json

  # Also check the published schema
  mdto validate ./archief --xsd MDTO-XML1.0.1.xsd`,
	Args: RequirePaths,
	RunE: runValidate,
}

type validateFlagValues struct {
	json bool
	xsd  string
}

var validateFlags validateFlagValues

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().BoolVar(&validateFlags.json, "json", false,
		"Print a JSON report instead of one line per document")
	validateCmd.Flags().StringVar(&validateFlags.xsd, "xsd", "",
		"Also validate against this XML schema")
}

// fileReport is the outcome for one document.
type fileReport struct {
	Path       string   `json:"path"`
	Valid      bool     `json:"valid"`
	Errors     []string `json:"errors,omitempty"`
	Advisories []string `json:"advisories,omitempty"`
}

type validateReport struct {
	Files   []fileReport `json:"files"`
	Valid   int          `json:"valid"`
	Invalid int          `json:"invalid"`
}

// summaryError keeps the printed message short while errors.Is still sees
// every per-document cause.
type summaryError struct {
	msg   string
	cause error
}

func (e *summaryError) Error() string { return e.msg }
func (e *summaryError) Unwrap() error { return e.cause }

func runValidate(cmd *cobra.Command, args []string) error {
	log := app.log

	var checker *schema.Checker
	xsdPath := validateFlags.xsd
	if xsdPath == "" {
		xsdPath = app.cfg.XSD
	}
	if xsdPath != "" {
		var err error
		checker, err = schema.Load(xsdPath)
		if err != nil {
			return err
		}
		log.Debug("Loaded schema", zap.String("xsd", xsdPath))
	}

	provider := filesystem.NewOSFileSystem()
	var paths []string
	for _, arg := range args {
		found, err := filesystem.FindDocuments(provider, arg)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", arg, err)
		}
		if len(found) == 0 {
			log.Warn("No documents found", zap.String("path", arg))
		}
		paths = append(paths, found...)
	}

	var (
		report validateReport
		errs   error
	)
	for _, path := range paths {
		fr, err := validateDocument(provider, checker, path)
		report.Files = append(report.Files, fr)
		if err != nil {
			report.Invalid++
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", path, err))
			log.Debug("Document invalid", zap.String("file", path), zap.Error(err))
			continue
		}
		report.Valid++
	}

	if validateFlags.json {
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
	} else {
		printValidateReport(tui.NewReporter(cmd.OutOrStdout()), report)
	}

	if errs != nil {
		return &summaryError{
			msg:   fmt.Sprintf("%d of %d documents invalid", report.Invalid, len(paths)),
			cause: errs,
		}
	}
	return nil
}

func validateDocument(provider filesystem.FileSystemProvider, checker *schema.Checker, path string) (fileReport, error) {
	fr := fileReport{Path: path}

	data, err := provider.ReadFile(path)
	if err != nil {
		fr.Errors = []string{err.Error()}
		return fr, err
	}

	obj, err := mdto.DecodeBytes(data)
	if err == nil {
		err = mdto.Validate(obj)
	}
	if err == nil && checker != nil {
		err = checker.Check(data)
	}
	if err != nil {
		for _, e := range multierr.Errors(err) {
			fr.Errors = append(fr.Errors, e.Error())
		}
		return fr, err
	}

	fr.Valid = true
	for _, a := range mdto.Advisories(obj) {
		fr.Advisories = append(fr.Advisories, a.String())
	}
	return fr, nil
}

func printValidateReport(r *tui.Reporter, report validateReport) {
	for _, fr := range report.Files {
		if fr.Valid {
			r.Success(fr.Path)
		} else {
			r.Failure(fr.Path)
			for _, msg := range fr.Errors {
				r.Detail(msg)
			}
		}
		for _, a := range fr.Advisories {
			r.Warning(a)
		}
	}
}
