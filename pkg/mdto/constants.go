package mdto

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess         = 0  // Command completed successfully
	ExitGeneralError    = 1  // Unknown or unclassified error
	ExitUsageError      = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic           = 3  // Internal panic (unexpected crash)
	ExitValidationError = 10 // Entity violates the MDTO structure
	ExitDecodeError     = 11 // Document could not be decoded
	ExitFormatError     = 12 // Format identification failed or no backend
	ExitConfigError     = 13 // Invalid configuration
	ExitSchemaError     = 14 // Document violates the XSD
)

const (
	// Namespace is the default namespace of every MDTO document.
	Namespace = "https://www.nationaalarchief.nl/mdto"

	// XSINamespace is the XML Schema instance namespace used for schemaLocation.
	XSINamespace = "http://www.w3.org/2001/XMLSchema-instance"

	// SchemaLocation is the value of the xsi:schemaLocation attribute on <MDTO>.
	SchemaLocation = Namespace + " https://www.nationaalarchief.nl/mdto/MDTO-XML1.0.1.xsd"

	// RootElement is the document element wrapping both top-level variants.
	RootElement = "MDTO"

	// MaxNaamLength is the recommended maximum length, in characters, of
	// naam and verwijzingNaam values. Longer names produce an advisory.
	MaxNaamLength = 80

	// PronomRegister is the begrippenlijst name used for PRONOM format data.
	PronomRegister = "PRONOM-register"

	// ChecksumBegrippenlijst is the begrippenlijst name used for checksum algorithms.
	ChecksumBegrippenlijst = "Begrippenlijst ChecksumAlgoritme MDTO"

	// WaarderingBegrippenlijst is the begrippenlijst name used for waardering.
	WaarderingBegrippenlijst = "Begrippenlijst Waarderingen MDTO"

	// DateTimeLayout is the layout of checksumDatum values.
	DateTimeLayout = "2006-01-02T15:04:05"
)
