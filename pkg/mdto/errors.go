package mdto

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	obj, err := mdto.DecodeFile(path)
//	if errors.Is(err, mdto.ErrUnexpectedRoot) {
//	    // Not an informatieobject or bestand document
//	}
var (
	// ErrValidation indicates an entity violates the MDTO structure.
	ErrValidation = errors.New("validation failed")

	// ErrDecode indicates a document could not be turned into an entity.
	ErrDecode = errors.New("decode failed")

	// ErrUnexpectedRoot indicates the document root or its first child is not recognized.
	ErrUnexpectedRoot = errors.New("unexpected root element")

	// ErrUnknownElement indicates a child element that its parent type does not declare.
	ErrUnknownElement = errors.New("unknown element")

	// ErrMissingElement indicates a mandatory structural child element is absent.
	ErrMissingElement = errors.New("missing element")

	// ErrMalformedValue indicates element text that cannot be parsed into the field's type.
	ErrMalformedValue = errors.New("malformed value")

	// ErrNotTopLevel indicates an entity that cannot be written as a document.
	ErrNotTopLevel = errors.New("not a top-level object")

	// ErrNoBackend indicates no format-identification program is available.
	ErrNoBackend = errors.New("no format identification backend")

	// ErrIdentification indicates a format-identification program could not identify a file.
	ErrIdentification = errors.New("format identification failed")

	// ErrUnknownAlgorithm indicates an unsupported checksum algorithm.
	ErrUnknownAlgorithm = errors.New("unknown checksum algorithm")

	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrUsage indicates a command was invoked with missing or invalid arguments.
	ErrUsage = errors.New("usage error")

	// ErrSchemaViolation indicates a document does not conform to the MDTO XSD.
	ErrSchemaViolation = errors.New("schema violation")
)

// ValidationError reports a structural or constraint violation.
// Path lists type and field names from the validated root down to the
// offending field, e.g. [Informatieobject bewaartermijn TermijnGegevens
// termijnTriggerStartLooptijd].
type ValidationError struct {
	Path []string
	Msg  string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s:\n\t%s", strings.Join(e.Path, "."), e.Msg)
}

// Unwrap lets errors.Is(err, ErrValidation) match every validation error.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// Field returns the name of the offending field, the last path element.
func (e *ValidationError) Field() string {
	if len(e.Path) == 0 {
		return ""
	}
	return e.Path[len(e.Path)-1]
}

// prefixed returns a copy of e with typeName and field prepended to its path.
func (e *ValidationError) prefixed(typeName, field string) *ValidationError {
	path := make([]string, 0, len(e.Path)+2)
	path = append(path, typeName, field)
	path = append(path, e.Path...)
	return &ValidationError{Path: path, Msg: e.Msg}
}

// DecodeError reports a document that does not have the structure the
// decoder expects. Path lists element names from the variant element down
// to the offending element.
type DecodeError struct {
	Path []string
	Msg  string
	Err  error
}

func (e *DecodeError) Error() string {
	if len(e.Path) == 0 {
		return "decode: " + e.Msg
	}
	return fmt.Sprintf("decode %s: %s", strings.Join(e.Path, "/"), e.Msg)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Is reports ErrDecode for every DecodeError in addition to its cause.
func (e *DecodeError) Is(target error) bool {
	return target == ErrDecode
}

func decodeErr(cause error, path []string, format string, args ...any) *DecodeError {
	return &DecodeError{
		Path: append([]string(nil), path...),
		Msg:  fmt.Sprintf(format, args...),
		Err:  cause,
	}
}

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrUsage):
		return ExitUsageError
	case errors.Is(err, ErrValidation):
		return ExitValidationError
	case errors.Is(err, ErrDecode), errors.Is(err, ErrNotTopLevel):
		return ExitDecodeError
	case errors.Is(err, ErrNoBackend), errors.Is(err, ErrIdentification):
		return ExitFormatError
	case errors.Is(err, ErrInvalidConfig), errors.Is(err, ErrUnknownAlgorithm):
		return ExitConfigError
	case errors.Is(err, ErrSchemaViolation):
		return ExitSchemaError
	}

	return ExitGeneralError
}
