// Package schema checks MDTO documents against an XSD.
//
// The structural rules of pkg/mdto are baked into its type descriptors;
// this package is the optional second opinion used by `mdto validate --xsd`
// and by the encoder tests.
package schema

import (
	"bytes"
	"fmt"

	"github.com/beevik/etree"
	"github.com/jacoelho/xsd"
	xsderrors "github.com/jacoelho/xsd/errors"
	"go.uber.org/multierr"

	"github.com/guidodo/mdto/pkg/mdto"
)

// Checker validates documents against one compiled schema. It is safe
// for concurrent use.
type Checker struct {
	path   string
	schema *xsd.Schema
}

// Load compiles the XSD at path.
func Load(path string) (*Checker, error) {
	s, err := xsd.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", mdto.ErrInvalidConfig, err)
	}
	return &Checker{path: path, schema: s}, nil
}

// Path returns the location the schema was loaded from.
func (c *Checker) Path() string {
	return c.path
}

// Check validates an MDTO document. Every violation is returned, combined
// with multierr and wrapping mdto.ErrSchemaViolation.
//
// xsi:schemaLocation hints are removed first: documents point at the
// published schema URL and the checker must never fetch it.
func (c *Checker) Check(data []byte) error {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return &mdto.DecodeError{Msg: err.Error(), Err: err}
	}
	if root := doc.Root(); root != nil {
		root.RemoveAttr("xsi:schemaLocation")
	}
	stripped, err := doc.WriteToBytes()
	if err != nil {
		return err
	}

	err = c.schema.Validate(bytes.NewReader(stripped))
	if err == nil {
		return nil
	}
	violations, ok := xsderrors.AsValidations(err)
	if !ok {
		return fmt.Errorf("%w: %v", mdto.ErrSchemaViolation, err)
	}

	var errs error
	for _, v := range violations {
		errs = multierr.Append(errs, &Violation{Validation: v})
	}
	return errs
}

// Violation is one XSD finding.
type Violation struct {
	xsderrors.Validation
}

func (v *Violation) Error() string {
	return v.Validation.Error()
}

func (v *Violation) Unwrap() error {
	return mdto.ErrSchemaViolation
}

// Violations splits an error returned by Check into its findings.
func Violations(err error) []*Violation {
	var out []*Violation
	for _, e := range multierr.Errors(err) {
		if v, ok := e.(*Violation); ok {
			out = append(out, v)
		}
	}
	return out
}
