package mdto

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// Validate checks e and everything below it against the MDTO structure and
// returns the first violation as a *ValidationError. Advisories are logged
// as warnings and never fail validation.
//
// Validation is not run when fields are set; the writing functions call it
// before producing output.
func Validate(e *Entity, opts ...Option) error {
	o := newOptions(opts)
	if e == nil || e.typ == nil {
		return &ValidationError{Msg: "entity is nil"}
	}
	if verr := validate(e); verr != nil {
		return verr
	}
	for _, a := range Advisories(e) {
		o.logger.Warn(a.Msg, zap.String("field", a.PathString()))
	}
	return nil
}

// Validate is shorthand for Validate(e, opts...).
func (e *Entity) Validate(opts ...Option) error {
	return Validate(e, opts...)
}

// validate walks the fields of e in declaration order; the first failing
// field wins. Nested failures are returned with the current type and field
// prepended to their path.
func validate(e *Entity) *ValidationError {
	t := e.typ
	for _, f := range t.Fields {
		value := e.values[f.Name]
		fail := func(format string, args ...any) *ValidationError {
			return &ValidationError{Path: []string{t.Name, f.Name}, Msg: fmt.Sprintf(format, args...)}
		}

		if isEmpty(value) {
			if f.Card.Optional() {
				continue
			}
			return fail("mandatory field cannot be empty")
		}

		items, isSeq := sequence(value)
		if isSeq {
			if !f.Card.Listable() {
				return fail("got type %s, but field does not accept sequences", typeName(value))
			}
			if !allAccepted(f, items) {
				return fail("list items must be %s, but found %s", f.TypeName(), itemTypeNames(items))
			}
		} else {
			if !f.accepts(value) {
				return fail("expected type %s, got %s", f.TypeName(), typeName(value))
			}
			items = []any{value}
		}

		if f.Kind != KindEntity {
			continue
		}
		for _, item := range items {
			if verr := validate(item.(*Entity)); verr != nil {
				return verr.prefixed(t.Name, f.Name)
			}
		}
	}
	return checkURLs(e)
}

func allAccepted(f Field, items []any) bool {
	for _, item := range items {
		if !f.accepts(item) {
			return false
		}
	}
	return true
}

// itemTypeNames lists the distinct item types in order of first appearance.
func itemTypeNames(items []any) string {
	var names []string
	seen := make(map[string]bool)
	for _, item := range items {
		name := typeName(item)
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	return strings.Join(names, ", ")
}

// checkURLs runs after the structural checks of e have passed.
func checkURLs(e *Entity) *ValidationError {
	for _, f := range e.typ.Fields {
		if !f.URL {
			continue
		}
		for _, u := range e.Strings(f.Name) {
			if !ValidURL(u) {
				return &ValidationError{
					Path: []string{e.typ.Name, f.Name},
					Msg:  fmt.Sprintf("url %s is malformed", u),
				}
			}
		}
	}
	return nil
}
