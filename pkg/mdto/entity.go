package mdto

import (
	"fmt"
	"reflect"
)

// Entity is one instance of an EntityType: a mapping from field name to
// value. A value is absent (nil), a string, an int, a *Entity, or a
// sequence of those ([]string, []int, []*Entity or []any).
//
// Values are not checked on assignment; call Validate before writing.
type Entity struct {
	typ    *EntityType
	values map[string]any
}

// New returns an empty entity of type t.
func New(t *EntityType) *Entity {
	return &Entity{typ: t, values: make(map[string]any, len(t.Fields))}
}

// Type returns the entity's type.
func (e *Entity) Type() *EntityType {
	return e.typ
}

// Set assigns a field value and returns e for chaining. Assigning nil
// removes the field. Set panics when t does not declare the field: the
// field set of a type is fixed.
func (e *Entity) Set(field string, value any) *Entity {
	if _, ok := e.typ.Field(field); !ok {
		panic(fmt.Sprintf("mdto: %s has no field %q", e.typ.Name, field))
	}
	if value == nil {
		delete(e.values, field)
		return e
	}
	e.values[field] = value
	return e
}

// Get returns the raw field value, or nil when absent.
func (e *Entity) Get(field string) any {
	return e.values[field]
}

// Has reports whether the field holds a non-empty value.
func (e *Entity) Has(field string) bool {
	return !isEmpty(e.values[field])
}

// Text returns a string field, or the first item of a string sequence.
func (e *Entity) Text(field string) string {
	switch v := e.values[field].(type) {
	case string:
		return v
	case []string:
		if len(v) > 0 {
			return v[0]
		}
	case []any:
		if len(v) > 0 {
			s, _ := v[0].(string)
			return s
		}
	}
	return ""
}

// Strings returns every string value of a field.
func (e *Entity) Strings(field string) []string {
	items, ok := sequence(e.values[field])
	if !ok {
		if s, isString := e.values[field].(string); isString {
			return []string{s}
		}
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, isString := item.(string); isString {
			out = append(out, s)
		}
	}
	return out
}

// Int returns an integer field.
func (e *Entity) Int(field string) (int, bool) {
	n, ok := e.values[field].(int)
	return n, ok
}

// Child returns a nested entity, or the first entity of a sequence.
func (e *Entity) Child(field string) *Entity {
	children := e.Children(field)
	if len(children) == 0 {
		return nil
	}
	return children[0]
}

// Children returns every nested entity of a field in document order.
func (e *Entity) Children(field string) []*Entity {
	v := e.values[field]
	if child, ok := v.(*Entity); ok && child != nil {
		return []*Entity{child}
	}
	items, _ := sequence(v)
	out := make([]*Entity, 0, len(items))
	for _, item := range items {
		if child, ok := item.(*Entity); ok && child != nil {
			out = append(out, child)
		}
	}
	return out
}

// Equal reports whether two entities have the same type and field values.
// A single value equals a one-item sequence holding the same value.
func (e *Entity) Equal(other *Entity) bool {
	if e == nil || other == nil {
		return e == other
	}
	if e.typ != other.typ {
		return false
	}
	for _, f := range e.typ.Fields {
		if !valuesEqual(e.values[f.Name], other.values[f.Name]) {
			return false
		}
	}
	return true
}

func (e *Entity) String() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s%v", e.typ.Name, e.values)
}

func valuesEqual(a, b any) bool {
	as, bs := flatten(a), flatten(b)
	if len(as) != len(bs) {
		return false
	}
	for i := range as {
		ae, aok := as[i].(*Entity)
		be, bok := bs[i].(*Entity)
		if aok || bok {
			if !aok || !bok || !ae.Equal(be) {
				return false
			}
			continue
		}
		if !reflect.DeepEqual(as[i], bs[i]) {
			return false
		}
	}
	return true
}

// flatten turns any value into the list of its items; empty values
// become an empty list.
func flatten(v any) []any {
	if isEmpty(v) {
		return nil
	}
	if items, ok := sequence(v); ok {
		return items
	}
	return []any{v}
}

// sequence reports whether v is a slice or array value and returns its items.
func sequence(v any) ([]any, bool) {
	switch s := v.(type) {
	case nil, string:
		return nil, false
	case []any:
		return s, true
	case []string:
		out := make([]any, len(s))
		for i := range s {
			out[i] = s[i]
		}
		return out, true
	case []int:
		out := make([]any, len(s))
		for i := range s {
			out[i] = s[i]
		}
		return out, true
	case []*Entity:
		out := make([]any, len(s))
		for i := range s {
			out[i] = s[i]
		}
		return out, true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

// isEmpty reports absent values: nil, "", nil entities and empty sequences.
// Zero integers are present.
func isEmpty(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case string:
		return x == ""
	case *Entity:
		return x == nil
	}
	if items, ok := sequence(v); ok {
		return len(items) == 0
	}
	return false
}

// typeName names the dynamic type of v for validation messages.
func typeName(v any) string {
	switch x := v.(type) {
	case nil:
		return "nil"
	case string:
		return "string"
	case int:
		return "int"
	case *Entity:
		if x == nil || x.typ == nil {
			return "nil"
		}
		return x.typ.Name
	}
	return fmt.Sprintf("%T", v)
}
