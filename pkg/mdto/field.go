package mdto

// Kind is the element type of a field value.
type Kind int

const (
	// KindString fields hold text.
	KindString Kind = iota
	// KindInt fields hold integers.
	KindInt
	// KindEntity fields hold nested data groups of a fixed EntityType.
	KindEntity
)

// Cardinality states whether a field is mandatory and whether it repeats.
type Cardinality int

const (
	One Cardinality = iota
	OptionalOne
	Many
	OptionalMany
)

// Optional reports whether the field may be absent.
func (c Cardinality) Optional() bool {
	return c == OptionalOne || c == OptionalMany
}

// Listable reports whether the field accepts a sequence of values.
func (c Cardinality) Listable() bool {
	return c == Many || c == OptionalMany
}

func (c Cardinality) String() string {
	switch c {
	case One:
		return "one"
	case OptionalOne:
		return "optional-one"
	case Many:
		return "one-or-many"
	case OptionalMany:
		return "optional-many"
	}
	return "unknown"
}

// Field describes one field of an entity type.
type Field struct {
	Name string
	Kind Kind
	Type *EntityType // set when Kind is KindEntity
	Card Cardinality

	// URL marks fields whose values must be well-formed URLs.
	URL bool
	// Naam marks name fields subject to the MaxNaamLength advisory.
	Naam bool
	// Lang marks fields holding BCP 47 language tags.
	Lang bool
}

// TypeName returns the name of the field's element type as used in
// validation messages.
func (f Field) TypeName() string {
	switch f.Kind {
	case KindString:
		return "string"
	case KindInt:
		return "int"
	}
	if f.Type == nil {
		return "entity"
	}
	return f.Type.Name
}

// accepts reports whether a single (non-sequence) value matches the
// field's element type.
func (f Field) accepts(v any) bool {
	switch f.Kind {
	case KindString:
		_, ok := v.(string)
		return ok
	case KindInt:
		_, ok := v.(int)
		return ok
	}
	e, ok := v.(*Entity)
	return ok && e != nil && e.typ == f.Type
}

// EntityType is a named MDTO data group or top-level object with a static
// list of fields in natural declaration order.
type EntityType struct {
	Name   string
	Fields []Field

	// Root is the element name used when the type is written as a
	// document. Only the top-level variants set it.
	Root string
}

// Field looks up a field by name.
func (t *EntityType) Field(name string) (Field, bool) {
	for _, f := range t.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// TopLevel reports whether entities of this type can be written as a document.
func (t *EntityType) TopLevel() bool {
	return t.Root != ""
}

func (t *EntityType) String() string {
	return t.Name
}

func text(name string, card Cardinality) Field {
	return Field{Name: name, Kind: KindString, Card: card}
}

func integer(name string, card Cardinality) Field {
	return Field{Name: name, Kind: KindInt, Card: card}
}

func group(name string, t *EntityType, card Cardinality) Field {
	return Field{Name: name, Kind: KindEntity, Type: t, Card: card}
}
