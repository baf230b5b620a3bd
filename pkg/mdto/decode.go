package mdto

import (
	"bytes"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/beevik/etree"
)

// parser turns one element into a field value. path names the element
// and its ancestors for error reporting.
type parser func(el *etree.Element, path []string) (any, error)

// dispatch maps every entity type to its field parsers, keyed by element
// name. Built once in init and read-only afterwards.
var dispatch map[*EntityType]map[string]parser

func init() {
	dispatch = make(map[*EntityType]map[string]parser, len(Types))
	for _, t := range Types {
		table := make(map[string]parser, len(t.Fields))
		for _, f := range t.Fields {
			table[f.Name] = parserFor(f)
		}
		dispatch[t] = table
	}
}

func parserFor(f Field) parser {
	switch f.Kind {
	case KindString:
		return parseText
	case KindInt:
		return parseInt
	}
	switch f.Type {
	case IdentificatieGegevens:
		return parseIdentificatie
	case VerwijzingGegevens:
		return parseVerwijzing
	}
	t := f.Type
	return func(el *etree.Element, path []string) (any, error) {
		return parseEntity(el, t, path)
	}
}

// Decode reads an MDTO document and returns its Informatieobject or Bestand.
func Decode(r io.Reader) (*Entity, error) {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, &DecodeError{Msg: err.Error(), Err: err}
	}
	return DecodeDocument(doc)
}

// DecodeBytes decodes an MDTO document held in memory.
func DecodeBytes(data []byte) (*Entity, error) {
	return Decode(bytes.NewReader(data))
}

// DecodeFile decodes the MDTO document at path.
func DecodeFile(path string) (*Entity, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Decode(f)
}

// DecodeDocument decodes an already parsed MDTO document.
func DecodeDocument(doc *etree.Document) (*Entity, error) {
	body, t, err := Unwrap(doc)
	if err != nil {
		return nil, err
	}
	return parseEntity(body, t, []string{body.Tag})
}

// parseEntity dispatches every child of el to the parser registered for
// its tag, then collapses each field by count: none leaves the field
// absent, one stores the value, more store a list in document order.
func parseEntity(el *etree.Element, t *EntityType, path []string) (*Entity, error) {
	table := dispatch[t]
	buckets := make(map[string][]any)

	for _, child := range el.ChildElements() {
		childPath := appendPath(path, child.Tag)
		parse, ok := table[child.Tag]
		if !ok {
			return nil, decodeErr(ErrUnknownElement, childPath, "<%s> is not a field of %s", child.Tag, t.Name)
		}
		value, err := parse(child, childPath)
		if err != nil {
			return nil, err
		}
		buckets[child.Tag] = append(buckets[child.Tag], value)
	}

	e := New(t)
	for _, f := range t.Fields {
		if values := buckets[f.Name]; len(values) > 0 {
			e.values[f.Name] = collapse(f, values)
		}
	}
	return e, nil
}

func collapse(f Field, values []any) any {
	if len(values) == 1 {
		return values[0]
	}
	switch f.Kind {
	case KindString:
		out := make([]string, len(values))
		for i, v := range values {
			out[i] = v.(string)
		}
		return out
	case KindInt:
		out := make([]int, len(values))
		for i, v := range values {
			out[i] = v.(int)
		}
		return out
	}
	out := make([]*Entity, len(values))
	for i, v := range values {
		out[i] = v.(*Entity)
	}
	return out
}

func parseText(el *etree.Element, _ []string) (any, error) {
	return el.Text(), nil
}

func parseInt(el *etree.Element, path []string) (any, error) {
	n, err := strconv.Atoi(strings.TrimSpace(el.Text()))
	if err != nil {
		return nil, decodeErr(ErrMalformedValue, path, "%q is not an integer", el.Text())
	}
	return n, nil
}

// parseIdentificatie reads the two positional children of an
// identificatie block.
func parseIdentificatie(el *etree.Element, path []string) (any, error) {
	children := el.ChildElements()
	if len(children) < 2 ||
		children[0].Tag != "identificatieKenmerk" ||
		children[1].Tag != "identificatieBron" {
		return nil, decodeErr(ErrMissingElement, path,
			"expected <identificatieKenmerk> followed by <identificatieBron>")
	}
	if len(children) > 2 {
		return nil, decodeErr(ErrUnknownElement, appendPath(path, children[2].Tag),
			"<%s> is not a field of %s", children[2].Tag, IdentificatieGegevens.Name)
	}
	return NewIdentificatie(children[0].Text(), children[1].Text()), nil
}

// parseVerwijzing decodes a reference by child count: one child is the
// name, two are the name and its identificatie.
func parseVerwijzing(el *etree.Element, path []string) (any, error) {
	children := el.ChildElements()
	if len(children) == 0 || children[0].Tag != "verwijzingNaam" {
		return nil, decodeErr(ErrMissingElement, path, "expected <verwijzingNaam>")
	}
	switch len(children) {
	case 1:
		return NewVerwijzing(children[0].Text(), nil), nil
	case 2:
		idPath := appendPath(path, children[1].Tag)
		if children[1].Tag != "verwijzingIdentificatie" {
			return nil, decodeErr(ErrUnknownElement, idPath,
				"<%s> is not a field of %s", children[1].Tag, VerwijzingGegevens.Name)
		}
		id, err := parseIdentificatie(children[1], idPath)
		if err != nil {
			return nil, err
		}
		return NewVerwijzing(children[0].Text(), id.(*Entity)), nil
	}
	return nil, decodeErr(ErrUnknownElement, appendPath(path, children[2].Tag),
		"<%s> is not a field of %s", children[2].Tag, VerwijzingGegevens.Name)
}

func appendPath(path []string, name string) []string {
	out := make([]string, len(path), len(path)+1)
	copy(out, path)
	return append(out, name)
}
