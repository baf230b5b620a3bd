package mdto

import (
	"fmt"
	"strconv"

	"github.com/beevik/etree"
)

// Encode renders e as an element named name, with its fields in wire
// order. Absent fields are omitted; every sequence item becomes a sibling
// element carrying the field name. Encode does not validate.
func Encode(e *Entity, name string) *etree.Element {
	el := etree.NewElement(name)
	for _, f := range Order(e.typ) {
		encodeValue(el, f.Name, e.values[f.Name])
	}
	return el
}

func encodeValue(parent *etree.Element, name string, value any) {
	if isEmpty(value) {
		return
	}
	if items, ok := sequence(value); ok {
		for _, item := range items {
			encodeValue(parent, name, item)
		}
		return
	}

	switch v := value.(type) {
	case *Entity:
		parent.AddChild(Encode(v, name))
	case string:
		parent.CreateElement(name).SetText(v)
	case int:
		parent.CreateElement(name).SetText(strconv.Itoa(v))
	default:
		parent.CreateElement(name).SetText(fmt.Sprint(v))
	}
}

// EncodeFragment renders e as a standalone, tab-indented element without
// XML declaration or MDTO envelope.
func EncodeFragment(e *Entity, name string) (string, error) {
	doc := etree.NewDocument()
	doc.SetRoot(Encode(e, name))
	doc.WriteSettings.CanonicalText = true
	doc.IndentTabs()
	return doc.WriteToString()
}
