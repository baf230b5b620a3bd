package mdto

import (
	"fmt"

	"github.com/beevik/etree"
)

// Wrap places a top-level entity inside the <MDTO> document envelope and
// indents the tree with tabs. Wrap does not validate.
func Wrap(e *Entity) (*etree.Document, error) {
	if e == nil || e.typ == nil || !e.typ.TopLevel() {
		return nil, fmt.Errorf("%w: %s", ErrNotTopLevel, typeName(e))
	}
	return wrapRoot(Encode(e, e.typ.Root)), nil
}

func wrapRoot(body *etree.Element) *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement(RootElement)
	root.CreateAttr("xmlns", Namespace)
	root.CreateAttr("xmlns:xsi", XSINamespace)
	root.CreateAttr("xsi:schemaLocation", SchemaLocation)
	root.AddChild(body)

	doc.WriteSettings.CanonicalText = true
	doc.IndentTabs()
	return doc
}

// Unwrap returns the variant element of an MDTO document and its type.
func Unwrap(doc *etree.Document) (*etree.Element, *EntityType, error) {
	root := doc.Root()
	if root == nil {
		return nil, nil, decodeErr(ErrUnexpectedRoot, nil, "document has no root element")
	}
	if root.Tag != RootElement {
		return nil, nil, decodeErr(ErrUnexpectedRoot, nil, "expected <%s> root, found <%s>", RootElement, root.Tag)
	}

	children := root.ChildElements()
	if len(children) == 0 {
		return nil, nil, decodeErr(ErrUnexpectedRoot, []string{RootElement},
			"expected <%s> or <%s>, found no child element", Informatieobject.Root, Bestand.Root)
	}
	body := children[0]
	t := TopLevelByRoot(body.Tag)
	if t == nil {
		return nil, nil, decodeErr(ErrUnexpectedRoot, []string{RootElement},
			"unexpected first child <%s>: expected <%s> or <%s>", body.Tag, Informatieobject.Root, Bestand.Root)
	}
	if len(children) > 1 {
		extra := children[1]
		return nil, nil, decodeErr(ErrUnknownElement, []string{RootElement, extra.Tag},
			"<%s> holds a single object, found <%s> after <%s>", RootElement, extra.Tag, body.Tag)
	}
	return body, t, nil
}
