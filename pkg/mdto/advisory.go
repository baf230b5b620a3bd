package mdto

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/language"
)

// Advisory is a non-fatal finding about an entity.
type Advisory struct {
	Path []string
	Msg  string
}

// PathString joins the advisory path with dots.
func (a Advisory) PathString() string {
	return strings.Join(a.Path, ".")
}

func (a Advisory) String() string {
	return a.PathString() + ": " + a.Msg
}

// Advisories returns the non-fatal findings for e and its descendants:
// names longer than MaxNaamLength and language values that are not
// well-formed BCP 47 tags.
func Advisories(e *Entity) []Advisory {
	if e == nil || e.typ == nil {
		return nil
	}
	var out []Advisory
	t := e.typ
	for _, f := range t.Fields {
		path := []string{t.Name, f.Name}
		switch {
		case f.Naam:
			for _, naam := range e.Strings(f.Name) {
				if utf8.RuneCountInString(naam) > MaxNaamLength {
					out = append(out, Advisory{
						Path: path,
						Msg:  fmt.Sprintf("%s exceeds recommended length of %d", naam, MaxNaamLength),
					})
				}
			}
		case f.Lang:
			for _, tag := range e.Strings(f.Name) {
				if _, err := language.Parse(tag); err != nil {
					out = append(out, Advisory{
						Path: path,
						Msg:  fmt.Sprintf("%q is not a well-formed language tag", tag),
					})
				}
			}
		case f.Kind == KindEntity:
			for _, child := range e.Children(f.Name) {
				for _, a := range Advisories(child) {
					a.Path = append([]string{t.Name, f.Name}, a.Path...)
					out = append(out, a)
				}
			}
		}
	}
	return out
}
