package bestand

import (
	"io"
	"strings"

	"github.com/beevik/etree"

	"github.com/guidodo/mdto/pkg/mdto"
)

const (
	kenmerkPath = "//informatieobject/identificatie/identificatieKenmerk"
	bronPath    = "//informatieobject/identificatie/identificatieBron"
	naamPath    = "//informatieobject/naam"
)

// DetectVerwijzing reads an informatieobject document from r and returns a
// VerwijzingGegevens pointing at it: verwijzingNaam is the object's naam,
// verwijzingIdentificatie its first identificatie.
func DetectVerwijzing(r io.Reader) (*mdto.Entity, error) {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, &mdto.DecodeError{Msg: err.Error(), Err: err}
	}

	kenmerk := doc.FindElement(kenmerkPath)
	bron := doc.FindElement(bronPath)
	if kenmerk == nil || bron == nil {
		return nil, &mdto.DecodeError{
			Path: []string{"informatieobject", "identificatie"},
			Msg:  "failed to detect <identificatie>",
			Err:  mdto.ErrMissingElement,
		}
	}
	naam := doc.FindElement(naamPath)
	if naam == nil {
		return nil, &mdto.DecodeError{
			Path: []string{"informatieobject", "naam"},
			Msg:  "failed to detect <naam>",
			Err:  mdto.ErrMissingElement,
		}
	}

	identificatie := mdto.NewIdentificatie(strings.TrimSpace(kenmerk.Text()), strings.TrimSpace(bron.Text()))
	return mdto.NewVerwijzing(strings.TrimSpace(naam.Text()), identificatie), nil
}
