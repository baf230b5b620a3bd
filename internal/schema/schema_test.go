package schema

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guidodo/mdto/pkg/mdto"
)

const structureXSD = "testdata/mdto-structure.xsd"

func loadChecker(t *testing.T) *Checker {
	t.Helper()
	c, err := Load(structureXSD)
	require.NoError(t, err)
	return c
}

func TestCheck_PackageDocuments(t *testing.T) {
	c := loadChecker(t)

	for _, name := range []string{
		"informatieobject_minimal.xml",
		"informatieobject_archiefstuk.xml",
		"bestand.xml",
	} {
		t.Run(name, func(t *testing.T) {
			data, err := os.ReadFile(filepath.Join("..", "..", "pkg", "mdto", "testdata", name))
			require.NoError(t, err)
			assert.NoError(t, c.Check(data))
		})
	}
}

func TestCheck_EncoderOutputFollowsWireOrder(t *testing.T) {
	c := loadChecker(t)

	// Fields set in an order that differs from the schema sequence.
	obj := mdto.New(mdto.Informatieobject).
		Set("beperkingGebruik", mdto.NewBeperkingGebruik(
			mdto.NewBegrip("nvt", mdto.NewVerwijzing("geen", nil), ""))).
		Set("archiefvormer", mdto.NewVerwijzing("Geldermalsen", nil)).
		Set("waardering", mdto.NewBegrip("V", mdto.NewVerwijzing("Begrippenlijst Waarderingen MDTO", nil), "")).
		Set("trefwoord", []string{"kapvergunning", "kappen"}).
		Set("aggregatieniveau", mdto.NewBegrip("Archiefstuk",
			mdto.NewVerwijzing("Begrippenlijst Aggregatieniveaus MDTO", nil), "AS")).
		Set("naam", "Verlenen kapvergunning").
		Set("identificatie", mdto.NewIdentificatie("abcd-1234", "Corsa (Geldermalsen)"))

	data, err := mdto.Marshal(obj)
	require.NoError(t, err)
	assert.NoError(t, c.Check(data))
}

func TestCheck_ReportsMisorderedDocument(t *testing.T) {
	c := loadChecker(t)

	data, err := mdto.Marshal(mdto.New(mdto.Informatieobject).
		Set("identificatie", mdto.NewIdentificatie("abcd-1234", "Corsa (Geldermalsen)")).
		Set("naam", "Verlenen kapvergunning").
		Set("waardering", mdto.NewBegrip("V", mdto.NewVerwijzing("Begrippenlijst Waarderingen MDTO", nil), "")).
		Set("archiefvormer", mdto.NewVerwijzing("Geldermalsen", nil)).
		Set("beperkingGebruik", mdto.NewBeperkingGebruik(
			mdto.NewBegrip("nvt", mdto.NewVerwijzing("geen", nil), ""))))
	require.NoError(t, err)

	// Move <naam> in front of <identificatie>.
	doc := string(data)
	naam := "\t\t<naam>Verlenen kapvergunning</naam>\n"
	doc = strings.Replace(doc, naam, "", 1)
	doc = strings.Replace(doc, "\t<informatieobject>\n", "\t<informatieobject>\n"+naam, 1)

	err = c.Check([]byte(doc))
	require.Error(t, err)
	assert.ErrorIs(t, err, mdto.ErrSchemaViolation)
	assert.NotEmpty(t, Violations(err))
	assert.Equal(t, mdto.ExitSchemaError, mdto.ExitCodeForError(err))
}

func TestCheck_MalformedXML(t *testing.T) {
	err := loadChecker(t).Check([]byte("<MDTO>"))
	assert.ErrorIs(t, err, mdto.ErrDecode)
}

func TestLoad_MissingSchema(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.xsd"))
	require.Error(t, err)
	assert.ErrorIs(t, err, mdto.ErrInvalidConfig)
}
