package mdto

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// newKapvergunning returns an informatieobject with only its mandatory
// fields set, in the order a caller would naturally write them.
func newKapvergunning() *Entity {
	return New(Informatieobject).
		Set("naam", "Verlenen kapvergunning").
		Set("identificatie", NewIdentificatie("abcd-1234", "Corsa (Geldermalsen)")).
		Set("archiefvormer", NewVerwijzing("Geldermalsen", nil)).
		Set("beperkingGebruik", NewBeperkingGebruik(
			NewBegrip("nvt", NewVerwijzing("geen", nil), ""))).
		Set("waardering", NewBegrip("V", NewVerwijzing("Begrippenlijst Waarderingen MDTO", nil), ""))
}

func newPDFBestand() *Entity {
	return New(Bestand).
		Set("identificatie", NewIdentificatie("0090101-bestand", "Gemeente Den Haag Zaaksysteem")).
		Set("naam", "0090101KapvergunningHooigracht.pdf").
		Set("omvang", 1282739).
		Set("bestandsformaat", NewBegrip("Acrobat PDF/A - Portable Document Format",
			NewVerwijzing(PronomRegister, nil), "fmt/354")).
		Set("checksum", NewChecksum(
			NewBegrip("SHA-256", NewVerwijzing(ChecksumBegrippenlijst, nil), ""),
			"8f2ab1a9aa5cbf4e6e0ffb6c5f1f3fa2b4e1e1b3d4a6e2c9f3a0b8c7d6e5f4a3",
			"2024-03-02T10:15:00")).
		Set("isRepresentatieVan", NewVerwijzing("Verlenen kapvergunning Hooigracht 21 Den Haag",
			NewIdentificatie("Archiefstuk-2024-0041", "Gemeente Den Haag Zaaksysteem"))).
		Set("URLBestand", "https://archief.denhaag.nl/bestanden/0090101KapvergunningHooigracht.pdf")
}

func readTestdata(t *testing.T, name string) []byte {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	return data
}
