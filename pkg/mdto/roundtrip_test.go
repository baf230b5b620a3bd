package mdto

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var roundTripDocuments = []string{
	"informatieobject_minimal.xml",
	"informatieobject_archiefstuk.xml",
	"bestand.xml",
}

func TestRoundTrip_ByteIdentical(t *testing.T) {
	for _, name := range roundTripDocuments {
		t.Run(name, func(t *testing.T) {
			original := readTestdata(t, name)

			obj, err := DecodeBytes(original)
			require.NoError(t, err)

			out, err := Marshal(obj)
			require.NoError(t, err)
			assert.Equal(t, string(original), string(out))
		})
	}
}

func TestRoundTrip_EntityEquality(t *testing.T) {
	for _, obj := range []*Entity{newKapvergunning(), newPDFBestand()} {
		t.Run(obj.Type().Name, func(t *testing.T) {
			data, err := Marshal(obj)
			require.NoError(t, err)

			decoded, err := DecodeBytes(data)
			require.NoError(t, err)
			assert.True(t, decoded.Equal(obj), "decoded %s differs from %s", decoded, obj)
		})
	}
}

func TestRoundTrip_SaveAndDecodeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kapvergunning.xml")
	require.NoError(t, Save(path, newKapvergunning()))

	obj, err := DecodeFile(path)
	require.NoError(t, err)
	assert.True(t, obj.Equal(newKapvergunning()))
}

func TestRoundTrip_Archiefstuk(t *testing.T) {
	obj, err := DecodeBytes(readTestdata(t, "informatieobject_archiefstuk.xml"))
	require.NoError(t, err)

	assert.Len(t, obj.Children("identificatie"), 2)
	assert.Equal(t, []string{"kapvergunning", "kappen"}, obj.Strings("trefwoord"))
	assert.Len(t, obj.Children("event"), 2)
	assert.Equal(t, `Verlening van een vergunning voor het kappen van een linde in de tuin van "Hooigracht 21" & omgeving`,
		obj.Text("omschrijving"))

	locatie := obj.Child("raadpleeglocatie")
	require.NotNil(t, locatie)
	assert.Equal(t, []string{"https://archief.denhaag.nl/stukken/2024-0041"}, locatie.Strings("raadpleeglocatieOnline"))

	beperking := obj.Child("beperkingGebruik")
	require.NotNil(t, beperking)
	assert.Len(t, beperking.Children("beperkingGebruikDocumentatie"), 2)
	assert.Equal(t, "P0D", beperking.Child("beperkingGebruikTermijn").Text("termijnLooptijd"))

	assert.NoError(t, Validate(obj))
}
