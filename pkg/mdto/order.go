package mdto

// wireOrder lists the types whose schema order differs from their natural
// declaration order. The schema interleaves optional elements with
// mandatory ones; the descriptor tables keep mandatory fields first.
var wireOrder = map[*EntityType][]string{
	BegripGegevens: {
		"begripLabel",
		"begripCode",
		"begripBegrippenlijst",
	},
	Bestand: {
		"identificatie",
		"naam",
		"omvang",
		"bestandsformaat",
		"checksum",
		"URLBestand",
		"isRepresentatieVan",
	},
	Informatieobject: {
		"identificatie",
		"naam",
		"aggregatieniveau",
		"classificatie",
		"trefwoord",
		"omschrijving",
		"raadpleeglocatie",
		"dekkingInTijd",
		"dekkingInRuimte",
		"taal",
		"event",
		"waardering",
		"bewaartermijn",
		"informatiecategorie",
		"isOnderdeelVan",
		"bevatOnderdeel",
		"heeftRepresentatie",
		"aanvullendeMetagegevens",
		"gerelateerdInformatieobject",
		"archiefvormer",
		"betrokkene",
		"activiteit",
		"beperkingGebruik",
	},
}

// Order returns the fields of t in the order the MDTO schema requires them
// on the wire. Types without an override use their natural order.
func Order(t *EntityType) []Field {
	names, ok := wireOrder[t]
	if !ok {
		return append([]Field(nil), t.Fields...)
	}

	ordered := make([]Field, 0, len(t.Fields))
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		if f, ok := t.Field(name); ok {
			ordered = append(ordered, f)
			seen[name] = true
		}
	}
	// Fields missing from the table keep their natural relative order.
	for _, f := range t.Fields {
		if !seen[f.Name] {
			ordered = append(ordered, f)
		}
	}
	return ordered
}
