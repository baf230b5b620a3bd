package mdto

// Data groups, in natural declaration order: mandatory fields first,
// optional fields after. Wire order overrides live in order.go.
var (
	IdentificatieGegevens = &EntityType{
		Name: "IdentificatieGegevens",
		Fields: []Field{
			text("identificatieKenmerk", One),
			text("identificatieBron", One),
		},
	}

	VerwijzingGegevens = &EntityType{
		Name: "VerwijzingGegevens",
		Fields: []Field{
			{Name: "verwijzingNaam", Kind: KindString, Card: One, Naam: true},
			group("verwijzingIdentificatie", IdentificatieGegevens, OptionalOne),
		},
	}

	BegripGegevens = &EntityType{
		Name: "BegripGegevens",
		Fields: []Field{
			text("begripLabel", One),
			group("begripBegrippenlijst", VerwijzingGegevens, One),
			text("begripCode", OptionalOne),
		},
	}

	TermijnGegevens = &EntityType{
		Name: "TermijnGegevens",
		Fields: []Field{
			group("termijnTriggerStartLooptijd", BegripGegevens, OptionalOne),
			text("termijnStartdatumLooptijd", OptionalOne),
			text("termijnLooptijd", OptionalOne),
			text("termijnEinddatum", OptionalOne),
		},
	}

	ChecksumGegevens = &EntityType{
		Name: "ChecksumGegevens",
		Fields: []Field{
			group("checksumAlgoritme", BegripGegevens, One),
			text("checksumWaarde", One),
			text("checksumDatum", One),
		},
	}

	BeperkingGebruikGegevens = &EntityType{
		Name: "BeperkingGebruikGegevens",
		Fields: []Field{
			group("beperkingGebruikType", BegripGegevens, One),
			text("beperkingGebruikNadereBeschrijving", OptionalOne),
			group("beperkingGebruikDocumentatie", VerwijzingGegevens, OptionalMany),
			group("beperkingGebruikTermijn", TermijnGegevens, OptionalOne),
		},
	}

	DekkingInTijdGegevens = &EntityType{
		Name: "DekkingInTijdGegevens",
		Fields: []Field{
			group("dekkingInTijdType", BegripGegevens, One),
			text("dekkingInTijdBegindatum", One),
			text("dekkingInTijdEinddatum", OptionalOne),
		},
	}

	EventGegevens = &EntityType{
		Name: "EventGegevens",
		Fields: []Field{
			group("eventType", BegripGegevens, One),
			text("eventTijd", OptionalOne),
			group("eventVerantwoordelijkeActor", VerwijzingGegevens, OptionalOne),
			text("eventResultaat", OptionalOne),
		},
	}

	RaadpleeglocatieGegevens = &EntityType{
		Name: "RaadpleeglocatieGegevens",
		Fields: []Field{
			group("raadpleeglocatieFysiek", VerwijzingGegevens, OptionalMany),
			{Name: "raadpleeglocatieOnline", Kind: KindString, Card: OptionalMany, URL: true},
		},
	}

	GerelateerdInformatieobjectGegevens = &EntityType{
		Name: "GerelateerdInformatieobjectGegevens",
		Fields: []Field{
			group("gerelateerdInformatieobjectVerwijzing", VerwijzingGegevens, One),
			group("gerelateerdInformatieobjectTypeRelatie", BegripGegevens, One),
		},
	}

	BetrokkeneGegevens = &EntityType{
		Name: "BetrokkeneGegevens",
		Fields: []Field{
			group("betrokkeneTypeRelatie", BegripGegevens, One),
			group("betrokkeneActor", VerwijzingGegevens, One),
		},
	}
)

// Top-level variants. Both start with the shared object fields.
var (
	Informatieobject = &EntityType{
		Name: "Informatieobject",
		Root: "informatieobject",
		Fields: withObjectFields(
			group("archiefvormer", VerwijzingGegevens, Many),
			group("beperkingGebruik", BeperkingGebruikGegevens, Many),
			group("waardering", BegripGegevens, One),
			group("aggregatieniveau", BegripGegevens, OptionalOne),
			group("classificatie", BegripGegevens, OptionalMany),
			text("trefwoord", OptionalMany),
			text("omschrijving", OptionalMany),
			group("raadpleeglocatie", RaadpleeglocatieGegevens, OptionalMany),
			group("dekkingInTijd", DekkingInTijdGegevens, OptionalMany),
			group("dekkingInRuimte", VerwijzingGegevens, OptionalMany),
			Field{Name: "taal", Kind: KindString, Card: OptionalMany, Lang: true},
			group("event", EventGegevens, OptionalMany),
			group("bewaartermijn", TermijnGegevens, OptionalOne),
			group("informatiecategorie", BegripGegevens, OptionalOne),
			group("isOnderdeelVan", VerwijzingGegevens, OptionalMany),
			group("bevatOnderdeel", VerwijzingGegevens, OptionalMany),
			group("heeftRepresentatie", VerwijzingGegevens, OptionalMany),
			group("aanvullendeMetagegevens", VerwijzingGegevens, OptionalMany),
			group("gerelateerdInformatieobject", GerelateerdInformatieobjectGegevens, OptionalMany),
			group("betrokkene", BetrokkeneGegevens, OptionalMany),
			group("activiteit", VerwijzingGegevens, OptionalMany),
		),
	}

	Bestand = &EntityType{
		Name: "Bestand",
		Root: "bestand",
		Fields: withObjectFields(
			integer("omvang", One),
			group("bestandsformaat", BegripGegevens, One),
			group("checksum", ChecksumGegevens, Many),
			group("isRepresentatieVan", VerwijzingGegevens, One),
			Field{Name: "URLBestand", Kind: KindString, Card: OptionalOne, URL: true},
		),
	}
)

// Types lists every entity type, data groups first.
var Types = []*EntityType{
	IdentificatieGegevens,
	VerwijzingGegevens,
	BegripGegevens,
	TermijnGegevens,
	ChecksumGegevens,
	BeperkingGebruikGegevens,
	DekkingInTijdGegevens,
	EventGegevens,
	RaadpleeglocatieGegevens,
	GerelateerdInformatieobjectGegevens,
	BetrokkeneGegevens,
	Informatieobject,
	Bestand,
}

// withObjectFields prepends the fields every MDTO object carries.
func withObjectFields(fields ...Field) []Field {
	object := []Field{
		group("identificatie", IdentificatieGegevens, Many),
		{Name: "naam", Kind: KindString, Card: One, Naam: true},
	}
	return append(object, fields...)
}

// TopLevelByRoot returns the top-level variant written as element name,
// or nil.
func TopLevelByRoot(name string) *EntityType {
	switch name {
	case Informatieobject.Root:
		return Informatieobject
	case Bestand.Root:
		return Bestand
	}
	return nil
}

// TypeByName returns the entity type with the given name, or nil.
func TypeByName(name string) *EntityType {
	for _, t := range Types {
		if t.Name == name {
			return t
		}
	}
	return nil
}
