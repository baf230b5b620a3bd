package mdto

// Typed constructors for the data groups. Optional string arguments are
// left unset when empty; optional entity arguments when nil.

// NewIdentificatie returns an IdentificatieGegevens.
func NewIdentificatie(kenmerk, bron string) *Entity {
	return New(IdentificatieGegevens).
		Set("identificatieKenmerk", kenmerk).
		Set("identificatieBron", bron)
}

// NewVerwijzing returns a VerwijzingGegevens; identificatie may be nil.
func NewVerwijzing(naam string, identificatie *Entity) *Entity {
	e := New(VerwijzingGegevens).Set("verwijzingNaam", naam)
	return setEntity(e, "verwijzingIdentificatie", identificatie)
}

// NewBegrip returns a BegripGegevens; code may be empty.
func NewBegrip(label string, begrippenlijst *Entity, code string) *Entity {
	e := New(BegripGegevens).Set("begripLabel", label)
	setEntity(e, "begripBegrippenlijst", begrippenlijst)
	return setText(e, "begripCode", code)
}

// NewTermijn returns a TermijnGegevens. Every argument is optional.
func NewTermijn(trigger *Entity, startdatum, looptijd, einddatum string) *Entity {
	e := setEntity(New(TermijnGegevens), "termijnTriggerStartLooptijd", trigger)
	setText(e, "termijnStartdatumLooptijd", startdatum)
	setText(e, "termijnLooptijd", looptijd)
	return setText(e, "termijnEinddatum", einddatum)
}

// NewChecksum returns a ChecksumGegevens.
func NewChecksum(algoritme *Entity, waarde, datum string) *Entity {
	e := setEntity(New(ChecksumGegevens), "checksumAlgoritme", algoritme)
	return e.Set("checksumWaarde", waarde).Set("checksumDatum", datum)
}

// NewBeperkingGebruik returns a BeperkingGebruikGegevens with only its
// mandatory type set.
func NewBeperkingGebruik(typ *Entity) *Entity {
	return setEntity(New(BeperkingGebruikGegevens), "beperkingGebruikType", typ)
}

// NewDekkingInTijd returns a DekkingInTijdGegevens; einddatum may be empty.
func NewDekkingInTijd(typ *Entity, begindatum, einddatum string) *Entity {
	e := setEntity(New(DekkingInTijdGegevens), "dekkingInTijdType", typ)
	e.Set("dekkingInTijdBegindatum", begindatum)
	return setText(e, "dekkingInTijdEinddatum", einddatum)
}

// NewEvent returns an EventGegevens with only its mandatory type set.
func NewEvent(typ *Entity) *Entity {
	return setEntity(New(EventGegevens), "eventType", typ)
}

// NewRaadpleeglocatie returns a RaadpleeglocatieGegevens.
func NewRaadpleeglocatie(fysiek []*Entity, online ...string) *Entity {
	e := New(RaadpleeglocatieGegevens)
	if len(fysiek) > 0 {
		e.Set("raadpleeglocatieFysiek", fysiek)
	}
	if len(online) > 0 {
		e.Set("raadpleeglocatieOnline", online)
	}
	return e
}

// NewGerelateerdInformatieobject returns a GerelateerdInformatieobjectGegevens.
func NewGerelateerdInformatieobject(verwijzing, typeRelatie *Entity) *Entity {
	e := setEntity(New(GerelateerdInformatieobjectGegevens), "gerelateerdInformatieobjectVerwijzing", verwijzing)
	return setEntity(e, "gerelateerdInformatieobjectTypeRelatie", typeRelatie)
}

// NewBetrokkene returns a BetrokkeneGegevens.
func NewBetrokkene(typeRelatie, actor *Entity) *Entity {
	e := setEntity(New(BetrokkeneGegevens), "betrokkeneTypeRelatie", typeRelatie)
	return setEntity(e, "betrokkeneActor", actor)
}

func setText(e *Entity, field, value string) *Entity {
	if value == "" {
		return e
	}
	return e.Set(field, value)
}

func setEntity(e *Entity, field string, value *Entity) *Entity {
	if value == nil {
		return e
	}
	return e.Set(field, value)
}
