// Package mdto reads, writes and validates MDTO (Metagegevens voor
// Duurzaam Toegankelijke Overheidsinformatie) XML documents.
//
// # Overview
//
// MDTO describes archival records with a small, closed set of nested
// "gegevensgroepen" (data groups). This package models every data group as
// an *EntityType: a static table of field descriptors carrying the field
// name, the expected element type and its cardinality. Concrete records are
// *Entity values created with New or one of the typed constructors.
//
// The two top-level variants, Informatieobject and Bestand, share the
// identificatie and naam fields of the MDTO object and are the only types
// that can be written as a document or decoded from one.
//
// # Document Format
//
//	<?xml version="1.0" encoding="UTF-8"?>
//	<MDTO xmlns="https://www.nationaalarchief.nl/mdto" xmlns:xsi="…" xsi:schemaLocation="…">
//		<informatieobject>
//			<identificatie>
//				<identificatieKenmerk>abcd-1234</identificatieKenmerk>
//				<identificatieBron>Corsa</identificatieBron>
//			</identificatie>
//			<naam>Verlenen kapvergunning</naam>
//			…
//		</informatieobject>
//	</MDTO>
//
// Fields are always written in the order the MDTO schema prescribes (see
// Order), regardless of the order in which they were set.
//
// # Validation
//
// Validate walks an entity tree and returns the first structural problem as
// a *ValidationError whose Path names every type and field from the root
// down to the offending value. Names longer than MaxNaamLength and
// malformed language tags are advisories: they are logged, never returned.
//
// # Usage
//
//	obj := mdto.New(mdto.Informatieobject).
//		Set("identificatie", mdto.NewIdentificatie("abcd-1234", "Corsa")).
//		Set("naam", "Verlenen kapvergunning").
//		Set("archiefvormer", mdto.NewVerwijzing("Geldermalsen", nil)).
//		Set("beperkingGebruik", mdto.NewBeperkingGebruik(
//			mdto.NewBegrip("nvt", mdto.NewVerwijzing("geen", nil), ""))).
//		Set("waardering", mdto.NewBegrip("V",
//			mdto.NewVerwijzing("Begrippenlijst Waarderingen MDTO", nil), ""))
//
//	if err := mdto.Save("kapvergunning.mdto.xml", obj, mdto.WithLogger(log)); err != nil {
//		return err
//	}
//
//	obj, err := mdto.DecodeFile("kapvergunning.mdto.xml")
//
// Type descriptors, wire-order tables and decoder dispatch tables are
// read-only after package initialization, so encoding, decoding and
// validation are safe for concurrent use.
package mdto
