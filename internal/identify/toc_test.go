package identify

import (
	"reflect"
	"testing"
)

func TestTOCEntries_NamesWithAttachedPages(t *testing.T) {
	idf := testIdentifier([]string{
		"Übersicht Arbeitsblätter\nAB 5 Angstskala 12 AB 6 Vermeidungsliste 15",
	})
	entries := idf.tocEntries()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d: %+v", len(entries), entries)
	}
	if entries[0].RawID != "5" || entries[0].Name != "Angstskala" || entries[0].Page == nil || *entries[0].Page != 12 {
		t.Errorf("entry 0: got %+v", entries[0])
	}
	if entries[1].RawID != "6" || entries[1].Name != "Vermeidungsliste" || entries[1].Page == nil || *entries[1].Page != 15 {
		t.Errorf("entry 1: got %+v", entries[1])
	}
}

func TestTOCEntries_SeparatorAfterID(t *testing.T) {
	idf := testIdentifier([]string{
		"Übersicht Arbeitsblätter\nAB 22 / Zwangsgedanken 40",
	})
	entries := idf.tocEntries()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].Name != "Zwangsgedanken" || entries[0].Page == nil || *entries[0].Page != 40 {
		t.Errorf("got %+v", entries[0])
	}
}

func TestTOCEntries_RegionBoundedByEndMarker(t *testing.T) {
	idf := testIdentifier([]string{
		"Übersicht Arbeitsblätter\nAB 1 Erstes Blatt 4",
		"Übersicht Informationsblätter\nAB 99 Nicht mehr im TOC 77",
	})
	entries := idf.tocEntries()
	// The end-marker page itself still belongs to the region.
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].RawID != "1" {
		t.Errorf("expected first entry id 1, got %q", entries[0].RawID)
	}
}

func TestTOCEntries_NoMarkers(t *testing.T) {
	idf := testIdentifier([]string{"AB 5 Angstskala 12"})
	if entries := idf.tocEntries(); entries != nil {
		t.Errorf("expected no entries without a TOC region, got %+v", entries)
	}
}

func TestTOCEntries_WindowCapWithoutEndMarker(t *testing.T) {
	pages := make([]string, 20)
	pages[0] = "Übersicht Arbeitsblätter\nAB 3 Gedankenprotokoll 9"
	pages[12] = "AB 77 Weit hinter dem Fenster 99"
	idf := testIdentifier(pages)
	entries := idf.tocEntries()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry inside the capped window, got %d", len(entries))
	}
	if entries[0].RawID != "3" {
		t.Errorf("expected id 3, got %q", entries[0].RawID)
	}
}

func TestResolveEntryPages_DefersToLocator(t *testing.T) {
	idf := testIdentifier([]string{
		"Übersicht Arbeitsblätter\nAB 4 Atemübung",
		"irrelevant",
		"AB 4 / Atemübung",
	})
	entries := []Entry{{RawID: "4", Name: "Atemübung"}}
	idf.resolveEntryPages(entries)
	// The ordered header scan hits the TOC page first: first match wins.
	if entries[0].Page == nil || *entries[0].Page != 1 {
		t.Errorf("expected locator to resolve page 1, got %v", entries[0].Page)
	}
}

func TestResolveEntryPages_ByNameWithoutID(t *testing.T) {
	idf := testIdentifier([]string{
		"Einleitung",
		"Das Blatt Atemübung für zu Hause",
	})
	entries := []Entry{{RawID: "0", Name: "Atemübung"}}
	idf.resolveEntryPages(entries)
	if entries[0].Page == nil || *entries[0].Page != 2 {
		t.Errorf("expected name search to resolve page 2, got %v", entries[0].Page)
	}
}

func TestRecordTOCEntries_UnresolvedKeepsName(t *testing.T) {
	idf := testIdentifier([]string{"leere Seite"})
	idf.recordTOCEntries([]Entry{{RawID: "8", Name: "Verschollenes Blatt"}})

	doc := idf.doc
	if !doc.HasID(8) {
		t.Fatal("entry without pages must still be recorded")
	}
	if pages := doc.Pages(8, "Verschollenes Blatt"); len(pages) != 0 {
		t.Errorf("expected empty page list, got %v", pages)
	}
}

func TestRecordTOCEntries_ExpandsToRange(t *testing.T) {
	pages := make([]string, 15)
	pages[0] = "Übersicht Arbeitsblätter\nAB 22 Zwangsgedanken 11"
	pages[10] = "AB 22 / Zwangsgedanken 1/2"
	idf := testIdentifier(pages)

	entries := idf.tocEntries()
	idf.resolveEntryPages(entries)
	idf.recordTOCEntries(entries)

	got := idf.doc.Pages(22, "Zwangsgedanken")
	if !reflect.DeepEqual(got, []int{11, 12}) {
		t.Errorf("expected pages [11 12], got %v", got)
	}
}
