package identify

import (
	"reflect"
	"testing"
)

func TestHeaderBlocks_ContiguousLabels(t *testing.T) {
	pages := make([]string, 10)
	pages[2] = "AB 7 Etwas"
	pages[3] = "AB 7 Etwas"
	pages[4] = "AB 7 Etwas"
	idf := testIdentifier(pages)

	blocks := idf.headerBlocks(idf.headerLabels())
	want := []Block{{ID: 7, Start: 3, End: 5}}
	if !reflect.DeepEqual(blocks, want) {
		t.Errorf("expected %+v, got %+v", want, blocks)
	}
}

func TestHeaderBlocks_PagePairOverridesContiguity(t *testing.T) {
	pages := make([]string, 8)
	pages[2] = "AB 7 / Übung 1/3"
	pages[3] = "AB 8 / Anderes Blatt" // swallowed by the computed range
	pages[4] = ""
	idf := testIdentifier(pages)

	blocks := idf.headerBlocks(idf.headerLabels())
	want := []Block{{ID: 7, Start: 3, End: 5}}
	if !reflect.DeepEqual(blocks, want) {
		t.Errorf("expected %+v, got %+v", want, blocks)
	}
}

func TestHeaderBlocks_SeparateIDsSeparateBlocks(t *testing.T) {
	pages := []string{
		"AB 1 Alpha",
		"AB 1 Alpha",
		"AB 2 Beta",
		"",
		"AB 3 Gamma",
	}
	idf := testIdentifier(pages)
	blocks := idf.headerBlocks(idf.headerLabels())
	want := []Block{
		{ID: 1, Start: 1, End: 2},
		{ID: 2, Start: 3, End: 3},
		{ID: 3, Start: 5, End: 5},
	}
	if !reflect.DeepEqual(blocks, want) {
		t.Errorf("expected %+v, got %+v", want, blocks)
	}
}

func TestHeaderLabels_DeepIDStillLabeled(t *testing.T) {
	// The id sits far below the header band; the full-page fallback
	// still picks it up.
	deep := "Zeile\nZeile\nZeile\nZeile\nZeile\nZeile\nZeile\nZeile\nZeile\nZeile\nZeile\nZeile\nZeile\nAB 5 / Skala"
	pages := []string{"", deep, ""}
	idf := testIdentifier(pages)

	labels := idf.headerLabels()
	if labels[1] != 5 {
		t.Errorf("expected page 2 labeled with id 5, got %v", labels)
	}
	if labels[0] != 0 || labels[2] != 0 {
		t.Errorf("expected empty pages unlabeled, got %v", labels)
	}
}

func TestRecordBlocks_SubsetSkipped(t *testing.T) {
	pages := make([]string, 6)
	pages[2] = "AB 7 Etwas"
	pages[3] = "AB 7 Etwas"
	idf := testIdentifier(pages)
	idf.doc.AddSheet(7, "Zwangsgedanken", []int{3, 4})

	idf.recordBlocks([]Block{{ID: 7, Start: 3, End: 4}}, nil)

	if names := idf.doc.NamesForID(7); len(names) != 1 {
		t.Errorf("subset block must not add a second name, got %v", names)
	}
}

func TestRecordBlocks_NamePreference(t *testing.T) {
	pages := make([]string, 6)
	pages[2] = "AB 7 / Atemübung"
	idf := testIdentifier(pages)

	// TOC name wins over everything else.
	idf.recordBlocks([]Block{{ID: 7, Start: 3, End: 3}}, map[int]string{7: "Aus dem Inhaltsverzeichnis"})
	if pagesGot := idf.doc.Pages(7, "Aus dem Inhaltsverzeichnis"); !reflect.DeepEqual(pagesGot, []int{3}) {
		t.Errorf("expected TOC name to win, model: %v", idf.doc.Sheets())
	}
}

func TestRecordBlocks_LocalizedNameSearch(t *testing.T) {
	pages := make([]string, 6)
	pages[2] = "AB 7 / Atemübung"
	idf := testIdentifier(pages)

	idf.recordBlocks([]Block{{ID: 7, Start: 3, End: 3}}, nil)
	if pagesGot := idf.doc.Pages(7, "Atemübung"); !reflect.DeepEqual(pagesGot, []int{3}) {
		t.Errorf("expected localized name search to find Atemübung, model: %v", idf.doc.Sheets())
	}
}

func TestRecordBlocks_PlaceholderName(t *testing.T) {
	pages := make([]string, 6)
	pages[2] = "AB 7 Atemübung" // no separator, localized search cannot pick a name
	idf := testIdentifier(pages)

	idf.recordBlocks([]Block{{ID: 7, Start: 3, End: 3}}, nil)
	if pagesGot := idf.doc.Pages(7, "AB 7"); !reflect.DeepEqual(pagesGot, []int{3}) {
		t.Errorf("expected placeholder name, model: %v", idf.doc.Sheets())
	}
}

func TestRecordBlocks_Idempotent(t *testing.T) {
	pages := make([]string, 8)
	pages[3] = "AB 2 / Gedankenprotokoll"
	pages[4] = "AB 2 / Gedankenprotokoll"
	idf := testIdentifier(pages)

	blocks := idf.headerBlocks(idf.headerLabels())
	idf.recordBlocks(blocks, nil)
	first := idf.doc.Sheets()

	idf.recordBlocks(blocks, nil)
	second := idf.doc.Sheets()

	if !reflect.DeepEqual(first, second) {
		t.Errorf("second run changed the model: %v -> %v", first, second)
	}
}
