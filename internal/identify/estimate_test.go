package identify

import (
	"fmt"
	"testing"
)

func TestLastPage_DifferentHeaderEndsSheet(t *testing.T) {
	idf := testIdentifier([]string{
		"AB 7 / Alpha",
		"Fortsetzung ohne Kennung",
		"AB 9 / Beta",
	})
	if got := idf.LastPage(1, intp(7), 0); got != 2 {
		t.Errorf("expected sheet to end at page 2, got %d", got)
	}
}

func TestLastPage_DifferentHeaderOnStartPage(t *testing.T) {
	// A foreign header on the start page itself clamps to the start page.
	idf := testIdentifier([]string{
		"AB 3 / Alpha",
		"AB 9 / Beta",
	})
	if got := idf.LastPage(2, intp(7), 0); got != 2 {
		t.Errorf("expected clamp to start page 2, got %d", got)
	}
}

func TestLastPage_AbsoluteInterpretation(t *testing.T) {
	pages := make([]string, 50)
	pages[39] = "Seite 40/43"
	idf := testIdentifier(pages)
	if got := idf.LastPage(40, nil, 0); got != 43 {
		t.Errorf("expected absolute end page 43, got %d", got)
	}
}

func TestLastPage_CountInterpretation(t *testing.T) {
	pages := make([]string, 10)
	pages[4] = "Blatt 1/2"
	idf := testIdentifier(pages)
	// "1 of 2" starting at page 5 ends at page 6.
	if got := idf.LastPage(5, nil, 0); got != 6 {
		t.Errorf("expected count-based end page 6, got %d", got)
	}
}

func TestLastPage_CountClampedToDocument(t *testing.T) {
	pages := make([]string, 4)
	pages[2] = "Blatt 1/9"
	idf := testIdentifier(pages)
	if got := idf.LastPage(3, nil, 0); got != 4 {
		t.Errorf("expected clamp to document length 4, got %d", got)
	}
}

func TestLastPage_ExhaustedScanReturnsStart(t *testing.T) {
	idf := testIdentifier([]string{"nichts", "hier", "auch nichts"})
	if got := idf.LastPage(2, intp(5), 0); got != 2 {
		t.Errorf("expected one-page fallback, got %d", got)
	}
}

func TestLastPage_MaxScanWindow(t *testing.T) {
	pages := make([]string, 10)
	pages[5] = "Blatt 1/3" // outside the scan window
	idf := testIdentifier(pages)
	if got := idf.LastPage(2, nil, 3); got != 2 {
		t.Errorf("expected window-limited scan to fall back to start, got %d", got)
	}
}

func TestLastPage_AlwaysWithinBounds(t *testing.T) {
	docs := [][]string{
		{"AB 1 / A 1/2", "x", "AB 2 / B"},
		{"Blatt 3/1", "Blatt 9/9"},
		{"", "", "", "40/2"},
		{"AB 4 / D 2/2"},
	}
	for di, pages := range docs {
		idf := testIdentifier(pages)
		for start := 1; start <= len(pages); start++ {
			for _, id := range []*int{nil, intp(1), intp(4)} {
				got := idf.LastPage(start, id, 0)
				if got < start || got > len(pages) {
					label := "nil"
					if id != nil {
						label = fmt.Sprintf("%d", *id)
					}
					t.Errorf("doc %d start %d id %s: result %d outside [%d, %d]",
						di, start, label, got, start, len(pages))
				}
			}
		}
	}
}
