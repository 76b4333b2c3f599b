package identify

import (
	"strings"
	"testing"
)

func intp(n int) *int { return &n }

func TestParseHeader_FullHeader(t *testing.T) {
	h := ParseHeader("AB 22 / Zwangsgedanken  1/2")
	if h.ID == nil || *h.ID != 22 {
		t.Errorf("expected id 22, got %v", h.ID)
	}
	if h.Name != "Zwangsgedanken" {
		t.Errorf("expected name %q, got %q", "Zwangsgedanken", h.Name)
	}
	if h.Current == nil || *h.Current != 1 {
		t.Errorf("expected current 1, got %v", h.Current)
	}
	if h.Total == nil || *h.Total != 2 {
		t.Errorf("expected total 2, got %v", h.Total)
	}
}

func TestParseHeader_CaseInsensitiveID(t *testing.T) {
	h := ParseHeader("ab 7 Atemübung")
	if h.ID == nil || *h.ID != 7 {
		t.Errorf("expected id 7, got %v", h.ID)
	}
	if h.Name != "Atemübung" {
		t.Errorf("expected name %q, got %q", "Atemübung", h.Name)
	}
}

func TestParseHeader_PairWithoutID(t *testing.T) {
	// Missing id must not block the other extractions.
	h := ParseHeader("Gedankenprotokoll 2/3")
	if h.ID != nil {
		t.Errorf("expected no id, got %d", *h.ID)
	}
	if h.Name != "Gedankenprotokoll" {
		t.Errorf("expected name %q, got %q", "Gedankenprotokoll", h.Name)
	}
	if h.Current == nil || *h.Current != 2 || h.Total == nil || *h.Total != 3 {
		t.Errorf("expected pair 2/3, got %v/%v", h.Current, h.Total)
	}
}

func TestParseHeader_TrailingBareNumberStripped(t *testing.T) {
	h := ParseHeader("AB 5 Angstskala 12")
	if h.Name != "Angstskala" {
		t.Errorf("expected name %q, got %q", "Angstskala", h.Name)
	}
	if h.Current != nil || h.Total != nil {
		t.Error("bare trailing number must not populate the page pair")
	}
}

func TestParseHeader_NoMatch(t *testing.T) {
	h := ParseHeader("   \x08  ")
	if h.ID != nil || h.Name != "" || h.Current != nil || h.Total != nil {
		t.Errorf("expected empty header, got %+v", h)
	}
}

func TestParseHeader_ControlCharactersInHeader(t *testing.T) {
	h := ParseHeader("AB\x0822\x08/ Zwangsgedanken")
	if h.ID == nil || *h.ID != 22 {
		t.Errorf("expected id 22 after cleaning, got %v", h.ID)
	}
}

func TestHeaderID_HeaderBand(t *testing.T) {
	page := "AB 9 / Notfallplan\nweiterer Text"
	if id := HeaderID(page, DefaultConfig()); id == nil || *id != 9 {
		t.Errorf("expected id 9, got %v", id)
	}
}

func TestHeaderID_FallsBackToFullPage(t *testing.T) {
	// Id appears well below the header band.
	page := strings.Repeat("Zeile ohne Kennung\n", 20) + "AB 14 / Rückfallprophylaxe"
	if id := HeaderID(page, DefaultConfig()); id == nil || *id != 14 {
		t.Errorf("expected fallback to find id 14, got %v", id)
	}
}

func TestHeaderID_None(t *testing.T) {
	if id := HeaderID("Seite ohne Arbeitsblatt", DefaultConfig()); id != nil {
		t.Errorf("expected nil, got %d", *id)
	}
	if id := HeaderID("", DefaultConfig()); id != nil {
		t.Errorf("expected nil for empty page, got %d", *id)
	}
}
