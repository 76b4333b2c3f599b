package pages

import (
	"strings"
	"testing"
)

func TestTextLoader_FormFeedsDelimitPages(t *testing.T) {
	input := "Seite eins\fSeite zwei\fSeite drei"
	l := &TextLoader{}
	got, err := l.Load(strings.NewReader(input), "workbook.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 pages, got %d: %v", len(got), got)
	}
	if got[1] != "Seite zwei" {
		t.Errorf("expected page 2 %q, got %q", "Seite zwei", got[1])
	}
}

func TestTextLoader_SinglePage(t *testing.T) {
	l := &TextLoader{}
	got, err := l.Load(strings.NewReader("nur eine Seite"), "one.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0] != "nur eine Seite" {
		t.Errorf("expected a single page, got %v", got)
	}
}

func TestTextLoader_TrailingFormFeed(t *testing.T) {
	l := &TextLoader{}
	got, err := l.Load(strings.NewReader("a\fb\f"), "two.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("trailing form feed must not add a page, got %v", got)
	}
}

func TestTextLoader_BlankInput(t *testing.T) {
	l := &TextLoader{}
	got, err := l.Load(strings.NewReader("  \n "), "blank.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected no pages for blank input, got %v", got)
	}
}

func TestTextLoader_KeepsEmptyMiddlePage(t *testing.T) {
	l := &TextLoader{}
	got, err := l.Load(strings.NewReader("a\f\fc"), "gap.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 3 || got[1] != "" {
		t.Errorf("empty middle page must keep its slot, got %v", got)
	}
}
