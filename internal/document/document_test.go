package document

import (
	"reflect"
	"testing"
)

func TestAddSheet_MergeIsSetUnion(t *testing.T) {
	d := New("workbook", "/data/workbook.pdf")
	d.AddSheet(7, "Angstskala", []int{12, 13, 14})
	d.AddSheet(7, "Angstskala", []int{13, 14, 15})

	want := []int{12, 13, 14, 15}
	if got := d.Pages(7, "Angstskala"); !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestAddSheet_Idempotent(t *testing.T) {
	d := New("workbook", "")
	d.AddSheet(3, "Vermeidungsliste", []int{5, 6})
	before := d.Pages(3, "Vermeidungsliste")
	d.AddSheet(3, "Vermeidungsliste", []int{5, 6})
	after := d.Pages(3, "Vermeidungsliste")
	if !reflect.DeepEqual(before, after) {
		t.Errorf("re-adding the same pages changed the list: %v -> %v", before, after)
	}
}

func TestAddSheet_NormalizesForAllInsertionOrders(t *testing.T) {
	orders := [][]int{
		{3, 1, 2},
		{2, 2, 1, 3},
		{1, 3, 2, 1},
	}
	for _, order := range orders {
		d := New("workbook", "")
		d.AddSheet(1, "Skala", order)
		got := d.Pages(1, "Skala")
		if !reflect.DeepEqual(got, []int{1, 2, 3}) {
			t.Errorf("order %v: expected [1 2 3], got %v", order, got)
		}
	}
}

func TestAddSheet_DropsInvalidPages(t *testing.T) {
	d := New("workbook", "")
	d.AddSheet(2, "Protokoll", []int{0, -4, 9})
	if got := d.Pages(2, "Protokoll"); !reflect.DeepEqual(got, []int{9}) {
		t.Errorf("expected [9], got %v", got)
	}
}

func TestAddSheet_EmptyNameIgnored(t *testing.T) {
	d := New("workbook", "")
	d.AddSheet(4, "", []int{1})
	if d.Len() != 0 {
		t.Errorf("expected no buckets, got %d", d.Len())
	}
}

func TestAddSheet_KeepsEmptyPageList(t *testing.T) {
	d := New("workbook", "")
	d.AddSheet(9, "Gedankenprotokoll", nil)
	if !d.HasID(9) {
		t.Fatal("expected id 9 to be recorded even without pages")
	}
	if got := d.Pages(9, "Gedankenprotokoll"); len(got) != 0 {
		t.Errorf("expected empty page list, got %v", got)
	}
}

func TestAddSheet_NegativeIDGoesToUnknownBucket(t *testing.T) {
	d := New("workbook", "")
	d.AddSheet(-3, "Kaputt", []int{2})
	if !d.HasID(0) {
		t.Error("expected negative id to land in bucket 0")
	}
}

func TestCoerceID(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"7", 7},
		{"  12 ", 12},
		{"3a", 3},
		{"22b Nachtrag", 22},
		{"abc", 0},
		{"", 0},
		{"   ", 0},
		{"-5", 0},
		{"0", 0},
	}
	for _, tt := range tests {
		if got := CoerceID(tt.in); got != tt.want {
			t.Errorf("CoerceID(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestPagesForID_UnionAcrossNames(t *testing.T) {
	d := New("workbook", "")
	d.AddSheet(5, "Angstskala", []int{12, 13})
	d.AddSheet(5, "Angstskala (Wiederholung)", []int{13, 20})
	want := []int{12, 13, 20}
	if got := d.PagesForID(5); !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestPages_ReturnsCopy(t *testing.T) {
	d := New("workbook", "")
	d.AddSheet(1, "Skala", []int{1, 2})
	got := d.Pages(1, "Skala")
	got[0] = 99
	if fresh := d.Pages(1, "Skala"); fresh[0] != 1 {
		t.Errorf("mutating returned slice leaked into the model: %v", fresh)
	}
}

func TestIDs_Sorted(t *testing.T) {
	d := New("workbook", "")
	d.AddSheet(9, "C", nil)
	d.AddSheet(2, "A", nil)
	d.AddSheet(5, "B", nil)
	if got := d.IDs(); !reflect.DeepEqual(got, []int{2, 5, 9}) {
		t.Errorf("expected [2 5 9], got %v", got)
	}
}
