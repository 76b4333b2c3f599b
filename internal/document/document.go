// Package document holds the normalized model of a workbook: which page
// ranges belong to which named working sheet, keyed by the "AB <n>" id.
package document

import (
	"sort"
	"strconv"
	"strings"
)

// Document maps working-sheet ids to named, sorted page lists.
// Id 0 is the bucket for identifiers that could not be resolved.
// All mutation goes through AddSheet so the page lists stay strictly
// ascending and free of duplicates.
type Document struct {
	Filename   string
	SourcePath string

	sheets map[int]map[string][]int
}

// New creates an empty document model for the given source file.
func New(filename, sourcePath string) *Document {
	return &Document{
		Filename:   filename,
		SourcePath: sourcePath,
		sheets:     make(map[int]map[string][]int),
	}
}

// CoerceID parses a raw sheet identifier. Non-numeric input falls back to a
// leading run of digits; anything else lands in the unknown bucket 0.
func CoerceID(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	if n, err := strconv.Atoi(s); err == nil {
		if n < 0 {
			return 0
		}
		return n
	}
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i > 0 {
		if n, err := strconv.Atoi(s[:i]); err == nil {
			return n
		}
	}
	return 0
}

// normalizePages drops non-positive pages, removes duplicates and sorts.
func normalizePages(pages []int) []int {
	seen := make(map[int]bool, len(pages))
	out := make([]int, 0, len(pages))
	for _, p := range pages {
		if p > 0 && !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}
	sort.Ints(out)
	return out
}

// AddSheet stores pages under sheets[id][name], unioning with any existing
// entry. Re-adding the same pages is a no-op. An empty page list is kept so
// an identified name is never dropped. Empty names are ignored.
func (d *Document) AddSheet(id int, name string, pages []int) {
	if name == "" {
		return
	}
	if id < 0 {
		id = 0
	}
	newPages := normalizePages(pages)

	bucket := d.sheets[id]
	if bucket == nil {
		bucket = make(map[string][]int)
		d.sheets[id] = bucket
	}
	if existing, ok := bucket[name]; ok {
		bucket[name] = normalizePages(append(existing, newPages...))
		return
	}
	bucket[name] = newPages
}

// Pages returns a copy of the page list stored for (id, name).
func (d *Document) Pages(id int, name string) []int {
	pages := d.sheets[id][name]
	out := make([]int, len(pages))
	copy(out, pages)
	return out
}

// PagesForID returns the sorted union of all pages stored under an id,
// across every name in its bucket.
func (d *Document) PagesForID(id int) []int {
	var all []int
	for _, pages := range d.sheets[id] {
		all = append(all, pages...)
	}
	return normalizePages(all)
}

// HasID reports whether any sheet is stored under the id.
func (d *Document) HasID(id int) bool {
	return len(d.sheets[id]) > 0
}

// IDs returns all id buckets in ascending order.
func (d *Document) IDs() []int {
	ids := make([]int, 0, len(d.sheets))
	for id := range d.sheets {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// NamesForID returns the sheet names stored under an id, sorted.
func (d *Document) NamesForID(id int) []string {
	names := make([]string, 0, len(d.sheets[id]))
	for name := range d.sheets[id] {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of id buckets.
func (d *Document) Len() int {
	return len(d.sheets)
}

// Sheets returns a deep copy of the full mapping for consumers such as the
// output writer.
func (d *Document) Sheets() map[int]map[string][]int {
	out := make(map[int]map[string][]int, len(d.sheets))
	for id, names := range d.sheets {
		bucket := make(map[string][]int, len(names))
		for name, pages := range names {
			cp := make([]int, len(pages))
			copy(cp, pages)
			bucket[name] = cp
		}
		out[id] = bucket
	}
	return out
}
