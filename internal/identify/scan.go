package identify

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/keilholz/sheetindex/internal/document"
)

// globalRE matches explicit "AB id [/ or -] Name page" runs in raw page
// text. The name part stays within one line.
var globalRE = regexp.MustCompile(`(?i)\bAB\s*(\d{1,4})\b(?:\s*[/-]\s*)?(.+?)\s+(\d{1,4})\b`)

// globalScan is the document-wide fallback pass. It matches against the
// raw, unnormalized text of every page and only adds ids the TOC pass did
// not already place in the model; it never overwrites existing entries.
func (idf *Identifier) globalScan() {
	existing := make(map[int]bool)
	for _, id := range idf.doc.IDs() {
		existing[id] = true
	}

	for _, pg := range idf.pages {
		if pg == "" {
			continue
		}
		for _, m := range globalRE.FindAllStringSubmatch(pg, -1) {
			id := document.CoerceID(m[1])
			if existing[id] {
				continue
			}
			name := strings.Trim(strings.TrimSpace(m[2]), entryCutset)
			startPage, err := strconv.Atoi(m[3])
			if err != nil {
				startPage = 0
			}

			var pages []int
			if startPage > 0 {
				last := idf.LastPage(startPage, &id, 0)
				pages = pageRange(startPage, last)
			} else if found := idf.FindPage(idPtr(id), name); found != nil {
				pages = []int{*found}
			}

			idf.doc.AddSheet(id, name, pages)
			existing[id] = true
			idf.log.Debug("global-scan sheet recorded", "id", id, "name", name, "pages", len(pages))
		}
	}
}

func idPtr(id int) *int {
	if id == 0 {
		return nil
	}
	return &id
}
