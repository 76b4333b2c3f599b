package identify

import (
	"regexp"
	"strings"
)

// tokenRE extracts significant name tokens for the last-resort search.
var tokenRE = regexp.MustCompile(`[\p{L}\p{N}_]{4,}`)

// FindPage locates the most likely page for an entry lacking an explicit
// page number. It tries the id's header first, then an exact substring
// match of the full name, then individual long name tokens. The scan is a
// plain ordered pass: the first match wins. Returns nil when nothing hits.
func (idf *Identifier) FindPage(id *int, name string) *int {
	if len(idf.pages) == 0 {
		return nil
	}

	if id != nil && *id != 0 {
		for i, pg := range idf.pages {
			h := ParseHeader(pg)
			if h.ID != nil && *h.ID == *id {
				p := i + 1
				return &p
			}
		}
	}

	if name == "" {
		return nil
	}
	needle := strings.ToLower(CleanText(name))
	if needle == "" {
		return nil
	}
	for i, pg := range idf.pages {
		if strings.Contains(strings.ToLower(CleanText(pg)), needle) {
			p := i + 1
			return &p
		}
	}
	for _, tok := range tokenRE.FindAllString(needle, -1) {
		for i, pg := range idf.pages {
			if strings.Contains(strings.ToLower(CleanText(pg)), tok) {
				p := i + 1
				return &p
			}
		}
	}
	return nil
}
