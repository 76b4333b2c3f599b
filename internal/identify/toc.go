package identify

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/keilholz/sheetindex/internal/document"
)

// Entry is a table-of-contents candidate. Page stays nil until resolved;
// an entry that never resolves is still recorded so its name survives.
type Entry struct {
	RawID string
	Name  string
	Page  *int
}

var (
	tocTokenRE    = regexp.MustCompile(`(?i)\bAB\s*(\d{1,4})\b(?:\s*[/-]\s*)?`)
	trailingNumberedRE = regexp.MustCompile(`^(.*?)[\s\-–—:]*(\d{1,4})\s*$`)
	standaloneNumRE    = regexp.MustCompile(`\b(\d{1,4})\b`)
)

// entryCutset trims list punctuation from TOC-derived names.
const entryCutset = " \t-–—:;,."

// tocRange locates the TOC region: the first page bearing the start marker
// (forward regex scan, then a reverse plain-substring retry) through the
// first page at or after it bearing the end marker, capped at TOCWindow
// pages when the end marker is absent. Indices are 0-based; ok is false
// when no start marker exists.
func (idf *Identifier) tocRange() (start, end int, ok bool) {
	startRE := markerLineRE(idf.cfg.TOCStartMarker)
	endRE := markerLineRE(idf.cfg.TOCEndMarker)

	start = -1
	for i, pg := range idf.pages {
		if pg != "" && startRE.MatchString(pg) {
			start = i
			break
		}
	}
	if start < 0 {
		// Some extractions split the heading across lines; retry with a
		// plain substring match from the end of the document.
		for i := len(idf.pages) - 1; i >= 0; i-- {
			if strings.Contains(idf.pages[i], idf.cfg.TOCStartMarker) {
				start = i
				break
			}
		}
	}
	if start < 0 {
		return 0, 0, false
	}

	end = -1
	for j := start; j < len(idf.pages); j++ {
		if endRE.MatchString(idf.pages[j]) {
			end = j
			break
		}
	}
	if end < 0 {
		for j := start; j < len(idf.pages); j++ {
			if strings.Contains(idf.pages[j], idf.cfg.TOCEndMarker) {
				end = j
				break
			}
		}
	}
	if end < 0 {
		end = min(start+idf.cfg.TOCWindow, len(idf.pages)-1)
	}
	return start, end, true
}

func markerLineRE(marker string) *regexp.Regexp {
	return regexp.MustCompile(`(^|\n)\s*` + regexp.QuoteMeta(marker) + `\s*(\n|$)`)
}

// tocEntries parses (id, name, page) candidates out of the TOC region. The
// region text is normalized into one blob and tokenized on "AB n" matches;
// each candidate's page number is recovered from the tail of its raw name,
// or failing that from a bounded lookahead past the id token.
func (idf *Identifier) tocEntries() []Entry {
	start, end, ok := idf.tocRange()
	if !ok {
		idf.log.Debug("no TOC region found", "filename", idf.doc.Filename)
		return nil
	}
	blob := CleanText(strings.Join(idf.pages[start:end+1], " "))
	if blob == "" {
		return nil
	}
	idf.log.Debug("TOC region", "start_page", start+1, "end_page", end+1, "chars", len(blob))

	matches := tocTokenRE.FindAllStringSubmatchIndex(blob, -1)
	entries := make([]Entry, 0, len(matches))
	for i, m := range matches {
		rawID := blob[m[2]:m[3]]
		nameStart := m[1]
		nameEnd := len(blob)
		if i+1 < len(matches) {
			nameEnd = matches[i+1][0]
		}
		rawName := strings.TrimSpace(blob[nameStart:nameEnd])

		var page *int
		if tm := trailingNumberedRE.FindStringSubmatch(rawName); tm != nil {
			if p, err := strconv.Atoi(tm[2]); err == nil {
				page = &p
			}
			if candidate := strings.TrimSpace(tm[1]); candidate != "" {
				rawName = candidate
			}
		}
		if page == nil {
			lookahead := blob[nameStart:min(nameStart+idf.cfg.TOCLookahead, len(blob))]
			if nm := standaloneNumRE.FindStringSubmatch(lookahead); nm != nil {
				if p, err := strconv.Atoi(nm[1]); err == nil {
					page = &p
				}
			}
		}

		entries = append(entries, Entry{
			RawID: rawID,
			Name:  strings.Trim(rawName, entryCutset),
			Page:  page,
		})
	}
	idf.log.Debug("TOC entries parsed", "count", len(entries))
	return entries
}

// resolveEntryPages fills missing page numbers via the entry locator.
// Entries that stay unresolved keep a nil page and are recorded anyway.
func (idf *Identifier) resolveEntryPages(entries []Entry) {
	for i := range entries {
		if entries[i].Page != nil {
			continue
		}
		var id *int
		if n := document.CoerceID(entries[i].RawID); n != 0 {
			id = &n
		}
		entries[i].Page = idf.FindPage(id, entries[i].Name)
	}
}

// recordTOCEntries writes resolved TOC entries into the model, extending
// each start page to an estimated last page.
func (idf *Identifier) recordTOCEntries(entries []Entry) {
	for _, e := range entries {
		id := document.CoerceID(e.RawID)
		var pages []int
		if e.Page != nil && *e.Page > 0 {
			last := idf.LastPage(*e.Page, &id, 0)
			pages = pageRange(*e.Page, last)
		}
		name := e.Name
		if name == "" {
			name = "AB " + e.RawID
		}
		idf.doc.AddSheet(id, name, pages)
		idf.log.Debug("TOC sheet recorded", "id", id, "name", name, "pages", len(pages))
	}
}

func pageRange(first, last int) []int {
	if last < first {
		return nil
	}
	pages := make([]int, 0, last-first+1)
	for p := first; p <= last; p++ {
		pages = append(pages, p)
	}
	return pages
}
