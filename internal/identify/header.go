package identify

import (
	"regexp"
	"strconv"
	"strings"
)

// Header holds the fields recovered from a page header fragment. Each field
// is extracted independently: a missing id does not block name or page-pair
// recovery.
type Header struct {
	ID      *int
	Name    string
	Current *int
	Total   *int
}

var (
	idRE           = regexp.MustCompile(`(?i)\bAB\s*(\d{1,4})\b`)
	pairRE         = regexp.MustCompile(`\b(\d{1,4})\s*/\s*(\d{1,4})\b`)
	trailingPairRE = regexp.MustCompile(`\b\d{1,4}\s*/\s*\d{1,4}\b$`)
	trailingNumRE  = regexp.MustCompile(`\b\d{1,4}$`)
)

// nameCutset trims separator debris left after removing the AB token and
// trailing page numbers from a header line.
const nameCutset = " \t/-–—:;,."

// ParseHeader extracts the AB id, sheet name and "current/total" page pair
// from a short text fragment, typically a running header. Fields that do not
// appear stay nil or empty.
func ParseHeader(text string) Header {
	txt := CleanText(text)
	if txt == "" {
		return Header{}
	}

	var h Header
	if m := idRE.FindStringSubmatch(txt); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			h.ID = &n
		}
	}
	if m := pairRE.FindStringSubmatch(txt); m != nil {
		curr, err1 := strconv.Atoi(m[1])
		total, err2 := strconv.Atoi(m[2])
		if err1 == nil && err2 == nil {
			h.Current, h.Total = &curr, &total
		}
	}

	name := strings.TrimSpace(idRE.ReplaceAllString(txt, ""))
	name = strings.TrimSpace(trailingPairRE.ReplaceAllString(name, ""))
	name = strings.TrimSpace(trailingNumRE.ReplaceAllString(name, ""))
	h.Name = strings.Trim(name, nameCutset)
	return h
}

// HeaderID looks for an "AB n" token in the header band of a page, then
// falls back to the full page text. Returns nil when no id is found.
func HeaderID(text string, cfg Config) *int {
	if text == "" {
		return nil
	}
	band := headerBand(text, cfg)
	if m := idRE.FindStringSubmatch(CleanText(band)); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			return &n
		}
	}
	if m := idRE.FindStringSubmatch(CleanText(text)); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			return &n
		}
	}
	return nil
}

// headerBand returns the first few lines of a page, where the running
// header is typically printed.
func headerBand(text string, cfg Config) string {
	lines := strings.Split(text, "\n")
	if len(lines) > cfg.HeaderBandLines {
		lines = lines[:cfg.HeaderBandLines]
	}
	band := strings.Join(lines, "\n")
	if len(band) > cfg.HeaderBandChars {
		band = band[:cfg.HeaderBandChars]
	}
	return band
}
