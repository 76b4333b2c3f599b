package identify

import (
	"regexp"
	"strings"
)

var (
	controlRE    = regexp.MustCompile(`[\x00-\x1f\x7f]+`)
	whitespaceRE = regexp.MustCompile(`\s+`)
)

// CleanText strips control characters and non-breaking spaces from OCR
// output and collapses whitespace runs to single spaces.
func CleanText(s string) string {
	if s == "" {
		return ""
	}
	s = controlRE.ReplaceAllString(s, " ")
	s = strings.ReplaceAll(s, " ", " ")
	return strings.TrimSpace(whitespaceRE.ReplaceAllString(s, " "))
}
