package pages

import (
	"io"
	"strings"
)

// TextLoader handles plain text files. Form feeds delimit pages;
// a file without form feeds is a single page.
type TextLoader struct{}

func (l *TextLoader) Load(r io.Reader, filename string) ([]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	text := string(data)
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}
	return strings.Split(strings.TrimSuffix(text, "\f"), "\f"), nil
}
