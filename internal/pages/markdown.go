package pages

import (
	"bytes"
	"io"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// MarkdownLoader handles Markdown files using goldmark. Thematic
// breaks (---) delimit pages, matching how scanned workbooks are
// commonly transcribed to Markdown.
type MarkdownLoader struct{}

func (l *MarkdownLoader) Load(r io.Reader, filename string) ([]string, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	md := goldmark.New()
	reader := text.NewReader(src)
	doc := md.Parser().Parse(reader)

	var pages []string
	var current strings.Builder

	flush := func() {
		pages = append(pages, strings.TrimSpace(current.String()))
		current.Reset()
	}

	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		if _, ok := n.(*ast.ThematicBreak); ok {
			flush()
			continue
		}
		t := blockText(n, src)
		if t == "" {
			continue
		}
		if current.Len() > 0 {
			current.WriteString("\n")
		}
		current.WriteString(t)
	}
	if current.Len() > 0 || len(pages) > 0 {
		flush()
	}
	return pages, nil
}

// blockText gets the text content of a goldmark AST node.
func blockText(n ast.Node, src []byte) string {
	var buf bytes.Buffer
	if n.Type() == ast.TypeBlock {
		lines := n.Lines()
		for i := 0; i < lines.Len(); i++ {
			line := lines.At(i)
			buf.Write(line.Value(src))
		}
	}
	// Also handle inline children.
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			buf.Write(t.Value(src))
			if t.HardLineBreak() || t.SoftLineBreak() {
				buf.WriteByte('\n')
			}
		} else {
			buf.WriteString(blockText(c, src))
		}
	}
	return strings.TrimSpace(buf.String())
}
