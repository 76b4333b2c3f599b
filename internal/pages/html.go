package pages

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// HTMLLoader handles HTML files. Horizontal rules (<hr>) delimit
// pages; a document without them is a single page.
type HTMLLoader struct{}

func (l *HTMLLoader) Load(r io.Reader, filename string) ([]string, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	var pages []string
	var current strings.Builder

	flush := func() {
		pages = append(pages, strings.TrimSpace(current.String()))
		current.Reset()
	}
	add := func(t string) {
		if t == "" {
			return
		}
		if current.Len() > 0 {
			current.WriteString("\n")
		}
		current.WriteString(t)
	}

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "hr":
				flush()
				return
			// Skip non-content elements.
			case "script", "style", "nav", "footer":
				return
			case "h1", "h2", "h3", "h4", "h5", "h6", "p", "li", "td", "blockquote":
				add(textContent(n))
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	// Find <body> or use whole document.
	if body := findBody(doc); body != nil {
		walk(body)
	} else {
		walk(doc)
	}
	if current.Len() > 0 || len(pages) > 0 {
		flush()
	}
	return pages, nil
}

func textContent(n *html.Node) string {
	var buf strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(n)
	return strings.TrimSpace(buf.String())
}

func findBody(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.Data == "body" {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if b := findBody(c); b != nil {
			return b
		}
	}
	return nil
}
