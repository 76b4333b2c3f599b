package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/keilholz/sheetindex/internal/document"
)

var (
	// titleStyle for the document header
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	// idStyle for sheet ids
	idStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("214"))

	// dimStyle for muted metadata text
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	// warnStyle for sheets without located pages
	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))
)

// renderIndex prints the identified sheet index as a readable listing.
func renderIndex(w io.Writer, doc *document.Document) {
	fmt.Fprintln(w, titleStyle.Render(doc.Filename))

	ids := doc.IDs()
	if len(ids) == 0 {
		fmt.Fprintln(w, dimStyle.Render("no working sheets identified"))
		return
	}

	for _, id := range ids {
		label := fmt.Sprintf("AB %d", id)
		if id == 0 {
			label = "AB ?"
		}
		for _, name := range doc.NamesForID(id) {
			pages := doc.Pages(id, name)
			pageStr := warnStyle.Render("no pages")
			if len(pages) > 0 {
				pageStr = dimStyle.Render("pages " + joinInts(pages))
			}
			fmt.Fprintf(w, "%s  %s  %s\n", idStyle.Render(label), name, pageStr)
		}
	}
	fmt.Fprintln(w, dimStyle.Render(fmt.Sprintf("%d sheet ids", len(ids))))
}

func joinInts(nums []int) string {
	parts := make([]string, len(nums))
	for i, n := range nums {
		parts[i] = fmt.Sprintf("%d", n)
	}
	return strings.Join(parts, ", ")
}
