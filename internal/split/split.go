// Package split writes one PDF per identified working sheet by
// extracting the sheet's pages from the source document with qpdf.
package split

import (
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/keilholz/sheetindex/internal/document"
)

// Result describes one written sheet file.
type Result struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Pages []int  `json:"pages"`
	Path  string `json:"path"`
}

// WriteSheets writes every named sheet of doc to its own PDF under
// outBase/<document stem>/. Sheets without pages inside the source
// document are skipped. Per-sheet write failures are logged and the
// remaining sheets are still written.
func WriteSheets(doc *document.Document, outBase string, log *slog.Logger) ([]Result, error) {
	src := doc.SourcePath
	if _, err := os.Stat(src); err != nil {
		return nil, fmt.Errorf("source pdf: %w", err)
	}

	totalPages, err := qpdfPageCount(src)
	if err != nil {
		return nil, fmt.Errorf("count source pages: %w", err)
	}

	targetDir := filepath.Join(outBase, documentStem(doc))
	if err := os.MkdirAll(targetDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}
	log.Info("writing sheet outputs", "dir", targetDir, "total_pages", totalPages)

	var results []Result
	for _, id := range doc.IDs() {
		for _, name := range doc.NamesForID(id) {
			pages := validPages(doc.Pages(id, name), totalPages)
			if len(pages) == 0 {
				log.Warn("no valid pages for sheet", "id", id, "name", name)
				continue
			}

			outPath := filepath.Join(targetDir, sheetFileName(id, name))
			if err := qpdfExtract(src, pages, outPath); err != nil {
				log.Warn("write sheet failed", "id", id, "name", name, "error", err)
				continue
			}
			results = append(results, Result{ID: id, Name: name, Pages: pages, Path: outPath})
			log.Info("wrote working sheet", "id", id, "name", name, "path", outPath, "pages", pages)
		}
	}
	log.Info("sheet outputs complete", "written", len(results), "dir", targetDir)
	return results, nil
}

// documentStem names the per-document output directory.
func documentStem(doc *document.Document) string {
	base := doc.Filename
	if base == "" {
		base = filepath.Base(doc.SourcePath)
	}
	return strings.TrimSuffix(filepath.Base(base), filepath.Ext(base))
}

// validPages keeps only pages that exist in the source document.
func validPages(pages []int, totalPages int) []int {
	var out []int
	for _, p := range pages {
		if p >= 1 && p <= totalPages {
			out = append(out, p)
		}
	}
	return out
}

// sheetFileName builds "<id>_<name>.pdf". The unknown-id bucket is
// labelled no-id so its files sort apart from real sheet ids.
func sheetFileName(id int, name string) string {
	idKey := "no-id"
	if id > 0 {
		idKey = strconv.Itoa(id)
	}
	return SanitizeFilename(idKey) + "_" + SanitizeFilename(name) + ".pdf"
}

// SanitizeFilename replaces everything outside a conservative
// filename alphabet with underscores, trims them, and caps length.
func SanitizeFilename(s string) string {
	var b strings.Builder
	for _, ch := range s {
		switch {
		case ch >= 'a' && ch <= 'z', ch >= 'A' && ch <= 'Z', ch >= '0' && ch <= '9':
			b.WriteRune(ch)
		case ch == '-' || ch == '_' || ch == '(' || ch == ')' || ch == '.':
			b.WriteRune(ch)
		default:
			b.WriteByte('_')
		}
	}
	out := strings.Trim(b.String(), "_")
	if len(out) > 200 {
		out = out[:200]
	}
	if out == "" {
		return "unnamed"
	}
	return out
}

// PageSelection renders a sorted page list as a qpdf page range,
// compressing consecutive runs: [1 3 4 5] becomes "1,3-5".
func PageSelection(pages []int) string {
	var parts []string
	for i := 0; i < len(pages); {
		j := i
		for j+1 < len(pages) && pages[j+1] == pages[j]+1 {
			j++
		}
		if j == i {
			parts = append(parts, strconv.Itoa(pages[i]))
		} else {
			parts = append(parts, fmt.Sprintf("%d-%d", pages[i], pages[j]))
		}
		i = j + 1
	}
	return strings.Join(parts, ",")
}

func qpdfPageCount(src string) (int, error) {
	out, err := exec.Command("qpdf", "--show-npages", src).Output()
	if err != nil {
		return 0, fmt.Errorf("qpdf --show-npages: %w", err)
	}
	n, err := strconv.Atoi(strings.TrimSpace(string(out)))
	if err != nil {
		return 0, fmt.Errorf("qpdf --show-npages output %q: %w", strings.TrimSpace(string(out)), err)
	}
	return n, nil
}

func qpdfExtract(src string, pages []int, outPath string) error {
	args := []string{"--empty", "--pages", src, PageSelection(pages), "--", outPath}
	if out, err := exec.Command("qpdf", args...).CombinedOutput(); err != nil {
		return fmt.Errorf("qpdf: %w: %s", err, strings.TrimSpace(string(out)))
	}
	return nil
}
