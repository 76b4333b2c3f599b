// Package identify reconstructs the working-sheet index of a scanned
// workbook from noisy per-page text. Three passes run in a fixed order:
// table-of-contents parsing, a document-wide pattern scan, and header
// clustering. Earlier passes win; later passes only fill gaps.
package identify

import (
	"log/slog"

	"github.com/keilholz/sheetindex/internal/document"
)

// Identifier runs the identification pipeline over one document's pages.
// Pages are 1-based: pages[0] is page 1. The page slice is read-only.
type Identifier struct {
	pages []string
	doc   *document.Document
	cfg   Config
	log   *slog.Logger
}

// New creates an identifier writing into the given document model.
func New(pages []string, doc *document.Document, cfg Config, log *slog.Logger) *Identifier {
	return &Identifier{pages: pages, doc: doc, cfg: cfg, log: log}
}

// Identify runs the TOC, global-scan and header-block passes and returns
// the populated model. With no pages, the model is returned unchanged.
// Heuristic failures degrade to missing entries, never errors.
func (idf *Identifier) Identify() *document.Document {
	if len(idf.pages) == 0 {
		idf.log.Info("no pages available to identify working sheets", "filename", idf.doc.Filename)
		return idf.doc
	}

	entries := idf.tocEntries()
	idf.resolveEntryPages(entries)
	idf.recordTOCEntries(entries)

	idf.globalScan()

	labels := idf.headerLabels()
	blocks := idf.headerBlocks(labels)
	idf.recordBlocks(blocks, tocNamesByID(entries))

	idf.log.Info("identification finished",
		"filename", idf.doc.Filename,
		"buckets", idf.doc.Len(),
	)
	return idf.doc
}

// tocNamesByID maps coerced TOC ids to their display names.
func tocNamesByID(entries []Entry) map[int]string {
	names := make(map[int]string, len(entries))
	for _, e := range entries {
		names[document.CoerceID(e.RawID)] = e.Name
	}
	return names
}
