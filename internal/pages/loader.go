// Package pages turns workbook files into a per-page text sequence.
// Index i of the result holds the plain text of 1-based page i+1;
// pages whose extraction fails are kept as empty strings so page
// numbers stay aligned with the source document.
package pages

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Loader converts raw document bytes into per-page plain text.
type Loader interface {
	Load(r io.Reader, filename string) ([]string, error)
}

// SupportedExtensions lists file extensions this service can handle.
var SupportedExtensions = map[string]bool{
	".pdf":      true,
	".txt":      true,
	".md":       true,
	".markdown": true,
	".html":     true,
	".htm":      true,
	".docx":     true,
}

// ForFile returns the appropriate loader for a filename.
func ForFile(filename string) (Loader, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".pdf":
		return &PDFLoader{FallbackPdftotext: true}, nil
	case ".txt":
		return &TextLoader{}, nil
	case ".md", ".markdown":
		return &MarkdownLoader{}, nil
	case ".html", ".htm":
		return &HTMLLoader{}, nil
	case ".docx":
		return &DOCXLoader{}, nil
	default:
		return nil, fmt.Errorf("unsupported file extension: %s", ext)
	}
}

// IsSupportedExtension checks if a file extension is supported.
func IsSupportedExtension(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return SupportedExtensions[ext]
}

// LoadFile reads a document from disk and extracts its pages. Any
// failure, including an unreadable or unsupported file, yields an
// empty page sequence rather than an error so a batch run can keep
// going past broken inputs. maxPages <= 0 means no cap.
func LoadFile(path string, maxPages int, log *slog.Logger) []string {
	f, err := os.Open(path)
	if err != nil {
		log.Warn("open document failed", "path", path, "error", err)
		return nil
	}
	defer f.Close()

	loader, err := ForFile(path)
	if err != nil {
		log.Warn("no loader for document", "path", path, "error", err)
		return nil
	}

	pages, err := loader.Load(f, filepath.Base(path))
	if err != nil {
		log.Warn("extract pages failed", "path", path, "error", err)
		return nil
	}
	if maxPages > 0 && len(pages) > maxPages {
		log.Info("page cap applied", "path", path, "pages", len(pages), "max_pages", maxPages)
		pages = pages[:maxPages]
	}
	return pages
}
