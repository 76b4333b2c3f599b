package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/keilholz/sheetindex/internal/document"
	"github.com/keilholz/sheetindex/internal/extract"
	"github.com/keilholz/sheetindex/internal/identify"
	"github.com/keilholz/sheetindex/internal/pages"
	"github.com/keilholz/sheetindex/internal/store"
)

// Worker processes a single document job.
type Worker struct {
	repo  *store.DocumentRepo
	stats *extract.Stats
	log   *slog.Logger

	identifyCfg identify.Config
	maxPages    int
	pdfFallback bool
}

func NewWorker(repo *store.DocumentRepo, stats *extract.Stats, log *slog.Logger, identifyCfg identify.Config, maxPages int, pdfFallback bool) *Worker {
	return &Worker{
		repo:        repo,
		stats:       stats,
		log:         log,
		identifyCfg: identifyCfg,
		maxPages:    maxPages,
		pdfFallback: pdfFallback,
	}
}

// Process runs the full extraction pipeline for a job.
func (w *Worker) Process(ctx context.Context, job *Job) {
	log := w.log.With("job_id", job.ID, "filename", job.Filename)
	started := time.Now()

	// Phase 1: Load pages.
	job.SetStatus(StatusLoading, "loading")
	loader, err := pages.ForFile(job.Filename)
	if err != nil {
		log.Error("unsupported format", "error", err)
		job.AddError(err.Error())
		job.SetStatus(StatusFailed, "loading")
		return
	}
	if pdfLoader, ok := loader.(*pages.PDFLoader); ok {
		pdfLoader.FallbackPdftotext = w.pdfFallback
	}

	pageTexts, err := loader.Load(bytes.NewReader(job.FileData()), job.Filename)
	if err != nil {
		log.Error("load failed", "error", err)
		job.AddError(fmt.Sprintf("load: %s", err))
		job.SetStatus(StatusFailed, "loading")
		return
	}
	if w.maxPages > 0 && len(pageTexts) > w.maxPages {
		pageTexts = pageTexts[:w.maxPages]
	}
	withText := 0
	for _, p := range pageTexts {
		if strings.TrimSpace(p) != "" {
			withText++
		}
	}
	job.SetPageCounts(len(pageTexts), withText)
	log.Info("pages loaded", "total", len(pageTexts), "with_text", withText)

	// Phase 1.5: Dedup check. An unchanged file keeps its snapshot.
	if dup, err := w.checkDuplicate(ctx, job); err != nil {
		log.Warn("dedup check failed, proceeding", "error", err)
	} else if dup {
		log.Info("unchanged document, skipping")
		job.SetStatus(StatusDupSkipped, "dedup")
		return
	}

	// Phase 2: Identify working sheets.
	job.SetStatus(StatusIdentifying, "identifying")
	doc := document.New(job.Filename, "")
	identify.New(pageTexts, doc, w.identifyCfg, log).Identify()
	job.SetSheetsFound(doc.Len())
	log.Info("identification complete", "sheets", doc.Len())

	// Phase 3: Store the snapshot, retrying transient failures.
	job.SetStatus(StatusStoring, "storing")
	var storeErr error
	for attempt := 0; attempt < MaxRetries; attempt++ {
		storeErr = w.repo.Save(ctx, doc, job.ContentHash)
		if storeErr == nil {
			break
		}
		log.Warn("store failed", "attempt", attempt, "error", storeErr)
		select {
		case <-time.After(Backoff(attempt)):
		case <-ctx.Done():
			storeErr = ctx.Err()
		}
		if ctx.Err() != nil {
			break
		}
	}
	if storeErr != nil {
		job.AddError(fmt.Sprintf("store: %s", storeErr))
		job.SetStatus(StatusFailed, "storing")
		return
	}

	w.stats.Record(time.Since(started).Milliseconds(), doc.Len())
	job.SetStatus(StatusCompleted, "done")
}

// checkDuplicate reports whether the stored snapshot for this
// filename was built from the same bytes.
func (w *Worker) checkDuplicate(ctx context.Context, job *Job) (bool, error) {
	hash, err := w.repo.ContentHash(ctx, job.Filename)
	if err != nil {
		if err == store.ErrNotFound {
			return false, nil
		}
		return false, err
	}
	return hash != "" && hash == job.ContentHash, nil
}
