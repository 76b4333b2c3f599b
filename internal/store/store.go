// Package store persists sheet index snapshots in Postgres.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/keilholz/sheetindex/internal/document"
)

// ErrNotFound is returned when a document has no stored snapshot.
var ErrNotFound = sql.ErrNoRows

// DocumentRepo stores one snapshot row per source document,
// keyed by filename.
type DocumentRepo struct {
	DB  *sql.DB
	Log *slog.Logger
}

func NewDocumentRepo(db *sql.DB, log *slog.Logger) *DocumentRepo {
	return &DocumentRepo{DB: db, Log: log}
}

// Summary is a listing row without the snapshot payload.
type Summary struct {
	Filename   string    `json:"filename"`
	SourcePath string    `json:"source_path"`
	SheetCount int       `json:"sheet_count"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Init creates the schema if it does not exist yet.
func (r *DocumentRepo) Init(ctx context.Context) error {
	const q = `
create table if not exists documents (
    filename     text primary key,
    source_path  text not null default '',
    content_hash text not null default '',
    sheet_count  int not null default 0,
    snapshot     jsonb not null,
    updated_at   timestamptz not null default now()
)`
	if _, err := r.DB.ExecContext(ctx, q); err != nil {
		return fmt.Errorf("create documents table: %w", err)
	}
	return nil
}

// Save upserts the document's snapshot. contentHash identifies the
// source bytes so re-uploads of an unchanged file can be skipped.
func (r *DocumentRepo) Save(ctx context.Context, doc *document.Document, contentHash string) error {
	js, err := doc.Snapshot().Encode()
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	const q = `
insert into documents(filename, source_path, content_hash, sheet_count, snapshot)
values ($1,$2,$3,$4,$5)
on conflict (filename)
do update set source_path=excluded.source_path,
              content_hash=excluded.content_hash,
              sheet_count=excluded.sheet_count,
              snapshot=excluded.snapshot,
              updated_at=now()`
	_, err = r.DB.ExecContext(ctx, q, doc.Filename, doc.SourcePath, contentHash, doc.Len(), js)
	return err
}

// ContentHash returns the stored hash for a filename, or ErrNotFound.
func (r *DocumentRepo) ContentHash(ctx context.Context, filename string) (string, error) {
	var hash string
	err := r.DB.QueryRowContext(ctx, `select content_hash from documents where filename=$1`, filename).Scan(&hash)
	return hash, err
}

// Get loads the snapshot for a filename. A snapshot written by an
// older build that no longer decodes cleanly is treated as absent.
func (r *DocumentRepo) Get(ctx context.Context, filename string) (*document.Document, error) {
	const q = `select snapshot from documents where filename=$1`
	var js []byte
	if err := r.DB.QueryRowContext(ctx, q, filename).Scan(&js); err != nil {
		return nil, err
	}
	doc, err := document.DecodeSnapshot(js, r.Log)
	if err != nil {
		r.Log.Warn("stored snapshot unreadable", "filename", filename, "error", err)
		return nil, ErrNotFound
	}
	return doc, nil
}

// List returns summaries for every stored document, newest first.
func (r *DocumentRepo) List(ctx context.Context) ([]Summary, error) {
	const q = `
select filename, source_path, sheet_count, updated_at
from documents
order by updated_at desc`
	rows, err := r.DB.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Summary
	for rows.Next() {
		var s Summary
		if err := rows.Scan(&s.Filename, &s.SourcePath, &s.SheetCount, &s.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// Delete removes a stored snapshot. Missing rows yield ErrNotFound.
func (r *DocumentRepo) Delete(ctx context.Context, filename string) error {
	res, err := r.DB.ExecContext(ctx, `delete from documents where filename=$1`, filename)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
