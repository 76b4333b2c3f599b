package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/keilholz/sheetindex/internal/store"
)

// handleListDocuments lists all stored document snapshots.
func (s *Server) handleListDocuments(w http.ResponseWriter, r *http.Request) {
	docs, err := s.orchestrator.Repo().List(r.Context())
	if err != nil {
		jsonError(w, "failed to list documents: "+err.Error(), http.StatusInternalServerError)
		return
	}
	if docs == nil {
		docs = []store.Summary{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"documents": docs})
}

// handleGetDocument returns the full sheet index for one document.
func (s *Server) handleGetDocument(w http.ResponseWriter, r *http.Request) {
	filename := chi.URLParam(r, "filename")
	doc, err := s.orchestrator.Repo().Get(r.Context(), filename)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			jsonError(w, "document not found", http.StatusNotFound)
			return
		}
		jsonError(w, "failed to load document: "+err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, doc.Snapshot())
}

// handleDeleteDocument removes a stored snapshot.
func (s *Server) handleDeleteDocument(w http.ResponseWriter, r *http.Request) {
	filename := chi.URLParam(r, "filename")
	if err := s.orchestrator.Repo().Delete(r.Context(), filename); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			jsonError(w, "document not found", http.StatusNotFound)
			return
		}
		jsonError(w, "failed to delete document: "+err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"deleted": filename})
}
