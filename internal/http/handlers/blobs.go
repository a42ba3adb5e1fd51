package handlers

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"mediastudio/internal/storage"
)

// Blob serves a stored video. Range requests are honoured so players can
// seek.
func (a *App) Blob(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	blob, err := a.Blobs.Get(r.Context(), id)
	if errors.Is(err, storage.ErrNotFound) {
		a.error(w, http.StatusNotFound, "not_found", "media not found")
		return
	}
	if err != nil {
		a.Logger.Error().Err(err).Str("blob_id", id).Msg("load blob")
		a.error(w, http.StatusInternalServerError, "internal", http.StatusText(http.StatusInternalServerError))
		return
	}
	w.Header().Set("Content-Type", blob.ContentType)
	w.Header().Set("Cache-Control", "private, max-age=3600")
	http.ServeContent(w, r, "", blob.CreatedAt, bytes.NewReader(blob.Data))
}
