package handlers

import (
	"bytes"
	"net/http"

	"mediastudio/internal/infra/credentials"
	"mediastudio/internal/middleware"
	"mediastudio/internal/studio"
	"mediastudio/internal/web"
)

// Index renders the shell. The ?tab= query selects the open view.
func (a *App) Index(w http.ResponseWriter, r *http.Request) {
	_, static := a.Keys.(credentials.Static)
	page := web.NewPage(
		middleware.LocaleFromContext(r.Context()),
		studio.ParseTab(r.URL.Query().Get("tab")),
		!static,
		a.Keys.HasKey(r.Context()),
	)

	var buf bytes.Buffer
	if err := web.Render(&buf, page); err != nil {
		a.Logger.Error().Err(err).Msg("render shell")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}
