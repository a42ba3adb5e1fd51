package handlers

import (
	"errors"
	"net/http"

	"mediastudio/internal/i18n"
	"mediastudio/internal/infra/credentials"
	"mediastudio/internal/middleware"
)

type keySelectRequest struct {
	Key string `json:"key"`
}

type keyStatusResponse struct {
	Selected bool `json:"selected"`
}

func (a *App) KeyStatus(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, keyStatusResponse{Selected: a.Keys.HasKey(r.Context())})
}

func (a *App) KeySelect(w http.ResponseWriter, r *http.Request) {
	locale := middleware.LocaleFromContext(r.Context())
	var req keySelectRequest
	if err := decodeJSON(w, r, &req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if err := a.Keys.RequestKeySelection(r.Context(), req.Key); err != nil {
		if errors.Is(err, credentials.ErrKeyRequired) {
			a.error(w, http.StatusBadRequest, "invalid_key", i18n.T(locale, i18n.MsgKeyInvalidSubmit))
			return
		}
		a.Logger.Error().Err(err).Msg("store key selection")
		a.error(w, http.StatusInternalServerError, "internal", http.StatusText(http.StatusInternalServerError))
		return
	}
	a.json(w, http.StatusOK, keyStatusResponse{Selected: a.Keys.HasKey(r.Context())})
}

func (a *App) KeyClear(w http.ResponseWriter, r *http.Request) {
	if resetter, ok := a.Keys.(credentials.Resetter); ok {
		if err := resetter.Reset(r.Context()); err != nil {
			a.Logger.Error().Err(err).Msg("clear key selection")
			a.error(w, http.StatusInternalServerError, "internal", http.StatusText(http.StatusInternalServerError))
			return
		}
	}
	a.json(w, http.StatusOK, keyStatusResponse{Selected: a.Keys.HasKey(r.Context())})
}
