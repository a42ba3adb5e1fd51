package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"mediastudio/internal/infra"
	"mediastudio/internal/infra/credentials"
	"mediastudio/internal/storage"
	"mediastudio/internal/studio"
)

const defaultMaxUploadBytes = 20 << 20

type App struct {
	Studio         *studio.Studio
	Keys           credentials.Selector
	Blobs          storage.Store
	Logger         *infra.Logger
	MaxUploadBytes int64
	VideoTimeout   time.Duration
	AllowedOrigins []string
}

func NewApp(st *studio.Studio, blobs storage.Store, cfg *infra.Config, logger *infra.Logger) *App {
	if logger == nil {
		logger = infra.NopLogger()
	}
	app := &App{
		Studio:         st,
		Keys:           st.Keys(),
		Blobs:          blobs,
		Logger:         logger,
		MaxUploadBytes: defaultMaxUploadBytes,
	}
	if cfg != nil {
		if cfg.MaxUploadBytes > 0 {
			app.MaxUploadBytes = cfg.MaxUploadBytes
		}
		app.VideoTimeout = cfg.VideoTimeout
		app.AllowedOrigins = cfg.AllowedOrigins
	}
	return app
}

type errorBody struct {
	Code     string `json:"code"`
	Message  string `json:"message"`
	HTML     bool   `json:"html,omitempty"`
	KeyReset bool   `json:"key_reset,omitempty"`
}

type errorEnvelope struct {
	Error errorBody `json:"error"`
}

type mediaResponse struct {
	MediaRef string `json:"media_ref"`
	Filename string `json:"filename,omitempty"`
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, status int, code, message string) {
	a.json(w, status, errorEnvelope{Error: errorBody{Code: code, Message: message}})
}

// viewError answers with the failure a view produced. Errors that are not
// view errors are reported as internal failures.
func (a *App) viewError(w http.ResponseWriter, err error) {
	var ve *studio.ViewError
	if !errors.As(err, &ve) {
		a.error(w, http.StatusInternalServerError, "internal", http.StatusText(http.StatusInternalServerError))
		return
	}
	a.json(w, ve.Status, envelopeFor(ve))
}

func envelopeFor(ve *studio.ViewError) errorEnvelope {
	return errorEnvelope{Error: errorBody{
		Code:     ve.Code,
		Message:  ve.Message,
		HTML:     ve.HTML,
		KeyReset: ve.KeyReset,
	}}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20))
	return dec.Decode(v)
}
