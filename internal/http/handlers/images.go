package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"mediastudio/internal/encoder"
	"mediastudio/internal/i18n"
	"mediastudio/internal/middleware"
)

type promptRequest struct {
	Prompt string `json:"prompt"`
}

func (a *App) ImagesGenerate(w http.ResponseWriter, r *http.Request) {
	locale := middleware.LocaleFromContext(r.Context())
	var req promptRequest
	if err := decodeJSON(w, r, &req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	ref, err := a.Studio.GenerateImage(r.Context(), locale, req.Prompt)
	if err != nil {
		a.viewError(w, err)
		return
	}
	a.json(w, http.StatusOK, mediaResponse{
		MediaRef: ref,
		Filename: fmt.Sprintf("generated-image-%d.jpeg", time.Now().UnixMilli()),
	})
}

// ImagesEdit accepts a multipart form with a "prompt" field and an "image"
// file.
func (a *App) ImagesEdit(w http.ResponseWriter, r *http.Request) {
	locale := middleware.LocaleFromContext(r.Context())
	r.Body = http.MaxBytesReader(w, r.Body, a.MaxUploadBytes+(1<<20))
	if err := r.ParseMultipartForm(a.MaxUploadBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			a.error(w, http.StatusRequestEntityTooLarge, "too_large", i18n.T(locale, i18n.MsgTooLarge))
			return
		}
		a.error(w, http.StatusBadRequest, "bad_request", "invalid multipart payload")
		return
	}
	defer func() {
		if r.MultipartForm != nil {
			_ = r.MultipartForm.RemoveAll()
		}
	}()

	var src *encoder.SourceImage
	if files := r.MultipartForm.File["image"]; len(files) > 0 {
		img, err := encoder.EncodeFile(files[0], a.MaxUploadBytes)
		switch {
		case errors.Is(err, encoder.ErrNotImage):
			a.error(w, http.StatusUnsupportedMediaType, "not_image", i18n.T(locale, i18n.MsgNotImage))
			return
		case errors.Is(err, encoder.ErrTooLarge):
			a.error(w, http.StatusRequestEntityTooLarge, "too_large", i18n.T(locale, i18n.MsgTooLarge))
			return
		case errors.Is(err, encoder.ErrEmpty):
		case err != nil:
			a.Logger.Error().Err(err).Msg("encode uploaded image")
			a.error(w, http.StatusBadRequest, "bad_request", "could not read uploaded image")
			return
		default:
			src = img
		}
	}

	ref, err := a.Studio.EditImage(r.Context(), locale, r.FormValue("prompt"), src)
	if err != nil {
		a.viewError(w, err)
		return
	}
	a.json(w, http.StatusOK, mediaResponse{
		MediaRef: ref,
		Filename: fmt.Sprintf("edited-image-%d.png", time.Now().UnixMilli()),
	})
}
