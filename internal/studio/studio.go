// Package studio holds the view controllers of the shell: local validation,
// the remote call and the mapping of failures onto what the user sees.
package studio

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"mediastudio/internal/encoder"
	"mediastudio/internal/i18n"
	"mediastudio/internal/infra"
	"mediastudio/internal/infra/credentials"
	"mediastudio/internal/media"
	"mediastudio/internal/media/classify"
)

const (
	CodeEmptyPrompt  = "empty_prompt"
	CodeMissingImage = "missing_image"
	CodeKeyRequired  = "key_required"
	CodeImageFailed  = "image_failed"
	CodeEditFailed   = "edit_failed"
)

// Generator is the remote media client.
type Generator interface {
	GenerateImage(ctx context.Context, prompt string) (string, error)
	EditImage(ctx context.Context, prompt, imageBase64, mimeType string) (string, error)
	GenerateVideo(ctx context.Context, prompt string) (string, error)
}

// ViewError is what a view shows instead of a result.
type ViewError struct {
	Code     string
	Message  string
	HTML     bool
	KeyReset bool
	Status   int
	Err      error
}

func (e *ViewError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("studio: %s: %v", e.Code, e.Err)
	}
	return "studio: " + e.Code
}

func (e *ViewError) Unwrap() error { return e.Err }

// Studio runs the three views against a Generator.
type Studio struct {
	media  Generator
	keys   credentials.Selector
	logger *infra.Logger
}

// New wires the views. A nil selector behaves as if a key is always selected.
func New(gen Generator, keys credentials.Selector, logger *infra.Logger) *Studio {
	if keys == nil {
		keys = credentials.Static{}
	}
	if logger == nil {
		logger = infra.NopLogger()
	}
	return &Studio{media: gen, keys: keys, logger: logger}
}

// Keys exposes the credential selector backing the video view.
func (s *Studio) Keys() credentials.Selector {
	return s.keys
}

// GenerateImage runs the text-to-image view. Remote failures are replaced by
// a generic message.
func (s *Studio) GenerateImage(ctx context.Context, locale, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", validation(locale, CodeEmptyPrompt, i18n.MsgImagePromptRequired)
	}
	ref, err := s.media.GenerateImage(ctx, prompt)
	if err != nil {
		s.logger.Error().Err(err).Str("view", string(TabImage)).Msg("image generation failed")
		return "", &ViewError{
			Code:    CodeImageFailed,
			Message: i18n.T(locale, i18n.MsgImageFailed),
			Status:  http.StatusBadGateway,
			Err:     err,
		}
	}
	return ref, nil
}

// EditImage runs the edit view. Both a prompt and a source image are required.
func (s *Studio) EditImage(ctx context.Context, locale, prompt string, src *encoder.SourceImage) (string, error) {
	if strings.TrimSpace(prompt) == "" || src == nil || src.Data == "" {
		code := CodeMissingImage
		if src != nil && src.Data != "" {
			code = CodeEmptyPrompt
		}
		return "", validation(locale, code, i18n.MsgEditInputRequired)
	}
	ref, err := s.media.EditImage(ctx, prompt, src.Data, src.MIMEType)
	if err != nil {
		s.logger.Error().Err(err).Str("view", string(TabEdit)).Str("filename", src.Filename).Msg("image edit failed")
		return "", &ViewError{
			Code:    CodeEditFailed,
			Message: i18n.T(locale, i18n.MsgEditFailed),
			Status:  http.StatusBadGateway,
			Err:     err,
		}
	}
	return ref, nil
}

// GenerateVideo runs the video view. It needs a selected key; remote failures
// are classified and key failures withdraw the selection.
func (s *Studio) GenerateVideo(ctx context.Context, locale, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", validation(locale, CodeEmptyPrompt, i18n.MsgVideoPromptRequired)
	}
	if !s.keys.HasKey(ctx) {
		return "", &ViewError{
			Code:    CodeKeyRequired,
			Message: i18n.T(locale, i18n.MsgKeyRequired),
			Status:  http.StatusPreconditionRequired,
		}
	}

	ref, err := s.media.GenerateVideo(ctx, prompt)
	if err == nil {
		return ref, nil
	}
	if errors.Is(err, context.Canceled) {
		s.logger.Info().Str("view", string(TabVideo)).Msg("video generation cancelled")
		return "", err
	}
	if errors.Is(err, context.DeadlineExceeded) {
		err = fmt.Errorf("%w: %w", media.ErrPollExhausted, err)
	}

	result := classify.Classify(err)
	s.logger.Error().Err(err).Str("view", string(TabVideo)).Str("code", result.Code).Msg("video generation failed")

	viewErr := &ViewError{
		Code:    result.Code,
		Message: result.Message(i18n.Printer(locale)),
		HTML:    result.HTML(),
		Status:  result.HTTPStatus(),
		Err:     err,
	}
	if result.ResetsKey() {
		viewErr.KeyReset = true
		if r, ok := s.keys.(credentials.Resetter); ok {
			if resetErr := r.Reset(ctx); resetErr != nil {
				s.logger.Warn().Err(resetErr).Msg("reset key selection")
			}
		}
	}
	return "", viewErr
}

func validation(locale, code, key string) *ViewError {
	return &ViewError{
		Code:    code,
		Message: i18n.T(locale, key),
		Status:  http.StatusBadRequest,
	}
}
