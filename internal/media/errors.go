package media

import (
	"fmt"
	"strconv"

	"golang.org/x/text/message"

	"mediastudio/internal/i18n"
)

// Machine-readable codes for failures raised by the client itself.
const (
	CodeEmptyPrompt    = "empty_prompt"
	CodeMissingImage   = "missing_image"
	CodeNoImage        = "no_image"
	CodeEditFailed     = "edit_failed"
	CodeVideoBlocked   = "video_blocked"
	CodeDownloadFailed = "download_failed"
	CodePollExhausted  = "poll_exhausted"
)

// LocalError is implemented by failures the client raises on its own, as
// opposed to failures reported by the remote service. Their message is safe
// to show to the user as is.
type LocalError interface {
	error
	Code() string
	Message(p *message.Printer) string
}

// Error is a local failure with a fixed localized message.
type Error struct {
	code string
	key  string
	text string
}

func (e *Error) Error() string { return "media: " + e.text }

func (e *Error) Code() string { return e.code }

func (e *Error) Message(p *message.Printer) string { return p.Sprintf(e.key) }

var (
	ErrEmptyPrompt   = &Error{code: CodeEmptyPrompt, key: i18n.MsgImagePromptRequired, text: "prompt is empty"}
	ErrMissingImage  = &Error{code: CodeMissingImage, key: i18n.MsgEditInputRequired, text: "source image is missing"}
	ErrNoImage       = &Error{code: CodeNoImage, key: i18n.MsgNoImage, text: "no image produced"}
	ErrEditFailed    = &Error{code: CodeEditFailed, key: i18n.MsgEditNoImage, text: "edit returned no image"}
	ErrVideoBlocked  = &Error{code: CodeVideoBlocked, key: i18n.MsgVideoBlocked, text: "video operation finished without a download uri"}
	ErrPollExhausted = &Error{code: CodePollExhausted, key: i18n.MsgPollExhausted, text: "video operation did not finish within the poll budget"}
)

// DownloadError reports a non-2xx answer when fetching the finished video.
type DownloadError struct {
	StatusCode int
}

func (e *DownloadError) Error() string {
	return fmt.Sprintf("media: video download failed with status %d", e.StatusCode)
}

func (e *DownloadError) Code() string { return CodeDownloadFailed }

// Message renders the status with ASCII digits in every locale.
func (e *DownloadError) Message(p *message.Printer) string {
	return p.Sprintf(i18n.MsgDownloadFailed, strconv.Itoa(e.StatusCode))
}

// OperationError carries the error status a finished video operation reports.
// It comes from the remote service and is not a LocalError; the client wraps
// it together with ErrVideoBlocked.
type OperationError struct {
	Code    int
	Message string
}

func (e *OperationError) Error() string {
	if e.Code != 0 {
		return fmt.Sprintf("media: video operation failed (%d): %s", e.Code, e.Message)
	}
	return "media: video operation failed: " + e.Message
}

var (
	_ LocalError = (*Error)(nil)
	_ LocalError = (*DownloadError)(nil)
)
