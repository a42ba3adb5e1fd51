// Package classify maps failures of the video flow onto user-facing messages.
package classify

import (
	"errors"
	"net/http"
	"strings"

	"golang.org/x/text/message"
	"google.golang.org/genai"

	"mediastudio/internal/i18n"
	"mediastudio/internal/media"
)

// Kind is a failure class. Kinds are listed in matching priority.
type Kind int

const (
	KindInvalidKey Kind = iota
	KindEntityNotFound
	KindRateLimited
	KindBilling
	KindLocal
	KindUnexpected
)

const (
	CodeInvalidKey     = "invalid_key"
	CodeEntityNotFound = "entity_not_found"
	CodeRateLimited    = "rate_limited"
	CodeBilling        = "billing"
	CodeUnexpected     = "unexpected"
)

const (
	entityNotFoundText = "Requested entity was not found."
	reasonKeyInvalid   = "API_KEY_INVALID"
)

// Result is the outcome of Classify.
type Result struct {
	Kind Kind
	Code string

	local media.LocalError
}

// Classify picks the first matching class for err. Structured fields of a
// genai.APIError are checked before the error text for every class.
func Classify(err error) Result {
	apiErr, hasAPI := asAPIError(err)
	text := ""
	if err != nil {
		text = err.Error()
	}

	switch {
	case hasAPI && hasReason(apiErr, reasonKeyInvalid),
		strings.Contains(text, "API key not valid"),
		strings.Contains(text, reasonKeyInvalid):
		return Result{Kind: KindInvalidKey, Code: CodeInvalidKey}

	case hasAPI && apiErr.Status == "NOT_FOUND" && strings.Contains(apiErr.Message, entityNotFoundText),
		strings.Contains(text, entityNotFoundText):
		return Result{Kind: KindEntityNotFound, Code: CodeEntityNotFound}

	case hasAPI && (apiErr.Code == http.StatusTooManyRequests || apiErr.Status == "RESOURCE_EXHAUSTED"),
		strings.Contains(text, "rate limit"),
		strings.Contains(text, "429"):
		return Result{Kind: KindRateLimited, Code: CodeRateLimited}

	case hasAPI && apiErr.Status == "FAILED_PRECONDITION" && strings.Contains(strings.ToLower(apiErr.Message), "billing"),
		strings.Contains(text, "billing"):
		return Result{Kind: KindBilling, Code: CodeBilling}
	}

	var local media.LocalError
	if errors.As(err, &local) {
		return Result{Kind: KindLocal, Code: local.Code(), local: local}
	}
	return Result{Kind: KindUnexpected, Code: CodeUnexpected}
}

// Message renders the localized message for r.
func (r Result) Message(p *message.Printer) string {
	switch r.Kind {
	case KindInvalidKey:
		return p.Sprintf(i18n.MsgInvalidKey)
	case KindEntityNotFound:
		return p.Sprintf(i18n.MsgEntityNotFound)
	case KindRateLimited:
		return p.Sprintf(i18n.MsgRateLimited)
	case KindBilling:
		return p.Sprintf(i18n.MsgBilling)
	case KindLocal:
		if r.local != nil {
			return r.local.Message(p)
		}
	}
	return p.Sprintf(i18n.MsgUnexpected)
}

// HTML reports whether the message carries markup.
func (r Result) HTML() bool {
	return r.Kind == KindEntityNotFound
}

// ResetsKey reports whether the key selection should be withdrawn: the
// selected key was rejected or cannot reach the models.
func (r Result) ResetsKey() bool {
	return r.Kind == KindInvalidKey || r.Kind == KindEntityNotFound
}

// HTTPStatus is the status a transport should answer with.
func (r Result) HTTPStatus() int {
	switch r.Kind {
	case KindInvalidKey:
		return http.StatusUnauthorized
	case KindEntityNotFound:
		return http.StatusFailedDependency
	case KindRateLimited:
		return http.StatusTooManyRequests
	}
	return http.StatusBadGateway
}

func asAPIError(err error) (genai.APIError, bool) {
	var value genai.APIError
	if errors.As(err, &value) {
		return value, true
	}
	var ptr *genai.APIError
	if errors.As(err, &ptr) && ptr != nil {
		return *ptr, true
	}
	return genai.APIError{}, false
}

func hasReason(apiErr genai.APIError, reason string) bool {
	for _, detail := range apiErr.Details {
		if r, ok := detail["reason"].(string); ok && r == reason {
			return true
		}
	}
	return false
}
