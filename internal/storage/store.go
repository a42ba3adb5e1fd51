// Package storage keeps generated media bytes for a limited time so the
// studio can hand the browser a short local reference instead of the bytes.
package storage

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a blob is unknown or has expired.
var ErrNotFound = errors.New("storage: blob not found")

// Blob is a stored media payload.
type Blob struct {
	Data        []byte
	ContentType string
	CreatedAt   time.Time
}

// Store persists blobs under generated identifiers.
type Store interface {
	Put(ctx context.Context, data []byte, contentType string) (string, error)
	Get(ctx context.Context, id string) (*Blob, error)
}

func newID() string {
	return uuid.NewString()
}

// validID rejects anything that is not a canonical UUID, which also keeps
// identifiers safe to use as file names and redis keys.
func validID(id string) bool {
	parsed, err := uuid.Parse(strings.TrimSpace(id))
	return err == nil && parsed.String() == id
}

func defaultContentType(contentType string) string {
	contentType = strings.TrimSpace(contentType)
	if contentType == "" {
		return "application/octet-stream"
	}
	return contentType
}
