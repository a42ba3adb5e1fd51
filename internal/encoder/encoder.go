// Package encoder turns user-selected files into the base64 payload the
// media client sends to the remote API.
package encoder

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"strings"
)

var (
	ErrNotImage = errors.New("encoder: file is not an image")
	ErrTooLarge = errors.New("encoder: file exceeds size limit")
	ErrEmpty    = errors.New("encoder: file is empty")
)

// sniffLen is the number of leading bytes http.DetectContentType looks at.
const sniffLen = 512

// SourceImage is an uploaded image ready to be sent for editing. Data holds
// the base64 encoded bytes without any data-URI prefix.
type SourceImage struct {
	Data     string
	MIMEType string
	Filename string
	Size     int64
}

// Encode returns the standard base64 encoding of everything read from r.
// Read failures are returned as-is, wrapped.
func Encode(r io.Reader) (string, error) {
	var buf bytes.Buffer
	enc := base64.NewEncoder(base64.StdEncoding, &buf)
	if _, err := io.Copy(enc, r); err != nil {
		return "", fmt.Errorf("encoder: read: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("encoder: flush: %w", err)
	}
	return buf.String(), nil
}

// Decode reverses Encode.
func Decode(data string) ([]byte, error) {
	raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(data))
	if err != nil {
		return nil, fmt.Errorf("encoder: decode: %w", err)
	}
	return raw, nil
}

// EncodeFile reads an uploaded multipart file and encodes it. The declared
// content type is kept; when it is missing or generic the type is sniffed from
// the file contents. Non-image uploads and uploads larger than maxBytes are
// rejected. maxBytes <= 0 disables the size check.
func EncodeFile(fh *multipart.FileHeader, maxBytes int64) (*SourceImage, error) {
	if fh == nil {
		return nil, ErrEmpty
	}
	if maxBytes > 0 && fh.Size > maxBytes {
		return nil, ErrTooLarge
	}
	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("encoder: open upload: %w", err)
	}
	defer f.Close()

	img, err := EncodeImage(f, fh.Header.Get("Content-Type"), maxBytes)
	if err != nil {
		return nil, err
	}
	img.Filename = fh.Filename
	return img, nil
}

// EncodeImage is EncodeFile for callers that already hold a reader, such as
// the CLI reading from disk.
func EncodeImage(r io.Reader, declaredType string, maxBytes int64) (*SourceImage, error) {
	if maxBytes > 0 {
		r = io.LimitReader(r, maxBytes+1)
	}
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("encoder: read: %w", err)
	}
	if len(raw) == 0 {
		return nil, ErrEmpty
	}
	if maxBytes > 0 && int64(len(raw)) > maxBytes {
		return nil, ErrTooLarge
	}

	mimeType := normalizeType(declaredType)
	if mimeType == "" || mimeType == "application/octet-stream" {
		head := raw
		if len(head) > sniffLen {
			head = head[:sniffLen]
		}
		mimeType = normalizeType(http.DetectContentType(head))
	}
	if !strings.HasPrefix(mimeType, "image/") {
		return nil, ErrNotImage
	}

	data, err := Encode(bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}
	return &SourceImage{Data: data, MIMEType: mimeType, Size: int64(len(raw))}, nil
}

func normalizeType(contentType string) string {
	contentType = strings.TrimSpace(contentType)
	if contentType == "" {
		return ""
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return ""
	}
	return strings.ToLower(mediaType)
}
