package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// FileStore persists blobs onto the local filesystem. Each blob is written as
// <id>.bin next to a <id>.json sidecar carrying its content type and creation
// time.
type FileStore struct {
	basePath string
	ttl      time.Duration
	now      func() time.Time
}

type fileMeta struct {
	ContentType string    `json:"content_type"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewFileStore initializes a FileStore rooted at basePath. ttl <= 0 keeps
// blobs until they are removed externally.
func NewFileStore(basePath string, ttl time.Duration) (*FileStore, error) {
	basePath = strings.TrimSpace(basePath)
	if basePath == "" {
		return nil, errors.New("storage: base path is required")
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("storage: ensure base path: %w", err)
	}
	return &FileStore{basePath: basePath, ttl: ttl, now: time.Now}, nil
}

// BasePath returns the configured root directory.
func (s *FileStore) BasePath() string {
	if s == nil {
		return ""
	}
	return s.basePath
}

// Put writes a new blob and sweeps expired ones, like MemoryStore does.
func (s *FileStore) Put(ctx context.Context, data []byte, contentType string) (string, error) {
	if _, err := s.Sweep(ctx); err != nil {
		return "", err
	}
	id := newID()
	meta, err := json.Marshal(fileMeta{ContentType: defaultContentType(contentType), CreatedAt: s.now().UTC()})
	if err != nil {
		return "", fmt.Errorf("storage: encode meta: %w", err)
	}
	if _, err := s.Write(ctx, id+".bin", data); err != nil {
		return "", err
	}
	if _, err := s.Write(ctx, id+".json", meta); err != nil {
		return "", err
	}
	return id, nil
}

func (s *FileStore) Get(ctx context.Context, id string) (*Blob, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !validID(id) {
		return nil, ErrNotFound
	}
	meta, err := s.meta(id)
	if err != nil {
		return nil, err
	}
	if s.expired(meta) {
		if err := s.remove(id); err != nil {
			return nil, err
		}
		return nil, ErrNotFound
	}
	data, err := s.read(id + ".bin")
	if err != nil {
		return nil, err
	}
	return &Blob{Data: data, ContentType: meta.ContentType, CreatedAt: meta.CreatedAt}, nil
}

// Sweep deletes every expired blob and reports how many were removed.
func (s *FileStore) Sweep(ctx context.Context) (int, error) {
	if s == nil || s.ttl <= 0 {
		return 0, nil
	}
	entries, err := os.ReadDir(s.basePath)
	if err != nil {
		return 0, fmt.Errorf("storage: list blobs: %w", err)
	}
	removed := 0
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return removed, err
		}
		id, ok := strings.CutSuffix(entry.Name(), ".json")
		if !ok || entry.IsDir() || !validID(id) {
			continue
		}
		meta, err := s.meta(id)
		if errors.Is(err, ErrNotFound) {
			continue
		}
		if err != nil {
			return removed, err
		}
		if !s.expired(meta) {
			continue
		}
		if err := s.remove(id); err != nil {
			return removed, err
		}
		removed++
	}
	return removed, nil
}

func (s *FileStore) meta(id string) (fileMeta, error) {
	var meta fileMeta
	raw, err := s.read(id + ".json")
	if err != nil {
		return meta, err
	}
	if err := json.Unmarshal(raw, &meta); err != nil {
		return meta, fmt.Errorf("storage: decode meta: %w", err)
	}
	return meta, nil
}

func (s *FileStore) expired(meta fileMeta) bool {
	return s.ttl > 0 && s.now().Sub(meta.CreatedAt) > s.ttl
}

// remove deletes the data file before its sidecar so a half-removed blob is
// still found, and expired, by the next sweep.
func (s *FileStore) remove(id string) error {
	for _, name := range []string{id + ".bin", id + ".json"} {
		err := os.Remove(filepath.Join(s.basePath, name))
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("storage: remove expired blob: %w", err)
		}
	}
	return nil
}

// Write persists the provided bytes at the given relative key and returns the
// canonicalized storage key. Keys are cleaned to prevent directory traversal.
func (s *FileStore) Write(ctx context.Context, key string, data []byte) (string, error) {
	if s == nil {
		return "", errors.New("storage: no store configured")
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	cleanKey, err := sanitizeKey(key)
	if err != nil {
		return "", err
	}
	fullPath := filepath.Join(s.basePath, filepath.FromSlash(cleanKey))
	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return "", fmt.Errorf("storage: ensure directory: %w", err)
	}
	if err := os.WriteFile(fullPath, data, 0o644); err != nil {
		return "", fmt.Errorf("storage: write file: %w", err)
	}
	return cleanKey, nil
}

func (s *FileStore) read(key string) ([]byte, error) {
	cleanKey, err := sanitizeKey(key)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(filepath.Join(s.basePath, filepath.FromSlash(cleanKey)))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("storage: read file: %w", err)
	}
	return data, nil
}

// sanitizeKey normalizes a key and prevents escaping the storage root.
func sanitizeKey(key string) (string, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return "", errors.New("storage: key is required")
	}
	key = strings.ReplaceAll(key, "\\", "/")
	key = strings.TrimPrefix(key, "./")
	key = strings.TrimLeft(key, "/")
	cleaned := filepath.ToSlash(filepath.Clean(key))
	if cleaned == "." || cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return "", errors.New("storage: invalid key")
	}
	return cleaned, nil
}

var _ Store = (*FileStore)(nil)
