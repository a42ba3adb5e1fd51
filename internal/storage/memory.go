package storage

import (
	"context"
	"sync"
	"time"
)

// MemoryStore keeps blobs in process memory. Expired entries are evicted
// lazily on Put.
type MemoryStore struct {
	mu    sync.RWMutex
	ttl   time.Duration
	blobs map[string]*Blob
	now   func() time.Time
}

// NewMemoryStore returns an in-memory store. ttl <= 0 keeps blobs forever.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		ttl:   ttl,
		blobs: make(map[string]*Blob),
		now:   time.Now,
	}
}

func (s *MemoryStore) Put(ctx context.Context, data []byte, contentType string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	id := newID()
	blob := &Blob{
		Data:        append([]byte(nil), data...),
		ContentType: defaultContentType(contentType),
		CreatedAt:   s.now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.evictLocked()
	s.blobs[id] = blob
	return id, nil
}

func (s *MemoryStore) Get(ctx context.Context, id string) (*Blob, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	blob, ok := s.blobs[id]
	s.mu.RUnlock()
	if !ok || s.expired(blob) {
		return nil, ErrNotFound
	}
	return blob, nil
}

// Len reports the number of stored blobs, expired ones included.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.blobs)
}

func (s *MemoryStore) expired(b *Blob) bool {
	return s.ttl > 0 && s.now().Sub(b.CreatedAt) > s.ttl
}

func (s *MemoryStore) evictLocked() {
	for id, blob := range s.blobs {
		if s.expired(blob) {
			delete(s.blobs, id)
		}
	}
}

var _ Store = (*MemoryStore)(nil)
