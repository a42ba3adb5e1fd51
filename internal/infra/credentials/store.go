// Package credentials models the host credential-selection capability: a
// user picks the Gemini API key the studio should use, and the media client
// reads it back on every call.
package credentials

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/redis/go-redis/v9"
)

// ErrKeyRequired is returned when a key is requested but none is available.
var ErrKeyRequired = errors.New("credentials: api key is required")

// Selector is the credential-selection capability the video view depends on.
type Selector interface {
	HasKey(ctx context.Context) bool
	RequestKeySelection(ctx context.Context, key string) error
}

// Resetter is implemented by selectors whose selection can be withdrawn after
// the remote service rejects the key.
type Resetter interface {
	Reset(ctx context.Context) error
}

// Source hands the current key to the media client.
type Source interface {
	APIKey(ctx context.Context) (string, error)
}

// Provider is both ends of the capability: the shell selects, the media
// client reads.
type Provider interface {
	Selector
	Source
}

// Static is used when the host offers no selection capability: a key is
// always reported as available and the configured key is used.
type Static struct {
	Key string
}

func (s Static) HasKey(context.Context) bool { return true }

func (s Static) RequestKeySelection(context.Context, string) error { return nil }

func (s Static) APIKey(context.Context) (string, error) {
	key := strings.TrimSpace(s.Key)
	if key == "" {
		return "", ErrKeyRequired
	}
	return key, nil
}

// Backend persists the selected key.
type Backend interface {
	Load(ctx context.Context) (string, error)
	Save(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}

// Store is a Selector whose selection lives in a Backend. Until a key is
// selected the fallback key, if any, serves API calls but HasKey stays false.
type Store struct {
	backend  Backend
	fallback string
}

func NewStore(backend Backend, fallback string) *Store {
	return &Store{backend: backend, fallback: strings.TrimSpace(fallback)}
}

func (s *Store) HasKey(ctx context.Context) bool {
	key, err := s.backend.Load(ctx)
	return err == nil && key != ""
}

func (s *Store) RequestKeySelection(ctx context.Context, key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return ErrKeyRequired
	}
	return s.backend.Save(ctx, key)
}

func (s *Store) Reset(ctx context.Context) error {
	return s.backend.Clear(ctx)
}

func (s *Store) APIKey(ctx context.Context) (string, error) {
	key, err := s.backend.Load(ctx)
	if err != nil {
		return "", err
	}
	if key != "" {
		return key, nil
	}
	if s.fallback != "" {
		return s.fallback, nil
	}
	return "", ErrKeyRequired
}

// MemoryBackend keeps the selection in process memory.
type MemoryBackend struct {
	mu  sync.RWMutex
	key string
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{}
}

func (m *MemoryBackend) Load(context.Context) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.key, nil
}

func (m *MemoryBackend) Save(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.key = key
	return nil
}

func (m *MemoryBackend) Clear(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.key = ""
	return nil
}

const redisSelectedKey = "mediastudio:credentials:gemini"

// RedisBackend shares the selection across instances.
type RedisBackend struct {
	client redis.UniversalClient
}

func NewRedisBackend(client redis.UniversalClient) *RedisBackend {
	return &RedisBackend{client: client}
}

func (r *RedisBackend) Load(ctx context.Context) (string, error) {
	key, err := r.client.Get(ctx, redisSelectedKey).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(key), nil
}

func (r *RedisBackend) Save(ctx context.Context, key string) error {
	return r.client.Set(ctx, redisSelectedKey, key, 0).Err()
}

func (r *RedisBackend) Clear(ctx context.Context) error {
	return r.client.Del(ctx, redisSelectedKey).Err()
}

var (
	_ Provider = Static{}
	_ Provider = (*Store)(nil)
	_ Resetter = (*Store)(nil)
	_ Backend  = (*MemoryBackend)(nil)
	_ Backend  = (*RedisBackend)(nil)
)
