package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "mediastudio:blob:"

// RedisStore keeps blobs in a redis hash per blob with a TTL, which suits
// multi-instance deployments where the instance serving /v1/blobs may differ
// from the one that generated the video.
type RedisStore struct {
	client redis.UniversalClient
	ttl    time.Duration
}

// NewRedisStore wraps an existing redis client. ttl <= 0 stores blobs without
// expiry.
func NewRedisStore(client redis.UniversalClient, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func (s *RedisStore) Put(ctx context.Context, data []byte, contentType string) (string, error) {
	id := newID()
	key := redisKeyPrefix + id
	now := time.Now().UTC()
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, key,
			"type", defaultContentType(contentType),
			"created", now.Format(time.RFC3339Nano),
			"data", data,
		)
		if s.ttl > 0 {
			pipe.Expire(ctx, key, s.ttl)
		}
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("storage: redis put: %w", err)
	}
	return id, nil
}

func (s *RedisStore) Get(ctx context.Context, id string) (*Blob, error) {
	if !validID(id) {
		return nil, ErrNotFound
	}
	fields, err := s.client.HGetAll(ctx, redisKeyPrefix+id).Result()
	if err != nil {
		return nil, fmt.Errorf("storage: redis get: %w", err)
	}
	data, ok := fields["data"]
	if !ok {
		return nil, ErrNotFound
	}
	created, _ := time.Parse(time.RFC3339Nano, fields["created"])
	return &Blob{Data: []byte(data), ContentType: defaultContentType(fields["type"]), CreatedAt: created}, nil
}

var _ Store = (*RedisStore)(nil)
