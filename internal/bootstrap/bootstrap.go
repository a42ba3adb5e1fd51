// Package bootstrap assembles the studio from configuration. Both the API
// server and the CLI start from here.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/redis/go-redis/v9"

	"mediastudio/internal/infra"
	"mediastudio/internal/infra/credentials"
	"mediastudio/internal/infra/geoip"
	"mediastudio/internal/media"
	"mediastudio/internal/storage"
	"mediastudio/internal/studio"
)

// Services is the assembled dependency graph.
type Services struct {
	Blobs  storage.Store
	Keys   credentials.Provider
	Media  *media.Client
	Studio *studio.Studio
	GeoIP  *geoip.Resolver

	redis *redis.Client
}

// Build wires every component named by cfg. Callers must Close the result.
func Build(ctx context.Context, cfg *infra.Config, logger *infra.Logger) (*Services, error) {
	if logger == nil {
		logger = infra.NopLogger()
	}
	s := &Services{}

	if cfg.RedisURL != "" {
		client, err := infra.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			return nil, err
		}
		s.redis = client
	}

	blobs, err := newBlobStore(cfg, s.redis)
	if err != nil {
		s.Close()
		return nil, err
	}
	s.Blobs = blobs
	s.Keys = newKeyProvider(cfg, s.redis)

	resolver, err := geoip.Open(cfg.GeoIPDBPath)
	if err != nil {
		logger.Warn().Err(err).Msg("geoip disabled")
	}
	s.GeoIP = resolver

	client, err := media.NewClient(media.Options{
		Backends:        media.NewGenAIBackendFactory(&http.Client{}, cfg.GeminiBaseURL),
		Keys:            s.Keys,
		Blobs:           s.Blobs,
		PublicBaseURL:   cfg.PublicBaseURL,
		ImageModel:      cfg.ImageModel,
		EditModel:       cfg.EditModel,
		VideoModel:      cfg.VideoModel,
		PollInterval:    cfg.VideoPollInterval,
		MaxPollAttempts: cfg.VideoPollMaxAttempts,
		Logger:          logger,
	})
	if err != nil {
		s.Close()
		return nil, err
	}
	s.Media = client
	s.Studio = studio.New(client, s.Keys, logger)

	logger.Info().
		Str("blob_backend", cfg.BlobBackend).
		Bool("key_selection", cfg.KeySelectionRequired).
		Bool("geoip", resolver != nil).
		Msg("services ready")
	return s, nil
}

// Close releases the connections Build opened.
func (s *Services) Close() error {
	var errs []error
	if s.GeoIP != nil {
		errs = append(errs, s.GeoIP.Close())
	}
	if s.redis != nil {
		errs = append(errs, s.redis.Close())
	}
	return errors.Join(errs...)
}

func newBlobStore(cfg *infra.Config, client *redis.Client) (storage.Store, error) {
	switch cfg.BlobBackend {
	case infra.BlobBackendFile:
		return storage.NewFileStore(cfg.BlobDir, cfg.BlobTTL)
	case infra.BlobBackendRedis:
		if client == nil {
			return nil, fmt.Errorf("bootstrap: blob backend %q needs REDIS_URL", cfg.BlobBackend)
		}
		return storage.NewRedisStore(client, cfg.BlobTTL), nil
	default:
		return storage.NewMemoryStore(cfg.BlobTTL), nil
	}
}

// newKeyProvider picks the static configured key unless the host asks the
// user to select one. A selection is shared through redis when available.
func newKeyProvider(cfg *infra.Config, client *redis.Client) credentials.Provider {
	if !cfg.KeySelectionRequired {
		return credentials.Static{Key: cfg.GeminiAPIKey}
	}
	var backend credentials.Backend = credentials.NewMemoryBackend()
	if client != nil {
		backend = credentials.NewRedisBackend(client)
	}
	return credentials.NewStore(backend, cfg.GeminiAPIKey)
}
