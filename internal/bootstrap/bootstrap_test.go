package bootstrap

import (
	"context"
	"testing"
	"time"

	"mediastudio/internal/infra"
	"mediastudio/internal/infra/credentials"
	"mediastudio/internal/storage"
)

func baseConfig() *infra.Config {
	return &infra.Config{
		BlobBackend:          infra.BlobBackendMemory,
		BlobTTL:              time.Hour,
		GeminiAPIKey:         "env-key",
		VideoPollInterval:    time.Second,
		VideoPollMaxAttempts: 3,
		MaxUploadBytes:       1 << 20,
	}
}

func TestBuildDefaults(t *testing.T) {
	s, err := Build(context.Background(), baseConfig(), nil)
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}
	defer s.Close()

	if _, ok := s.Blobs.(*storage.MemoryStore); !ok {
		t.Fatalf("blob store = %T, want *storage.MemoryStore", s.Blobs)
	}
	if _, ok := s.Keys.(credentials.Static); !ok {
		t.Fatalf("key provider = %T, want credentials.Static", s.Keys)
	}
	if s.Media == nil || s.Studio == nil {
		t.Fatal("media client and studio must be wired")
	}
	if s.GeoIP != nil {
		t.Fatal("geoip should stay disabled without a database path")
	}
}

func TestBuildFileStoreAndKeySelection(t *testing.T) {
	cfg := baseConfig()
	cfg.BlobBackend = infra.BlobBackendFile
	cfg.BlobDir = t.TempDir()
	cfg.KeySelectionRequired = true

	s, err := Build(context.Background(), cfg, nil)
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}
	defer s.Close()

	if _, ok := s.Blobs.(*storage.FileStore); !ok {
		t.Fatalf("blob store = %T, want *storage.FileStore", s.Blobs)
	}
	store, ok := s.Keys.(*credentials.Store)
	if !ok {
		t.Fatalf("key provider = %T, want *credentials.Store", s.Keys)
	}
	ctx := context.Background()
	if store.HasKey(ctx) {
		t.Fatal("no key should be selected yet")
	}
	if key, err := store.APIKey(ctx); err != nil || key != "env-key" {
		t.Fatalf("APIKey() = %q, %v", key, err)
	}
}

func TestBuildRedisBlobsNeedURL(t *testing.T) {
	cfg := baseConfig()
	cfg.BlobBackend = infra.BlobBackendRedis
	if _, err := Build(context.Background(), cfg, nil); err == nil {
		t.Fatal("expected error for redis blobs without REDIS_URL")
	}
}
