package infra

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Blob backends supported by BLOB_BACKEND.
const (
	BlobBackendMemory = "memory"
	BlobBackendFile   = "file"
	BlobBackendRedis  = "redis"
)

// Config represents application configuration loaded from environment variables.
type Config struct {
	AppEnv         string   `envconfig:"APP_ENV" default:"development"`
	Port           string   `envconfig:"PORT" default:"8080"`
	PublicBaseURL  string   `envconfig:"PUBLIC_BASE_URL"`
	AllowedOrigins []string `envconfig:"ALLOWED_ORIGINS"`
	DefaultLocale  string   `envconfig:"DEFAULT_LOCALE" default:"ar"`
	GeoIPDBPath    string   `envconfig:"GEOIP_DB_PATH"`

	GeminiAPIKey  string `envconfig:"GEMINI_API_KEY"`
	GeminiBaseURL string `envconfig:"GEMINI_BASE_URL"`
	ImageModel    string `envconfig:"IMAGE_MODEL" default:"imagen-4.0-generate-001"`
	EditModel     string `envconfig:"EDIT_MODEL" default:"gemini-2.5-flash-image"`
	VideoModel    string `envconfig:"VIDEO_MODEL" default:"veo-3.1-fast-generate-preview"`

	VideoPollInterval    time.Duration `envconfig:"VIDEO_POLL_INTERVAL" default:"10s"`
	VideoPollMaxAttempts int           `envconfig:"VIDEO_POLL_MAX_ATTEMPTS" default:"90"`
	VideoTimeout         time.Duration `envconfig:"VIDEO_TIMEOUT" default:"20m"`
	KeySelectionRequired bool          `envconfig:"KEY_SELECTION_REQUIRED" default:"false"`
	MaxUploadBytes       int64         `envconfig:"MAX_UPLOAD_BYTES" default:"20971520"`

	BlobBackend string        `envconfig:"BLOB_BACKEND" default:"memory"`
	BlobDir     string        `envconfig:"BLOB_DIR" default:"./data/blobs"`
	BlobTTL     time.Duration `envconfig:"BLOB_TTL" default:"1h"`
	RedisURL    string        `envconfig:"REDIS_URL"`

	HTTPReadTimeout  time.Duration `envconfig:"HTTP_READ_TIMEOUT" default:"15s"`
	HTTPWriteTimeout time.Duration `envconfig:"HTTP_WRITE_TIMEOUT" default:"2m"`
	HTTPIdleTimeout  time.Duration `envconfig:"HTTP_IDLE_TIMEOUT" default:"60s"`
}

// LoadConfig loads configuration from environment variables and applies defaults where needed.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	if cfg.GeminiAPIKey == "" {
		cfg.GeminiAPIKey = os.Getenv("API_KEY")
	}
	cfg.GeminiAPIKey = strings.TrimSpace(cfg.GeminiAPIKey)
	cfg.PublicBaseURL = strings.TrimRight(strings.TrimSpace(cfg.PublicBaseURL), "/")
	cfg.BlobBackend = strings.ToLower(strings.TrimSpace(cfg.BlobBackend))
	cfg.DefaultLocale = strings.ToLower(strings.TrimSpace(cfg.DefaultLocale))
	cfg.AllowedOrigins = trimAll(cfg.AllowedOrigins)

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// IsDevelopment reports whether the service runs with development defaults.
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

func (c *Config) validate() error {
	switch c.BlobBackend {
	case BlobBackendMemory:
	case BlobBackendFile:
		if strings.TrimSpace(c.BlobDir) == "" {
			return fmt.Errorf("BLOB_DIR is required when BLOB_BACKEND=file")
		}
	case BlobBackendRedis:
		if strings.TrimSpace(c.RedisURL) == "" {
			return fmt.Errorf("REDIS_URL is required when BLOB_BACKEND=redis")
		}
	default:
		return fmt.Errorf("unsupported BLOB_BACKEND %q", c.BlobBackend)
	}
	if c.VideoPollInterval <= 0 {
		return fmt.Errorf("VIDEO_POLL_INTERVAL must be positive")
	}
	if c.VideoPollMaxAttempts <= 0 {
		return fmt.Errorf("VIDEO_POLL_MAX_ATTEMPTS must be positive")
	}
	if c.MaxUploadBytes <= 0 {
		return fmt.Errorf("MAX_UPLOAD_BYTES must be positive")
	}
	switch c.DefaultLocale {
	case "ar", "en":
	default:
		return fmt.Errorf("unsupported DEFAULT_LOCALE %q", c.DefaultLocale)
	}
	return nil
}

func trimAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
