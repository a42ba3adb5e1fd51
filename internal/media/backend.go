package media

import (
	"context"
	"net/http"
	"strings"

	"google.golang.org/genai"
)

// Backend is the slice of the Gemini API the studio relies on.
type Backend interface {
	GenerateImages(ctx context.Context, model, prompt string, cfg *genai.GenerateImagesConfig) (*genai.GenerateImagesResponse, error)
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, cfg *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
	GenerateVideos(ctx context.Context, model, prompt string, image *genai.Image, cfg *genai.GenerateVideosConfig) (*genai.GenerateVideosOperation, error)
	GetVideosOperation(ctx context.Context, op *genai.GenerateVideosOperation, cfg *genai.GetOperationConfig) (*genai.GenerateVideosOperation, error)
}

// BackendFactory builds a Backend for one call. A fresh backend per call
// picks up a key selected since the previous call.
type BackendFactory func(ctx context.Context, apiKey string) (Backend, error)

// GenAIBackend adapts *genai.Client to Backend.
type GenAIBackend struct {
	client *genai.Client
}

func (b *GenAIBackend) GenerateImages(ctx context.Context, model, prompt string, cfg *genai.GenerateImagesConfig) (*genai.GenerateImagesResponse, error) {
	return b.client.Models.GenerateImages(ctx, model, prompt, cfg)
}

func (b *GenAIBackend) GenerateContent(ctx context.Context, model string, contents []*genai.Content, cfg *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	return b.client.Models.GenerateContent(ctx, model, contents, cfg)
}

func (b *GenAIBackend) GenerateVideos(ctx context.Context, model, prompt string, image *genai.Image, cfg *genai.GenerateVideosConfig) (*genai.GenerateVideosOperation, error) {
	return b.client.Models.GenerateVideos(ctx, model, prompt, image, cfg)
}

func (b *GenAIBackend) GetVideosOperation(ctx context.Context, op *genai.GenerateVideosOperation, cfg *genai.GetOperationConfig) (*genai.GenerateVideosOperation, error) {
	return b.client.Operations.GetVideosOperation(ctx, op, cfg)
}

// NewGenAIBackendFactory returns a factory creating Gemini API clients. An
// empty baseURL keeps the SDK default endpoint.
func NewGenAIBackendFactory(httpClient *http.Client, baseURL string) BackendFactory {
	baseURL = strings.TrimSpace(baseURL)
	return func(ctx context.Context, apiKey string) (Backend, error) {
		cfg := &genai.ClientConfig{
			APIKey:     apiKey,
			Backend:    genai.BackendGeminiAPI,
			HTTPClient: httpClient,
		}
		if baseURL != "" {
			cfg.HTTPOptions = genai.HTTPOptions{BaseURL: baseURL}
		}
		client, err := genai.NewClient(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return &GenAIBackend{client: client}, nil
	}
}

var _ Backend = (*GenAIBackend)(nil)
