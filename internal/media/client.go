// Package media talks to the generative media API: text-to-image, image
// editing and text-to-video with a polled long-running operation.
package media

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"google.golang.org/genai"

	"mediastudio/internal/encoder"
	"mediastudio/internal/infra"
	"mediastudio/internal/infra/credentials"
	"mediastudio/internal/storage"
)

const (
	DefaultImageModel = "imagen-4.0-generate-001"
	DefaultEditModel  = "gemini-2.5-flash-image"
	DefaultVideoModel = "veo-3.1-fast-generate-preview"

	DefaultPollInterval = 10 * time.Second

	defaultVideoType = "video/mp4"
	blobPathPrefix   = "/v1/blobs/"
	modalityImage    = "IMAGE"
)

// Options controls how the media client is configured.
type Options struct {
	Backends        BackendFactory
	Keys            credentials.Source
	Blobs           storage.Store
	HTTPClient      *http.Client
	PublicBaseURL   string
	ImageModel      string
	EditModel       string
	VideoModel      string
	PollInterval    time.Duration
	MaxPollAttempts int
	Logger          *infra.Logger
}

// Client runs the three generation flows. Results are media references: data
// URIs for images and a blob path for videos.
type Client struct {
	backends     BackendFactory
	keys         credentials.Source
	blobs        storage.Store
	httpClient   *http.Client
	baseURL      string
	imageModel   string
	editModel    string
	videoModel   string
	pollInterval time.Duration
	maxPolls     int
	logger       *infra.Logger
}

// NewClient validates opts and fills in defaults. A nil HTTP client gets one
// without a timeout; video downloads are bounded by the caller's context.
func NewClient(opts Options) (*Client, error) {
	if opts.Backends == nil {
		return nil, errors.New("media: backend factory is required")
	}
	if opts.Keys == nil {
		return nil, errors.New("media: key source is required")
	}
	if opts.Blobs == nil {
		return nil, errors.New("media: blob store is required")
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = infra.NopLogger()
	}
	interval := opts.PollInterval
	if interval <= 0 {
		interval = DefaultPollInterval
	}

	return &Client{
		backends:     opts.Backends,
		keys:         opts.Keys,
		blobs:        opts.Blobs,
		httpClient:   httpClient,
		baseURL:      strings.TrimRight(strings.TrimSpace(opts.PublicBaseURL), "/"),
		imageModel:   valueOr(opts.ImageModel, DefaultImageModel),
		editModel:    valueOr(opts.EditModel, DefaultEditModel),
		videoModel:   valueOr(opts.VideoModel, DefaultVideoModel),
		pollInterval: interval,
		maxPolls:     opts.MaxPollAttempts,
		logger:       logger,
	}, nil
}

// GenerateImage renders one square JPEG for prompt.
func (c *Client) GenerateImage(ctx context.Context, prompt string) (string, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return "", ErrEmptyPrompt
	}
	backend, err := c.backend(ctx)
	if err != nil {
		return "", err
	}

	resp, err := backend.GenerateImages(ctx, c.imageModel, prompt, &genai.GenerateImagesConfig{
		NumberOfImages: 1,
		AspectRatio:    "1:1",
		OutputMIMEType: "image/jpeg",
	})
	if err != nil {
		return "", fmt.Errorf("generate image: %w", err)
	}
	if resp == nil {
		return "", ErrNoImage
	}
	for _, generated := range resp.GeneratedImages {
		if generated == nil || generated.Image == nil || len(generated.Image.ImageBytes) == 0 {
			continue
		}
		c.logger.Debug().Str("model", c.imageModel).Int("bytes", len(generated.Image.ImageBytes)).Msg("image generated")
		return dataURI("image/jpeg", generated.Image.ImageBytes), nil
	}
	return "", ErrNoImage
}

// EditImage applies prompt to the base64 encoded source image and returns the
// first image the model answers with as a PNG data URI.
func (c *Client) EditImage(ctx context.Context, prompt, imageBase64, mimeType string) (string, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return "", ErrEmptyPrompt
	}
	if imageBase64 == "" {
		return "", ErrMissingImage
	}
	data, err := encoder.Decode(imageBase64)
	if err != nil {
		return "", fmt.Errorf("edit image: %w", err)
	}
	backend, err := c.backend(ctx)
	if err != nil {
		return "", err
	}

	contents := []*genai.Content{{
		Role: "user",
		Parts: []*genai.Part{
			genai.NewPartFromBytes(data, mimeType),
			genai.NewPartFromText(prompt),
		},
	}}
	resp, err := backend.GenerateContent(ctx, c.editModel, contents, &genai.GenerateContentConfig{
		ResponseModalities: []string{modalityImage},
	})
	if err != nil {
		return "", fmt.Errorf("edit image: %w", err)
	}
	if resp == nil {
		return "", ErrEditFailed
	}
	for _, candidate := range resp.Candidates {
		if candidate == nil || candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part != nil && part.InlineData != nil && len(part.InlineData.Data) > 0 {
				c.logger.Debug().Str("model", c.editModel).Int("bytes", len(part.InlineData.Data)).Msg("image edited")
				return dataURI("image/png", part.InlineData.Data), nil
			}
		}
	}
	return "", ErrEditFailed
}

// GenerateVideo submits a 720p 16:9 video job, polls it until it is done,
// downloads the result and stores it as a blob. The poll loop stops when ctx
// ends or after the configured number of attempts.
func (c *Client) GenerateVideo(ctx context.Context, prompt string) (string, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return "", ErrEmptyPrompt
	}
	apiKey, err := c.keys.APIKey(ctx)
	if err != nil {
		return "", err
	}
	backend, err := c.backends(ctx, apiKey)
	if err != nil {
		return "", fmt.Errorf("media: create backend: %w", err)
	}

	op, err := backend.GenerateVideos(ctx, c.videoModel, prompt, nil, &genai.GenerateVideosConfig{
		NumberOfVideos: 1,
		Resolution:     "720p",
		AspectRatio:    "16:9",
	})
	if err != nil {
		return "", fmt.Errorf("generate video: %w", err)
	}
	if op == nil {
		return "", ErrVideoBlocked
	}
	c.logger.Info().Str("model", c.videoModel).Str("operation", op.Name).Msg("video job submitted")
	report(ctx, Progress{Stage: StageSubmitted})

	op, err = c.poll(ctx, backend, op)
	if err != nil {
		return "", err
	}
	if len(op.Error) > 0 {
		return "", fmt.Errorf("%w: %w", ErrVideoBlocked, operationError(op.Error))
	}

	video := firstVideo(op)
	if video == nil {
		return "", ErrVideoBlocked
	}
	report(ctx, Progress{Stage: StageDownloading})

	data, contentType := video.VideoBytes, valueOr(video.MIMEType, defaultVideoType)
	if len(data) == 0 {
		if video.URI == "" {
			return "", ErrVideoBlocked
		}
		data, contentType, err = c.download(ctx, video.URI, apiKey)
		if err != nil {
			return "", err
		}
	}

	id, err := c.blobs.Put(ctx, data, contentType)
	if err != nil {
		return "", fmt.Errorf("media: store video: %w", err)
	}
	c.logger.Info().Str("operation", op.Name).Str("blob_id", id).Int("bytes", len(data)).Msg("video stored")
	report(ctx, Progress{Stage: StageDone})
	return c.baseURL + blobPathPrefix + id, nil
}

func (c *Client) poll(ctx context.Context, backend Backend, op *genai.GenerateVideosOperation) (*genai.GenerateVideosOperation, error) {
	timer := time.NewTimer(c.pollInterval)
	defer timer.Stop()

	for attempt := 1; !op.Done; attempt++ {
		if c.maxPolls > 0 && attempt > c.maxPolls {
			c.logger.Warn().Str("operation", op.Name).Int("attempts", c.maxPolls).Msg("video poll budget exhausted")
			return nil, ErrPollExhausted
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}

		report(ctx, Progress{Stage: StagePolling, Attempt: attempt})
		next, err := backend.GetVideosOperation(ctx, op, nil)
		if err != nil {
			return nil, fmt.Errorf("poll video operation: %w", err)
		}
		if next == nil {
			return nil, errors.New("poll video operation: empty response")
		}
		op = next
		c.logger.Debug().Str("operation", op.Name).Int("attempt", attempt).Bool("done", op.Done).Msg("video poll")
		timer.Reset(c.pollInterval)
	}
	return op, nil
}

// download fetches the finished video. The download location requires the
// API key as a query parameter.
func (c *Client) download(ctx context.Context, rawURI, apiKey string) ([]byte, string, error) {
	u, err := url.Parse(rawURI)
	if err != nil {
		return nil, "", fmt.Errorf("media: parse download uri: %w", err)
	}
	q := u.Query()
	q.Set("key", apiKey)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, "", err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("media: download video: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, "", &DownloadError{StatusCode: resp.StatusCode}
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("media: read video: %w", err)
	}
	contentType := resp.Header.Get("Content-Type")
	if contentType == "" || strings.HasPrefix(contentType, "application/octet-stream") {
		contentType = defaultVideoType
	}
	return data, contentType, nil
}

func (c *Client) backend(ctx context.Context) (Backend, error) {
	apiKey, err := c.keys.APIKey(ctx)
	if err != nil {
		return nil, err
	}
	backend, err := c.backends(ctx, apiKey)
	if err != nil {
		return nil, fmt.Errorf("media: create backend: %w", err)
	}
	return backend, nil
}

func firstVideo(op *genai.GenerateVideosOperation) *genai.Video {
	if op.Response == nil {
		return nil
	}
	for _, generated := range op.Response.GeneratedVideos {
		if generated != nil && generated.Video != nil {
			return generated.Video
		}
	}
	return nil
}

func operationError(status map[string]any) error {
	err := &OperationError{}
	if msg, ok := status["message"].(string); ok {
		err.Message = msg
	}
	switch code := status["code"].(type) {
	case float64:
		err.Code = int(code)
	case int:
		err.Code = code
	}
	if err.Message == "" {
		err.Message = fmt.Sprint(status)
	}
	return err
}

func dataURI(mimeType string, data []byte) string {
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data)
}

func valueOr(value, fallback string) string {
	if v := strings.TrimSpace(value); v != "" {
		return v
	}
	return fallback
}
