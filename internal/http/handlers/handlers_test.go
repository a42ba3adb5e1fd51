package handlers

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"sync"
	"testing"
	"time"

	"mediastudio/internal/infra"
	"mediastudio/internal/infra/credentials"
	"mediastudio/internal/middleware"
	"mediastudio/internal/storage"
	"mediastudio/internal/studio"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

type stubGenerator struct {
	mu         sync.Mutex
	ref        string
	err        error
	calls      int
	lastPrompt string
	lastImage  string
	lastMIME   string
}

func (g *stubGenerator) record(prompt string) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.calls++
	g.lastPrompt = prompt
	return g.ref, g.err
}

func (g *stubGenerator) GenerateImage(_ context.Context, prompt string) (string, error) {
	return g.record(prompt)
}

func (g *stubGenerator) EditImage(_ context.Context, prompt, imageBase64, mimeType string) (string, error) {
	g.mu.Lock()
	g.lastImage, g.lastMIME = imageBase64, mimeType
	g.mu.Unlock()
	return g.record(prompt)
}

func (g *stubGenerator) GenerateVideo(_ context.Context, prompt string) (string, error) {
	return g.record(prompt)
}

func newTestApp(gen studio.Generator) (*App, *credentials.Store) {
	keys := credentials.NewStore(credentials.NewMemoryBackend(), "env-key")
	st := studio.New(gen, keys, nil)
	cfg := &infra.Config{MaxUploadBytes: 1 << 20, VideoTimeout: time.Minute}
	return NewApp(st, storage.NewMemoryStore(time.Hour), cfg, nil), keys
}

func newRequest(method, target string, body io.Reader) *http.Request {
	req := httptest.NewRequest(method, target, body)
	ctx := context.WithValue(req.Context(), middleware.LocaleKey, "en")
	return req.WithContext(ctx)
}

func jsonRequest(t *testing.T, method, target string, v any) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	if v != nil {
		if err := json.NewEncoder(&buf).Encode(v); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := newRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func serve(h http.HandlerFunc, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) errorBody {
	t.Helper()
	var env errorEnvelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode error body %q: %v", rec.Body.String(), err)
	}
	return env.Error
}

func editRequest(t *testing.T, prompt, filename, contentType string, data []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if err := mw.WriteField("prompt", prompt); err != nil {
		t.Fatalf("write prompt: %v", err)
	}
	if data != nil {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", `form-data; name="image"; filename="`+filename+`"`)
		if contentType != "" {
			h.Set("Content-Type", contentType)
		}
		part, err := mw.CreatePart(h)
		if err != nil {
			t.Fatalf("create part: %v", err)
		}
		_, _ = part.Write(data)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close multipart: %v", err)
	}
	req := newRequest(http.MethodPost, "/v1/images/edit", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestImagesGenerate(t *testing.T) {
	gen := &stubGenerator{ref: "data:image/jpeg;base64,AAAA"}
	app, _ := newTestApp(gen)

	rec := serve(app.ImagesGenerate, jsonRequest(t, http.MethodPost, "/v1/images/generate", map[string]string{"prompt": "  "}))
	if rec.Code != http.StatusBadRequest || decodeEnvelope(t, rec).Code != studio.CodeEmptyPrompt {
		t.Fatalf("empty prompt = %d %s", rec.Code, rec.Body.String())
	}
	if gen.calls != 0 {
		t.Fatal("generator called for an empty prompt")
	}

	rec = serve(app.ImagesGenerate, newRequest(http.MethodPost, "/v1/images/generate", strings.NewReader("{")))
	if rec.Code != http.StatusBadRequest || decodeEnvelope(t, rec).Code != "bad_request" {
		t.Fatalf("malformed body = %d %s", rec.Code, rec.Body.String())
	}

	rec = serve(app.ImagesGenerate, jsonRequest(t, http.MethodPost, "/v1/images/generate", map[string]string{"prompt": "a fox"}))
	if rec.Code != http.StatusOK {
		t.Fatalf("generate = %d %s", rec.Code, rec.Body.String())
	}
	var resp mediaResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.MediaRef != gen.ref || !strings.HasPrefix(resp.Filename, "generated-image-") || !strings.HasSuffix(resp.Filename, ".jpeg") {
		t.Fatalf("response = %+v", resp)
	}

	gen.err = errors.New("API key not valid")
	rec = serve(app.ImagesGenerate, jsonRequest(t, http.MethodPost, "/v1/images/generate", map[string]string{"prompt": "a fox"}))
	body := decodeEnvelope(t, rec)
	if rec.Code != http.StatusBadGateway || body.Code != studio.CodeImageFailed || body.KeyReset {
		t.Fatalf("failure = %d %+v", rec.Code, body)
	}
}

func TestImagesEdit(t *testing.T) {
	gen := &stubGenerator{ref: "data:image/png;base64,AAAA"}
	app, _ := newTestApp(gen)

	rec := serve(app.ImagesEdit, editRequest(t, "add a hat", "", "", nil))
	if rec.Code != http.StatusBadRequest || decodeEnvelope(t, rec).Code != studio.CodeMissingImage {
		t.Fatalf("missing image = %d %s", rec.Code, rec.Body.String())
	}

	rec = serve(app.ImagesEdit, editRequest(t, "add a hat", "notes.txt", "text/plain", []byte("hello")))
	if rec.Code != http.StatusUnsupportedMediaType || decodeEnvelope(t, rec).Code != "not_image" {
		t.Fatalf("non-image upload = %d %s", rec.Code, rec.Body.String())
	}

	rec = serve(app.ImagesEdit, editRequest(t, "add a hat", "big.png", "image/png", bytes.Repeat([]byte{1}, int(app.MaxUploadBytes)+1)))
	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("oversized upload = %d %s", rec.Code, rec.Body.String())
	}
	if gen.calls != 0 {
		t.Fatal("generator called for rejected uploads")
	}

	rec = serve(app.ImagesEdit, editRequest(t, "add a hat", "cat.png", "", pngHeader))
	if rec.Code != http.StatusOK {
		t.Fatalf("edit = %d %s", rec.Code, rec.Body.String())
	}
	if gen.lastPrompt != "add a hat" || gen.lastMIME != "image/png" {
		t.Fatalf("generator got prompt %q mime %q", gen.lastPrompt, gen.lastMIME)
	}
	if gen.lastImage != base64.StdEncoding.EncodeToString(pngHeader) {
		t.Fatalf("generator got image %q", gen.lastImage)
	}
	if !strings.Contains(rec.Body.String(), `"filename":"edited-image-`) {
		t.Fatalf("edit body = %s", rec.Body.String())
	}
}

func TestVideosGenerateKeyFlow(t *testing.T) {
	gen := &stubGenerator{ref: "/v1/blobs/abc"}
	app, _ := newTestApp(gen)
	video := func() *httptest.ResponseRecorder {
		return serve(app.VideosGenerate, jsonRequest(t, http.MethodPost, "/v1/videos/generate", map[string]string{"prompt": "a boat"}))
	}

	rec := video()
	if rec.Code != http.StatusPreconditionRequired || decodeEnvelope(t, rec).Code != studio.CodeKeyRequired {
		t.Fatalf("without key = %d %s", rec.Code, rec.Body.String())
	}

	rec = serve(app.KeySelect, jsonRequest(t, http.MethodPost, "/v1/keys/select", map[string]string{"key": " "}))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("blank key = %d", rec.Code)
	}
	rec = serve(app.KeySelect, jsonRequest(t, http.MethodPost, "/v1/keys/select", map[string]string{"key": "picked"}))
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"selected":true`) {
		t.Fatalf("select = %d %s", rec.Code, rec.Body.String())
	}

	rec = video()
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"media_ref":"/v1/blobs/abc"`) {
		t.Fatalf("generate = %d %s", rec.Code, rec.Body.String())
	}

	gen.err = errors.New("Requested entity was not found.")
	rec = video()
	body := decodeEnvelope(t, rec)
	if rec.Code != http.StatusFailedDependency || !body.HTML || !body.KeyReset {
		t.Fatalf("entity not found = %d %+v", rec.Code, body)
	}
	rec = serve(app.KeyStatus, newRequest(http.MethodGet, "/v1/keys/status", nil))
	if !strings.Contains(rec.Body.String(), `"selected":false`) {
		t.Fatalf("status after reset = %s", rec.Body.String())
	}
}

func TestKeyClear(t *testing.T) {
	app, keys := newTestApp(&stubGenerator{})
	if err := keys.RequestKeySelection(context.Background(), "picked"); err != nil {
		t.Fatalf("select: %v", err)
	}
	rec := serve(app.KeyClear, newRequest(http.MethodDelete, "/v1/keys/select", nil))
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"selected":false`) {
		t.Fatalf("clear = %d %s", rec.Code, rec.Body.String())
	}
	if keys.HasKey(context.Background()) {
		t.Fatal("selection survived clear")
	}
}

func TestHealthReportsKeySelection(t *testing.T) {
	app, keys := newTestApp(&stubGenerator{})
	rec := serve(app.Health, newRequest(http.MethodGet, "/v1/healthz", nil))
	if !strings.Contains(rec.Body.String(), `"key_selected":false`) {
		t.Fatalf("health = %s", rec.Body.String())
	}
	if err := keys.RequestKeySelection(context.Background(), "picked"); err != nil {
		t.Fatalf("select: %v", err)
	}
	rec = serve(app.Health, newRequest(http.MethodGet, "/v1/healthz", nil))
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"key_selected":true`) {
		t.Fatalf("health = %d %s", rec.Code, rec.Body.String())
	}
}
