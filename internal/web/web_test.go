package web

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"mediastudio/internal/i18n"
	"mediastudio/internal/studio"
)

func TestRenderArabicDefault(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, NewPage("", studio.TabImage, false, false)); err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	html := buf.String()
	for _, want := range []string{
		`lang="ar"`,
		`dir="rtl"`,
		i18n.T("ar", i18n.MsgAppTitle),
		`id="view-image" data-view="image">`,
		`href="?tab=video"`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("rendered page missing %q", want)
		}
	}
}

func TestRenderEnglishVideoTab(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, NewPage("en-US", studio.TabVideo, true, false)); err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	html := buf.String()
	if !strings.Contains(html, `dir="ltr"`) {
		t.Error("english page should be left to right")
	}
	if !strings.Contains(html, `id="view-video" data-view="video">`) {
		t.Error("video view should be visible")
	}
	if !strings.Contains(html, `<a href="https://ai.google.dev/gemini-api/docs/billing"`) {
		t.Error("key banner markup was escaped")
	}
	if !strings.Contains(html, `class="key-banner">`) {
		t.Error("key banner should be shown while no key is selected")
	}
	first := i18n.LoadingMessages("en")[0]
	if !strings.Contains(html, first) {
		t.Errorf("loading messages missing %q", first)
	}
}

func TestStaticServesAssets(t *testing.T) {
	srv := httptest.NewServer(http.StripPrefix("/static/", Static()))
	defer srv.Close()

	for _, name := range []string{"app.js", "app.css"} {
		resp, err := http.Get(srv.URL + "/static/" + name)
		if err != nil {
			t.Fatalf("GET %s: %v", name, err)
		}
		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		if resp.StatusCode != http.StatusOK || len(body) == 0 {
			t.Fatalf("GET %s = %d (%d bytes)", name, resp.StatusCode, len(body))
		}
	}
}
