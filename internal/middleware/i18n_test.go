package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

type assertError string

func (e assertError) Error() string { return string(e) }

func TestDetectLocale(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(r *http.Request)
		fallback string
		country  string
		want     string
	}{
		{
			name: "x-locale overrides",
			setup: func(r *http.Request) {
				r.Header.Set("X-Locale", "EN")
			},
			country: "SA",
			want:    "en",
		},
		{
			name: "unsupported x-locale ignored",
			setup: func(r *http.Request) {
				r.Header.Set("X-Locale", "fr")
				r.Header.Set("Accept-Language", "ar-EG,ar;q=0.9")
			},
			want: "ar",
		},
		{
			name: "locale query parameter",
			setup: func(r *http.Request) {
				r.URL.RawQuery = "locale=en"
				r.Header.Set("Accept-Language", "ar")
			},
			want: "en",
		},
		{
			name: "accept-language used",
			setup: func(r *http.Request) {
				r.Header.Set("Accept-Language", "en-US,en;q=0.9")
			},
			want: "en",
		},
		{
			name:    "arab country uses arabic",
			country: "EG",
			want:    "ar",
		},
		{
			name:    "other country falls back to en",
			country: "US",
			want:    "en",
		},
		{
			name:     "configured fallback",
			fallback: "en",
			want:     "en",
		},
		{
			name: "default to ar",
			want: "ar",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.setup != nil {
				tc.setup(req)
			}
			got := detectLocale(req, tc.fallback, tc.country)
			if got != tc.want {
				t.Fatalf("detectLocale() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestResolveCountry(t *testing.T) {
	egypt := func(ip string) (string, error) {
		if ip != "203.0.113.4" {
			return "", assertError("unexpected ip " + ip)
		}
		return "eg", nil
	}

	tests := []struct {
		name   string
		header map[string]string
		lookup CountryLookup
		want   string
	}{
		{"proxy header wins", map[string]string{"X-Country-Code": "sa", "CF-IPCountry": "us"}, egypt, "SA"},
		{"cloudflare header", map[string]string{"CF-IPCountry": "ae"}, egypt, "AE"},
		{"x-locale region", map[string]string{"X-Locale": "ar-JO"}, egypt, "JO"},
		{"accept-language region", map[string]string{"Accept-Language": "en-GB,en;q=0.9"}, egypt, "GB"},
		{"bare language has no region", map[string]string{"Accept-Language": "ar"}, egypt, "EG"},
		{"forwarded-for is not read directly", map[string]string{"X-Forwarded-For": "198.51.100.7"}, egypt, "EG"},
		{"no lookup", nil, nil, ""},
		{"lookup error", nil, func(string) (string, error) { return "", assertError("boom") }, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = "203.0.113.4:80"
			for k, v := range tc.header {
				req.Header.Set(k, v)
			}
			if got := ResolveCountry(req, tc.lookup); got != tc.want {
				t.Fatalf("ResolveCountry() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestI18NMiddlewareStoresLocale(t *testing.T) {
	var gotLocale, gotCountry string
	h := I18N("ar", func(string) (string, error) { return "de", nil })(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotLocale = LocaleFromContext(r.Context())
		gotCountry = CountryFromContext(r.Context())
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if gotLocale != "en" || gotCountry != "DE" {
		t.Fatalf("locale/country = %q/%q, want en/DE", gotLocale, gotCountry)
	}
	if rec.Header().Get("Content-Language") != "en" {
		t.Fatalf("Content-Language = %q", rec.Header().Get("Content-Language"))
	}
}

func TestLocaleFromContext(t *testing.T) {
	ctx := context.Background()
	if got := LocaleFromContext(ctx); got != "ar" {
		t.Fatalf("LocaleFromContext() default = %q, want %q", got, "ar")
	}
	ctx = context.WithValue(ctx, LocaleKey, "en")
	if got := LocaleFromContext(ctx); got != "en" {
		t.Fatalf("LocaleFromContext() with value = %q, want %q", got, "en")
	}
}
