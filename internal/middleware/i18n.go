package middleware

import (
	"context"
	"net"
	"net/http"
	"strings"

	"golang.org/x/text/language"

	"mediastudio/internal/i18n"
)

type (
	localeContextKey  struct{}
	countryContextKey struct{}
)

// Context keys under which I18N stores the negotiated locale and country.
var (
	LocaleKey  = localeContextKey{}
	CountryKey = countryContextKey{}
)

// CountryLookup resolves ISO country codes for an IP address.
type CountryLookup func(ip string) (string, error)

// I18N negotiates an "ar" or "en" locale for every request and echoes it in
// Content-Language.
func I18N(defaultLocale string, lookup CountryLookup) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			country := ResolveCountry(r, lookup)
			locale := detectLocale(r, defaultLocale, country)
			ctx := context.WithValue(r.Context(), LocaleKey, locale)
			if country != "" {
				ctx = context.WithValue(ctx, CountryKey, strings.ToUpper(country))
			}
			w.Header().Set("Content-Language", locale)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// detectLocale prefers an explicit X-Locale (or ?locale= for websocket
// clients), then Accept-Language, then the country of the client, then the
// configured fallback.
func detectLocale(r *http.Request, fallback string, country string) string {
	if v := i18n.Normalize(r.Header.Get("X-Locale")); v != "" {
		return v
	}
	if v := i18n.Normalize(r.URL.Query().Get("locale")); v != "" {
		return v
	}
	if v := i18n.MatchAcceptLanguage(r.Header.Get("Accept-Language")); v != "" {
		return v
	}
	if v := i18n.LocaleForCountry(country); v != "" {
		return v
	}
	if v := i18n.Normalize(fallback); v != "" {
		return v
	}
	return i18n.DefaultLocale
}

// LocaleFromContext returns the negotiated locale, or the package default.
func LocaleFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(LocaleKey).(string); ok {
		return v
	}
	return i18n.DefaultLocale
}

// CountryFromContext returns the ISO country code stored in the request context.
func CountryFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(CountryKey).(string); ok {
		return v
	}
	return ""
}

// countryHeaders are set by edge proxies that already geolocated the client.
var countryHeaders = []string{"X-Country-Code", "CF-IPCountry", "X-Appengine-Country"}

// ResolveCountry returns an upper-case ISO country code for r: proxy headers
// first, then the region subtag of an explicit locale, then the IP lookup.
func ResolveCountry(r *http.Request, lookup CountryLookup) string {
	if r == nil {
		return ""
	}
	for _, h := range countryHeaders {
		if v := strings.TrimSpace(r.Header.Get(h)); v != "" {
			return strings.ToUpper(v)
		}
	}
	for _, hint := range []string{r.Header.Get("X-Locale"), r.Header.Get("Accept-Language")} {
		if region := explicitRegion(hint); region != "" {
			return region
		}
	}
	if lookup == nil {
		return ""
	}
	ip := remoteHost(r)
	if ip == "" {
		return ""
	}
	country, err := lookup(ip)
	if err != nil {
		return ""
	}
	return strings.ToUpper(country)
}

// explicitRegion only trusts a region the client actually wrote ("ar-JO"),
// never one inferred from the bare language.
func explicitRegion(header string) string {
	if strings.TrimSpace(header) == "" {
		return ""
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return ""
	}
	region, conf := tags[0].Region()
	if conf != language.Exact {
		return ""
	}
	return region.String()
}

// remoteHost reads RemoteAddr, which chi's RealIP has already rewritten from
// X-Forwarded-For / X-Real-IP when running behind a proxy.
func remoteHost(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
