// Package i18n holds the studio's message catalog and locale matching. Only
// Arabic and English are supported; Arabic is the default.
package i18n

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

const (
	LocaleArabic  = "ar"
	LocaleEnglish = "en"
	DefaultLocale = LocaleArabic
)

var (
	supported = []language.Tag{language.Arabic, language.English}
	matcher   = language.NewMatcher(supported)
	builder   = mustBuildCatalog()
)

// arabicCountries lists the ISO codes of Arabic-speaking countries; a client
// located in one of them is served the Arabic copy.
var arabicCountries = map[string]struct{}{
	"AE": {}, "BH": {}, "DJ": {}, "DZ": {}, "EG": {}, "IQ": {}, "JO": {}, "KM": {},
	"KW": {}, "LB": {}, "LY": {}, "MA": {}, "MR": {}, "OM": {}, "PS": {}, "QA": {},
	"SA": {}, "SD": {}, "SO": {}, "SY": {}, "TN": {}, "YE": {},
}

func mustBuildCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.Arabic))
	for tag, messages := range map[language.Tag]map[string]string{
		language.Arabic:  arabic,
		language.English: english,
	} {
		for key, msg := range messages {
			if err := b.SetString(tag, key, msg); err != nil {
				panic(fmt.Sprintf("i18n: register %s/%s: %v", tag, key, err))
			}
		}
	}
	return b
}

// Printer returns a message printer for locale. Unsupported locales get the
// default locale.
func Printer(locale string) *message.Printer {
	return message.NewPrinter(tagFor(locale), message.Catalog(builder))
}

// T formats the message registered under key for locale.
func T(locale, key string, args ...any) string {
	return Printer(locale).Sprintf(key, args...)
}

// LoadingMessages returns the localized rotating video status lines.
func LoadingMessages(locale string) []string {
	p := Printer(locale)
	out := make([]string, len(VideoLoadingMessages))
	for i, key := range VideoLoadingMessages {
		out[i] = p.Sprintf(key)
	}
	return out
}

// Normalize maps a BCP 47 tag such as "ar-EG" or "EN_us" onto a supported
// locale. It returns "" when the language is not supported.
func Normalize(locale string) string {
	locale = strings.ReplaceAll(strings.TrimSpace(locale), "_", "-")
	if locale == "" {
		return ""
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return ""
	}
	return match(tag)
}

// MatchAcceptLanguage picks the best supported locale for an Accept-Language
// header value, or "" when nothing matches.
func MatchAcceptLanguage(header string) string {
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return ""
	}
	return match(tags...)
}

// LocaleForCountry maps an ISO country code onto a locale: Arabic-speaking
// countries get Arabic, every other known country gets English.
func LocaleForCountry(country string) string {
	country = strings.ToUpper(strings.TrimSpace(country))
	if country == "" {
		return ""
	}
	if _, ok := arabicCountries[country]; ok {
		return LocaleArabic
	}
	return LocaleEnglish
}

func match(tags ...language.Tag) string {
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return ""
	}
	base, _ := supported[idx].Base()
	return base.String()
}

func tagFor(locale string) language.Tag {
	if Normalize(locale) == LocaleEnglish {
		return language.English
	}
	return language.Arabic
}
