// Package web renders the studio shell: one page with the image, edit and
// video views, driven by the JSON and websocket endpoints.
package web

import (
	"embed"
	"html/template"
	"io"
	"io/fs"
	"net/http"

	"mediastudio/internal/i18n"
	"mediastudio/internal/studio"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

var page = template.Must(template.New("index.html").ParseFS(templateFS, "templates/index.html"))

// Page is the data the shell template renders.
type Page struct {
	Locale               string
	Active               studio.Tab
	Tabs                 []studio.Tab
	LoadingMessages      []string
	KeySelectionRequired bool
	KeySelected          bool
}

// NewPage prepares the shell for locale with the given tab open.
func NewPage(locale string, active studio.Tab, keyRequired, keySelected bool) Page {
	locale = i18n.Normalize(locale)
	if locale == "" {
		locale = i18n.DefaultLocale
	}
	return Page{
		Locale:               locale,
		Active:               active,
		Tabs:                 studio.Tabs(),
		LoadingMessages:      i18n.LoadingMessages(locale),
		KeySelectionRequired: keyRequired,
		KeySelected:          keySelected,
	}
}

// Dir is the text direction of the page.
func (p Page) Dir() string {
	if p.Locale == i18n.LocaleArabic {
		return "rtl"
	}
	return "ltr"
}

// T translates key into the page locale.
func (p Page) T(key string) string {
	return i18n.T(p.Locale, key)
}

// TrustedHTML translates key for catalog entries that carry markup.
func (p Page) TrustedHTML(key string) template.HTML {
	return template.HTML(i18n.T(p.Locale, key))
}

// TabLabel returns the label of a tab button.
func (p Page) TabLabel(tab studio.Tab) string {
	switch tab {
	case studio.TabEdit:
		return p.T(i18n.MsgTabEdit)
	case studio.TabVideo:
		return p.T(i18n.MsgTabVideo)
	default:
		return p.T(i18n.MsgTabImage)
	}
}

// Render writes the shell for p.
func Render(w io.Writer, p Page) error {
	return page.Execute(w, p)
}

// Static serves the embedded scripts and styles.
func Static() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.FileServer(http.FS(sub))
}
