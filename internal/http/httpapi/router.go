package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"mediastudio/internal/http/handlers"
	"mediastudio/internal/middleware"
	"mediastudio/internal/web"
)

// Options carries the cross-cutting settings of the router.
type Options struct {
	AllowedOrigins []string
	DefaultLocale  string
	CountryLookup  middleware.CountryLookup
}

func NewRouter(app *handlers.App, opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID,
		chimw.RealIP,
		chimw.Recoverer,
		middleware.CORS(opts.AllowedOrigins),
		middleware.I18N(opts.DefaultLocale, opts.CountryLookup),
		middleware.Logger(*app.Logger),
	)

	r.Get("/", app.Index)
	r.Handle("/static/*", http.StripPrefix("/static/", web.Static()))

	r.Route("/v1", func(r chi.Router) {
		r.Get("/healthz", app.Health)

		r.Post("/images/generate", app.ImagesGenerate)
		r.Post("/images/edit", app.ImagesEdit)

		r.Post("/videos/generate", app.VideosGenerate)
		r.Get("/videos/stream", app.VideoStream)

		r.Get("/keys/status", app.KeyStatus)
		r.Post("/keys/select", app.KeySelect)
		r.Delete("/keys/select", app.KeyClear)

		r.Get("/blobs/{id}", app.Blob)
	})

	return r
}
