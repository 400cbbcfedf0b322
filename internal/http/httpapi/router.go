package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"leadreach/internal/http/handlers"
	"leadreach/internal/infra/geoip"
	"leadreach/internal/middleware"
)

// Options configures the router middleware stack.
type Options struct {
	Logger          zerolog.Logger
	GeoIP           geoip.CountryResolver
	AllowedOrigins  []string
	RateLimitPerMin int
}

// NewRouter wires all API routes with the shared middleware stack.
func NewRouter(app *handlers.App, opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID,
		chimiddleware.RealIP,
		chimiddleware.Recoverer,
		middleware.Origin(opts.GeoIP),
		middleware.Logger(opts.Logger),
		middleware.CORS(opts.AllowedOrigins),
	)

	r.Get("/v1/healthz", app.Health)

	r.Route("/v1/leads", func(r chi.Router) {
		r.Get("/", app.LeadsList)
		r.Post("/", app.LeadsCreate)
		r.Get("/export", app.LeadsExportCSV)
		r.Post("/import", app.LeadsImportCSV)
		r.Route("/bulk", func(r chi.Router) {
			r.Post("/", app.LeadsBulkImport)
			r.Delete("/", app.LeadsBulkDelete)
			r.Patch("/", app.LeadsBulkUpdate)
		})
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", app.LeadsGet)
			r.Put("/", app.LeadsUpdate)
			r.Delete("/", app.LeadsDelete)
		})
	})

	r.Route("/v1/messages", func(r chi.Router) {
		r.Get("/", app.MessagesList)
		r.Post("/", app.MessagesCreate)
		r.Get("/export", app.MessagesExportCSV)
		r.With(middleware.RateLimit(opts.RateLimitPerMin, time.Minute)).
			Post("/generate", app.GenerateMessage)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", app.MessagesGet)
			r.Put("/", app.MessagesUpdate)
			r.Delete("/", app.MessagesDelete)
		})
	})

	r.Route("/v1/templates", func(r chi.Router) {
		r.Get("/", app.TemplatesList)
		r.Post("/render", app.TemplatesRender)
	})

	r.Get("/v1/stats/summary", app.StatsSummary)

	return r
}
