package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter maps every route to its handler. Unknown paths, and known paths
// hit with an unsupported method, get the JSON 404.
func NewRouter(h *Handlers) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RealIP)
	r.Use(RequestID)
	if h.settings.Debug {
		r.Use(verboseLogger())
	} else {
		r.Use(logMiddleware)
	}
	r.Use(Recoverer(h.settings.Debug))
	r.Use(chimw.GetHead)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: h.settings.AllowedOrigins,
		AllowedMethods: []string{"GET", "HEAD", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	}))

	r.NotFound(NotFound)
	r.MethodNotAllowed(NotFound)

	r.Get("/", h.Home)
	r.Get("/health", h.Health)
	r.Get("/static/*", h.staticFiles())

	r.Route("/api", func(api chi.Router) {
		api.Get("/info", h.Info)
		api.Get("/status", h.Status)
	})

	return r
}
