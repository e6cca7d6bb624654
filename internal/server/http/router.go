package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter mounts the API, and the static web client when webDir is set.
func NewRouter(h *Handler, webDir string) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", h.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Post("/games", h.handleNewGame)
		r.Route("/games/{id}", func(r chi.Router) {
			r.Get("/", h.handleGetGame)
			r.Delete("/", h.handleDeleteGame)
			r.Post("/play", h.handlePlay)
		})
		r.Post("/search", h.handleSearch)
		r.Get("/matches/watch", h.handleWatch)
	})

	if webDir != "" {
		RegisterStaticRoutes(r, webDir)
	}
	return r
}
