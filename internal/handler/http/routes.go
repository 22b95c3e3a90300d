package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Group(func(r chi.Router) {
		r.Post("/api/register", h.register)
		r.Post("/api/token", h.issueToken)
		r.Get("/api/servers", h.listServers)
		r.Get("/api/health", h.health)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
