package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// routes without authorization
	router.Get("/version", h.getServerVersion)

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/containers", h.listContainers)
		r.Post("/containers", h.createContainer)
		r.Get("/containers/{id}", h.getContainer)
		r.Patch("/containers/{id}", h.updateContainer)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
