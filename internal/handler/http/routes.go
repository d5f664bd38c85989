package http

import (
	"github.com/go-chi/chi/v5"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withRecover, h.withTraceID, h.withLogging, withGZip, h.withHashCheck)

	router.Get("/version", h.getServerVersion)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Use(h.withRateLimit)
		r.Post("/api/user/signup", h.signUp)
		r.Post("/api/user/login", h.login)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/user", h.listUsers)
		r.Get("/api/user/{id}", h.getUser)
		r.Delete("/api/user/{id}", h.deleteUser)

		r.Get("/api/blog", h.listPosts)
		r.Post("/api/blog", h.createPost)
		r.Get("/api/blog/{id}", h.getPost)
		r.Put("/api/blog/{id}", h.updatePost)
		r.Delete("/api/blog/{id}", h.deletePost)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
