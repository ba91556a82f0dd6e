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

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/health", h.health)
		r.Post("/api/auth/login", h.login)
		r.Get("/api/profile", h.getProfile)
		r.Get("/api/skills", h.listSkills)
		r.Get("/api/timeline", h.listTimeline)
		r.Get("/api/gear", h.listGear)
	})

	// routes behind session authentication
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/auth/logout", h.logout)

		r.Post("/api/profile", h.updateProfile)

		r.Post("/api/skills", h.createSkill)
		r.Delete("/api/skills/{id}", h.deleteSkill)

		r.Post("/api/timeline", h.createTimelineEntry)
		r.Put("/api/timeline/{id}", h.updateTimelineEntry)
		r.Delete("/api/timeline/{id}", h.deleteTimelineEntry)

		r.Post("/api/gear", h.createGearItem)
		r.Delete("/api/gear/{id}", h.deleteGearItem)
	})

	return router
}
