package routes

import (
	"elite-hub/treinador/internal/api"
	"elite-hub/treinador/internal/middleware"

	"github.com/go-chi/chi/v5"
)

// RegisterAPIRoutes registers all API v1 routes and handlers
// This keeps API route registration separate from the main router setup
func RegisterAPIRoutes(r chi.Router, handlers *api.Handlers, adminSecret []byte) {

	r.Route("/api/v1", func(v1 chi.Router) {

		// Athlete-facing routes. Identity is established by the /login
		// flow; these endpoints are scoped to a profile id.
		v1.Route("/profiles/{profile_id}/checkins", func(checkins chi.Router) {
			checkins.Get("/", handlers.ListCheckIns())
			checkins.Post("/", handlers.CreateCheckIn())
		})

		v1.Post("/advisor/tip", handlers.AdvisorTip())

		// Admin panel group
		v1.Group(func(admin chi.Router) {
			admin.Use(middleware.AdminAuthMiddleware(adminSecret))

			admin.Get("/admin/profiles", handlers.AdminListProfiles())
			admin.Put("/admin/profiles/{profile_id}", handlers.AdminUpdateProfile())
			admin.Put("/admin/profiles/{profile_id}/schedule", handlers.AdminReplaceSchedule())
		})
	})
}
