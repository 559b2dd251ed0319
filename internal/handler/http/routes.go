package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router. Paths are mounted at the root, the layout the
// browser client calls.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, withGZip, h.withLogging, h.withCORS)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/", h.serviceInfo)
		r.Post("/auth/register", h.register)
		r.Post("/auth/login", h.login)
		r.Get("/health", h.health)
		r.Get("/version", h.getServerVersion)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/users/me", h.getProfile)
		r.Patch("/users/me", h.updateProfile)

		r.Post("/dashboards", h.createDashboard)
		r.Get("/dashboards", h.listDashboards)
		r.Post("/dashboards/join", h.joinDashboard)
		r.Delete("/dashboards/{dashboardID}", h.purgeDashboard)
		r.Get("/dashboards/{dashboardID}/bugs", h.listBugs)
		r.Get("/dashboards/{dashboardID}/activities", h.listActivities)

		r.Post("/bugs", h.submitBug)
		r.Patch("/bugs/{bugID}/resolve", h.resolveBug)
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
