package http

import (
	"net/http"

	"github.com/MKhiriev/go-tax-jurisdictions/internal/utils"
	"github.com/MKhiriev/go-tax-jurisdictions/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	if h.trustProxyHeaders {
		router.Use(middleware.RealIP)
	}
	router.Use(
		h.withTraceID,
		h.withLogging,
		h.withMetrics,
		middleware.Recoverer,
		middleware.Compress(5, "application/json", "text/csv"),
	)

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteError(w, msgNotFound, http.StatusNotFound)
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteError(w, msgMethodNotAllowed, http.StatusMethodNotAllowed)
	})

	router.Method(http.MethodGet, "/metrics", h.metrics.handler())

	router.Route("/api", func(r chi.Router) {
		// routes without authorization
		r.Get("/health", h.health)
		r.Get("/version", h.getServerVersion)

		r.Route("/auth", func(r chi.Router) {
			r.With(h.rateLimit).Post("/register", h.register)
			r.With(h.rateLimit).Post("/login", h.login)
			r.With(h.rateLimit).Post("/refresh", h.refresh)
			r.Post("/logout", h.logout)
			r.With(h.auth).Get("/me", h.me)
		})

		// routes behind the auth gate
		r.Group(func(r chi.Router) {
			r.Use(h.auth)

			r.Get("/states", h.listStates)
			r.Get("/counties", h.listCounties)

			r.Route("/counties/{researchId}", func(r chi.Router) {
				r.Patch("/", h.updateField)
				r.Get("/edit-history", h.editHistory)
				r.Get("/versions", h.listVersions)
				r.Get("/installments", h.listInstallments)
				r.Put("/installments/{number}", h.upsertInstallment)
				r.Delete("/installments/{number}", h.deleteInstallment)
			})

			r.Get("/research/{researchId}", h.getResearch)

			r.Get("/export/csv", h.exportCSV)
			r.Get("/export/xlsx", h.exportXLSX)

			r.Route("/admin", func(r chi.Router) {
				r.Use(h.requireRole(models.RoleAdmin))
				r.Post("/invite-codes", h.createInviteCode)
				r.Post("/users/{userId}/deactivate", h.deactivateUser)
			})
		})
	})

	return router
}
