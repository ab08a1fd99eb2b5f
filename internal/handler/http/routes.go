package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/mkarev/go-school-admin/models"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register-admin", h.registerAdmin)
		r.Post("/api/auth/login", h.login)
	})

	// routes behind a valid bearer token
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.With(h.requireRole(models.AdminOnly...)).
			Post("/api/users/create-school-admin", h.createSchoolAdmin)
		r.With(h.requireRole(models.SchoolAdminAndAbove...)).
			Post("/api/users/create-teacher", h.createTeacher)
		r.With(h.requireRole(models.SchoolAdminAndAbove...)).
			Post("/api/users/create-student", h.createStudent)

		r.With(h.requireRole(models.SchoolAdminAndAbove...)).
			Get("/api/users", h.listUsers)
		r.Get("/api/users/me", h.me)

		r.With(h.requireRole(models.AdminOnly...)).
			Post("/api/schools", h.createSchool)
		r.With(h.requireRole(models.SchoolAdminAndAbove...)).
			Get("/api/schools/{schoolID}", h.getSchool)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
