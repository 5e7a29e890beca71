package routers

import (
	"hospital-portal-service/internal/app/delivery/http/middlewares"
	"hospital-portal-service/internal/app/services/core/registrations"

	"github.com/go-chi/chi/v5"
)

func attachPublicRegistrationRoutes(router chi.Router, middlewares *middlewares.Middlewares, registrationController *registrations.RegistrationController) {
	router.With(middlewares.LimitSubmissions).Post("/", registrationController.CreateRegistration)
	router.Get("/", registrationController.ListRegistrations)
}

func attachAdminRegistrationRoutes(router chi.Router, middlewares *middlewares.Middlewares, registrationController *registrations.RegistrationController) {
	router.Use(middlewares.RequireAdminAPIKey)
	router.Get("/", registrationController.AdminListRegistrations)
	router.Get("/{registrationID}", registrationController.AdminGetRegistration)
	router.Patch("/{registrationID}", registrationController.AdminUpdateRegistrationStatus)
}
