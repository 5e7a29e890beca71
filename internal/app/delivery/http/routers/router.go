package routers

import (
	"hospital-portal-service/internal/app/config"
	"hospital-portal-service/internal/app/delivery/http/middlewares"
	"hospital-portal-service/internal/app/services/core/health"
	"hospital-portal-service/internal/app/services/core/registrations"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	healthController *health.HealthController,
	registrationController *registrations.RegistrationController,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-Id", "x-api-key"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestID)
	router.Use(middlewares.Logging)
	router.Use(middlewares.ErrorHandler)

	router.Get("/", healthController.Liveness)
	router.Get("/test", healthController.Diagnostics)

	router.Route("/api", func(r chi.Router) {
		r.Route("/registrations", func(r chi.Router) {
			attachPublicRegistrationRoutes(r, middlewares, registrationController)
		})

		r.Route("/admin/registrations", func(r chi.Router) {
			attachAdminRegistrationRoutes(r, middlewares, registrationController)
		})
	})
}
