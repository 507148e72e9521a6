package routers

import (
	"mediplant-service/internal/app/delivery/http/middlewares"
	"mediplant-service/internal/app/services/core/registrations"

	"github.com/go-chi/chi/v5"
)

func attachRegistrationRoutes(router chi.Router, middlewares *middlewares.Middlewares, registrationController *registrations.RegistrationController) {
	// Registration is open to the public internet behind nothing but a signed
	// link token, so it gets a stricter per-IP limiter than the rest of the
	// API.
	router.Use(middlewares.RegistrationLimiter.Limit)

	router.Post("/", registrationController.RegisterPatient)
	router.Post("/scheduling-retries", registrationController.RetryScheduling)
}
