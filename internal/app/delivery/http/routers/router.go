package routers

import (
	"fmt"
	"mediplant-service/internal/app/config"
	"mediplant-service/internal/app/delivery/http/middlewares"
	"mediplant-service/internal/app/services/core/appointments"
	"mediplant-service/internal/app/services/core/cart"
	"mediplant-service/internal/app/services/core/catalog"
	"mediplant-service/internal/app/services/core/checkout"
	"mediplant-service/internal/app/services/core/registrations"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	catalogController *catalog.CatalogController,
	cartController *cart.CartController,
	checkoutController *checkout.CheckoutController,
	appointmentController *appointments.AppointmentController,
	registrationController *registrations.RegistrationController,
) {

	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID", "X-Cart-Session", "x-api-key"},
		ExposedHeaders:   []string{"Link", "X-Request-ID", "Retry-After"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	// Rate limiting middleware using httprate
	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(middlewares.Log))
	router.Use(middlewares.ErrorHandler)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/products", func(r chi.Router) {
				attachProductRoutes(r, middlewares, catalogController)
			})

			r.Route("/doctors", func(r chi.Router) {
				attachDoctorRoutes(r, middlewares, catalogController)
			})

			r.Route("/cart", func(r chi.Router) {
				attachCartRoutes(r, middlewares, cartController)
			})

			r.Route("/checkout", func(r chi.Router) {
				attachCheckoutRoutes(r, middlewares, checkoutController)
			})

			r.Route("/appointments", func(r chi.Router) {
				attachAppointmentRoutes(r, middlewares, appointmentController)
			})

			r.Route("/registrations", func(r chi.Router) {
				attachRegistrationRoutes(r, middlewares, registrationController)
			})
		})
	})
}
