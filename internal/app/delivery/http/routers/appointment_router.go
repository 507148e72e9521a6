package routers

import (
	"mediplant-service/internal/app/delivery/http/middlewares"
	"mediplant-service/internal/app/services/core/appointments"

	"github.com/go-chi/chi/v5"
)

func attachAppointmentRoutes(router chi.Router, middlewares *middlewares.Middlewares, appointmentController *appointments.AppointmentController) {
	router.Get("/slots", appointmentController.ListSlots)
	router.Post("/", appointmentController.CreateAppointment)
}
