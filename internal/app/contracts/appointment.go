package contracts

import (
	"context"
	"mediplant-service/internal/app/models"
	"mediplant-service/internal/pkg/dto/requests"
	"mediplant-service/internal/pkg/dto/responses"
)

type AppointmentUsecase interface {
	ListSlots(ctx context.Context) (*responses.SlotList, error)
	CreateAppointment(ctx context.Context, request *requests.CreateAppointmentRequest) (*responses.Appointment, error)
}

// AppointmentStoreClient talks to the external record store that owns
// Appointment resources.
type AppointmentStoreClient interface {
	CreateAppointment(ctx context.Context, appointment *models.Appointment) (*models.Appointment, error)
	FindAppointmentByID(ctx context.Context, appointmentID string) (*models.Appointment, error)
}
