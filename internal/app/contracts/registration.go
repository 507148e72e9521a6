package contracts

import (
	"context"
	"mediplant-service/internal/pkg/dto/requests"
	"mediplant-service/internal/pkg/dto/responses"
)

type RegistrationUsecase interface {
	RegisterPatient(ctx context.Context, request *requests.RegisterPatientRequest) (*responses.Registration, error)
	RetryScheduling(ctx context.Context, request *requests.RetrySchedulingRequest) (*responses.Registration, error)
}
