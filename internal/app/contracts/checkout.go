package contracts

import (
	"context"
	"mediplant-service/internal/app/models"
	"mediplant-service/internal/pkg/dto/requests"
	"mediplant-service/internal/pkg/dto/responses"
)

type CheckoutUsecase interface {
	BeginCheckout(ctx context.Context, sessionID string) (*responses.Checkout, error)
	BackToCart(ctx context.Context, sessionID string) (*responses.Checkout, error)
	CompletePayment(ctx context.Context, sessionID string, request *requests.CompletePaymentRequest) (*responses.Checkout, error)
	GetCheckout(ctx context.Context, sessionID string) (*responses.Checkout, error)
}

type CheckoutSessionRepository interface {
	Find(ctx context.Context, sessionID string) (*models.CheckoutSession, error)
	Save(ctx context.Context, session *models.CheckoutSession) error
	Delete(ctx context.Context, sessionID string) error
}
