package contracts

import (
	"context"
	"mediplant-service/internal/app/models"
	"mediplant-service/internal/pkg/dto/requests"
	"mediplant-service/internal/pkg/dto/responses"
)

type CartUsecase interface {
	GetCart(ctx context.Context, sessionID string) (*responses.Cart, error)
	AddItem(ctx context.Context, sessionID string, request *requests.AddCartItemRequest) (*responses.Cart, error)
	UpdateQuantity(ctx context.Context, sessionID string, request *requests.UpdateCartQuantityRequest) (*responses.Cart, error)
	ClearCart(ctx context.Context, sessionID string) error
}

type CartRepository interface {
	Find(ctx context.Context, sessionID string) (*models.Cart, error)
	Save(ctx context.Context, cart *models.Cart) error
	Delete(ctx context.Context, sessionID string) error
}
