package cart

import (
	"context"
	"fmt"
	"mediplant-service/internal/app/config"
	"mediplant-service/internal/app/contracts"
	"mediplant-service/internal/app/models"
	"mediplant-service/internal/pkg/constvars"
	"mediplant-service/internal/pkg/dto/requests"
	"mediplant-service/internal/pkg/dto/responses"
	"mediplant-service/internal/pkg/exceptions"
	"mediplant-service/internal/pkg/utils"
	"sync"
	"time"

	"go.uber.org/zap"
)

type cartUsecase struct {
	CartRepository    contracts.CartRepository
	ProductRepository contracts.ProductRepository
	LockService       contracts.LockerService
	InternalConfig    *config.InternalConfig
	Log               *zap.Logger
}

var (
	cartUsecaseInstance contracts.CartUsecase
	onceCartUsecase     sync.Once
)

func NewCartUsecase(
	cartRepository contracts.CartRepository,
	productRepository contracts.ProductRepository,
	lockService contracts.LockerService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.CartUsecase {
	onceCartUsecase.Do(func() {
		instance := &cartUsecase{
			CartRepository:    cartRepository,
			ProductRepository: productRepository,
			LockService:       lockService,
			InternalConfig:    internalConfig,
			Log:               logger,
		}
		cartUsecaseInstance = instance
	})
	return cartUsecaseInstance
}

// lockCart serializes mutations of one cart. Two concurrent adds of the same
// product must collapse into a single line, which a read-modify-write against
// Redis cannot guarantee on its own.
func (uc *cartUsecase) lockCart(ctx context.Context, sessionID string) (string, error) {
	lockKey := fmt.Sprintf(constvars.RedisKeyCartLockFormat, sessionID)
	lockTTL := time.Duration(uc.InternalConfig.Cart.LockTTLInSeconds) * time.Second

	for attempt := 0; attempt < 20; attempt++ {
		acquired, lockValue, err := uc.LockService.TryLock(ctx, lockKey, lockTTL)
		if err != nil {
			return "", err
		}
		if acquired {
			return lockValue, nil
		}

		select {
		case <-ctx.Done():
			return "", exceptions.ErrServerProcess(ctx.Err())
		case <-time.After(50 * time.Millisecond):
		}
	}
	return "", exceptions.ErrServerProcess(fmt.Errorf("could not acquire cart lock for session %s", sessionID))
}

func (uc *cartUsecase) unlockCart(ctx context.Context, sessionID, lockValue string) {
	lockKey := fmt.Sprintf(constvars.RedisKeyCartLockFormat, sessionID)
	if err := uc.LockService.Unlock(ctx, lockKey, lockValue); err != nil {
		requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
		uc.Log.Warn("cartUsecase.unlockCart failed to release lock",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingCartSessionKey, sessionID),
			zap.Error(err),
		)
	}
}

func (uc *cartUsecase) GetCart(ctx context.Context, sessionID string) (*responses.Cart, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("cartUsecase.GetCart called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCartSessionKey, sessionID),
	)

	cart, err := uc.CartRepository.Find(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		cart = models.NewCart(sessionID)
	}

	return buildCartResponse(cart), nil
}

func (uc *cartUsecase) AddItem(ctx context.Context, sessionID string, request *requests.AddCartItemRequest) (*responses.Cart, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("cartUsecase.AddItem called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCartSessionKey, sessionID),
		zap.String(constvars.LoggingProductIDKey, request.ProductID),
		zap.Int(constvars.LoggingQuantityKey, request.Quantity),
	)

	product, err := uc.ProductRepository.FindByID(ctx, request.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, exceptions.ErrProductNotFound(fmt.Errorf("product %s does not exist", request.ProductID))
	}

	lockValue, err := uc.lockCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	defer uc.unlockCart(ctx, sessionID, lockValue)

	cart, err := uc.CartRepository.Find(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		cart = models.NewCart(sessionID)
	}

	cart.AddLine(*product, request.Quantity)

	if err := uc.CartRepository.Save(ctx, cart); err != nil {
		return nil, err
	}

	uc.Log.Info("cartUsecase.AddItem succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCartSessionKey, sessionID),
		zap.Int64(constvars.LoggingSubtotalCentsKey, cart.SubtotalCents()),
	)
	return buildCartResponse(cart), nil
}

func (uc *cartUsecase) UpdateQuantity(ctx context.Context, sessionID string, request *requests.UpdateCartQuantityRequest) (*responses.Cart, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("cartUsecase.UpdateQuantity called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCartSessionKey, sessionID),
		zap.String(constvars.LoggingProductIDKey, request.ProductID),
		zap.Int("delta", request.Delta),
	)

	lockValue, err := uc.lockCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	defer uc.unlockCart(ctx, sessionID, lockValue)

	cart, err := uc.CartRepository.Find(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		cart = models.NewCart(sessionID)
	}

	cart.ApplyQuantityDelta(request.ProductID, request.Delta)

	if err := uc.CartRepository.Save(ctx, cart); err != nil {
		return nil, err
	}

	uc.Log.Info("cartUsecase.UpdateQuantity succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCartSessionKey, sessionID),
		zap.Int64(constvars.LoggingSubtotalCentsKey, cart.SubtotalCents()),
	)
	return buildCartResponse(cart), nil
}

func (uc *cartUsecase) ClearCart(ctx context.Context, sessionID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("cartUsecase.ClearCart called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCartSessionKey, sessionID),
	)

	lockValue, err := uc.lockCart(ctx, sessionID)
	if err != nil {
		return err
	}
	defer uc.unlockCart(ctx, sessionID, lockValue)

	if err := uc.CartRepository.Delete(ctx, sessionID); err != nil {
		return err
	}

	uc.Log.Info("cartUsecase.ClearCart succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCartSessionKey, sessionID),
	)
	return nil
}

func buildCartResponse(cart *models.Cart) *responses.Cart {
	items := make([]responses.CartItem, 0, len(cart.Lines))
	totalItems := 0
	for _, line := range cart.Lines {
		items = append(items, responses.CartItem{
			ProductID:    line.ProductID,
			Name:         line.Name,
			Category:     line.Category,
			DisplayPrice: line.DisplayPrice,
			ImageRef:     line.ImageRef,
			Quantity:     line.Quantity,
			LineCents:    line.UnitPriceCents * int64(line.Quantity),
		})
		totalItems += line.Quantity
	}

	subtotal := cart.SubtotalCents()
	return &responses.Cart{
		SessionID:        cart.SessionID,
		Items:            items,
		SubtotalCents:    subtotal,
		SubtotalDisplay:  utils.FormatDisplayPrice(subtotal),
		TotalItemsAmount: totalItems,
	}
}
