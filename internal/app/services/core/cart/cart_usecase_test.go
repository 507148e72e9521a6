package cart

import (
	"context"
	"mediplant-service/internal/app/config"
	"mediplant-service/internal/app/models"
	"mediplant-service/internal/pkg/dto/requests"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type mockCartRepository struct {
	mock.Mock
}

func (m *mockCartRepository) Find(ctx context.Context, sessionID string) (*models.Cart, error) {
	args := m.Called(ctx, sessionID)
	if cart := args.Get(0); cart != nil {
		return cart.(*models.Cart), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCartRepository) Save(ctx context.Context, cart *models.Cart) error {
	args := m.Called(ctx, cart)
	return args.Error(0)
}

func (m *mockCartRepository) Delete(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

type mockProductRepository struct {
	mock.Mock
}

func (m *mockProductRepository) FindAll(ctx context.Context) ([]models.Product, error) {
	args := m.Called(ctx)
	if products := args.Get(0); products != nil {
		return products.([]models.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProductRepository) FindByID(ctx context.Context, productID string) (*models.Product, error) {
	args := m.Called(ctx, productID)
	if product := args.Get(0); product != nil {
		return product.(*models.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProductRepository) Insert(ctx context.Context, product *models.Product) (*models.Product, error) {
	args := m.Called(ctx, product)
	if inserted := args.Get(0); inserted != nil {
		return inserted.(*models.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockLockerService struct {
	mock.Mock
}

func (m *mockLockerService) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	args := m.Called(ctx, key, expiration)
	return args.Bool(0), args.String(1), args.Error(2)
}

func (m *mockLockerService) Unlock(ctx context.Context, key, lockValue string) error {
	args := m.Called(ctx, key, lockValue)
	return args.Error(0)
}

func newTestCartUsecase(cartRepo *mockCartRepository, productRepo *mockProductRepository, locker *mockLockerService) *cartUsecase {
	return &cartUsecase{
		CartRepository:    cartRepo,
		ProductRepository: productRepo,
		LockService:       locker,
		InternalConfig: &config.InternalConfig{
			Cart: config.Cart{TTLInHours: 72, LockTTLInSeconds: 5, CheckoutTTLInMinutes: 30},
		},
		Log: zap.NewNop(),
	}
}

func grantLock(locker *mockLockerService) {
	locker.On("TryLock", mock.Anything, mock.Anything, mock.Anything).Return(true, "lock-value", nil)
	locker.On("Unlock", mock.Anything, mock.Anything, "lock-value").Return(nil)
}

func espinheiraSanta() *models.Product {
	return &models.Product{
		ID:             "product-001",
		Name:           "Espinheira Santa",
		Category:       "Fitoterápicos",
		UnitPriceCents: 4550,
		DisplayPrice:   "R$ 45,50",
	}
}

func TestCartUsecaseAddItem(t *testing.T) {
	t.Run("New Product Appends Line", func(t *testing.T) {
		cartRepo := new(mockCartRepository)
		productRepo := new(mockProductRepository)
		locker := new(mockLockerService)
		grantLock(locker)

		productRepo.On("FindByID", mock.Anything, "product-001").Return(espinheiraSanta(), nil)
		cartRepo.On("Find", mock.Anything, "session-1").Return(nil, nil)
		cartRepo.On("Save", mock.Anything, mock.Anything).Return(nil)

		uc := newTestCartUsecase(cartRepo, productRepo, locker)
		response, err := uc.AddItem(context.Background(), "session-1", &requests.AddCartItemRequest{ProductID: "product-001", Quantity: 2})

		assert.NoError(t, err)
		assert.Len(t, response.Items, 1)
		assert.Equal(t, 2, response.Items[0].Quantity)
		assert.Equal(t, int64(9100), response.SubtotalCents)
	})

	t.Run("Same Product Merges Into Existing Line", func(t *testing.T) {
		cartRepo := new(mockCartRepository)
		productRepo := new(mockProductRepository)
		locker := new(mockLockerService)
		grantLock(locker)

		existing := models.NewCart("session-1")
		existing.AddLine(*espinheiraSanta(), 1)

		productRepo.On("FindByID", mock.Anything, "product-001").Return(espinheiraSanta(), nil)
		cartRepo.On("Find", mock.Anything, "session-1").Return(existing, nil)
		cartRepo.On("Save", mock.Anything, mock.Anything).Return(nil)

		uc := newTestCartUsecase(cartRepo, productRepo, locker)
		response, err := uc.AddItem(context.Background(), "session-1", &requests.AddCartItemRequest{ProductID: "product-001", Quantity: 1})

		assert.NoError(t, err)
		assert.Len(t, response.Items, 1, "cart must never hold two lines for one product")
		assert.Equal(t, 2, response.Items[0].Quantity)
	})

	t.Run("Unknown Product Rejected", func(t *testing.T) {
		cartRepo := new(mockCartRepository)
		productRepo := new(mockProductRepository)
		locker := new(mockLockerService)

		productRepo.On("FindByID", mock.Anything, "ghost").Return(nil, nil)

		uc := newTestCartUsecase(cartRepo, productRepo, locker)
		_, err := uc.AddItem(context.Background(), "session-1", &requests.AddCartItemRequest{ProductID: "ghost", Quantity: 1})

		assert.Error(t, err)
		cartRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestCartUsecaseUpdateQuantity(t *testing.T) {
	t.Run("Decrement To Zero Removes Line", func(t *testing.T) {
		cartRepo := new(mockCartRepository)
		productRepo := new(mockProductRepository)
		locker := new(mockLockerService)
		grantLock(locker)

		existing := models.NewCart("session-1")
		existing.AddLine(*espinheiraSanta(), 1)

		cartRepo.On("Find", mock.Anything, "session-1").Return(existing, nil)
		cartRepo.On("Save", mock.Anything, mock.Anything).Return(nil)

		uc := newTestCartUsecase(cartRepo, productRepo, locker)
		response, err := uc.UpdateQuantity(context.Background(), "session-1", &requests.UpdateCartQuantityRequest{ProductID: "product-001", Delta: -1})

		assert.NoError(t, err)
		assert.Empty(t, response.Items)
		assert.Equal(t, int64(0), response.SubtotalCents)
	})

	t.Run("Decrement Below Zero Clamps", func(t *testing.T) {
		cartRepo := new(mockCartRepository)
		productRepo := new(mockProductRepository)
		locker := new(mockLockerService)
		grantLock(locker)

		existing := models.NewCart("session-1")
		existing.AddLine(*espinheiraSanta(), 2)

		cartRepo.On("Find", mock.Anything, "session-1").Return(existing, nil)
		cartRepo.On("Save", mock.Anything, mock.Anything).Return(nil)

		uc := newTestCartUsecase(cartRepo, productRepo, locker)
		response, err := uc.UpdateQuantity(context.Background(), "session-1", &requests.UpdateCartQuantityRequest{ProductID: "product-001", Delta: -5})

		assert.NoError(t, err)
		assert.Empty(t, response.Items, "quantity clamps at zero and the line is removed")
	})

	t.Run("Unknown Product Is A NoOp", func(t *testing.T) {
		cartRepo := new(mockCartRepository)
		productRepo := new(mockProductRepository)
		locker := new(mockLockerService)
		grantLock(locker)

		existing := models.NewCart("session-1")
		existing.AddLine(*espinheiraSanta(), 2)

		cartRepo.On("Find", mock.Anything, "session-1").Return(existing, nil)
		cartRepo.On("Save", mock.Anything, mock.Anything).Return(nil)

		uc := newTestCartUsecase(cartRepo, productRepo, locker)
		response, err := uc.UpdateQuantity(context.Background(), "session-1", &requests.UpdateCartQuantityRequest{ProductID: "ghost", Delta: 1})

		assert.NoError(t, err)
		assert.Len(t, response.Items, 1)
		assert.Equal(t, 2, response.Items[0].Quantity)
	})
}

func TestCartSubtotal(t *testing.T) {
	t.Run("Subtotal Is Recomputed From Lines", func(t *testing.T) {
		cart := models.NewCart("session-1")
		cart.AddLine(models.Product{ID: "a", UnitPriceCents: 25900}, 3)
		cart.AddLine(models.Product{ID: "b", UnitPriceCents: 10700}, 2)

		assert.Equal(t, int64(99100), cart.SubtotalCents())

		cart.ApplyQuantityDelta("b", -1)
		assert.Equal(t, int64(88400), cart.SubtotalCents())

		cart.Clear()
		assert.Equal(t, int64(0), cart.SubtotalCents())
		assert.True(t, cart.IsEmpty())
	})
}
