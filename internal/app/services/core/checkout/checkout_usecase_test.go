package checkout

import (
	"context"
	"errors"
	"mediplant-service/internal/app/config"
	"mediplant-service/internal/app/contracts"
	"mediplant-service/internal/app/models"
	"mediplant-service/internal/pkg/dto/requests"
	"mediplant-service/internal/pkg/exceptions"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type mockCheckoutSessionRepository struct {
	mock.Mock
}

func (m *mockCheckoutSessionRepository) Find(ctx context.Context, sessionID string) (*models.CheckoutSession, error) {
	args := m.Called(ctx, sessionID)
	if session := args.Get(0); session != nil {
		return session.(*models.CheckoutSession), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCheckoutSessionRepository) Save(ctx context.Context, session *models.CheckoutSession) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *mockCheckoutSessionRepository) Delete(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

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

type mockGatewayService struct {
	mock.Mock
}

func (m *mockGatewayService) ConfirmPayment(ctx context.Context, paymentReference string, amountCents int64) (string, error) {
	args := m.Called(ctx, paymentReference, amountCents)
	return args.String(0), args.Error(1)
}

type mockNotificationQueue struct {
	mock.Mock
}

func (m *mockNotificationQueue) PublishOrderConfirmed(ctx context.Context, event *contracts.OrderConfirmedEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *mockNotificationQueue) PublishRegistrationCompleted(ctx context.Context, event *contracts.RegistrationCompletedEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func newTestCheckoutUsecase(sessions *mockCheckoutSessionRepository, carts *mockCartRepository, gateway *mockGatewayService, queue *mockNotificationQueue) *checkoutUsecase {
	return &checkoutUsecase{
		CheckoutSessionRepository: sessions,
		CartRepository:            carts,
		GatewayService:            gateway,
		NotificationQueue:         queue,
		InternalConfig: &config.InternalConfig{
			Cart: config.Cart{CheckoutTTLInMinutes: 30},
		},
		Log: zap.NewNop(),
	}
}

func filledCart() *models.Cart {
	cart := models.NewCart("session-1")
	cart.AddLine(models.Product{ID: "product-001", Name: "Espinheira Santa", UnitPriceCents: 4550, DisplayPrice: "R$ 45,50"}, 2)
	return cart
}

func TestBeginCheckout(t *testing.T) {
	t.Run("Empty Cart Is Rejected", func(t *testing.T) {
		sessions := new(mockCheckoutSessionRepository)
		carts := new(mockCartRepository)

		sessions.On("Find", mock.Anything, "session-1").Return(nil, nil)
		carts.On("Find", mock.Anything, "session-1").Return(nil, nil)

		uc := newTestCheckoutUsecase(sessions, carts, new(mockGatewayService), new(mockNotificationQueue))
		_, err := uc.BeginCheckout(context.Background(), "session-1")

		assert.Error(t, err)
		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, 412, customErr.StatusCode)
		sessions.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("Snapshots Cart Into Review Stage", func(t *testing.T) {
		sessions := new(mockCheckoutSessionRepository)
		carts := new(mockCartRepository)

		sessions.On("Find", mock.Anything, "session-1").Return(nil, nil)
		carts.On("Find", mock.Anything, "session-1").Return(filledCart(), nil)
		sessions.On("Save", mock.Anything, mock.Anything).Return(nil)

		uc := newTestCheckoutUsecase(sessions, carts, new(mockGatewayService), new(mockNotificationQueue))
		response, err := uc.BeginCheckout(context.Background(), "session-1")

		assert.NoError(t, err)
		assert.Equal(t, "checkout", response.Stage)
		assert.Equal(t, int64(9100), response.TotalCents)
		assert.Len(t, response.Items, 1)
	})

	t.Run("Completed Session Cannot Re-Enter Checkout", func(t *testing.T) {
		sessions := new(mockCheckoutSessionRepository)
		carts := new(mockCartRepository)

		session := &models.CheckoutSession{SessionID: "session-1", Stage: models.CheckoutStageSuccess, ConfirmationID: "conf-777"}
		sessions.On("Find", mock.Anything, "session-1").Return(session, nil)

		uc := newTestCheckoutUsecase(sessions, carts, new(mockGatewayService), new(mockNotificationQueue))
		_, err := uc.BeginCheckout(context.Background(), "session-1")

		assert.Error(t, err)
		carts.AssertNotCalled(t, "Find", mock.Anything, mock.Anything)
		sessions.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("Review Session Can Re-Enter Checkout", func(t *testing.T) {
		sessions := new(mockCheckoutSessionRepository)
		carts := new(mockCartRepository)

		session := &models.CheckoutSession{SessionID: "session-1", Stage: models.CheckoutStageReview, TotalCents: 9100}
		sessions.On("Find", mock.Anything, "session-1").Return(session, nil)
		carts.On("Find", mock.Anything, "session-1").Return(filledCart(), nil)
		sessions.On("Save", mock.Anything, mock.Anything).Return(nil)

		uc := newTestCheckoutUsecase(sessions, carts, new(mockGatewayService), new(mockNotificationQueue))
		response, err := uc.BeginCheckout(context.Background(), "session-1")

		assert.NoError(t, err)
		assert.Equal(t, "checkout", response.Stage)
	})
}

func TestBackToCart(t *testing.T) {
	t.Run("Returns To Cart Without Touching Cart Contents", func(t *testing.T) {
		sessions := new(mockCheckoutSessionRepository)
		carts := new(mockCartRepository)

		session := &models.CheckoutSession{SessionID: "session-1", Stage: models.CheckoutStageReview, TotalCents: 9100}
		sessions.On("Find", mock.Anything, "session-1").Return(session, nil)
		sessions.On("Save", mock.Anything, mock.Anything).Return(nil)

		uc := newTestCheckoutUsecase(sessions, carts, new(mockGatewayService), new(mockNotificationQueue))
		response, err := uc.BackToCart(context.Background(), "session-1")

		assert.NoError(t, err)
		assert.Equal(t, "cart", response.Stage)
		carts.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
		carts.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("Cannot Leave Terminal Stage", func(t *testing.T) {
		sessions := new(mockCheckoutSessionRepository)

		session := &models.CheckoutSession{SessionID: "session-1", Stage: models.CheckoutStageSuccess}
		sessions.On("Find", mock.Anything, "session-1").Return(session, nil)

		uc := newTestCheckoutUsecase(sessions, new(mockCartRepository), new(mockGatewayService), new(mockNotificationQueue))
		_, err := uc.BackToCart(context.Background(), "session-1")

		assert.Error(t, err)
	})
}

func TestCompletePayment(t *testing.T) {
	paymentRequest := &requests.CompletePaymentRequest{PaymentReference: "pay-123"}

	t.Run("Confirmed Payment Clears Cart And Reaches Success", func(t *testing.T) {
		sessions := new(mockCheckoutSessionRepository)
		carts := new(mockCartRepository)
		gateway := new(mockGatewayService)
		queue := new(mockNotificationQueue)

		session := &models.CheckoutSession{SessionID: "session-1", Stage: models.CheckoutStageReview, TotalCents: 9100}
		sessions.On("Find", mock.Anything, "session-1").Return(session, nil)
		gateway.On("ConfirmPayment", mock.Anything, "pay-123", int64(9100)).Return("conf-777", nil)
		carts.On("Delete", mock.Anything, "session-1").Return(nil)
		sessions.On("Save", mock.Anything, mock.Anything).Return(nil)
		queue.On("PublishOrderConfirmed", mock.Anything, mock.Anything).Return(nil)

		uc := newTestCheckoutUsecase(sessions, carts, gateway, queue)
		response, err := uc.CompletePayment(context.Background(), "session-1", paymentRequest)

		assert.NoError(t, err)
		assert.Equal(t, "success", response.Stage)
		assert.Equal(t, "conf-777", response.ConfirmationID)
		carts.AssertCalled(t, "Delete", mock.Anything, "session-1")
	})

	t.Run("Declined Payment Leaves Cart Intact", func(t *testing.T) {
		sessions := new(mockCheckoutSessionRepository)
		carts := new(mockCartRepository)
		gateway := new(mockGatewayService)

		session := &models.CheckoutSession{SessionID: "session-1", Stage: models.CheckoutStageReview, TotalCents: 9100}
		sessions.On("Find", mock.Anything, "session-1").Return(session, nil)
		gateway.On("ConfirmPayment", mock.Anything, "pay-123", int64(9100)).Return("", errors.New("declined"))

		uc := newTestCheckoutUsecase(sessions, carts, gateway, new(mockNotificationQueue))
		_, err := uc.CompletePayment(context.Background(), "session-1", paymentRequest)

		assert.Error(t, err)
		carts.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
		sessions.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("Payment From Cart Stage Is Rejected", func(t *testing.T) {
		sessions := new(mockCheckoutSessionRepository)

		session := &models.CheckoutSession{SessionID: "session-1", Stage: models.CheckoutStageCart}
		sessions.On("Find", mock.Anything, "session-1").Return(session, nil)

		uc := newTestCheckoutUsecase(sessions, new(mockCartRepository), new(mockGatewayService), new(mockNotificationQueue))
		_, err := uc.CompletePayment(context.Background(), "session-1", paymentRequest)

		assert.Error(t, err)
	})

	t.Run("Double Completion Is Rejected", func(t *testing.T) {
		sessions := new(mockCheckoutSessionRepository)

		session := &models.CheckoutSession{SessionID: "session-1", Stage: models.CheckoutStageSuccess, ConfirmationID: "conf-777"}
		sessions.On("Find", mock.Anything, "session-1").Return(session, nil)

		uc := newTestCheckoutUsecase(sessions, new(mockCartRepository), new(mockGatewayService), new(mockNotificationQueue))
		_, err := uc.CompletePayment(context.Background(), "session-1", paymentRequest)

		assert.Error(t, err)
	})

	t.Run("Notification Failure Does Not Fail Payment", func(t *testing.T) {
		sessions := new(mockCheckoutSessionRepository)
		carts := new(mockCartRepository)
		gateway := new(mockGatewayService)
		queue := new(mockNotificationQueue)

		session := &models.CheckoutSession{SessionID: "session-1", Stage: models.CheckoutStageReview, TotalCents: 9100}
		sessions.On("Find", mock.Anything, "session-1").Return(session, nil)
		gateway.On("ConfirmPayment", mock.Anything, "pay-123", int64(9100)).Return("conf-777", nil)
		carts.On("Delete", mock.Anything, "session-1").Return(nil)
		sessions.On("Save", mock.Anything, mock.Anything).Return(nil)
		queue.On("PublishOrderConfirmed", mock.Anything, mock.Anything).Return(errors.New("broker down"))

		uc := newTestCheckoutUsecase(sessions, carts, gateway, queue)
		response, err := uc.CompletePayment(context.Background(), "session-1", paymentRequest)

		assert.NoError(t, err)
		assert.Equal(t, "success", response.Stage)
	})
}
