package checkout

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

	"go.uber.org/zap"
)

type checkoutUsecase struct {
	CheckoutSessionRepository contracts.CheckoutSessionRepository
	CartRepository            contracts.CartRepository
	GatewayService            contracts.PaymentGatewayService
	NotificationQueue         contracts.NotificationQueueService
	InternalConfig            *config.InternalConfig
	Log                       *zap.Logger
}

var (
	checkoutUsecaseInstance contracts.CheckoutUsecase
	onceCheckoutUsecase     sync.Once
)

func NewCheckoutUsecase(
	checkoutSessionRepository contracts.CheckoutSessionRepository,
	cartRepository contracts.CartRepository,
	gatewayService contracts.PaymentGatewayService,
	notificationQueue contracts.NotificationQueueService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.CheckoutUsecase {
	onceCheckoutUsecase.Do(func() {
		instance := &checkoutUsecase{
			CheckoutSessionRepository: checkoutSessionRepository,
			CartRepository:            cartRepository,
			GatewayService:            gatewayService,
			NotificationQueue:         notificationQueue,
			InternalConfig:            internalConfig,
			Log:                       logger,
		}
		checkoutUsecaseInstance = instance
	})
	return checkoutUsecaseInstance
}

// BeginCheckout snapshots a non-empty cart into the review stage. An empty
// cart can never enter checkout, and a session that already reached success
// cannot re-enter it.
func (uc *checkoutUsecase) BeginCheckout(ctx context.Context, sessionID string) (*responses.Checkout, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("checkoutUsecase.BeginCheckout called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCartSessionKey, sessionID),
	)

	existing, err := uc.CheckoutSessionRepository.Find(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if existing != nil && existing.Stage == models.CheckoutStageSuccess {
		return nil, exceptions.ErrCheckoutStageTransition(fmt.Errorf("checkout for %s already completed", sessionID))
	}

	cart, err := uc.CartRepository.Find(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if cart == nil || cart.IsEmpty() {
		return nil, exceptions.ErrCartEmptyOnCheckout(fmt.Errorf("cart for session %s is empty", sessionID))
	}

	session := &models.CheckoutSession{
		SessionID:  sessionID,
		Stage:      models.CheckoutStageReview,
		Items:      cart.Lines,
		TotalCents: cart.SubtotalCents(),
	}
	if err := uc.CheckoutSessionRepository.Save(ctx, session); err != nil {
		return nil, err
	}

	uc.Log.Info("checkoutUsecase.BeginCheckout succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCartSessionKey, sessionID),
		zap.Int64(constvars.LoggingSubtotalCentsKey, session.TotalCents),
	)
	return buildCheckoutResponse(session), nil
}

// BackToCart returns from review to the cart stage without touching cart
// contents.
func (uc *checkoutUsecase) BackToCart(ctx context.Context, sessionID string) (*responses.Checkout, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("checkoutUsecase.BackToCart called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCartSessionKey, sessionID),
	)

	session, err := uc.CheckoutSessionRepository.Find(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, exceptions.ErrCheckoutNotStarted(fmt.Errorf("no checkout session for %s", sessionID))
	}
	if session.Stage == models.CheckoutStageSuccess {
		return nil, exceptions.ErrCheckoutStageTransition(fmt.Errorf("cannot leave terminal stage %s", session.Stage))
	}

	session.Stage = models.CheckoutStageCart
	if err := uc.CheckoutSessionRepository.Save(ctx, session); err != nil {
		return nil, err
	}

	uc.Log.Info("checkoutUsecase.BackToCart succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCartSessionKey, sessionID),
	)
	return buildCheckoutResponse(session), nil
}

// CompletePayment moves review to success. The gateway confirmation is the
// only path in; its single side effect on the cart is clearing it.
func (uc *checkoutUsecase) CompletePayment(ctx context.Context, sessionID string, request *requests.CompletePaymentRequest) (*responses.Checkout, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("checkoutUsecase.CompletePayment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCartSessionKey, sessionID),
	)

	session, err := uc.CheckoutSessionRepository.Find(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, exceptions.ErrCheckoutNotStarted(fmt.Errorf("no checkout session for %s", sessionID))
	}
	if session.Stage == models.CheckoutStageSuccess {
		return nil, exceptions.ErrCheckoutStageTransition(fmt.Errorf("checkout for %s already completed", sessionID))
	}
	if session.Stage != models.CheckoutStageReview {
		return nil, exceptions.ErrCheckoutNotStarted(fmt.Errorf("payment attempted from stage %s", session.Stage))
	}

	confirmationID, err := uc.GatewayService.ConfirmPayment(ctx, request.PaymentReference, session.TotalCents)
	if err != nil {
		uc.Log.Error("checkoutUsecase.CompletePayment gateway did not confirm",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingCartSessionKey, sessionID),
			zap.Error(err),
		)
		return nil, err
	}

	if err := uc.CartRepository.Delete(ctx, sessionID); err != nil {
		return nil, err
	}

	session.Stage = models.CheckoutStageSuccess
	session.ConfirmationID = confirmationID
	if err := uc.CheckoutSessionRepository.Save(ctx, session); err != nil {
		return nil, err
	}

	// Confirmation notifications are best-effort: a broker outage must not
	// fail a payment that already settled.
	publishErr := uc.NotificationQueue.PublishOrderConfirmed(ctx, &contracts.OrderConfirmedEvent{
		SessionID:      sessionID,
		ConfirmationID: confirmationID,
		TotalCents:     session.TotalCents,
	})
	if publishErr != nil {
		uc.Log.Warn("checkoutUsecase.CompletePayment failed to publish confirmation",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingCartSessionKey, sessionID),
			zap.Error(publishErr),
		)
	}

	uc.Log.Info("checkoutUsecase.CompletePayment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCartSessionKey, sessionID),
		zap.String(constvars.LoggingConfirmationKey, confirmationID),
	)
	return buildCheckoutResponse(session), nil
}

func (uc *checkoutUsecase) GetCheckout(ctx context.Context, sessionID string) (*responses.Checkout, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("checkoutUsecase.GetCheckout called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCartSessionKey, sessionID),
	)

	session, err := uc.CheckoutSessionRepository.Find(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, exceptions.ErrCheckoutNotStarted(fmt.Errorf("no checkout session for %s", sessionID))
	}

	return buildCheckoutResponse(session), nil
}

func buildCheckoutResponse(session *models.CheckoutSession) *responses.Checkout {
	items := make([]responses.CartItem, 0, len(session.Items))
	for _, line := range session.Items {
		items = append(items, responses.CartItem{
			ProductID:    line.ProductID,
			Name:         line.Name,
			Category:     line.Category,
			DisplayPrice: line.DisplayPrice,
			ImageRef:     line.ImageRef,
			Quantity:     line.Quantity,
			LineCents:    line.UnitPriceCents * int64(line.Quantity),
		})
	}

	return &responses.Checkout{
		SessionID:      session.SessionID,
		Stage:          string(session.Stage),
		Items:          items,
		TotalCents:     session.TotalCents,
		TotalDisplay:   utils.FormatDisplayPrice(session.TotalCents),
		ConfirmationID: session.ConfirmationID,
	}
}
