package payment_gateway

import (
	"bytes"
	"context"
	"fmt"
	"mediplant-service/internal/app/config"
	"mediplant-service/internal/app/contracts"
	"mediplant-service/internal/pkg/constvars"
	"mediplant-service/internal/pkg/exceptions"
	"net/http"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

var (
	gatewayServiceInstance contracts.PaymentGatewayService
	onceGatewayService     sync.Once
)

type gatewayService struct {
	BaseUrl    string
	ApiKey     string
	HttpClient *http.Client
	Log        *zap.Logger
}

func NewGatewayService(internalConfig *config.InternalConfig, logger *zap.Logger) contracts.PaymentGatewayService {
	onceGatewayService.Do(func() {
		instance := &gatewayService{
			BaseUrl: internalConfig.PaymentGateway.BaseUrl,
			ApiKey:  internalConfig.PaymentGateway.ApiKey,
			HttpClient: &http.Client{
				Timeout: time.Duration(internalConfig.PaymentGateway.TimeoutInSeconds) * time.Second,
			},
			Log: logger,
		}
		gatewayServiceInstance = instance
	})
	return gatewayServiceInstance
}

type confirmPaymentRequest struct {
	PaymentReference string `json:"payment_reference"`
	AmountCents      int64  `json:"amount_cents"`
	Currency         string `json:"currency"`
}

type confirmPaymentResponse struct {
	Confirmed      bool   `json:"confirmed"`
	ConfirmationID string `json:"confirmation_id"`
	Reason         string `json:"reason,omitempty"`
}

// ConfirmPayment asks the gateway whether the referenced payment settled for
// the expected amount. Only an explicit confirmation yields a confirmation id.
func (s *gatewayService) ConfirmPayment(ctx context.Context, paymentReference string, amountCents int64) (string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.Log.Info("gatewayService.ConfirmPayment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	payload, err := json.Marshal(confirmPaymentRequest{
		PaymentReference: paymentReference,
		AmountCents:      amountCents,
		Currency:         constvars.CurrencyBrazilianReal,
	})
	if err != nil {
		return "", exceptions.ErrCannotMarshalJSON(err)
	}

	url := fmt.Sprintf("%s/payments/confirm", s.BaseUrl)
	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	req.Header.Set(constvars.HeaderXAPIKey, s.ApiKey)

	resp, err := s.HttpClient.Do(req)
	if err != nil {
		return "", exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		return "", exceptions.ErrGatewayConfirmPayment(fmt.Errorf("gateway returned status %d", resp.StatusCode))
	}

	var confirmation confirmPaymentResponse
	if err := json.NewDecoder(resp.Body).Decode(&confirmation); err != nil {
		return "", exceptions.ErrGatewayConfirmPayment(err)
	}

	if !confirmation.Confirmed {
		return "", exceptions.ErrPaymentNotConfirmed(fmt.Errorf("gateway declined: %s", confirmation.Reason))
	}

	s.Log.Info("gatewayService.ConfirmPayment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingConfirmationKey, confirmation.ConfirmationID),
	)
	return confirmation.ConfirmationID, nil
}
