package contracts

import "context"

// PaymentGatewayService is the injected payment capability: checkout never
// decides on its own that a payment went through.
type PaymentGatewayService interface {
	ConfirmPayment(ctx context.Context, paymentReference string, amountCents int64) (string, error)
}
