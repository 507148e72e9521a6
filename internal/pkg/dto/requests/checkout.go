package requests

type CompletePaymentRequest struct {
	PaymentReference string `json:"payment_reference" validate:"required"`
}
