package models

import "time"

type CheckoutStage string

const (
	CheckoutStageCart    CheckoutStage = "cart"
	CheckoutStageReview  CheckoutStage = "checkout"
	CheckoutStageSuccess CheckoutStage = "success"
)

// CheckoutSession is ephemeral: it lives in Redis next to the cart and its
// only durable side effect is clearing the cart on a confirmed payment.
type CheckoutSession struct {
	SessionID      string        `json:"session_id"`
	Stage          CheckoutStage `json:"stage"`
	Items          []CartLine    `json:"items"`
	TotalCents     int64         `json:"total_cents"`
	ConfirmationID string        `json:"confirmation_id,omitempty"`
	UpdatedAt      time.Time     `json:"updated_at"`
}
