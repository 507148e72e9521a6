package responses

type Checkout struct {
	SessionID      string     `json:"session_id"`
	Stage          string     `json:"stage"`
	Items          []CartItem `json:"items"`
	TotalCents     int64      `json:"total_cents"`
	TotalDisplay   string     `json:"total_display"`
	ConfirmationID string     `json:"confirmation_id,omitempty"`
}
