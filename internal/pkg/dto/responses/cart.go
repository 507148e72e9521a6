package responses

type CartItem struct {
	ProductID    string `json:"product_id"`
	Name         string `json:"name"`
	Category     string `json:"category"`
	DisplayPrice string `json:"display_price"`
	ImageRef     string `json:"image_ref,omitempty"`
	Quantity     int    `json:"quantity"`
	LineCents    int64  `json:"line_cents"`
}

type CartSession struct {
	SessionID string `json:"session_id"`
}

type Cart struct {
	SessionID        string     `json:"session_id"`
	Items            []CartItem `json:"items"`
	SubtotalCents    int64      `json:"subtotal_cents"`
	SubtotalDisplay  string     `json:"subtotal_display"`
	TotalItemsAmount int        `json:"total_items_amount"`
}
