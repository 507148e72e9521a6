package models

import "time"

// CartLine is one aggregated (product, quantity) pair. Lines are keyed by
// ProductID: a cart never holds two lines for the same product, and a line
// whose quantity reaches zero is removed rather than kept at zero.
type CartLine struct {
	ProductID      string `json:"product_id"`
	Name           string `json:"name"`
	Category       string `json:"category"`
	UnitPriceCents int64  `json:"unit_price_cents"`
	DisplayPrice   string `json:"display_price"`
	ImageRef       string `json:"image_ref"`
	Quantity       int    `json:"quantity"`
}

type Cart struct {
	SessionID string     `json:"session_id"`
	Lines     []CartLine `json:"lines"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func NewCart(sessionID string) *Cart {
	return &Cart{SessionID: sessionID}
}

// AddLine merges qty into an existing line for the same product or appends a
// new one, preserving insertion order for display.
func (c *Cart) AddLine(product Product, qty int) {
	if qty < 1 {
		qty = 1
	}
	for i := range c.Lines {
		if c.Lines[i].ProductID == product.ID {
			c.Lines[i].Quantity += qty
			return
		}
	}
	c.Lines = append(c.Lines, CartLine{
		ProductID:      product.ID,
		Name:           product.Name,
		Category:       product.Category,
		UnitPriceCents: product.UnitPriceCents,
		DisplayPrice:   product.DisplayPrice,
		ImageRef:       product.ImageRef,
		Quantity:       qty,
	})
}

// ApplyQuantityDelta adjusts the matching line by delta, clamping at zero and
// dropping the line when it hits zero. Unknown product ids are a no-op.
func (c *Cart) ApplyQuantityDelta(productID string, delta int) {
	for i := range c.Lines {
		if c.Lines[i].ProductID != productID {
			continue
		}
		next := c.Lines[i].Quantity + delta
		if next <= 0 {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			return
		}
		c.Lines[i].Quantity = next
		return
	}
}

func (c *Cart) Clear() {
	c.Lines = nil
}

func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

// SubtotalCents is recomputed on every call so it can never drift from the
// line state.
func (c *Cart) SubtotalCents() int64 {
	var total int64
	for _, line := range c.Lines {
		total += line.UnitPriceCents * int64(line.Quantity)
	}
	return total
}
