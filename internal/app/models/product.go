package models

import "time"

type Product struct {
	ID             string    `json:"id" bson:"_id,omitempty"`
	Name           string    `json:"name" bson:"name"`
	Category       string    `json:"category" bson:"category"`
	UnitPriceCents int64     `json:"unit_price_cents" bson:"unit_price_cents"`
	DisplayPrice   string    `json:"display_price" bson:"display_price"`
	ImageRef       string    `json:"image_ref" bson:"image_ref"`
	CreatedAt      time.Time `json:"created_at" bson:"created_at"`
}
