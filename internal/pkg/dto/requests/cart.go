package requests

type AddCartItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"omitempty,gte=1"`
}

// Delta is signed: +1 from the increment control, -1 from the decrement
// control. Zero is rejected because it cannot come from either control.
type UpdateCartQuantityRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Delta     int    `json:"delta" validate:"required"`
}
