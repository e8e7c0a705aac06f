package models

// CartItem references a catalog product by id. A cart holds at most one
// item per product; adding the same product again merges quantities.
type CartItem struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

type Cart struct {
	UserID string     `json:"userId"`
	Items  []CartItem `json:"items"`
}

// EnrichedCartItem is the wire shape for cart reads: the stored item joined
// with its current catalog product.
type EnrichedCartItem struct {
	Product  *Product `json:"product"`
	Quantity int      `json:"quantity"`
}

type CartResponse struct {
	Items []EnrichedCartItem `json:"items"`
}

type AddItemRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity"  validate:"required,min=1"`
}

type UpdateQuantityRequest struct {
	Quantity int `json:"quantity" validate:"required,min=1"`
}
