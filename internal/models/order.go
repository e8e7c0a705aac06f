package models

import "time"

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
)

// ValidOrderStatus reports whether s is one of the four defined states.
func ValidOrderStatus(s OrderStatus) bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped, OrderStatusDelivered:
		return true
	}

	return false
}

type ShippingAddress struct {
	FullName string `json:"fullName" validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Address  string `json:"address"  validate:"required"`
	City     string `json:"city"     validate:"required"`
	ZipCode  string `json:"zipCode"  validate:"required"`
	Country  string `json:"country"  validate:"required"`
}

// OrderLineItem is a frozen copy of the purchased product captured at
// checkout. Later catalog changes never affect it.
type OrderLineItem struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

// Order is immutable after creation except for Status.
type Order struct {
	ID              string          `json:"id"`
	UserID          string          `json:"userId"`
	Items           []OrderLineItem `json:"items"`
	Subtotal        float64         `json:"subtotal"`
	Shipping        float64         `json:"shipping"`
	Tax             float64         `json:"tax"`
	Total           float64         `json:"total"`
	ShippingAddress ShippingAddress `json:"shippingAddress"`
	PaymentMethod   string          `json:"paymentMethod,omitempty"`
	Status          OrderStatus     `json:"status"`
	CreatedAt       time.Time       `json:"createdAt"`
}

type CreateOrderRequest struct {
	ShippingAddress ShippingAddress `json:"shippingAddress" validate:"required"`
}

type CheckoutRequest struct {
	ShippingAddress ShippingAddress `json:"shippingAddress" validate:"required"`
	PaymentMethod   string          `json:"paymentMethod"   validate:"required,oneof=credit_card debit_card paypal cash_on_delivery"`
}

type UpdateOrderStatusRequest struct {
	Status OrderStatus `json:"status" validate:"required"`
}

type CheckoutResponse struct {
	Message string          `json:"message"`
	Order   *Order          `json:"order"`
	Summary CheckoutSummary `json:"summary"`
}

type CheckoutSummary struct {
	ItemCount int     `json:"itemCount"`
	Subtotal  float64 `json:"subtotal"`
	Shipping  float64 `json:"shipping"`
	Tax       float64 `json:"tax"`
	Total     float64 `json:"total"`
}

// SummaryLineItem appears in the pre-checkout preview only.
type SummaryLineItem struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	LineTotal float64 `json:"lineTotal"`
	InStock   bool    `json:"inStock"`
}

type SummaryResponse struct {
	Items                 []SummaryLineItem `json:"items"`
	Subtotal              float64           `json:"subtotal"`
	Shipping              float64           `json:"shipping"`
	Tax                   float64           `json:"tax"`
	Total                 float64           `json:"total"`
	FreeShippingThreshold float64           `json:"freeShippingThreshold"`
	PaymentMethods        []string          `json:"availablePaymentMethods"`
}
