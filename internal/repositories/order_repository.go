package repository

import (
	"sync"

	"github.com/shophub/storefront/internal/models"
)

// OrderRepository is an append-only, insertion-ordered order store. Callers
// guarantee id uniqueness (orders carry freshly generated UUIDs).
type OrderRepository struct {
	mu     sync.RWMutex
	orders []models.Order
}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{}
}

func (r *OrderRepository) CreateOrder(order *models.Order) {

	r.mu.Lock()
	defer r.mu.Unlock()

	r.orders = append(r.orders, *order)
}

// ListOrdersByUser returns the user's orders in creation order.
func (r *OrderRepository) ListOrdersByUser(userID string) []models.Order {

	r.mu.RLock()
	defer r.mu.RUnlock()

	result := []models.Order{}

	for _, order := range r.orders {
		if order.UserID == userID {
			result = append(result, order)
		}
	}

	return result
}

// GetOrderByID returns the order matching both id and owner. An order id
// that exists but belongs to another user is indistinguishable from an
// unknown id.
func (r *OrderRepository) GetOrderByID(orderID, userID string) (models.Order, bool) {

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, order := range r.orders {
		if order.ID == orderID && order.UserID == userID {
			return order, true
		}
	}

	return models.Order{}, false
}

// UpdateOrderStatus overwrites the status in place, leaving all other
// fields untouched. Returns false when no order matches both id and owner.
func (r *OrderRepository) UpdateOrderStatus(orderID, userID string, status models.OrderStatus) bool {

	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.orders {
		if r.orders[i].ID == orderID && r.orders[i].UserID == userID {
			r.orders[i].Status = status

			return true
		}
	}

	return false
}
