package repository

import (
	"sync"

	"github.com/shophub/storefront/internal/models"
)

// CartRepository keeps per-user carts in process memory. Every method is
// atomic under the repository lock; read-modify-write sequences that span
// calls (checkout) must serialize at the service layer.
type CartRepository struct {
	mu    sync.RWMutex
	carts map[string]*models.Cart
}

func NewCartRepository() *CartRepository {
	return &CartRepository{carts: make(map[string]*models.Cart)}
}

// GetCart returns a copy of the user's cart. A user without a cart gets an
// empty one; the second return reports whether a cart actually exists.
func (r *CartRepository) GetCart(userID string) (models.Cart, bool) {

	r.mu.RLock()
	defer r.mu.RUnlock()

	cart, ok := r.carts[userID]
	if !ok {
		return models.Cart{UserID: userID, Items: []models.CartItem{}}, false
	}

	return copyCart(cart), true
}

// UpsertItem adds quantity of productID to the user's cart, creating the
// cart on first add. An existing line for the same product is merged by
// incrementing its quantity.
func (r *CartRepository) UpsertItem(userID, productID string, quantity int) models.Cart {

	r.mu.Lock()
	defer r.mu.Unlock()

	cart, ok := r.carts[userID]
	if !ok {
		cart = &models.Cart{UserID: userID, Items: []models.CartItem{}}
		r.carts[userID] = cart
	}

	for i := range cart.Items {
		if cart.Items[i].ProductID == productID {
			cart.Items[i].Quantity += quantity

			return copyCart(cart)
		}
	}

	cart.Items = append(cart.Items, models.CartItem{ProductID: productID, Quantity: quantity})

	return copyCart(cart)
}

// SetQuantity overwrites the quantity of an existing line in place. The
// second return is false when the user has no cart or no matching line.
func (r *CartRepository) SetQuantity(userID, productID string, quantity int) (models.Cart, bool) {

	r.mu.Lock()
	defer r.mu.Unlock()

	cart, ok := r.carts[userID]
	if !ok {
		return models.Cart{}, false
	}

	for i := range cart.Items {
		if cart.Items[i].ProductID == productID {
			cart.Items[i].Quantity = quantity

			return copyCart(cart), true
		}
	}

	return models.Cart{}, false
}

// RemoveItem deletes the line for productID if present. Removing an absent
// line is not an error; the return is false only when no cart exists.
func (r *CartRepository) RemoveItem(userID, productID string) (models.Cart, bool) {

	r.mu.Lock()
	defer r.mu.Unlock()

	cart, ok := r.carts[userID]
	if !ok {
		return models.Cart{}, false
	}

	items := cart.Items[:0]

	for _, item := range cart.Items {
		if item.ProductID != productID {
			items = append(items, item)
		}
	}

	cart.Items = items

	return copyCart(cart), true
}

// Clear deletes the user's cart entirely. Idempotent.
func (r *CartRepository) Clear(userID string) {

	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.carts, userID)
}

func copyCart(cart *models.Cart) models.Cart {

	items := make([]models.CartItem, len(cart.Items))
	copy(items, cart.Items)

	return models.Cart{UserID: cart.UserID, Items: items}
}
