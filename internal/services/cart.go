package service

import (
	"context"

	"github.com/shophub/storefront/internal/errors"
	"github.com/shophub/storefront/internal/models"
	repository "github.com/shophub/storefront/internal/repositories"
)

type CartService interface {
	GetCart(ctx context.Context, userID string) (*models.CartResponse, error)
	AddItem(ctx context.Context, userID string, req *models.AddItemRequest) (*models.CartResponse, error)
	UpdateQuantity(ctx context.Context, userID, productID string, quantity int) (*models.CartResponse, error)
	RemoveItem(ctx context.Context, userID, productID string) (*models.CartResponse, error)
	ClearCart(ctx context.Context, userID string) error
}

type cartService struct {
	cartRepo *repository.CartRepository
	catalog  *repository.CatalogRepository
}

func NewCartService(cartRepo *repository.CartRepository, catalog *repository.CatalogRepository) CartService {
	return &cartService{cartRepo: cartRepo, catalog: catalog}
}

// GetCart never fails: a user without a cart sees an empty one.
func (s *cartService) GetCart(ctx context.Context, userID string) (*models.CartResponse, error) {

	cart, _ := s.cartRepo.GetCart(userID)

	return s.enrich(cart), nil
}

func (s *cartService) AddItem(ctx context.Context, userID string, req *models.AddItemRequest) (*models.CartResponse, error) {

	if req.Quantity < 1 {
		return nil, errors.ValidationError("Quantity must be at least 1")
	}

	if s.catalog.GetProductByID(req.ProductID) == nil {
		return nil, errors.NotFoundError("Product not found")
	}

	cart := s.cartRepo.UpsertItem(userID, req.ProductID, req.Quantity)

	return s.enrich(cart), nil
}

func (s *cartService) UpdateQuantity(ctx context.Context, userID, productID string, quantity int) (*models.CartResponse, error) {

	if quantity < 1 {
		return nil, errors.ValidationError("Quantity must be at least 1")
	}

	cart, ok := s.cartRepo.SetQuantity(userID, productID, quantity)
	if !ok {
		return nil, errors.NotFoundError("Item not found in cart")
	}

	return s.enrich(cart), nil
}

func (s *cartService) RemoveItem(ctx context.Context, userID, productID string) (*models.CartResponse, error) {

	cart, ok := s.cartRepo.RemoveItem(userID, productID)
	if !ok {
		return nil, errors.NotFoundError("Cart not found")
	}

	return s.enrich(cart), nil
}

func (s *cartService) ClearCart(ctx context.Context, userID string) error {

	s.cartRepo.Clear(userID)

	return nil
}

// enrich joins stored cart lines with their catalog products. Lines whose
// product no longer resolves are dropped from the view, not from the cart.
func (s *cartService) enrich(cart models.Cart) *models.CartResponse {

	items := make([]models.EnrichedCartItem, 0, len(cart.Items))

	for _, item := range cart.Items {
		product := s.catalog.GetProductByID(item.ProductID)
		if product == nil {
			continue
		}

		items = append(items, models.EnrichedCartItem{Product: product, Quantity: item.Quantity})
	}

	return &models.CartResponse{Items: items}
}
