// Package mocks provides testify mocks of the service interfaces for
// handler tests.
package mocks

import (
	"context"

	"github.com/shophub/storefront/internal/models"
	"github.com/stretchr/testify/mock"
)

type ProductService struct {
	mock.Mock
}

func (m *ProductService) ListProducts(ctx context.Context, filter models.ProductFilter) ([]models.Product, error) {
	args := m.Called(ctx, filter)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *ProductService) GetProductByID(ctx context.Context, id string) (*models.Product, error) {
	args := m.Called(ctx, id)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *ProductService) ListCategories(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]string), args.Error(1)
}

type CartService struct {
	mock.Mock
}

func (m *CartService) GetCart(ctx context.Context, userID string) (*models.CartResponse, error) {
	args := m.Called(ctx, userID)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.CartResponse), args.Error(1)
}

func (m *CartService) AddItem(ctx context.Context, userID string, req *models.AddItemRequest) (*models.CartResponse, error) {
	args := m.Called(ctx, userID, req)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.CartResponse), args.Error(1)
}

func (m *CartService) UpdateQuantity(ctx context.Context, userID, productID string, quantity int) (*models.CartResponse, error) {
	args := m.Called(ctx, userID, productID, quantity)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.CartResponse), args.Error(1)
}

func (m *CartService) RemoveItem(ctx context.Context, userID, productID string) (*models.CartResponse, error) {
	args := m.Called(ctx, userID, productID)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.CartResponse), args.Error(1)
}

func (m *CartService) ClearCart(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)

	return args.Error(0)
}

type OrderService struct {
	mock.Mock
}

func (m *OrderService) Checkout(ctx context.Context, userID string, address models.ShippingAddress, paymentMethod string) (*models.Order, error) {
	args := m.Called(ctx, userID, address, paymentMethod)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *OrderService) CheckoutSummary(ctx context.Context, userID string) (*models.SummaryResponse, error) {
	args := m.Called(ctx, userID)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.SummaryResponse), args.Error(1)
}

func (m *OrderService) ListOrders(ctx context.Context, userID string) ([]models.Order, error) {
	args := m.Called(ctx, userID)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]models.Order), args.Error(1)
}

func (m *OrderService) GetOrder(ctx context.Context, userID, orderID string) (*models.Order, error) {
	args := m.Called(ctx, userID, orderID)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *OrderService) UpdateOrderStatus(ctx context.Context, userID, orderID string, status models.OrderStatus) (*models.Order, error) {
	args := m.Called(ctx, userID, orderID, status)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.Order), args.Error(1)
}

type UserService struct {
	mock.Mock
}

func (m *UserService) Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error) {
	args := m.Called(ctx, req)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.AuthResponse), args.Error(1)
}

func (m *UserService) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	args := m.Called(ctx, req)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.AuthResponse), args.Error(1)
}
