package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shophub/storefront/internal/errors"
	"github.com/shophub/storefront/internal/models"
	"github.com/shophub/storefront/internal/pricing"
	repository "github.com/shophub/storefront/internal/repositories"
)

// PaymentMethods accepted at checkout. No payment is actually captured;
// the method is recorded on the order verbatim.
var PaymentMethods = []string{"credit_card", "debit_card", "paypal", "cash_on_delivery"}

type OrderService interface {
	Checkout(ctx context.Context, userID string, address models.ShippingAddress, paymentMethod string) (*models.Order, error)
	CheckoutSummary(ctx context.Context, userID string) (*models.SummaryResponse, error)
	ListOrders(ctx context.Context, userID string) ([]models.Order, error)
	GetOrder(ctx context.Context, userID, orderID string) (*models.Order, error)
	UpdateOrderStatus(ctx context.Context, userID, orderID string, status models.OrderStatus) (*models.Order, error)
}

type orderService struct {
	orderRepo *repository.OrderRepository
	cartRepo  *repository.CartRepository
	catalog   *repository.CatalogRepository
	pricing   pricing.Config

	// one lock per user so the read-validate-commit-clear sequence cannot
	// interleave with a concurrent checkout for the same user
	checkoutLocks sync.Map
}

func NewOrderService(orderRepo *repository.OrderRepository, cartRepo *repository.CartRepository, catalog *repository.CatalogRepository, pricingCfg pricing.Config) OrderService {
	return &orderService{
		orderRepo: orderRepo,
		cartRepo:  cartRepo,
		catalog:   catalog,
		pricing:   pricingCfg,
	}
}

func (s *orderService) userLock(userID string) *sync.Mutex {

	lock, _ := s.checkoutLocks.LoadOrStore(userID, &sync.Mutex{})

	return lock.(*sync.Mutex)
}

// Checkout converts the user's cart into a committed order. Concurrent
// checkouts for one user serialize on a per-user lock; the loser observes
// the emptied cart and fails with EMPTY_CART. The order is appended before
// the cart is cleared, so a crash in between leaves an order with a stale
// cart rather than a lost order.
func (s *orderService) Checkout(ctx context.Context, userID string, address models.ShippingAddress, paymentMethod string) (*models.Order, error) {

	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	cart, _ := s.cartRepo.GetCart(userID)
	if len(cart.Items) == 0 {
		return nil, errors.EmptyCartError()
	}

	lineItems := make([]models.OrderLineItem, 0, len(cart.Items))

	for _, item := range cart.Items {
		product := s.catalog.GetProductByID(item.ProductID)
		if product == nil {
			return nil, errors.ProductNotFoundError(item.ProductID)
		}

		if product.Stock < item.Quantity {
			return nil, errors.InsufficientStockError(product.Name, product.Stock)
		}

		lineItems = append(lineItems, models.OrderLineItem{
			ProductID: item.ProductID,
			Name:      product.Name,
			Price:     product.Price,
			Quantity:  item.Quantity,
		})
	}

	totals := pricing.Compute(s.pricing, pricingLines(lineItems))

	order := &models.Order{
		ID:              uuid.NewString(),
		UserID:          userID,
		Items:           lineItems,
		Subtotal:        totals.Subtotal,
		Shipping:        totals.Shipping,
		Tax:             totals.Tax,
		Total:           totals.Total,
		ShippingAddress: address,
		PaymentMethod:   paymentMethod,
		Status:          models.OrderStatusPending,
		CreatedAt:       time.Now().UTC(),
	}

	s.orderRepo.CreateOrder(order)
	s.cartRepo.Clear(userID)

	return order, nil
}

// CheckoutSummary previews totals for the current cart without committing
// anything. Unresolvable cart lines are skipped rather than rejected.
func (s *orderService) CheckoutSummary(ctx context.Context, userID string) (*models.SummaryResponse, error) {

	cart, _ := s.cartRepo.GetCart(userID)
	if len(cart.Items) == 0 {
		return nil, errors.EmptyCartError()
	}

	items := make([]models.SummaryLineItem, 0, len(cart.Items))
	lines := make([]pricing.LineItem, 0, len(cart.Items))

	for _, item := range cart.Items {
		product := s.catalog.GetProductByID(item.ProductID)
		if product == nil {
			continue
		}

		items = append(items, models.SummaryLineItem{
			ProductID: item.ProductID,
			Name:      product.Name,
			Price:     product.Price,
			Quantity:  item.Quantity,
			LineTotal: product.Price * float64(item.Quantity),
			InStock:   product.Stock >= item.Quantity,
		})
		lines = append(lines, pricing.LineItem{Price: product.Price, Quantity: item.Quantity})
	}

	totals := pricing.Compute(s.pricing, lines)

	return &models.SummaryResponse{
		Items:                 items,
		Subtotal:              totals.Subtotal,
		Shipping:              totals.Shipping,
		Tax:                   totals.Tax,
		Total:                 totals.Total,
		FreeShippingThreshold: s.pricing.FreeShippingThreshold.InexactFloat64(),
		PaymentMethods:        PaymentMethods,
	}, nil
}

func (s *orderService) ListOrders(ctx context.Context, userID string) ([]models.Order, error) {
	return s.orderRepo.ListOrdersByUser(userID), nil
}

func (s *orderService) GetOrder(ctx context.Context, userID, orderID string) (*models.Order, error) {

	order, ok := s.orderRepo.GetOrderByID(orderID, userID)
	if !ok {
		return nil, errors.NotFoundError("Order not found")
	}

	return &order, nil
}

func (s *orderService) UpdateOrderStatus(ctx context.Context, userID, orderID string, status models.OrderStatus) (*models.Order, error) {

	if !models.ValidOrderStatus(status) {
		return nil, errors.ValidationError("Invalid status")
	}

	if !s.orderRepo.UpdateOrderStatus(orderID, userID, status) {
		return nil, errors.NotFoundError("Order not found")
	}

	order, _ := s.orderRepo.GetOrderByID(orderID, userID)

	return &order, nil
}

func pricingLines(items []models.OrderLineItem) []pricing.LineItem {

	lines := make([]pricing.LineItem, len(items))

	for i, item := range items {
		lines[i] = pricing.LineItem{Price: item.Price, Quantity: item.Quantity}
	}

	return lines
}
