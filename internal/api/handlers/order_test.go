package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shophub/storefront/internal/api/handlers"
	apperrors "github.com/shophub/storefront/internal/errors"
	"github.com/shophub/storefront/internal/models"
	"github.com/shophub/storefront/internal/services/mocks"
	"github.com/shophub/storefront/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func validShippingAddress() models.ShippingAddress {
	return models.ShippingAddress{
		FullName: "Demo User",
		Email:    "demo@shophub.com",
		Address:  "1 Main St",
		City:     "Springfield",
		ZipCode:  "12345",
		Country:  "US",
	}
}

func TestCreateOrder(t *testing.T) {
	t.Run("Success - order committed", func(t *testing.T) {
		mockService := new(mocks.OrderService)
		handler := handlers.NewOrderHandler(mockService)

		address := validShippingAddress()
		order := &models.Order{
			ID:       "order-1",
			UserID:   "user-1",
			Subtotal: 129.99,
			Shipping: 0,
			Tax:      10.40,
			Total:    140.39,
			Status:   models.OrderStatusPending,
		}
		mockService.On("Checkout", mock.Anything, "user-1", address, "").Return(order, nil)

		body, _ := json.Marshal(models.CreateOrderRequest{ShippingAddress: address})
		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/api/orders/user-1",
			bytes.NewReader(body), "user-1", map[string]string{"userId": "user-1"})
		rec := httptest.NewRecorder()

		handler.CreateOrder().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)

		resp := decodeResponse(t, rec)
		assert.True(t, resp.Success)

		data := resp.Data.(map[string]any)
		assert.Equal(t, "Order created successfully", data["message"])

		mockService.AssertExpectations(t)
	})

	t.Run("Failure - incomplete shipping address", func(t *testing.T) {
		mockService := new(mocks.OrderService)
		handler := handlers.NewOrderHandler(mockService)

		body := []byte(`{"shippingAddress":{"fullName":"Demo User"}}`)
		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/api/orders/user-1",
			bytes.NewReader(body), "user-1", map[string]string{"userId": "user-1"})
		rec := httptest.NewRecorder()

		handler.CreateOrder().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		mockService.AssertNotCalled(t, "Checkout")
	})

	t.Run("Failure - empty cart", func(t *testing.T) {
		mockService := new(mocks.OrderService)
		handler := handlers.NewOrderHandler(mockService)

		address := validShippingAddress()
		mockService.On("Checkout", mock.Anything, "user-1", address, "").
			Return(nil, apperrors.EmptyCartError())

		body, _ := json.Marshal(models.CreateOrderRequest{ShippingAddress: address})
		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/api/orders/user-1",
			bytes.NewReader(body), "user-1", map[string]string{"userId": "user-1"})
		rec := httptest.NewRecorder()

		handler.CreateOrder().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)

		resp := decodeResponse(t, rec)
		require.NotNil(t, resp.Error)
		assert.Equal(t, apperrors.ErrCodeEmptyCart, resp.Error.Code)

		mockService.AssertExpectations(t)
	})
}

func TestListOrders(t *testing.T) {
	t.Run("Success - returns orders in creation order", func(t *testing.T) {
		mockService := new(mocks.OrderService)
		handler := handlers.NewOrderHandler(mockService)

		orders := []models.Order{
			{ID: "order-1", UserID: "user-1"},
			{ID: "order-2", UserID: "user-1"},
		}
		mockService.On("ListOrders", mock.Anything, "user-1").Return(orders, nil)

		req := testutils.CreateTestRequestWithContext(http.MethodGet, "/api/orders/user-1",
			nil, "user-1", map[string]string{"userId": "user-1"})
		rec := httptest.NewRecorder()

		handler.ListOrders().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		resp := decodeResponse(t, rec)
		data := resp.Data.(map[string]any)
		assert.Len(t, data["orders"], 2)

		mockService.AssertExpectations(t)
	})
}

func TestGetOrder(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := new(mocks.OrderService)
		handler := handlers.NewOrderHandler(mockService)

		order := &models.Order{ID: "order-1", UserID: "user-1", Total: 140.39}
		mockService.On("GetOrder", mock.Anything, "user-1", "order-1").Return(order, nil)

		req := testutils.CreateTestRequestWithContext(http.MethodGet, "/api/orders/user-1/order-1",
			nil, "user-1", map[string]string{"userId": "user-1", "orderId": "order-1"})
		rec := httptest.NewRecorder()

		handler.GetOrder().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("Failure - not found", func(t *testing.T) {
		mockService := new(mocks.OrderService)
		handler := handlers.NewOrderHandler(mockService)

		mockService.On("GetOrder", mock.Anything, "user-1", "nope").
			Return(nil, apperrors.NotFoundError("Order not found"))

		req := testutils.CreateTestRequestWithContext(http.MethodGet, "/api/orders/user-1/nope",
			nil, "user-1", map[string]string{"userId": "user-1", "orderId": "nope"})
		rec := httptest.NewRecorder()

		handler.GetOrder().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		mockService.AssertExpectations(t)
	})
}

func TestUpdateOrderStatus(t *testing.T) {
	t.Run("Success - status updated", func(t *testing.T) {
		mockService := new(mocks.OrderService)
		handler := handlers.NewOrderHandler(mockService)

		order := &models.Order{ID: "order-1", UserID: "user-1", Status: models.OrderStatusShipped}
		mockService.On("UpdateOrderStatus", mock.Anything, "user-1", "order-1", models.OrderStatusShipped).
			Return(order, nil)

		body, _ := json.Marshal(models.UpdateOrderStatusRequest{Status: models.OrderStatusShipped})
		req := testutils.CreateTestRequestWithContext(http.MethodPatch, "/api/orders/user-1/order-1/status",
			bytes.NewReader(body), "user-1", map[string]string{"userId": "user-1", "orderId": "order-1"})
		rec := httptest.NewRecorder()

		handler.UpdateOrderStatus().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		resp := decodeResponse(t, rec)
		data := resp.Data.(map[string]any)
		assert.Equal(t, "Order status updated", data["message"])

		mockService.AssertExpectations(t)
	})

	t.Run("Failure - invalid status value", func(t *testing.T) {
		mockService := new(mocks.OrderService)
		handler := handlers.NewOrderHandler(mockService)

		mockService.On("UpdateOrderStatus", mock.Anything, "user-1", "order-1", models.OrderStatus("cancelled")).
			Return(nil, apperrors.ValidationError("Invalid status"))

		body := []byte(`{"status":"cancelled"}`)
		req := testutils.CreateTestRequestWithContext(http.MethodPatch, "/api/orders/user-1/order-1/status",
			bytes.NewReader(body), "user-1", map[string]string{"userId": "user-1", "orderId": "order-1"})
		rec := httptest.NewRecorder()

		handler.UpdateOrderStatus().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		mockService.AssertExpectations(t)
	})
}
