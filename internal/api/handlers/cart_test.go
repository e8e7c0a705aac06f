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
	"github.com/shophub/storefront/internal/utils/response"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) response.APIResponse {
	t.Helper()

	var resp response.APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	return resp
}

func TestGetCart(t *testing.T) {
	t.Run("Success - returns the enriched cart", func(t *testing.T) {
		mockService := new(mocks.CartService)
		handler := handlers.NewCartHandler(mockService)

		cart := &models.CartResponse{Items: []models.EnrichedCartItem{
			{Product: &models.Product{ID: "1", Name: "Wireless Headphones", Price: 129.99}, Quantity: 2},
		}}
		mockService.On("GetCart", mock.Anything, "user-1").Return(cart, nil)

		req := testutils.CreateTestRequestWithContext(http.MethodGet, "/api/cart/user-1", nil, "user-1",
			map[string]string{"userId": "user-1"})
		rec := httptest.NewRecorder()

		handler.GetCart().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		resp := decodeResponse(t, rec)
		assert.True(t, resp.Success)
		assert.Nil(t, resp.Error)

		mockService.AssertExpectations(t)
	})
}

func TestAddItem(t *testing.T) {
	t.Run("Success - item added", func(t *testing.T) {
		mockService := new(mocks.CartService)
		handler := handlers.NewCartHandler(mockService)

		addReq := &models.AddItemRequest{ProductID: "1", Quantity: 2}
		cart := &models.CartResponse{Items: []models.EnrichedCartItem{
			{Product: &models.Product{ID: "1", Name: "Wireless Headphones", Price: 129.99}, Quantity: 2},
		}}
		mockService.On("AddItem", mock.Anything, "user-1", addReq).Return(cart, nil)

		body, _ := json.Marshal(addReq)
		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/api/cart/user-1/items",
			bytes.NewReader(body), "user-1", map[string]string{"userId": "user-1"})
		rec := httptest.NewRecorder()

		handler.AddItem().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		resp := decodeResponse(t, rec)
		assert.True(t, resp.Success)

		data := resp.Data.(map[string]any)
		assert.Equal(t, "Item added to cart", data["message"])

		mockService.AssertExpectations(t)
	})

	t.Run("Failure - missing fields rejected before the service is called", func(t *testing.T) {
		mockService := new(mocks.CartService)
		handler := handlers.NewCartHandler(mockService)

		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/api/cart/user-1/items",
			bytes.NewReader([]byte(`{}`)), "user-1", map[string]string{"userId": "user-1"})
		rec := httptest.NewRecorder()

		handler.AddItem().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)

		resp := decodeResponse(t, rec)
		assert.False(t, resp.Success)
		require.NotNil(t, resp.Error)
		assert.Equal(t, apperrors.ErrCodeValidation, resp.Error.Code)

		mockService.AssertNotCalled(t, "AddItem")
	})

	t.Run("Failure - unknown product", func(t *testing.T) {
		mockService := new(mocks.CartService)
		handler := handlers.NewCartHandler(mockService)

		addReq := &models.AddItemRequest{ProductID: "999", Quantity: 1}
		mockService.On("AddItem", mock.Anything, "user-1", addReq).
			Return(nil, apperrors.NotFoundError("Product not found"))

		body, _ := json.Marshal(addReq)
		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/api/cart/user-1/items",
			bytes.NewReader(body), "user-1", map[string]string{"userId": "user-1"})
		rec := httptest.NewRecorder()

		handler.AddItem().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)

		resp := decodeResponse(t, rec)
		require.NotNil(t, resp.Error)
		assert.Equal(t, apperrors.ErrCodeNotFound, resp.Error.Code)

		mockService.AssertExpectations(t)
	})
}

func TestUpdateQuantity(t *testing.T) {
	t.Run("Success - quantity updated", func(t *testing.T) {
		mockService := new(mocks.CartService)
		handler := handlers.NewCartHandler(mockService)

		cart := &models.CartResponse{Items: []models.EnrichedCartItem{
			{Product: &models.Product{ID: "1"}, Quantity: 7},
		}}
		mockService.On("UpdateQuantity", mock.Anything, "user-1", "1", 7).Return(cart, nil)

		body, _ := json.Marshal(models.UpdateQuantityRequest{Quantity: 7})
		req := testutils.CreateTestRequestWithContext(http.MethodPut, "/api/cart/user-1/items/1",
			bytes.NewReader(body), "user-1", map[string]string{"userId": "user-1", "productId": "1"})
		rec := httptest.NewRecorder()

		handler.UpdateQuantity().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("Failure - item not in cart", func(t *testing.T) {
		mockService := new(mocks.CartService)
		handler := handlers.NewCartHandler(mockService)

		mockService.On("UpdateQuantity", mock.Anything, "user-1", "2", 3).
			Return(nil, apperrors.NotFoundError("Item not found in cart"))

		body, _ := json.Marshal(models.UpdateQuantityRequest{Quantity: 3})
		req := testutils.CreateTestRequestWithContext(http.MethodPut, "/api/cart/user-1/items/2",
			bytes.NewReader(body), "user-1", map[string]string{"userId": "user-1", "productId": "2"})
		rec := httptest.NewRecorder()

		handler.UpdateQuantity().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		mockService.AssertExpectations(t)
	})
}

func TestRemoveItem(t *testing.T) {
	t.Run("Success - item removed", func(t *testing.T) {
		mockService := new(mocks.CartService)
		handler := handlers.NewCartHandler(mockService)

		mockService.On("RemoveItem", mock.Anything, "user-1", "1").
			Return(&models.CartResponse{Items: []models.EnrichedCartItem{}}, nil)

		req := testutils.CreateTestRequestWithContext(http.MethodDelete, "/api/cart/user-1/items/1",
			nil, "user-1", map[string]string{"userId": "user-1", "productId": "1"})
		rec := httptest.NewRecorder()

		handler.RemoveItem().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		resp := decodeResponse(t, rec)
		data := resp.Data.(map[string]any)
		assert.Equal(t, "Item removed from cart", data["message"])

		mockService.AssertExpectations(t)
	})
}

func TestClearCart(t *testing.T) {
	t.Run("Success - cart cleared", func(t *testing.T) {
		mockService := new(mocks.CartService)
		handler := handlers.NewCartHandler(mockService)

		mockService.On("ClearCart", mock.Anything, "user-1").Return(nil)

		req := testutils.CreateTestRequestWithContext(http.MethodDelete, "/api/cart/user-1",
			nil, "user-1", map[string]string{"userId": "user-1"})
		rec := httptest.NewRecorder()

		handler.ClearCart().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		mockService.AssertExpectations(t)
	})
}
