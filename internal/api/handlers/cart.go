package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/shophub/storefront/internal/api/middleware"
	"github.com/shophub/storefront/internal/models"
	service "github.com/shophub/storefront/internal/services"
	"github.com/shophub/storefront/internal/utils"
	"github.com/shophub/storefront/internal/utils/response"
)

type CartHandler struct {
	cartService service.CartService
	validator   *validator.Validate
}

func NewCartHandler(cartService service.CartService) *CartHandler {
	return &CartHandler{cartService: cartService, validator: validator.New()}
}

func (h *CartHandler) GetCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		userID := r.PathValue("userId")

		cart, err := h.cartService.GetCart(r.Context(), userID)
		if err != nil {
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, cart)
	}
}

func (h *CartHandler) AddItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		userID := r.PathValue("userId")

		var req models.AddItemRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		cart, err := h.cartService.AddItem(r.Context(), userID, &req)
		if err != nil {
			logger.Warn("Failed to add item to cart",
				slog.String("productId", req.ProductID),
				slog.Any("error", err))
			response.Error(w, err)

			return
		}

		logger.Info("Item added to cart",
			slog.String("productId", req.ProductID),
			slog.Int("quantity", req.Quantity))
		response.Success(w, http.StatusOK, map[string]any{"message": "Item added to cart", "cart": cart})
	}
}

func (h *CartHandler) UpdateQuantity() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		userID := r.PathValue("userId")
		productID := r.PathValue("productId")

		var req models.UpdateQuantityRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		cart, err := h.cartService.UpdateQuantity(r.Context(), userID, productID, req.Quantity)
		if err != nil {
			logger.Warn("Failed to update quantity",
				slog.String("productId", productID),
				slog.Any("error", err))
			response.Error(w, err)

			return
		}

		logger.Info("Cart quantity updated",
			slog.String("productId", productID),
			slog.Int("quantity", req.Quantity))
		response.Success(w, http.StatusOK, map[string]any{"message": "Quantity updated", "cart": cart})
	}
}

func (h *CartHandler) RemoveItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		userID := r.PathValue("userId")
		productID := r.PathValue("productId")

		cart, err := h.cartService.RemoveItem(r.Context(), userID, productID)
		if err != nil {
			logger.Warn("Failed to remove item", slog.String("productId", productID), slog.Any("error", err))
			response.Error(w, err)

			return
		}

		logger.Info("Item removed from cart", slog.String("productId", productID))
		response.Success(w, http.StatusOK, map[string]any{"message": "Item removed from cart", "cart": cart})
	}
}

func (h *CartHandler) ClearCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		userID := r.PathValue("userId")

		if err := h.cartService.ClearCart(r.Context(), userID); err != nil {
			response.Error(w, err)

			return
		}

		logger.Info("Cart cleared")
		response.Success(w, http.StatusOK, map[string]any{"message": "Cart cleared"})
	}
}
