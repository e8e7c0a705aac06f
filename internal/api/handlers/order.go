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

type OrderHandler struct {
	orderService service.OrderService
	validator    *validator.Validate
}

func NewOrderHandler(orderService service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService, validator: validator.New()}
}

// CreateOrder godoc
//	@Summary		Create a new order from the current cart
//	@Description	Validates the shipping address, prices the cart and commits an order. The cart is cleared afterwards.
//	@Tags			Orders
//	@Accept			json
//	@Produce		json
//	@Param			userId	path		string						true	"User ID"
//	@Param			order	body		models.CreateOrderRequest	true	"Shipping details"
//	@Success		201		{object}	models.Order				"Successfully created order"
//	@Failure		400		{object}	response.ErrorResponse		"Validation error, empty cart, or insufficient stock"
//	@Failure		403		{object}	response.ErrorResponse		"Token does not own this cart"
//	@Security		BearerAuth
//	@Router			/orders/{userId} [post]
func (h *OrderHandler) CreateOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		userID := r.PathValue("userId")

		var req models.CreateOrderRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		order, err := h.orderService.Checkout(r.Context(), userID, req.ShippingAddress, "")
		if err != nil {
			logger.Error("Failed to create order", slog.Any("error", err))
			response.Error(w, err)

			return
		}

		logger.Info("Order created successfully",
			slog.String("orderId", order.ID),
			slog.Float64("total", order.Total))
		response.Success(w, http.StatusCreated, map[string]any{
			"message": "Order created successfully",
			"order":   order,
		})
	}
}

// ListOrders godoc
//	@Summary		List the user's orders
//	@Tags			Orders
//	@Produce		json
//	@Param			userId	path		string	true	"User ID"
//	@Success		200		{object}	response.APIResponse
//	@Security		BearerAuth
//	@Router			/orders/{userId} [get]
func (h *OrderHandler) ListOrders() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		userID := r.PathValue("userId")

		orders, err := h.orderService.ListOrders(r.Context(), userID)
		if err != nil {
			logger.Error("Failed to list orders", slog.Any("error", err))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, map[string]any{"orders": orders})
	}
}

// GetOrder godoc
//	@Summary		Get one of the user's orders by id
//	@Tags			Orders
//	@Produce		json
//	@Param			userId	path		string	true	"User ID"
//	@Param			orderId	path		string	true	"Order ID (UUID)"
//	@Success		200		{object}	models.Order
//	@Failure		404		{object}	response.ErrorResponse	"Order not found or owned by another user"
//	@Security		BearerAuth
//	@Router			/orders/{userId}/{orderId} [get]
func (h *OrderHandler) GetOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		userID := r.PathValue("userId")
		orderID := r.PathValue("orderId")

		order, err := h.orderService.GetOrder(r.Context(), userID, orderID)
		if err != nil {
			logger.Warn("Order lookup failed", slog.String("orderId", orderID), slog.Any("error", err))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, map[string]any{"order": order})
	}
}

// UpdateOrderStatus godoc
//	@Summary		Update an order's status
//	@Tags			Orders
//	@Accept			json
//	@Produce		json
//	@Param			userId	path		string							true	"User ID"
//	@Param			orderId	path		string							true	"Order ID (UUID)"
//	@Param			status	body		models.UpdateOrderStatusRequest	true	"New status"
//	@Success		200		{object}	models.Order
//	@Failure		400		{object}	response.ErrorResponse	"Invalid status value"
//	@Failure		404		{object}	response.ErrorResponse	"Order not found"
//	@Security		BearerAuth
//	@Router			/orders/{userId}/{orderId}/status [patch]
func (h *OrderHandler) UpdateOrderStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		userID := r.PathValue("userId")
		orderID := r.PathValue("orderId")

		var req models.UpdateOrderStatusRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		order, err := h.orderService.UpdateOrderStatus(r.Context(), userID, orderID, req.Status)
		if err != nil {
			logger.Warn("Failed to update order status",
				slog.String("orderId", orderID),
				slog.String("status", string(req.Status)),
				slog.Any("error", err))
			response.Error(w, err)

			return
		}

		logger.Info("Order status updated",
			slog.String("orderId", orderID),
			slog.String("status", string(req.Status)))
		response.Success(w, http.StatusOK, map[string]any{
			"message": "Order status updated",
			"order":   order,
		})
	}
}
