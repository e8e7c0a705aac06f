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

type CheckoutHandler struct {
	orderService service.OrderService
	validator    *validator.Validate
}

func NewCheckoutHandler(orderService service.OrderService) *CheckoutHandler {
	return &CheckoutHandler{orderService: orderService, validator: validator.New()}
}

// Checkout godoc
//	@Summary		Process the cart and create an order
//	@Description	Like order creation, but additionally requires a payment method and returns a totals summary.
//	@Tags			Checkout
//	@Accept			json
//	@Produce		json
//	@Param			userId		path		string					true	"User ID"
//	@Param			checkout	body		models.CheckoutRequest	true	"Shipping details and payment method"
//	@Success		201			{object}	models.CheckoutResponse
//	@Failure		400			{object}	response.ErrorResponse	"Validation error, empty cart, or insufficient stock"
//	@Security		BearerAuth
//	@Router			/checkout/{userId} [post]
func (h *CheckoutHandler) Checkout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		userID := r.PathValue("userId")

		var req models.CheckoutRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		order, err := h.orderService.Checkout(r.Context(), userID, req.ShippingAddress, req.PaymentMethod)
		if err != nil {
			logger.Error("Checkout failed", slog.Any("error", err))
			response.Error(w, err)

			return
		}

		logger.Info("Checkout completed",
			slog.String("orderId", order.ID),
			slog.Float64("total", order.Total))
		response.Success(w, http.StatusCreated, models.CheckoutResponse{
			Message: "Checkout successful",
			Order:   order,
			Summary: models.CheckoutSummary{
				ItemCount: len(order.Items),
				Subtotal:  order.Subtotal,
				Shipping:  order.Shipping,
				Tax:       order.Tax,
				Total:     order.Total,
			},
		})
	}
}

// Summary godoc
//	@Summary		Preview checkout totals for the current cart
//	@Tags			Checkout
//	@Produce		json
//	@Param			userId	path		string	true	"User ID"
//	@Success		200		{object}	models.SummaryResponse
//	@Failure		400		{object}	response.ErrorResponse	"Cart is empty"
//	@Security		BearerAuth
//	@Router			/checkout/{userId}/summary [get]
func (h *CheckoutHandler) Summary() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		userID := r.PathValue("userId")

		summary, err := h.orderService.CheckoutSummary(r.Context(), userID)
		if err != nil {
			logger.Warn("Checkout summary unavailable", slog.Any("error", err))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, summary)
	}
}
