package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/shophub/storefront/internal/api/middleware"
	"github.com/shophub/storefront/internal/models"
	service "github.com/shophub/storefront/internal/services"
	"github.com/shophub/storefront/internal/utils/response"
)

type ProductHandler struct {
	productService service.ProductService
}

func NewProductHandler(productService service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// ListProducts handles GET /api/products?category&search&minPrice&maxPrice.
func (h *ProductHandler) ListProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		query := r.URL.Query()

		filter := models.ProductFilter{
			Category: query.Get("category"),
			Search:   query.Get("search"),
		}

		if raw := query.Get("minPrice"); raw != "" {
			if v, err := strconv.ParseFloat(raw, 64); err == nil {
				filter.MinPrice = &v
			}
		}

		if raw := query.Get("maxPrice"); raw != "" {
			if v, err := strconv.ParseFloat(raw, 64); err == nil {
				filter.MaxPrice = &v
			}
		}

		products, err := h.productService.ListProducts(r.Context(), filter)
		if err != nil {
			logger.Error("Failed to list products", slog.Any("error", err))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, map[string]any{"products": products})
	}
}

func (h *ProductHandler) GetProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id := r.PathValue("id")

		product, err := h.productService.GetProductByID(r.Context(), id)
		if err != nil {
			logger.Warn("Product lookup failed", slog.String("productId", id))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, map[string]any{"product": product})
	}
}

func (h *ProductHandler) ListCategories() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		categories, err := h.productService.ListCategories(r.Context())
		if err != nil {
			logger.Error("Failed to list categories", slog.Any("error", err))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, map[string]any{"categories": categories})
	}
}
