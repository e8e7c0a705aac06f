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

type UserHandler struct {
	userService service.UserService
	validator   *validator.Validate
}

func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService, validator: validator.New()}
}

func (h *UserHandler) Register() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.RegisterRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		resp, err := h.userService.Register(r.Context(), &req)
		if err != nil {
			logger.Warn("User registration failed", slog.String("email", req.Email), slog.Any("error", err))
			response.Error(w, err)

			return
		}

		logger.Info("User registered", slog.String("userId", resp.UserID))
		response.Success(w, http.StatusCreated, resp)
	}
}

func (h *UserHandler) Login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.LoginRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		resp, err := h.userService.Login(r.Context(), &req)
		if err != nil {
			logger.Warn("Login failed", slog.String("email", req.Email))
			response.Error(w, err)

			return
		}

		logger.Info("User logged in", slog.String("userId", resp.UserID))
		response.Success(w, http.StatusOK, resp)
	}
}

// Logout is stateless: tokens simply expire. The endpoint exists so clients
// have a hook to clear local state against.
func (h *UserHandler) Logout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		middleware.LoggerFromContext(r.Context()).Info("User logged out")
		response.Success(w, http.StatusOK, map[string]any{"message": "Logout successful"})
	}
}
