package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shophub/storefront/internal/api/handlers"
	"github.com/shophub/storefront/internal/api/middleware"
	"github.com/shophub/storefront/internal/config"
	"github.com/shophub/storefront/internal/health"
	"github.com/shophub/storefront/internal/metrics"
	"github.com/shophub/storefront/internal/pricing"
	repository "github.com/shophub/storefront/internal/repositories"
	service "github.com/shophub/storefront/internal/services"
)

func main() {

	// Logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load config
	cfg := config.MustLoad()

	// Stores are constructed here and injected downward; nothing holds
	// package-level mutable state.
	catalogRepo := repository.NewCatalogRepository()
	cartRepo := repository.NewCartRepository()
	orderRepo := repository.NewOrderRepository()

	userRepo, err := repository.NewUserRepository(cfg.UsersFile)
	if err != nil {
		slog.Error("Failed to open users store", slog.String("error", err.Error()))
		os.Exit(1)
	}

	pricingCfg := pricing.NewConfig(cfg.Pricing.FreeShippingThreshold, cfg.Pricing.ShippingFee, cfg.Pricing.TaxRate)

	jwtKey := []byte(cfg.Security.JWTKey)
	userService := service.NewUserService(userRepo, jwtKey)
	userHandler := handlers.NewUserHandler(userService)
	productService := service.NewProductService(catalogRepo)
	productHandler := handlers.NewProductHandler(productService)
	cartService := service.NewCartService(cartRepo, catalogRepo)
	cartHandler := handlers.NewCartHandler(cartService)
	orderService := service.NewOrderService(orderRepo, cartRepo, catalogRepo, pricingCfg)
	orderHandler := handlers.NewOrderHandler(orderService)
	checkoutHandler := handlers.NewCheckoutHandler(orderService)
	authMiddleware := middleware.NewAuthMiddleware(jwtKey)

	healthHandler, err := health.NewHealthHandler(cfg)
	if err != nil {
		slog.Error("Failed to initialize health checks", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.Info("Stores initialized", slog.String("env", cfg.Env), slog.String("users_file", cfg.UsersFile))

	// Setup router
	routerMux := http.NewServeMux()
	routerMux.HandleFunc("POST /api/auth/register", userHandler.Register())
	routerMux.HandleFunc("POST /api/auth/login", userHandler.Login())
	routerMux.HandleFunc("POST /api/auth/logout", userHandler.Logout())
	routerMux.HandleFunc("GET /api/products", productHandler.ListProducts())
	routerMux.HandleFunc("GET /api/products/categories/list", productHandler.ListCategories())
	routerMux.HandleFunc("GET /api/products/{id}", productHandler.GetProduct())
	routerMux.HandleFunc("GET /api/cart/{userId}", authMiddleware.Authenticate(cartHandler.GetCart()))
	routerMux.HandleFunc("POST /api/cart/{userId}/items", authMiddleware.Authenticate(cartHandler.AddItem()))
	routerMux.HandleFunc("PUT /api/cart/{userId}/items/{productId}", authMiddleware.Authenticate(cartHandler.UpdateQuantity()))
	routerMux.HandleFunc("DELETE /api/cart/{userId}/items/{productId}", authMiddleware.Authenticate(cartHandler.RemoveItem()))
	routerMux.HandleFunc("DELETE /api/cart/{userId}", authMiddleware.Authenticate(cartHandler.ClearCart()))
	routerMux.HandleFunc("POST /api/orders/{userId}", authMiddleware.Authenticate(orderHandler.CreateOrder()))
	routerMux.HandleFunc("GET /api/orders/{userId}", authMiddleware.Authenticate(orderHandler.ListOrders()))
	routerMux.HandleFunc("GET /api/orders/{userId}/{orderId}", authMiddleware.Authenticate(orderHandler.GetOrder()))
	routerMux.HandleFunc("PATCH /api/orders/{userId}/{orderId}/status", authMiddleware.Authenticate(orderHandler.UpdateOrderStatus()))
	routerMux.HandleFunc("POST /api/checkout/{userId}", authMiddleware.Authenticate(checkoutHandler.Checkout()))
	routerMux.HandleFunc("GET /api/checkout/{userId}/summary", authMiddleware.Authenticate(checkoutHandler.Summary()))
	routerMux.Handle("GET /api/health", healthHandler.Handler())
	routerMux.Handle("GET /metrics", metrics.Handler())

	// Middleware chaining
	var handler http.Handler = routerMux
	handler = metrics.Middleware(handler)
	handler = middleware.Logging(handler)

	server := http.Server{
		Addr:    cfg.Addr,
		Handler: handler,
	}

	slog.Info("🚀 Server is starting...", slog.String("address", cfg.Addr))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			slog.Error("❌ Failed to start server", slog.Any("error", err.Error()))
		}
	}()

	<-done

	slog.Warn("🛑 Shutdown signal received. Preparing to stop the server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("⚠️ Server shutdown encountered an issue", slog.String("error", err.Error()))
	} else {
		slog.Info("✅ Server shut down gracefully. All connections closed.")
	}
}
