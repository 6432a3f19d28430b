package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"stitchkart/internal/auth"
	"stitchkart/internal/config"
	"stitchkart/internal/database"
	"stitchkart/internal/handler"
	"stitchkart/internal/payment"
	"stitchkart/internal/repository"
	"stitchkart/internal/router"
	"stitchkart/internal/service"

	"github.com/joho/godotenv"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load .env if present; real environments set variables directly
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting stitchkart API server")

	// Create context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize database connection pool
	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer pool.Close()

	// Initialize repositories
	productRepo := repository.NewProductRepository(pool, logger)
	cartRepo := repository.NewCartRepository(pool, logger)
	orderRepo := repository.NewOrderRepository(pool, logger)
	settingRepo := repository.NewSettingRepository(pool, logger)

	// Initialize payment provider
	provider := payment.NewStripeProvider(
		cfg.Stripe.SecretKey,
		time.Duration(cfg.Stripe.TimeoutSeconds)*time.Second,
		logger,
	)
	sessionOpts := payment.SessionOptions{
		Currency:   cfg.Stripe.Currency,
		SuccessURL: cfg.Stripe.FrontendURL + "/payment/success",
		CancelURL:  cfg.Stripe.FrontendURL + "/payment/failed",
	}

	// Initialize services
	catalogService := service.NewCatalogService(productRepo, logger)
	cartService := service.NewCartService(cartRepo, productRepo, logger)
	orderService := service.NewOrderService(orderRepo, productRepo, logger)
	settingService := service.NewSettingService(settingRepo, logger)
	checkoutService := service.NewCheckoutService(orderRepo, cartRepo, settingRepo, provider, sessionOpts, logger)

	// Initialize HTTP handlers
	productHandler := handler.NewProductHandler(catalogService, logger)
	cartHandler := handler.NewCartHandler(cartService, logger)
	checkoutHandler := handler.NewCheckoutHandler(checkoutService, logger)
	orderHandler := handler.NewOrderHandler(orderService, logger)
	settingHandler := handler.NewSettingHandler(settingService, logger)

	// Initialize router
	verifier := auth.NewVerifier(cfg.Auth.JWTSecret)
	mux := router.New(productHandler, cartHandler, checkoutHandler, orderHandler, settingHandler, verifier, logger)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start HTTP server in a goroutine
	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		// Create a context with timeout for shutdown
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		// Attempt graceful shutdown
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			// Force close
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}
