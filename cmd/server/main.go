package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ikkim/winecraft-backend/config"
	"github.com/ikkim/winecraft-backend/internal/app/controller"
	"github.com/ikkim/winecraft-backend/internal/app/repository"
	"github.com/ikkim/winecraft-backend/internal/app/service"
	"github.com/ikkim/winecraft-backend/internal/messaging"
	"github.com/ikkim/winecraft-backend/internal/messaging/kafka"
	"github.com/ikkim/winecraft-backend/internal/middleware"
	"github.com/ikkim/winecraft-backend/internal/router"
	"github.com/ikkim/winecraft-backend/internal/scheduler"
	"github.com/ikkim/winecraft-backend/internal/storage"
	"github.com/ikkim/winecraft-backend/pkg/logger"
	"github.com/ikkim/winecraft-backend/pkg/payment/gcash"
	"github.com/ikkim/winecraft-backend/pkg/redis"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}

	// Initialize logger
	logLevel := "info"
	if cfg.Server.Environment == "development" {
		logLevel = "debug"
	}
	logger.Initialize(logger.Config{
		Level:       logLevel,
		Format:      cfg.Server.LogFormat,
		EnableColor: cfg.Server.LogFormat == "console",
	})

	logger.Info("Starting Winecraft Backend Server", map[string]interface{}{
		"environment": cfg.Server.Environment,
		"port":        cfg.Server.Port,
		"log_level":   logLevel,
	})

	// Catalog
	catalogOpts := repository.CatalogOptions{Symmetric: cfg.Catalog.SymmetricIncompatibility}
	if cfg.Catalog.WinesFile != "" {
		wines, err := repository.LoadWinesFile(cfg.Catalog.WinesFile)
		if err != nil {
			logger.Fatal("Failed to load wines file", err, map[string]interface{}{
				"path": cfg.Catalog.WinesFile,
			})
		}
		catalogOpts.Wines = wines
	}
	catalogRepo, err := repository.NewCatalogRepository(catalogOpts)
	if err != nil {
		logger.Fatal("Failed to build catalog", err)
	}

	// Checkout snapshots
	var (
		handoffRepo      repository.SnapshotRepository
		confirmationRepo repository.SnapshotRepository
		purgers          []scheduler.Purger
	)
	switch cfg.Handoff.Store {
	case "redis":
		if err := redis.Init(&cfg.Redis); err != nil {
			logger.Fatal("Failed to initialize Redis", err)
		}
		defer func() {
			if err := redis.Close(); err != nil {
				logger.Error("Failed to close Redis connection", err)
			}
		}()
		handoffRepo = repository.NewRedisSnapshotRepository(redis.GetClient(), "handoff")
		confirmationRepo = repository.NewRedisSnapshotRepository(redis.GetClient(), "confirmation")
	default:
		handoffs := repository.NewMemorySnapshotRepository()
		confirmations := repository.NewMemorySnapshotRepository()
		handoffRepo, confirmationRepo = handoffs, confirmations
		purgers = append(purgers, handoffs, confirmations)
	}

	// Order events
	var publisher messaging.Publisher = messaging.NewNopPublisher()
	if cfg.Kafka.Enabled() {
		publisher = kafka.NewKafkaPublisher(cfg.Kafka.Brokers)
		logger.Info("Publishing order events to Kafka", map[string]interface{}{
			"brokers": cfg.Kafka.Brokers,
			"topic":   cfg.Kafka.OrderTopic,
		})
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			logger.Error("Failed to close event publisher", err)
		}
	}()

	// Asset URLs
	var assets storage.AssetResolver = storage.NewStaticResolver(cfg.Assets.BaseURL)
	if cfg.Assets.S3.Bucket != "" {
		assets = storage.NewS3Storage(
			cfg.Assets.S3.Region,
			cfg.Assets.S3.Bucket,
			cfg.Assets.S3.AccessKeyID,
			cfg.Assets.S3.SecretAccessKey,
			"catalog",
			cfg.Assets.PresignExpiry,
		)
	}

	gcashClient, err := gcash.NewClient(gcash.Config{
		AccountName:   cfg.Checkout.GCashAccountName,
		AccountNumber: cfg.Checkout.GCashAccountNumber,
	})
	if err != nil {
		logger.Fatal("Failed to initialize GCash instructions", err)
	}

	// Initialize services
	checker := service.NewCompatibilityChecker(catalogRepo)
	pricing := service.NewPricingEngine(catalogRepo)
	sessionService := service.NewSessionService(catalogRepo, checker, cfg.Session.IdleTimeout)
	catalogService := service.NewCatalogService(catalogRepo, assets)
	checkoutService := service.NewCheckoutService(handoffRepo, confirmationRepo, gcashClient, publisher, service.CheckoutConfig{
		HandoffTTL:          cfg.Handoff.TTL,
		ConfirmationTTL:     cfg.Handoff.ConfirmationTTL,
		StandardDeliveryFee: cfg.Checkout.StandardDeliveryFee,
		ExpressDeliveryFee:  cfg.Checkout.ExpressDeliveryFee,
		MealCost:            cfg.Checkout.MealCost,
		OrderTopic:          cfg.Kafka.OrderTopic,
		PublishTimeout:      cfg.Kafka.PublishTimeout,
		PublicBaseURL:       cfg.Checkout.PublicBaseURL,
	})
	cartService := service.NewCartService(catalogService, checkoutService)
	favoritesService := service.NewFavoritesService(catalogService)
	configuratorService := service.NewConfiguratorService(catalogRepo, pricing, checkoutService)

	// Initialize scheduler
	sweeper := scheduler.NewSessionSweeper(cfg.Session.SweepSchedule, sessionService, purgers...)
	if err := sweeper.Start(); err != nil {
		logger.Fatal("Failed to start session sweeper", err)
	}
	defer sweeper.Stop()

	// Setup router
	r := router.NewRouter(
		controller.NewSessionController(sessionService),
		controller.NewCatalogController(catalogService),
		controller.NewConfiguratorController(configuratorService),
		controller.NewCartController(cartService),
		controller.NewFavoritesController(favoritesService),
		controller.NewCheckoutController(checkoutService),
		middleware.NewSessionMiddleware(sessionService),
		cfg,
	)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:           r.Setup(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("Server started successfully", map[string]interface{}{
			"address": srv.Addr,
			"pid":     os.Getpid(),
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server gracefully...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", err)
	}
	logger.Info("Server stopped successfully")
}
