package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-redis/redis/v8"

	"celerey/internal/config"
	"celerey/internal/database"
	"celerey/internal/handlers"
	"celerey/internal/logger"
	"celerey/internal/onboarding"
	"celerey/internal/server"
	"celerey/internal/services"
	"celerey/internal/storage"
	"celerey/internal/validator"
)

// @title           Celerey Onboarding API
// @version         1.0
// @description     Celerey keeps the state of the advisory onboarding wizard: personal info, financial snapshot, goals & risk and the booking handoff.
// @termsOfService  http://swagger.io/terms/

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the session token.

// @securityDefinitions.apikey AdminKey
// @in header
// @name X-API-Key

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()
	ctx := context.Background()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// The activity journal always lives in the SQL database
	dbManager, err := database.NewManager(database.NewConfig(appConfig))
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}
	defer func() {
		if err := dbManager.Close(); err != nil {
			log.Warnw("closing database failed", "error", err)
		}
	}()

	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	backends := storage.Backends{DB: dbManager.DB()}
	probes := []server.HealthProbe{server.DatabaseHealth{DB: dbManager.DB()}}

	if appConfig.StorageBackend == config.StorageRedis {
		var rdb *redis.Client
		rdb, err = database.InitRedis(ctx, appConfig)
		if err != nil {
			return fmt.Errorf("failed to connect to redis: %w", err)
		}
		defer func() { _ = rdb.Close() }()
		backends.Redis = rdb
		probes = append(probes, server.RedisHealth{Client: rdb})
	}

	slots, err := storage.NewFactory(appConfig, backends)
	if err != nil {
		return fmt.Errorf("failed to create storage: %w", err)
	}
	log.Infow("onboarding storage ready", "backend", appConfig.StorageBackend)

	// Initialize services
	registry := onboarding.NewRegistry(slots,
		onboarding.WithLogger(log),
		onboarding.WithPersistTimeout(appConfig.PersistTimeout),
	)
	activityService := services.NewActivityService(dbManager.DB())
	registry.OnOpen(activityService.Attach)

	sweepCtx, stopSweep := context.WithCancel(ctx)
	defer stopSweep()
	go registry.Run(sweepCtx, appConfig.StoreIdleTTL)

	onboardingService := services.NewOnboardingService(registry, services.Scheduling{
		URL:   appConfig.SchedulingURL,
		Label: appConfig.SchedulingLabel,
		Color: appConfig.SchedulingColor,
	})

	// Register custom validators on Gin's binding engine
	validator.Register()

	router := server.NewRouter(server.Dependencies{
		Sessions:       handlers.NewSessionHandler(onboardingService),
		Onboarding:     handlers.NewOnboardingHandler(onboardingService),
		Activity:       handlers.NewActivityHandler(activityService),
		Health:         probes,
		AdminAPIKey:    appConfig.AdminAPIKey,
		AllowedOrigins: appConfig.AllowedOrigins,
	})
	srv := server.New(appConfig.Port, router)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Infow("received shutdown signal", "signal", sig.String())
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("server stopped unexpectedly: %w", err)
		}
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), appConfig.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}
