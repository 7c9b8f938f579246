package main

// @title NightSpots Catalog API
// @version 1.0.0
// @description Персональный каталог ночных и гастрономических заведений. Коллекция хранится как единственная JSON-запись (файл или ключ Redis), производный список строится конвейером поиск -> фильтры -> сортировка, включая сортировку по расстоянию от текущей позиции.

// @host localhost:8080
// @BasePath /
// @schemes http

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/nightspots-catalog/docs"
	"github.com/nightspots-catalog/internal/config"
	httpDelivery "github.com/nightspots-catalog/internal/delivery/http"
	"github.com/nightspots-catalog/internal/delivery/http/handler"
	"github.com/nightspots-catalog/internal/domain"
	domainrepo "github.com/nightspots-catalog/internal/domain/repository"
	"github.com/nightspots-catalog/internal/infrastructure/geoip"
	"github.com/nightspots-catalog/internal/pkg/logger"
	"github.com/nightspots-catalog/internal/repository/cache"
	"github.com/nightspots-catalog/internal/repository/file"
	"github.com/nightspots-catalog/internal/usecase"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting NightSpots Catalog")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("storage_backend", cfg.Storage.Backend),
	)

	// 3. Initialize the venue store
	var store domainrepo.VenueStore
	var redisClient *cache.Redis

	switch cfg.Storage.Backend {
	case config.StorageBackendRedis:
		redisClient, err = cache.NewRedis(&cfg.Redis, log)
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				log.Error("Failed to close Redis connection", zap.Error(err))
			}
		}()
		store = cache.NewVenueStore(redisClient, cfg.Storage.Key)
	default:
		store = file.NewStore(cfg.Storage.Path, log)
	}

	log.Info("Venue store initialized")

	// 4. Initialize Use Cases
	catalogUC := usecase.NewCatalogUseCase(store, log)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := catalogUC.Load(ctx); err != nil {
		cancel()
		log.Fatal("Failed to load venue collection", zap.Error(err))
	}
	cancel()

	catalogUC.Subscribe(func(venues []domain.Venue) {
		log.Debug("Collection changed", zap.Int("count", len(venues)))
	})

	locator := geoip.NewClient(&cfg.Geo, log)
	locationUC := usecase.NewLocationUseCase(
		locator,
		time.Duration(cfg.Geo.MaxPositionAge)*time.Second,
		log,
	)

	viewUC := usecase.NewViewUseCase(catalogUC, locationUC, log)
	importUC := usecase.NewImportUseCase(catalogUC, log)

	log.Info("Use cases initialized")

	// 5. Initialize HTTP Handlers
	venueHandler := handler.NewVenueHandler(catalogUC, viewUC, log)
	importHandler := handler.NewImportHandler(importUC, log)
	locationHandler := handler.NewLocationHandler(locationUC, log)

	// 6. Initialize HTTP Server
	server := httpDelivery.NewServer(
		cfg,
		log,
		venueHandler,
		importHandler,
		locationHandler,
	)

	// 7. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 8. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
