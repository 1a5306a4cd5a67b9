package main

// @title Local News API
// @version 1.0.0
// @description API для поиска локальных новостей по геокоординатам. Определяет место через обратное геокодирование (Nominatim) и запрашивает свежие новости у модели Anthropic с включенным web search, возвращая статьи с цитатами источников в фиксированной JSON-схеме.

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/vinoth12940/LocalNews-AI/docs"
	"github.com/vinoth12940/LocalNews-AI/internal/config"
	httpDelivery "github.com/vinoth12940/LocalNews-AI/internal/delivery/http"
	"github.com/vinoth12940/LocalNews-AI/internal/delivery/http/handler"
	"github.com/vinoth12940/LocalNews-AI/internal/infrastructure/anthropic"
	"github.com/vinoth12940/LocalNews-AI/internal/infrastructure/nominatim"
	"github.com/vinoth12940/LocalNews-AI/internal/pkg/logger"
	"github.com/vinoth12940/LocalNews-AI/internal/repository/cache"
	"github.com/vinoth12940/LocalNews-AI/internal/usecase"
	"go.uber.org/zap"
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

	log.Info("Starting Local News API")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("model", cfg.Anthropic.Model),
	)

	// 3. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()

	// 4. Health check
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Health(ctx); err != nil {
		log.Fatal("Redis health check failed", zap.Error(err))
	}

	log.Info("All connections healthy")

	// 5. Initialize Repositories
	cacheRepo := cache.NewCacheRepository(redisClient)
	geocoderRepo := nominatim.NewClient(&cfg.Nominatim, log)
	newsRepo := anthropic.NewClient(&cfg.Anthropic, log)

	log.Info("Repositories initialized")

	// 6. Initialize Use Cases
	newsUC := usecase.NewNewsUseCase(
		geocoderRepo,
		newsRepo,
		cacheRepo,
		log,
		cfg.Cache.GeocodeCacheTTL,
		cfg.Cache.SearchCacheTTL,
	)

	// 7. Initialize HTTP Handlers
	newsHandler := handler.NewNewsHandler(newsUC, log)

	// 8. Initialize HTTP Server
	server := httpDelivery.NewServer(cfg, log, newsHandler)

	log.Info("HTTP server initialized")

	// 9. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 10. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
