package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"storefront/internal/adapter/backend"
	"storefront/internal/adapter/handler"
	"storefront/internal/adapter/storage"
	"storefront/internal/config"
	"storefront/internal/core/service"
)

func main() {
	cfg := config.Load()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize Redis
	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatalf("failed to connect redis: %v", err)
	}
	log.Println("connected to redis")

	// Initialize adapters
	store := backend.NewClient(cfg.BackendURL)
	cartCache := storage.NewMemoryCartCache()
	sessions := storage.NewRedisSessionRepository(rdb, cfg.SessionTTL)

	// Initialize services
	cartService := service.NewCartService(store, cartCache)
	authService := service.NewAuthService(store, sessions)
	userService := service.NewUserService(store)
	catalogService := service.NewCatalogService(store)

	// Initialize HTTP server
	gin.SetMode(cfg.GinMode)
	router := gin.Default()
	httpHandler := handler.NewHTTPHandler(cartService, authService, userService, catalogService)
	httpHandler.Register(router)

	httpServer := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Printf("HTTP server listening on :%s", cfg.Port)
		if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
			log.Printf("HTTP server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	httpServer.Shutdown(shutdownCtx)
	log.Println("HTTP server stopped")

	rdb.Close()
	log.Println("connections closed")
}
