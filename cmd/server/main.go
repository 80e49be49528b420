// Package main is the entry point for the payment API.
// It initializes the transaction store, the gateway service and the
// HTTP server, and starts the periodic cleanup sweep.
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"dzpay/internal/config"
	"dzpay/internal/events"
	"dzpay/internal/handlers"
	"dzpay/internal/repositories"
	"dzpay/internal/repositories/cache"
	"dzpay/internal/services/gateway"
	"dzpay/internal/services/notification"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	// Load environment variables
	config.LoadEnv()
	payCfg := config.LoadPaymentConfig()

	// Transaction store: JSON file by default, PostgreSQL when configured.
	repo, err := newRepository()
	if err != nil {
		log.Fatalf("Failed to initialize transaction store: %v", err)
	}
	defer func() {
		if err := repo.Close(); err != nil {
			log.Printf("⚠️ Failed to close transaction store: %v", err)
		}
	}()

	// Optional redis read cache.
	var cacheOp gateway.CacheOperator
	if host := config.GetEnv("REDIS_HOST", ""); host != "" {
		client := cache.NewRedisClient(&cache.RedisConfig{
			Host:     host,
			Port:     config.GetEnv("REDIS_PORT", "6379"),
			Password: config.GetEnv("REDIS_PASSWORD", ""),
			DB:       config.GetIntEnv("REDIS_DB", 0),
		})
		txCache := cache.NewTransactionCache(client, 24*time.Hour)
		if err := txCache.HealthCheck(context.Background()); err != nil {
			log.Printf("⚠️ Redis unavailable, running without cache: %v", err)
		} else {
			log.Println("✅ Redis cache connected")
			cacheOp = txCache
			defer txCache.Close()
		}
	}

	// Event bus and subscribers.
	bus := events.NewBus()
	notification.NewService().Register(bus)

	// Gateway service.
	gatewaySvc := gateway.NewService(repo, cacheOp, bus, payCfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// One cleanup pass at startup, then hourly.
	gatewaySvc.StartCleanup(ctx)

	// Create Fiber app
	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: config.GetEnv("CORS_ORIGINS", "http://localhost:5173"),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
	}))

	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	app.Use("/api/payments", limiter.New(limiter.Config{
		Max:        config.GetIntEnv("RATE_LIMIT", 30),
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(429).JSON(fiber.Map{
				"error": "Too many requests. Please try again later.",
			})
		},
	}))

	// Routes
	handlers.SetupRoutes(app, handlers.NewPaymentHandler(gatewaySvc))

	// Start server and shut down cleanly on SIGINT/SIGTERM.
	go func() {
		if err := app.Listen(":" + config.GetEnv("PORT", "3000")); err != nil {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down...")
	if err := app.Shutdown(); err != nil {
		log.Printf("⚠️ Server shutdown error: %v", err)
	}
}

func newRepository() (repositories.TransactionRepository, error) {
	switch driver := config.GetEnv("STORAGE_DRIVER", "file"); driver {
	case "postgres":
		return repositories.NewPostgresStore()
	default:
		return repositories.NewFileStore(config.GetEnv("DATA_FILE", "data/transactions.json"))
	}
}
