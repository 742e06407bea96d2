package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/traceright/dataset-service/api-gateway/config"
	"github.com/traceright/dataset-service/api-gateway/middleware"
	"github.com/traceright/dataset-service/api-gateway/routes"
	"github.com/traceright/dataset-service/pkg/logger"
	"github.com/traceright/dataset-service/pkg/tracing"
)

func main() {
	_ = godotenv.Load()

	// Initialize logger
	serviceName := getEnv("OTEL_SERVICE_NAME", "api-gateway")
	isDevelopment := getEnv("ENVIRONMENT", "development") == "development"
	logger.Init(serviceName, isDevelopment)

	logLevel := getEnv("LOG_LEVEL", "info")
	logger.SetLevel(logLevel)

	logger.Logger.Info().
		Str("service", serviceName).
		Str("environment", getEnv("ENVIRONMENT", "development")).
		Msg("Starting API Gateway")

	// Initialize tracer
	tp, err := tracing.InitTracer(serviceName)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to initialize tracer")
	} else {
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := tracing.Shutdown(ctx, tp); err != nil {
				logger.Logger.Error().Err(err).Msg("Failed to shutdown tracer")
			}
		}()
	}

	// Initialize Redis for rate limiting
	redisAddr := getEnv("REDIS_ADDR", "localhost:6379")
	redisClient := redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: getEnv("REDIS_PASSWORD", ""),
	})

	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		logger.Logger.Warn().
			Err(err).
			Str("redis_addr", redisAddr).
			Msg("Failed to connect to Redis - rate limiting will be disabled")
		redisClient = nil
	} else {
		logger.Logger.Info().
			Str("redis_addr", redisAddr).
			Msg("Connected to Redis for rate limiting")
	}

	// Load configuration
	cfg := config.LoadConfig()

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "API Gateway",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 5 * time.Minute,
		IdleTimeout:  30 * time.Second,
		ErrorHandler: customErrorHandler,
	})

	setupMiddleware(app, redisClient)
	routes.SetupRoutes(app, cfg, redisClient)

	// Start server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Port)
		logger.Logger.Info().Str("addr", addr).Msg("API Gateway listening")
		for name, svc := range cfg.Services {
			logger.Logger.Info().
				Str("service", name).
				Strs("instances", svc.Instances).
				Msg("Routing to service")
		}

		if err := app.Listen(addr); err != nil {
			logger.Logger.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down API Gateway...")

	if err := app.Shutdown(); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	logger.Logger.Info().Msg("API Gateway stopped")
}

// setupMiddleware configures global middleware
func setupMiddleware(app *fiber.App, redisClient *redis.Client) {
	app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
	}))

	// Request ID first, then tracing, then logging so every log line
	// carries both ids
	app.Use(requestid.New())
	app.Use(middleware.TracingMiddleware())
	app.Use(middleware.StructuredLoggingMiddleware())

	if redisClient != nil {
		logger.Logger.Info().Msg("Rate limiting enabled (100 req/min)")
		app.Use(middleware.GlobalRateLimiter(redisClient))
	} else {
		logger.Logger.Warn().Msg("Rate limiting disabled (Redis not available)")
	}

	// Fiber rejects wildcard origins combined with credentials
	allowOrigins := getEnv("CORS_ALLOWED_ORIGINS", "*")
	app.Use(cors.New(cors.Config{
		AllowOrigins:     allowOrigins,
		AllowMethods:     "GET,POST,PUT,DELETE,PATCH,OPTIONS,HEAD",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-Request-Id, traceparent, tracestate",
		AllowCredentials: allowOrigins != "*",
		ExposeHeaders:    "X-Request-Id, X-Trace-Id, X-RateLimit-Limit, X-RateLimit-Remaining, X-RateLimit-Reset",
		MaxAge:           86400,
	}))

	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

// customErrorHandler handles errors globally
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error":      err.Error(),
		"statusCode": code,
		"path":       c.Path(),
		"requestId":  c.Get("X-Request-Id"),
	})
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
