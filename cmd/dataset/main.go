package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	_ "github.com/traceright/dataset-service/docs"
	"github.com/traceright/dataset-service/internal/dataset"
	datasetHTTP "github.com/traceright/dataset-service/internal/dataset/delivery/http"
	"github.com/traceright/dataset-service/internal/dataset/store"
	"github.com/traceright/dataset-service/internal/dataset/usecase/command"
	"github.com/traceright/dataset-service/internal/user"
	userHTTP "github.com/traceright/dataset-service/internal/user/delivery/http"
	"github.com/traceright/dataset-service/internal/user/repository"
	"github.com/traceright/dataset-service/kafka"
	"github.com/traceright/dataset-service/pkg/database"
	"github.com/traceright/dataset-service/pkg/lock"
	"github.com/traceright/dataset-service/pkg/logger"
	"github.com/traceright/dataset-service/pkg/tracing"
)

func main() {
	// .env is optional; environment variables win
	_ = godotenv.Load()

	// Initialize logger
	serviceName := getEnv("OTEL_SERVICE_NAME", "dataset-service")
	isDevelopment := getEnv("ENVIRONMENT", "development") == "development"
	logger.Init(serviceName, isDevelopment)

	logLevel := getEnv("LOG_LEVEL", "info")
	logger.SetLevel(logLevel)

	logger.Logger.Info().
		Str("service", serviceName).
		Str("environment", getEnv("ENVIRONMENT", "development")).
		Str("log_level", logLevel).
		Msg("Starting dataset service")

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

	// Load database configuration
	dbConfig := database.Config{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "5432"),
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", "postgres"),
		DBName:   getEnv("DB_NAME", "datasetdb"),
		SSLMode:  getEnv("DB_SSLMODE", "disable"),
	}

	// Connect to database
	db, err := database.NewGormConnection(dbConfig)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to connect to database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to get database instance")
	}
	defer sqlDB.Close()

	// Run migrations
	if err := repository.NewGormUserRepository(db).AutoMigrate(); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to migrate users table")
	}
	if err := store.NewGormDocumentStore(db).AutoMigrate(); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to migrate documents table")
	}

	logger.Logger.Info().Msg("Database initialized successfully")

	// Optional Redis-backed run guard
	var guard command.RunGuard
	if redisAddr := os.Getenv("REDIS_ADDR"); redisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     redisAddr,
			Password: os.Getenv("REDIS_PASSWORD"),
		})
		guard = lock.NewRedisLock(redisClient, "dataset-seed", 10*time.Minute)
		logger.Logger.Info().Str("redis_addr", redisAddr).Msg("Seed run guard enabled")
	}

	// Optional Kafka audit publisher
	var publisher command.AuditPublisher
	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		kafkaPublisher, err := kafka.NewPublisher(strings.Split(brokers, ","))
		if err != nil {
			logger.Logger.Error().Err(err).Msg("Failed to connect Kafka publisher, audit events disabled")
		} else {
			defer kafkaPublisher.Close()
			publisher = kafkaPublisher
			logger.Logger.Info().Str("brokers", brokers).Msg("Audit publisher enabled")
		}
	}

	// Initialize handlers with Wire DI
	datasetHandler, err := dataset.InitializeHTTPHandler(db, guard, publisher)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize dataset handler")
	}

	userHandler, err := user.InitializeHTTPHandler(db)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize user handler")
	}

	// Start HTTP server
	httpPort := getEnv("HTTP_PORT", "8084")
	go startHTTPServer(datasetHandler, userHandler, sqlDB, httpPort)

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down server...")
}

func startHTTPServer(datasetHandler *datasetHTTP.DatasetHandler, userHandler *userHTTP.UserHandler, db *sql.DB, port string) {
	// Setup router
	router := mux.NewRouter()

	// Register routes
	datasetHandler.RegisterRoutes(router)
	userHandler.RegisterRoutes(router)

	// Health check endpoint
	datasetHandler.RegisterHealthCheck(router, db)

	// Swagger documentation
	userHTTP.RegisterSwaggerDocs(router, httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	// Prometheus metrics endpoint
	router.Handle("/metrics", promhttp.Handler())

	// CORS middleware
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	logger.Logger.Info().
		Str("port", port).
		Str("metrics_endpoint", "/metrics").
		Str("swagger_endpoint", "/swagger/index.html").
		Msg("HTTP server started")

	handler := otelhttp.NewHandler(c.Handler(router), "dataset-service")
	if err := http.ListenAndServe(":"+port, handler); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to start HTTP server")
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
