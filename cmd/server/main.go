package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/Blackprojecttech/technoline-stocktake/config"
	catalogClient "github.com/Blackprojecttech/technoline-stocktake/internal/catalog/client"
	"github.com/Blackprojecttech/technoline-stocktake/internal/logger"
	"github.com/Blackprojecttech/technoline-stocktake/internal/middleware"
	"github.com/Blackprojecttech/technoline-stocktake/internal/stocktake"
	stocktakeHandler "github.com/Blackprojecttech/technoline-stocktake/internal/stocktake/handler"
	"github.com/Blackprojecttech/technoline-stocktake/internal/stocktake/messaging"
	stocktakeRepo "github.com/Blackprojecttech/technoline-stocktake/internal/stocktake/repository"
	stocktakeUC "github.com/Blackprojecttech/technoline-stocktake/internal/stocktake/usecase"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	// 1. Load Configuration
	_ = godotenv.Load() // Load .env file if it exists
	cfg := config.LoadEnv()

	// 2. Initialize Logger
	appLogger, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("could not build logger: %v", err)
	}
	defer appLogger.Sync()

	// 3. Connect to Database
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.User,
		cfg.Postgres.Password, cfg.Postgres.DBName, cfg.Postgres.SSLMode,
	)
	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		appLogger.Fatal("Could not connect to database", zap.Error(err))
	}
	db.SetMaxOpenConns(cfg.Postgres.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Postgres.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Postgres.ConnMaxLifetime) * time.Second)
	db.SetConnMaxIdleTime(time.Duration(cfg.Postgres.ConnMaxIdleTime) * time.Second)
	defer db.Close()
	appLogger.Info("Connected to PostgreSQL database", zap.String("db_name", cfg.Postgres.DBName))

	// 4. Initialize Redis
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		appLogger.Fatal("Could not connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()
	appLogger.Info("Connected to Redis", zap.String("addr", cfg.Redis.Addr))

	// 5. Initialize Repositories and Collaborators
	sessionStore := stocktakeRepo.NewRedisSessionStore(redisClient, cfg.Stocktake.SessionTTL)
	reportRepo := stocktakeRepo.NewPGReportRepository(db)
	catalogGateway := catalogClient.NewHTTPGateway(cfg.Catalog.BaseURL, cfg.Catalog.Timeout)

	// 5.5 Initialize Event Publisher
	var events stocktake.EventPublisher = messaging.NopPublisher{}
	if cfg.Kafka.Enabled {
		publisher := messaging.NewKafkaPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic, appLogger)
		defer publisher.Close()
		events = publisher
		appLogger.Info("Connected to Kafka", zap.Strings("brokers", cfg.Kafka.Brokers), zap.String("topic", cfg.Kafka.Topic))
	}

	// 6. Initialize UseCase
	uc := stocktakeUC.NewStocktakeUseCase(
		catalogGateway,
		sessionStore,
		reportRepo,
		stocktakeUC.NewRoleAuthorizer(),
		events,
		appLogger,
		cfg.Stocktake.BrandFilter,
	)

	// 7. Initialize HTTP Server
	if cfg.Server.AppEnv != "dev" && cfg.Server.AppEnv != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1/stocktake")
	api.Use(middleware.Auth(cfg.JWT.SecretKey))
	stocktakeHandler.NewStocktakeHandler(uc, appLogger).RegisterRoutes(api)

	port := cfg.Server.HTTPPort
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	server := &http.Server{
		Addr:    port,
		Handler: router,
	}

	appLogger.Info("Starting HTTP server", zap.String("port", port))

	// Graceful Shutdown
	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatal("failed to serve", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("forced shutdown", zap.Error(err))
	}
	appLogger.Info("Server stopped")
}
