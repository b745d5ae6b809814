package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gym-portal/config"
	deliveryHttp "gym-portal/internal/delivery/http"
	"gym-portal/internal/delivery/http/handler"
	"gym-portal/internal/delivery/http/middleware"
	"gym-portal/internal/infrastructure/cache"
	"gym-portal/internal/infrastructure/database"
	"gym-portal/internal/infrastructure/messaging"
	"gym-portal/internal/repository"
	"gym-portal/internal/service"
	"gym-portal/internal/usecase"
	"gym-portal/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	KafkaWriter *kafka.Writer
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg

	// Setup logger
	log := setupLogger(cfg.Log)
	log.Info("Configuration loaded successfully")

	if cfg.DB.AutoMigrate {
		if err := database.RunMigrations(cfg.DB); err != nil {
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
		log.Info("Database migrations applied")
	}

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	log.Info("Database connected successfully")

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	log.Info("Redis connected successfully")

	// Initialize Kafka (optional)
	app.KafkaWriter = messaging.NewKafkaWriter(cfg.Kafka)
	if app.KafkaWriter == nil {
		log.Warn("KAFKA_BROKERS not set, member events disabled")
	}

	// Initialize all layers
	server, err := app.initializeServer(log)
	if err != nil {
		app.Close()
		return nil, err
	}
	app.Server = server

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger(cfg config.LogConfig) *logrus.Logger {
	log := logrus.StandardLogger()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)
	return log
}

// initializeServer creates and configures the HTTP server
func (app *App) initializeServer(log *logrus.Logger) (*http.Server, error) {
	cfg := app.Config

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize repositories
	userRepo := repository.NewUserRepository()
	memberProfileRepo := repository.NewMemberProfileRepository()
	personalInfoRepo := repository.NewPersonalInfoRepository()
	healthInfoRepo := repository.NewHealthInfoRepository()
	medicalConditionRepo := repository.NewMedicalConditionRepository()
	notificationRepo := repository.NewNotificationRepository(app.RedisClient)

	// Initialize services
	userCache := service.NewRedisUserCache(app.RedisClient, log, cfg.Cache.UsersTTL)
	var eventWriter service.MessageWriter
	if app.KafkaWriter != nil {
		eventWriter = app.KafkaWriter
	}
	memberEvents := service.NewMemberEventPublisher(eventWriter, log)

	// Initialize usecases
	userUsecase := usecase.NewUserUsecase(
		app.DB, log,
		userRepo, memberProfileRepo, personalInfoRepo, healthInfoRepo, medicalConditionRepo,
		userCache, memberEvents, cfg.Bcrypt.Cost,
	)
	dashboardUsecase := usecase.NewDashboardUsecase(log, notificationRepo)

	seedCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dashboardUsecase.SeedNotifications(seedCtx); err != nil {
		return nil, fmt.Errorf("failed to seed dashboard notifications: %w", err)
	}

	// Initialize handlers
	userHandler := handler.NewUserHandler(userUsecase, customValidator)
	dashboardHandler := handler.NewDashboardHandler(dashboardUsecase)

	// Initialize middleware
	loggingMiddleware := middleware.NewLoggingMiddleware(log)
	corsMiddleware := middleware.NewCORSMiddleware(cfg.App.CORSOrigin)

	// Initialize router
	router := deliveryHttp.NewRouter(userHandler, dashboardHandler, loggingMiddleware, corsMiddleware)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:              serverAddr,
		Handler:           httpRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}, nil
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, kafka)
func (app *App) Close() {
	// Flush pending events before the stores go away
	if app.KafkaWriter != nil {
		if err := app.KafkaWriter.Close(); err != nil {
			logrus.Warnf("Failed to close Kafka writer: %v", err)
		}
	}

	// Close database connection
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
