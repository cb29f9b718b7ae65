package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hospital-admin-api/config"
	deliveryHttp "hospital-admin-api/internal/delivery/http"
	"hospital-admin-api/internal/delivery/http/handler"
	"hospital-admin-api/internal/delivery/http/middleware"
	"hospital-admin-api/internal/infrastructure/cache"
	"hospital-admin-api/internal/infrastructure/database"
	"hospital-admin-api/internal/infrastructure/storage"
	"hospital-admin-api/internal/monitoring"
	"hospital-admin-api/internal/repository"
	"hospital-admin-api/internal/usecase"
	"hospital-admin-api/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const migrationsPath = "db/migrations"

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	setupLogger()

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	if err := database.RunMigrations(cfg.DB, migrationsPath); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	logrus.Info("Migrations applied successfully")

	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	logrus.Info("Database connected successfully")

	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	logrus.Info("Redis connected successfully")

	monitoring.Init()

	server, err := initializeServer(cfg, db, redisClient)
	if err != nil {
		return nil, err
	}
	app.Server = server

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*http.Server, error) {
	log := logrus.StandardLogger()

	customValidator := validator.NewValidator()

	fileStore, err := storage.NewLocalStore(cfg.Storage.Root, log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	slotCache := cache.NewSlotCache(redisClient)

	// Initialize repositories
	doctorRepo := repository.NewDoctorRepository(db)
	patientRepo := repository.NewPatientRepository(db)
	scheduleRepo := repository.NewScheduleRepository(db)
	appointmentRepo := repository.NewAppointmentRepository(db)
	serviceRepo := repository.NewServiceRepository(db)
	eventRepo := repository.NewEventRepository(db)
	historiqueRepo := repository.NewHistoriqueRepository(db)

	// Initialize usecases
	doctorUsecase := usecase.NewDoctorUsecase(log, doctorRepo, fileStore)
	patientUsecase := usecase.NewPatientUsecase(log, patientRepo, fileStore)
	scheduleUsecase := usecase.NewScheduleUsecase(log, scheduleRepo, doctorRepo, slotCache)
	appointmentUsecase := usecase.NewAppointmentUsecase(log, appointmentRepo, doctorRepo, patientRepo)
	serviceUsecase := usecase.NewServiceUsecase(log, serviceRepo, doctorRepo)
	eventUsecase := usecase.NewEventUsecase(log, eventRepo, fileStore)
	historiqueUsecase := usecase.NewHistoriqueUsecase(log, historiqueRepo, fileStore)

	// Initialize handlers
	doctorHandler := handler.NewDoctorHandler(doctorUsecase, customValidator)
	patientHandler := handler.NewPatientHandler(patientUsecase, customValidator)
	scheduleHandler := handler.NewScheduleHandler(scheduleUsecase, customValidator)
	appointmentHandler := handler.NewAppointmentHandler(appointmentUsecase, customValidator)
	serviceHandler := handler.NewServiceHandler(serviceUsecase, customValidator)
	eventHandler := handler.NewEventHandler(eventUsecase, customValidator)
	historiqueHandler := handler.NewHistoriqueHandler(historiqueUsecase, customValidator)

	// Initialize middleware
	corsMiddleware := middleware.NewCORSMiddleware(cfg.App.CORSOrigins)
	loggingMiddleware := middleware.NewLoggingMiddleware(log)
	metricsMiddleware := middleware.NewMetricsMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(
		doctorHandler,
		patientHandler,
		scheduleHandler,
		appointmentHandler,
		serviceHandler,
		eventHandler,
		historiqueHandler,
		corsMiddleware,
		loggingMiddleware,
		metricsMiddleware,
		fileStore.Root(),
	)
	httpRouter := router.Setup()

	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}, nil
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
