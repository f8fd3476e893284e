package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/EduardoMSouza/consultorio-api/config"
	deliveryHttp "github.com/EduardoMSouza/consultorio-api/internal/delivery/http"
	"github.com/EduardoMSouza/consultorio-api/internal/delivery/http/handler"
	"github.com/EduardoMSouza/consultorio-api/internal/delivery/http/middleware"
	"github.com/EduardoMSouza/consultorio-api/internal/infrastructure/cache"
	"github.com/EduardoMSouza/consultorio-api/internal/infrastructure/database"
	"github.com/EduardoMSouza/consultorio-api/internal/repository"
	"github.com/EduardoMSouza/consultorio-api/internal/service"
	"github.com/EduardoMSouza/consultorio-api/internal/usecase"
	"github.com/EduardoMSouza/consultorio-api/pkg/jwt"
	"github.com/EduardoMSouza/consultorio-api/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config        *config.Config
	DB            *gorm.DB
	RedisClient   *redis.Client
	Server        *http.Server
	ExpiryService *service.FilaExpiryService
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

	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	logrus.Info("Database connected successfully")

	if err := database.Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	logrus.Info("Database migrations completed")

	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	logrus.Info("Redis connected successfully")

	app.initializeServer()

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer wires repositories, usecases, handlers and the router
func (app *App) initializeServer() {
	cfg := app.Config
	db := app.DB
	redisClient := app.RedisClient

	jwtService := jwt.NewJWTService(cfg.JWT)
	customValidator := validator.NewValidator()
	log := logrus.StandardLogger()

	// Repositories
	userRepo := repository.NewUserRepository()
	roleRepo := repository.NewRoleRepository()
	dentistaRepo := repository.NewDentistaRepository()
	pacienteRepo := repository.NewPacienteRepository()
	agendamentoRepo := repository.NewAgendamentoRepository()
	filaRepo := repository.NewFilaEsperaRepository()
	planoRepo := repository.NewPlanoDentalRepository()
	evolucaoRepo := repository.NewEvolucaoRepository()
	auditRepo := repository.NewAuditLogRepository()

	// Services
	auditService := service.NewAuditService(db, log, auditRepo)
	app.ExpiryService = service.NewFilaExpiryService(db, log, filaRepo, cfg.Fila)

	// Usecases
	authUsecase := usecase.NewAuthUsecase(db, log, userRepo, jwtService, redisClient)
	userUsecase := usecase.NewUserUsecase(db, log, userRepo, roleRepo)
	dentistaUsecase := usecase.NewDentistaUsecase(db, log, dentistaRepo)
	pacienteUsecase := usecase.NewPacienteUsecase(db, log, pacienteRepo)
	agendamentoUsecase := usecase.NewAgendamentoUsecase(db, log, agendamentoRepo, dentistaRepo, pacienteRepo, auditService)
	filaUsecase := usecase.NewFilaEsperaUsecase(db, log, filaRepo, pacienteRepo, dentistaRepo, agendamentoRepo, auditService)
	planoUsecase := usecase.NewPlanoDentalUsecase(db, log, planoRepo, pacienteRepo, dentistaRepo)
	evolucaoUsecase := usecase.NewEvolucaoUsecase(db, log, evolucaoRepo, pacienteRepo, dentistaRepo)

	// Handlers
	authHandler := handler.NewAuthHandler(authUsecase, jwtService, customValidator)
	userHandler := handler.NewUserHandler(userUsecase, customValidator)
	dentistaHandler := handler.NewDentistaHandler(dentistaUsecase, customValidator)
	pacienteHandler := handler.NewPacienteHandler(pacienteUsecase, customValidator)
	agendamentoHandler := handler.NewAgendamentoHandler(agendamentoUsecase)
	filaHandler := handler.NewFilaEsperaHandler(filaUsecase)
	planoHandler := handler.NewPlanoDentalHandler(planoUsecase, customValidator)
	evolucaoHandler := handler.NewEvolucaoHandler(evolucaoUsecase, customValidator)

	// Middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, redisClient)
	corsMiddleware := middleware.NewCORSMiddleware()
	rateLimitMiddleware := middleware.NewRateLimitMiddleware(redisClient, log)

	router := deliveryHttp.NewRouter(
		authHandler,
		agendamentoHandler,
		filaHandler,
		dentistaHandler,
		pacienteHandler,
		planoHandler,
		evolucaoHandler,
		userHandler,
		authMiddleware,
		corsMiddleware,
		rateLimitMiddleware,
	)

	app.Server = &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.App.Port),
		Handler: router.Setup(),
	}
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

// Close stops background services and closes all connections
func (app *App) Close() {
	if app.ExpiryService != nil {
		app.ExpiryService.Stop()
	}

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
