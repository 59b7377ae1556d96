package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/reveda-health/reveda-server/internal/pkg/config"
	"github.com/reveda-health/reveda-server/internal/pkg/database"
	"github.com/reveda-health/reveda-server/internal/pkg/health"
	"github.com/reveda-health/reveda-server/internal/pkg/logger"
	"github.com/reveda-health/reveda-server/internal/pkg/middleware"
	natspkg "github.com/reveda-health/reveda-server/internal/pkg/nats"
	nrpkg "github.com/reveda-health/reveda-server/internal/pkg/newrelic"
	"github.com/reveda-health/reveda-server/services/auth/gateway"
	"github.com/reveda-health/reveda-server/services/auth/handler"
	httpHandler "github.com/reveda-health/reveda-server/services/auth/handler/http"
	"github.com/reveda-health/reveda-server/services/auth/repository"
	"github.com/reveda-health/reveda-server/services/auth/usecase"
)

func main() {
	appName := "reveda-auth"
	configPath := config.GetEnv("CONFIG_PATH", "config/auth.env")
	configs := config.InitConfig(configPath)

	// Initialize New Relic before the logger so log forwarding can hook in
	nrApp := nrpkg.InitNewRelic(configs)
	if nrApp != nil {
		if err := nrApp.WaitForConnection(10 * time.Second); err != nil {
			log.Printf("Warning: New Relic connection timeout: %v", err)
		}
	}

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nrApp)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		zap.String("app", appName),
		zap.String("version", configs.App.Version),
		zap.String("environment", configs.App.Environment),
	)

	if configs.JWT.AccessSecret == "" || configs.JWT.RefreshSecret == "" {
		zapLogger.Fatal("JWT access and refresh secrets must be configured")
	}

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer postgresClient.Close()

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()

	// Initialize NATS
	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", zap.Error(err))
	}
	defer natsClient.Close()

	// Initialize repository and seed the default roles. A missing seed
	// role is an operator error, so fail fast here rather than per-request.
	userRepo := repository.NewUserRepo(configs, postgresClient.GetDB())

	seedCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := userRepo.SeedDefaultRoles(seedCtx); err != nil {
		zapLogger.Fatal("Failed to seed default roles", zap.Error(err))
	}

	// Initialize gateways
	notifier := gateway.NewNotifier(configs.SMTP, configs.App.Environment)
	googleVerifier := gateway.NewGoogleVerifier(configs.Google)
	eventGW := gateway.NewEventGW(natsClient)

	// Initialize usecase and handlers
	authUC := usecase.NewAuthUC(userRepo, notifier, googleVerifier, eventGW, configs)
	authHandler := httpHandler.NewAuthHandler(authUC)
	gate := handler.NewAccessGate(authUC, configs.JWT)
	routeHandler := handler.NewHandler(authHandler, gate, redisClient, configs)

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	health.RegisterHealthEndpoints(e, appName)
	routeHandler.RegisterRoutes(e)

	zapLogger.Info("Starting server",
		zap.String("app", appName),
		zap.Int("port", configs.Server.Port),
	)

	if err := e.Start(fmt.Sprintf(":%d", configs.Server.Port)); err != nil {
		zapLogger.Fatal("Failed to start server",
			zap.String("app", appName),
			zap.Error(err),
		)
	}
}
