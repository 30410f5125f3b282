package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/summer-project-team/crossbridge/internal/pkg/config"
	"github.com/summer-project-team/crossbridge/internal/pkg/constants"
	"github.com/summer-project-team/crossbridge/internal/pkg/database"
	"github.com/summer-project-team/crossbridge/internal/pkg/health"
	"github.com/summer-project-team/crossbridge/internal/pkg/logger"
	"github.com/summer-project-team/crossbridge/internal/pkg/middleware"
	natspkg "github.com/summer-project-team/crossbridge/internal/pkg/nats"
	nrpkg "github.com/summer-project-team/crossbridge/internal/pkg/newrelic"
	"github.com/summer-project-team/crossbridge/internal/pkg/server"
	"github.com/summer-project-team/crossbridge/services/wallet/gateway"
	"github.com/summer-project-team/crossbridge/services/wallet/handler"
	"github.com/summer-project-team/crossbridge/services/wallet/repository"
	"github.com/summer-project-team/crossbridge/services/wallet/usecase"
	"go.uber.org/zap"
)

func main() {
	appName := "wallet-service"
	configs := config.InitConfig("config/wallet.env")

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

	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer postgresClient.Close()

	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", zap.Error(err))
	}
	defer natsClient.Close()

	// Repositories
	walletRepo := repository.NewWalletRepo(configs, postgresClient.GetDB())
	poolRepo := repository.NewPoolRepo(configs, postgresClient.GetDB())

	// Gateway
	alertGW := gateway.NewPoolAlertGW(natspkg.NewProducer(natsClient.GetConn()))

	// UseCase
	walletUC := usecase.NewWalletUC(configs, walletRepo, poolRepo, alertGW)

	// Pool alert consumer: settlement raises threshold breaches when a
	// bank-to-bank leg drains a pool; rebalance it back to target.
	alertConsumer, err := natspkg.NewConsumer(
		natsClient.GetConn(),
		constants.SubjectPoolThresholdBreached,
		constants.QueueGroupWalletService,
		walletUC.HandlePoolAlert,
	)
	if err != nil {
		zapLogger.Fatal("Failed to subscribe to pool alerts", zap.Error(err))
	}
	defer alertConsumer.Stop()

	// Handler
	walletHandler := handler.NewWalletHandler(walletUC)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	health.RegisterHealthEndpoints(e, appName)
	walletHandler.RegisterRoutes(e, configs.APIKey.WalletService, configs.APIKey.SettlementService)

	zapLogger.Info("Starting server",
		zap.String("app", appName),
		zap.Int("port", configs.Server.Port),
	)

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port)
	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server stopped", zap.Error(err))
	}
}
