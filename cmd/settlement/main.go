package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/summer-project-team/crossbridge/internal/pkg/config"
	"github.com/summer-project-team/crossbridge/internal/pkg/database"
	"github.com/summer-project-team/crossbridge/internal/pkg/health"
	"github.com/summer-project-team/crossbridge/internal/pkg/logger"
	"github.com/summer-project-team/crossbridge/internal/pkg/middleware"
	"github.com/summer-project-team/crossbridge/internal/pkg/models"
	natspkg "github.com/summer-project-team/crossbridge/internal/pkg/nats"
	nrpkg "github.com/summer-project-team/crossbridge/internal/pkg/newrelic"
	nsqpkg "github.com/summer-project-team/crossbridge/internal/pkg/nsq"
	"github.com/summer-project-team/crossbridge/internal/pkg/server"
	"github.com/summer-project-team/crossbridge/services/settlement/gateway"
	"github.com/summer-project-team/crossbridge/services/settlement/handler"
	"github.com/summer-project-team/crossbridge/services/settlement/repository"
	"github.com/summer-project-team/crossbridge/services/settlement/usecase"
	walletrepo "github.com/summer-project-team/crossbridge/services/wallet/repository"
	"go.uber.org/zap"
)

func main() {
	appName := "settlement-service"
	configs := config.InitConfig("config/settlement.env")

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

	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()

	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", zap.Error(err))
	}
	defer natsClient.Close()

	nsqProducer, err := nsqpkg.NewProducer(configs.NSQ.Address)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NSQ", zap.Error(err))
	}
	defer nsqProducer.Stop()

	db := postgresClient.GetDB()

	// Repositories
	txnRepo := repository.NewTransactionRepo(configs, db)
	ledgerRepo := repository.NewLedgerRepo(configs, db)
	retryRepo := repository.NewRetryRepo(configs, db)
	limitsRepo := repository.NewLimitsRepo(redisClient)
	poolLockRepo := repository.NewPoolLockRepo(redisClient)
	walletRepo := walletrepo.NewWalletRepo(configs, db)
	poolRepo := walletrepo.NewPoolRepo(configs, db)

	// Gateways
	natsProducer := natspkg.NewProducer(natsClient.GetConn())
	settlementGW := gateway.NewSettlementGW(natsProducer)
	retryQueue := gateway.NewRetryQueueGW(nsqProducer)
	rateOracle := gateway.NewRateOracleGW(redisClient)

	// UseCase
	settlementUC := usecase.NewSettlementUC(
		configs,
		txnRepo,
		ledgerRepo,
		retryRepo,
		walletRepo,
		poolRepo,
		poolLockRepo,
		limitsRepo,
		rateOracle,
		settlementGW,
		retryQueue,
	)

	// Retry queue consumer
	retryConsumer, err := nsqpkg.NewConsumer(
		configs.NSQ.RetryTopic,
		configs.NSQ.RetryChannel,
		configs.NSQ.Address,
		func(message []byte) error {
			var msg models.RetryMessage
			if err := nsqpkg.UnmarshalMessage(message, &msg); err != nil {
				zapLogger.Error("Malformed retry message dropped", zap.Error(err))
				return nil
			}
			return settlementUC.HandleRetryMessage(&msg)
		},
	)
	if err != nil {
		zapLogger.Fatal("Failed to start retry consumer", zap.Error(err))
	}
	defer retryConsumer.Stop()

	// Staleness sweeper
	sweepCtx, cancelSweep := context.WithCancel(context.Background())
	defer cancelSweep()
	go settlementUC.RunSweeper(sweepCtx)

	// Handler
	settlementHandler := handler.NewSettlementHandler(settlementUC)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	health.RegisterHealthEndpoints(e, appName)
	settlementHandler.RegisterRoutes(e, configs.APIKey.SettlementService, configs.APIKey.WalletService)

	zapLogger.Info("Starting server",
		zap.String("app", appName),
		zap.Int("port", configs.Server.Port),
	)

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port)
	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server stopped", zap.Error(err))
	}
}
