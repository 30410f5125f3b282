package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/summer-project-team/crossbridge/internal/pkg/logger"
	"github.com/summer-project-team/crossbridge/internal/pkg/models"
	"github.com/summer-project-team/crossbridge/services/wallet"
)

// WalletUC implements the wallet use cases
type WalletUC struct {
	cfg        *models.Config
	walletRepo wallet.WalletRepo
	poolRepo   wallet.PoolRepo
	alertGW    wallet.PoolAlertGW
}

// NewWalletUC creates a new wallet usecase
func NewWalletUC(cfg *models.Config, walletRepo wallet.WalletRepo, poolRepo wallet.PoolRepo, alertGW wallet.PoolAlertGW) *WalletUC {
	return &WalletUC{
		cfg:        cfg,
		walletRepo: walletRepo,
		poolRepo:   poolRepo,
		alertGW:    alertGW,
	}
}

// CreateWallet provisions a wallet for a user
func (uc *WalletUC) CreateWallet(ctx context.Context, userID uuid.UUID) (*models.Wallet, error) {
	w, err := uc.walletRepo.CreateWallet(ctx, userID)
	if err != nil {
		return nil, err
	}

	logger.Info("wallet created",
		logger.String("wallet_id", w.ID.String()),
		logger.String("user_id", userID.String()))
	return w, nil
}

// GetWallet retrieves a wallet with its balances
func (uc *WalletUC) GetWallet(ctx context.Context, walletID uuid.UUID) (*models.Wallet, error) {
	return uc.walletRepo.GetWallet(ctx, walletID)
}

// GetBalance retrieves one currency balance
func (uc *WalletUC) GetBalance(ctx context.Context, walletID uuid.UUID, currency string) (decimal.Decimal, error) {
	return uc.walletRepo.GetBalance(ctx, walletID, currency)
}

// RetireWallet soft-retires a wallet
func (uc *WalletUC) RetireWallet(ctx context.Context, walletID uuid.UUID) error {
	if err := uc.walletRepo.RetireWallet(ctx, walletID); err != nil {
		return err
	}

	logger.Info("wallet retired", logger.String("wallet_id", walletID.String()))
	return nil
}

// GetPool retrieves a liquidity pool
func (uc *WalletUC) GetPool(ctx context.Context, currency string) (*models.LiquidityPool, error) {
	return uc.poolRepo.GetPool(ctx, currency)
}

// RebalancePool tops a pool back to its target balance and publishes the
// rebalance event for treasury to act on.
func (uc *WalletUC) RebalancePool(ctx context.Context, currency string) (*models.LiquidityPool, error) {
	pool, delta, err := uc.poolRepo.Rebalance(ctx, currency)
	if err != nil {
		return nil, err
	}

	logger.Info("liquidity pool rebalanced",
		logger.String("currency", currency),
		logger.String("delta", delta.String()),
		logger.String("balance", pool.Balance.String()))

	event := models.PoolAlertEvent{
		Currency:     pool.Currency,
		Balance:      pool.Balance,
		MinThreshold: pool.MinThreshold,
		MaxThreshold: pool.MaxThreshold,
		Timestamp:    time.Now().UTC(),
	}
	if err := uc.alertGW.PublishPoolRebalanced(ctx, event); err != nil {
		// Alerting is best-effort; the rebalance itself already committed.
		logger.Warn("failed to publish pool rebalanced event",
			logger.String("currency", currency),
			logger.Err(err))
	}

	return pool, nil
}

// HandlePoolAlert consumes a pool threshold alert raised by the settlement
// engine and rebalances the drained pool. Malformed messages are dropped;
// returning nil acknowledges the message.
func (uc *WalletUC) HandlePoolAlert(message []byte) error {
	var event models.PoolAlertEvent
	if err := json.Unmarshal(message, &event); err != nil {
		logger.Warn("malformed pool alert dropped", logger.Err(err))
		return nil
	}

	logger.Info("pool threshold alert received",
		logger.String("currency", event.Currency),
		logger.String("balance", event.Balance.String()))

	_, err := uc.RebalancePool(context.Background(), event.Currency)
	return err
}
