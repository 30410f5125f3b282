package wallet

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/summer-project-team/crossbridge/services/wallet WalletUC,PoolAlertGW

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/summer-project-team/crossbridge/internal/pkg/models"
)

// WalletUC defines the interface for wallet use cases
type WalletUC interface {
	CreateWallet(ctx context.Context, userID uuid.UUID) (*models.Wallet, error)
	GetWallet(ctx context.Context, walletID uuid.UUID) (*models.Wallet, error)
	GetBalance(ctx context.Context, walletID uuid.UUID, currency string) (decimal.Decimal, error)
	RetireWallet(ctx context.Context, walletID uuid.UUID) error

	GetPool(ctx context.Context, currency string) (*models.LiquidityPool, error)
	RebalancePool(ctx context.Context, currency string) (*models.LiquidityPool, error)

	// HandlePoolAlert consumes a pool threshold alert from the event bus
	// and rebalances the drained pool.
	HandlePoolAlert(message []byte) error
}

// PoolAlertGW publishes liquidity pool alerts to the event bus.
type PoolAlertGW interface {
	PublishPoolThresholdBreached(ctx context.Context, event models.PoolAlertEvent) error
	PublishPoolRebalanced(ctx context.Context, event models.PoolAlertEvent) error
}
