package wallet

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/summer-project-team/crossbridge/services/wallet WalletRepo,PoolRepo

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/summer-project-team/crossbridge/internal/pkg/models"
)

// WalletRepo defines the interface for wallet store operations.
// All balance mutations run inside a database transaction scoped to the
// rows touched; concurrent debits against the same balance serialize on
// the row lock, so a lost update cannot occur.
type WalletRepo interface {
	CreateWallet(ctx context.Context, userID uuid.UUID) (*models.Wallet, error)
	GetWallet(ctx context.Context, walletID uuid.UUID) (*models.Wallet, error)
	GetBalance(ctx context.Context, walletID uuid.UUID, currency string) (decimal.Decimal, error)

	// Credit atomically adds to a balance, creating the currency row on
	// first use. Fails with ErrWalletNotFound for unknown wallets.
	Credit(ctx context.Context, walletID uuid.UUID, currency string, amount decimal.Decimal) error

	// Debit atomically subtracts from a balance. Fails with
	// ErrInsufficientFunds when balance < amount.
	Debit(ctx context.Context, walletID uuid.UUID, currency string, amount decimal.Decimal) error

	// Transfer executes a paired debit and credit in a single atomic unit:
	// money never leaves one wallet without arriving at the other.
	Transfer(ctx context.Context, senderID uuid.UUID, sourceCurrency string, debitAmount decimal.Decimal,
		recipientID uuid.UUID, targetCurrency string, creditAmount decimal.Decimal) error

	// RetireWallet soft-retires a wallet with its owning user. Balances are
	// kept; the wallet only stops accepting operations.
	RetireWallet(ctx context.Context, walletID uuid.UUID) error
}

// PoolRepo defines the interface for liquidity pool operations. Pool rows
// are a hotspot during bank-to-bank settlement and are updated under
// per-currency serialization.
type PoolRepo interface {
	GetPool(ctx context.Context, currency string) (*models.LiquidityPool, error)

	// DebitPool subtracts from the reserve; fails with ErrPoolInsufficient
	// when the balance would go negative. Threshold breaches do not block.
	DebitPool(ctx context.Context, currency string, amount decimal.Decimal) (*models.LiquidityPool, error)

	// CreditPool adds to the reserve.
	CreditPool(ctx context.Context, currency string, amount decimal.Decimal) (*models.LiquidityPool, error)

	// Rebalance tops the pool back to its target balance and stamps the
	// rebalance time. Returns the pool and the applied delta.
	Rebalance(ctx context.Context, currency string) (*models.LiquidityPool, decimal.Decimal, error)
}
