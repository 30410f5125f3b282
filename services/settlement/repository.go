package settlement

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/summer-project-team/crossbridge/services/settlement TransactionRepo,LedgerRepo,RetryRepo,WalletStore,PoolStore,PoolLocker,LimitsStore

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/summer-project-team/crossbridge/internal/pkg/models"
)

// TransactionRepo defines the interface for transaction record operations.
// Status changes use compare-and-set semantics: an update names the status
// it expects to replace, so two workers racing on the same transaction
// cannot both win.
type TransactionRepo interface {
	CreateTransaction(ctx context.Context, txn *models.Transaction) error
	GetTransaction(ctx context.Context, id uuid.UUID) (*models.Transaction, error)
	GetByReference(ctx context.Context, reference string) (*models.Transaction, error)

	// UpdateStatus moves a transaction from one status to another. Returns
	// ErrTransactionNotFound for unknown ids and IllegalTransitionError when
	// the row is no longer in the expected status.
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to models.TransactionStatus, failureReason *string) error

	SetPreCommitted(ctx context.Context, id uuid.UUID, preCommitted bool) error
	SetSagaStep(ctx context.Context, id uuid.UUID, step int) error

	// IncrementRetryCount bumps the attempt counter and returns the new value.
	IncrementRetryCount(ctx context.Context, id uuid.UUID) (int, error)

	// ListStaleProcessing returns transactions stuck in processing since
	// before the cutoff, oldest first.
	ListStaleProcessing(ctx context.Context, cutoff time.Time, limit int) ([]*models.Transaction, error)

	// ListByWallet returns transactions where the wallet is sender or
	// recipient, newest first.
	ListByWallet(ctx context.Context, walletID uuid.UUID, limit, offset int) ([]*models.Transaction, error)
}

// LedgerRepo defines the interface for the append-only ledger event log.
type LedgerRepo interface {
	// Append writes the next event for a transaction, assigning the next
	// sequence number under the transaction's row lock.
	Append(ctx context.Context, txnID uuid.UUID, eventType models.LedgerEventType, payload map[string]interface{}) (*models.LedgerEvent, error)

	// HasEvent reports whether an event of the given type was already
	// appended for the transaction. Used for idempotency checks.
	HasEvent(ctx context.Context, txnID uuid.UUID, eventType models.LedgerEventType) (bool, error)

	ListByTransaction(ctx context.Context, txnID uuid.UUID) ([]*models.LedgerEvent, error)
}

// RetryRepo defines the interface for retry bookkeeping.
type RetryRepo interface {
	UpsertRetry(ctx context.Context, record *models.RetryRecord) error
	GetRetry(ctx context.Context, txnID uuid.UUID) (*models.RetryRecord, error)
	FinalizeRetry(ctx context.Context, txnID uuid.UUID, outcome models.RetryOutcome) error
}

// WalletStore is the slice of the wallet service the settlement engine
// drives balances through.
type WalletStore interface {
	GetWallet(ctx context.Context, walletID uuid.UUID) (*models.Wallet, error)
	GetBalance(ctx context.Context, walletID uuid.UUID, currency string) (decimal.Decimal, error)
	Credit(ctx context.Context, walletID uuid.UUID, currency string, amount decimal.Decimal) error
	Debit(ctx context.Context, walletID uuid.UUID, currency string, amount decimal.Decimal) error
	Transfer(ctx context.Context, senderID uuid.UUID, sourceCurrency string, debitAmount decimal.Decimal,
		recipientID uuid.UUID, targetCurrency string, creditAmount decimal.Decimal) error
}

// PoolStore is the slice of the liquidity pool store used by bank-to-bank
// settlement.
type PoolStore interface {
	GetPool(ctx context.Context, currency string) (*models.LiquidityPool, error)
	DebitPool(ctx context.Context, currency string, amount decimal.Decimal) (*models.LiquidityPool, error)
	CreditPool(ctx context.Context, currency string, amount decimal.Decimal) (*models.LiquidityPool, error)
}

// PoolLocker serializes bank-to-bank settlement legs per currency. Only one
// in-flight pool mutation per currency is allowed at a time.
type PoolLocker interface {
	// AcquirePoolLock takes the per-currency lock; returns false when
	// another settlement holds it.
	AcquirePoolLock(ctx context.Context, currency string) (bool, error)
	ReleasePoolLock(ctx context.Context, currency string) error
}

// LimitsStore tracks per-wallet daily transfer volume, denominated in the
// internal bridge unit, for the optimistic validator's limit checks.
type LimitsStore interface {
	// AddDailyVolume adds to today's counter and returns the new total.
	AddDailyVolume(ctx context.Context, walletID uuid.UUID, amount decimal.Decimal) (decimal.Decimal, error)
	GetDailyVolume(ctx context.Context, walletID uuid.UUID) (decimal.Decimal, error)
}
