package settlement

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/summer-project-team/crossbridge/services/settlement SettlementUC,RateOracle

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/summer-project-team/crossbridge/internal/pkg/models"
)

// SettlementUC defines the interface for the settlement engine. Create,
// Process and Complete are separate checkpoints so a crash between any two
// leaves a recoverable record rather than a half-applied mutation.
type SettlementUC interface {
	// Create validates a spec, computes fee, rate and bridge amount,
	// assigns a human-readable reference and records the transaction in
	// the initiated state.
	Create(ctx context.Context, spec models.TransactionSpec) (*models.Transaction, error)

	// Process transitions initiated to processing. No wallet mutation
	// happens here; a transaction stuck in processing past the staleness
	// window becomes a retry candidate.
	Process(ctx context.Context, id uuid.UUID) (*models.Transaction, error)

	// Complete performs the money movement for the transaction type and
	// finalizes the status. Completing an already-completed transaction is
	// a no-op success.
	Complete(ctx context.Context, id uuid.UUID) (*models.Transaction, error)

	// Fail finalizes a transaction as failed with the given reason, unless
	// a retry gets scheduled instead.
	Fail(ctx context.Context, id uuid.UUID, reason string) (*models.Transaction, error)

	// Cancel aborts a transaction still in initiated or processing. If the
	// optimistic path already moved funds, the movement is compensated
	// before the transaction is marked cancelled.
	Cancel(ctx context.Context, id uuid.UUID, reason string) (*models.Transaction, error)

	// Refund reverses a completed transaction with a fresh compensating
	// transaction and marks the original refunded.
	Refund(ctx context.Context, id uuid.UUID) (*models.Transaction, error)

	// ProcessWithPreCommit creates the transaction and runs the optimistic
	// path: the balance mutation is applied concurrently with validation,
	// and compensated with the exact applied amount if validation rejects.
	ProcessWithPreCommit(ctx context.Context, spec models.TransactionSpec) (*models.Transaction, error)

	// ScheduleRetry records a retry attempt and enqueues a deferred
	// re-delivery, or finalizes the transaction once the attempt budget is
	// spent.
	ScheduleRetry(ctx context.Context, id uuid.UUID, reason string, trigger models.RetryTrigger) error

	// HandleRetryMessage consumes a deferred retry message from the queue
	// and re-drives the transaction through Process and Complete.
	HandleRetryMessage(msg *models.RetryMessage) error

	// SweepStale finds transactions stuck in processing past the staleness
	// window and schedules them for retry. Returns how many were swept.
	SweepStale(ctx context.Context) (int, error)

	GetTransaction(ctx context.Context, id uuid.UUID) (*models.Transaction, error)
	GetByReference(ctx context.Context, reference string) (*models.Transaction, error)
	ListByWallet(ctx context.Context, walletID uuid.UUID, limit, offset int) ([]*models.Transaction, error)
	ListLedger(ctx context.Context, txnID uuid.UUID) ([]*models.LedgerEvent, error)

	// GetRetryRecord returns the retry bookkeeping for a transaction.
	GetRetryRecord(ctx context.Context, id uuid.UUID) (*models.RetryRecord, error)

	// GetDailyVolume reports today's settled volume for a wallet in the
	// internal unit of account.
	GetDailyVolume(ctx context.Context, walletID uuid.UUID) (decimal.Decimal, error)
}

// RateOracle quotes conversion rates between currencies. A rate is the
// multiplier applied to a source amount to obtain the target amount. The
// rate attached to a transaction at creation is immutable afterwards.
type RateOracle interface {
	GetRate(ctx context.Context, from, to string) (decimal.Decimal, error)
}
