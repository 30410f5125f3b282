package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/summer-project-team/crossbridge/internal/pkg/models"
)

// TransactionRepo is the PostgreSQL transaction store. Status changes are
// compare-and-set: the UPDATE names the status it expects to replace, so a
// worker that lost the race sees zero rows affected instead of clobbering
// the winner's transition.
type TransactionRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewTransactionRepo creates a new transaction repository
func NewTransactionRepo(cfg *models.Config, db *sqlx.DB) *TransactionRepo {
	return &TransactionRepo{
		cfg: cfg,
		db:  db,
	}
}

const transactionColumns = `
	id, reference, sender_wallet_id, recipient_wallet_id, type, status,
	amount, fee, source_currency, target_currency, exchange_rate, cbusd_amount,
	pre_committed, saga_step, failure_reason, retry_count, metadata,
	created_at, updated_at, processing_at, completed_at, failed_at, cancelled_at, refunded_at
`

// CreateTransaction inserts a new transaction record
func (r *TransactionRepo) CreateTransaction(ctx context.Context, txn *models.Transaction) error {
	metadata, err := marshalMetadata(txn.Metadata)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO transactions (
			id, reference, sender_wallet_id, recipient_wallet_id, type, status,
			amount, fee, source_currency, target_currency, exchange_rate, cbusd_amount,
			pre_committed, saga_step, failure_reason, retry_count, metadata,
			created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19
		)
	`
	_, err = r.db.ExecContext(ctx, query,
		txn.ID, txn.Reference, txn.SenderWalletID, txn.RecipientWalletID, txn.Type, txn.Status,
		txn.Amount, txn.Fee, txn.SourceCurrency, txn.TargetCurrency, txn.ExchangeRate, txn.CBUSDAmount,
		txn.PreCommitted, txn.SagaStep, txn.FailureReason, txn.RetryCount, metadata,
		txn.CreatedAt, txn.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

// GetTransaction retrieves a transaction by id
func (r *TransactionRepo) GetTransaction(ctx context.Context, id uuid.UUID) (*models.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE id = $1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

// GetByReference retrieves a transaction by its human-readable reference
func (r *TransactionRepo) GetByReference(ctx context.Context, reference string) (*models.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE reference = $1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, reference))
}

// UpdateStatus moves a transaction between statuses with compare-and-set
// semantics and stamps the phase timestamp for the target status.
func (r *TransactionRepo) UpdateStatus(ctx context.Context, id uuid.UUID, from, to models.TransactionStatus, failureReason *string) error {
	now := time.Now().UTC()

	query := `
		UPDATE transactions
		SET status = $1, failure_reason = COALESCE($2, failure_reason), updated_at = $3` + phaseTimestampClause(to) + `
		WHERE id = $4 AND status = $5
	`
	result, err := r.db.ExecContext(ctx, query, to, failureReason, now, id, from)
	if err != nil {
		return fmt.Errorf("failed to update transaction status: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		// Either the transaction does not exist or its status moved under
		// us. Fetch the row to report which.
		current, getErr := r.GetTransaction(ctx, id)
		if getErr != nil {
			return getErr
		}
		return &models.IllegalTransitionError{From: current.Status, To: to}
	}
	return nil
}

// SetPreCommitted flags the optimistic pre-commit marker
func (r *TransactionRepo) SetPreCommitted(ctx context.Context, id uuid.UUID, preCommitted bool) error {
	return r.setFlag(ctx, id, `pre_committed`, preCommitted)
}

// SetSagaStep records the last successfully applied bank-to-bank step
func (r *TransactionRepo) SetSagaStep(ctx context.Context, id uuid.UUID, step int) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE transactions SET saga_step = $1, updated_at = $2 WHERE id = $3`,
		step, time.Now().UTC(), id,
	)
	if err != nil {
		return fmt.Errorf("failed to set saga step: %w", err)
	}
	return requireAffected(result)
}

// IncrementRetryCount bumps the attempt counter and returns the new value
func (r *TransactionRepo) IncrementRetryCount(ctx context.Context, id uuid.UUID) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`UPDATE transactions SET retry_count = retry_count + 1, updated_at = $1 WHERE id = $2 RETURNING retry_count`,
		time.Now().UTC(), id,
	).Scan(&count)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, models.ErrTransactionNotFound
		}
		return 0, fmt.Errorf("failed to increment retry count: %w", err)
	}
	return count, nil
}

// ListStaleProcessing returns transactions stuck in processing since before
// the cutoff, oldest first
func (r *TransactionRepo) ListStaleProcessing(ctx context.Context, cutoff time.Time, limit int) ([]*models.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE status = $1 AND processing_at < $2
		ORDER BY processing_at ASC
		LIMIT $3
	`
	return r.scanMany(ctx, query, models.StatusProcessing, cutoff, limit)
}

// ListByWallet returns transactions where the wallet is sender or recipient,
// newest first
func (r *TransactionRepo) ListByWallet(ctx context.Context, walletID uuid.UUID, limit, offset int) ([]*models.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE sender_wallet_id = $1 OR recipient_wallet_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`
	return r.scanMany(ctx, query, walletID, limit, offset)
}

func (r *TransactionRepo) setFlag(ctx context.Context, id uuid.UUID, column string, value bool) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE transactions SET `+column+` = $1, updated_at = $2 WHERE id = $3`,
		value, time.Now().UTC(), id,
	)
	if err != nil {
		return fmt.Errorf("failed to update transaction flag: %w", err)
	}
	return requireAffected(result)
}

func (r *TransactionRepo) scanOne(row *sql.Row) (*models.Transaction, error) {
	txn, err := scanTransaction(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return txn, nil
}

func (r *TransactionRepo) scanMany(ctx context.Context, query string, args ...interface{}) ([]*models.Transaction, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	var txns []*models.Transaction
	for rows.Next() {
		txn, err := scanTransaction(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		txns = append(txns, txn)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return txns, nil
}

func scanTransaction(scan func(dest ...interface{}) error) (*models.Transaction, error) {
	var txn models.Transaction
	var metadata []byte

	err := scan(
		&txn.ID, &txn.Reference, &txn.SenderWalletID, &txn.RecipientWalletID, &txn.Type, &txn.Status,
		&txn.Amount, &txn.Fee, &txn.SourceCurrency, &txn.TargetCurrency, &txn.ExchangeRate, &txn.CBUSDAmount,
		&txn.PreCommitted, &txn.SagaStep, &txn.FailureReason, &txn.RetryCount, &metadata,
		&txn.CreatedAt, &txn.UpdatedAt, &txn.ProcessingAt, &txn.CompletedAt, &txn.FailedAt, &txn.CancelledAt, &txn.RefundedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(metadata) > 0 {
		if err := json.Unmarshal(metadata, &txn.Metadata); err != nil {
			return nil, fmt.Errorf("failed to unmarshal transaction metadata: %w", err)
		}
	}
	return &txn, nil
}

// phaseTimestampClause returns the extra SET fragment stamping the phase
// timestamp for the target status.
func phaseTimestampClause(to models.TransactionStatus) string {
	switch to {
	case models.StatusProcessing:
		return `, processing_at = $3`
	case models.StatusCompleted:
		return `, completed_at = $3`
	case models.StatusFailed:
		return `, failed_at = $3`
	case models.StatusCancelled:
		return `, cancelled_at = $3`
	case models.StatusRefunded:
		return `, refunded_at = $3`
	}
	return ``
}

func requireAffected(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return models.ErrTransactionNotFound
	}
	return nil
}

func marshalMetadata(metadata map[string]interface{}) ([]byte, error) {
	if metadata == nil {
		return nil, nil
	}
	data, err := json.Marshal(metadata)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal transaction metadata: %w", err)
	}
	return data, nil
}
