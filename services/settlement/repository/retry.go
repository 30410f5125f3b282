package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/summer-project-team/crossbridge/internal/pkg/models"
)

// RetryRepo is the PostgreSQL retry record store
type RetryRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewRetryRepo creates a new retry record repository
func NewRetryRepo(cfg *models.Config, db *sqlx.DB) *RetryRepo {
	return &RetryRepo{
		cfg: cfg,
		db:  db,
	}
}

// UpsertRetry inserts or refreshes the retry record for a transaction
func (r *RetryRepo) UpsertRetry(ctx context.Context, record *models.RetryRecord) error {
	query := `
		INSERT INTO retry_records (transaction_id, attempt_count, next_attempt_at, last_failure, trigger, outcome, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (transaction_id)
		DO UPDATE SET
			attempt_count = EXCLUDED.attempt_count,
			next_attempt_at = EXCLUDED.next_attempt_at,
			last_failure = EXCLUDED.last_failure,
			trigger = EXCLUDED.trigger,
			outcome = EXCLUDED.outcome,
			updated_at = EXCLUDED.updated_at
	`
	_, err := r.db.ExecContext(ctx, query,
		record.TransactionID, record.AttemptCount, record.NextAttemptAt,
		record.LastFailure, record.Trigger, record.Outcome,
		record.CreatedAt, record.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert retry record: %w", err)
	}
	return nil
}

// GetRetry retrieves the retry record for a transaction
func (r *RetryRepo) GetRetry(ctx context.Context, txnID uuid.UUID) (*models.RetryRecord, error) {
	query := `
		SELECT transaction_id, attempt_count, next_attempt_at, last_failure, trigger, outcome, created_at, updated_at
		FROM retry_records
		WHERE transaction_id = $1
	`

	var record models.RetryRecord
	err := r.db.QueryRowContext(ctx, query, txnID).Scan(
		&record.TransactionID, &record.AttemptCount, &record.NextAttemptAt,
		&record.LastFailure, &record.Trigger, &record.Outcome,
		&record.CreatedAt, &record.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get retry record: %w", err)
	}
	return &record, nil
}

// FinalizeRetry stamps the terminal outcome on a retry record
func (r *RetryRepo) FinalizeRetry(ctx context.Context, txnID uuid.UUID, outcome models.RetryOutcome) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE retry_records SET outcome = $1, updated_at = $2 WHERE transaction_id = $3`,
		outcome, time.Now().UTC(), txnID,
	)
	if err != nil {
		return fmt.Errorf("failed to finalize retry record: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return models.ErrTransactionNotFound
	}
	return nil
}
