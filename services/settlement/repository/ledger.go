package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/summer-project-team/crossbridge/internal/pkg/models"
)

// LedgerRepo is the PostgreSQL implementation of the append-only ledger
// event log. Rows are write-once: there is no update or delete path.
type LedgerRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewLedgerRepo creates a new ledger event repository
func NewLedgerRepo(cfg *models.Config, db *sqlx.DB) *LedgerRepo {
	return &LedgerRepo{
		cfg: cfg,
		db:  db,
	}
}

// Append writes the next event for a transaction. The sequence number is
// assigned under the transaction's row lock so two concurrent appends for
// the same transaction cannot claim the same slot.
func (r *LedgerRepo) Append(ctx context.Context, txnID uuid.UUID, eventType models.LedgerEventType, payload map[string]interface{}) (*models.LedgerEvent, error) {
	var payloadBytes []byte
	if payload != nil {
		var err error
		payloadBytes, err = json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal event payload: %w", err)
		}
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	// Serialize appends per transaction on the transactions row.
	var exists bool
	err = tx.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM transactions WHERE id = $1 FOR UPDATE)`,
		txnID,
	).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("failed to lock transaction row: %w", err)
	}
	if !exists {
		return nil, models.ErrTransactionNotFound
	}

	event := &models.LedgerEvent{
		TransactionID: txnID,
		EventType:     eventType,
		Payload:       payload,
		CreatedAt:     time.Now().UTC(),
	}

	query := `
		INSERT INTO ledger_events (transaction_id, seq, event_type, payload, created_at)
		VALUES (
			$1,
			(SELECT COALESCE(MAX(seq), 0) + 1 FROM ledger_events WHERE transaction_id = $1),
			$2, $3, $4
		)
		RETURNING id, seq
	`
	err = tx.QueryRowContext(ctx, query, txnID, eventType, payloadBytes, event.CreatedAt).
		Scan(&event.ID, &event.Seq)
	if err != nil {
		return nil, fmt.Errorf("failed to append ledger event: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit ledger event: %w", err)
	}
	return event, nil
}

// HasEvent reports whether an event of the given type exists for the
// transaction. This is the idempotency guard used before any repeated
// state-mutating operation.
func (r *LedgerRepo) HasEvent(ctx context.Context, txnID uuid.UUID, eventType models.LedgerEventType) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM ledger_events WHERE transaction_id = $1 AND event_type = $2)`,
		txnID, eventType,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check ledger event: %w", err)
	}
	return exists, nil
}

// ListByTransaction returns all events for a transaction in sequence order
func (r *LedgerRepo) ListByTransaction(ctx context.Context, txnID uuid.UUID) ([]*models.LedgerEvent, error) {
	query := `
		SELECT id, transaction_id, seq, event_type, payload, created_at
		FROM ledger_events
		WHERE transaction_id = $1
		ORDER BY seq ASC
	`
	rows, err := r.db.QueryContext(ctx, query, txnID)
	if err != nil {
		return nil, fmt.Errorf("failed to list ledger events: %w", err)
	}
	defer rows.Close()

	var events []*models.LedgerEvent
	for rows.Next() {
		var event models.LedgerEvent
		var payloadBytes []byte
		if err := rows.Scan(&event.ID, &event.TransactionID, &event.Seq, &event.EventType, &payloadBytes, &event.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan ledger event: %w", err)
		}
		if len(payloadBytes) > 0 {
			if err := json.Unmarshal(payloadBytes, &event.Payload); err != nil {
				return nil, fmt.Errorf("failed to unmarshal event payload: %w", err)
			}
		}
		events = append(events, &event)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return events, nil
}
