package models

import (
	"time"

	"github.com/google/uuid"
)

// LedgerEventType classifies a ledger event. One event is appended per
// state transition a transaction passes through.
type LedgerEventType string

const (
	EventInitiated      LedgerEventType = "initiated"
	EventProcessing     LedgerEventType = "processing"
	EventCompleted      LedgerEventType = "completed"
	EventFailed         LedgerEventType = "failed"
	EventCancelled      LedgerEventType = "cancelled"
	EventRefunded       LedgerEventType = "refunded"
	EventRetryScheduled LedgerEventType = "retry_scheduled"
	EventRetryExhausted LedgerEventType = "retry_exhausted"
	EventPreCommitted   LedgerEventType = "pre_committed"

	// EventValidationFailed records an optimistic-path rejection the moment
	// the validator returns, before the compensation is attempted. A
	// re-drive of a transaction carrying this event must compensate and
	// fail, never confirm.
	EventValidationFailed LedgerEventType = "validation_failed"

	EventRollback LedgerEventType = "rollback"

	// Bank-to-bank saga steps, one event per applied step.
	EventBankPoolDebit    LedgerEventType = "bank_pool_debit"
	EventBankBridgeMoved  LedgerEventType = "bank_bridge_moved"
	EventBankPoolCredit   LedgerEventType = "bank_pool_credit"
	EventBankRailRecorded LedgerEventType = "bank_rail_recorded"

	EventNeedsReconciliation LedgerEventType = "needs_manual_reconciliation"
)

// LedgerEvent is an immutable append-only fact about a transaction.
// Events are ordered by a monotonically increasing sequence per transaction
// and are never mutated or deleted.
type LedgerEvent struct {
	ID            int64                  `json:"id" db:"id"`
	TransactionID uuid.UUID              `json:"transaction_id" db:"transaction_id"`
	Seq           int                    `json:"seq" db:"seq"`
	EventType     LedgerEventType        `json:"event_type" db:"event_type"`
	Payload       map[string]interface{} `json:"payload,omitempty" db:"-"`
	CreatedAt     time.Time              `json:"created_at" db:"created_at"`
}
