package models

import (
	"time"

	"github.com/google/uuid"
)

// RetryTrigger records what caused a retry to be scheduled.
type RetryTrigger string

const (
	TriggerFailure   RetryTrigger = "failure"   // recoverable settlement failure
	TriggerStaleness RetryTrigger = "staleness" // stuck in processing past the window
	TriggerManual    RetryTrigger = "manual"    // ops-requested re-drive
)

// RetryOutcome is the final disposition of a retry record.
type RetryOutcome string

const (
	OutcomePending   RetryOutcome = "pending"
	OutcomeSucceeded RetryOutcome = "succeeded"
	OutcomeExhausted RetryOutcome = "exhausted"
)

// RetryRecord tracks bounded re-delivery of a failed transaction.
// Finalized when the transaction reaches a terminal state or the attempt
// budget is exhausted.
type RetryRecord struct {
	TransactionID uuid.UUID    `json:"transaction_id" db:"transaction_id"`
	AttemptCount  int          `json:"attempt_count" db:"attempt_count"`
	NextAttemptAt time.Time    `json:"next_attempt_at" db:"next_attempt_at"`
	LastFailure   string       `json:"last_failure" db:"last_failure"`
	Trigger       RetryTrigger `json:"trigger" db:"trigger"`
	Outcome       RetryOutcome `json:"outcome" db:"outcome"`
	CreatedAt     time.Time    `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at" db:"updated_at"`
}

// RetryMessage is the NSQ payload carried by the deferred retry queue.
type RetryMessage struct {
	TransactionID uuid.UUID    `json:"transaction_id"`
	Attempt       int          `json:"attempt"`
	Reason        string       `json:"reason"`
	Trigger       RetryTrigger `json:"trigger"`
	ScheduledAt   time.Time    `json:"scheduled_at"`
}
