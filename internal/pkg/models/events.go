package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionEvent is the best-effort notification published after every
// status change. Delivery failures never roll back a committed transaction.
type TransactionEvent struct {
	TransactionID uuid.UUID         `json:"transaction_id"`
	Reference     string            `json:"reference"`
	Type          TransactionType   `json:"type"`
	Status        TransactionStatus `json:"status"`
	Amount        decimal.Decimal   `json:"amount"`
	Currency      string            `json:"currency"`
	Reason        string            `json:"reason,omitempty"`
	Timestamp     time.Time         `json:"timestamp"`
}

// PoolAlertEvent is published when a liquidity pool leaves its operating band.
type PoolAlertEvent struct {
	Currency     string          `json:"currency"`
	Balance      decimal.Decimal `json:"balance"`
	MinThreshold decimal.Decimal `json:"min_threshold"`
	MaxThreshold decimal.Decimal `json:"max_threshold"`
	Timestamp    time.Time       `json:"timestamp"`
}
