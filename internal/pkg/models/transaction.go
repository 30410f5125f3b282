package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType identifies the settlement behavior of a transaction.
type TransactionType string

const (
	TypeTransfer   TransactionType = "transfer"
	TypeDeposit    TransactionType = "deposit"
	TypeWithdrawal TransactionType = "withdrawal"
	TypeMint       TransactionType = "mint"
	TypeBurn       TransactionType = "burn"
	TypeBankToBank TransactionType = "bank_to_bank"
)

// IsValid reports whether t is a known transaction type.
func (t TransactionType) IsValid() bool {
	switch t {
	case TypeTransfer, TypeDeposit, TypeWithdrawal, TypeMint, TypeBurn, TypeBankToBank:
		return true
	}
	return false
}

// Transaction is the central ledger record for any money movement.
// (SourceCurrency, Amount, ExchangeRate) are immutable once the transaction
// leaves the initiated state. Transactions are never deleted.
type Transaction struct {
	ID                uuid.UUID         `json:"id" db:"id"`
	Reference         string            `json:"reference" db:"reference"`
	SenderWalletID    *uuid.UUID        `json:"sender_wallet_id,omitempty" db:"sender_wallet_id"`
	RecipientWalletID *uuid.UUID        `json:"recipient_wallet_id,omitempty" db:"recipient_wallet_id"`
	Type              TransactionType   `json:"type" db:"type"`
	Status            TransactionStatus `json:"status" db:"status"`
	Amount            decimal.Decimal   `json:"amount" db:"amount"`
	Fee               decimal.Decimal   `json:"fee" db:"fee"`
	SourceCurrency    string            `json:"source_currency" db:"source_currency"`
	TargetCurrency    string            `json:"target_currency" db:"target_currency"`
	ExchangeRate      decimal.Decimal   `json:"exchange_rate" db:"exchange_rate"`

	// CBUSDAmount is the bridge-unit value of the transaction, fixed at
	// creation (amount x exchange rate into the internal currency).
	CBUSDAmount decimal.Decimal `json:"cbusd_amount" db:"cbusd_amount"`

	// PreCommitted is set when the optimistic processor applied the ledger
	// mutation ahead of validation.
	PreCommitted bool `json:"pre_committed" db:"pre_committed"`

	// SagaStep records the last successfully applied bank-to-bank step
	// (0 when unused). On mid-saga failure the operator reads this to drive
	// manual compensation.
	SagaStep int `json:"saga_step" db:"saga_step"`

	FailureReason *string `json:"failure_reason,omitempty" db:"failure_reason"`
	RetryCount    int     `json:"retry_count" db:"retry_count"`

	// Metadata is an opaque bag for caller context (quote ids, narration).
	// Engine-owned fields above never live in here.
	Metadata map[string]interface{} `json:"metadata,omitempty" db:"-"`

	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at" db:"updated_at"`
	ProcessingAt *time.Time `json:"processing_at,omitempty" db:"processing_at"`
	CompletedAt  *time.Time `json:"completed_at,omitempty" db:"completed_at"`
	FailedAt     *time.Time `json:"failed_at,omitempty" db:"failed_at"`
	CancelledAt  *time.Time `json:"cancelled_at,omitempty" db:"cancelled_at"`
	RefundedAt   *time.Time `json:"refunded_at,omitempty" db:"refunded_at"`
}

// TotalDebit returns the amount the sender is charged: amount plus fee.
func (t *Transaction) TotalDebit() decimal.Decimal {
	return t.Amount.Add(t.Fee)
}

// TransactionSpec is the caller-facing request to create a transaction.
type TransactionSpec struct {
	Type              TransactionType        `json:"type"`
	SenderWalletID    *uuid.UUID             `json:"sender_wallet_id,omitempty"`
	RecipientWalletID *uuid.UUID             `json:"recipient_wallet_id,omitempty"`
	Amount            decimal.Decimal        `json:"amount"`
	SourceCurrency    string                 `json:"source_currency"`
	TargetCurrency    string                 `json:"target_currency"`
	Metadata          map[string]interface{} `json:"metadata,omitempty"`
}
