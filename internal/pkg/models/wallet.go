package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Wallet is owned by exactly one user and holds one balance row per
// currency, including the internal bridge unit. Wallets are never deleted,
// only soft-retired with the owning user.
type Wallet struct {
	ID        uuid.UUID `json:"id" db:"id"`
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	IsActive  bool      `json:"is_active" db:"is_active"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`

	Balances []WalletBalance `json:"balances,omitempty" db:"-"`
}

// WalletBalance is a single (wallet, currency) balance row.
// The balance is never negative after any committed operation.
type WalletBalance struct {
	WalletID  uuid.UUID       `json:"wallet_id" db:"wallet_id"`
	Currency  string          `json:"currency" db:"currency"`
	Balance   decimal.Decimal `json:"balance" db:"balance"`
	UpdatedAt time.Time       `json:"updated_at" db:"updated_at"`
}
