package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// LiquidityPool is a per-currency reserve used to fund bank-to-bank
// settlement legs. The balance should stay within [MinThreshold, MaxThreshold]
// under normal operation; a breach raises an alert but only a debit that
// would go negative is refused.
type LiquidityPool struct {
	Currency       string          `json:"currency" db:"currency"`
	Balance        decimal.Decimal `json:"balance" db:"balance"`
	TargetBalance  decimal.Decimal `json:"target_balance" db:"target_balance"`
	MinThreshold   decimal.Decimal `json:"min_threshold" db:"min_threshold"`
	MaxThreshold   decimal.Decimal `json:"max_threshold" db:"max_threshold"`
	LastRebalanced *time.Time      `json:"last_rebalanced_at,omitempty" db:"last_rebalanced_at"`
	UpdatedAt      time.Time       `json:"updated_at" db:"updated_at"`
}

// BreachesThreshold reports whether the pool balance has left its
// configured operating band.
func (p *LiquidityPool) BreachesThreshold() bool {
	return p.Balance.LessThan(p.MinThreshold) || p.Balance.GreaterThan(p.MaxThreshold)
}
