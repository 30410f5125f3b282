package models

import (
	"errors"
	"fmt"
)

// Sentinel errors shared across the wallet store and settlement engine.
// Business errors are surfaced to callers; integrity errors on already-settled
// transactions are absorbed as idempotent no-ops by the engine.
var (
	// ErrInvalidSpec indicates a transaction spec with missing or
	// contradictory fields. Not retryable.
	ErrInvalidSpec = errors.New("invalid transaction spec")

	// ErrInsufficientFunds indicates a debit larger than the available
	// balance. Not retryable automatically.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrWalletNotFound indicates a wallet or currency row that does not exist.
	ErrWalletNotFound = errors.New("wallet not found")

	// ErrTransactionNotFound indicates an unknown transaction id.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrPoolNotFound indicates a liquidity pool with no row for the currency.
	ErrPoolNotFound = errors.New("liquidity pool not found")

	// ErrPoolInsufficient indicates a pool debit that would go negative.
	ErrPoolInsufficient = errors.New("liquidity pool balance insufficient")

	// ErrValidationFailed indicates the optimistic validation branch rejected
	// the transaction; the pre-commit must be compensated.
	ErrValidationFailed = errors.New("validation failed")

	// ErrExternalSettlementFailed indicates a bank-to-bank saga step failure
	// that leaves a manual-compensation breadcrumb.
	ErrExternalSettlementFailed = errors.New("external settlement failed")

	// ErrMaxRetriesExceeded indicates the retry budget is exhausted.
	ErrMaxRetriesExceeded = errors.New("max retries exceeded")
)

// IllegalTransitionError reports a rejected status transition, naming the
// current and attempted states.
type IllegalTransitionError struct {
	From TransactionStatus
	To   TransactionStatus
}

func (e *IllegalTransitionError) Error() string {
	return fmt.Sprintf("illegal transition from %s to %s", e.From, e.To)
}

// IsIllegalTransition reports whether err is an IllegalTransitionError.
func IsIllegalTransition(err error) bool {
	var ite *IllegalTransitionError
	return errors.As(err, &ite)
}
