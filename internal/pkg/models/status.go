package models

// TransactionStatus is the canonical lifecycle state of a transaction.
// Transitions are only legal along the table below; everything else is
// rejected with an IllegalTransitionError.
type TransactionStatus string

const (
	StatusInitiated      TransactionStatus = "initiated"
	StatusProcessing     TransactionStatus = "processing"
	StatusCompleted      TransactionStatus = "completed"
	StatusFailed         TransactionStatus = "failed"
	StatusCancelled      TransactionStatus = "cancelled"
	StatusRetryScheduled TransactionStatus = "retry_scheduled"
	StatusRefunded       TransactionStatus = "refunded"

	// StatusNeedsReconciliation marks a bank-to-bank settlement that failed
	// mid-saga. Already-applied pool movements are not rolled back
	// automatically; an operator drives the compensation.
	StatusNeedsReconciliation TransactionStatus = "needs_manual_reconciliation"
)

// validTransitions maps each status to the set of statuses it may move to.
var validTransitions = map[TransactionStatus][]TransactionStatus{
	StatusInitiated:      {StatusProcessing, StatusFailed, StatusCancelled},
	StatusProcessing:     {StatusCompleted, StatusFailed, StatusCancelled, StatusNeedsReconciliation},
	StatusFailed:         {StatusRetryScheduled},
	StatusRetryScheduled: {StatusProcessing, StatusFailed},
	StatusCompleted:      {StatusRefunded},

	// Terminal states.
	StatusCancelled:           {},
	StatusRefunded:            {},
	StatusNeedsReconciliation: {},
}

// IsValid reports whether s is a known status.
func (s TransactionStatus) IsValid() bool {
	_, ok := validTransitions[s]
	return ok
}

// IsTerminal reports whether no further transition is possible from s,
// ignoring the refund path which is externally triggered only.
func (s TransactionStatus) IsTerminal() bool {
	switch s {
	case StatusCancelled, StatusRefunded, StatusCompleted, StatusNeedsReconciliation:
		return true
	}
	return false
}

// CanTransition reports whether moving from -> to is legal.
func CanTransition(from, to TransactionStatus) bool {
	for _, next := range validTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// ValidateTransition returns an IllegalTransitionError if moving from -> to
// is not in the transition table.
func ValidateTransition(from, to TransactionStatus) error {
	if !CanTransition(from, to) {
		return &IllegalTransitionError{From: from, To: to}
	}
	return nil
}
