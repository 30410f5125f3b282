package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/summer-project-team/crossbridge/internal/pkg/constants"
	"github.com/summer-project-team/crossbridge/internal/pkg/logger"
	"github.com/summer-project-team/crossbridge/internal/pkg/models"
)

// ScheduleRetry records a retry attempt and enqueues a deferred re-delivery
// on the queue. A transaction past its attempt budget is finalized with
// MaxRetriesExceeded and never re-enqueued. Staleness-triggered calls find
// the transaction still in processing and park it as failed first; the
// compare-and-set transition makes a doubled sweep harmless.
func (uc *SettlementUC) ScheduleRetry(ctx context.Context, id uuid.UUID, reason string, trigger models.RetryTrigger) error {
	txn, err := uc.txnRepo.GetTransaction(ctx, id)
	if err != nil {
		return err
	}

	if txn.Status == models.StatusProcessing {
		if err := uc.transition(ctx, txn, models.StatusProcessing, models.StatusFailed, models.EventFailed, map[string]interface{}{
			"reason":  reason,
			"trigger": string(trigger),
		}, reason); err != nil {
			return err
		}
	}
	if txn.Status != models.StatusFailed {
		return &models.IllegalTransitionError{From: txn.Status, To: models.StatusRetryScheduled}
	}

	attempt, err := uc.txnRepo.IncrementRetryCount(ctx, id)
	if err != nil {
		return err
	}

	if attempt > uc.cfg.Settlement.MaxRetryAttempts {
		if err := uc.retryRepo.FinalizeRetry(ctx, id, models.OutcomeExhausted); err != nil && !errors.Is(err, models.ErrTransactionNotFound) {
			logger.Warn("failed to finalize retry record",
				logger.String("transaction_id", id.String()),
				logger.Err(err))
		}

		// Stamp the durable record: the row's failure_reason names the
		// exhaustion, not the last transient failure, and the ledger gets
		// the terminal event.
		exhausted := models.ErrMaxRetriesExceeded.Error()
		if err := uc.txnRepo.UpdateStatus(ctx, id, models.StatusFailed, models.StatusFailed, &exhausted); err != nil {
			logger.Warn("failed to record exhaustion reason",
				logger.String("transaction_id", id.String()),
				logger.Err(err))
		} else {
			txn.FailureReason = &exhausted
		}
		if _, err := uc.ledgerRepo.Append(ctx, id, models.EventRetryExhausted, map[string]interface{}{
			"attempts":     attempt - 1,
			"last_failure": reason,
		}); err != nil {
			logger.Warn("failed to record exhaustion event",
				logger.String("transaction_id", id.String()),
				logger.Err(err))
		}

		logger.Error("retry budget exhausted",
			logger.String("transaction_id", id.String()),
			logger.String("reference", txn.Reference),
			logger.Int("attempts", attempt-1),
			logger.String("last_failure", reason))

		uc.publish(ctx, constants.SubjectTransactionFailed, txn, models.ErrMaxRetriesExceeded.Error())
		return models.ErrMaxRetriesExceeded
	}

	delay := uc.backoff(attempt)
	next := time.Now().UTC().Add(delay)

	if err := uc.transition(ctx, txn, models.StatusFailed, models.StatusRetryScheduled, models.EventRetryScheduled, map[string]interface{}{
		"attempt":         attempt,
		"next_attempt_at": next.Format(time.RFC3339),
		"trigger":         string(trigger),
	}, ""); err != nil {
		return err
	}

	now := time.Now().UTC()
	record := &models.RetryRecord{
		TransactionID: id,
		AttemptCount:  attempt,
		NextAttemptAt: next,
		LastFailure:   reason,
		Trigger:       trigger,
		Outcome:       models.OutcomePending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.retryRepo.UpsertRetry(ctx, record); err != nil {
		return err
	}

	msg := models.RetryMessage{
		TransactionID: id,
		Attempt:       attempt,
		Reason:        reason,
		Trigger:       trigger,
		ScheduledAt:   next,
	}
	if err := uc.retryQueue.PublishRetryDeferred(msg, delay); err != nil {
		return err
	}

	logger.Info("retry scheduled",
		logger.String("transaction_id", id.String()),
		logger.Int("attempt", attempt),
		logger.Duration("delay", delay),
		logger.String("trigger", string(trigger)))
	return nil
}

// HandleRetryMessage re-drives a transaction when its deferred retry
// message becomes due. Returning nil acknowledges the message; redelivery
// is driven by ScheduleRetry, not by the broker's own requeueing.
func (uc *SettlementUC) HandleRetryMessage(msg *models.RetryMessage) error {
	ctx := context.Background()

	txn, err := uc.txnRepo.GetTransaction(ctx, msg.TransactionID)
	if err != nil {
		if errors.Is(err, models.ErrTransactionNotFound) {
			logger.Warn("retry message for unknown transaction dropped",
				logger.String("transaction_id", msg.TransactionID.String()))
			return nil
		}
		return err
	}

	switch txn.Status {
	case models.StatusCompleted, models.StatusRefunded:
		// Another path already settled it.
		uc.finalizeRetry(ctx, txn.ID, models.OutcomeSucceeded)
		return nil
	case models.StatusCancelled, models.StatusNeedsReconciliation:
		uc.finalizeRetry(ctx, txn.ID, models.OutcomeExhausted)
		return nil
	case models.StatusRetryScheduled:
	default:
		logger.Warn("retry message ignored for unexpected status",
			logger.String("transaction_id", txn.ID.String()),
			logger.String("status", string(txn.Status)))
		return nil
	}

	if _, err := uc.Process(ctx, txn.ID); err != nil {
		// A racing worker moved it first; the message is spent.
		if models.IsIllegalTransition(err) {
			return nil
		}
		return err
	}

	if _, err := uc.Complete(ctx, txn.ID); err != nil {
		if isRecoverable(err) {
			return uc.scheduleOrExhaust(ctx, txn.ID, err)
		}
		uc.finalizeRetry(ctx, txn.ID, models.OutcomeExhausted)
		return nil
	}

	uc.finalizeRetry(ctx, txn.ID, models.OutcomeSucceeded)
	return nil
}

// SweepStale finds transactions stuck in processing past the staleness
// window and schedules them for retry. Safe to run concurrently: the
// compare-and-set status transition lets only one sweep win per
// transaction.
func (uc *SettlementUC) SweepStale(ctx context.Context) (int, error) {
	cutoff := time.Now().UTC().Add(-time.Duration(uc.cfg.Settlement.StalenessWindowSec) * time.Second)

	stale, err := uc.txnRepo.ListStaleProcessing(ctx, cutoff, 100)
	if err != nil {
		return 0, err
	}

	swept := 0
	for _, txn := range stale {
		err := uc.ScheduleRetry(ctx, txn.ID, "processing exceeded staleness window", models.TriggerStaleness)
		switch {
		case err == nil:
			swept++
		case models.IsIllegalTransition(err):
			// Lost the race to another sweep or worker.
		case errors.Is(err, models.ErrMaxRetriesExceeded):
			swept++
		default:
			logger.Error("failed to sweep stale transaction",
				logger.String("transaction_id", txn.ID.String()),
				logger.Err(err))
		}
	}

	if swept > 0 {
		logger.Info("stale transactions swept", logger.Int("count", swept))
	}
	return swept, nil
}

// RunSweeper drives SweepStale on the configured interval until the
// context is cancelled.
func (uc *SettlementUC) RunSweeper(ctx context.Context) {
	interval := time.Duration(uc.cfg.Settlement.SweepIntervalSec) * time.Second
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := uc.SweepStale(ctx); err != nil {
				logger.Error("stale sweep failed", logger.Err(err))
			}
		}
	}
}

// backoff computes the deferred delivery delay: attempt times the base
// interval, capped at the ceiling.
func (uc *SettlementUC) backoff(attempt int) time.Duration {
	base := time.Duration(uc.cfg.Settlement.RetryBaseIntervalSec) * time.Second
	max := time.Duration(uc.cfg.Settlement.RetryMaxIntervalSec) * time.Second

	delay := time.Duration(attempt) * base
	if delay > max {
		delay = max
	}
	return delay
}

// GetRetryRecord returns the retry bookkeeping for a transaction
func (uc *SettlementUC) GetRetryRecord(ctx context.Context, id uuid.UUID) (*models.RetryRecord, error) {
	return uc.retryRepo.GetRetry(ctx, id)
}

func (uc *SettlementUC) scheduleOrExhaust(ctx context.Context, id uuid.UUID, cause error) error {
	err := uc.ScheduleRetry(ctx, id, cause.Error(), models.TriggerFailure)
	if err == nil || errors.Is(err, models.ErrMaxRetriesExceeded) {
		return nil
	}
	return err
}

func (uc *SettlementUC) finalizeRetry(ctx context.Context, id uuid.UUID, outcome models.RetryOutcome) {
	if err := uc.retryRepo.FinalizeRetry(ctx, id, outcome); err != nil && !errors.Is(err, models.ErrTransactionNotFound) {
		logger.Warn("failed to finalize retry record",
			logger.String("transaction_id", id.String()),
			logger.Err(err))
	}
}

// isRecoverable classifies a settlement failure. Business rule violations
// and spec errors fail the same way on every attempt and are not retried;
// infrastructure and liquidity errors may clear up.
func isRecoverable(err error) bool {
	switch {
	case errors.Is(err, models.ErrInsufficientFunds),
		errors.Is(err, models.ErrInvalidSpec),
		errors.Is(err, models.ErrValidationFailed),
		errors.Is(err, models.ErrWalletNotFound),
		errors.Is(err, models.ErrTransactionNotFound),
		errors.Is(err, models.ErrMaxRetriesExceeded),
		errors.Is(err, models.ErrExternalSettlementFailed),
		models.IsIllegalTransition(err):
		return false
	}
	return true
}
