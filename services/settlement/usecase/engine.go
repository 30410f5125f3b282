package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/summer-project-team/crossbridge/internal/pkg/constants"
	"github.com/summer-project-team/crossbridge/internal/pkg/logger"
	"github.com/summer-project-team/crossbridge/internal/pkg/models"
	"github.com/summer-project-team/crossbridge/services/settlement"
)

// SettlementUC is the settlement engine. It owns every wallet mutation and
// every transaction status transition; nothing else writes balances.
type SettlementUC struct {
	cfg         *models.Config
	txnRepo     settlement.TransactionRepo
	ledgerRepo  settlement.LedgerRepo
	retryRepo   settlement.RetryRepo
	walletStore settlement.WalletStore
	poolStore   settlement.PoolStore
	poolLocker  settlement.PoolLocker
	limitsStore settlement.LimitsStore
	rateOracle  settlement.RateOracle
	gw          settlement.SettlementGW
	retryQueue  settlement.RetryQueue
}

// NewSettlementUC creates the settlement engine with its injected
// dependencies.
func NewSettlementUC(
	cfg *models.Config,
	txnRepo settlement.TransactionRepo,
	ledgerRepo settlement.LedgerRepo,
	retryRepo settlement.RetryRepo,
	walletStore settlement.WalletStore,
	poolStore settlement.PoolStore,
	poolLocker settlement.PoolLocker,
	limitsStore settlement.LimitsStore,
	rateOracle settlement.RateOracle,
	gw settlement.SettlementGW,
	retryQueue settlement.RetryQueue,
) *SettlementUC {
	return &SettlementUC{
		cfg:         cfg,
		txnRepo:     txnRepo,
		ledgerRepo:  ledgerRepo,
		retryRepo:   retryRepo,
		walletStore: walletStore,
		poolStore:   poolStore,
		poolLocker:  poolLocker,
		limitsStore: limitsStore,
		rateOracle:  rateOracle,
		gw:          gw,
		retryQueue:  retryQueue,
	}
}

// Create validates the spec, attaches rate, fee and bridge amount, and
// records the transaction as initiated.
func (uc *SettlementUC) Create(ctx context.Context, spec models.TransactionSpec) (*models.Transaction, error) {
	if err := uc.validateSpec(ctx, spec); err != nil {
		return nil, err
	}

	sourceCurrency := strings.ToUpper(spec.SourceCurrency)
	targetCurrency := strings.ToUpper(spec.TargetCurrency)
	if targetCurrency == "" {
		targetCurrency = sourceCurrency
	}

	rate := decimal.NewFromInt(1)
	if sourceCurrency != targetCurrency {
		var err error
		rate, err = uc.rateOracle.GetRate(ctx, sourceCurrency, targetCurrency)
		if err != nil {
			return nil, fmt.Errorf("failed to quote exchange rate: %w", err)
		}
	}

	cbusdAmount, err := uc.bridgeAmount(ctx, spec.Amount, sourceCurrency)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	txn := &models.Transaction{
		ID:                uuid.New(),
		SenderWalletID:    spec.SenderWalletID,
		RecipientWalletID: spec.RecipientWalletID,
		Type:              spec.Type,
		Status:            models.StatusInitiated,
		Amount:            spec.Amount,
		Fee:               uc.feeFor(spec.Type, spec.Amount),
		SourceCurrency:    sourceCurrency,
		TargetCurrency:    targetCurrency,
		ExchangeRate:      rate,
		CBUSDAmount:       cbusdAmount,
		Metadata:          spec.Metadata,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	txn.Reference = newReference(txn.ID, now)

	if err := uc.txnRepo.CreateTransaction(ctx, txn); err != nil {
		return nil, err
	}

	if _, err := uc.ledgerRepo.Append(ctx, txn.ID, models.EventInitiated, map[string]interface{}{
		"reference": txn.Reference,
		"type":      string(txn.Type),
		"amount":    txn.Amount.String(),
		"fee":       txn.Fee.String(),
		"rate":      txn.ExchangeRate.String(),
	}); err != nil {
		return nil, err
	}

	logger.Info("transaction created",
		logger.String("transaction_id", txn.ID.String()),
		logger.String("reference", txn.Reference),
		logger.String("type", string(txn.Type)),
		logger.String("amount", txn.Amount.String()))

	uc.publishUpdated(ctx, txn, "")
	return txn, nil
}

// Process transitions initiated (or a scheduled retry) to processing. This
// is a checkpoint only; no balances move here.
func (uc *SettlementUC) Process(ctx context.Context, id uuid.UUID) (*models.Transaction, error) {
	txn, err := uc.txnRepo.GetTransaction(ctx, id)
	if err != nil {
		return nil, err
	}

	from := txn.Status
	if from != models.StatusInitiated && from != models.StatusRetryScheduled {
		return nil, &models.IllegalTransitionError{From: from, To: models.StatusProcessing}
	}

	if err := uc.transition(ctx, txn, from, models.StatusProcessing, models.EventProcessing, nil, ""); err != nil {
		return nil, err
	}
	return txn, nil
}

// Complete performs the money movement for the transaction type and
// finalizes the status. A transaction with a recorded completed event is
// returned unchanged; the ledger guard makes double-credit impossible.
func (uc *SettlementUC) Complete(ctx context.Context, id uuid.UUID) (*models.Transaction, error) {
	txn, err := uc.txnRepo.GetTransaction(ctx, id)
	if err != nil {
		return nil, err
	}

	done, err := uc.ledgerRepo.HasEvent(ctx, id, models.EventCompleted)
	if err != nil {
		return nil, err
	}
	if done {
		logger.Warn("duplicate completion absorbed",
			logger.String("transaction_id", id.String()),
			logger.String("status", string(txn.Status)))
		return txn, nil
	}

	if txn.Status != models.StatusProcessing {
		return nil, &models.IllegalTransitionError{From: txn.Status, To: models.StatusCompleted}
	}

	if err := uc.applyMovement(ctx, txn); err != nil {
		return uc.settleFailure(ctx, txn, err)
	}

	if err := uc.transition(ctx, txn, models.StatusProcessing, models.StatusCompleted, models.EventCompleted, map[string]interface{}{
		"amount":       txn.Amount.String(),
		"fee":          txn.Fee.String(),
		"cbusd_amount": txn.CBUSDAmount.String(),
	}, ""); err != nil {
		// The movement committed but another worker won the status race.
		// Absorbed as a benign race; the ledger guard above keeps the
		// movement single-shot.
		if models.IsIllegalTransition(err) {
			logger.Warn("completion status race absorbed",
				logger.String("transaction_id", id.String()),
				logger.Err(err))
			return uc.txnRepo.GetTransaction(ctx, id)
		}
		return nil, err
	}

	uc.publish(ctx, constants.SubjectTransactionCompleted, txn, "")
	return txn, nil
}

// Fail finalizes a transaction as failed with the given reason.
func (uc *SettlementUC) Fail(ctx context.Context, id uuid.UUID, reason string) (*models.Transaction, error) {
	txn, err := uc.txnRepo.GetTransaction(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := uc.transition(ctx, txn, txn.Status, models.StatusFailed, models.EventFailed, map[string]interface{}{
		"reason": reason,
	}, reason); err != nil {
		return nil, err
	}

	logger.Warn("transaction failed",
		logger.String("transaction_id", id.String()),
		logger.String("reference", txn.Reference),
		logger.String("reason", reason))

	uc.publish(ctx, constants.SubjectTransactionFailed, txn, reason)
	return txn, nil
}

// Cancel aborts a transaction still in initiated or processing. A
// pre-committed mutation from the optimistic path is compensated first.
func (uc *SettlementUC) Cancel(ctx context.Context, id uuid.UUID, reason string) (*models.Transaction, error) {
	txn, err := uc.txnRepo.GetTransaction(ctx, id)
	if err != nil {
		return nil, err
	}

	if txn.Status != models.StatusInitiated && txn.Status != models.StatusProcessing {
		return nil, &models.IllegalTransitionError{From: txn.Status, To: models.StatusCancelled}
	}

	if txn.PreCommitted {
		if err := uc.rollbackPreCommit(ctx, txn); err != nil {
			return nil, err
		}
	}

	if err := uc.transition(ctx, txn, txn.Status, models.StatusCancelled, models.EventCancelled, map[string]interface{}{
		"reason": reason,
	}, reason); err != nil {
		return nil, err
	}

	logger.Info("transaction cancelled",
		logger.String("transaction_id", id.String()),
		logger.String("reason", reason))
	return txn, nil
}

// Refund reverses a completed transaction. The refund is a fresh
// compensating transaction crediting the sender back the principal; the fee
// is not returned. The original moves to refunded.
func (uc *SettlementUC) Refund(ctx context.Context, id uuid.UUID) (*models.Transaction, error) {
	original, err := uc.txnRepo.GetTransaction(ctx, id)
	if err != nil {
		return nil, err
	}
	if original.Status != models.StatusCompleted {
		return nil, &models.IllegalTransitionError{From: original.Status, To: models.StatusRefunded}
	}
	if original.Type != models.TypeTransfer {
		return nil, fmt.Errorf("%w: only transfers are refundable", models.ErrInvalidSpec)
	}

	refund, err := uc.Create(ctx, models.TransactionSpec{
		Type:              models.TypeTransfer,
		SenderWalletID:    original.RecipientWalletID,
		RecipientWalletID: original.SenderWalletID,
		Amount:            original.Amount.Mul(original.ExchangeRate).Round(2),
		SourceCurrency:    original.TargetCurrency,
		TargetCurrency:    original.SourceCurrency,
		Metadata: map[string]interface{}{
			"refund_of": original.ID.String(),
		},
	})
	if err != nil {
		return nil, err
	}

	if _, err := uc.Process(ctx, refund.ID); err != nil {
		return nil, err
	}
	if _, err := uc.Complete(ctx, refund.ID); err != nil {
		return nil, err
	}

	if err := uc.transition(ctx, original, models.StatusCompleted, models.StatusRefunded, models.EventRefunded, map[string]interface{}{
		"refund_transaction_id": refund.ID.String(),
	}, ""); err != nil {
		return nil, err
	}

	logger.Info("transaction refunded",
		logger.String("transaction_id", id.String()),
		logger.String("refund_transaction_id", refund.ID.String()))
	return refund, nil
}

// GetTransaction retrieves a transaction by id
func (uc *SettlementUC) GetTransaction(ctx context.Context, id uuid.UUID) (*models.Transaction, error) {
	return uc.txnRepo.GetTransaction(ctx, id)
}

// GetByReference retrieves a transaction by its human-readable reference
func (uc *SettlementUC) GetByReference(ctx context.Context, reference string) (*models.Transaction, error) {
	return uc.txnRepo.GetByReference(ctx, reference)
}

// ListByWallet returns a wallet's transaction history, newest first
func (uc *SettlementUC) ListByWallet(ctx context.Context, walletID uuid.UUID, limit, offset int) ([]*models.Transaction, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return uc.txnRepo.ListByWallet(ctx, walletID, limit, offset)
}

// ListLedger returns the full event history for a transaction
func (uc *SettlementUC) ListLedger(ctx context.Context, txnID uuid.UUID) ([]*models.LedgerEvent, error) {
	return uc.ledgerRepo.ListByTransaction(ctx, txnID)
}

// GetDailyVolume reports today's settled volume for a wallet in the
// internal unit of account.
func (uc *SettlementUC) GetDailyVolume(ctx context.Context, walletID uuid.UUID) (decimal.Decimal, error) {
	return uc.limitsStore.GetDailyVolume(ctx, walletID)
}

// applyMovement performs the balance mutation for the transaction type. The
// optimistic path already moved funds at pre-commit; those transactions are
// confirmed without a second mutation.
func (uc *SettlementUC) applyMovement(ctx context.Context, txn *models.Transaction) error {
	if txn.PreCommitted {
		rejected, err := uc.ledgerRepo.HasEvent(ctx, txn.ID, models.EventValidationFailed)
		if err != nil {
			return err
		}
		if rejected {
			// The validator rejected this transaction but its compensation
			// never landed. Re-attempt the reversal and surface the
			// rejection so the transaction finalizes as failed.
			if err := uc.rollbackPreCommit(ctx, txn); err != nil {
				return err
			}
			return fmt.Errorf("%w: pre-commit compensated on re-drive", models.ErrValidationFailed)
		}

		applied, err := uc.ledgerRepo.HasEvent(ctx, txn.ID, models.EventPreCommitted)
		if err != nil {
			return err
		}
		if applied {
			return nil
		}
	}

	switch txn.Type {
	case models.TypeTransfer:
		creditAmount := txn.Amount.Mul(txn.ExchangeRate).Round(2)
		return uc.walletStore.Transfer(ctx,
			*txn.SenderWalletID, txn.SourceCurrency, txn.TotalDebit(),
			*txn.RecipientWalletID, txn.TargetCurrency, creditAmount)

	case models.TypeDeposit, models.TypeMint:
		creditAmount := txn.Amount.Mul(txn.ExchangeRate).Round(2)
		return uc.walletStore.Credit(ctx, *txn.RecipientWalletID, txn.TargetCurrency, creditAmount)

	case models.TypeWithdrawal, models.TypeBurn:
		return uc.walletStore.Debit(ctx, *txn.SenderWalletID, txn.SourceCurrency, txn.TotalDebit())

	case models.TypeBankToBank:
		return uc.completeBankToBank(ctx, txn)
	}

	return fmt.Errorf("%w: unknown transaction type %q", models.ErrInvalidSpec, txn.Type)
}

// settleFailure converts a movement error into the terminal state it
// deserves: mid-saga bank failures park for manual reconciliation,
// everything else finalizes as failed.
func (uc *SettlementUC) settleFailure(ctx context.Context, txn *models.Transaction, cause error) (*models.Transaction, error) {
	if errors.Is(cause, models.ErrExternalSettlementFailed) {
		reason := cause.Error()
		if err := uc.transition(ctx, txn, models.StatusProcessing, models.StatusNeedsReconciliation,
			models.EventNeedsReconciliation, map[string]interface{}{
				"reason":    reason,
				"saga_step": txn.SagaStep,
			}, reason); err != nil {
			return nil, err
		}
		logger.Error("bank settlement parked for manual reconciliation",
			logger.String("transaction_id", txn.ID.String()),
			logger.Int("saga_step", txn.SagaStep),
			logger.Err(cause))
		return txn, cause
	}

	failed, err := uc.Fail(ctx, txn.ID, cause.Error())
	if err != nil {
		return nil, err
	}
	return failed, cause
}

// transition applies a compare-and-set status move, mirrors it into the
// ledger and emits the best-effort update event.
func (uc *SettlementUC) transition(ctx context.Context, txn *models.Transaction, from, to models.TransactionStatus,
	eventType models.LedgerEventType, payload map[string]interface{}, reason string) error {

	if err := models.ValidateTransition(from, to); err != nil {
		return err
	}

	var failureReason *string
	if reason != "" {
		failureReason = &reason
	}
	if err := uc.txnRepo.UpdateStatus(ctx, txn.ID, from, to, failureReason); err != nil {
		return err
	}
	txn.Status = to

	if _, err := uc.ledgerRepo.Append(ctx, txn.ID, eventType, payload); err != nil {
		return err
	}

	uc.publishUpdated(ctx, txn, reason)
	return nil
}

// publishUpdated emits the generic transaction.updated event. Delivery is
// best-effort and never affects the committed transaction.
func (uc *SettlementUC) publishUpdated(ctx context.Context, txn *models.Transaction, reason string) {
	uc.publish(ctx, constants.SubjectTransactionUpdated, txn, reason)
}

func (uc *SettlementUC) publish(ctx context.Context, subject string, txn *models.Transaction, reason string) {
	event := models.TransactionEvent{
		TransactionID: txn.ID,
		Reference:     txn.Reference,
		Type:          txn.Type,
		Status:        txn.Status,
		Amount:        txn.Amount,
		Currency:      txn.SourceCurrency,
		Reason:        reason,
		Timestamp:     time.Now().UTC(),
	}
	if err := uc.gw.PublishTransactionEvent(ctx, subject, event); err != nil {
		logger.Warn("failed to publish transaction event",
			logger.String("transaction_id", txn.ID.String()),
			logger.String("subject", subject),
			logger.Err(err))
	}
}

// feeFor computes the fee charged for a transaction type. System-originated
// mints, burns and deposits carry no fee.
func (uc *SettlementUC) feeFor(txnType models.TransactionType, amount decimal.Decimal) decimal.Decimal {
	switch txnType {
	case models.TypeTransfer, models.TypeWithdrawal, models.TypeBankToBank:
		percent := decimal.NewFromFloat(uc.cfg.Settlement.FeePercent)
		return amount.Mul(percent).Div(decimal.NewFromInt(100)).Round(2)
	}
	return decimal.Zero
}

// bridgeAmount converts an amount into the internal unit of account.
func (uc *SettlementUC) bridgeAmount(ctx context.Context, amount decimal.Decimal, sourceCurrency string) (decimal.Decimal, error) {
	internal := uc.cfg.Settlement.InternalCurrency
	if sourceCurrency == internal {
		return amount, nil
	}
	rate, err := uc.rateOracle.GetRate(ctx, sourceCurrency, internal)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to quote bridge rate: %w", err)
	}
	return amount.Mul(rate).Round(2), nil
}

// newReference builds the human-readable reference: CB-<date>-<8 hex from
// the transaction id>.
func newReference(id uuid.UUID, at time.Time) string {
	compact := strings.ReplaceAll(id.String(), "-", "")
	return fmt.Sprintf("CB-%s-%s", at.Format("20060102"), compact[:8])
}
