package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/summer-project-team/crossbridge/internal/pkg/logger"
	"github.com/summer-project-team/crossbridge/internal/pkg/models"
)

// preCommitResult records exactly what the pre-commit branch moved. The
// compensating reversal uses these values verbatim, never a recomputation,
// so rounding drift cannot leak funds.
type preCommitResult struct {
	WalletID  uuid.UUID
	Currency  string
	Amount    decimal.Decimal
	Direction string // "credit" or "debit"
}

// ProcessWithPreCommit is the optimistic fast path: the ledger mutation is
// applied immediately while the slow validation checks run concurrently.
// If validation rejects, the mutation is compensated and the transaction
// fails with ValidationFailed; if both branches succeed the transaction is
// confirmed completed.
func (uc *SettlementUC) ProcessWithPreCommit(ctx context.Context, spec models.TransactionSpec) (*models.Transaction, error) {
	switch spec.Type {
	case models.TypeDeposit, models.TypeMint, models.TypeWithdrawal, models.TypeBurn:
	default:
		return nil, fmt.Errorf("%w: type %q does not support optimistic processing", models.ErrInvalidSpec, spec.Type)
	}

	txn, err := uc.Create(ctx, spec)
	if err != nil {
		return nil, err
	}
	if _, err := uc.Process(ctx, txn.ID); err != nil {
		return nil, err
	}

	var (
		wg           sync.WaitGroup
		preCommitRes *preCommitResult
		preCommitErr error
		validateErr  error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		preCommitRes, preCommitErr = uc.preCommit(ctx, txn)
	}()
	go func() {
		defer wg.Done()
		validateErr = uc.validate(ctx, txn)
	}()
	wg.Wait()

	switch {
	case preCommitErr == nil && validateErr == nil:
		return uc.Complete(ctx, txn.ID)

	case preCommitErr != nil:
		// The ledger branch failed; causally it comes first regardless of
		// what validation said, so its reason wins.
		return uc.Fail(ctx, txn.ID, preCommitErr.Error())

	default:
		// The rejection is recorded before the reversal is attempted. If
		// the reversal fails here the transaction strands in processing,
		// and the re-drive path reads this event to compensate and fail
		// instead of confirming the pre-committed movement.
		if _, err := uc.ledgerRepo.Append(ctx, txn.ID, models.EventValidationFailed, map[string]interface{}{
			"reason": validateErr.Error(),
		}); err != nil {
			return nil, err
		}
		if err := uc.rollback(ctx, txn, preCommitRes); err != nil {
			return nil, err
		}
		return uc.Fail(ctx, txn.ID, validateErr.Error())
	}
}

// preCommit applies the balance mutation ahead of validation and records
// the exact movement in the ledger.
func (uc *SettlementUC) preCommit(ctx context.Context, txn *models.Transaction) (*preCommitResult, error) {
	var res preCommitResult
	switch txn.Type {
	case models.TypeDeposit, models.TypeMint:
		res = preCommitResult{
			WalletID:  *txn.RecipientWalletID,
			Currency:  txn.TargetCurrency,
			Amount:    txn.Amount.Mul(txn.ExchangeRate).Round(2),
			Direction: "credit",
		}
		if err := uc.walletStore.Credit(ctx, res.WalletID, res.Currency, res.Amount); err != nil {
			return nil, err
		}
	case models.TypeWithdrawal, models.TypeBurn:
		res = preCommitResult{
			WalletID:  *txn.SenderWalletID,
			Currency:  txn.SourceCurrency,
			Amount:    txn.TotalDebit(),
			Direction: "debit",
		}
		if err := uc.walletStore.Debit(ctx, res.WalletID, res.Currency, res.Amount); err != nil {
			return nil, err
		}
	}

	if err := uc.txnRepo.SetPreCommitted(ctx, txn.ID, true); err != nil {
		return nil, err
	}
	txn.PreCommitted = true

	if _, err := uc.ledgerRepo.Append(ctx, txn.ID, models.EventPreCommitted, map[string]interface{}{
		"wallet_id": res.WalletID.String(),
		"currency":  res.Currency,
		"amount":    res.Amount.String(),
		"direction": res.Direction,
	}); err != nil {
		return nil, err
	}
	return &res, nil
}

// rollback compensates a successful pre-commit with the exact recorded
// movement. Idempotent: a rollback event already in the ledger means the
// compensation was applied and is not repeated.
func (uc *SettlementUC) rollback(ctx context.Context, txn *models.Transaction, res *preCommitResult) error {
	applied, err := uc.ledgerRepo.HasEvent(ctx, txn.ID, models.EventRollback)
	if err != nil {
		return err
	}
	if applied {
		return nil
	}

	switch res.Direction {
	case "credit":
		err = uc.walletStore.Debit(ctx, res.WalletID, res.Currency, res.Amount)
	case "debit":
		err = uc.walletStore.Credit(ctx, res.WalletID, res.Currency, res.Amount)
	default:
		return fmt.Errorf("unknown pre-commit direction %q", res.Direction)
	}
	if err != nil {
		return fmt.Errorf("failed to compensate pre-commit: %w", err)
	}

	if _, err := uc.ledgerRepo.Append(ctx, txn.ID, models.EventRollback, map[string]interface{}{
		"wallet_id": res.WalletID.String(),
		"currency":  res.Currency,
		"amount":    res.Amount.String(),
		"reversed":  res.Direction,
	}); err != nil {
		return err
	}

	logger.Info("pre-commit compensated",
		logger.String("transaction_id", txn.ID.String()),
		logger.String("amount", res.Amount.String()),
		logger.String("reversed", res.Direction))
	return nil
}

// rollbackPreCommit recovers the exact pre-committed movement from the
// ledger and compensates it. Used when a cancel arrives after the
// optimistic path already moved funds.
func (uc *SettlementUC) rollbackPreCommit(ctx context.Context, txn *models.Transaction) error {
	events, err := uc.ledgerRepo.ListByTransaction(ctx, txn.ID)
	if err != nil {
		return err
	}

	for _, event := range events {
		if event.EventType != models.EventPreCommitted {
			continue
		}
		res, err := preCommitFromPayload(event.Payload)
		if err != nil {
			return err
		}
		return uc.rollback(ctx, txn, res)
	}
	return fmt.Errorf("pre-committed transaction %s has no pre_committed event", txn.ID)
}

func preCommitFromPayload(payload map[string]interface{}) (*preCommitResult, error) {
	walletID, err := uuid.Parse(stringField(payload, "wallet_id"))
	if err != nil {
		return nil, fmt.Errorf("invalid wallet id in pre-commit payload: %w", err)
	}
	amount, err := decimal.NewFromString(stringField(payload, "amount"))
	if err != nil {
		return nil, fmt.Errorf("invalid amount in pre-commit payload: %w", err)
	}
	return &preCommitResult{
		WalletID:  walletID,
		Currency:  stringField(payload, "currency"),
		Amount:    amount,
		Direction: stringField(payload, "direction"),
	}, nil
}

func stringField(payload map[string]interface{}, key string) string {
	value, _ := payload[key].(string)
	return value
}
