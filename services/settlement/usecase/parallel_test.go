package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/summer-project-team/crossbridge/internal/pkg/models"
)

// expectOptimisticCreate wires the Create + Process leg shared by every
// optimistic-path test and returns a pointer that will hold the created
// transaction once the flow runs.
func expectOptimisticCreate(m *engineMocks) **models.Transaction {
	created := new(*models.Transaction)

	m.txnRepo.EXPECT().
		CreateTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, txn *models.Transaction) error {
			*created = txn
			return nil
		})
	m.ledgerRepo.EXPECT().
		Append(gomock.Any(), gomock.Any(), models.EventInitiated, gomock.Any()).
		Return(&models.LedgerEvent{Seq: 1}, nil)

	m.txnRepo.EXPECT().
		GetTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, uuid.UUID) (*models.Transaction, error) {
			return *created, nil
		}).
		AnyTimes()
	m.txnRepo.EXPECT().
		UpdateStatus(gomock.Any(), gomock.Any(), models.StatusInitiated, models.StatusProcessing, nil).
		Return(nil)
	m.ledgerRepo.EXPECT().
		Append(gomock.Any(), gomock.Any(), models.EventProcessing, gomock.Any()).
		Return(&models.LedgerEvent{Seq: 2}, nil)

	return created
}

func TestProcessWithPreCommit_RejectsTransfers(t *testing.T) {
	uc, _, ctrl := setupEngineTest(t)
	defer ctrl.Finish()

	sender := uuid.New()
	recipient := uuid.New()
	txn, err := uc.ProcessWithPreCommit(context.Background(), models.TransactionSpec{
		Type:              models.TypeTransfer,
		SenderWalletID:    &sender,
		RecipientWalletID: &recipient,
		Amount:            dec("10.00"),
		SourceCurrency:    "CBUSD",
	})
	assert.ErrorIs(t, err, models.ErrInvalidSpec)
	assert.Nil(t, txn)
}

func TestProcessWithPreCommit_BothBranchesSucceed(t *testing.T) {
	uc, m, ctrl := setupEngineTest(t)
	defer ctrl.Finish()
	m.allowPublishes()

	recipient := uuid.New()
	created := expectOptimisticCreate(m)

	// Pre-commit branch applies the credit immediately.
	m.walletStore.EXPECT().
		Credit(gomock.Any(), recipient, "CBUSD", decimalMatcher{dec("75.00")}).
		Return(nil)
	m.txnRepo.EXPECT().
		SetPreCommitted(gomock.Any(), gomock.Any(), true).
		Return(nil)
	m.ledgerRepo.EXPECT().
		Append(gomock.Any(), gomock.Any(), models.EventPreCommitted, gomock.Any()).
		Return(&models.LedgerEvent{Seq: 3}, nil)

	// Validation branch passes.
	m.limitsStore.EXPECT().
		AddDailyVolume(gomock.Any(), recipient, gomock.Any()).
		Return(dec("75.00"), nil)

	// Confirmation: the pre-committed movement is not applied twice.
	m.ledgerRepo.EXPECT().
		HasEvent(gomock.Any(), gomock.Any(), models.EventCompleted).
		Return(false, nil)
	m.ledgerRepo.EXPECT().
		HasEvent(gomock.Any(), gomock.Any(), models.EventValidationFailed).
		Return(false, nil)
	m.ledgerRepo.EXPECT().
		HasEvent(gomock.Any(), gomock.Any(), models.EventPreCommitted).
		Return(true, nil)
	m.txnRepo.EXPECT().
		UpdateStatus(gomock.Any(), gomock.Any(), models.StatusProcessing, models.StatusCompleted, nil).
		Return(nil)
	m.ledgerRepo.EXPECT().
		Append(gomock.Any(), gomock.Any(), models.EventCompleted, gomock.Any()).
		Return(&models.LedgerEvent{Seq: 4}, nil)

	txn, err := uc.ProcessWithPreCommit(context.Background(), models.TransactionSpec{
		Type:              models.TypeDeposit,
		RecipientWalletID: &recipient,
		Amount:            dec("75.00"),
		SourceCurrency:    "CBUSD",
	})
	assert.NoError(t, err)
	assert.NotNil(t, txn)
	assert.Equal(t, *created, txn)
	assert.Equal(t, models.StatusCompleted, txn.Status)
	assert.True(t, txn.PreCommitted)
}

func TestProcessWithPreCommit_ValidationRejectsAndCompensatesExactAmount(t *testing.T) {
	uc, m, ctrl := setupEngineTest(t)
	defer ctrl.Finish()
	m.allowPublishes()

	recipient := uuid.New()
	expectOptimisticCreate(m)

	m.walletStore.EXPECT().
		Credit(gomock.Any(), recipient, "CBUSD", decimalMatcher{dec("9000.00")}).
		Return(nil)
	m.txnRepo.EXPECT().
		SetPreCommitted(gomock.Any(), gomock.Any(), true).
		Return(nil)
	m.ledgerRepo.EXPECT().
		Append(gomock.Any(), gomock.Any(), models.EventPreCommitted, gomock.Any()).
		Return(&models.LedgerEvent{Seq: 3}, nil)

	// Daily limit breached.
	m.limitsStore.EXPECT().
		AddDailyVolume(gomock.Any(), recipient, gomock.Any()).
		Return(dec("12000.00"), nil)

	// The rejection is recorded first, then rollback reverses the exact
	// applied credit with a debit and the transaction fails with the
	// validation reason.
	m.ledgerRepo.EXPECT().
		Append(gomock.Any(), gomock.Any(), models.EventValidationFailed, gomock.Any()).
		Return(&models.LedgerEvent{Seq: 4}, nil)
	m.ledgerRepo.EXPECT().
		HasEvent(gomock.Any(), gomock.Any(), models.EventRollback).
		Return(false, nil)
	m.walletStore.EXPECT().
		Debit(gomock.Any(), recipient, "CBUSD", decimalMatcher{dec("9000.00")}).
		Return(nil)
	m.ledgerRepo.EXPECT().
		Append(gomock.Any(), gomock.Any(), models.EventRollback, gomock.Any()).
		Return(&models.LedgerEvent{Seq: 4}, nil)

	m.txnRepo.EXPECT().
		UpdateStatus(gomock.Any(), gomock.Any(), models.StatusProcessing, models.StatusFailed, gomock.Any()).
		Return(nil)
	m.ledgerRepo.EXPECT().
		Append(gomock.Any(), gomock.Any(), models.EventFailed, gomock.Any()).
		Return(&models.LedgerEvent{Seq: 5}, nil)

	txn, err := uc.ProcessWithPreCommit(context.Background(), models.TransactionSpec{
		Type:              models.TypeDeposit,
		RecipientWalletID: &recipient,
		Amount:            dec("9000.00"),
		SourceCurrency:    "CBUSD",
	})
	assert.NoError(t, err)
	assert.NotNil(t, txn)
	assert.Equal(t, models.StatusFailed, txn.Status)
}

func TestProcessWithPreCommit_PreCommitFailureWins(t *testing.T) {
	uc, m, ctrl := setupEngineTest(t)
	defer ctrl.Finish()
	m.allowPublishes()

	sender := uuid.New()
	expectOptimisticCreate(m)

	// The debit branch fails: there is nothing to compensate regardless of
	// the validation outcome.
	m.walletStore.EXPECT().
		Debit(gomock.Any(), sender, "CBUSD", gomock.Any()).
		Return(models.ErrInsufficientFunds)
	m.limitsStore.EXPECT().
		AddDailyVolume(gomock.Any(), sender, gomock.Any()).
		Return(dec("50000.00"), nil).
		AnyTimes()

	m.txnRepo.EXPECT().
		UpdateStatus(gomock.Any(), gomock.Any(), models.StatusProcessing, models.StatusFailed, gomock.Any()).
		Return(nil)
	m.ledgerRepo.EXPECT().
		Append(gomock.Any(), gomock.Any(), models.EventFailed, gomock.Any()).
		Return(&models.LedgerEvent{Seq: 3}, nil)

	txn, err := uc.ProcessWithPreCommit(context.Background(), models.TransactionSpec{
		Type:           models.TypeWithdrawal,
		SenderWalletID: &sender,
		Amount:         dec("50.00"),
		SourceCurrency: "CBUSD",
	})
	assert.NoError(t, err)
	assert.NotNil(t, txn)
	assert.Equal(t, models.StatusFailed, txn.Status)
}

func TestProcessWithPreCommit_FailedCompensationRecordsRejection(t *testing.T) {
	uc, m, ctrl := setupEngineTest(t)
	defer ctrl.Finish()
	m.allowPublishes()

	recipient := uuid.New()
	created := expectOptimisticCreate(m)

	m.walletStore.EXPECT().
		Credit(gomock.Any(), recipient, "CBUSD", decimalMatcher{dec("9000.00")}).
		Return(nil)
	m.txnRepo.EXPECT().
		SetPreCommitted(gomock.Any(), gomock.Any(), true).
		Return(nil)
	m.ledgerRepo.EXPECT().
		Append(gomock.Any(), gomock.Any(), models.EventPreCommitted, gomock.Any()).
		Return(&models.LedgerEvent{Seq: 3}, nil)

	m.limitsStore.EXPECT().
		AddDailyVolume(gomock.Any(), recipient, gomock.Any()).
		Return(dec("12000.00"), nil)

	// The rejection lands in the ledger even though the compensating
	// debit fails; the transaction must not finalize as failed yet.
	m.ledgerRepo.EXPECT().
		Append(gomock.Any(), gomock.Any(), models.EventValidationFailed, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, _ models.LedgerEventType, payload map[string]interface{}) (*models.LedgerEvent, error) {
			assert.Contains(t, payload["reason"], "daily transfer limit exceeded")
			return &models.LedgerEvent{Seq: 4}, nil
		})
	m.ledgerRepo.EXPECT().
		HasEvent(gomock.Any(), gomock.Any(), models.EventRollback).
		Return(false, nil)
	m.walletStore.EXPECT().
		Debit(gomock.Any(), recipient, "CBUSD", decimalMatcher{dec("9000.00")}).
		Return(errors.New("store unavailable"))

	txn, err := uc.ProcessWithPreCommit(context.Background(), models.TransactionSpec{
		Type:              models.TypeDeposit,
		RecipientWalletID: &recipient,
		Amount:            dec("9000.00"),
		SourceCurrency:    "CBUSD",
	})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "store unavailable")
	assert.Nil(t, txn)
	// Stranded in processing for the sweep to pick up, never completed.
	assert.Equal(t, models.StatusProcessing, (*created).Status)
}

func TestComplete_RejectedPreCommitIsCompensatedOnRedrive(t *testing.T) {
	uc, m, ctrl := setupEngineTest(t)
	defer ctrl.Finish()
	m.allowPublishes()

	id := uuid.New()
	wallet := uuid.New()
	txn := &models.Transaction{
		ID:           id,
		Status:       models.StatusProcessing,
		Type:         models.TypeDeposit,
		PreCommitted: true,
	}

	// Complete fetches once, Fail refetches.
	m.txnRepo.EXPECT().GetTransaction(gomock.Any(), id).Return(txn, nil).Times(2)
	m.ledgerRepo.EXPECT().
		HasEvent(gomock.Any(), id, models.EventCompleted).
		Return(false, nil)

	// The recorded rejection forces compensation instead of confirmation.
	m.ledgerRepo.EXPECT().
		HasEvent(gomock.Any(), id, models.EventValidationFailed).
		Return(true, nil)
	m.ledgerRepo.EXPECT().
		ListByTransaction(gomock.Any(), id).
		Return([]*models.LedgerEvent{
			{Seq: 3, EventType: models.EventPreCommitted, Payload: map[string]interface{}{
				"wallet_id": wallet.String(),
				"currency":  "CBUSD",
				"amount":    "9000.00",
				"direction": "credit",
			}},
			{Seq: 4, EventType: models.EventValidationFailed},
		}, nil)
	m.ledgerRepo.EXPECT().
		HasEvent(gomock.Any(), id, models.EventRollback).
		Return(false, nil)
	m.walletStore.EXPECT().
		Debit(gomock.Any(), wallet, "CBUSD", decimalMatcher{dec("9000.00")}).
		Return(nil)
	m.ledgerRepo.EXPECT().
		Append(gomock.Any(), id, models.EventRollback, gomock.Any()).
		Return(&models.LedgerEvent{Seq: 5}, nil)

	m.txnRepo.EXPECT().
		UpdateStatus(gomock.Any(), id, models.StatusProcessing, models.StatusFailed, gomock.Any()).
		Return(nil)
	m.ledgerRepo.EXPECT().
		Append(gomock.Any(), id, models.EventFailed, gomock.Any()).
		Return(&models.LedgerEvent{Seq: 6}, nil)

	result, err := uc.Complete(context.Background(), id)
	assert.ErrorIs(t, err, models.ErrValidationFailed)
	assert.NotNil(t, result)
	assert.Equal(t, models.StatusFailed, result.Status)
}

func TestCancel_PreCommittedRollsBackRecordedMovement(t *testing.T) {
	uc, m, ctrl := setupEngineTest(t)
	defer ctrl.Finish()
	m.allowPublishes()

	id := uuid.New()
	wallet := uuid.New()
	txn := &models.Transaction{
		ID:           id,
		Status:       models.StatusProcessing,
		Type:         models.TypeDeposit,
		PreCommitted: true,
	}

	m.txnRepo.EXPECT().GetTransaction(gomock.Any(), id).Return(txn, nil)

	// The exact movement is recovered from the ledger, never recomputed.
	m.ledgerRepo.EXPECT().
		ListByTransaction(gomock.Any(), id).
		Return([]*models.LedgerEvent{
			{Seq: 1, EventType: models.EventInitiated},
			{Seq: 2, EventType: models.EventProcessing},
			{Seq: 3, EventType: models.EventPreCommitted, Payload: map[string]interface{}{
				"wallet_id": wallet.String(),
				"currency":  "CBUSD",
				"amount":    "75.00",
				"direction": "credit",
			}},
		}, nil)
	m.ledgerRepo.EXPECT().
		HasEvent(gomock.Any(), id, models.EventRollback).
		Return(false, nil)
	m.walletStore.EXPECT().
		Debit(gomock.Any(), wallet, "CBUSD", decimalMatcher{dec("75.00")}).
		Return(nil)
	m.ledgerRepo.EXPECT().
		Append(gomock.Any(), id, models.EventRollback, gomock.Any()).
		Return(&models.LedgerEvent{Seq: 4}, nil)

	m.txnRepo.EXPECT().
		UpdateStatus(gomock.Any(), id, models.StatusProcessing, models.StatusCancelled, gomock.Any()).
		Return(nil)
	m.ledgerRepo.EXPECT().
		Append(gomock.Any(), id, models.EventCancelled, gomock.Any()).
		Return(&models.LedgerEvent{Seq: 5}, nil)

	result, err := uc.Cancel(context.Background(), id, "compliance hold")
	assert.NoError(t, err)
	assert.Equal(t, models.StatusCancelled, result.Status)
}

func TestRollback_AlreadyRolledBackIsNoOp(t *testing.T) {
	uc, m, ctrl := setupEngineTest(t)
	defer ctrl.Finish()

	id := uuid.New()
	wallet := uuid.New()
	txn := &models.Transaction{ID: id, Type: models.TypeDeposit}

	m.ledgerRepo.EXPECT().
		HasEvent(gomock.Any(), id, models.EventRollback).
		Return(true, nil)
	// No wallet mutation and no second rollback event may happen.

	err := uc.rollback(context.Background(), txn, &preCommitResult{
		WalletID:  wallet,
		Currency:  "CBUSD",
		Amount:    dec("75.00"),
		Direction: "credit",
	})
	assert.NoError(t, err)
}
