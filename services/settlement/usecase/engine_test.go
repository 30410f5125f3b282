package usecase

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/summer-project-team/crossbridge/internal/pkg/models"
	"github.com/summer-project-team/crossbridge/services/settlement/mocks"
)

type engineMocks struct {
	txnRepo     *mocks.MockTransactionRepo
	ledgerRepo  *mocks.MockLedgerRepo
	retryRepo   *mocks.MockRetryRepo
	walletStore *mocks.MockWalletStore
	poolStore   *mocks.MockPoolStore
	poolLocker  *mocks.MockPoolLocker
	limitsStore *mocks.MockLimitsStore
	rateOracle  *mocks.MockRateOracle
	gw          *mocks.MockSettlementGW
	retryQueue  *mocks.MockRetryQueue
}

func testConfig() *models.Config {
	return &models.Config{
		Settlement: models.SettlementConfig{
			MaxRetryAttempts:     3,
			RetryBaseIntervalSec: 30,
			RetryMaxIntervalSec:  300,
			StalenessWindowSec:   300,
			SweepIntervalSec:     60,
			FeePercent:           0.25,
			InternalCurrency:     "CBUSD",
		},
		Limits: models.LimitsConfig{
			DailyTransferLimit: 10000,
			RiskScoreThreshold: 0.8,
		},
	}
}

func setupEngineTest(t *testing.T) (*SettlementUC, *engineMocks, *gomock.Controller) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := &engineMocks{
		txnRepo:     mocks.NewMockTransactionRepo(ctrl),
		ledgerRepo:  mocks.NewMockLedgerRepo(ctrl),
		retryRepo:   mocks.NewMockRetryRepo(ctrl),
		walletStore: mocks.NewMockWalletStore(ctrl),
		poolStore:   mocks.NewMockPoolStore(ctrl),
		poolLocker:  mocks.NewMockPoolLocker(ctrl),
		limitsStore: mocks.NewMockLimitsStore(ctrl),
		rateOracle:  mocks.NewMockRateOracle(ctrl),
		gw:          mocks.NewMockSettlementGW(ctrl),
		retryQueue:  mocks.NewMockRetryQueue(ctrl),
	}

	uc := NewSettlementUC(testConfig(),
		m.txnRepo, m.ledgerRepo, m.retryRepo,
		m.walletStore, m.poolStore, m.poolLocker, m.limitsStore,
		m.rateOracle, m.gw, m.retryQueue)
	return uc, m, ctrl
}

// allowPublishes lets the best-effort event publishing happen without
// binding the test to exact publish counts.
func (m *engineMocks) allowPublishes() {
	m.gw.EXPECT().
		PublishTransactionEvent(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestCreate_TransferComputesFeeAndBridgeAmount(t *testing.T) {
	uc, m, ctrl := setupEngineTest(t)
	defer ctrl.Finish()
	m.allowPublishes()

	sender := uuid.New()
	recipient := uuid.New()
	spec := models.TransactionSpec{
		Type:              models.TypeTransfer,
		SenderWalletID:    &sender,
		RecipientWalletID: &recipient,
		Amount:            dec("40.00"),
		SourceCurrency:    "cbusd",
	}

	m.walletStore.EXPECT().
		GetBalance(gomock.Any(), sender, "cbusd").
		Return(dec("100.00"), nil)

	var created *models.Transaction
	m.txnRepo.EXPECT().
		CreateTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, txn *models.Transaction) error {
			created = txn
			return nil
		})
	m.ledgerRepo.EXPECT().
		Append(gomock.Any(), gomock.Any(), models.EventInitiated, gomock.Any()).
		Return(&models.LedgerEvent{Seq: 1}, nil)

	txn, err := uc.Create(context.Background(), spec)
	assert.NoError(t, err)
	assert.NotNil(t, txn)
	assert.Equal(t, created, txn)
	assert.Equal(t, models.StatusInitiated, txn.Status)

	// 0.25% of 40.00
	assert.True(t, txn.Fee.Equal(dec("0.10")), "fee = %s", txn.Fee)
	assert.True(t, txn.TotalDebit().Equal(dec("40.10")))
	assert.True(t, txn.CBUSDAmount.Equal(dec("40.00")))
	assert.True(t, txn.ExchangeRate.Equal(dec("1")))
	assert.Equal(t, "CBUSD", txn.SourceCurrency)
	assert.Equal(t, "CBUSD", txn.TargetCurrency)
	assert.True(t, strings.HasPrefix(txn.Reference, "CB-"))
}

func TestCreate_CrossCurrencyQuotesRate(t *testing.T) {
	uc, m, ctrl := setupEngineTest(t)
	defer ctrl.Finish()
	m.allowPublishes()

	recipient := uuid.New()
	spec := models.TransactionSpec{
		Type:              models.TypeDeposit,
		RecipientWalletID: &recipient,
		Amount:            dec("100.00"),
		SourceCurrency:    "GBP",
		TargetCurrency:    "CBUSD",
	}

	m.rateOracle.EXPECT().
		GetRate(gomock.Any(), "GBP", "CBUSD").
		Return(dec("1.27"), nil).
		Times(2) // conversion rate and bridge amount use the same pair

	m.txnRepo.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).Return(nil)
	m.ledgerRepo.EXPECT().
		Append(gomock.Any(), gomock.Any(), models.EventInitiated, gomock.Any()).
		Return(&models.LedgerEvent{Seq: 1}, nil)

	txn, err := uc.Create(context.Background(), spec)
	assert.NoError(t, err)
	assert.True(t, txn.ExchangeRate.Equal(dec("1.27")))
	assert.True(t, txn.CBUSDAmount.Equal(dec("127.00")))
	assert.True(t, txn.Fee.IsZero(), "deposits carry no fee")
}

func TestCreate_RejectsInvalidSpecs(t *testing.T) {
	sender := uuid.New()
	recipient := uuid.New()

	testCases := []struct {
		name string
		spec models.TransactionSpec
	}{
		{
			name: "Unknown Type",
			spec: models.TransactionSpec{Type: "payout", Amount: dec("10"), SourceCurrency: "CBUSD"},
		},
		{
			name: "Non Positive Amount",
			spec: models.TransactionSpec{Type: models.TypeDeposit, RecipientWalletID: &recipient, Amount: dec("0"), SourceCurrency: "CBUSD"},
		},
		{
			name: "Missing Source Currency",
			spec: models.TransactionSpec{Type: models.TypeDeposit, RecipientWalletID: &recipient, Amount: dec("10")},
		},
		{
			name: "Transfer Without Recipient",
			spec: models.TransactionSpec{Type: models.TypeTransfer, SenderWalletID: &sender, Amount: dec("10"), SourceCurrency: "CBUSD"},
		},
		{
			name: "Transfer To Self",
			spec: models.TransactionSpec{Type: models.TypeTransfer, SenderWalletID: &sender, RecipientWalletID: &sender, Amount: dec("10"), SourceCurrency: "CBUSD"},
		},
		{
			name: "Deposit With Sender",
			spec: models.TransactionSpec{Type: models.TypeDeposit, SenderWalletID: &sender, RecipientWalletID: &recipient, Amount: dec("10"), SourceCurrency: "CBUSD"},
		},
		{
			name: "Withdrawal With Recipient",
			spec: models.TransactionSpec{Type: models.TypeWithdrawal, SenderWalletID: &sender, RecipientWalletID: &recipient, Amount: dec("10"), SourceCurrency: "CBUSD"},
		},
		{
			name: "Bank To Bank Same Corridor",
			spec: models.TransactionSpec{Type: models.TypeBankToBank, Amount: dec("10"), SourceCurrency: "GBP", TargetCurrency: "GBP"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			uc, _, ctrl := setupEngineTest(t)
			defer ctrl.Finish()

			txn, err := uc.Create(context.Background(), tc.spec)
			assert.ErrorIs(t, err, models.ErrInvalidSpec)
			assert.Nil(t, txn)
		})
	}
}

func TestCreate_TransferPrecheckRejectsUnderfundedSender(t *testing.T) {
	uc, m, ctrl := setupEngineTest(t)
	defer ctrl.Finish()

	sender := uuid.New()
	recipient := uuid.New()
	m.walletStore.EXPECT().
		GetBalance(gomock.Any(), sender, "CBUSD").
		Return(dec("40.00"), nil)

	txn, err := uc.Create(context.Background(), models.TransactionSpec{
		Type:              models.TypeTransfer,
		SenderWalletID:    &sender,
		RecipientWalletID: &recipient,
		Amount:            dec("40.00"), // 40.00 + 0.10 fee > 40.00
		SourceCurrency:    "CBUSD",
	})
	assert.ErrorIs(t, err, models.ErrInsufficientFunds)
	assert.Nil(t, txn)
}

func TestProcess_OnlyFromInitiatedOrRetryScheduled(t *testing.T) {
	testCases := []struct {
		name    string
		status  models.TransactionStatus
		allowed bool
	}{
		{name: "From Initiated", status: models.StatusInitiated, allowed: true},
		{name: "From Retry Scheduled", status: models.StatusRetryScheduled, allowed: true},
		{name: "From Completed", status: models.StatusCompleted, allowed: false},
		{name: "From Cancelled", status: models.StatusCancelled, allowed: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			uc, m, ctrl := setupEngineTest(t)
			defer ctrl.Finish()
			m.allowPublishes()

			id := uuid.New()
			m.txnRepo.EXPECT().
				GetTransaction(gomock.Any(), id).
				Return(&models.Transaction{ID: id, Status: tc.status}, nil)

			if tc.allowed {
				m.txnRepo.EXPECT().
					UpdateStatus(gomock.Any(), id, tc.status, models.StatusProcessing, nil).
					Return(nil)
				m.ledgerRepo.EXPECT().
					Append(gomock.Any(), id, models.EventProcessing, gomock.Any()).
					Return(&models.LedgerEvent{Seq: 2}, nil)
			}

			txn, err := uc.Process(context.Background(), id)
			if tc.allowed {
				assert.NoError(t, err)
				assert.Equal(t, models.StatusProcessing, txn.Status)
			} else {
				assert.True(t, models.IsIllegalTransition(err))
				assert.Nil(t, txn)
			}
		})
	}
}

func TestComplete_TransferMovesPrincipalPlusFee(t *testing.T) {
	uc, m, ctrl := setupEngineTest(t)
	defer ctrl.Finish()
	m.allowPublishes()

	id := uuid.New()
	sender := uuid.New()
	recipient := uuid.New()
	txn := &models.Transaction{
		ID:                id,
		Status:            models.StatusProcessing,
		Type:              models.TypeTransfer,
		SenderWalletID:    &sender,
		RecipientWalletID: &recipient,
		Amount:            dec("40.00"),
		Fee:               dec("0.10"),
		SourceCurrency:    "CBUSD",
		TargetCurrency:    "CBUSD",
		ExchangeRate:      dec("1"),
		CBUSDAmount:       dec("40.00"),
	}

	m.txnRepo.EXPECT().GetTransaction(gomock.Any(), id).Return(txn, nil)
	m.ledgerRepo.EXPECT().HasEvent(gomock.Any(), id, models.EventCompleted).Return(false, nil)

	// Sender loses principal plus fee, recipient gains exactly the principal.
	m.walletStore.EXPECT().
		Transfer(gomock.Any(),
			sender, "CBUSD", decimalMatcher{dec("40.10")},
			recipient, "CBUSD", decimalMatcher{dec("40.00")}).
		Return(nil)

	m.txnRepo.EXPECT().
		UpdateStatus(gomock.Any(), id, models.StatusProcessing, models.StatusCompleted, nil).
		Return(nil)
	m.ledgerRepo.EXPECT().
		Append(gomock.Any(), id, models.EventCompleted, gomock.Any()).
		Return(&models.LedgerEvent{Seq: 3}, nil)

	result, err := uc.Complete(context.Background(), id)
	assert.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, result.Status)
}

func TestComplete_DuplicateCompletionIsNoOp(t *testing.T) {
	uc, m, ctrl := setupEngineTest(t)
	defer ctrl.Finish()

	id := uuid.New()
	txn := &models.Transaction{ID: id, Status: models.StatusCompleted, Type: models.TypeTransfer}

	m.txnRepo.EXPECT().GetTransaction(gomock.Any(), id).Return(txn, nil)
	m.ledgerRepo.EXPECT().HasEvent(gomock.Any(), id, models.EventCompleted).Return(true, nil)
	// No wallet movement and no status update may happen.

	result, err := uc.Complete(context.Background(), id)
	assert.NoError(t, err)
	assert.Equal(t, txn, result)
}

func TestComplete_InsufficientFundsFinalizesAsFailed(t *testing.T) {
	uc, m, ctrl := setupEngineTest(t)
	defer ctrl.Finish()
	m.allowPublishes()

	id := uuid.New()
	sender := uuid.New()
	recipient := uuid.New()
	txn := &models.Transaction{
		ID:                id,
		Status:            models.StatusProcessing,
		Type:              models.TypeTransfer,
		SenderWalletID:    &sender,
		RecipientWalletID: &recipient,
		Amount:            dec("60.00"),
		Fee:               dec("0.15"),
		SourceCurrency:    "CBUSD",
		TargetCurrency:    "CBUSD",
		ExchangeRate:      dec("1"),
	}

	m.txnRepo.EXPECT().GetTransaction(gomock.Any(), id).Return(txn, nil)
	m.ledgerRepo.EXPECT().HasEvent(gomock.Any(), id, models.EventCompleted).Return(false, nil)
	m.walletStore.EXPECT().
		Transfer(gomock.Any(), sender, "CBUSD", gomock.Any(), recipient, "CBUSD", gomock.Any()).
		Return(models.ErrInsufficientFunds)

	// Fail refetches and finalizes.
	m.txnRepo.EXPECT().GetTransaction(gomock.Any(), id).Return(txn, nil)
	m.txnRepo.EXPECT().
		UpdateStatus(gomock.Any(), id, models.StatusProcessing, models.StatusFailed, gomock.Any()).
		Return(nil)
	m.ledgerRepo.EXPECT().
		Append(gomock.Any(), id, models.EventFailed, gomock.Any()).
		Return(&models.LedgerEvent{Seq: 3}, nil)

	result, err := uc.Complete(context.Background(), id)
	assert.ErrorIs(t, err, models.ErrInsufficientFunds)
	assert.NotNil(t, result)
	assert.Equal(t, models.StatusFailed, result.Status)
}

func TestComplete_StatusRaceAfterMovementIsAbsorbed(t *testing.T) {
	uc, m, ctrl := setupEngineTest(t)
	defer ctrl.Finish()
	m.allowPublishes()

	id := uuid.New()
	sender := uuid.New()
	txn := &models.Transaction{
		ID:             id,
		Status:         models.StatusProcessing,
		Type:           models.TypeWithdrawal,
		SenderWalletID: &sender,
		Amount:         dec("25.00"),
		Fee:            dec("0.06"),
		SourceCurrency: "CBUSD",
		ExchangeRate:   dec("1"),
	}

	m.txnRepo.EXPECT().GetTransaction(gomock.Any(), id).Return(txn, nil)
	m.ledgerRepo.EXPECT().HasEvent(gomock.Any(), id, models.EventCompleted).Return(false, nil)
	m.walletStore.EXPECT().
		Debit(gomock.Any(), sender, "CBUSD", decimalMatcher{dec("25.06")}).
		Return(nil)
	m.txnRepo.EXPECT().
		UpdateStatus(gomock.Any(), id, models.StatusProcessing, models.StatusCompleted, nil).
		Return(&models.IllegalTransitionError{From: models.StatusCompleted, To: models.StatusCompleted})

	settled := &models.Transaction{ID: id, Status: models.StatusCompleted}
	m.txnRepo.EXPECT().GetTransaction(gomock.Any(), id).Return(settled, nil)

	result, err := uc.Complete(context.Background(), id)
	assert.NoError(t, err)
	assert.Equal(t, settled, result)
}

func TestCancel(t *testing.T) {
	testCases := []struct {
		name    string
		status  models.TransactionStatus
		allowed bool
	}{
		{name: "From Initiated", status: models.StatusInitiated, allowed: true},
		{name: "From Processing", status: models.StatusProcessing, allowed: true},
		{name: "From Completed", status: models.StatusCompleted, allowed: false},
		{name: "From Failed", status: models.StatusFailed, allowed: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			uc, m, ctrl := setupEngineTest(t)
			defer ctrl.Finish()
			m.allowPublishes()

			id := uuid.New()
			m.txnRepo.EXPECT().
				GetTransaction(gomock.Any(), id).
				Return(&models.Transaction{ID: id, Status: tc.status}, nil)

			if tc.allowed {
				m.txnRepo.EXPECT().
					UpdateStatus(gomock.Any(), id, tc.status, models.StatusCancelled, gomock.Any()).
					Return(nil)
				m.ledgerRepo.EXPECT().
					Append(gomock.Any(), id, models.EventCancelled, gomock.Any()).
					Return(&models.LedgerEvent{Seq: 2}, nil)
			}

			txn, err := uc.Cancel(context.Background(), id, "user requested")
			if tc.allowed {
				assert.NoError(t, err)
				assert.Equal(t, models.StatusCancelled, txn.Status)
			} else {
				assert.True(t, models.IsIllegalTransition(err))
				assert.Nil(t, txn)
			}
		})
	}
}

func TestRefund_OnlyCompletedTransfers(t *testing.T) {
	uc, m, ctrl := setupEngineTest(t)
	defer ctrl.Finish()

	id := uuid.New()
	m.txnRepo.EXPECT().
		GetTransaction(gomock.Any(), id).
		Return(&models.Transaction{ID: id, Status: models.StatusProcessing, Type: models.TypeTransfer}, nil)

	txn, err := uc.Refund(context.Background(), id)
	assert.True(t, models.IsIllegalTransition(err))
	assert.Nil(t, txn)

	m.txnRepo.EXPECT().
		GetTransaction(gomock.Any(), id).
		Return(&models.Transaction{ID: id, Status: models.StatusCompleted, Type: models.TypeDeposit}, nil)

	txn, err = uc.Refund(context.Background(), id)
	assert.ErrorIs(t, err, models.ErrInvalidSpec)
	assert.Nil(t, txn)
}

func TestRefund_CompensatesPrincipalNotFee(t *testing.T) {
	uc, m, ctrl := setupEngineTest(t)
	defer ctrl.Finish()
	m.allowPublishes()

	originalID := uuid.New()
	sender := uuid.New()
	recipient := uuid.New()
	original := &models.Transaction{
		ID:                originalID,
		Status:            models.StatusCompleted,
		Type:              models.TypeTransfer,
		SenderWalletID:    &sender,
		RecipientWalletID: &recipient,
		Amount:            dec("40.00"),
		Fee:               dec("0.10"),
		SourceCurrency:    "CBUSD",
		TargetCurrency:    "CBUSD",
		ExchangeRate:      dec("1"),
	}

	m.txnRepo.EXPECT().GetTransaction(gomock.Any(), originalID).Return(original, nil)

	// Refund creation: the recipient sends the principal back and pays the
	// refund's own fee; the original fee is not returned.
	m.walletStore.EXPECT().
		GetBalance(gomock.Any(), recipient, "CBUSD").
		Return(dec("100.00"), nil)

	var refund *models.Transaction
	m.txnRepo.EXPECT().
		CreateTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, txn *models.Transaction) error {
			refund = txn
			return nil
		})
	m.ledgerRepo.EXPECT().
		Append(gomock.Any(), gomock.Any(), models.EventInitiated, gomock.Any()).
		Return(&models.LedgerEvent{Seq: 1}, nil)

	// Process + Complete of the compensating transaction.
	m.txnRepo.EXPECT().
		GetTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, uuid.UUID) (*models.Transaction, error) {
			return refund, nil
		}).
		Times(2)
	m.txnRepo.EXPECT().
		UpdateStatus(gomock.Any(), gomock.Any(), models.StatusInitiated, models.StatusProcessing, nil).
		Return(nil)
	m.ledgerRepo.EXPECT().
		Append(gomock.Any(), gomock.Any(), models.EventProcessing, gomock.Any()).
		Return(&models.LedgerEvent{Seq: 2}, nil)
	m.ledgerRepo.EXPECT().
		HasEvent(gomock.Any(), gomock.Any(), models.EventCompleted).
		Return(false, nil)
	m.walletStore.EXPECT().
		Transfer(gomock.Any(),
			recipient, "CBUSD", gomock.Any(),
			sender, "CBUSD", decimalMatcher{dec("40.00")}).
		Return(nil)
	m.txnRepo.EXPECT().
		UpdateStatus(gomock.Any(), gomock.Any(), models.StatusProcessing, models.StatusCompleted, nil).
		Return(nil)
	m.ledgerRepo.EXPECT().
		Append(gomock.Any(), gomock.Any(), models.EventCompleted, gomock.Any()).
		Return(&models.LedgerEvent{Seq: 3}, nil)

	// The original moves to refunded.
	m.txnRepo.EXPECT().
		UpdateStatus(gomock.Any(), originalID, models.StatusCompleted, models.StatusRefunded, nil).
		Return(nil)
	m.ledgerRepo.EXPECT().
		Append(gomock.Any(), originalID, models.EventRefunded, gomock.Any()).
		Return(&models.LedgerEvent{Seq: 4}, nil)

	result, err := uc.Refund(context.Background(), originalID)
	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.True(t, result.Amount.Equal(dec("40.00")), "refund returns the principal only")
	assert.Equal(t, &recipient, result.SenderWalletID)
	assert.Equal(t, &sender, result.RecipientWalletID)
	assert.Equal(t, originalID.String(), result.Metadata["refund_of"])
}

// decimalMatcher matches a decimal.Decimal by numeric value rather than
// struct equality, since equal values can carry different exponents.
type decimalMatcher struct {
	want decimal.Decimal
}

func (m decimalMatcher) Matches(x interface{}) bool {
	d, ok := x.(decimal.Decimal)
	return ok && d.Equal(m.want)
}

func (m decimalMatcher) String() string {
	return "decimal equal to " + m.want.String()
}

func TestNewReference(t *testing.T) {
	id := uuid.MustParse("550e8400-e29b-41d4-a716-446655440001")
	at := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	ref := newReference(id, at)
	assert.Equal(t, "CB-20260901-550e8400", ref)
}
