package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"

	"github.com/summer-project-team/crossbridge/internal/pkg/models"
)

var transactionTestColumns = []string{
	"id", "reference", "sender_wallet_id", "recipient_wallet_id", "type", "status",
	"amount", "fee", "source_currency", "target_currency", "exchange_rate", "cbusd_amount",
	"pre_committed", "saga_step", "failure_reason", "retry_count", "metadata",
	"created_at", "updated_at", "processing_at", "completed_at", "failed_at", "cancelled_at", "refunded_at",
}

func setupTransactionRepoTest(t *testing.T) (*TransactionRepo, sqlmock.Sqlmock, func()) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")
	repo := NewTransactionRepo(&models.Config{}, sqlxDB)
	return repo, mock, func() { sqlxDB.Close() }
}

func transactionRow(id uuid.UUID, status models.TransactionStatus) *sqlmock.Rows {
	now := time.Now().UTC()
	sender := uuid.New()
	recipient := uuid.New()
	return sqlmock.NewRows(transactionTestColumns).AddRow(
		id, "CB-20260901-abcd1234", sender, recipient, "transfer", string(status),
		"40.00", "0.10", "CBUSD", "CBUSD", "1", "40.00",
		false, 0, nil, 0, []byte(`{"note":"test"}`),
		now, now, nil, nil, nil, nil, nil,
	)
}

func TestCreateTransactionInsert(t *testing.T) {
	repo, mock, cleanup := setupTransactionRepoTest(t)
	defer cleanup()

	sender := uuid.New()
	recipient := uuid.New()
	now := time.Now().UTC()
	txn := &models.Transaction{
		ID:                uuid.New(),
		Reference:         "CB-20260901-abcd1234",
		SenderWalletID:    &sender,
		RecipientWalletID: &recipient,
		Type:              models.TypeTransfer,
		Status:            models.StatusInitiated,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	mock.ExpectExec("^INSERT INTO transactions").
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.CreateTransaction(context.Background(), txn)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetTransaction(t *testing.T) {
	testCases := []struct {
		name       string
		mockSetup  func(mock sqlmock.Sqlmock, id uuid.UUID)
		assertFunc func(t *testing.T, txn *models.Transaction, err error)
	}{
		{
			name: "Success",
			mockSetup: func(mock sqlmock.Sqlmock, id uuid.UUID) {
				mock.ExpectQuery("^SELECT (.+) FROM transactions WHERE id").
					WithArgs(id).
					WillReturnRows(transactionRow(id, models.StatusInitiated))
			},
			assertFunc: func(t *testing.T, txn *models.Transaction, err error) {
				assert.NoError(t, err)
				assert.NotNil(t, txn)
				assert.Equal(t, models.StatusInitiated, txn.Status)
				assert.Equal(t, "test", txn.Metadata["note"])
			},
		},
		{
			name: "Not Found",
			mockSetup: func(mock sqlmock.Sqlmock, id uuid.UUID) {
				mock.ExpectQuery("^SELECT (.+) FROM transactions WHERE id").
					WithArgs(id).
					WillReturnError(sql.ErrNoRows)
			},
			assertFunc: func(t *testing.T, txn *models.Transaction, err error) {
				assert.ErrorIs(t, err, models.ErrTransactionNotFound)
				assert.Nil(t, txn)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock, cleanup := setupTransactionRepoTest(t)
			defer cleanup()

			id := uuid.New()
			tc.mockSetup(mock, id)
			txn, err := repo.GetTransaction(context.Background(), id)
			tc.assertFunc(t, txn, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUpdateStatus(t *testing.T) {
	testCases := []struct {
		name       string
		mockSetup  func(mock sqlmock.Sqlmock, id uuid.UUID)
		assertFunc func(t *testing.T, err error)
	}{
		{
			name: "Success",
			mockSetup: func(mock sqlmock.Sqlmock, id uuid.UUID) {
				mock.ExpectExec("^UPDATE transactions").
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
			assertFunc: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name: "Lost Race Reports Current Status",
			mockSetup: func(mock sqlmock.Sqlmock, id uuid.UUID) {
				// Zero rows: another worker moved the status first. The repo
				// refetches to name the actual current state.
				mock.ExpectExec("^UPDATE transactions").
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectQuery("^SELECT (.+) FROM transactions WHERE id").
					WithArgs(id).
					WillReturnRows(transactionRow(id, models.StatusCompleted))
			},
			assertFunc: func(t *testing.T, err error) {
				assert.Error(t, err)
				assert.True(t, models.IsIllegalTransition(err))
				assert.Contains(t, err.Error(), "completed")
			},
		},
		{
			name: "Unknown Transaction",
			mockSetup: func(mock sqlmock.Sqlmock, id uuid.UUID) {
				mock.ExpectExec("^UPDATE transactions").
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectQuery("^SELECT (.+) FROM transactions WHERE id").
					WithArgs(id).
					WillReturnError(sql.ErrNoRows)
			},
			assertFunc: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, models.ErrTransactionNotFound)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock, cleanup := setupTransactionRepoTest(t)
			defer cleanup()

			id := uuid.New()
			tc.mockSetup(mock, id)
			err := repo.UpdateStatus(context.Background(), id, models.StatusProcessing, models.StatusCompleted, nil)
			tc.assertFunc(t, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestIncrementRetryCount(t *testing.T) {
	repo, mock, cleanup := setupTransactionRepoTest(t)
	defer cleanup()

	id := uuid.New()
	mock.ExpectQuery("^UPDATE transactions SET retry_count = retry_count \\+ 1").
		WillReturnRows(sqlmock.NewRows([]string{"retry_count"}).AddRow(3))

	count, err := repo.IncrementRetryCount(context.Background(), id)
	assert.NoError(t, err)
	assert.Equal(t, 3, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListStaleProcessing(t *testing.T) {
	repo, mock, cleanup := setupTransactionRepoTest(t)
	defer cleanup()

	id := uuid.New()
	cutoff := time.Now().UTC().Add(-5 * time.Minute)
	mock.ExpectQuery("^SELECT (.+) FROM transactions WHERE status = (.+) AND processing_at <").
		WithArgs(models.StatusProcessing, cutoff, 100).
		WillReturnRows(transactionRow(id, models.StatusProcessing))

	stale, err := repo.ListStaleProcessing(context.Background(), cutoff, 100)
	assert.NoError(t, err)
	assert.Len(t, stale, 1)
	assert.Equal(t, id, stale[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
