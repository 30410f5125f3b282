package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/summer-project-team/crossbridge/internal/pkg/models"
)

var poolTestColumns = []string{
	"currency", "balance", "target_balance", "min_threshold", "max_threshold",
	"last_rebalanced_at", "updated_at",
}

func poolRow(currency, balance string) *sqlmock.Rows {
	now := time.Now().UTC()
	return sqlmock.NewRows(poolTestColumns).
		AddRow(currency, balance, "100000.00", "10000.00", "500000.00", nil, now)
}

func setupPoolRepoTest(t *testing.T) (*PoolRepo, sqlmock.Sqlmock, func()) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")
	repo := NewPoolRepo(&models.Config{}, sqlxDB)
	return repo, mock, func() { sqlxDB.Close() }
}

func TestGetPool(t *testing.T) {
	tests := []struct {
		name     string
		currency string
		setup    func(mock sqlmock.Sqlmock)
		wantErr  error
	}{
		{
			name:     "Success",
			currency: "NGN",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("^SELECT (.+) FROM liquidity_pools").
					WithArgs("NGN").
					WillReturnRows(poolRow("NGN", "250000.00"))
			},
		},
		{
			name:     "Unknown Currency",
			currency: "XXX",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("^SELECT (.+) FROM liquidity_pools").
					WithArgs("XXX").
					WillReturnRows(sqlmock.NewRows(poolTestColumns))
			},
			wantErr: models.ErrPoolNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupPoolRepoTest(t)
			defer cleanup()

			tt.setup(mock)

			pool, err := repo.GetPool(context.Background(), tt.currency)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, pool)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.currency, pool.Currency)
				assert.True(t, pool.Balance.Equal(decimal.RequireFromString("250000.00")))
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDebitPool(t *testing.T) {
	t.Run("Success Locks Row And Commits", func(t *testing.T) {
		repo, mock, cleanup := setupPoolRepoTest(t)
		defer cleanup()

		mock.ExpectBegin()
		mock.ExpectQuery("^SELECT (.+) FROM liquidity_pools (.+) FOR UPDATE").
			WithArgs("GBP").
			WillReturnRows(poolRow("GBP", "50000.00"))
		mock.ExpectExec("^UPDATE liquidity_pools SET balance").
			WithArgs("30000", sqlmock.AnyArg(), "GBP").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		pool, err := repo.DebitPool(context.Background(), "GBP", decimal.RequireFromString("20000.00"))
		assert.NoError(t, err)
		assert.True(t, pool.Balance.Equal(decimal.RequireFromString("30000.00")))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Insufficient Pool Balance Rolls Back", func(t *testing.T) {
		repo, mock, cleanup := setupPoolRepoTest(t)
		defer cleanup()

		mock.ExpectBegin()
		mock.ExpectQuery("^SELECT (.+) FROM liquidity_pools (.+) FOR UPDATE").
			WithArgs("GBP").
			WillReturnRows(poolRow("GBP", "50000.00"))
		mock.ExpectRollback()

		pool, err := repo.DebitPool(context.Background(), "GBP", decimal.RequireFromString("50000.01"))
		assert.ErrorIs(t, err, models.ErrPoolInsufficient)
		assert.Nil(t, pool)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Unknown Currency Rolls Back", func(t *testing.T) {
		repo, mock, cleanup := setupPoolRepoTest(t)
		defer cleanup()

		mock.ExpectBegin()
		mock.ExpectQuery("^SELECT (.+) FROM liquidity_pools (.+) FOR UPDATE").
			WithArgs("XXX").
			WillReturnRows(sqlmock.NewRows(poolTestColumns))
		mock.ExpectRollback()

		pool, err := repo.DebitPool(context.Background(), "XXX", decimal.RequireFromString("1.00"))
		assert.ErrorIs(t, err, models.ErrPoolNotFound)
		assert.Nil(t, pool)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCreditPool(t *testing.T) {
	repo, mock, cleanup := setupPoolRepoTest(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectQuery("^SELECT (.+) FROM liquidity_pools (.+) FOR UPDATE").
		WithArgs("NGN").
		WillReturnRows(poolRow("NGN", "250000.00"))
	mock.ExpectExec("^UPDATE liquidity_pools SET balance").
		WithArgs("251950", sqlmock.AnyArg(), "NGN").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	pool, err := repo.CreditPool(context.Background(), "NGN", decimal.RequireFromString("1950.00"))
	assert.NoError(t, err)
	assert.True(t, pool.Balance.Equal(decimal.RequireFromString("251950.00")))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRebalance(t *testing.T) {
	t.Run("Deficit Pool Is Topped Up To Target", func(t *testing.T) {
		repo, mock, cleanup := setupPoolRepoTest(t)
		defer cleanup()

		mock.ExpectBegin()
		mock.ExpectQuery("^SELECT (.+) FROM liquidity_pools (.+) FOR UPDATE").
			WithArgs("GBP").
			WillReturnRows(poolRow("GBP", "40000.00"))
		mock.ExpectExec("^UPDATE liquidity_pools SET balance (.+) last_rebalanced_at").
			WithArgs("100000", sqlmock.AnyArg(), sqlmock.AnyArg(), "GBP").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		pool, delta, err := repo.Rebalance(context.Background(), "GBP")
		assert.NoError(t, err)
		assert.True(t, delta.Equal(decimal.RequireFromString("60000.00")))
		assert.True(t, pool.Balance.Equal(pool.TargetBalance))
		assert.NotNil(t, pool.LastRebalanced)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Surplus Pool Reports Negative Delta", func(t *testing.T) {
		repo, mock, cleanup := setupPoolRepoTest(t)
		defer cleanup()

		mock.ExpectBegin()
		mock.ExpectQuery("^SELECT (.+) FROM liquidity_pools (.+) FOR UPDATE").
			WithArgs("NGN").
			WillReturnRows(poolRow("NGN", "130000.00"))
		mock.ExpectExec("^UPDATE liquidity_pools SET balance (.+) last_rebalanced_at").
			WithArgs("100000", sqlmock.AnyArg(), sqlmock.AnyArg(), "NGN").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		_, delta, err := repo.Rebalance(context.Background(), "NGN")
		assert.NoError(t, err)
		assert.True(t, delta.Equal(decimal.RequireFromString("-30000.00")))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
