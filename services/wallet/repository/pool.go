package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/summer-project-team/crossbridge/internal/pkg/models"
)

// PoolRepo is the PostgreSQL liquidity pool store
type PoolRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewPoolRepo creates a new liquidity pool repository
func NewPoolRepo(cfg *models.Config, db *sqlx.DB) *PoolRepo {
	return &PoolRepo{
		cfg: cfg,
		db:  db,
	}
}

// GetPool retrieves the liquidity pool for a fiat currency
func (r *PoolRepo) GetPool(ctx context.Context, currency string) (*models.LiquidityPool, error) {
	query := `
		SELECT currency, balance, target_balance, min_threshold, max_threshold, last_rebalanced_at, updated_at
		FROM liquidity_pools
		WHERE currency = $1
	`

	var pool models.LiquidityPool
	err := r.db.QueryRowContext(ctx, query, currency).Scan(
		&pool.Currency,
		&pool.Balance,
		&pool.TargetBalance,
		&pool.MinThreshold,
		&pool.MaxThreshold,
		&pool.LastRebalanced,
		&pool.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrPoolNotFound
		}
		return nil, fmt.Errorf("failed to get pool: %w", err)
	}

	return &pool, nil
}

// DebitPool subtracts from a pool balance, refusing to go negative
func (r *PoolRepo) DebitPool(ctx context.Context, currency string, amount decimal.Decimal) (*models.LiquidityPool, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	pool, err := lockPool(ctx, tx, currency)
	if err != nil {
		return nil, err
	}

	if pool.Balance.LessThan(amount) {
		return nil, models.ErrPoolInsufficient
	}

	pool.Balance = pool.Balance.Sub(amount)
	pool.UpdatedAt = time.Now().UTC()
	if err := updatePoolBalance(ctx, tx, pool); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit pool debit: %w", err)
	}
	return pool, nil
}

// CreditPool adds to a pool balance
func (r *PoolRepo) CreditPool(ctx context.Context, currency string, amount decimal.Decimal) (*models.LiquidityPool, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	pool, err := lockPool(ctx, tx, currency)
	if err != nil {
		return nil, err
	}

	pool.Balance = pool.Balance.Add(amount)
	pool.UpdatedAt = time.Now().UTC()
	if err := updatePoolBalance(ctx, tx, pool); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit pool credit: %w", err)
	}
	return pool, nil
}

// Rebalance moves the pool balance back to its target and reports the delta
// that treasury has to settle externally. A positive delta means funds were
// added to the pool, a negative delta means the surplus was drained.
func (r *PoolRepo) Rebalance(ctx context.Context, currency string) (*models.LiquidityPool, decimal.Decimal, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, decimal.Zero, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	pool, err := lockPool(ctx, tx, currency)
	if err != nil {
		return nil, decimal.Zero, err
	}

	delta := pool.TargetBalance.Sub(pool.Balance)
	now := time.Now().UTC()
	pool.Balance = pool.TargetBalance
	pool.LastRebalanced = &now
	pool.UpdatedAt = now

	query := `
		UPDATE liquidity_pools
		SET balance = $1, last_rebalanced_at = $2, updated_at = $3
		WHERE currency = $4
	`
	_, err = tx.ExecContext(ctx, query, pool.Balance, pool.LastRebalanced, pool.UpdatedAt, pool.Currency)
	if err != nil {
		return nil, decimal.Zero, fmt.Errorf("failed to rebalance pool: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, decimal.Zero, fmt.Errorf("failed to commit rebalance: %w", err)
	}
	return pool, delta, nil
}

func lockPool(ctx context.Context, tx *sqlx.Tx, currency string) (*models.LiquidityPool, error) {
	query := `
		SELECT currency, balance, target_balance, min_threshold, max_threshold, last_rebalanced_at, updated_at
		FROM liquidity_pools
		WHERE currency = $1
		FOR UPDATE
	`

	var pool models.LiquidityPool
	err := tx.QueryRowContext(ctx, query, currency).Scan(
		&pool.Currency,
		&pool.Balance,
		&pool.TargetBalance,
		&pool.MinThreshold,
		&pool.MaxThreshold,
		&pool.LastRebalanced,
		&pool.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrPoolNotFound
		}
		return nil, fmt.Errorf("failed to lock pool row: %w", err)
	}
	return &pool, nil
}

func updatePoolBalance(ctx context.Context, tx *sqlx.Tx, pool *models.LiquidityPool) error {
	_, err := tx.ExecContext(ctx,
		`UPDATE liquidity_pools SET balance = $1, updated_at = $2 WHERE currency = $3`,
		pool.Balance, pool.UpdatedAt, pool.Currency,
	)
	if err != nil {
		return fmt.Errorf("failed to update pool balance: %w", err)
	}
	return nil
}
