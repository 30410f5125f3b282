package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/summer-project-team/crossbridge/internal/pkg/models"
)

// WalletRepo is the PostgreSQL wallet store. Every mutation runs inside a
// database transaction with the touched balance rows locked FOR UPDATE, so
// two concurrent debits against the same balance serialize and the second
// one sees the first one's result.
type WalletRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewWalletRepo creates a new wallet repository
func NewWalletRepo(cfg *models.Config, db *sqlx.DB) *WalletRepo {
	return &WalletRepo{
		cfg: cfg,
		db:  db,
	}
}

// CreateWallet creates a wallet for a user
func (r *WalletRepo) CreateWallet(ctx context.Context, userID uuid.UUID) (*models.Wallet, error) {
	now := time.Now().UTC()
	wallet := &models.Wallet{
		ID:        uuid.New(),
		UserID:    userID,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	query := `
		INSERT INTO wallets (id, user_id, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.db.ExecContext(ctx, query, wallet.ID, wallet.UserID, wallet.IsActive, wallet.CreatedAt, wallet.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create wallet: %w", err)
	}

	return wallet, nil
}

// GetWallet retrieves a wallet and its balances
func (r *WalletRepo) GetWallet(ctx context.Context, walletID uuid.UUID) (*models.Wallet, error) {
	query := `
		SELECT id, user_id, is_active, created_at, updated_at
		FROM wallets
		WHERE id = $1
	`

	var wallet models.Wallet
	err := r.db.QueryRowContext(ctx, query, walletID).Scan(
		&wallet.ID,
		&wallet.UserID,
		&wallet.IsActive,
		&wallet.CreatedAt,
		&wallet.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrWalletNotFound
		}
		return nil, fmt.Errorf("failed to get wallet: %w", err)
	}

	balanceQuery := `
		SELECT wallet_id, currency, balance, updated_at
		FROM wallet_balances
		WHERE wallet_id = $1
		ORDER BY currency
	`
	rows, err := r.db.QueryContext(ctx, balanceQuery, walletID)
	if err != nil {
		return nil, fmt.Errorf("failed to get wallet balances: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var b models.WalletBalance
		if err := rows.Scan(&b.WalletID, &b.Currency, &b.Balance, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan balance row: %w", err)
		}
		wallet.Balances = append(wallet.Balances, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &wallet, nil
}

// GetBalance retrieves a single currency balance. A wallet without a row
// for the currency has a zero balance.
func (r *WalletRepo) GetBalance(ctx context.Context, walletID uuid.UUID, currency string) (decimal.Decimal, error) {
	query := `SELECT balance FROM wallet_balances WHERE wallet_id = $1 AND currency = $2`

	var balance decimal.Decimal
	err := r.db.QueryRowContext(ctx, query, walletID, currency).Scan(&balance)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			if exists, existsErr := r.walletExists(ctx, walletID); existsErr != nil {
				return decimal.Zero, existsErr
			} else if !exists {
				return decimal.Zero, models.ErrWalletNotFound
			}
			return decimal.Zero, nil
		}
		return decimal.Zero, fmt.Errorf("failed to get balance: %w", err)
	}

	return balance, nil
}

// Credit atomically adds to a balance, creating the currency row on first use
func (r *WalletRepo) Credit(ctx context.Context, walletID uuid.UUID, currency string, amount decimal.Decimal) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := r.creditTx(ctx, tx, walletID, currency, amount); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit credit: %w", err)
	}
	return nil
}

// Debit atomically subtracts from a balance
func (r *WalletRepo) Debit(ctx context.Context, walletID uuid.UUID, currency string, amount decimal.Decimal) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := r.debitTx(ctx, tx, walletID, currency, amount); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit debit: %w", err)
	}
	return nil
}

// Transfer executes the paired debit and credit in one database transaction.
// Rows are locked in (wallet_id, currency) order so two transfers crossing
// in opposite directions cannot deadlock.
func (r *WalletRepo) Transfer(ctx context.Context, senderID uuid.UUID, sourceCurrency string, debitAmount decimal.Decimal,
	recipientID uuid.UUID, targetCurrency string, creditAmount decimal.Decimal) error {

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	debitFirst := lockKey(senderID, sourceCurrency) <= lockKey(recipientID, targetCurrency)
	if debitFirst {
		if err := r.debitTx(ctx, tx, senderID, sourceCurrency, debitAmount); err != nil {
			return err
		}
		if err := r.creditTx(ctx, tx, recipientID, targetCurrency, creditAmount); err != nil {
			return err
		}
	} else {
		if err := r.creditTx(ctx, tx, recipientID, targetCurrency, creditAmount); err != nil {
			return err
		}
		if err := r.debitTx(ctx, tx, senderID, sourceCurrency, debitAmount); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transfer: %w", err)
	}
	return nil
}

// RetireWallet soft-retires a wallet with its owning user
func (r *WalletRepo) RetireWallet(ctx context.Context, walletID uuid.UUID) error {
	query := `UPDATE wallets SET is_active = false, updated_at = $1 WHERE id = $2`

	result, err := r.db.ExecContext(ctx, query, time.Now().UTC(), walletID)
	if err != nil {
		return fmt.Errorf("failed to retire wallet: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return models.ErrWalletNotFound
	}
	return nil
}

// debitTx locks the balance row, checks funds, and subtracts.
func (r *WalletRepo) debitTx(ctx context.Context, tx *sqlx.Tx, walletID uuid.UUID, currency string, amount decimal.Decimal) error {
	var balance decimal.Decimal
	err := tx.QueryRowContext(ctx,
		`SELECT balance FROM wallet_balances WHERE wallet_id = $1 AND currency = $2 FOR UPDATE`,
		walletID, currency,
	).Scan(&balance)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// No balance row means a zero balance: insufficient unless the
			// wallet itself is missing.
			if exists, existsErr := r.walletExists(ctx, walletID); existsErr != nil {
				return existsErr
			} else if !exists {
				return models.ErrWalletNotFound
			}
			return models.ErrInsufficientFunds
		}
		return fmt.Errorf("failed to lock balance row: %w", err)
	}

	if balance.LessThan(amount) {
		return models.ErrInsufficientFunds
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE wallet_balances SET balance = balance - $1, updated_at = $2 WHERE wallet_id = $3 AND currency = $4`,
		amount, time.Now().UTC(), walletID, currency,
	)
	if err != nil {
		return fmt.Errorf("failed to debit balance: %w", err)
	}
	return nil
}

// creditTx upserts the balance row and adds.
func (r *WalletRepo) creditTx(ctx context.Context, tx *sqlx.Tx, walletID uuid.UUID, currency string, amount decimal.Decimal) error {
	if exists, err := r.walletExists(ctx, walletID); err != nil {
		return err
	} else if !exists {
		return models.ErrWalletNotFound
	}

	query := `
		INSERT INTO wallet_balances (wallet_id, currency, balance, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (wallet_id, currency)
		DO UPDATE SET balance = wallet_balances.balance + EXCLUDED.balance, updated_at = EXCLUDED.updated_at
	`
	_, err := tx.ExecContext(ctx, query, walletID, currency, amount, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to credit balance: %w", err)
	}
	return nil
}

func (r *WalletRepo) walletExists(ctx context.Context, walletID uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM wallets WHERE id = $1 AND is_active = true)`,
		walletID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check wallet existence: %w", err)
	}
	return exists, nil
}

func lockKey(walletID uuid.UUID, currency string) string {
	return walletID.String() + ":" + currency
}
