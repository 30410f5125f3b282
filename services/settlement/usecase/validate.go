package usecase

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/summer-project-team/crossbridge/internal/pkg/logger"
	"github.com/summer-project-team/crossbridge/internal/pkg/models"
)

// validateSpec rejects specs with missing or contradictory fields before a
// transaction record is written.
func (uc *SettlementUC) validateSpec(ctx context.Context, spec models.TransactionSpec) error {
	if !spec.Type.IsValid() {
		return fmt.Errorf("%w: unknown transaction type %q", models.ErrInvalidSpec, spec.Type)
	}
	if !spec.Amount.IsPositive() {
		return fmt.Errorf("%w: amount must be positive", models.ErrInvalidSpec)
	}
	if spec.SourceCurrency == "" {
		return fmt.Errorf("%w: source currency is required", models.ErrInvalidSpec)
	}

	switch spec.Type {
	case models.TypeTransfer:
		if spec.SenderWalletID == nil || spec.RecipientWalletID == nil {
			return fmt.Errorf("%w: transfer requires sender and recipient wallets", models.ErrInvalidSpec)
		}
		if *spec.SenderWalletID == *spec.RecipientWalletID {
			return fmt.Errorf("%w: sender and recipient must differ", models.ErrInvalidSpec)
		}
		return uc.precheckBalance(ctx, spec)

	case models.TypeDeposit, models.TypeMint:
		if spec.RecipientWalletID == nil {
			return fmt.Errorf("%w: %s requires a recipient wallet", models.ErrInvalidSpec, spec.Type)
		}
		if spec.SenderWalletID != nil {
			return fmt.Errorf("%w: %s must not name a sender wallet", models.ErrInvalidSpec, spec.Type)
		}

	case models.TypeWithdrawal, models.TypeBurn:
		if spec.SenderWalletID == nil {
			return fmt.Errorf("%w: %s requires a sender wallet", models.ErrInvalidSpec, spec.Type)
		}
		if spec.RecipientWalletID != nil {
			return fmt.Errorf("%w: %s must not name a recipient wallet", models.ErrInvalidSpec, spec.Type)
		}

	case models.TypeBankToBank:
		if spec.TargetCurrency == "" {
			return fmt.Errorf("%w: bank-to-bank requires a target currency", models.ErrInvalidSpec)
		}
		if spec.SourceCurrency == spec.TargetCurrency {
			return fmt.Errorf("%w: bank-to-bank requires distinct corridors", models.ErrInvalidSpec)
		}
	}
	return nil
}

// precheckBalance rejects transfers the sender obviously cannot fund. The
// authoritative check still happens under the row lock at movement time;
// this only saves the caller a doomed round-trip.
func (uc *SettlementUC) precheckBalance(ctx context.Context, spec models.TransactionSpec) error {
	balance, err := uc.walletStore.GetBalance(ctx, *spec.SenderWalletID, spec.SourceCurrency)
	if err != nil {
		return err
	}

	total := spec.Amount.Add(uc.feeFor(spec.Type, spec.Amount))
	if balance.LessThan(total) {
		return models.ErrInsufficientFunds
	}
	return nil
}

// validate runs the slow checks of the optimistic path: daily volume limit
// and risk scoring. It never touches the ledger.
func (uc *SettlementUC) validate(ctx context.Context, txn *models.Transaction) error {
	walletID := txn.SenderWalletID
	if walletID == nil {
		walletID = txn.RecipientWalletID
	}

	total, err := uc.limitsStore.AddDailyVolume(ctx, *walletID, txn.CBUSDAmount)
	if err != nil {
		return err
	}
	limit := decimal.NewFromFloat(uc.cfg.Limits.DailyTransferLimit)
	if total.GreaterThan(limit) {
		logger.Warn("daily transfer limit exceeded",
			logger.String("transaction_id", txn.ID.String()),
			logger.String("wallet_id", walletID.String()),
			logger.String("daily_total", total.String()))
		return fmt.Errorf("%w: daily transfer limit exceeded", models.ErrValidationFailed)
	}

	score := uc.riskScore(txn, total)
	if score >= uc.cfg.Limits.RiskScoreThreshold {
		logger.Warn("risk score above threshold",
			logger.String("transaction_id", txn.ID.String()),
			logger.Float64("score", score))
		return fmt.Errorf("%w: risk score %.2f above threshold", models.ErrValidationFailed, score)
	}
	return nil
}

// riskScore is a cheap heuristic in [0, 1]: how much of the daily budget
// this transaction consumes, weighted up when the day's running total is
// already high.
func (uc *SettlementUC) riskScore(txn *models.Transaction, dailyTotal decimal.Decimal) float64 {
	limit := uc.cfg.Limits.DailyTransferLimit
	if limit <= 0 {
		return 0
	}

	amount, _ := txn.CBUSDAmount.Float64()
	total, _ := dailyTotal.Float64()

	score := 0.7*(amount/limit) + 0.3*(total/limit)
	if score > 1 {
		score = 1
	}
	return score
}
