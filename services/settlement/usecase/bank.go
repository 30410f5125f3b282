package usecase

import (
	"context"
	"fmt"

	"github.com/summer-project-team/crossbridge/internal/pkg/logger"
	"github.com/summer-project-team/crossbridge/internal/pkg/models"
)

// completeBankToBank settles a bank-to-bank transfer as a four-step saga,
// one ledger event per applied step:
//
//  1. debit the source currency pool (funds enter the bridge)
//  2. move the bridge-unit value between corridor pools
//  3. credit the target currency pool
//  4. record the settlement against the external bank rail
//
// Applied pool movements are never rolled back automatically. A failure
// after step 1 surfaces as ExternalSettlementFailed, which parks the
// transaction for manual reconciliation with the last applied step
// recorded. Each step is guarded by its ledger event so a re-drive resumes
// where the previous attempt stopped.
func (uc *SettlementUC) completeBankToBank(ctx context.Context, txn *models.Transaction) error {
	first, second := txn.SourceCurrency, txn.TargetCurrency
	if second < first {
		first, second = second, first
	}
	for _, currency := range []string{first, second} {
		acquired, err := uc.poolLocker.AcquirePoolLock(ctx, currency)
		if err != nil {
			return err
		}
		if !acquired {
			return fmt.Errorf("pool %s busy with another settlement", currency)
		}
		defer uc.poolLocker.ReleasePoolLock(ctx, currency)
	}

	// Step 1: source pool debit. Nothing is applied yet, so a failure here
	// is an ordinary recoverable failure, not a reconciliation case.
	applied, err := uc.ledgerRepo.HasEvent(ctx, txn.ID, models.EventBankPoolDebit)
	if err != nil {
		return err
	}
	if !applied {
		pool, err := uc.poolStore.DebitPool(ctx, txn.SourceCurrency, txn.Amount)
		if err != nil {
			return err
		}
		uc.alertOnBreach(ctx, pool)
		if err := uc.recordSagaStep(ctx, txn, 1, models.EventBankPoolDebit, map[string]interface{}{
			"currency": txn.SourceCurrency,
			"amount":   txn.Amount.String(),
		}); err != nil {
			return err
		}
	}

	// Step 2: bridge move.
	if err := uc.sagaStepOnce(ctx, txn, 2, models.EventBankBridgeMoved, map[string]interface{}{
		"cbusd_amount": txn.CBUSDAmount.String(),
	}, nil); err != nil {
		return err
	}

	// Step 3: target pool credit.
	creditAmount := txn.Amount.Mul(txn.ExchangeRate).Round(2)
	if err := uc.sagaStepOnce(ctx, txn, 3, models.EventBankPoolCredit, map[string]interface{}{
		"currency": txn.TargetCurrency,
		"amount":   creditAmount.String(),
	}, func() error {
		pool, err := uc.poolStore.CreditPool(ctx, txn.TargetCurrency, creditAmount)
		if err != nil {
			return err
		}
		uc.alertOnBreach(ctx, pool)
		return nil
	}); err != nil {
		return err
	}

	// Step 4: external rail record.
	if err := uc.sagaStepOnce(ctx, txn, 4, models.EventBankRailRecorded, map[string]interface{}{
		"rail_reference": "RAIL-" + txn.Reference,
	}, nil); err != nil {
		return err
	}

	return nil
}

// sagaStepOnce applies a saga step exactly once: a step whose ledger event
// already exists is skipped. Failures are wrapped as
// ExternalSettlementFailed because step 1 has already moved pool funds.
func (uc *SettlementUC) sagaStepOnce(ctx context.Context, txn *models.Transaction, step int,
	eventType models.LedgerEventType, payload map[string]interface{}, apply func() error) error {

	applied, err := uc.ledgerRepo.HasEvent(ctx, txn.ID, eventType)
	if err != nil {
		return err
	}
	if applied {
		return nil
	}

	if apply != nil {
		if err := apply(); err != nil {
			return fmt.Errorf("%w: step %d: %v", models.ErrExternalSettlementFailed, step, err)
		}
	}
	if err := uc.recordSagaStep(ctx, txn, step, eventType, payload); err != nil {
		return fmt.Errorf("%w: step %d: %v", models.ErrExternalSettlementFailed, step, err)
	}
	return nil
}

func (uc *SettlementUC) recordSagaStep(ctx context.Context, txn *models.Transaction, step int,
	eventType models.LedgerEventType, payload map[string]interface{}) error {

	if _, err := uc.ledgerRepo.Append(ctx, txn.ID, eventType, payload); err != nil {
		return err
	}
	if err := uc.txnRepo.SetSagaStep(ctx, txn.ID, step); err != nil {
		return err
	}
	txn.SagaStep = step

	logger.Info("bank settlement step applied",
		logger.String("transaction_id", txn.ID.String()),
		logger.Int("step", step),
		logger.String("event", string(eventType)))
	return nil
}

// alertOnBreach publishes a threshold alert when a pool leaves its band.
// Alerts never block settlement.
func (uc *SettlementUC) alertOnBreach(ctx context.Context, pool *models.LiquidityPool) {
	if pool == nil || !pool.BreachesThreshold() {
		return
	}

	event := models.PoolAlertEvent{
		Currency:     pool.Currency,
		Balance:      pool.Balance,
		MinThreshold: pool.MinThreshold,
		MaxThreshold: pool.MaxThreshold,
		Timestamp:    pool.UpdatedAt,
	}
	if err := uc.gw.PublishPoolThresholdBreached(ctx, event); err != nil {
		logger.Warn("failed to publish pool threshold alert",
			logger.String("currency", pool.Currency),
			logger.Err(err))
	}
}
