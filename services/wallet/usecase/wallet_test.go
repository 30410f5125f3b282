package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/summer-project-team/crossbridge/internal/pkg/models"
	"github.com/summer-project-team/crossbridge/services/wallet/mocks"
)

func setupWalletUCTest(t *testing.T) (*WalletUC, *mocks.MockWalletRepo, *mocks.MockPoolRepo, *mocks.MockPoolAlertGW, *gomock.Controller) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockRepo := mocks.NewMockWalletRepo(ctrl)
	mockPool := mocks.NewMockPoolRepo(ctrl)
	mockGW := mocks.NewMockPoolAlertGW(ctrl)
	uc := NewWalletUC(&models.Config{}, mockRepo, mockPool, mockGW)
	return uc, mockRepo, mockPool, mockGW, ctrl
}

func TestCreateWallet_Success(t *testing.T) {
	uc, mockRepo, _, _, ctrl := setupWalletUCTest(t)
	defer ctrl.Finish()

	userID := uuid.New()
	want := &models.Wallet{ID: uuid.New(), UserID: userID, IsActive: true}
	mockRepo.EXPECT().
		CreateWallet(gomock.Any(), userID).
		Return(want, nil)

	wallet, err := uc.CreateWallet(context.Background(), userID)
	assert.NoError(t, err)
	assert.Equal(t, want, wallet)
}

func TestGetBalance_PassesThrough(t *testing.T) {
	uc, mockRepo, _, _, ctrl := setupWalletUCTest(t)
	defer ctrl.Finish()

	walletID := uuid.New()
	mockRepo.EXPECT().
		GetBalance(gomock.Any(), walletID, "CBUSD").
		Return(decimal.RequireFromString("100.00"), nil)

	balance, err := uc.GetBalance(context.Background(), walletID, "CBUSD")
	assert.NoError(t, err)
	assert.True(t, balance.Equal(decimal.RequireFromString("100.00")))
}

func TestRetireWallet_NotFound(t *testing.T) {
	uc, mockRepo, _, _, ctrl := setupWalletUCTest(t)
	defer ctrl.Finish()

	walletID := uuid.New()
	mockRepo.EXPECT().
		RetireWallet(gomock.Any(), walletID).
		Return(models.ErrWalletNotFound)

	err := uc.RetireWallet(context.Background(), walletID)
	assert.ErrorIs(t, err, models.ErrWalletNotFound)
}

func TestRebalancePool_PublishesEvent(t *testing.T) {
	uc, _, mockPool, mockGW, ctrl := setupWalletUCTest(t)
	defer ctrl.Finish()

	pool := &models.LiquidityPool{
		Currency:      "NGN",
		Balance:       decimal.RequireFromString("500000.00"),
		TargetBalance: decimal.RequireFromString("500000.00"),
		MinThreshold:  decimal.RequireFromString("100000.00"),
		MaxThreshold:  decimal.RequireFromString("900000.00"),
		UpdatedAt:     time.Now().UTC(),
	}
	delta := decimal.RequireFromString("120000.00")

	mockPool.EXPECT().
		Rebalance(gomock.Any(), "NGN").
		Return(pool, delta, nil)
	mockGW.EXPECT().
		PublishPoolRebalanced(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event models.PoolAlertEvent) error {
			assert.Equal(t, "NGN", event.Currency)
			assert.True(t, event.Balance.Equal(pool.Balance))
			return nil
		})

	result, err := uc.RebalancePool(context.Background(), "NGN")
	assert.NoError(t, err)
	assert.Equal(t, pool, result)
}

func TestRebalancePool_PublishFailureIsNotFatal(t *testing.T) {
	uc, _, mockPool, mockGW, ctrl := setupWalletUCTest(t)
	defer ctrl.Finish()

	pool := &models.LiquidityPool{Currency: "GBP", Balance: decimal.RequireFromString("80000.00")}
	mockPool.EXPECT().
		Rebalance(gomock.Any(), "GBP").
		Return(pool, decimal.RequireFromString("5000.00"), nil)
	mockGW.EXPECT().
		PublishPoolRebalanced(gomock.Any(), gomock.Any()).
		Return(errors.New("nats unavailable"))

	result, err := uc.RebalancePool(context.Background(), "GBP")
	assert.NoError(t, err)
	assert.Equal(t, pool, result)
}

func TestHandlePoolAlert_RebalancesBreachedPool(t *testing.T) {
	uc, _, mockPool, mockGW, ctrl := setupWalletUCTest(t)
	defer ctrl.Finish()

	pool := &models.LiquidityPool{
		Currency:      "GBP",
		Balance:       decimal.RequireFromString("100000.00"),
		TargetBalance: decimal.RequireFromString("100000.00"),
	}
	mockPool.EXPECT().
		Rebalance(gomock.Any(), "GBP").
		Return(pool, decimal.RequireFromString("35000.00"), nil)
	mockGW.EXPECT().
		PublishPoolRebalanced(gomock.Any(), gomock.Any()).
		Return(nil)

	alert, err := json.Marshal(models.PoolAlertEvent{
		Currency:     "GBP",
		Balance:      decimal.RequireFromString("65000.00"),
		MinThreshold: decimal.RequireFromString("70000.00"),
		Timestamp:    time.Now().UTC(),
	})
	assert.NoError(t, err)

	assert.NoError(t, uc.HandlePoolAlert(alert))
}

func TestHandlePoolAlert_MalformedMessageIsDropped(t *testing.T) {
	uc, _, _, _, ctrl := setupWalletUCTest(t)
	defer ctrl.Finish()

	// Acknowledge garbage instead of cycling it through the queue group.
	assert.NoError(t, uc.HandlePoolAlert([]byte("{not json")))
}
