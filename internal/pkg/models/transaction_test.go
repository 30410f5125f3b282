package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTotalDebit(t *testing.T) {
	txn := &Transaction{
		Amount: decimal.RequireFromString("40.00"),
		Fee:    decimal.RequireFromString("0.10"),
	}
	assert.True(t, txn.TotalDebit().Equal(decimal.RequireFromString("40.10")))
}

func TestTransactionTypeIsValid(t *testing.T) {
	for _, valid := range []TransactionType{TypeTransfer, TypeDeposit, TypeWithdrawal, TypeMint, TypeBurn, TypeBankToBank} {
		assert.True(t, valid.IsValid(), string(valid))
	}
	assert.False(t, TransactionType("payout").IsValid())
	assert.False(t, TransactionType("").IsValid())
}

func TestPoolBreachesThreshold(t *testing.T) {
	pool := &LiquidityPool{
		Balance:      decimal.RequireFromString("500.00"),
		MinThreshold: decimal.RequireFromString("100.00"),
		MaxThreshold: decimal.RequireFromString("1000.00"),
	}
	assert.False(t, pool.BreachesThreshold())

	pool.Balance = decimal.RequireFromString("99.99")
	assert.True(t, pool.BreachesThreshold())

	pool.Balance = decimal.RequireFromString("1000.01")
	assert.True(t, pool.BreachesThreshold())

	// Band edges are inside the band.
	pool.Balance = pool.MinThreshold
	assert.False(t, pool.BreachesThreshold())
	pool.Balance = pool.MaxThreshold
	assert.False(t, pool.BreachesThreshold())
}
