package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeLockClient struct {
	acquireOK   bool
	acquireErr  error
	acquiredKey string
	acquired    []string
	released    map[string]string
}

func (f *fakeLockClient) AcquireLock(_ context.Context, key, token string, _ time.Duration) (bool, error) {
	f.acquiredKey = key
	f.acquired = append(f.acquired, token)
	return f.acquireOK, f.acquireErr
}

func (f *fakeLockClient) ReleaseLock(_ context.Context, key, token string) error {
	if f.released == nil {
		f.released = map[string]string{}
	}
	f.released[key] = token
	return nil
}

func TestPoolLock_ReleaseUsesAcquisitionToken(t *testing.T) {
	client := &fakeLockClient{acquireOK: true}
	repo := &PoolLockRepo{redisClient: client, tokens: map[string]string{}}

	acquired, err := repo.AcquirePoolLock(context.Background(), "NGN")
	assert.NoError(t, err)
	assert.True(t, acquired)
	assert.Equal(t, poolLockKey("NGN"), client.acquiredKey)

	assert.NoError(t, repo.ReleasePoolLock(context.Background(), "NGN"))
	assert.Equal(t, client.acquired[0], client.released[poolLockKey("NGN")])
}

func TestPoolLock_ReleaseWithoutHoldIsNoOp(t *testing.T) {
	client := &fakeLockClient{}
	repo := &PoolLockRepo{redisClient: client, tokens: map[string]string{}}

	assert.NoError(t, repo.ReleasePoolLock(context.Background(), "GBP"))
	assert.Empty(t, client.released)
}

func TestPoolLock_ContendedAcquireStoresNoToken(t *testing.T) {
	client := &fakeLockClient{acquireOK: false}
	repo := &PoolLockRepo{redisClient: client, tokens: map[string]string{}}

	acquired, err := repo.AcquirePoolLock(context.Background(), "NGN")
	assert.NoError(t, err)
	assert.False(t, acquired)

	// The loser never held the lock, so its release must not touch Redis
	// and delete the winner's entry.
	assert.NoError(t, repo.ReleasePoolLock(context.Background(), "NGN"))
	assert.Empty(t, client.released)
}

func TestPoolLock_TokensAreScopedPerCurrency(t *testing.T) {
	client := &fakeLockClient{acquireOK: true}
	repo := &PoolLockRepo{redisClient: client, tokens: map[string]string{}}

	for _, currency := range []string{"NGN", "GBP"} {
		acquired, err := repo.AcquirePoolLock(context.Background(), currency)
		assert.NoError(t, err)
		assert.True(t, acquired)
	}
	assert.NotEqual(t, client.acquired[0], client.acquired[1])

	assert.NoError(t, repo.ReleasePoolLock(context.Background(), "GBP"))
	assert.Equal(t, client.acquired[1], client.released[poolLockKey("GBP")])
}
