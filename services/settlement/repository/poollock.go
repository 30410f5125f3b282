package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/summer-project-team/crossbridge/internal/pkg/constants"
	"github.com/summer-project-team/crossbridge/internal/pkg/database"
)

// poolLockTTL bounds how long a crashed settlement can hold a currency lock.
const poolLockTTL = 30 * time.Second

// lockClient is the slice of the Redis client the pool lock needs.
type lockClient interface {
	AcquireLock(ctx context.Context, key, token string, ttl time.Duration) (bool, error)
	ReleaseLock(ctx context.Context, key, token string) error
}

// PoolLockRepo serializes pool mutations per currency through Redis locks.
// Each acquisition mints a holder token; release only deletes the lock
// while that token is still stored, so a lock re-acquired after a TTL
// expiry cannot be released by the stale holder.
type PoolLockRepo struct {
	redisClient lockClient

	mu     sync.Mutex
	tokens map[string]string
}

// NewPoolLockRepo creates a new pool lock repository
func NewPoolLockRepo(redisClient *database.RedisClient) *PoolLockRepo {
	return &PoolLockRepo{
		redisClient: redisClient,
		tokens:      make(map[string]string),
	}
}

// AcquirePoolLock takes the per-currency settlement lock
func (r *PoolLockRepo) AcquirePoolLock(ctx context.Context, currency string) (bool, error) {
	token := uuid.NewString()
	acquired, err := r.redisClient.AcquireLock(ctx, poolLockKey(currency), token, poolLockTTL)
	if err != nil || !acquired {
		return acquired, err
	}

	r.mu.Lock()
	r.tokens[currency] = token
	r.mu.Unlock()
	return true, nil
}

// ReleasePoolLock drops the per-currency settlement lock. Releasing a lock
// this instance does not hold is a no-op.
func (r *PoolLockRepo) ReleasePoolLock(ctx context.Context, currency string) error {
	r.mu.Lock()
	token, held := r.tokens[currency]
	delete(r.tokens, currency)
	r.mu.Unlock()

	if !held {
		return nil
	}
	return r.redisClient.ReleaseLock(ctx, poolLockKey(currency), token)
}

func poolLockKey(currency string) string {
	return fmt.Sprintf(constants.KeyPoolLock, currency)
}
