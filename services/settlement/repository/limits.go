package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/summer-project-team/crossbridge/internal/pkg/constants"
	"github.com/summer-project-team/crossbridge/internal/pkg/database"
)

// LimitsRepo tracks per-wallet daily transfer volume in Redis. Counters are
// keyed by wallet and calendar day and expire on their own, so there is no
// cleanup job.
type LimitsRepo struct {
	redisClient *database.RedisClient
}

// NewLimitsRepo creates a new daily limits repository
func NewLimitsRepo(redisClient *database.RedisClient) *LimitsRepo {
	return &LimitsRepo{redisClient: redisClient}
}

// AddDailyVolume adds to today's volume counter and returns the new total
func (r *LimitsRepo) AddDailyVolume(ctx context.Context, walletID uuid.UUID, amount decimal.Decimal) (decimal.Decimal, error) {
	value, _ := amount.Float64()
	total, err := r.redisClient.IncrByFloat(ctx, dailyVolumeKey(walletID), value, 48*time.Hour)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to add daily volume: %w", err)
	}
	return decimal.NewFromFloat(total), nil
}

// GetDailyVolume returns today's accumulated volume for a wallet
func (r *LimitsRepo) GetDailyVolume(ctx context.Context, walletID uuid.UUID) (decimal.Decimal, error) {
	raw, err := r.redisClient.Get(ctx, dailyVolumeKey(walletID))
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return decimal.Zero, nil
		}
		return decimal.Zero, fmt.Errorf("failed to get daily volume: %w", err)
	}

	total, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse daily volume: %w", err)
	}
	return total, nil
}

func dailyVolumeKey(walletID uuid.UUID) string {
	return fmt.Sprintf(constants.KeyDailyVolume, walletID.String(), time.Now().UTC().Format("2006-01-02"))
}
