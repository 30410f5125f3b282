package gateway

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"
	"github.com/shopspring/decimal"
	"github.com/summer-project-team/crossbridge/internal/pkg/constants"
	"github.com/summer-project-team/crossbridge/internal/pkg/database"
)

// ErrNoRate indicates the oracle has no quote for a currency pair.
var ErrNoRate = errors.New("no exchange rate available")

// RateOracleGW reads exchange rate quotes from Redis, where the treasury
// rate feed keeps them fresh. Quotes missing in one direction are derived
// from the inverse pair.
type RateOracleGW struct {
	redisClient *database.RedisClient
}

// NewRateOracleGW creates a new rate oracle gateway
func NewRateOracleGW(redisClient *database.RedisClient) *RateOracleGW {
	return &RateOracleGW{redisClient: redisClient}
}

// GetRate quotes the multiplier converting a source amount into the target
// currency.
func (g *RateOracleGW) GetRate(ctx context.Context, from, to string) (decimal.Decimal, error) {
	if from == to {
		return decimal.NewFromInt(1), nil
	}

	rate, err := g.lookup(ctx, from, to)
	if err == nil {
		return rate, nil
	}
	if !errors.Is(err, redis.Nil) {
		return decimal.Zero, err
	}

	// Try the inverse pair.
	inverse, err := g.lookup(ctx, to, from)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return decimal.Zero, fmt.Errorf("%w: %s/%s", ErrNoRate, from, to)
		}
		return decimal.Zero, err
	}
	if inverse.IsZero() {
		return decimal.Zero, fmt.Errorf("%w: %s/%s", ErrNoRate, from, to)
	}
	return decimal.NewFromInt(1).DivRound(inverse, 8), nil
}

func (g *RateOracleGW) lookup(ctx context.Context, from, to string) (decimal.Decimal, error) {
	raw, err := g.redisClient.Get(ctx, fmt.Sprintf(constants.KeyExchangeRate, from, to))
	if err != nil {
		return decimal.Zero, err
	}
	rate, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("malformed rate quote for %s/%s: %w", from, to, err)
	}
	return rate, nil
}
