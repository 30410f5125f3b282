package gateway

import (
	"context"

	"github.com/summer-project-team/crossbridge/internal/pkg/constants"
	"github.com/summer-project-team/crossbridge/internal/pkg/models"
	natspkg "github.com/summer-project-team/crossbridge/internal/pkg/nats"
)

// PoolAlertGW publishes liquidity pool alerts over NATS
type PoolAlertGW struct {
	producer *natspkg.Producer
}

// NewPoolAlertGW creates a new pool alert gateway
func NewPoolAlertGW(producer *natspkg.Producer) *PoolAlertGW {
	return &PoolAlertGW{producer: producer}
}

// PublishPoolThresholdBreached notifies treasury that a pool left its band
func (g *PoolAlertGW) PublishPoolThresholdBreached(ctx context.Context, event models.PoolAlertEvent) error {
	return g.producer.Publish(constants.SubjectPoolThresholdBreached, event)
}

// PublishPoolRebalanced notifies treasury that a pool was reset to target
func (g *PoolAlertGW) PublishPoolRebalanced(ctx context.Context, event models.PoolAlertEvent) error {
	return g.producer.Publish(constants.SubjectPoolRebalanced, event)
}
