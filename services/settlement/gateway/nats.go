package gateway

import (
	"context"

	"github.com/summer-project-team/crossbridge/internal/pkg/constants"
	"github.com/summer-project-team/crossbridge/internal/pkg/models"
	natspkg "github.com/summer-project-team/crossbridge/internal/pkg/nats"
)

// SettlementGW publishes settlement lifecycle events over NATS
type SettlementGW struct {
	producer *natspkg.Producer
}

// NewSettlementGW creates a new settlement event gateway
func NewSettlementGW(producer *natspkg.Producer) *SettlementGW {
	return &SettlementGW{producer: producer}
}

// PublishTransactionEvent sends a transaction status event on the given subject
func (g *SettlementGW) PublishTransactionEvent(ctx context.Context, subject string, event models.TransactionEvent) error {
	return g.producer.Publish(subject, event)
}

// PublishPoolThresholdBreached alerts treasury that a pool left its band
func (g *SettlementGW) PublishPoolThresholdBreached(ctx context.Context, event models.PoolAlertEvent) error {
	return g.producer.Publish(constants.SubjectPoolThresholdBreached, event)
}
