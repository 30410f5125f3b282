package settlement

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/summer-project-team/crossbridge/services/settlement SettlementGW,RetryQueue

import (
	"context"
	"time"

	"github.com/summer-project-team/crossbridge/internal/pkg/models"
)

// SettlementGW publishes settlement lifecycle events. Publishing is
// best-effort: a failed publish never rolls back the transaction it reports.
type SettlementGW interface {
	PublishTransactionEvent(ctx context.Context, subject string, event models.TransactionEvent) error
	PublishPoolThresholdBreached(ctx context.Context, event models.PoolAlertEvent) error
}

// RetryQueue enqueues deferred retry deliveries.
type RetryQueue interface {
	PublishRetryDeferred(msg models.RetryMessage, delay time.Duration) error
}
