package gateway

import (
	"time"

	"github.com/summer-project-team/crossbridge/internal/pkg/constants"
	"github.com/summer-project-team/crossbridge/internal/pkg/models"
	nsqpkg "github.com/summer-project-team/crossbridge/internal/pkg/nsq"
)

// RetryQueueGW enqueues deferred retry messages on NSQ. The broker holds
// each message for the backoff delay before handing it to the settlement
// worker channel.
type RetryQueueGW struct {
	producer *nsqpkg.Producer
}

// NewRetryQueueGW creates a new retry queue gateway
func NewRetryQueueGW(producer *nsqpkg.Producer) *RetryQueueGW {
	return &RetryQueueGW{producer: producer}
}

// PublishRetryDeferred enqueues a retry message delivered after the delay
func (g *RetryQueueGW) PublishRetryDeferred(msg models.RetryMessage, delay time.Duration) error {
	return g.producer.DeferredPublish(constants.TopicTransactionRetry, delay, msg)
}
