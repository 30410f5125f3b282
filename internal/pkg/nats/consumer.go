package nats

import (
	"fmt"

	"github.com/nats-io/nats.go"
	"github.com/summer-project-team/crossbridge/internal/pkg/logger"
)

// MessageHandler is a function that processes NATS messages
type MessageHandler func(message []byte) error

// Consumer handles consuming messages from NATS subjects
type Consumer struct {
	conn         *nats.Conn
	subscription *nats.Subscription
}

// NewConsumer subscribes to a subject on an existing connection, with an
// optional queue group for load-balanced delivery.
func NewConsumer(conn *nats.Conn, subject, queueGroup string, handler MessageHandler) (*Consumer, error) {
	cb := func(msg *nats.Msg) {
		if err := handler(msg.Data); err != nil {
			logger.Debug("Error processing message",
				logger.String("subject", subject),
				logger.Err(err))
		}
	}

	var subscription *nats.Subscription
	var err error
	if queueGroup != "" {
		subscription, err = conn.QueueSubscribe(subject, queueGroup, cb)
	} else {
		subscription, err = conn.Subscribe(subject, cb)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to subscribe to subject: %w", err)
	}

	return &Consumer{conn: conn, subscription: subscription}, nil
}

// Stop unsubscribes the consumer
func (c *Consumer) Stop() error {
	if c.subscription != nil {
		return c.subscription.Unsubscribe()
	}
	return nil
}
