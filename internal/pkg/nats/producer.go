package nats

import (
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"
)

// Producer handles publishing messages to NATS subjects
type Producer struct {
	conn *nats.Conn
}

// NewProducer creates a new NATS producer on an existing connection
func NewProducer(conn *nats.Conn) *Producer {
	return &Producer{conn: conn}
}

// Publish sends a JSON-encoded message to the specified subject
func (p *Producer) Publish(subject string, message interface{}) error {
	msgBytes, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	if err := p.conn.Publish(subject, msgBytes); err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}

	return nil
}
