package kafka

import (
	"context"

	"rescue/internal/presence"
)

// PresenceBus adapts the Kafka client to the presence.Bus interface.
type PresenceBus struct {
	client *Client
}

// NewPresenceBus creates a presence bus over the given client.
func NewPresenceBus(client *Client) *PresenceBus {
	return &PresenceBus{client: client}
}

// Publish writes a presence protocol message to the given topic.
func (b *PresenceBus) Publish(ctx context.Context, topic string, payload []byte) error {
	return b.client.Publish(ctx, topic, payload)
}

// Subscribe delivers every message on the topic to the handler.
func (b *PresenceBus) Subscribe(topic string, handler presence.MessageHandler) error {
	return b.client.Subscribe(topic, func(topic string, payload []byte) {
		handler(topic, payload)
	})
}
