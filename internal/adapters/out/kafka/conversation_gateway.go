package kafka

import (
	"context"
	"encoding/json"
	"fmt"

	"rescue/internal/core/ports"
)

// ConversationGateway requests chat channels over a Kafka topic. The chat
// service consumes the topic and creates or reuses the channel for the
// order, so repeated requests are safe. Implements ports.ConversationGateway.
type ConversationGateway struct {
	client *Client
	topic  string
}

// NewConversationGateway creates a gateway writing to the given topic.
func NewConversationGateway(client *Client, topic string) *ConversationGateway {
	return &ConversationGateway{
		client: client,
		topic:  topic,
	}
}

// Open encodes the request as JSON and writes it to the topic.
func (g *ConversationGateway) Open(ctx context.Context, request ports.ConversationRequest) error {
	payload, err := json.Marshal(request)
	if err != nil {
		return fmt.Errorf("encode conversation request: %w", err)
	}
	return g.client.Publish(ctx, g.topic, payload)
}
