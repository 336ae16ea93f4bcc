package kafka

import (
	"context"
	"encoding/json"
	"fmt"

	"rescue/internal/core/ports"
)

// NotificationPublisher delivers lifecycle notifications to a Kafka topic.
// Implements ports.NotificationPublisher.
type NotificationPublisher struct {
	client *Client
	topic  string
}

// NewNotificationPublisher creates a publisher writing to the given topic.
func NewNotificationPublisher(client *Client, topic string) *NotificationPublisher {
	return &NotificationPublisher{
		client: client,
		topic:  topic,
	}
}

// Publish encodes the notification as JSON and writes it to the topic.
func (p *NotificationPublisher) Publish(ctx context.Context, notification ports.Notification) error {
	payload, err := json.Marshal(notification)
	if err != nil {
		return fmt.Errorf("encode notification: %w", err)
	}
	return p.client.Publish(ctx, p.topic, payload)
}
