package ports

import (
	"context"
	"time"
)

// Notification is an outbound message for a single recipient, produced
// after a lifecycle transition commits.
type Notification struct {
	RecipientID string         `json:"recipientId"`
	Title       string         `json:"title"`
	Content     string         `json:"content"`
	Type        string         `json:"type"`
	SentAt      time.Time      `json:"sentAt"`
	Payload     map[string]any `json:"payload,omitempty"`
}

// NotificationPublisher delivers notifications to interested parties.
// Delivery is best effort: it runs after the state change is durable, and
// a publish failure must never fail or roll back the command that
// produced it. Callers log the error and move on.
type NotificationPublisher interface {
	Publish(ctx context.Context, notification Notification) error
}
