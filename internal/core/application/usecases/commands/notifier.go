package commands

import (
	"context"
	"log/slog"
	"time"

	"rescue/internal/core/domain/model/kernel"
	"rescue/internal/core/ports"
)

// Notifier emits lifecycle notifications after a transition commits.
// Delivery is best effort: a publish failure is logged at warn level and
// never propagated to the caller, so a flaky gateway cannot fail or roll
// back a committed transition.
type Notifier struct {
	publisher ports.NotificationPublisher
	logger    *slog.Logger
}

// NewNotifier creates a notifier. A nil publisher disables emission,
// which keeps handler construction simple in tests.
func NewNotifier(publisher ports.NotificationPublisher, logger *slog.Logger) Notifier {
	if logger == nil {
		logger = slog.Default()
	}
	return Notifier{
		publisher: publisher,
		logger:    logger.With("component", "notifier"),
	}
}

// Notify publishes a single lifecycle event for the given recipient.
func (n Notifier) Notify(ctx context.Context, recipientID kernel.UUID, eventType, title, content string, orderID kernel.UUID) {
	if n.publisher == nil {
		return
	}

	notification := ports.Notification{
		RecipientID: recipientID.String(),
		Title:       title,
		Content:     content,
		Type:        eventType,
		SentAt:      time.Now().UTC(),
		Payload: map[string]any{
			"orderId": orderID.String(),
		},
	}

	if err := n.publisher.Publish(ctx, notification); err != nil {
		n.logger.Warn("notification publish failed",
			"type", eventType,
			"orderID", orderID.String(),
			"error", err)
	}
}
