package commands

import (
	"context"
	"log/slog"

	"rescue/internal/core/domain/model/kernel"
	"rescue/internal/core/ports"
)

// ConversationOpener requests the chat channel for an accepted order.
// Best effort in the same way as Notifier: a gateway failure is logged at
// warn level and never propagated, so the acceptance stays committed even
// when the chat collaborator is down. The gateway reuses an existing
// channel for the same order, so retried acceptances are safe.
type ConversationOpener struct {
	gateway ports.ConversationGateway
	logger  *slog.Logger
}

// NewConversationOpener creates a conversation opener. A nil gateway
// disables opening, which keeps handler construction simple in tests.
func NewConversationOpener(gateway ports.ConversationGateway, logger *slog.Logger) ConversationOpener {
	if logger == nil {
		logger = slog.Default()
	}
	return ConversationOpener{
		gateway: gateway,
		logger:  logger.With("component", "conversation_opener"),
	}
}

// Open requests the channel between the requester and the provider for the
// given order.
func (c ConversationOpener) Open(ctx context.Context, orderID, requesterID, companyID kernel.UUID) {
	if c.gateway == nil {
		return
	}

	request := ports.ConversationRequest{
		OrderID:     orderID.String(),
		RequesterID: requesterID.String(),
		CompanyID:   companyID.String(),
	}

	if err := c.gateway.Open(ctx, request); err != nil {
		c.logger.Warn("conversation open failed",
			"orderID", orderID.String(),
			"error", err)
	}
}
