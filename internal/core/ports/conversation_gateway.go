package ports

import "context"

// ConversationRequest identifies the chat channel for an accepted order:
// the requester and the provider organization talk in the context of that
// order.
type ConversationRequest struct {
	OrderID     string `json:"orderId"`
	RequesterID string `json:"requesterId"`
	CompanyID   string `json:"companyId"`
}

// ConversationGateway opens the chat channel between the requester and the
// provider for an order. Opening is idempotent on the gateway side: a
// repeated request for the same order reuses the existing channel instead
// of creating another one. Like notification delivery, opening runs after
// the state change is durable and a failure must never fail or roll back
// the command that produced it.
type ConversationGateway interface {
	Open(ctx context.Context, request ConversationRequest) error
}
