// Package presence answers "who is online" queries across service
// boundaries. A request/reply pattern is layered over a publish/subscribe
// bus: the Bridge publishes a correlated query and waits for the matching
// reply with a bounded timeout, while the Responder serves queries from the
// connection Tracker on the other side.
package presence

import "context"

// MessageHandler consumes a single message from a subscribed topic.
type MessageHandler func(topic string, payload []byte)

// Bus is the publish/subscribe transport the presence protocol runs over.
// The Kafka adapter implements it in production; tests use an in-process
// implementation.
type Bus interface {
	Publish(ctx context.Context, topic string, payload []byte) error
	Subscribe(topic string, handler MessageHandler) error
}

// Topic names of the presence protocol. Session-owning services publish
// connect/disconnect events on the connections topic; queries and replies
// run on their own pair.
const (
	QueryTopic       = "presence.query"
	ReplyTopic       = "presence.reply"
	ConnectionsTopic = "presence.connections"
)
