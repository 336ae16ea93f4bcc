package presence

import (
	"context"
	"encoding/json"
	"log/slog"
)

// Responder serves presence queries. It subscribes to the query topic and
// answers each query with the tracker's current online set, echoing the
// query's correlation ID so the asking side can match the reply. The
// tracker is fed from the connections topic, where the session-owning
// services publish connect and disconnect events.
type Responder struct {
	bus     Bus
	tracker *Tracker
	logger  *slog.Logger
}

// NewResponder creates a responder over the given bus and tracker.
func NewResponder(bus Bus, tracker *Tracker, logger *slog.Logger) *Responder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Responder{
		bus:     bus,
		tracker: tracker,
		logger:  logger.With("component", "presence-responder"),
	}
}

// Start subscribes the responder to the query and connections topics.
func (r *Responder) Start() error {
	if err := r.bus.Subscribe(ConnectionsTopic, r.handleConnection); err != nil {
		return err
	}
	return r.bus.Subscribe(QueryTopic, r.handleQuery)
}

func (r *Responder) handleConnection(_ string, payload []byte) {
	var event connectionMessage
	if err := json.Unmarshal(payload, &event); err != nil {
		r.logger.Warn("malformed connection event dropped", "error", err)
		return
	}
	if event.UserID == "" {
		r.logger.Warn("connection event without user dropped")
		return
	}

	if event.Connected {
		r.tracker.Connect(event.UserID)
		return
	}
	r.tracker.Disconnect(event.UserID)
}

func (r *Responder) handleQuery(_ string, payload []byte) {
	var query queryMessage
	if err := json.Unmarshal(payload, &query); err != nil {
		r.logger.Warn("malformed presence query dropped", "error", err)
		return
	}

	replyTopic := query.ReplyTopic
	if replyTopic == "" {
		replyTopic = ReplyTopic
	}

	reply, err := json.Marshal(replyMessage{
		CorrelationID: query.CorrelationID,
		Users:         r.tracker.Online(),
	})
	if err != nil {
		r.logger.Warn("presence reply encode failed", "error", err)
		return
	}

	if err := r.bus.Publish(context.Background(), replyTopic, reply); err != nil {
		r.logger.Warn("presence reply publish failed",
			"correlationID", query.CorrelationID, "error", err)
	}
}
