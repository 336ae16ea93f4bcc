package presence

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultTimeout bounds how long a presence query waits for its reply.
const DefaultTimeout = 5 * time.Second

// queryMessage is the wire format of a presence query.
type queryMessage struct {
	CorrelationID string `json:"correlationId"`
	ReplyTopic    string `json:"replyTopic"`
}

// replyMessage is the wire format of a presence reply.
type replyMessage struct {
	CorrelationID string   `json:"correlationId"`
	Users         []string `json:"users"`
}

// connectionMessage is the wire format of a connect/disconnect event.
type connectionMessage struct {
	UserID    string `json:"userId"`
	Connected bool   `json:"connected"`
}

// Bridge turns a published presence query into an awaited, correlated
// response. Each query registers a result slot under a fresh correlation
// ID; the reply subscription delivers into the slot, and the slot is
// removed unconditionally when the query returns, so neither a timeout nor
// a cancellation leaks a pending entry.
type Bridge struct {
	bus     Bus
	timeout time.Duration
	logger  *slog.Logger

	mu      sync.Mutex
	pending map[string]chan []string
}

// NewBridge creates a presence bridge and subscribes it to the reply topic.
func NewBridge(bus Bus, timeout time.Duration, logger *slog.Logger) (*Bridge, error) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if logger == nil {
		logger = slog.Default()
	}

	b := &Bridge{
		bus:     bus,
		timeout: timeout,
		logger:  logger.With("component", "presence-bridge"),
		pending: make(map[string]chan []string),
	}

	if err := bus.Subscribe(ReplyTopic, b.handleReply); err != nil {
		return nil, err
	}

	return b, nil
}

// Query publishes a presence query and waits for the correlated reply.
// A timeout or a cancelled context yields an empty user set and no error:
// not knowing who is online is an acceptable answer, a stuck caller is not.
func (b *Bridge) Query(ctx context.Context) ([]string, error) {
	correlationID := uuid.NewString()
	slot := make(chan []string, 1)

	b.mu.Lock()
	b.pending[correlationID] = slot
	b.mu.Unlock()

	defer func() {
		b.mu.Lock()
		delete(b.pending, correlationID)
		b.mu.Unlock()
	}()

	payload, err := json.Marshal(queryMessage{
		CorrelationID: correlationID,
		ReplyTopic:    ReplyTopic,
	})
	if err != nil {
		return nil, err
	}

	if err := b.bus.Publish(ctx, QueryTopic, payload); err != nil {
		return nil, err
	}

	timer := time.NewTimer(b.timeout)
	defer timer.Stop()

	select {
	case users := <-slot:
		return users, nil
	case <-timer.C:
		b.logger.Warn("presence query timed out", "correlationID", correlationID)
		return []string{}, nil
	case <-ctx.Done():
		return []string{}, nil
	}
}

// Resolve delivers a reply to the waiting query. Replies with no matching
// slot (late arrivals after a timeout, or duplicates) are logged and
// dropped.
func (b *Bridge) Resolve(correlationID string, users []string) {
	b.mu.Lock()
	slot, ok := b.pending[correlationID]
	if ok {
		delete(b.pending, correlationID)
	}
	b.mu.Unlock()

	if !ok {
		b.logger.Warn("unmatched presence reply dropped", "correlationID", correlationID)
		return
	}

	slot <- users
}

// PendingCount reports the number of queries currently awaiting a reply.
func (b *Bridge) PendingCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.pending)
}

func (b *Bridge) handleReply(_ string, payload []byte) {
	var reply replyMessage
	if err := json.Unmarshal(payload, &reply); err != nil {
		b.logger.Warn("malformed presence reply dropped", "error", err)
		return
	}
	b.Resolve(reply.CorrelationID, reply.Users)
}
