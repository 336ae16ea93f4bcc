package presence

import (
	"sort"
	"sync"
)

// Tracker maintains the set of currently connected users. A user may hold
// several connections at once (two browser tabs, a phone and a laptop);
// they stay online until the last one disconnects.
type Tracker struct {
	mu          sync.RWMutex
	connections map[string]int
}

// NewTracker creates an empty connection tracker.
func NewTracker() *Tracker {
	return &Tracker{
		connections: make(map[string]int),
	}
}

// Connect records a new connection for the user.
func (t *Tracker) Connect(userID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.connections[userID]++
}

// Disconnect records a closed connection for the user. Disconnecting an
// unknown user is a no-op.
func (t *Tracker) Disconnect(userID string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	count, ok := t.connections[userID]
	if !ok {
		return
	}
	if count <= 1 {
		delete(t.connections, userID)
		return
	}
	t.connections[userID] = count - 1
}

// IsOnline reports whether the user has at least one open connection.
func (t *Tracker) IsOnline(userID string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.connections[userID] > 0
}

// Online returns the sorted identifiers of all connected users.
func (t *Tracker) Online() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	users := make([]string, 0, len(t.connections))
	for userID := range t.connections {
		users = append(users, userID)
	}
	sort.Strings(users)
	return users
}
