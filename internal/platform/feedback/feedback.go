// Package feedback provides the user-facing notice channel. Services publish
// short-lived notices after operations succeed or fail; clients poll the
// active set and render them as toasts.
package feedback

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Severity classifies a notice for presentation.
type Severity string

const (
	SeverityNormal      Severity = "normal"
	SeverityDestructive Severity = "destructive"
)

// Notice is a single transient message for the user.
type Notice struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Severity    Severity  `json:"severity"`
	CreatedAt   time.Time `json:"created_at"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// Channel holds the active notices in memory. Notices expire after a fixed
// TTL and the channel keeps at most cap notices: publishing beyond the cap
// evicts the oldest. Thread-safe for concurrent access.
type Channel struct {
	mu      sync.RWMutex
	notices []Notice
	ttl     time.Duration
	cap     int
	now     func() time.Time
}

// NewChannel creates a Channel whose notices expire after ttl. At most cap
// notices are retained at once.
func NewChannel(ttl time.Duration, cap int) *Channel {
	return &Channel{
		ttl: ttl,
		cap: cap,
		now: time.Now,
	}
}

// Publish queues a notice. Publishing never blocks and never fails; feedback
// is advisory and must not affect the outcome of the operation it reports on.
func (ch *Channel) Publish(title, description string, severity Severity) Notice {
	now := ch.now()
	n := Notice{
		ID:          uuid.New(),
		Title:       title,
		Description: description,
		Severity:    severity,
		CreatedAt:   now,
		ExpiresAt:   now.Add(ch.ttl),
	}

	ch.mu.Lock()
	defer ch.mu.Unlock()

	ch.prune(now)
	ch.notices = append(ch.notices, n)
	if len(ch.notices) > ch.cap {
		ch.notices = ch.notices[len(ch.notices)-ch.cap:]
	}

	return n
}

// Success publishes a normal-severity notice.
func (ch *Channel) Success(title, description string) Notice {
	return ch.Publish(title, description, SeverityNormal)
}

// Error publishes a destructive-severity notice.
func (ch *Channel) Error(title, description string) Notice {
	return ch.Publish(title, description, SeverityDestructive)
}

// Active returns the notices that have not yet expired, oldest first.
func (ch *Channel) Active() []Notice {
	now := ch.now()

	ch.mu.Lock()
	defer ch.mu.Unlock()

	ch.prune(now)
	out := make([]Notice, len(ch.notices))
	copy(out, ch.notices)
	return out
}

// Dismiss removes a notice by ID before its natural expiry. Returns false
// if the notice is not present.
func (ch *Channel) Dismiss(id uuid.UUID) bool {
	ch.mu.Lock()
	defer ch.mu.Unlock()

	for i, n := range ch.notices {
		if n.ID == id {
			ch.notices = append(ch.notices[:i], ch.notices[i+1:]...)
			return true
		}
	}
	return false
}

// prune drops expired notices. Caller must hold the lock.
func (ch *Channel) prune(now time.Time) {
	live := ch.notices[:0]
	for _, n := range ch.notices {
		if now.Before(n.ExpiresAt) {
			live = append(live, n)
		}
	}
	ch.notices = live
}
