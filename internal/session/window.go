// Package session implements the Lobby's per-user sliding validity
// window: a deadline refreshed by chat/command activity,
// past which a user is considered to have abandoned the session.
package session

import (
	"sync"
	"time"

	"github.com/riftline/chatmesh/internal/clock"
)

// Duration is how far into the future Refresh pushes the deadline. It
// mirrors lobby.py's User.__validating_time.
const Duration = 60 * time.Second

// Window is a sliding deadline, safe for concurrent use.
type Window struct {
	clk      clock.Clock
	mu       sync.Mutex
	deadline time.Time
}

// New returns a Window already validated as of now (mirrors lobby.py's
// __get_user, which validates a freshly materialised User immediately).
func New(clk clock.Clock) *Window {
	w := &Window{clk: clk}
	w.Refresh()
	return w
}

// Refresh pushes the deadline to now + Duration.
func (w *Window) Refresh() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.deadline = w.clk.Now().Add(Duration)
}

// Expired reports whether the deadline has already passed.
func (w *Window) Expired() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.clk.Now().After(w.deadline)
}
