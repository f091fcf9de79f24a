// Package clock gives every timing-sensitive package (heartbeat expiry,
// session validity, sweep scheduling) a seam to substitute in tests instead
// of depending on wall-clock time.Sleep.
package clock

import "time"

// Clock reports the current time.
type Clock interface {
	Now() time.Time
}

// System is the real, wall-clock Clock used in production.
type System struct{}

func (System) Now() time.Time { return time.Now() }
