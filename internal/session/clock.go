package session

import "time"

// Clock marks the start of a work session. Elapsed time is always
// recomputed from the start instant rather than accumulated, so the
// displayed timer cannot drift.
type Clock struct {
	startedAt time.Time
}

func NewClock() *Clock {
	return &Clock{startedAt: time.Now()}
}

func (c *Clock) StartedAt() time.Time {
	return c.startedAt
}

func (c *Clock) Elapsed() time.Duration {
	return time.Since(c.startedAt)
}
