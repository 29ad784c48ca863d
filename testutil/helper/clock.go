package helper

import (
	"sync"
	"time"
)

// ClockStub is a controllable time source. Its Now method can be passed as a library.Clock.
type ClockStub struct {
	now time.Time
	mu  sync.Mutex
}

// NewClockStub creates a ClockStub which starts at the given time.
func NewClockStub(start time.Time) *ClockStub {
	return &ClockStub{now: start}
}

// Now returns the current stubbed time.
func (c *ClockStub) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

// Advance moves the stubbed time forward by the given duration.
func (c *ClockStub) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.now = c.now.Add(d)
}

// AdvanceDays moves the stubbed time forward by the given number of 24h days.
func (c *ClockStub) AdvanceDays(days int) {
	c.Advance(time.Duration(days) * 24 * time.Hour)
}
