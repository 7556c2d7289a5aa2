// Package clock abstracts time so story and config timestamps are testable.
//
// Every timestamp filter persists (config created_at, story Created lines)
// is normalized to UTC at the point of use; the Clock only supplies the
// instant.
package clock

import "time"

// Clock supplies the current time to the managers.
type Clock interface {
	Now() time.Time
}

// RealClock reads the system time.
type RealClock struct{}

func (c *RealClock) Now() time.Time {
	return time.Now()
}

// FakeClock holds a controllable time for tests.
type FakeClock struct {
	current time.Time
}

// NewFakeClock creates a FakeClock frozen at t.
func NewFakeClock(t time.Time) *FakeClock {
	return &FakeClock{current: t}
}

func (c *FakeClock) Now() time.Time {
	return c.current
}

// Set replaces the frozen time.
func (c *FakeClock) Set(t time.Time) {
	c.current = t
}

// Advance moves the frozen time forward by d.
func (c *FakeClock) Advance(d time.Duration) {
	c.current = c.current.Add(d)
}
