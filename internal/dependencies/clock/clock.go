package clock

import "time"

// Clock provides time operations that can be mocked for testing.
// Session timestamps are the only use; gravity timing lives outside this module.
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the system clock, truncated to UTC milliseconds
// so stored timestamps compare equal after a JSON round trip
type RealClock struct{}

// New creates a new RealClock
func New() *RealClock {
	return &RealClock{}
}

// Now returns the current time
func (c *RealClock) Now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}
