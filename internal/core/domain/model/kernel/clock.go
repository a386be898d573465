package kernel

import "time"

// Clock abstracts the current time so that handlers stay deterministic in
// tests. Domain methods take explicit time values; the clock lives at the
// application layer and is injected through the composition root.
type Clock interface {
	Now() time.Time
}

// SystemClock is the production Clock backed by time.Now.
type SystemClock struct{}

// NewSystemClock creates a Clock that reads the wall clock.
func NewSystemClock() SystemClock {
	return SystemClock{}
}

// Now returns the current local time.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// FixedClock is a Clock pinned to a single instant, for tests.
type FixedClock struct {
	instant time.Time
}

// NewFixedClock creates a Clock that always returns the given instant.
func NewFixedClock(instant time.Time) FixedClock {
	return FixedClock{instant: instant}
}

// Now returns the pinned instant.
func (c FixedClock) Now() time.Time {
	return c.instant
}
