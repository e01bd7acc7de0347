package rtt

import "time"

// A Clock returns the current time. It exists so that a discrete-event
// scheduler can drive the estimator in simulated time.
type Clock interface {
	Now() time.Time
}

// DefaultClock reads the system clock.
type DefaultClock struct{}

var _ Clock = DefaultClock{}

// Now returns the current time.
func (DefaultClock) Now() time.Time { return time.Now() }
