// Package clock abstracts the wall clock so time-dependent code can be
// driven deterministically in tests.
package clock

import "time"

// Clock is a source of the current local time.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

// System returns a Clock backed by the real wall clock.
func System() Clock {
	return systemClock{}
}

// Mock is a manually advanced Clock for tests.
type Mock struct {
	T time.Time
}

func (m *Mock) Now() time.Time {
	return m.T
}

// Set moves the mock to the given instant.
func (m *Mock) Set(t time.Time) {
	m.T = t
}

// Advance moves the mock forward by d.
func (m *Mock) Advance(d time.Duration) {
	m.T = m.T.Add(d)
}
