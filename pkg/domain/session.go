package domain

import "time"

// Session is one contiguous span of tracked work time. A session with no end
// time is open (currently running); at most one open session may exist.
type Session struct {
	ID    int64
	Start time.Time
	End   *time.Time // nil while the session is running
}

// Open reports whether the session is still running.
func (s Session) Open() bool {
	return s.End == nil
}

// EffectiveEnd returns the session's end time, or now for an open session.
func (s Session) EffectiveEnd(now time.Time) time.Time {
	if s.End != nil {
		return *s.End
	}
	return now
}

// Elapsed returns the time worked in this session as of now.
func (s Session) Elapsed(now time.Time) time.Duration {
	return s.EffectiveEnd(now).Sub(s.Start)
}
