package domain

import (
	"testing"
	"time"
)

func at(day, hour, minute int) time.Time {
	return time.Date(2025, time.July, day, hour, minute, 0, 0, time.Local)
}

func closed(id int64, start, end time.Time) Session {
	return Session{ID: id, Start: start, End: &end}
}

func TestAggregateClosedSessions(t *testing.T) {
	sessions := []Session{
		closed(1, at(1, 9, 0), at(1, 12, 0)),
		closed(2, at(1, 13, 0), at(1, 16, 0)),
	}
	got := Aggregate(sessions, at(1, 18, 0))
	if want := 6 * time.Hour; got != want {
		t.Errorf("Aggregate() = %v, want %v", got, want)
	}
}

func TestAggregateOpenSessionUsesNow(t *testing.T) {
	sessions := []Session{{ID: 1, Start: at(1, 9, 0)}}
	got := Aggregate(sessions, at(1, 10, 30))
	if want := 90 * time.Minute; got != want {
		t.Errorf("Aggregate() = %v, want %v", got, want)
	}
}

func TestAggregateEmpty(t *testing.T) {
	if got := Aggregate(nil, at(1, 9, 0)); got != 0 {
		t.Errorf("Aggregate(nil) = %v, want 0", got)
	}
}

func TestAggregateAdditive(t *testing.T) {
	now := at(3, 20, 0)
	a := []Session{
		closed(1, at(1, 9, 0), at(1, 11, 0)),
		closed(2, at(1, 12, 0), at(1, 13, 30)),
	}
	b := []Session{
		closed(3, at(2, 9, 0), at(2, 17, 0)),
		{ID: 4, Start: at(3, 19, 0)},
	}
	both := append(append([]Session{}, a...), b...)
	if got, want := Aggregate(both, now), Aggregate(a, now)+Aggregate(b, now); got != want {
		t.Errorf("Aggregate(a+b) = %v, want %v", got, want)
	}
}

func TestAggregateOrderIndependent(t *testing.T) {
	now := at(2, 12, 0)
	fwd := []Session{
		closed(1, at(1, 9, 0), at(1, 10, 0)),
		closed(2, at(1, 11, 0), at(1, 12, 0)),
	}
	rev := []Session{fwd[1], fwd[0]}
	if got, want := Aggregate(rev, now), Aggregate(fwd, now); got != want {
		t.Errorf("Aggregate(reversed) = %v, want %v", got, want)
	}
}

func TestHoursWholeMinutePrecision(t *testing.T) {
	// Seconds below a whole minute do not count toward the display value.
	d := 6*time.Hour + 59*time.Second
	if got := Hours(d); got != 6.0 {
		t.Errorf("Hours(%v) = %v, want 6.0", d, got)
	}
}

func TestFormatHours(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{6 * time.Hour, "6.00h"},
		{40 * time.Hour, "40.00h"},
		{90 * time.Minute, "1.50h"},
		{0, "0.00h"},
		{45 * time.Minute, "0.75h"},
	}
	for _, tt := range tests {
		if got := FormatHours(tt.d); got != tt.want {
			t.Errorf("FormatHours(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}
