package domain

import (
	"fmt"
	"time"
)

// Aggregate sums the elapsed time of all sessions. A closed session
// contributes end - start; an open one contributes now - start, so a report
// gives partial credit for the session running right now. The sum needs no
// ordering or overlap assumption.
func Aggregate(sessions []Session, now time.Time) time.Duration {
	var total time.Duration
	for _, s := range sessions {
		total += s.Elapsed(now)
	}
	return total
}

// Hours converts a duration to fractional hours at whole-minute precision.
func Hours(d time.Duration) float64 {
	minutes := int64(d / time.Minute)
	return float64(minutes) / 60.0
}

// FormatHours renders a duration as hours with two decimals, e.g. "6.00h".
func FormatHours(d time.Duration) string {
	return fmt.Sprintf("%.2fh", Hours(d))
}
