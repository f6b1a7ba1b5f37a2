package domain

import "time"

// ReportKind selects the period a report covers.
type ReportKind int

const (
	ReportDay ReportKind = iota
	ReportWeek
	ReportMonth
)

func (k ReportKind) String() string {
	switch k {
	case ReportDay:
		return "Day"
	case ReportWeek:
		return "Week"
	case ReportMonth:
		return "Month"
	default:
		panic("unknown report kind")
	}
}

// Today returns now truncated to midnight local time.
func Today(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

// WeekStart returns the most recent Monday on or before now, at midnight.
// Sunday belongs to the week that started six days earlier, not the next one.
func WeekStart(now time.Time) time.Time {
	offset := (int(now.Weekday()) + 6) % 7
	return Today(now).AddDate(0, 0, -offset)
}

// MonthStart returns the first day of now's month, at midnight.
func MonthStart(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
}

// ReferenceDate returns the start-of-period date used to filter sessions for
// a report of this kind.
func (k ReportKind) ReferenceDate(now time.Time) time.Time {
	switch k {
	case ReportDay:
		return Today(now)
	case ReportWeek:
		return WeekStart(now)
	case ReportMonth:
		return MonthStart(now)
	default:
		panic("unknown report kind")
	}
}
