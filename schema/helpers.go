package schema

import (
	"fmt"
	"time"
)

// DayFormat is the canonical calendar-day layout used in files, cache
// keys and tabular output.
const DayFormat = "2006-01-02"

// Day normalizes a timestamp to its calendar day at UTC midnight. Every
// daily map key and DailyTrainingLoad date goes through this so that
// activities logged in different local zones land on one canonical day.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseDay parses a calendar-day string like "2024-03-01".
func ParseDay(s string) (time.Time, error) {
	t, err := time.Parse(DayFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid day %q: %w", s, err)
	}
	return t, nil
}

// DaySpan returns the number of calendar days from start to end inclusive.
// The result is non-positive when start is after end.
func DaySpan(start, end time.Time) int {
	return int(Day(end).Sub(Day(start)).Hours()/24) + 1
}

// FormatHMS renders a duration in seconds as "1h 30m", "45m" or "30s"
// for table cells.
func FormatHMS(seconds float64) string {
	total := int(seconds)
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	switch {
	case h > 0 && m > 0:
		return fmt.Sprintf("%dh %dm", h, m)
	case h > 0:
		return fmt.Sprintf("%dh", h)
	case m > 0 && s > 0:
		return fmt.Sprintf("%dm %ds", m, s)
	case m > 0:
		return fmt.Sprintf("%dm", m)
	default:
		return fmt.Sprintf("%ds", s)
	}
}
