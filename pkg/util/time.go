package util

import "time"

// DateFormat is the canonical partition date format.
const DateFormat = "2006-01-02"

// QueryDates returns the [from, to] date window for a report with the given
// lookback, ending today.
func QueryDates(lookbackDays int, today time.Time) (time.Time, time.Time) {
	if today.IsZero() {
		today = time.Now()
	}
	from := today.AddDate(0, 0, -lookbackDays)
	return from, today
}

// DateKey formats a time as the partition date key.
func DateKey(t time.Time) string {
	return t.Format(DateFormat)
}

// TruncateToDay drops the time-of-day component.
func TruncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
