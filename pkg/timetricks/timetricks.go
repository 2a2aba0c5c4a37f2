package timetricks

import (
	"time"
)

const dayFormat = "20060102"

// DayStamp returns t's calendar date in the compact YYYYMMDD form used to
// address per-day tide pages.
func DayStamp(t time.Time) string {
	return t.Format(dayFormat)
}

// TrimClock drops the wall clock from t, leaving midnight of the same
// calendar day in the same location.
func TrimClock(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// Days returns the first instants of n consecutive calendar days starting
// with t's day. Stepping by calendar day rather than by 24 hours keeps the
// window aligned when it crosses a DST change.
func Days(t time.Time, n int) []time.Time {
	start := TrimClock(t)
	days := make([]time.Time, 0, n)
	for i := 0; i < n; i++ {
		days = append(days, start.AddDate(0, 0, i))
	}
	return days
}
