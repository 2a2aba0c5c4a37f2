package tides

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Combine attaches an HH:MM wall clock to the calendar date of date,
// interpreted in loc. The date's own zone is irrelevant; only its
// year/month/day are used. Resolving through loc rather than a fixed offset
// means the same wall clock lands on different UTC offsets on opposite sides
// of a DST boundary.
func Combine(date time.Time, clock string, loc *time.Location) (time.Time, error) {
	hh, mm, found := strings.Cut(clock, ":")
	if !found {
		return time.Time{}, fmt.Errorf("clock %q is not HH:MM", clock)
	}
	hour, err := strconv.Atoi(hh)
	if err != nil {
		return time.Time{}, fmt.Errorf("clock %q is not HH:MM: %w", clock, err)
	}
	minute, err := strconv.Atoi(mm)
	if err != nil {
		return time.Time{}, fmt.Errorf("clock %q is not HH:MM: %w", clock, err)
	}
	if hour < 0 || hour > 23 {
		return time.Time{}, fmt.Errorf("clock %q: hour out of range", clock)
	}
	if minute < 0 || minute > 59 {
		return time.Time{}, fmt.Errorf("clock %q: minute out of range", clock)
	}

	y, m, d := date.Date()
	return time.Date(y, m, d, hour, minute, 0, 0, loc), nil
}
