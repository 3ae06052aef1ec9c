package services

import "time"

// Sync and reporting windows are inclusive date ranges. Zero bounds widen
// to an effectively unbounded window.
var (
	windowFloor   = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	windowCeiling = time.Date(2100, 1, 1, 0, 0, 0, 0, time.UTC)
)

// defaultWindow substitutes the unbounded defaults for zero bounds.
func defaultWindow(from, to time.Time) (time.Time, time.Time) {
	if from.IsZero() {
		from = windowFloor
	}
	if to.IsZero() {
		to = windowCeiling
	}
	return from, to
}

// dateOnly truncates a timestamp to its UTC calendar date.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// inWindow reports whether t's date falls inside [from, to], both bounds
// inclusive.
func inWindow(t, from, to time.Time) bool {
	d := dateOnly(t)
	return !d.Before(dateOnly(from)) && !d.After(dateOnly(to))
}
