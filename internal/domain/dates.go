package domain

import "time"

const day = 24 * time.Hour

// wallClock reinterprets t's wall clock in UTC so day arithmetic ignores DST.
func wallClock(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}

// StartOfDay is midnight of t's calendar day in t's location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// SameDay compares calendar days, reading a in b's location.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.In(b.Location()).Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// IsPastDue reports whether now's calendar day is after due's calendar day.
func IsPastDue(due, now time.Time) bool {
	return due.In(now.Location()).Before(StartOfDay(now))
}
