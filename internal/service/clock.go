package service

import "time"

// Clock supplies "now" in the shop's time zone. Calendar-day rules such as
// overdue detection and report windows are evaluated in that zone.
type Clock interface {
	Now() time.Time
}

type systemClock struct {
	loc *time.Location
}

// NewSystemClock returns a wall clock in loc, or UTC when loc is nil.
func NewSystemClock(loc *time.Location) Clock {
	if loc == nil {
		loc = time.UTC
	}
	return systemClock{loc: loc}
}

func (c systemClock) Now() time.Time { return time.Now().In(c.loc) }
