package util

import "time"

// Clock returns the current time; services take one so tests can pin the calendar year
type Clock func() time.Time

// SystemClock is the wall clock in UTC
func SystemClock() time.Time {
	return time.Now().UTC()
}

// CurrentYear returns the calendar year of the clock
func (c Clock) CurrentYear() int {
	if c == nil {
		return SystemClock().Year()
	}
	return c().Year()
}

// FixedClock returns a clock pinned to the given year
func FixedClock(year int) Clock {
	t := time.Date(year, time.June, 15, 12, 0, 0, 0, time.UTC)
	return func() time.Time { return t }
}
