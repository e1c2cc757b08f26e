package assist

import "time"

// Clock abstracts time.Now() to allow deterministic testing.
// Every date calculation in this package derives "today" from a Clock.
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the standard time package.
type RealClock struct{}

// Now returns the current local time.
func (RealClock) Now() time.Time {
	return time.Now()
}

// midnight truncates t to the start of its calendar day in UTC.
// Using UTC midnights keeps day arithmetic exact across DST transitions.
func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
