// Package assist provides the four assistant utilities: day-distance
// calculation, lottery ticket drawing, phone number normalization and
// upcoming-birthday detection. All operations are pure; time and randomness
// enter only through the injected Clock and NumberSource capabilities.
package assist

import (
	"time"

	"github.com/tartampluch/go-assist/internal/config"
)

// FormatError reports a date string that does not match the expected layout
// or does not denote a real calendar date.
type FormatError struct {
	// Value is the rejected input, kept for callers that want to report it.
	Value string
}

// Error returns the fixed user-facing message for invalid date input.
func (e *FormatError) Error() string {
	return config.ErrInvalidDateFormat
}

// DaysFromDate returns the number of whole days between the given date and
// today, as seen by clock. The input must be formatted as "YYYY-MM-DD".
// The result is negative when the date lies in the future and zero when it
// is today. A string that fails to parse yields a *FormatError.
func DaysFromDate(clock Clock, value string) (int, error) {
	parsed, err := time.Parse(config.DateLayoutISO, value)
	if err != nil {
		return 0, &FormatError{Value: value}
	}

	today := midnight(clock.Now())
	return int(today.Sub(midnight(parsed)) / (24 * time.Hour)), nil
}
