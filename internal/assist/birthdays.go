package assist

import (
	"log/slog"
	"time"

	"github.com/tartampluch/go-assist/internal/config"
)

// User is an input record for the upcoming-birthday scan.
type User struct {
	Name     string `json:"name" validate:"required"`
	Birthday string `json:"birthday" validate:"required"` // "YYYY.MM.DD"
}

// Greeting names a user whose birthday falls within the lookahead window,
// together with the date on which to congratulate them. The date equals the
// birthday occurrence unless that occurrence lands on a weekend, in which
// case it is moved to the following Monday.
type Greeting struct {
	Name               string `json:"name"`
	CongratulationDate string `json:"congratulation_date"` // "YYYY.MM.DD"
}

// UpcomingBirthdays scans users for birthdays occurring within the next
// config.DefaultLookahead days (today inclusive) and returns one Greeting
// per match, preserving input order.
//
// Records with a missing or malformed birthday are skipped silently; the
// call itself never fails. A birthday of Feb 29 is celebrated on Feb 28 in
// non-leap years.
func UpcomingBirthdays(clock Clock, users []User) []Greeting {
	today := midnight(clock.Now())
	greetings := make([]Greeting, 0)

	for _, u := range users {
		born, err := time.Parse(config.DateLayoutDotted, u.Birthday)
		if err != nil {
			slog.Debug(config.MsgSkippedDate,
				config.LogKeyComponent, config.CompAssist,
				config.LogKeyName, u.Name,
				config.LogKeyValue, u.Birthday,
			)
			continue
		}

		next := occurrenceIn(today.Year(), born)
		if next.Before(today) {
			next = occurrenceIn(today.Year()+1, born)
		}

		distance := int(next.Sub(today) / (24 * time.Hour))
		if distance < 0 || distance > config.DefaultLookahead {
			continue
		}

		switch next.Weekday() {
		case time.Saturday:
			next = next.AddDate(0, 0, config.SaturdayShiftDays)
		case time.Sunday:
			next = next.AddDate(0, 0, config.SundayShiftDays)
		}

		greetings = append(greetings, Greeting{
			Name:               u.Name,
			CongratulationDate: next.Format(config.DateLayoutDotted),
		})
	}

	return greetings
}

// occurrenceIn projects a date of birth onto the given year.
// When the month/day combination does not exist in that year (Feb 29 outside
// leap years) the previous day is used instead. Go's time.Date would
// normalize Feb 29 forward to Mar 1; the day-1 fallback is applied
// explicitly to keep the celebration inside February.
func occurrenceIn(year int, born time.Time) time.Time {
	candidate := time.Date(year, born.Month(), born.Day(), 0, 0, 0, 0, time.UTC)
	if candidate.Month() != born.Month() {
		candidate = time.Date(year, born.Month(), born.Day()-1, 0, 0, 0, 0, time.UTC)
	}
	return candidate
}
