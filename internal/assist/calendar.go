package assist

import (
	"bytes"
	"crypto/sha256"
	"fmt"
	"time"

	"github.com/emersion/go-ical"

	"github.com/tartampluch/go-assist/internal/config"
)

// CalendarBuilder renders a greeting list as an iCalendar feed with one
// all-day event per congratulation date.
type CalendarBuilder struct {
	Clock Clock // Interface for time mocking; stamps DTSTAMP.

	// FormatSummary allows the caller to inject localized event summaries.
	// When nil, config.FallbackSummary is used.
	FormatSummary func(name string) string
}

// Build encodes greetings as an iCalendar byte stream. An empty greeting
// list yields a minimal valid VCALENDAR stub so feed consumers never see
// an invalid document.
func (b *CalendarBuilder) Build(greetings []Greeting) ([]byte, error) {
	cal := ical.NewCalendar()

	cal.Props.SetText(config.PropVersion, config.ICalVersion)
	cal.Props.SetText(config.PropProdid, config.ICalProdid)
	cal.Props.SetText(config.PropXWRCalName, config.ICalCalName)
	cal.Props.SetText(config.PropCalScale, config.ICalScale)
	cal.Props.SetText(config.PropMethod, config.ICalMethod)

	now := b.Clock.Now()
	dtStampProp := ical.NewProp(config.PropDTStamp)
	dtStampProp.SetDateTime(now.UTC())

	for _, g := range greetings {
		date, err := time.Parse(config.DateLayoutDotted, g.CongratulationDate)
		if err != nil {
			// Greetings are produced by UpcomingBirthdays and always carry
			// well-formed dates; an unparsable one is a bug worth surfacing.
			return nil, fmt.Errorf("%s: %w", config.ErrDateParse, err)
		}

		event := ical.NewEvent()
		event.Props.SetText(config.PropUID, eventUID(g.Name, date))

		summary := fmt.Sprintf(config.FallbackSummary, g.Name)
		if b.FormatSummary != nil {
			summary = b.FormatSummary(g.Name)
		}
		event.Props.SetText(config.PropSummary, summary)

		dtStartProp := ical.NewProp(config.PropDTStart)
		dtStartProp.SetDate(date)
		event.Props.Set(dtStartProp)
		event.Props.Set(dtStampProp)

		cal.Children = append(cal.Children, event.Component)
	}

	if len(cal.Children) == 0 {
		return []byte(config.StubVCalendar), nil
	}

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrICalEncode, err)
	}
	return buf.Bytes(), nil
}

// eventUID derives a stable identifier from the greeting itself, so a
// re-rendered feed keeps identical UIDs across refreshes.
func eventUID(name string, date time.Time) string {
	input := fmt.Sprintf(config.FormatHashInput, name, date.Format(config.DateLayoutDotted), config.UIDSalt)
	hash := sha256.Sum256([]byte(input))
	base := fmt.Sprintf("%x", hash[:config.UIDHashLength])
	return fmt.Sprintf(config.FormatUID, base, date.Year(), config.ICalDomain)
}
