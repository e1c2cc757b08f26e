package assist

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tartampluch/go-assist/internal/config"
)

// TestCalendarBuilder_Build verifies the rendered feed carries one event per
// greeting with the injected summary and a DATE-valued start.
func TestCalendarBuilder_Build(t *testing.T) {
	builder := &CalendarBuilder{
		Clock: MockClock{CurrentTime: time.Date(2024, 1, 20, 12, 0, 0, 0, time.UTC)},
		FormatSummary: func(name string) string {
			return fmt.Sprintf("Happy birthday, %s!", name)
		},
	}

	greetings := []Greeting{
		{Name: "John Doe", CongratulationDate: "2024.01.23"},
		{Name: "Jane Smith", CongratulationDate: "2024.01.29"},
	}

	data, err := builder.Build(greetings)
	require.NoError(t, err)

	ics := string(data)
	assert.Contains(t, ics, "BEGIN:VCALENDAR")
	assert.Contains(t, ics, "PRODID:"+config.ICalProdid)
	assert.Contains(t, ics, "SUMMARY:Happy birthday\\, John Doe!")
	assert.Contains(t, ics, "SUMMARY:Happy birthday\\, Jane Smith!")
	assert.Contains(t, ics, "20240123")
	assert.Contains(t, ics, "20240129")
}

// TestCalendarBuilder_FallbackSummary covers the nil-formatter path.
func TestCalendarBuilder_FallbackSummary(t *testing.T) {
	builder := &CalendarBuilder{
		Clock: MockClock{CurrentTime: time.Date(2024, 1, 20, 12, 0, 0, 0, time.UTC)},
	}

	data, err := builder.Build([]Greeting{{Name: "John Doe", CongratulationDate: "2024.01.23"}})
	require.NoError(t, err)
	assert.Contains(t, string(data), fmt.Sprintf(config.FallbackSummary, "John Doe"))
}

// TestCalendarBuilder_StableUIDs ensures re-rendering the same greetings
// keeps identical event UIDs, so calendar clients do not duplicate events
// across refreshes.
func TestCalendarBuilder_StableUIDs(t *testing.T) {
	builder := &CalendarBuilder{
		Clock: MockClock{CurrentTime: time.Date(2024, 1, 20, 12, 0, 0, 0, time.UTC)},
	}
	greetings := []Greeting{{Name: "Jane Smith", CongratulationDate: "2024.01.29"}}

	first, err := builder.Build(greetings)
	require.NoError(t, err)
	second, err := builder.Build(greetings)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

// TestCalendarBuilder_EmptyStub verifies an empty greeting list still yields
// a valid VCALENDAR document.
func TestCalendarBuilder_EmptyStub(t *testing.T) {
	builder := &CalendarBuilder{
		Clock: MockClock{CurrentTime: time.Date(2024, 1, 20, 12, 0, 0, 0, time.UTC)},
	}

	data, err := builder.Build(nil)
	require.NoError(t, err)
	assert.Equal(t, config.StubVCalendar, string(data))
}

// TestCalendarBuilder_BadDate surfaces malformed greeting dates as errors;
// they indicate a bug upstream rather than bad user input.
func TestCalendarBuilder_BadDate(t *testing.T) {
	builder := &CalendarBuilder{
		Clock: MockClock{CurrentTime: time.Date(2024, 1, 20, 12, 0, 0, 0, time.UTC)},
	}

	_, err := builder.Build([]Greeting{{Name: "Broken", CongratulationDate: "23/01/2024"}})
	assert.Error(t, err)
}
