package assist

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/emersion/go-vcard"
	"github.com/go-playground/validator/v10"

	"github.com/tartampluch/go-assist/internal/config"
)

// validate checks structural requirements on decoded user records.
// Records that fail validation are skipped, never reported as errors,
// matching the silent-skip contract of UpcomingBirthdays.
var validate = validator.New(validator.WithRequiredStructEnabled())

// ParseUsers decodes a JSON array of user records from r.
// Records missing a name or birthday are dropped with a debug log; only a
// malformed stream as a whole produces an error.
func ParseUsers(r io.Reader) ([]User, error) {
	var raw []User
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrUsersDecode, err)
	}

	users := make([]User, 0, len(raw))
	for _, u := range raw {
		if err := validate.Struct(u); err != nil {
			slog.Debug(config.MsgSkippedRecord,
				config.LogKeyComponent, config.CompLoader,
				config.LogKeyName, u.Name,
				config.LogKeyError, err,
			)
			continue
		}
		users = append(users, u)
	}
	return users, nil
}

// UsersFromVCards converts a vCard stream into user records, taking the
// display name from FN (falling back to N) and the birthday from BDAY.
// Cards without a parsable birthday are skipped to maximize data recovery,
// mirroring the JSON loader's skip policy.
func UsersFromVCards(r io.Reader) ([]User, error) {
	decoder := vcard.NewDecoder(r)
	users := make([]User, 0)

	for {
		card, err := decoder.Decode()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// Log and move to the next card to maximize data recovery.
			slog.Warn(config.MsgSkippedCard,
				config.LogKeyComponent, config.CompLoader,
				config.LogKeyError, err,
			)
			continue
		}

		bday := card.Get(config.VCardBDAY)
		if bday == nil || bday.Value == "" {
			continue
		}

		born, err := parseBDay(bday.Value)
		if err != nil {
			slog.Debug(config.MsgSkippedDate,
				config.LogKeyComponent, config.CompLoader,
				config.LogKeyValue, bday.Value,
			)
			continue
		}

		// Name strategy: FN (formatted) > N (structured) > fallback.
		name := config.FallbackName
		if fn := card.Get(config.VCardFN); fn != nil {
			name = fn.Value
		} else if n := card.Get(config.VCardN); n != nil {
			name = n.Value
		}

		users = append(users, User{
			Name:     name,
			Birthday: born.Format(config.DateLayoutDotted),
		})
	}

	return users, nil
}

// parseBDay handles the vCard date layouts seen in the wild.
func parseBDay(value string) (time.Time, error) {
	layouts := []string{
		config.DateFormatFullDash,
		config.DateFormatFullBasic,
		config.DateFormatRFC3339,
		config.DateFormatFullT,
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.New(config.ErrDateParse)
}
