package assist

import (
	"strings"

	"github.com/tartampluch/go-assist/internal/config"
)

// NormalizePhone converts a phone number in arbitrary human formatting
// (spaces, tabs, parentheses, dashes, optional country code) to the
// canonical "+<digits>" form.
//
// Numbers without an explicit "+" are assumed to belong to the Ukrainian
// numbering plan: digit strings already starting with "380" only gain the
// plus sign, anything else is treated as a local number that keeps its
// trunk zero and receives the "+38" country shim.
//
// This is a formatter, not a validator: no digit-count or plausibility
// check is performed, and any input yields a best-effort result.
func NormalizePhone(raw string) string {
	trimmed := strings.TrimSpace(raw)

	if strings.HasPrefix(trimmed, config.PlusSign) {
		return config.PlusSign + digitsOf(trimmed[len(config.PlusSign):])
	}

	digits := digitsOf(trimmed)
	if strings.HasPrefix(digits, config.UkrainePrefix) {
		return config.PlusSign + digits
	}
	return config.UkraineTrunkShim + digits
}

// digitsOf strips every non-digit byte from s.
func digitsOf(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}
