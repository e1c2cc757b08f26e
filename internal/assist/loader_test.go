package assist

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseUsers verifies JSON decoding plus the silent-skip policy for
// records missing required fields.
func TestParseUsers(t *testing.T) {
	payload := `[
		{"name": "John Doe", "birthday": "1985.01.23"},
		{"name": "No Birthday"},
		{"birthday": "1990.01.27"},
		{"name": "Jane Smith", "birthday": "1990.01.27"}
	]`

	users, err := ParseUsers(strings.NewReader(payload))
	require.NoError(t, err)

	require.Len(t, users, 2, "incomplete records must be skipped, not fail the call")
	assert.Equal(t, User{Name: "John Doe", Birthday: "1985.01.23"}, users[0])
	assert.Equal(t, User{Name: "Jane Smith", Birthday: "1990.01.27"}, users[1])
}

// TestParseUsers_MalformedStream ensures a broken stream as a whole is an error.
func TestParseUsers_MalformedStream(t *testing.T) {
	_, err := ParseUsers(strings.NewReader(`{"not": "an array"`))
	assert.Error(t, err)
}

// TestParseUsers_EmptyArray returns an empty, non-nil slice.
func TestParseUsers_EmptyArray(t *testing.T) {
	users, err := ParseUsers(strings.NewReader(`[]`))
	require.NoError(t, err)
	assert.NotNil(t, users)
	assert.Empty(t, users)
}

// TestUsersFromVCards verifies the vCard import path: FN preferred over N,
// BDAY converted to the dotted layout, cards without a usable birthday
// skipped.
func TestUsersFromVCards(t *testing.T) {
	stream := `BEGIN:VCARD
VERSION:4.0
FN:John Doe
BDAY:1985-01-23
END:VCARD
BEGIN:VCARD
VERSION:3.0
N:Smith;Jane;;;
BDAY:19900127
END:VCARD
BEGIN:VCARD
VERSION:3.0
FN:No Birthday
END:VCARD
BEGIN:VCARD
VERSION:3.0
FN:Strange Date
BDAY:someday
END:VCARD`

	users, err := UsersFromVCards(strings.NewReader(stream))
	require.NoError(t, err)

	require.Len(t, users, 2)
	assert.Equal(t, User{Name: "John Doe", Birthday: "1985.01.23"}, users[0])
	assert.Equal(t, "1990.01.27", users[1].Birthday)
	assert.Contains(t, users[1].Name, "Smith", "structured name is used when FN is absent")
}

// TestUsersFromVCards_Empty yields no users and no error.
func TestUsersFromVCards_Empty(t *testing.T) {
	users, err := UsersFromVCards(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, users)
}
