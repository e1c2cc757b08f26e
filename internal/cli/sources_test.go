package cli

import (
	"context"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/tartampluch/go-assist/internal/assist"
)

// MockFetcher simulates the network layer using testify/mock.
type MockFetcher struct {
	mock.Mock
}

// Fetch implements the assist.CardFetcher interface.
func (m *MockFetcher) Fetch(ctx context.Context, url, user, pass string) (io.ReadCloser, error) {
	args := m.Called(ctx, url, user, pass)
	if r := args.Get(0); r != nil {
		return r.(io.ReadCloser), args.Error(1)
	}
	return nil, args.Error(1)
}

// TestSourceFlags_LoadJSONFile reads user records from a temporary JSON file.
func TestSourceFlags_LoadJSONFile(t *testing.T) {
	tmpFile, err := os.CreateTemp("", "users_*.json")
	require.NoError(t, err)
	defer func() { _ = os.Remove(tmpFile.Name()) }()

	_, err = tmpFile.WriteString(`[{"name": "John Doe", "birthday": "1985.01.23"}]`)
	require.NoError(t, err)
	_ = tmpFile.Close()

	src := sourceFlags{file: tmpFile.Name()}
	users, err := src.load(context.Background(), nil)

	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "John Doe", users[0].Name)
}

// TestSourceFlags_LoadRemote fetches a vCard collection through the fetcher.
func TestSourceFlags_LoadRemote(t *testing.T) {
	vcardContent := `BEGIN:VCARD
VERSION:3.0
FN:Jane Smith
BDAY:1990-01-27
END:VCARD`

	mockFetcher := new(MockFetcher)
	mockFetcher.On("Fetch", mock.Anything, "http://example.com/cards.vcf", "", "").
		Return(io.NopCloser(strings.NewReader(vcardContent)), nil)

	src := sourceFlags{url: "http://example.com/cards.vcf"}
	users, err := src.load(context.Background(), mockFetcher)

	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, assist.User{Name: "Jane Smith", Birthday: "1990.01.27"}, users[0])
	mockFetcher.AssertExpectations(t)
}

// TestSourceFlags_NoSource fails fast when nothing is configured.
func TestSourceFlags_NoSource(t *testing.T) {
	src := sourceFlags{}
	_, err := src.load(context.Background(), assist.NewHTTPFetcher())
	assert.Error(t, err)
}
