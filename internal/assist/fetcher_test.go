package assist

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tartampluch/go-assist/internal/config"
)

// TestHTTPFetcher_Success verifies headers, auth and body plumbing against a
// local test server.
func TestHTTPFetcher_Success(t *testing.T) {
	const body = "BEGIN:VCARD\nVERSION:3.0\nFN:John Doe\nBDAY:1985-01-23\nEND:VCARD"

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, config.UserAgent, r.Header.Get(config.HeaderUserAgent))

		user, pass, ok := r.BasicAuth()
		require.True(t, ok, "basic auth must be forwarded")
		assert.Equal(t, "alice", user)
		assert.Equal(t, "s3cret", pass)

		_, _ = w.Write([]byte(body))
	}))
	defer srv.Close()

	fetcher := NewHTTPFetcher()
	rc, err := fetcher.Fetch(context.Background(), srv.URL, "alice", "s3cret")
	require.NoError(t, err)
	defer func() { _ = rc.Close() }()

	got, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, body, string(got))
}

// TestHTTPFetcher_NoAuthHeaderWhenEmpty ensures anonymous requests stay anonymous.
func TestHTTPFetcher_NoAuthHeaderWhenEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _, ok := r.BasicAuth()
		assert.False(t, ok)
	}))
	defer srv.Close()

	fetcher := NewHTTPFetcher()
	rc, err := fetcher.Fetch(context.Background(), srv.URL, "", "")
	require.NoError(t, err)
	_ = rc.Close()
}

// TestHTTPFetcher_ErrorStatus maps non-200 responses to errors.
func TestHTTPFetcher_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer srv.Close()

	fetcher := NewHTTPFetcher()
	_, err := fetcher.Fetch(context.Background(), srv.URL, "", "")
	assert.Error(t, err)
}

// TestHTTPFetcher_RejectsBadURLs covers scheme validation before any
// network activity happens.
func TestHTTPFetcher_RejectsBadURLs(t *testing.T) {
	fetcher := NewHTTPFetcher()

	tests := []struct {
		name string
		url  string
	}{
		{"File scheme", "file:///etc/passwd"},
		{"FTP scheme", "ftp://example.com/cards.vcf"},
		{"No scheme", "example.com/cards.vcf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := fetcher.Fetch(context.Background(), tt.url, "", "")
			assert.Error(t, err)
		})
	}
}
