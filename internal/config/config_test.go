package config_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/tartampluch/go-assist/internal/config"
)

// TestConstants_Integrity ensures critical constants are not empty or malformed.
// This prevents accidental deletion of keys required for runtime logic.
func TestConstants_Integrity(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"AppName", config.AppName},
		{"AppID", config.AppID},
		{"Version", config.Version},
		{"UserAgent", config.UserAgent},
		{"ICalVersion", config.ICalVersion},
		{"ICalProdid", config.ICalProdid},
		{"ErrInvalidDateFormat", config.ErrInvalidDateFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotEmpty(t, tt.value, "Critical constant %s should not be empty", tt.name)
		})
	}
}

// TestDefaults_Sanity checks that default values make sense logically.
func TestDefaults_Sanity(t *testing.T) {
	assert.Greater(t, config.DefaultSyncMin, 0, "Default sync interval must be positive")
	assert.Equal(t, 7, config.DefaultLookahead, "The birthday window spans today plus seven days")
	assert.Equal(t, 1, config.LotteryMinBound)
	assert.Equal(t, 1000, config.LotteryMaxBound)
	assert.Equal(t, 30*time.Second, config.HTTPTimeout)
}

// TestUserAgent_Format ensures the UA string follows the standard format.
func TestUserAgent_Format(t *testing.T) {
	assert.True(t, strings.HasPrefix(config.UserAgent, "Go-Assist/"), "UserAgent must start with AppName/")
}

// TestValidatePort covers the port validation helper.
func TestValidatePort(t *testing.T) {
	tests := []struct {
		name     string
		port     string
		expected string
	}{
		{"Valid", "18080", ""},
		{"Empty", "", config.ErrPortRequired},
		{"Not a number", "http", config.ErrPortNumber},
		{"Zero", "0", config.ErrPortRange},
		{"Too large", "70000", config.ErrPortRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, config.ValidatePort(tt.port))
		})
	}
}

// TestLoadSettings_EnvOverrides verifies environment variables take priority
// over defaults, and invalid values are ignored.
func TestLoadSettings_EnvOverrides(t *testing.T) {
	t.Setenv(config.EnvServerPort, "9999")
	t.Setenv(config.EnvSyncMinutes, "15")
	t.Setenv(config.EnvLanguage, "uk")

	s := config.LoadSettings()
	assert.Equal(t, "9999", s.ServerPort)
	assert.Equal(t, 15, s.SyncMinutes)
	assert.Equal(t, "uk", s.Language)
}

// TestLoadSettings_Defaults verifies the fallback values without overrides.
func TestLoadSettings_Defaults(t *testing.T) {
	t.Setenv(config.EnvServerPort, "")
	t.Setenv(config.EnvSyncMinutes, "not-a-number")
	t.Setenv(config.EnvLanguage, "")

	s := config.LoadSettings()
	assert.Equal(t, config.DefaultPort, s.ServerPort)
	assert.Equal(t, config.DefaultSyncMin, s.SyncMinutes)
	assert.Equal(t, config.DefaultLanguage, s.Language)
}
