package config

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Settings holds the runtime options that may be overridden through the
// environment or a local .env file. Everything else in this package is a
// compile-time constant.
type Settings struct {
	ServerPort  string
	SyncMinutes int
	Language    string
}

// LoadSettings reads the optional .env file from the working directory and
// applies environment overrides on top of the defaults. A missing .env file
// is not an error; the defaults simply apply.
func LoadSettings() Settings {
	s := Settings{
		ServerPort:  DefaultPort,
		SyncMinutes: DefaultSyncMin,
		Language:    DefaultLanguage,
	}

	if err := godotenv.Load(EnvFileName); err != nil {
		slog.Debug(MsgEnvMissing, LogKeyComponent, CompMain)
	} else {
		slog.Debug(MsgEnvLoaded, LogKeyComponent, CompMain, LogKeyFile, EnvFileName)
	}

	if port := os.Getenv(EnvServerPort); port != "" {
		s.ServerPort = port
	}

	if raw := os.Getenv(EnvSyncMinutes); raw != "" {
		if min, err := strconv.Atoi(raw); err == nil && min > 0 {
			s.SyncMinutes = min
		}
	}

	if lang := os.Getenv(EnvLanguage); lang != "" {
		s.Language = lang
	}

	return s
}

// ValidatePort checks that a port string is numeric and within range.
// Returns the matching config error message constant, or "" when valid.
func ValidatePort(port string) string {
	if port == "" {
		return ErrPortRequired
	}
	n, err := strconv.Atoi(port)
	if err != nil {
		return ErrPortNumber
	}
	if n < MinPort || n > MaxPort {
		return ErrPortRange
	}
	return ""
}
