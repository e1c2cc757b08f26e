package config

import (
	"io/fs"
	"time"
)

// -----------------------------------------------------------------------------
// Build Information
// -----------------------------------------------------------------------------

// Build variables are injected via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// UserAgent identifies the HTTP client.
var UserAgent = "Go-Assist/" + Version

// -----------------------------------------------------------------------------
// Application Constants
// -----------------------------------------------------------------------------

const (
	AppName           = "Go Assist"
	AppID             = "com.github.tartampluch.go-assist"
	KeyringService    = "com.github.tartampluch.go-assist"
	LocalhostBindAddr = "127.0.0.1"
	LogFileName       = "app.log"
	EnvFileName       = ".env"
)

// -----------------------------------------------------------------------------
// Exit Codes
// -----------------------------------------------------------------------------

const (
	ExitCodeSuccess = 0
	ExitCodeError   = 1
)

// -----------------------------------------------------------------------------
// System & File Permissions
// -----------------------------------------------------------------------------

const (
	// FilePermUserRW represents -rw------- (Read/Write for owner only).
	// Used for sensitive files like logs.
	FilePermUserRW fs.FileMode = 0600

	// DirPermUserRWX represents drwx------ (Read/Write/Exec for owner only).
	// Used for creating secure cache directories.
	DirPermUserRWX fs.FileMode = 0700

	// ChannelBufferSize defines the standard buffer size for internal signaling channels.
	ChannelBufferSize = 1
)

// -----------------------------------------------------------------------------
// CLI Flags & Descriptions
// -----------------------------------------------------------------------------

const (
	FlagDebug        = "debug"
	FlagFile         = "file"
	FlagVCF          = "vcf"
	FlagURL          = "url"
	FlagUser         = "user"
	FlagICS          = "ics"
	FlagPort         = "port"
	FlagInterval     = "interval"
	FlagDescDebug    = "Enable debug logging"
	FlagDescFile     = "Path to a JSON file with user records"
	FlagDescVCF      = "Path to a local vCard (.vcf) file"
	FlagDescURL      = "HTTP(S) URL of a remote vCard collection"
	FlagDescUser     = "Basic auth username for the remote source"
	FlagDescICS      = "Write the greeting calendar (ICS) to this path"
	FlagDescPort     = "TCP port for the local feed server"
	FlagDescInterval = "Resync interval in minutes"
)

// -----------------------------------------------------------------------------
// Environment Overrides (.env)
// -----------------------------------------------------------------------------

const (
	EnvServerPort  = "GO_ASSIST_PORT"
	EnvSyncMinutes = "GO_ASSIST_SYNC_MIN"
	EnvLanguage    = "GO_ASSIST_LANG"
)

// -----------------------------------------------------------------------------
// Default Values & Business Logic
// -----------------------------------------------------------------------------

const (
	DefaultPort       = "18080"
	DefaultSyncMin    = 60
	DefaultLanguage   = "en"
	DefaultLookahead  = 7    // Days ahead (inclusive) scanned for upcoming birthdays
	LotteryMinBound   = 1    // Smallest value a lottery ticket may contain
	LotteryMaxBound   = 1000 // Largest value a lottery ticket may contain
	UkrainePrefix     = "380"
	UkraineTrunkShim  = "+38" // Prepended to local-format numbers that keep their trunk zero
	PlusSign          = "+"
	UIDSalt           = "go-assist-v1-" // Salt for deterministic UID generation
	SaturdayShiftDays = 2
	SundayShiftDays   = 1
)

// SupportedLanguages defines the list of available output languages (ISO 639-1).
var SupportedLanguages = []string{"en", "fr", "uk"}

// -----------------------------------------------------------------------------
// Translation Keys (I18n)
// -----------------------------------------------------------------------------

const (
	TKeyEvtSummary     = "event_summary" // Requires Name
	TKeyDaysResult     = "days_result"   // Requires Days
	TKeyLotteryNumbers = "lottery_numbers"
	TKeyLotteryEmpty   = "lottery_empty"
	TKeyPhonesHeader   = "phones_header"
	TKeyUpcomingHeader = "upcoming_header"
	TKeyNoUpcoming     = "no_upcoming"
)

// -----------------------------------------------------------------------------
// Standards: iCalendar & vCard
// -----------------------------------------------------------------------------

const (
	// iCal Properties
	ICalVersion = "2.0"
	ICalProdid  = "-//Go Assist//Greetings//EN"
	ICalCalName = "Congratulations"
	ICalMethod  = "PUBLISH"
	ICalScale   = "GREGORIAN"
	ICalDomain  = "goassist"

	// iCal/vCard Fields
	PropUID        = "UID"
	PropSummary    = "SUMMARY"
	PropDTStart    = "DTSTART"
	PropDTStamp    = "DTSTAMP"
	PropVersion    = "VERSION"
	PropProdid     = "PRODID"
	PropXWRCalName = "X-WR-CALNAME"
	PropCalScale   = "CALSCALE"
	PropMethod     = "METHOD"

	VCardBDAY = "BDAY"
	VCardFN   = "FN"
	VCardN    = "N"
)

// -----------------------------------------------------------------------------
// Data Formats, Limits & File Extensions
// -----------------------------------------------------------------------------

const (
	// DateLayoutISO is the input layout accepted by the day-distance calculator.
	DateLayoutISO = "2006-01-02"

	// DateLayoutDotted is the layout of user birthdays and congratulation dates.
	DateLayoutDotted = "2006.01.02"

	// vCard BDAY layouts accepted when importing contacts.
	DateFormatFullDash  = "2006-01-02"
	DateFormatFullBasic = "20060102"
	DateFormatRFC3339   = time.RFC3339
	DateFormatFullT     = "2006-01-02T15:04:05Z"

	// Limits
	MinPort = 1
	MaxPort = 65535

	// UID Generation
	UIDHashLength   = 16
	FormatHashInput = "%s|%s|%s"
	FormatUID       = "%s-%d@%s"
)

// -----------------------------------------------------------------------------
// Network & Timeouts
// -----------------------------------------------------------------------------

const (
	HTTPTimeout         = 30 * time.Second
	ShutdownTimeout     = 5 * time.Second
	ServerReadTimeout   = 10 * time.Second
	ServerWriteTimeout  = 30 * time.Second
	ServerIdleTimeout   = 60 * time.Second
	RetryAfterSeconds   = "10"
	AllowedMethods      = "GET, HEAD"
	MaxHTTPResponseSize = 64 * 1024 * 1024 // 64MB; a vCard collection should never get near this
	SchemeHTTP          = "http"
	SchemeHTTPS         = "https"
	RouteCalendar       = "/birthdays.ics"
	RouteGreetings      = "/greetings.json"
	AddrSeparator       = ":"

	// Rate limiting for the feed server (per client IP).
	RateLimitPerSecond = 5
	RateLimitBurst     = 10
)

// -----------------------------------------------------------------------------
// HTTP Headers & MIME Types
// -----------------------------------------------------------------------------

const (
	HeaderContentType     = "Content-Type"
	HeaderCacheControl    = "Cache-Control"
	HeaderETag            = "ETag"
	HeaderLastModified    = "Last-Modified"
	HeaderRetryAfter      = "Retry-After"
	HeaderAllow           = "Allow"
	HeaderXContentType    = "X-Content-Type-Options"
	HeaderUserAgent       = "User-Agent"
	HeaderIfNoneMatch     = "If-None-Match"
	HeaderIfModifiedSince = "If-Modified-Since"

	MimeTextCalendar    = "text/calendar; charset=utf-8"
	MimeJSON            = "application/json; charset=utf-8"
	MimeNoSniff         = "nosniff"
	CacheControlPrivate = "private, no-cache"

	// FormatETag expects a string argument.
	FormatETag = `"%s"`
)

// -----------------------------------------------------------------------------
// Error Messages (Technical/Logs)
// -----------------------------------------------------------------------------

const (
	// ErrInvalidDateFormat is the exact message carried by a date FormatError.
	ErrInvalidDateFormat = "Invalid date format. Expected 'YYYY-MM-DD'."

	ErrUsersDecode    = "failed to decode user records"
	ErrICalEncode     = "failed to encode iCalendar data"
	ErrDateParse      = "unable to parse date"
	ErrSourceMissing  = "no user record source given (need --file, --vcf or --url)"
	ErrFetcherMissing = "internal error: network fetcher is not initialized"
	ErrInvalidURL     = "invalid URL structure"
	ErrProtocol       = "unsupported protocol scheme (http/https only)"
	ErrServerStartup  = "server startup failed"
	ErrServerShutdown = "server shutdown failed"
	ErrPortRequired   = "server port is required"
	ErrPortNumber     = "server port must be a number"
	ErrPortRange      = "server port must be between 1 and 65535"
	ErrLogFile        = "failed to open log file"
	ErrCacheDir       = "could not determine user cache dir"
	ErrCreateDir      = "could not create app cache dir"
	ErrAppFailed      = "application failed unexpectedly"
	ErrWriteResp      = "failed to write response body"
	ErrKeyringGet     = "failed to read credentials from keyring"
	ErrKeyringSet     = "failed to save credentials to keyring"
	ErrKeyringDel     = "failed to delete credentials from keyring"
	ErrLocalesAccess  = "failed to access embedded locales"
	ErrLocaleLoad     = "failed to load locale file"
)

// -----------------------------------------------------------------------------
// HTTP Server Responses
// -----------------------------------------------------------------------------

const (
	HTTPMsgInitializing = "Feed initializing, please try again shortly."
	HTTPMsgMethodNotAll = "Method Not Allowed"
	HTTPMsgTooMany      = "Too Many Requests"
	HTTPMsgInternalErr  = "Internal Server Error"
)

// -----------------------------------------------------------------------------
// Fallbacks & Defaults
// -----------------------------------------------------------------------------

const (
	FallbackSummary = "Congratulate %s"
	FallbackName    = "Unknown"

	// StubVCalendar is the minimal valid iCalendar object used when no greetings are due.
	// Using a constant avoids hardcoded magic strings in the calendar logic.
	StubVCalendar = "BEGIN:VCALENDAR\r\nVERSION:2.0\r\nPRODID:" + ICalProdid + "\r\nEND:VCALENDAR\r\n"

	MsgLogWarning = "Warning: %s at %s: %v\n"
)

// -----------------------------------------------------------------------------
// Log Messages
// -----------------------------------------------------------------------------

const (
	MsgAppStarting    = "Starting application"
	MsgAppStop        = "Application stopped gracefully"
	MsgSyncStarted    = "Greeting sync started..."
	MsgSyncSuccess    = "Greeting sync successful"
	MsgSkippedRecord  = "Skipping malformed user record"
	MsgSkippedCard    = "Skipping malformed vCard"
	MsgSkippedDate    = "Skipping invalid date format"
	MsgServerListen   = "HTTP server listening"
	MsgServerStop     = "Shutting down HTTP server..."
	MsgCacheUpdated   = "Feed cache updated"
	MsgWorkerStart    = "Background sync worker started"
	MsgWorkerStop     = "Worker stopping due to context cancellation"
	MsgEnvLoaded      = "Environment overrides loaded"
	MsgEnvMissing     = "No .env file found, using defaults"
	MsgLocaleSkip     = "Skipping non-locale file"
	MsgLocaleLoaded   = "Locale loaded successfully"
	MsgTransMissing   = "Missing translation key"
	MsgTicketRejected = "Ticket parameters rejected"
)

// -----------------------------------------------------------------------------
// Log Keys
// -----------------------------------------------------------------------------

const (
	LogKeyComponent = "component"
	LogKeyError     = "error"
	LogKeyURL       = "url"
	LogKeyStatus    = "status_code"
	LogKeyFile      = "file"
	LogKeyKey       = "key"
	LogKeyPort      = "port"
	LogKeyUser      = "user"
	LogKeyTotal     = "total_records"
	LogKeyUpcoming  = "birthdays_upcoming"
	LogKeySizeBytes = "size_bytes"
	LogKeyETag      = "etag"
	LogKeyValue     = "value"
	LogKeyStats     = "stats"
	LogKeyName      = "name"
	LogKeyDuration  = "duration_ms"
	LogKeyInterval  = "interval_min"
	LogKeyMin       = "min"
	LogKeyMax       = "max"
	LogKeyQuantity  = "quantity"

	LogKeyBuild   = "build"
	LogKeyApp     = "app"
	LogKeyVersion = "version"
	LogKeyGoVer   = "go_version"
	LogKeyEnv     = "env"
	LogKeyOS      = "os"
	LogKeyArch    = "arch"
	LogKeyPID     = "pid"
)

// -----------------------------------------------------------------------------
// Log Components
// -----------------------------------------------------------------------------

const (
	CompAssist  = "assist"
	CompLoader  = "loader"
	CompServer  = "server"
	CompFetcher = "fetcher"
	CompWorker  = "worker"
	CompCLI     = "cli"
	CompI18n    = "i18n"
	CompMain    = "main"
)
