package config

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
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

// -----------------------------------------------------------------------------
// Application Constants
// -----------------------------------------------------------------------------

const (
	AppName      = "Go Address Book"
	AppID        = "com.github.tartampluch.go-addressbook"
	LogFileName  = "app.log"
	DataFileName = "addressbook.json"
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
	// Used for the snapshot file and logs, which contain personal data.
	FilePermUserRW fs.FileMode = 0600

	// DirPermUserRWX represents drwx------ (Read/Write/Exec for owner only).
	DirPermUserRWX fs.FileMode = 0700
)

// -----------------------------------------------------------------------------
// CLI Flags & Descriptions
// -----------------------------------------------------------------------------

const (
	FlagVersion     = "version"
	FlagDebug       = "debug"
	FlagData        = "data"
	FlagLang        = "lang"
	FlagNoColor     = "no-color"
	FlagDescVersion = "Show application version and exit"
	FlagDescDebug   = "Enable debug logging"
	FlagDescData    = "Path to the address book snapshot file"
	FlagDescLang    = "UI language (en, uk)"
	FlagDescNoColor = "Disable colored output"

	MsgVersionOutput = "%s version %s (commit %s, built %s, %s/%s)\n"
)

// -----------------------------------------------------------------------------
// Runtime Settings (environment)
// -----------------------------------------------------------------------------

// Settings holds runtime configuration resolved from the environment.
// CLI flags override these values in main.
type Settings struct {
	DataFile string `env:"ADDRBOOK_DATA_FILE"`
	Language string `env:"ADDRBOOK_LANG" envDefault:"en"`
	NoColor  bool   `env:"ADDRBOOK_NO_COLOR"`
}

// LoadSettings parses the environment and fills in the default snapshot
// location when none is given.
func LoadSettings() (Settings, error) {
	var s Settings
	if err := env.Parse(&s); err != nil {
		return Settings{}, err
	}
	if s.DataFile == "" {
		path, err := DefaultDataFile()
		if err != nil {
			return Settings{}, err
		}
		s.DataFile = path
	}
	return s, nil
}

// DefaultDataFile returns <UserConfigDir>/<AppID>/addressbook.json, creating
// the directory with restricted permissions if needed.
func DefaultDataFile() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	appDir := filepath.Join(configDir, AppID)
	if err := os.MkdirAll(appDir, DirPermUserRWX); err != nil {
		return "", err
	}
	return filepath.Join(appDir, DataFileName), nil
}

// -----------------------------------------------------------------------------
// Translation Keys (I18n)
// -----------------------------------------------------------------------------

const (
	TKeyBanner         = "banner"
	TKeyHintTab        = "hint_tab"
	TKeyGreeting       = "greeting"
	TKeyFarewell       = "farewell"
	TKeyUnknownCommand = "unknown_command" // Requires Commands
	TKeyNotEnoughArgs  = "not_enough_args"
	TKeyNoUsage        = "no_usage"

	TKeyContactAdded     = "contact_added"
	TKeyContactUpdated   = "contact_updated"
	TKeyContactNotFound  = "contact_not_found"
	TKeyContactAddFirst  = "contact_add_first"
	TKeyPhoneChanged     = "phone_changed"
	TKeyOldPhoneNotFound = "old_phone_not_found"
	TKeyNoPhones         = "no_phones"
	TKeyBookEmpty        = "book_empty"
	TKeyBirthdayAdded    = "birthday_added" // Requires Name
	TKeyBirthdayNotSet   = "birthday_not_set"
	TKeyNoUpcoming       = "no_upcoming"
	TKeyLblContactName   = "lbl_contact_name"
	TKeyLblPhones        = "lbl_phones"
	TKeyLblBirthday      = "lbl_birthday"
	TKeyCalendarExported = "calendar_exported" // Requires Path
	TKeyContactsExported = "contacts_exported" // Requires Count, Path
	TKeyContactsImported = "contacts_imported" // Requires Imported, Skipped
	TKeyEvtSummaryAge    = "event_summary_age" // Requires Name, Age
	TKeyEvtSummaryBirth  = "event_summary_birth"

	// Domain error translations, shown by the dispatcher.
	TKeyErrEmptyName      = "err_empty_name"
	TKeyErrPhoneLength    = "err_phone_length"
	TKeyErrDateFormat     = "err_date_format"
	TKeyErrFutureBirthday = "err_future_birthday"
	TKeyErrBirthdaySet    = "err_birthday_set"

	// Usage hints, keyed as "usage_<command>".
	TKeyUsagePrefix = "usage_"
)

// SupportedLanguages defines the list of available UI languages (ISO 639-1).
var SupportedLanguages = []string{"en", "uk"}

// -----------------------------------------------------------------------------
// Default Values & Business Logic
// -----------------------------------------------------------------------------

const (
	DefaultLanguage = "en"

	// PhoneDigits is the exact digit count of a canonical phone number.
	PhoneDigits = 10

	// UpcomingWindowDays is the half-open reminder window [today, today+N).
	UpcomingWindowDays = 7

	// SnapshotVersion is the current on-disk schema version.
	SnapshotVersion = 1

	UIDSalt       = "go-addressbook-v1-" // Salt for deterministic UID generation
	UIDHashLength = 16
)

// -----------------------------------------------------------------------------
// Data Formats & File Extensions
// -----------------------------------------------------------------------------

const (
	// DateFormatBirthday is the user-facing birthday layout (DD.MM.YYYY).
	DateFormatBirthday = "02.01.2006"

	// DateFormatFullDash is the vCard BDAY layout.
	DateFormatFullDash = "2006-01-02"

	FormatHashInput = "%s|%s|%s"
	FormatUID       = "%s-%d@%s"
)

// -----------------------------------------------------------------------------
// Standards: iCalendar & vCard
// -----------------------------------------------------------------------------

const (
	ICalVersion = "2.0"
	ICalProdid  = "-//Go Address Book//Engine//EN"
	ICalCalName = "Birthdays"
	ICalMethod  = "PUBLISH"
	ICalScale   = "GREGORIAN"
	ICalDomain  = "goaddressbook"

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
	VCardTEL  = "TEL"

	// StubVCalendar is the minimal valid iCalendar object used when no events
	// are found, so consumers never see an invalid feed.
	StubVCalendar = "BEGIN:VCALENDAR\r\nVERSION:2.0\r\nPRODID:" + ICalProdid + "\r\nEND:VCALENDAR\r\n"
)

// -----------------------------------------------------------------------------
// Error Messages (Technical/Logs)
// -----------------------------------------------------------------------------

const (
	ErrEmptyName       = "name cannot be empty"
	ErrPhoneLength     = "phone must contain exactly 10 digits"
	ErrDateFormat      = "invalid date format, use DD.MM.YYYY"
	ErrFutureBirthday  = "birthday cannot be in the future"
	ErrBirthdaySet     = "birthday is already set for this contact"
	ErrSnapshotVersion = "unsupported snapshot version"
	ErrSnapshotDecode  = "failed to decode snapshot"
	ErrSnapshotEncode  = "failed to encode snapshot"
	ErrSnapshotWrite   = "failed to write snapshot"
	ErrSnapshotRecord  = "snapshot contains an invalid record"
	ErrVCardParse      = "failed to parse vCard stream"
	ErrICalEncode      = "failed to encode iCalendar data"
	ErrLogFile         = "failed to open log file"
	ErrCacheDir        = "could not determine user cache dir"
	ErrCreateDir       = "could not create app cache dir"
	ErrSettingsLoad    = "failed to load settings"
	ErrAppFailed       = "application failed unexpectedly"
	ErrLocalesAccess   = "failed to access embedded locales"
	ErrLocaleLoad      = "failed to load locale file"

	MsgLogWarning = "Warning: %s at %s: %v\n"
)

// -----------------------------------------------------------------------------
// Log Messages
// -----------------------------------------------------------------------------

const (
	MsgAppStarting    = "Starting application"
	MsgAppStop        = "Application stopped gracefully"
	MsgSnapshotLoaded = "Snapshot loaded"
	MsgSnapshotEmpty  = "No snapshot found, starting with an empty book"
	MsgSnapshotSaved  = "Snapshot saved"
	MsgSkippedCard    = "Skipping malformed vCard"
	MsgSkippedPhone   = "Skipping invalid phone number"
	MsgSkippedDate    = "Skipping invalid date format"
	MsgImportDone     = "vCard import finished"
	MsgExportDone     = "Export finished"
	MsgCommandRun     = "Command executed"
	MsgCtxCancel      = "Context cancelled, shutting down"
	MsgLocaleSkip     = "Skipping non-locale file"
	MsgLocaleBadName  = "Skipping malformed locale filename"
	MsgLocaleLoaded   = "Locale loaded successfully"
	MsgTransMissing   = "Missing translation key"
)

// -----------------------------------------------------------------------------
// Structured Logging Keys (slog)
// -----------------------------------------------------------------------------

const (
	LogKeyComponent = "component"
	LogKeyError     = "error"
	LogKeyFile      = "file"
	LogKeyLang      = "lang"
	LogKeyKey       = "key"
	LogKeyName      = "name"
	LogKeyCommand   = "command"
	LogKeyCount     = "count"
	LogKeyImported  = "imported"
	LogKeySkipped   = "skipped"
	LogKeyValue     = "value"
	LogKeyPath      = "path"

	// Startup Info Keys
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
	CompMain    = "main"
	CompStorage = "storage"
	CompCLI     = "cli"
	CompI18n    = "i18n"
	CompVCF     = "vcf"
	CompCal     = "cal"
)
