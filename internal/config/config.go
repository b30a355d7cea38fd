package config

import (
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
)

// Default configuration values.
const (
	// DefaultTimeout is the per-request timeout for ESPN API calls.
	// 15 seconds is generous for a JSON API; slower responses usually mean
	// the platform is having problems and retrying later is the right move.
	DefaultTimeout = 15 * time.Second

	// DefaultConcurrency is the number of divisions fetched concurrently.
	// Division counts are small, so a low bound keeps request bursts polite
	// without serializing the whole fetch.
	DefaultConcurrency = 4

	// AppName is the application name used for XDG directory paths.
	AppName = "ffreport"
)

// Config holds all run options for ffreport.
// This struct is designed to be populated from CLI flags and passed through
// the application via dependency injection rather than global state.
//
// Design decision: We use a single flat struct instead of nested structs
// for simplicity. The number of options is manageable, and nesting would
// add complexity without significant benefit.
type Config struct {
	// ConfigFilePath is the path to the league file.
	// If empty, the tool searches for .ffreport in the current directory
	// and then in the user's home directory.
	ConfigFilePath string

	// League holds the league definition loaded from the league file.
	League *File

	// Season is the season year to report on.
	// Zero means use the season from the league file.
	Season int

	// Week renders the report as of the given week instead of the
	// platform's current week. Zero means use the current week.
	Week int

	// Partial relaxes the completeness gate: sections the season has not
	// reached yet are omitted instead of failing the run.
	Partial bool

	// DivisionFilter restricts the report to divisions whose names
	// approximately match this string. Empty means all divisions.
	DivisionFilter string

	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only warnings and errors are logged.
	Verbose bool

	// Concurrency is the number of divisions fetched concurrently.
	Concurrency int

	// Timeout is the per-request timeout for ESPN API calls.
	Timeout time.Duration

	// JSONReport enables JSON report output instead of console format.
	// Mutually exclusive with the other format flags.
	JSONReport bool

	// MarkdownReport enables Markdown report output instead of console
	// format. Mutually exclusive with the other format flags.
	MarkdownReport bool

	// CSVReport enables CSV report output instead of console format.
	// Mutually exclusive with the other format flags.
	CSVReport bool

	// HTMLReport enables HTML report output instead of console format.
	// Mutually exclusive with the other format flags.
	HTMLReport bool

	// ReportFile is the output file path for the report.
	// When set, the report is written to this file instead of stdout.
	// Directories are created automatically if they don't exist.
	ReportFile string

	// DBDir is the directory path for storing the SQLite snapshot database.
	// Defaults to the XDG data directory (~/.local/share/ffreport on Linux).
	DBDir string

	// SaveToDB indicates whether to save the summary as a snapshot.
	SaveToDB bool
}

// NewConfig creates a new Config with default values.
// All fields are set to safe, sensible defaults that work for most use
// cases. Users can override specific values after creation.
//
// Design decision: We use a constructor function instead of relying on
// zero values because several defaults are non-zero (timeout, concurrency,
// database directory). This also serves as documentation of what the
// defaults are.
func NewConfig() *Config {
	return &Config{
		Timeout:     DefaultTimeout,
		Concurrency: DefaultConcurrency,
		DBDir:       XDGDataDir(),
		SaveToDB:    true,
	}
}

// XDGDataDir returns the XDG data directory for ffreport.
// This follows the XDG Base Directory Specification.
// On Linux: ~/.local/share/ffreport
// On macOS: ~/Library/Application Support/ffreport
// On Windows: %LOCALAPPDATA%\ffreport
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// XDGConfigDir returns the XDG config directory for ffreport.
// This follows the XDG Base Directory Specification.
// On Linux: ~/.config/ffreport
// On macOS: ~/Library/Application Support/ffreport
// On Windows: %APPDATA%\ffreport
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks if the configuration is valid.
// It returns a specific error describing what is invalid.
//
// Design decision: We validate at the config level rather than at each
// point of use to fail fast and provide clear error messages upfront.
// This is called once after CLI parsing and league file loading, before
// any fetching begins.
//
// We chose to return the first error found rather than collecting all
// errors because fixing one error often makes others irrelevant.
func (c *Config) Validate() error {
	if c.League == nil || len(c.League.Divisions) == 0 {
		return ErrNoDivisions
	}

	if c.Season <= 0 {
		return ErrInvalidSeason
	}

	if c.Week < 0 {
		return ErrInvalidWeek
	}

	if c.Concurrency <= 0 {
		return ErrInvalidConcurrency
	}

	if c.Timeout <= 0 {
		return ErrInvalidTimeout
	}

	formats := 0
	for _, enabled := range []bool{c.JSONReport, c.MarkdownReport, c.CSVReport, c.HTMLReport} {
		if enabled {
			formats++
		}
	}
	if formats > 1 {
		return ErrConflictingReportFormats
	}

	return nil
}
