package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() and the loaders, and
// provide specific information about what is wrong with the configuration.
//
// Design decision: We use package-level sentinel errors rather than
// creating new error instances in Validate(). This allows callers to use
// errors.Is() for programmatic error handling while still providing
// human-readable messages. Using errors.New() here rather than fmt.Errorf()
// because we don't need to include dynamic values in these messages.
var (
	// ErrNoDivisions is returned when the league file defines no divisions.
	// A report needs at least one division to fetch.
	ErrNoDivisions = errors.New("no divisions configured: add at least one division to the league file")

	// ErrInvalidSeason is returned when the season year is not positive.
	ErrInvalidSeason = errors.New("invalid season: must be a positive year")

	// ErrInvalidWeek is returned when the week override is negative.
	// Zero means "use the platform's current week".
	ErrInvalidWeek = errors.New("invalid week: must be non-negative")

	// ErrInvalidConcurrency is returned when the fetch concurrency is not
	// positive. Zero concurrency would mean no divisions are ever fetched.
	ErrInvalidConcurrency = errors.New("invalid concurrency: must be positive")

	// ErrInvalidTimeout is returned when the request timeout is not positive.
	// A timeout of zero or negative would cause immediate request failures.
	ErrInvalidTimeout = errors.New("invalid timeout: must be positive")

	// ErrConflictingReportFormats is returned when more than one report
	// format flag is specified. Only one output format can be used at a time.
	ErrConflictingReportFormats = errors.New("conflicting report formats: use at most one of --json, --markdown, --csv, --html")

	// ErrConfigNotFound is returned when the league file does not exist.
	ErrConfigNotFound = errors.New("league file not found")

	// ErrMissingCredentials is returned when the ESPN_S2 or SWID environment
	// variables are unset. Private leagues cannot be fetched without them.
	ErrMissingCredentials = errors.New("missing credentials: set ESPN_S2 and SWID in the environment or a .env file")

	// ErrDuplicateDivision is returned when two divisions in the league file
	// share a name. Division names key every per-division map in the report.
	ErrDuplicateDivision = errors.New("duplicate division name in league file")
)
