package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/ffreport/ffreport/internal/model"
)

// SnapshotDB provides SQLite-based storage for season report snapshots.
// It manages connection pooling and provides methods for saving and
// retrieving snapshots.
//
// Design decision: We use a single database file for all seasons rather
// than one file per season. This keeps history queries across seasons
// trivial and simplifies backup/restore operations.
type SnapshotDB struct {
	// db is the underlying SQL database connection.
	db *sql.DB

	// dbPath is the path to the SQLite database file.
	dbPath string
}

// Options configures SnapshotDB behavior.
type Options struct {
	// CreateIfNotExists creates the database file if it doesn't exist.
	CreateIfNotExists bool

	// EnableWAL enables Write-Ahead Logging for better concurrent performance.
	// This is recommended for most use cases.
	EnableWAL bool
}

// DefaultOptions returns the default database options.
func DefaultOptions() Options {
	return Options{
		CreateIfNotExists: true,
		EnableWAL:         true,
	}
}

// Open opens or creates a SnapshotDB at the specified directory.
// If CreateIfNotExists is true, the directory and database file are created.
// If CreateIfNotExists is false and the database doesn't exist, an error is returned.
func Open(dbDir string, opts Options) (*SnapshotDB, error) {
	dbPath := filepath.Join(dbDir, "ffreport.db")

	if !opts.CreateIfNotExists {
		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("database not found at %s (use CreateIfNotExists option to create)", dbPath)
		} else if err != nil {
			return nil, fmt.Errorf("failed to check database path: %w", err)
		}
	} else {
		if err := os.MkdirAll(dbDir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	// modernc.org/sqlite connection string: mode=rw prevents creating new
	// files, mode=rwc allows creation.
	var dsn string
	if opts.CreateIfNotExists {
		dsn = dbPath + "?mode=rwc"
	} else {
		dsn = dbPath + "?mode=rw"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only supports one writer, and snapshot traffic is tiny.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	sdb := &SnapshotDB{
		db:     db,
		dbPath: dbPath,
	}

	if opts.EnableWAL {
		if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	if err := sdb.createTables(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return sdb, nil
}

// Close closes the database connection.
func (sdb *SnapshotDB) Close() error {
	return sdb.db.Close()
}

// createTables creates the database schema if it doesn't exist.
func (sdb *SnapshotDB) createTables() error {
	schema := `
	-- Snapshots store complete season summaries as JSON, one row per run
	CREATE TABLE IF NOT EXISTS snapshots (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		season INTEGER NOT NULL,
		week INTEGER NOT NULL,
		phase TEXT NOT NULL,
		partial INTEGER NOT NULL DEFAULT 0,
		divisions TEXT NOT NULL,
		timestamp DATETIME DEFAULT CURRENT_TIMESTAMP,
		summary_json TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_snapshots_season ON snapshots(season);
	CREATE INDEX IF NOT EXISTS idx_snapshots_week ON snapshots(season, week);
	CREATE INDEX IF NOT EXISTS idx_snapshots_timestamp ON snapshots(timestamp);
	`

	_, err := sdb.db.ExecContext(context.Background(), schema)
	return err
}

// SaveSnapshot saves a complete season summary as one snapshot row.
func (sdb *SnapshotDB) SaveSnapshot(ctx context.Context, summary *model.SeasonSummary) error {
	summaryJSON, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("failed to serialize summary: %w", err)
	}
	divisionsJSON, _ := json.Marshal(summary.Divisions) //nolint:errcheck,errchkjson // a string slice; Marshal won't fail

	query := `
	INSERT INTO snapshots (season, week, phase, partial, divisions, summary_json)
	VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err = sdb.db.ExecContext(ctx, query,
		summary.Season,
		summary.Week,
		summary.Phase.String(),
		summary.Partial,
		string(divisionsJSON),
		string(summaryJSON),
	)
	if err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}

	return nil
}

// LatestSnapshot retrieves the most recent snapshot for a season.
// It returns nil with no error when the season has no snapshots.
func (sdb *SnapshotDB) LatestSnapshot(ctx context.Context, season int) (*model.SeasonSummary, error) {
	query := `
	SELECT summary_json FROM snapshots
	WHERE season = ?
	ORDER BY timestamp DESC, id DESC
	LIMIT 1
	`

	var summaryJSON string
	err := sdb.db.QueryRowContext(ctx, query, season).Scan(&summaryJSON)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get snapshot: %w", err)
	}

	var summary model.SeasonSummary
	if err := json.Unmarshal([]byte(summaryJSON), &summary); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot: %w", err)
	}

	return &summary, nil
}

// SnapshotMetadata contains summary information about a stored snapshot.
// This is used for displaying history without loading full summaries.
type SnapshotMetadata struct {
	// ID is the unique identifier of the snapshot in the database.
	ID int64

	// Season is the season year.
	Season int

	// Week is the synchronized week the snapshot was taken at.
	Week int

	// Phase is the phase label at snapshot time.
	Phase string

	// Partial reports whether the snapshot was taken in partial mode.
	Partial bool

	// Divisions are the division names covered by the snapshot.
	Divisions []string

	// Timestamp is when the snapshot was saved.
	Timestamp time.Time
}

// History retrieves snapshot metadata for a season, newest first.
// This is more efficient than loading full summaries when only metadata
// is needed.
func (sdb *SnapshotDB) History(ctx context.Context, season int) ([]SnapshotMetadata, error) {
	query := `
	SELECT id, season, week, phase, partial, divisions, timestamp
	FROM snapshots
	WHERE season = ?
	ORDER BY timestamp DESC, id DESC
	`

	rows, err := sdb.db.QueryContext(ctx, query, season)
	if err != nil {
		return nil, fmt.Errorf("failed to get snapshot history: %w", err)
	}
	defer rows.Close()

	var results []SnapshotMetadata
	for rows.Next() {
		var meta SnapshotMetadata
		var divisionsJSON string
		var timestamp string

		if err := rows.Scan(&meta.ID, &meta.Season, &meta.Week, &meta.Phase, &meta.Partial, &divisionsJSON, &timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan metadata: %w", err)
		}

		meta.Timestamp = parseTimestamp(timestamp)

		if divisionsJSON != "" {
			if err := json.Unmarshal([]byte(divisionsJSON), &meta.Divisions); err != nil {
				meta.Divisions = nil
			}
		}

		results = append(results, meta)
	}

	return results, rows.Err()
}

// SnapshotByID retrieves a snapshot by its database ID.
// It returns nil with no error when no snapshot has the given ID.
func (sdb *SnapshotDB) SnapshotByID(ctx context.Context, id int64) (*model.SeasonSummary, error) {
	query := `
	SELECT summary_json FROM snapshots
	WHERE id = ?
	`

	var summaryJSON string
	err := sdb.db.QueryRowContext(ctx, query, id).Scan(&summaryJSON)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get snapshot: %w", err)
	}

	var summary model.SeasonSummary
	if err := json.Unmarshal([]byte(summaryJSON), &summary); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot: %w", err)
	}

	return &summary, nil
}

// timestampFormats contains the timestamp formats that SQLite may return.
// The order matters: more specific formats should come first.
var timestampFormats = []string{
	"2006-01-02 15:04:05",     // SQLite default datetime format
	"2006-01-02T15:04:05Z",    // ISO 8601 with Z suffix
	"2006-01-02T15:04:05",     // ISO 8601 without timezone
	time.RFC3339,              // Full RFC3339 format
	time.RFC3339Nano,          // RFC3339 with nanoseconds
	"2006-01-02 15:04:05.999", // SQLite with milliseconds
}

// parseTimestamp attempts to parse a timestamp string using multiple formats.
// SQLite may return timestamps in different formats depending on configuration.
// If parsing fails with all formats, returns zero time.
func parseTimestamp(s string) time.Time {
	for _, format := range timestampFormats {
		if t, err := time.Parse(format, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
