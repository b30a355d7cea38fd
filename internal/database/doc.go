// Package database provides SQLite-based storage for season report
// snapshots.
//
// Every report run can persist its summary as one snapshot row. Snapshots
// make week-over-week history queryable after the platform has moved on to
// later weeks, which the live API cannot answer retroactively.
//
// The package uses modernc.org/sqlite, a pure-Go driver, so builds never
// need cgo.
package database
