package database

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ffreport/ffreport/internal/model"
)

// testSummary builds a small summary for storage tests.
func testSummary(week int) *model.SeasonSummary {
	return &model.SeasonSummary{
		Season:      2025,
		GeneratedAt: time.Date(2025, 12, 1, 9, 0, 0, 0, time.UTC),
		Week:        week,
		Phase:       model.Phase{Kind: model.PhaseRegular},
		Divisions:   []string{"East", "West"},
		Structures: map[string]model.SeasonStructure{
			"East": {RegularSeasonStart: 1, RegularSeasonEnd: 14},
			"West": {RegularSeasonStart: 1, RegularSeasonEnd: 14},
		},
	}
}

func openTestDB(t *testing.T) *SnapshotDB {
	t.Helper()

	sdb, err := Open(t.TempDir(), DefaultOptions())
	if err != nil {
		t.Fatalf("Open() error = %v, want nil", err)
	}
	t.Cleanup(func() {
		if err := sdb.Close(); err != nil {
			t.Errorf("Close() error = %v, want nil", err)
		}
	})
	return sdb
}

func TestOpenCreatesDatabase(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	sdb, err := Open(dir, DefaultOptions())
	if err != nil {
		t.Fatalf("Open() error = %v, want nil", err)
	}
	defer sdb.Close()

	if _, err := os.Stat(filepath.Join(dir, "ffreport.db")); err != nil {
		t.Errorf("database file not created: %v", err)
	}
}

func TestOpenRequiresExistingDatabase(t *testing.T) {
	t.Parallel()

	opts := Options{CreateIfNotExists: false, EnableWAL: true}
	if _, err := Open(t.TempDir(), opts); err == nil {
		t.Error("Open() error = nil, want missing-database failure")
	}
}

func TestSaveAndLatestSnapshot(t *testing.T) {
	t.Parallel()

	sdb := openTestDB(t)
	ctx := context.Background()

	if err := sdb.SaveSnapshot(ctx, testSummary(9)); err != nil {
		t.Fatalf("SaveSnapshot() error = %v, want nil", err)
	}
	if err := sdb.SaveSnapshot(ctx, testSummary(10)); err != nil {
		t.Fatalf("SaveSnapshot() error = %v, want nil", err)
	}

	got, err := sdb.LatestSnapshot(ctx, 2025)
	if err != nil {
		t.Fatalf("LatestSnapshot() error = %v, want nil", err)
	}
	if got == nil {
		t.Fatal("LatestSnapshot() = nil, want the week 10 snapshot")
	}
	if got.Week != 10 {
		t.Errorf("Week = %d, want 10", got.Week)
	}
	if len(got.Divisions) != 2 || got.Divisions[0] != "East" {
		t.Errorf("Divisions = %v, want [East West]", got.Divisions)
	}
}

func TestLatestSnapshotUnknownSeason(t *testing.T) {
	t.Parallel()

	sdb := openTestDB(t)

	got, err := sdb.LatestSnapshot(context.Background(), 1999)
	if err != nil {
		t.Fatalf("LatestSnapshot() error = %v, want nil", err)
	}
	if got != nil {
		t.Errorf("LatestSnapshot() = %+v, want nil for unknown season", got)
	}
}

func TestHistory(t *testing.T) {
	t.Parallel()

	sdb := openTestDB(t)
	ctx := context.Background()

	for week := 8; week <= 10; week++ {
		if err := sdb.SaveSnapshot(ctx, testSummary(week)); err != nil {
			t.Fatalf("SaveSnapshot() error = %v, want nil", err)
		}
	}

	history, err := sdb.History(ctx, 2025)
	if err != nil {
		t.Fatalf("History() error = %v, want nil", err)
	}
	if len(history) != 3 {
		t.Fatalf("len(History()) = %d, want 3", len(history))
	}

	// Newest first.
	if history[0].Week != 10 || history[2].Week != 8 {
		t.Errorf("history weeks = [%d %d %d], want [10 9 8]",
			history[0].Week, history[1].Week, history[2].Week)
	}
	meta := history[0]
	if meta.Season != 2025 || meta.Phase != "regular" || meta.Partial {
		t.Errorf("metadata = %+v, want 2025 regular non-partial", meta)
	}
	if len(meta.Divisions) != 2 {
		t.Errorf("Divisions = %v, want 2 names", meta.Divisions)
	}
	if meta.Timestamp.IsZero() {
		t.Error("Timestamp is zero, want save time")
	}
}

func TestSnapshotByID(t *testing.T) {
	t.Parallel()

	sdb := openTestDB(t)
	ctx := context.Background()

	if err := sdb.SaveSnapshot(ctx, testSummary(12)); err != nil {
		t.Fatalf("SaveSnapshot() error = %v, want nil", err)
	}
	history, err := sdb.History(ctx, 2025)
	if err != nil {
		t.Fatalf("History() error = %v, want nil", err)
	}

	got, err := sdb.SnapshotByID(ctx, history[0].ID)
	if err != nil {
		t.Fatalf("SnapshotByID() error = %v, want nil", err)
	}
	if got == nil || got.Week != 12 {
		t.Fatalf("SnapshotByID() = %+v, want the week 12 snapshot", got)
	}

	missing, err := sdb.SnapshotByID(ctx, 9999)
	if err != nil {
		t.Fatalf("SnapshotByID() error = %v, want nil", err)
	}
	if missing != nil {
		t.Errorf("SnapshotByID(9999) = %+v, want nil", missing)
	}
}
