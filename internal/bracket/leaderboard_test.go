package bracket

import "testing"

// TestBuildLeaderboard tests ranking of championship scores.
func TestBuildLeaderboard(t *testing.T) {
	t.Parallel()

	candidates := []Candidate{
		{Division: "West", Team: "Bravo", Owner: "Bob", Score: 158.40},
		{Division: "East", Team: "Alpha", Owner: "Ann", Score: 162.06},
		{Division: "North", Team: "Charlie", Owner: "Cam", Score: 147.25},
	}

	l, err := BuildLeaderboard(17, candidates)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if l.Week != 17 {
		t.Errorf("expected week 17, got %d", l.Week)
	}

	expected := []struct {
		team  string
		score float64
	}{
		{"Alpha", 162.06},
		{"Bravo", 158.40},
		{"Charlie", 147.25},
	}
	for i, want := range expected {
		entry := l.Entries[i]
		if entry.Rank != i+1 {
			t.Errorf("entry %d: rank = %d, expected %d", i, entry.Rank, i+1)
		}
		if entry.Team != want.team || entry.Score != want.score {
			t.Errorf("entry %d: got %s %.2f, expected %s %.2f",
				i, entry.Team, entry.Score, want.team, want.score)
		}
		if entry.IsChampion != (i == 0) {
			t.Errorf("entry %d: is_champion = %t", i, entry.IsChampion)
		}
	}
}

// TestBuildLeaderboardTieBreak tests that equal scores rank by division
// name ascending, independent of input order.
func TestBuildLeaderboardTieBreak(t *testing.T) {
	t.Parallel()

	orderings := [][]Candidate{
		{
			{Division: "West", Team: "Bravo", Score: 150},
			{Division: "East", Team: "Alpha", Score: 150},
		},
		{
			{Division: "East", Team: "Alpha", Score: 150},
			{Division: "West", Team: "Bravo", Score: 150},
		},
	}

	for _, candidates := range orderings {
		l, err := BuildLeaderboard(17, candidates)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if l.Entries[0].Division != "East" || l.Entries[1].Division != "West" {
			t.Errorf("tie-break not deterministic: got %s then %s",
				l.Entries[0].Division, l.Entries[1].Division)
		}
		if !l.Entries[0].IsChampion {
			t.Error("expected rank-1 entry marked champion")
		}
	}
}

// TestBuildLeaderboardEmpty tests rejection of an empty candidate set.
func TestBuildLeaderboardEmpty(t *testing.T) {
	t.Parallel()

	if _, err := BuildLeaderboard(17, nil); err == nil {
		t.Fatal("expected error, got nil")
	}
}

// TestBuildLeaderboardDoesNotMutateInput tests that ranking sorts a copy.
func TestBuildLeaderboardDoesNotMutateInput(t *testing.T) {
	t.Parallel()

	candidates := []Candidate{
		{Division: "West", Team: "Bravo", Score: 140},
		{Division: "East", Team: "Alpha", Score: 160},
	}

	if _, err := BuildLeaderboard(17, candidates); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if candidates[0].Division != "West" {
		t.Error("input slice was reordered")
	}
}
