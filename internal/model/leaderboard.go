package model

import "fmt"

// LeaderboardEntry is one ranked division champion in the cross-division
// championship round.
type LeaderboardEntry struct {
	// Rank is the 1-based position on the leaderboard.
	Rank int `json:"rank"`

	// Team is the team display name.
	Team string `json:"team"`

	// Owner is the team owner's display name.
	Owner string `json:"owner,omitempty"`

	// Division is the division the team won.
	Division string `json:"division"`

	// Score is the team's championship-week score.
	Score float64 `json:"score"`

	// IsChampion is true iff Rank == 1.
	IsChampion bool `json:"is_champion"`
}

// Leaderboard is the ranked list of division champions competing in the
// cross-division championship round.
//
// Invariants (enforced by Validate): ranks form a contiguous 1..N sequence,
// IsChampion holds exactly for rank 1, and there is exactly one champion.
type Leaderboard struct {
	// Week is the championship week.
	Week int `json:"week"`

	// Entries is the ordered ranking, best first.
	Entries []LeaderboardEntry `json:"entries"`
}

// Champion returns the rank-1 entry.
// Call only on a validated leaderboard.
func (l *Leaderboard) Champion() LeaderboardEntry {
	return l.Entries[0]
}

// Validate checks the leaderboard invariants.
func (l *Leaderboard) Validate() error {
	if len(l.Entries) == 0 {
		return &ValidationError{
			Entity: "leaderboard",
			Field:  "entries",
			Week:   l.Week,
			Reason: "expected at least one championship entry, got 0",
		}
	}

	champions := 0
	for i, entry := range l.Entries {
		if entry.Rank != i+1 {
			return &ValidationError{
				Entity:   "leaderboard",
				Field:    "rank",
				Division: entry.Division,
				Week:     l.Week,
				Reason:   fmt.Sprintf("expected rank %d at position %d, got %d", i+1, i, entry.Rank),
			}
		}
		if entry.Score < 0 {
			return &ValidationError{
				Entity:   "leaderboard",
				Field:    "score",
				Division: entry.Division,
				Week:     l.Week,
				Reason:   fmt.Sprintf("negative score %.2f for team %q", entry.Score, entry.Team),
			}
		}
		if entry.IsChampion != (entry.Rank == 1) {
			return &ValidationError{
				Entity:   "leaderboard",
				Field:    "is_champion",
				Division: entry.Division,
				Week:     l.Week,
				Reason:   fmt.Sprintf("is_champion=%t at rank %d", entry.IsChampion, entry.Rank),
			}
		}
		if entry.IsChampion {
			champions++
		}
	}

	if champions != 1 {
		return &ValidationError{
			Entity: "leaderboard",
			Field:  "is_champion",
			Week:   l.Week,
			Reason: fmt.Sprintf("expected exactly one champion, got %d", champions),
		}
	}
	return nil
}
