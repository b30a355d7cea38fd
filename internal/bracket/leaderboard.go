package bracket

import (
	"sort"

	"github.com/ffreport/ffreport/internal/model"
)

// Candidate is one division champion's entry into the cross-division
// championship round: the division's Finals winner and their
// championship-week score.
type Candidate struct {
	// Division is the division the candidate won.
	Division string

	// Team is the team display name.
	Team string

	// Owner is the team owner's display name.
	Owner string

	// Score is the candidate's championship-week score.
	Score float64
}

// BuildLeaderboard ranks the division champions by championship-week score,
// descending, assigning contiguous ranks 1..N with the rank-1 entry marked
// champion.
//
// Design decision: equal scores are ordered by division name ascending.
// Division names are unique per entry, so the ranking is deterministic and
// independent of the order the candidates were fetched in.
func BuildLeaderboard(week int, candidates []Candidate) (*model.Leaderboard, error) {
	ranked := make([]Candidate, len(candidates))
	copy(ranked, candidates)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].Division < ranked[j].Division
	})

	entries := make([]model.LeaderboardEntry, len(ranked))
	for i, c := range ranked {
		entries[i] = model.LeaderboardEntry{
			Rank:       i + 1,
			Team:       c.Team,
			Owner:      c.Owner,
			Division:   c.Division,
			Score:      c.Score,
			IsChampion: i == 0,
		}
	}

	l := &model.Leaderboard{Week: week, Entries: entries}
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return l, nil
}
