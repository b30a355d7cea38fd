package model

import "fmt"

// BracketTier tags which bracket a raw playoff record belongs to.
// Only the winners bracket contributes to reports; consolation records are
// discarded entirely.
type BracketTier string

const (
	// TierNone marks a regular-season record with no bracket assignment.
	TierNone BracketTier = "NONE"

	// TierWinners marks a record in the true playoff bracket.
	TierWinners BracketTier = "WINNERS_BRACKET"

	// TierConsolation marks a consolation-ladder record.
	TierConsolation BracketTier = "LOSERS_CONSOLATION_LADDER"
)

// RecordSide is one side of a raw matchup record.
// Score is nil when the side has not yet posted a score for the period.
type RecordSide struct {
	// TeamID is the platform team identifier.
	TeamID int `json:"team_id"`

	// Score is the side's posted score, or nil when unset.
	Score *float64 `json:"score,omitempty"`
}

// MatchupRecord is one raw matchup as fetched from the platform, before any
// bracket filtering or seed resolution.
type MatchupRecord struct {
	// Week is the matchup period the record belongs to.
	Week int `json:"week"`

	// Playoff is true when the record is part of any playoff bracket.
	Playoff bool `json:"playoff"`

	// Tier is the bracket-type tag.
	Tier BracketTier `json:"tier"`

	// Home and Away are the two sides.
	Home RecordSide `json:"home"`
	Away RecordSide `json:"away"`
}

// Decided reports whether both scores are present and unequal.
func (r MatchupRecord) Decided() bool {
	return r.Home.Score != nil && r.Away.Score != nil && *r.Home.Score != *r.Away.Score
}

// Side is one resolved side of a bracket matchup.
type Side struct {
	// Seed is the side's playoff seed within the division.
	Seed int `json:"seed"`

	// Team is the team display name.
	Team string `json:"team"`

	// Owner is the team owner's display name.
	Owner string `json:"owner,omitempty"`

	// Score is the side's score for the round, or nil when the game has not
	// been played or scored yet.
	Score *float64 `json:"score,omitempty"`
}

// SeedTeam identifies a matchup winner by team name and seed.
type SeedTeam struct {
	// Seed is the winning team's playoff seed.
	Seed int `json:"seed"`

	// Team is the winning team's display name.
	Team string `json:"team"`
}

// Matchup is one resolved winners-bracket game.
//
// Invariants (enforced by Validate):
//   - a set winner equals one of the two sides
//   - scores, if present, are non-negative
//   - seeds fall within [1, playoffTeamCount]
type Matchup struct {
	// Round is the classified round label ("Semifinals", "Finals", ...).
	Round string `json:"round"`

	// Division is the division the matchup belongs to.
	Division string `json:"division"`

	// Home and Away are the two sides.
	Home Side `json:"home"`
	Away Side `json:"away"`

	// Winner is set only when both scores are present and unequal.
	// An unset winner means the game is undecided or not started.
	Winner *SeedTeam `json:"winner,omitempty"`
}

// Validate checks the matchup invariants against the division's playoff
// team count. It returns a *ValidationError describing the first violation.
func (m *Matchup) Validate(playoffTeamCount int) error {
	for _, side := range []struct {
		label string
		side  Side
	}{
		{"home", m.Home},
		{"away", m.Away},
	} {
		if side.side.Seed < 1 || side.side.Seed > playoffTeamCount {
			return &ValidationError{
				Entity:   "matchup",
				Field:    side.label + " seed",
				Division: m.Division,
				Reason: fmt.Sprintf("seed %d outside [1, %d] for team %q",
					side.side.Seed, playoffTeamCount, side.side.Team),
			}
		}
		if side.side.Score != nil && *side.side.Score < 0 {
			return &ValidationError{
				Entity:   "matchup",
				Field:    side.label + " score",
				Division: m.Division,
				Reason:   fmt.Sprintf("negative score %.2f for team %q", *side.side.Score, side.side.Team),
			}
		}
	}

	if m.Winner != nil {
		if m.Winner.Team != m.Home.Team && m.Winner.Team != m.Away.Team {
			return &ValidationError{
				Entity:   "matchup",
				Field:    "winner",
				Division: m.Division,
				Reason: fmt.Sprintf("winner %q is neither %q nor %q",
					m.Winner.Team, m.Home.Team, m.Away.Team),
			}
		}
	}

	return nil
}

// Bracket is the ordered set of winners-bracket matchups for one division
// in one playoff round.
//
// Invariants (enforced by Validate): the first round has exactly 2 matchups,
// the final round exactly 1, any intermediate round at least 1. A bracket is
// never empty.
type Bracket struct {
	// Round is the round label shared by all matchups.
	Round string `json:"round"`

	// Division is the division the bracket belongs to.
	Division string `json:"division"`

	// Week is the first week of the round.
	Week int `json:"week"`

	// Matchups is the ordered matchup list.
	Matchups []Matchup `json:"matchups"`
}

// Validate checks the bracket's matchup count against its position in the
// playoff structure and validates every contained matchup.
func (b *Bracket) Validate(roundIndex, roundCount, playoffTeamCount int) error {
	// The final-round rule wins for a single-round bracket: one game.
	want := -1 // -1 means "at least one"
	switch {
	case roundIndex == roundCount:
		want = 1
	case roundIndex == 1:
		want = 2
	}

	switch {
	case want >= 0 && len(b.Matchups) != want:
		return &ValidationError{
			Entity:   "bracket",
			Field:    "matchups",
			Division: b.Division,
			Week:     b.Week,
			Reason: fmt.Sprintf("%s expects exactly %d matchup(s), got %d",
				b.Round, want, len(b.Matchups)),
		}
	case len(b.Matchups) == 0:
		return &ValidationError{
			Entity:   "bracket",
			Field:    "matchups",
			Division: b.Division,
			Week:     b.Week,
			Reason:   fmt.Sprintf("%s expects at least 1 matchup, got 0", b.Round),
		}
	}

	for i := range b.Matchups {
		if err := b.Matchups[i].Validate(playoffTeamCount); err != nil {
			return err
		}
	}
	return nil
}
