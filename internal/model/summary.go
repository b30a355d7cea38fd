package model

import (
	"fmt"
	"time"
)

// RegularSeasonResult holds the finalized regular-season output for every
// division: the full standings and the division champions derived from them
// (highest win count, points-for tiebreak).
type RegularSeasonResult struct {
	// Champions maps division name to its regular-season champion.
	Champions map[string]TeamRecord `json:"champions"`

	// Standings maps division name to its ordered standings.
	Standings map[string][]Standing `json:"standings"`
}

// PlayoffRound is one playoff round across all divisions: a per-division
// bracket set for the same round index.
type PlayoffRound struct {
	// RoundIndex is the 1-based round index.
	RoundIndex int `json:"round_index"`

	// Round is the round label shared by every bracket.
	Round string `json:"round"`

	// Week is the first week of the round.
	Week int `json:"week"`

	// Brackets holds one bracket per division, ordered by division name.
	// A division may be absent only in partial mode, when its playoff data
	// was missing from the platform.
	Brackets []Bracket `json:"brackets"`
}

// SeasonSummary is the immutable top-level report structure: one snapshot of
// where the multi-division season stands, with every invariant already
// satisfied at construction. Report writers render it verbatim.
type SeasonSummary struct {
	// Season is the season year.
	Season int `json:"season"`

	// GeneratedAt is when this snapshot was produced.
	GeneratedAt time.Time `json:"generated_at"`

	// Week is the synchronized current week shared by every division.
	Week int `json:"week"`

	// Phase is the synchronized current phase shared by every division.
	Phase Phase `json:"phase"`

	// Partial is true when the summary was produced in partial mode and the
	// completeness gate was relaxed.
	Partial bool `json:"partial"`

	// Divisions is the ordered list of division names.
	Divisions []string `json:"divisions"`

	// Structures maps division name to its resolved season structure.
	Structures map[string]SeasonStructure `json:"structures"`

	// RegularSeason holds standings and champions for every division.
	RegularSeason *RegularSeasonResult `json:"regular_season,omitempty"`

	// Challenges holds the season-long statistical challenge winners,
	// exactly ChallengeCount of them when present.
	Challenges []ChallengeResult `json:"challenges,omitempty"`

	// PlayoffRounds holds every playoff round reached so far, in round order.
	PlayoffRounds []PlayoffRound `json:"playoff_rounds,omitempty"`

	// Championship is the cross-division championship leaderboard.
	// Absent only in partial mode, when the championship phase has not been
	// reached.
	Championship *Leaderboard `json:"championship,omitempty"`
}

// Validate checks every structural invariant of the summary and its
// contained entities. It runs once at construction; a summary that leaves
// the aggregator has always passed it.
func (s *SeasonSummary) Validate() error {
	if len(s.Divisions) == 0 {
		return &ValidationError{
			Entity: "season summary",
			Field:  "divisions",
			Reason: "expected at least one division, got 0",
		}
	}
	if s.Phase.Kind == PhaseUnknown {
		return &ValidationError{
			Entity: "season summary",
			Field:  "phase",
			Week:   s.Week,
			Reason: "week outside the configured season",
		}
	}

	for _, division := range s.Divisions {
		if _, ok := s.Structures[division]; !ok {
			return &ValidationError{
				Entity:   "season summary",
				Field:    "structures",
				Division: division,
				Reason:   "missing season structure",
			}
		}
	}

	if s.Challenges != nil && len(s.Challenges) != ChallengeCount {
		return &ValidationError{
			Entity: "season summary",
			Field:  "challenges",
			Reason: fmt.Sprintf("expected exactly %d challenge results, got %d", ChallengeCount, len(s.Challenges)),
		}
	}

	for i, round := range s.PlayoffRounds {
		if round.RoundIndex != i+1 {
			return &ValidationError{
				Entity: "season summary",
				Field:  "playoff_rounds",
				Week:   round.Week,
				Reason: fmt.Sprintf("expected round index %d at position %d, got %d", i+1, i, round.RoundIndex),
			}
		}
		if !s.Partial && len(round.Brackets) != len(s.Divisions) {
			return &ValidationError{
				Entity: "season summary",
				Field:  "playoff_rounds",
				Week:   round.Week,
				Reason: fmt.Sprintf("%s expects %d division brackets, got %d",
					round.Round, len(s.Divisions), len(round.Brackets)),
			}
		}
		for j := range round.Brackets {
			bracket := &round.Brackets[j]
			structure, ok := s.Structures[bracket.Division]
			if !ok {
				return &ValidationError{
					Entity:   "season summary",
					Field:    "playoff_rounds",
					Division: bracket.Division,
					Week:     round.Week,
					Reason:   "bracket for an unknown division",
				}
			}
			if err := bracket.Validate(round.RoundIndex, structure.PlayoffRounds, structure.PlayoffTeamCount); err != nil {
				return err
			}
		}
	}

	if s.Championship != nil {
		if err := s.Championship.Validate(); err != nil {
			return err
		}
	}

	return nil
}
