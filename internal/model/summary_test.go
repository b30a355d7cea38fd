package model

import (
	"testing"
	"time"
)

// testStructure returns the two-round structure used throughout the tests:
// 14 regular-season weeks, semifinals in week 15, finals in week 16,
// championship in week 17.
func testStructure() SeasonStructure {
	return SeasonStructure{
		RegularSeasonStart: 1,
		RegularSeasonEnd:   14,
		PlayoffStart:       15,
		PlayoffEnd:         16,
		ChampionshipWeek:   17,
		PlayoffRounds:      2,
		RoundLength:        1,
		PlayoffTeamCount:   4,
	}
}

// testBracket returns a valid bracket for the given round of a two-round
// playoff.
func testBracket(division string, roundIndex int) Bracket {
	if roundIndex == 1 {
		return Bracket{
			Round:    "Semifinals",
			Division: division,
			Week:     15,
			Matchups: []Matchup{
				{
					Round:    "Semifinals",
					Division: division,
					Home:     Side{Seed: 1, Team: division + " One", Score: score(120)},
					Away:     Side{Seed: 4, Team: division + " Four", Score: score(100)},
					Winner:   &SeedTeam{Seed: 1, Team: division + " One"},
				},
				{
					Round:    "Semifinals",
					Division: division,
					Home:     Side{Seed: 2, Team: division + " Two", Score: score(110)},
					Away:     Side{Seed: 3, Team: division + " Three", Score: score(90)},
					Winner:   &SeedTeam{Seed: 2, Team: division + " Two"},
				},
			},
		}
	}
	return Bracket{
		Round:    "Finals",
		Division: division,
		Week:     16,
		Matchups: []Matchup{
			{
				Round:    "Finals",
				Division: division,
				Home:     Side{Seed: 1, Team: division + " One", Score: score(130)},
				Away:     Side{Seed: 2, Team: division + " Two", Score: score(125)},
				Winner:   &SeedTeam{Seed: 1, Team: division + " One"},
			},
		},
	}
}

// validSummary returns a championship-week summary satisfying every
// structural invariant.
func validSummary() *SeasonSummary {
	divisions := []string{"East", "West"}

	champions := make(map[string]TeamRecord, len(divisions))
	standings := make(map[string][]Standing, len(divisions))
	for _, d := range divisions {
		champion := TeamRecord{TeamID: 1, Team: d + " One", Wins: 12, Losses: 2, PointsFor: 1600}
		champions[d] = champion
		standings[d] = []Standing{
			{Rank: 1, TeamRecord: champion},
			{Rank: 2, TeamRecord: TeamRecord{TeamID: 2, Team: d + " Two", Wins: 10, Losses: 4, PointsFor: 1500}},
		}
	}

	challenges := make([]ChallengeResult, ChallengeCount)
	for i := range challenges {
		challenges[i] = ChallengeResult{Name: "challenge", Division: "East", Team: "East One", Value: float64(i)}
	}

	return &SeasonSummary{
		Season:      2025,
		GeneratedAt: time.Now(),
		Week:        17,
		Phase:       Phase{Kind: PhaseChampionship},
		Divisions:   divisions,
		Structures: map[string]SeasonStructure{
			"East": testStructure(),
			"West": testStructure(),
		},
		RegularSeason: &RegularSeasonResult{Champions: champions, Standings: standings},
		Challenges:    challenges,
		PlayoffRounds: []PlayoffRound{
			{
				RoundIndex: 1,
				Round:      "Semifinals",
				Week:       15,
				Brackets:   []Bracket{testBracket("East", 1), testBracket("West", 1)},
			},
			{
				RoundIndex: 2,
				Round:      "Finals",
				Week:       16,
				Brackets:   []Bracket{testBracket("East", 2), testBracket("West", 2)},
			},
		},
		Championship: &Leaderboard{
			Week: 17,
			Entries: []LeaderboardEntry{
				{Rank: 1, Team: "East One", Division: "East", Score: 162.06, IsChampion: true},
				{Rank: 2, Team: "West One", Division: "West", Score: 158.40},
			},
		},
	}
}

// TestSeasonSummaryValidate tests top-level summary invariants.
func TestSeasonSummaryValidate(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		mutate  func(s *SeasonSummary)
		wantErr bool
	}{
		{
			name:   "valid summary passes",
			mutate: func(_ *SeasonSummary) {},
		},
		{
			name:    "no divisions fails",
			mutate:  func(s *SeasonSummary) { s.Divisions = nil },
			wantErr: true,
		},
		{
			name:    "unknown phase fails",
			mutate:  func(s *SeasonSummary) { s.Phase = Phase{Kind: PhaseUnknown} },
			wantErr: true,
		},
		{
			name:    "missing structure fails",
			mutate:  func(s *SeasonSummary) { delete(s.Structures, "West") },
			wantErr: true,
		},
		{
			name:    "wrong challenge count fails",
			mutate:  func(s *SeasonSummary) { s.Challenges = s.Challenges[:3] },
			wantErr: true,
		},
		{
			name:    "out-of-order playoff rounds fail",
			mutate:  func(s *SeasonSummary) { s.PlayoffRounds[1].RoundIndex = 3 },
			wantErr: true,
		},
		{
			name:    "missing division bracket fails when complete",
			mutate:  func(s *SeasonSummary) { s.PlayoffRounds[0].Brackets = s.PlayoffRounds[0].Brackets[:1] },
			wantErr: true,
		},
		{
			name: "missing division bracket allowed in partial mode",
			mutate: func(s *SeasonSummary) {
				s.Partial = true
				s.PlayoffRounds[0].Brackets = s.PlayoffRounds[0].Brackets[:1]
			},
		},
		{
			name: "invalid nested bracket fails",
			mutate: func(s *SeasonSummary) {
				s.PlayoffRounds[1].Brackets[0].Matchups[0].Home.Seed = 9
			},
			wantErr: true,
		},
		{
			name: "invalid leaderboard fails",
			mutate: func(s *SeasonSummary) {
				s.Championship.Entries[1].Rank = 5
			},
			wantErr: true,
		},
		{
			name: "summary without championship allowed when absent",
			mutate: func(s *SeasonSummary) {
				s.Championship = nil
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			s := validSummary()
			tc.mutate(s)

			err := s.Validate()
			if tc.wantErr && err == nil {
				t.Fatal("expected validation error, got nil")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}
