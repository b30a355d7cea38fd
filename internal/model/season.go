package model

// DivisionSettings holds the raw per-division season settings as fetched
// from the fantasy platform. These are the inputs to season.Resolve and are
// never used directly by report writers.
type DivisionSettings struct {
	// Division is the configured division name (e.g., "East").
	Division string `json:"division"`

	// LeagueID is the platform identifier of the division's league.
	LeagueID int `json:"league_id"`

	// LeagueName is the league name as reported by the platform.
	LeagueName string `json:"league_name,omitempty"`

	// RegularSeasonWeeks is the number of regular-season matchup periods.
	RegularSeasonWeeks int `json:"regular_season_weeks"`

	// FinalScoringPeriod is the last week with any playoff bracket, inclusive.
	FinalScoringPeriod int `json:"final_scoring_period"`

	// PlayoffRoundLength is the number of weeks each playoff round spans.
	PlayoffRoundLength int `json:"playoff_round_length"`

	// PlayoffTeamCount is the number of teams that qualify for the playoffs.
	PlayoffTeamCount int `json:"playoff_team_count"`

	// CurrentWeek is the division's current matchup period.
	CurrentWeek int `json:"current_week"`
}

// SeasonStructure describes the week boundaries and round counts of one
// division's season. It is derived once per division per run by
// season.Resolve and never mutated.
//
// Invariants (enforced by season.Resolve):
//   - PlayoffStart = RegularSeasonEnd + 1
//   - ChampionshipWeek = PlayoffEnd + 1
//   - all weeks >= 1, PlayoffRounds >= 1
type SeasonStructure struct {
	// RegularSeasonStart is the first regular-season week (always 1).
	RegularSeasonStart int `json:"regular_season_start"`

	// RegularSeasonEnd is the last regular-season week.
	RegularSeasonEnd int `json:"regular_season_end"`

	// PlayoffStart is the first playoff week.
	PlayoffStart int `json:"playoff_start"`

	// PlayoffEnd is the last playoff week.
	PlayoffEnd int `json:"playoff_end"`

	// ChampionshipWeek is the cross-division championship week.
	ChampionshipWeek int `json:"championship_week"`

	// PlayoffRounds is the number of playoff rounds.
	PlayoffRounds int `json:"playoff_rounds"`

	// RoundLength is the number of weeks each playoff round spans.
	RoundLength int `json:"round_length"`

	// PlayoffTeamCount is the number of teams in the playoff bracket.
	PlayoffTeamCount int `json:"playoff_team_count"`
}

// RoundWeek returns the first week of the 1-based playoff round index.
func (s SeasonStructure) RoundWeek(roundIndex int) int {
	return s.PlayoffStart + (roundIndex-1)*s.RoundLength
}

// TeamRecord identifies one team and its regular-season record.
// Records are fetched from the platform and embedded verbatim; ffreport
// never recomputes wins or points.
type TeamRecord struct {
	// TeamID is the platform team identifier, unique within a division.
	TeamID int `json:"team_id"`

	// Team is the team display name.
	Team string `json:"team"`

	// Owner is the display name of the team's owner.
	Owner string `json:"owner,omitempty"`

	// Seed is the playoff seed assigned by the platform. Zero when the
	// platform has not yet assigned seeds.
	Seed int `json:"seed,omitempty"`

	// Wins, Losses, and Ties are the regular-season record.
	Wins   int `json:"wins"`
	Losses int `json:"losses"`
	Ties   int `json:"ties"`

	// PointsFor and PointsAgainst are regular-season point totals.
	PointsFor     float64 `json:"points_for"`
	PointsAgainst float64 `json:"points_against"`
}

// Standing is one row of a division's final regular-season standings.
type Standing struct {
	// Rank is the 1-based position within the division.
	Rank int `json:"rank"`

	// TeamRecord is the ranked team.
	TeamRecord
}

// DivisionSeason bundles everything fetched for one division: settings,
// the resolved structure, the team index, and the full schedule grouped by
// week. It is the unit of work handed to the synchronizer, the bracket
// builder, and the challenge engine.
type DivisionSeason struct {
	// Division is the configured division name.
	Division string `json:"division"`

	// Settings are the raw platform settings.
	Settings DivisionSettings `json:"settings"`

	// Structure is the resolved season structure.
	Structure SeasonStructure `json:"structure"`

	// Teams indexes team records by platform team ID.
	Teams map[int]TeamRecord `json:"teams"`

	// Weeks groups the division's matchup records by week.
	Weeks map[int][]MatchupRecord `json:"weeks"`
}
