package challenge

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/ffreport/ffreport/internal/model"
)

// Challenge name identifiers, stable across releases because they appear in
// snapshots and JSON reports.
const (
	HighestSingleWeek = "highest_single_week_score"
	SeasonPoints      = "season_points_leader"
	LargestBlowout    = "largest_blowout"
	ClosestVictory    = "closest_victory"
	LongestWinStreak  = "longest_win_streak"
)

// ErrNoCompletedMatchups is returned when no division has a single decided
// regular-season matchup, leaving nothing to rank.
var ErrNoCompletedMatchups = errors.New("no completed regular-season matchups to evaluate challenges")

// Engine evaluates the statistical challenges over fetched division data.
type Engine struct {
	// logger is used for evaluation-level debug logging.
	logger *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// NewEngine creates a challenge Engine.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = slog.Default()
	}
	return e
}

// contender is one team's running value for a challenge.
type contender struct {
	division string
	team     string
	owner    string
	value    float64
	detail   string
}

// better reports whether a beats b under the given direction, applying the
// deterministic division/team tie-break.
func better(a, b contender, higherWins bool) bool {
	if a.value != b.value {
		if higherWins {
			return a.value > b.value
		}
		return a.value < b.value
	}
	if a.division != b.division {
		return a.division < b.division
	}
	return a.team < b.team
}

// Evaluate computes all five challenges across the given division seasons.
// The result order is fixed and the length is always model.ChallengeCount.
func (e *Engine) Evaluate(_ context.Context, seasons []model.DivisionSeason) ([]model.ChallengeResult, error) {
	games := collectGames(seasons)
	if len(games) == 0 {
		return nil, ErrNoCompletedMatchups
	}

	e.logger.Debug("evaluating challenges",
		"divisions", len(seasons),
		"completed_matchups", len(games),
	)

	results := []model.ChallengeResult{
		e.highestSingleWeek(games),
		e.seasonPoints(seasons),
		e.largestBlowout(games),
		e.closestVictory(games),
		e.longestWinStreak(seasons),
	}
	return results, nil
}

// game is one decided regular-season matchup with resolved team identities.
type game struct {
	division    string
	week        int
	winner      model.TeamRecord
	loser       model.TeamRecord
	winnerScore float64
	loserScore  float64
}

// collectGames flattens every decided regular-season matchup across all
// divisions, ordered by division then week for reproducibility.
func collectGames(seasons []model.DivisionSeason) []game {
	var games []game
	for _, s := range seasons {
		weeks := make([]int, 0, len(s.Weeks))
		for week := range s.Weeks {
			if week > s.Structure.RegularSeasonEnd {
				continue
			}
			weeks = append(weeks, week)
		}
		sort.Ints(weeks)

		for _, week := range weeks {
			for _, record := range s.Weeks[week] {
				if !record.Decided() {
					continue
				}
				home, homeOK := s.Teams[record.Home.TeamID]
				away, awayOK := s.Teams[record.Away.TeamID]
				if !homeOK || !awayOK {
					continue
				}

				g := game{division: s.Division, week: week}
				if *record.Home.Score > *record.Away.Score {
					g.winner, g.loser = home, away
					g.winnerScore, g.loserScore = *record.Home.Score, *record.Away.Score
				} else {
					g.winner, g.loser = away, home
					g.winnerScore, g.loserScore = *record.Away.Score, *record.Home.Score
				}
				games = append(games, g)
			}
		}
	}
	return games
}

// highestSingleWeek finds the best single-week score by any team, winning
// or losing.
func (e *Engine) highestSingleWeek(games []game) model.ChallengeResult {
	var best contender
	for _, g := range games {
		for _, side := range []struct {
			team  model.TeamRecord
			score float64
		}{
			{g.winner, g.winnerScore},
			{g.loser, g.loserScore},
		} {
			c := contender{
				division: g.division,
				team:     side.team.Team,
				owner:    side.team.Owner,
				value:    side.score,
				detail:   fmt.Sprintf("week %d", g.week),
			}
			if best.team == "" || better(c, best, true) {
				best = c
			}
		}
	}
	return result(HighestSingleWeek, best)
}

// seasonPoints finds the team with the most regular-season points for.
func (e *Engine) seasonPoints(seasons []model.DivisionSeason) model.ChallengeResult {
	var best contender
	for _, s := range seasons {
		for _, team := range s.Teams {
			c := contender{
				division: s.Division,
				team:     team.Team,
				owner:    team.Owner,
				value:    team.PointsFor,
			}
			if best.team == "" || better(c, best, true) {
				best = c
			}
		}
	}
	return result(SeasonPoints, best)
}

// largestBlowout finds the widest victory margin.
func (e *Engine) largestBlowout(games []game) model.ChallengeResult {
	var best contender
	for _, g := range games {
		c := contender{
			division: g.division,
			team:     g.winner.Team,
			owner:    g.winner.Owner,
			value:    g.winnerScore - g.loserScore,
			detail:   fmt.Sprintf("week %d over %s", g.week, g.loser.Team),
		}
		if best.team == "" || better(c, best, true) {
			best = c
		}
	}
	return result(LargestBlowout, best)
}

// closestVictory finds the narrowest positive victory margin.
func (e *Engine) closestVictory(games []game) model.ChallengeResult {
	var best contender
	for _, g := range games {
		c := contender{
			division: g.division,
			team:     g.winner.Team,
			owner:    g.winner.Owner,
			value:    g.winnerScore - g.loserScore,
			detail:   fmt.Sprintf("week %d over %s", g.week, g.loser.Team),
		}
		if best.team == "" || better(c, best, false) {
			best = c
		}
	}
	return result(ClosestVictory, best)
}

// longestWinStreak finds the longest run of consecutive decided wins in
// week order.
func (e *Engine) longestWinStreak(seasons []model.DivisionSeason) model.ChallengeResult {
	var best contender
	for _, s := range seasons {
		streaks := make(map[int]int, len(s.Teams))
		longest := make(map[int]int, len(s.Teams))

		weeks := make([]int, 0, len(s.Weeks))
		for week := range s.Weeks {
			if week > s.Structure.RegularSeasonEnd {
				continue
			}
			weeks = append(weeks, week)
		}
		sort.Ints(weeks)

		for _, week := range weeks {
			for _, record := range s.Weeks[week] {
				if !record.Decided() {
					continue
				}
				winnerID, loserID := record.Home.TeamID, record.Away.TeamID
				if *record.Away.Score > *record.Home.Score {
					winnerID, loserID = loserID, winnerID
				}
				streaks[winnerID]++
				if streaks[winnerID] > longest[winnerID] {
					longest[winnerID] = streaks[winnerID]
				}
				streaks[loserID] = 0
			}
		}

		for teamID, streak := range longest {
			team, ok := s.Teams[teamID]
			if !ok {
				continue
			}
			c := contender{
				division: s.Division,
				team:     team.Team,
				owner:    team.Owner,
				value:    float64(streak),
				detail:   fmt.Sprintf("%d straight wins", streak),
			}
			if best.team == "" || better(c, best, true) {
				best = c
			}
		}
	}
	return result(LongestWinStreak, best)
}

// result converts the winning contender to a ChallengeResult.
func result(name string, best contender) model.ChallengeResult {
	return model.ChallengeResult{
		Name:     name,
		Division: best.division,
		Team:     best.team,
		Owner:    best.owner,
		Value:    best.value,
		Detail:   best.detail,
	}
}
