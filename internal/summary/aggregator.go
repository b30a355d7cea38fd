package summary

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"time"

	"github.com/ffreport/ffreport/internal/bracket"
	"github.com/ffreport/ffreport/internal/model"
	"github.com/ffreport/ffreport/internal/season"
)

// DefaultConcurrency is the default number of divisions fetched at once.
// Division counts are small; the limit mostly guards against hammering the
// platform when someone configures a very large meta-league.
const DefaultConcurrency = 4

// Source supplies one division's raw data from the fantasy platform.
// internal/espn provides the production implementation; tests use fakes.
type Source interface {
	// Settings fetches the league's season settings.
	Settings(ctx context.Context, leagueID int) (model.DivisionSettings, error)

	// Teams fetches the league's team records with seeds and owners.
	Teams(ctx context.Context, leagueID int) ([]model.TeamRecord, error)

	// Schedule fetches the league's full season schedule.
	Schedule(ctx context.Context, leagueID int) ([]model.MatchupRecord, error)
}

// ChallengeSource supplies the season-long statistical challenge results.
// The aggregator embeds them verbatim.
type ChallengeSource interface {
	// Evaluate computes the challenge results over the fetched seasons.
	Evaluate(ctx context.Context, seasons []model.DivisionSeason) ([]model.ChallengeResult, error)
}

// Division is one configured division of the meta-league.
type Division struct {
	// Name is the configured division name used throughout reports.
	Name string

	// LeagueID is the platform league identifier.
	LeagueID int
}

// Aggregator builds season summaries.
type Aggregator struct {
	// source supplies per-division platform data.
	source Source

	// challenges supplies the statistical challenge results.
	challenges ChallengeSource

	// logger is used for progress and degradation logging.
	logger *slog.Logger

	// concurrency bounds parallel division fetches.
	concurrency int

	// partial relaxes the completeness gate and degrades on missing
	// playoff data instead of aborting.
	partial bool

	// weekOverride, when positive, replaces every division's reported
	// current week. Used to render a report as of an earlier week.
	weekOverride int
}

// Option configures an Aggregator.
type Option func(*Aggregator)

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Aggregator) {
		a.logger = logger
	}
}

// WithPartialMode relaxes the completeness gate: sections whose phase has
// not occurred are omitted instead of failing the run, and missing playoff
// data degrades to a warning. Structural validation is unaffected.
func WithPartialMode(partial bool) Option {
	return func(a *Aggregator) {
		a.partial = partial
	}
}

// WithConcurrency bounds the number of divisions fetched concurrently.
func WithConcurrency(n int) Option {
	return func(a *Aggregator) {
		if n > 0 {
			a.concurrency = n
		}
	}
}

// WithWeekOverride renders the report as of the given week instead of each
// division's reported current week.
func WithWeekOverride(week int) Option {
	return func(a *Aggregator) {
		a.weekOverride = week
	}
}

// New creates an Aggregator over the given data sources.
func New(source Source, challenges ChallengeSource, opts ...Option) *Aggregator {
	a := &Aggregator{
		source:      source,
		challenges:  challenges,
		concurrency: DefaultConcurrency,
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.logger == nil {
		a.logger = slog.Default()
	}
	return a
}

// Build produces one immutable season summary for the given season and
// division set.
//
// Orchestration order: fetch everything (full join) -> resolve structures ->
// synchronize divisions -> completeness gate -> regular-season results ->
// challenge results -> playoff brackets -> championship leaderboard ->
// assemble and validate. Every error propagates untouched except
// *bracket.MissingPlayoffDataError, which partial mode converts into a
// warning.
func (a *Aggregator) Build(ctx context.Context, seasonYear int, divisions []Division) (*model.SeasonSummary, error) {
	seasons, err := a.fetchAll(ctx, divisions)
	if err != nil {
		return nil, err
	}

	states := make([]season.DivisionState, len(seasons))
	for i, s := range seasons {
		week := s.Settings.CurrentWeek
		if a.weekOverride > 0 {
			week = a.weekOverride
		}
		states[i] = season.DivisionState{
			Division:  s.Division,
			Structure: s.Structure,
			Week:      week,
		}
	}

	if err := season.Synchronize(states); err != nil {
		return nil, err
	}

	week := states[0].Week
	phase := season.Classify(states[0].Structure, week)
	a.logger.Info("season position established",
		"week", week,
		"phase", phase.String(),
	)

	missing := missingSections(phase)
	if len(missing) > 0 && !a.partial {
		return nil, &CompletenessError{Missing: missing}
	}

	regular := buildRegularSeason(seasons)

	challenges, err := a.challenges.Evaluate(ctx, seasons)
	if err != nil {
		return nil, err
	}

	rounds, err := a.buildPlayoffRounds(seasons, phase)
	if err != nil {
		return nil, err
	}

	var championship *model.Leaderboard
	if phase.Kind == model.PhaseChampionship {
		championship, err = a.buildChampionship(seasons, rounds, week)
		if err != nil {
			return nil, err
		}
	}

	names := make([]string, len(seasons))
	structures := make(map[string]model.SeasonStructure, len(seasons))
	for i, s := range seasons {
		names[i] = s.Division
		structures[s.Division] = s.Structure
	}

	result := &model.SeasonSummary{
		Season:        seasonYear,
		GeneratedAt:   time.Now(),
		Week:          week,
		Phase:         phase,
		Partial:       a.partial,
		Divisions:     names,
		Structures:    structures,
		RegularSeason: regular,
		Challenges:    challenges,
		PlayoffRounds: rounds,
		Championship:  championship,
	}
	if err := result.Validate(); err != nil {
		return nil, err
	}
	return result, nil
}

// missingSections returns which summary sections have not occurred yet for
// the given phase, in season order.
func missingSections(phase model.Phase) []string {
	switch phase.Kind {
	case model.PhaseRegular:
		return []string{SectionRegularSeason, SectionPlayoffs, SectionChampionship}
	case model.PhasePlayoff:
		return []string{SectionPlayoffs, SectionChampionship}
	default:
		return nil
	}
}

// buildRegularSeason ranks each division's teams by win count with a
// points-for tiebreak and derives the division champions.
func buildRegularSeason(seasons []model.DivisionSeason) *model.RegularSeasonResult {
	champions := make(map[string]model.TeamRecord, len(seasons))
	standings := make(map[string][]model.Standing, len(seasons))

	for _, s := range seasons {
		teams := make([]model.TeamRecord, 0, len(s.Teams))
		for _, team := range s.Teams {
			teams = append(teams, team)
		}
		sort.SliceStable(teams, func(i, j int) bool {
			if teams[i].Wins != teams[j].Wins {
				return teams[i].Wins > teams[j].Wins
			}
			if teams[i].PointsFor != teams[j].PointsFor {
				return teams[i].PointsFor > teams[j].PointsFor
			}
			return teams[i].Team < teams[j].Team
		})

		ranked := make([]model.Standing, len(teams))
		for i, team := range teams {
			ranked[i] = model.Standing{Rank: i + 1, TeamRecord: team}
		}
		standings[s.Division] = ranked
		if len(ranked) > 0 {
			champions[s.Division] = ranked[0].TeamRecord
		}
	}

	return &model.RegularSeasonResult{Champions: champions, Standings: standings}
}

// buildPlayoffRounds builds every playoff round reached so far for every
// division. In partial mode a division with missing playoff data is logged
// and skipped; otherwise the error aborts the run.
func (a *Aggregator) buildPlayoffRounds(seasons []model.DivisionSeason, phase model.Phase) ([]model.PlayoffRound, error) {
	reached := 0
	switch phase.Kind {
	case model.PhasePlayoff:
		reached = phase.RoundIndex
	case model.PhaseChampionship:
		reached = seasons[0].Structure.PlayoffRounds
	}
	if reached == 0 {
		return nil, nil
	}

	rounds := make([]model.PlayoffRound, 0, reached)
	for index := 1; index <= reached; index++ {
		round := model.PlayoffRound{
			RoundIndex: index,
			Round:      season.RoundName(index, seasons[0].Structure.PlayoffRounds),
			Week:       seasons[0].Structure.RoundWeek(index),
		}

		for _, s := range seasons {
			records := s.Weeks[s.Structure.RoundWeek(index)]
			b, err := bracket.Build(s.Division, s.Structure, index, records, s.Teams)
			if err != nil {
				var missing *bracket.MissingPlayoffDataError
				if errors.As(err, &missing) && a.partial {
					a.logger.Warn("missing playoff data, skipping division bracket",
						"division", missing.Division,
						"round", missing.Round,
						"week", missing.Week,
					)
					continue
				}
				return nil, err
			}
			round.Brackets = append(round.Brackets, *b)
		}

		sort.SliceStable(round.Brackets, func(i, j int) bool {
			return round.Brackets[i].Division < round.Brackets[j].Division
		})
		rounds = append(rounds, round)
	}
	return rounds, nil
}

// buildChampionship assembles the cross-division leaderboard from each
// division's Finals winner and their championship-week score.
func (a *Aggregator) buildChampionship(
	seasons []model.DivisionSeason,
	rounds []model.PlayoffRound,
	week int,
) (*model.Leaderboard, error) {
	if len(rounds) == 0 {
		return nil, nil
	}
	final := rounds[len(rounds)-1]

	finalists := make(map[string]model.SeedTeam, len(final.Brackets))
	for _, b := range final.Brackets {
		winner := b.Matchups[0].Winner
		if winner == nil {
			if a.partial {
				a.logger.Warn("finals undecided, skipping division on leaderboard",
					"division", b.Division,
				)
				continue
			}
			return nil, &model.ValidationError{
				Entity:   "leaderboard",
				Field:    "finalist",
				Division: b.Division,
				Week:     b.Week,
				Reason:   "championship week reached but the division finals are undecided",
			}
		}
		finalists[b.Division] = *winner
	}

	candidates := make([]bracket.Candidate, 0, len(finalists))
	for _, s := range seasons {
		finalist, ok := finalists[s.Division]
		if !ok {
			continue
		}

		score, owner, found := championshipScore(s, finalist.Team)
		if !found {
			if a.partial {
				a.logger.Warn("no championship score, skipping division on leaderboard",
					"division", s.Division,
					"team", finalist.Team,
				)
				continue
			}
			return nil, &model.ValidationError{
				Entity:   "leaderboard",
				Field:    "score",
				Division: s.Division,
				Week:     week,
				Reason:   "no championship-week score posted for team " + finalist.Team,
			}
		}

		candidates = append(candidates, bracket.Candidate{
			Division: s.Division,
			Team:     finalist.Team,
			Owner:    owner,
			Score:    score,
		})
	}

	if len(candidates) == 0 {
		if a.partial {
			return nil, nil
		}
		return nil, &model.ValidationError{
			Entity: "leaderboard",
			Field:  "entries",
			Week:   week,
			Reason: "no division produced a championship candidate",
		}
	}
	return bracket.BuildLeaderboard(week, candidates)
}

// championshipScore finds the finalist's posted score in the division's
// championship-week records.
func championshipScore(s model.DivisionSeason, team string) (float64, string, bool) {
	teamID := -1
	owner := ""
	for id, record := range s.Teams {
		if record.Team == team {
			teamID = id
			owner = record.Owner
			break
		}
	}
	if teamID < 0 {
		return 0, "", false
	}

	for _, record := range s.Weeks[s.Structure.ChampionshipWeek] {
		for _, side := range []model.RecordSide{record.Home, record.Away} {
			if side.TeamID == teamID && side.Score != nil {
				return *side.Score, owner, true
			}
		}
	}
	return 0, "", false
}
