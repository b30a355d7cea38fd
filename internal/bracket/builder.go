package bracket

import (
	"fmt"
	"sort"

	"github.com/ffreport/ffreport/internal/model"
	"github.com/ffreport/ffreport/internal/season"
)

// Build assembles one division's bracket for the given 1-based playoff
// round from that round's raw matchup records.
//
// Records not tagged as the winners bracket are discarded entirely and can
// never appear in the result. For each kept record, the sides' seeds, team
// and owner names are resolved from the division's team index, and a winner
// is set only when both scores are present and unequal; otherwise the game
// is undecided or not started and the winner stays unset.
//
// Zero surviving records for a division already confirmed to be in a
// playoff phase returns a *MissingPlayoffDataError. A matchup count that
// contradicts the round's position in the structure (first round 2, final
// round 1, interior rounds at least 1) is a construction-time failure.
func Build(
	division string,
	structure model.SeasonStructure,
	roundIndex int,
	records []model.MatchupRecord,
	teams map[int]model.TeamRecord,
) (*model.Bracket, error) {
	round := season.RoundName(roundIndex, structure.PlayoffRounds)
	week := structure.RoundWeek(roundIndex)

	matchups := make([]model.Matchup, 0, len(records))
	for _, record := range records {
		if !record.Playoff || record.Tier != model.TierWinners {
			continue
		}

		home, err := resolveSide(division, record.Home, teams)
		if err != nil {
			return nil, err
		}
		away, err := resolveSide(division, record.Away, teams)
		if err != nil {
			return nil, err
		}

		matchup := model.Matchup{
			Round:    round,
			Division: division,
			Home:     home,
			Away:     away,
		}
		if record.Decided() {
			if *record.Home.Score > *record.Away.Score {
				matchup.Winner = &model.SeedTeam{Seed: home.Seed, Team: home.Team}
			} else {
				matchup.Winner = &model.SeedTeam{Seed: away.Seed, Team: away.Team}
			}
		}
		matchups = append(matchups, matchup)
	}

	if len(matchups) == 0 {
		return nil, &MissingPlayoffDataError{Division: division, Week: week, Round: round}
	}

	// Order by best seed so bracket output is stable regardless of the
	// order the platform returned the records in.
	sort.SliceStable(matchups, func(i, j int) bool {
		return bestSeed(matchups[i]) < bestSeed(matchups[j])
	})

	b := &model.Bracket{
		Round:    round,
		Division: division,
		Week:     week,
		Matchups: matchups,
	}
	if err := b.Validate(roundIndex, structure.PlayoffRounds, structure.PlayoffTeamCount); err != nil {
		return nil, err
	}
	return b, nil
}

// resolveSide turns one raw record side into a resolved bracket side using
// the division's team index.
func resolveSide(division string, side model.RecordSide, teams map[int]model.TeamRecord) (model.Side, error) {
	team, ok := teams[side.TeamID]
	if !ok {
		return model.Side{}, &model.ValidationError{
			Entity:   "matchup",
			Field:    "team",
			Division: division,
			Reason:   fmt.Sprintf("matchup references unknown team id %d", side.TeamID),
		}
	}
	return model.Side{
		Seed:  team.Seed,
		Team:  team.Team,
		Owner: team.Owner,
		Score: side.Score,
	}, nil
}

// bestSeed returns the lower (better) seed of a matchup's two sides.
func bestSeed(m model.Matchup) int {
	if m.Home.Seed < m.Away.Seed {
		return m.Home.Seed
	}
	return m.Away.Seed
}
