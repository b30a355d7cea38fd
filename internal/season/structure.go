package season

import "github.com/ffreport/ffreport/internal/model"

// Resolve turns raw per-division settings into week boundaries and round
// counts. It is pure: no side effects, no I/O, called once per division per
// run.
//
// Given regular-season length R, last scoring period P (the last week with
// any playoff bracket, inclusive) and round length L:
//
//	playoff_start     = R + 1
//	playoff_rounds    = (P - R) / L
//	championship_week = P + 1
//
// A division whose playoff window is not evenly divisible by the round
// length is rejected: rounding would silently misalign bracket weeks across
// divisions, which is exactly the failure the synchronizer exists to catch.
func Resolve(settings model.DivisionSettings) (model.SeasonStructure, error) {
	if settings.RegularSeasonWeeks < 1 {
		return model.SeasonStructure{}, &StructureError{
			Division: settings.Division,
			Field:    "regular_season_weeks",
			Value:    settings.RegularSeasonWeeks,
			Reason:   "regular season must span at least one week",
		}
	}
	if settings.PlayoffRoundLength < 1 {
		return model.SeasonStructure{}, &StructureError{
			Division: settings.Division,
			Field:    "playoff_round_length",
			Value:    settings.PlayoffRoundLength,
			Reason:   "playoff rounds must span at least one week",
		}
	}
	if settings.PlayoffTeamCount < 2 {
		return model.SeasonStructure{}, &StructureError{
			Division: settings.Division,
			Field:    "playoff_team_count",
			Value:    settings.PlayoffTeamCount,
			Reason:   "a playoff bracket needs at least two teams",
		}
	}

	playoffStart := settings.RegularSeasonWeeks + 1
	playoffWeeks := settings.FinalScoringPeriod - playoffStart + 1
	if playoffWeeks < 1 {
		return model.SeasonStructure{}, &StructureError{
			Division: settings.Division,
			Field:    "final_scoring_period",
			Value:    settings.FinalScoringPeriod,
			Reason:   "last scoring period falls before the first playoff week",
		}
	}
	if playoffWeeks%settings.PlayoffRoundLength != 0 {
		return model.SeasonStructure{}, &StructureError{
			Division: settings.Division,
			Field:    "final_scoring_period",
			Value:    settings.FinalScoringPeriod,
			Reason:   "playoff window is not an even number of rounds",
		}
	}

	rounds := playoffWeeks / settings.PlayoffRoundLength
	if rounds < 1 {
		return model.SeasonStructure{}, &StructureError{
			Division: settings.Division,
			Field:    "playoff_round_length",
			Value:    settings.PlayoffRoundLength,
			Reason:   "playoff window yields no complete round",
		}
	}

	return model.SeasonStructure{
		RegularSeasonStart: 1,
		RegularSeasonEnd:   settings.RegularSeasonWeeks,
		PlayoffStart:       playoffStart,
		PlayoffEnd:         settings.FinalScoringPeriod,
		ChampionshipWeek:   settings.FinalScoringPeriod + 1,
		PlayoffRounds:      rounds,
		RoundLength:        settings.PlayoffRoundLength,
		PlayoffTeamCount:   settings.PlayoffTeamCount,
	}, nil
}
