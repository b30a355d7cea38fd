package season

import (
	"fmt"

	"github.com/ffreport/ffreport/internal/model"
)

// Classify maps a resolved season structure and the current week to an
// explicit phase tag. The playoff round index is 1-based:
// week == playoff_start classifies as round 1.
//
// An out-of-range week classifies as PhaseUnknown, which is always a hard
// upstream failure; callers never treat it as a valid state.
func Classify(structure model.SeasonStructure, week int) model.Phase {
	switch {
	case week >= structure.RegularSeasonStart && week <= structure.RegularSeasonEnd:
		return model.Phase{Kind: model.PhaseRegular}
	case week > structure.RegularSeasonEnd && week <= structure.PlayoffEnd:
		index := (week - structure.PlayoffStart) / structure.RoundLength
		return model.Phase{
			Kind:       model.PhasePlayoff,
			RoundIndex: index + 1,
			RoundName:  RoundName(index+1, structure.PlayoffRounds),
		}
	case week == structure.ChampionshipWeek:
		return model.Phase{Kind: model.PhaseChampionship}
	default:
		return model.Phase{Kind: model.PhaseUnknown}
	}
}

// RoundName returns the label for the 1-based playoff round index:
// the last round is always "Finals", round 1 is "Semifinals", and any
// interior round is "Round {index}". In a single-round playoff the
// last-round rule wins and the only round is "Finals".
func RoundName(index, count int) string {
	switch {
	case index == count:
		return "Finals"
	case index == 1:
		return "Semifinals"
	default:
		return fmt.Sprintf("Round %d", index)
	}
}
