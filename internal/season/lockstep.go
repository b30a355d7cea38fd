package season

import (
	"errors"

	"github.com/ffreport/ffreport/internal/model"
)

// ErrNoDivisions is returned by Synchronize when called with no divisions.
// It indicates a configuration or programming error upstream, not a
// lockstep violation.
var ErrNoDivisions = errors.New("no divisions to synchronize")

// DivisionState is one division's input to the lockstep check.
type DivisionState struct {
	// Division is the configured division name.
	Division string

	// Structure is the division's resolved season structure.
	Structure model.SeasonStructure

	// Week is the division's current week.
	Week int
}

// Synchronize verifies that every configured division stands at the same
// point of the season. It must run before any bracket or leaderboard work.
//
// The rule: all divisions share the identical current week and phase kind,
// and divisions in a playoff phase additionally share the round index. A
// regular-season division mixed with a playoff division is always a
// violation, as is any division classifying to an unknown phase.
//
// On violation Synchronize returns a *SyncError naming every division with
// its phase/week description, not just the first mismatch; independently
// operated divisions drift, and the operator needs the full picture to fix
// the stragglers.
func Synchronize(states []DivisionState) error {
	if len(states) == 0 {
		return ErrNoDivisions
	}

	type position struct {
		week       int
		kind       model.PhaseKind
		roundIndex int
	}

	phases := make([]model.Phase, len(states))
	agreed := true
	var consensus position
	for i, state := range states {
		phases[i] = Classify(state.Structure, state.Week)

		pos := position{
			week:       state.Week,
			kind:       phases[i].Kind,
			roundIndex: phases[i].RoundIndex,
		}
		if phases[i].Kind == model.PhaseUnknown {
			agreed = false
			continue
		}
		if i == 0 {
			consensus = pos
			continue
		}
		if pos != consensus {
			agreed = false
		}
	}

	if agreed && len(states) > 0 && phases[0].Kind != model.PhaseUnknown {
		return nil
	}

	// Dump every division's position so the report names all offenders.
	details := make(map[string]string, len(states))
	for i, state := range states {
		details[state.Division] = phases[i].Describe(state.Week)
	}
	return &SyncError{Divisions: details}
}
