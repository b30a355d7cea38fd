package model

import (
	"encoding/json"
	"fmt"
)

// PhaseKind identifies which part of the season a division occupies.
//
// Design decision: Phase is an explicit tagged variant derived on demand
// from SeasonStructure plus a week number, never a mutable flag stored on a
// long-lived object. Deriving it in one place removes an entire class of
// stale-phase bugs.
type PhaseKind int

const (
	// PhaseUnknown means the week does not fall inside any season segment.
	// It always indicates a hard upstream failure, never a valid state.
	PhaseUnknown PhaseKind = iota

	// PhaseRegular is the regular season.
	PhaseRegular

	// PhasePlayoff is one of the division playoff rounds.
	PhasePlayoff

	// PhaseChampionship is the cross-division championship week.
	PhaseChampionship
)

// phaseKindNames maps PhaseKind values to their string representations.
var phaseKindNames = map[PhaseKind]string{
	PhaseUnknown:      "unknown",
	PhaseRegular:      "regular",
	PhasePlayoff:      "playoff",
	PhaseChampionship: "championship",
}

// String returns the lowercase name of the phase kind.
func (k PhaseKind) String() string {
	if name, ok := phaseKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// MarshalJSON serializes the kind as its string name so snapshots stay
// readable and stable across releases.
func (k PhaseKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// UnmarshalJSON parses the string form written by MarshalJSON.
func (k *PhaseKind) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	for kind, n := range phaseKindNames {
		if n == name {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("unknown phase kind %q", name)
}

// Phase is the classified position of a division within its season.
// RoundIndex and RoundName are set only for PhasePlayoff.
type Phase struct {
	// Kind is the phase tag.
	Kind PhaseKind `json:"kind"`

	// RoundIndex is the 1-based playoff round index.
	RoundIndex int `json:"round_index,omitempty"`

	// RoundName is the human-readable round label
	// ("Semifinals", "Round 2", "Finals").
	RoundName string `json:"round_name,omitempty"`
}

// Describe returns a human-readable phase description for the given week,
// used in lockstep mismatch reports.
func (p Phase) Describe(week int) string {
	switch p.Kind {
	case PhaseRegular:
		return fmt.Sprintf("week %d (regular season)", week)
	case PhasePlayoff:
		return fmt.Sprintf("week %d (%s, playoff round %d)", week, p.RoundName, p.RoundIndex)
	case PhaseChampionship:
		return fmt.Sprintf("week %d (championship)", week)
	default:
		return fmt.Sprintf("week %d (outside the configured season)", week)
	}
}

// String returns a short label for the phase.
func (p Phase) String() string {
	if p.Kind == PhasePlayoff {
		return p.RoundName
	}
	return p.Kind.String()
}
