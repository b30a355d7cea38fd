package model

import "fmt"

// ValidationError reports an entity invariant violated at construction time.
// It carries enough context (entity, field, division, week) for an operator
// to locate the offending source data without inspecting internals.
//
// Design decision: We use a typed error with fields rather than fmt.Errorf
// strings because callers (the aggregator, tests) need to distinguish
// invariant violations from other failures with errors.As, and because the
// division/week context is structured data, not prose.
type ValidationError struct {
	// Entity is the value object that failed validation
	// (e.g., "matchup", "bracket", "leaderboard", "season summary").
	Entity string

	// Field is the offending field within the entity.
	Field string

	// Division is the division the entity belongs to, if any.
	Division string

	// Week is the week the entity describes, if any. Zero means not applicable.
	Week int

	// Reason describes the violated invariant with expected vs. actual values.
	Reason string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	msg := fmt.Sprintf("invalid %s: %s: %s", e.Entity, e.Field, e.Reason)
	if e.Division != "" {
		msg += fmt.Sprintf(" (division %s", e.Division)
		if e.Week > 0 {
			msg += fmt.Sprintf(", week %d", e.Week)
		}
		msg += ")"
	} else if e.Week > 0 {
		msg += fmt.Sprintf(" (week %d)", e.Week)
	}
	return msg
}
