package summary

import "strings"

// Section names used in completeness reporting.
const (
	SectionRegularSeason = "regular_season"
	SectionPlayoffs      = "playoffs"
	SectionChampionship  = "championship"
)

// CompletenessError reports that a full summary was requested while one or
// more season phases have not occurred yet. It is raised only when partial
// mode is off; partial mode builds whatever sections exist.
type CompletenessError struct {
	// Missing lists the unavailable sections in season order.
	Missing []string
}

// Error implements the error interface.
func (e *CompletenessError) Error() string {
	return "season summary incomplete: " + strings.Join(e.Missing, ", ") +
		" not yet decided (run with partial mode to report what exists)"
}
