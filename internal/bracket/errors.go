package bracket

import "fmt"

// MissingPlayoffDataError reports a division that is confirmed to be in a
// playoff phase but has no winners-bracket records for the round. It is
// deliberately distinct from a lockstep failure: the divisions agree on
// where the season stands, the platform simply returned no bracket data.
//
// The decision to degrade or abort belongs to the caller; the aggregator
// converts this error into a warning only when partial mode is active.
type MissingPlayoffDataError struct {
	// Division is the division with no playoff data.
	Division string

	// Week is the first week of the affected round.
	Week int

	// Round is the classified round label.
	Round string
}

// Error implements the error interface.
func (e *MissingPlayoffDataError) Error() string {
	return fmt.Sprintf("no playoff data for division %s: %s (week %d) has no winners-bracket matchups",
		e.Division, e.Round, e.Week)
}
