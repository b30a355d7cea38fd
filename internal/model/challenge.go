package model

// ChallengeCount is the number of season-long statistical challenges the
// challenge engine produces. A summary with any other count fails validation.
const ChallengeCount = 5

// ChallengeResult is one season-long statistical challenge winner, computed
// by the challenge engine and embedded verbatim in the season summary.
type ChallengeResult struct {
	// Name is the challenge identifier (e.g., "highest_single_week_score").
	Name string `json:"name"`

	// Division is the winning team's division.
	Division string `json:"division"`

	// Team is the winning team's display name.
	Team string `json:"team"`

	// Owner is the winning team owner's display name.
	Owner string `json:"owner,omitempty"`

	// Value is the winning statistic.
	Value float64 `json:"value"`

	// Detail is an optional human-readable qualifier
	// (e.g., "week 7 vs The Sacks Machine").
	Detail string `json:"detail,omitempty"`
}
