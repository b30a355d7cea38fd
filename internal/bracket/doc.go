// Package bracket builds playoff brackets and the cross-division
// championship leaderboard from raw matchup data.
//
// Build consumes one round's raw matchup records for one division, keeps
// only the true winners bracket (consolation games are discarded entirely),
// resolves seeds and winners, and validates the matchup count against the
// round's position in the playoff structure. BuildLeaderboard ranks the
// division champions' championship-week scores.
//
// Both builders validate at construction: a bracket or leaderboard that
// leaves this package always satisfies its invariants, and report writers
// never re-check them.
package bracket
