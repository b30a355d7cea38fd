// Package challenge computes the season-long statistical challenges.
//
// The engine plays the role of the external challenge collaborator: the
// aggregator hands it the fetched division seasons and embeds its results
// verbatim, without recomputing or reinterpreting them. It produces exactly
// five results, one per challenge:
//
//   - highest_single_week_score
//   - season_points_leader
//   - largest_blowout
//   - closest_victory
//   - longest_win_streak
//
// All challenges are evaluated over decided regular-season matchups so that
// divisions with playoff byes are compared on equal footing. Ties between
// teams break by division name, then team name, ascending, which keeps the
// winners reproducible regardless of fetch order.
package challenge
