// Package season derives where a multi-division season currently stands.
//
// It provides three pure components, run in order before any bracket or
// leaderboard work:
//
//   - Resolve turns raw per-division settings into week boundaries and
//     round counts (model.SeasonStructure).
//   - Classify maps a structure plus the current week to an explicit phase
//     tag (regular season, a labeled playoff round, championship, unknown).
//   - Synchronize checks that every configured division classifies to the
//     identical week and, in the playoffs, the identical round. A mismatch
//     is a hard failure carrying every offending division, never a warning.
//
// None of the components perform I/O or hold state; they are plain
// transformations over already-fetched data.
package season
