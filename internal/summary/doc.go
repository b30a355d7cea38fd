// Package summary assembles the top-level season summary.
//
// The aggregator is the only component that touches every other part of the
// system. It fetches each division's raw data concurrently (joining fully
// before any cross-division work), resolves season structures, enforces the
// division lockstep precondition, applies the completeness gate, and then
// builds the regular-season results, challenge results, playoff brackets,
// and championship leaderboard into one immutable, fully validated
// model.SeasonSummary.
//
// Partial mode relaxes exactly one thing: the completeness gate, plus the
// decision to degrade (warn and skip) on missing playoff data instead of
// aborting. Every structural validation stays mandatory regardless of mode.
package summary
