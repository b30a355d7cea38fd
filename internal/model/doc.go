// Package model defines the core data structures shared across ffreport.
//
// The package contains only value objects: season structure, division phase,
// playoff matchups and brackets, the championship leaderboard, and the final
// season summary. Every entity is created once per report run, validated at
// construction, and never mutated afterward. Downstream consumers (report
// writers, the snapshot store) render these values without re-deriving or
// re-validating phase and round information.
package model
