// Package main provides the entry point for the ffreport CLI.
//
// ffreport builds end-of-week reports for multi-division ESPN fantasy
// football leagues: regular-season standings, playoff brackets, and the
// cross-division championship leaderboard.
//
// Usage:
//
//	ffreport report
//	ffreport report --week 15 --partial
//
// See --help for all available options.
package main

// main is the entry point for ffreport.
func main() {
	Execute()
}
