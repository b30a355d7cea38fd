// Package main provides the entry point for the ffreport CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for ffreport.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ffreport",
		Short: "Season reports for multi-division ESPN fantasy leagues",
		Long: `ffreport builds end-of-week reports for ESPN fantasy football leagues that
run several divisions as one meta-league. It fetches every division, checks
that they are in lockstep, and renders standings, playoff brackets, and the
cross-division championship leaderboard.

Credentials: set ESPN_S2 and SWID in the environment or a .env file.
League layout: run "ffreport init" to create a .ffreport league file.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	cmd.AddCommand(NewReportCmd())
	cmd.AddCommand(NewHistoryCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
