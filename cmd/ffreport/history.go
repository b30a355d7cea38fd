package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ffreport/ffreport/internal/config"
	"github.com/ffreport/ffreport/internal/database"
)

// NewHistoryCmd creates the history command.
// This command lists and replays season snapshots stored in the database.
func NewHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history [season]",
		Short: "List saved season snapshots",
		Long: `History lists the season snapshots that 'ffreport report' saved to the
local database, newest first.

Each report run stores the full season summary, so a mid-season snapshot can
be replayed later exactly as it looked at the time. Use --show-id to render a
stored snapshot with any of the report formats.

Examples:
  # List all snapshots for the season in the league file
  ffreport history

  # List snapshots for a specific season
  ffreport history 2024

  # Replay snapshot 5 to the terminal
  ffreport history --show-id 5

  # Replay snapshot 5 as Markdown
  ffreport history --show-id 5 --markdown`,
		Args: cobra.MaximumNArgs(1),
		RunE: runHistoryCmd,
	}

	cmd.Flags().StringP("config", "c", "",
		"League file path (default: .ffreport in current or home directory)")
	cmd.Flags().Int64P("show-id", "i", 0,
		"Render the snapshot with the given ID (use the list to see available IDs)")

	// Output format flags for --show-id
	cmd.Flags().BoolP("json", "j", false,
		"Render the snapshot in JSON format")
	cmd.Flags().BoolP("markdown", "m", false,
		"Render the snapshot in Markdown format")
	cmd.Flags().Bool("csv", false,
		"Render the snapshot in CSV format")
	cmd.Flags().Bool("html", false,
		"Render the snapshot in HTML format")
	cmd.Flags().StringP("output", "o", "",
		"Write the rendered snapshot to specified file path")

	return cmd
}

// runHistoryCmd executes the history command.
func runHistoryCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildHistoryConfig(cmd, args)
	if err != nil {
		return err
	}

	db, err := database.Open(cfg.DBDir, database.Options{CreateIfNotExists: false})
	if err != nil {
		return fmt.Errorf("failed to open snapshot database (run 'ffreport report' first): %w", err)
	}
	defer db.Close()

	ctx := context.Background()

	showID, err := cmd.Flags().GetInt64("show-id")
	if err != nil {
		return err
	}
	if showID > 0 {
		return showSnapshot(ctx, db, cfg, showID)
	}

	return listSnapshots(ctx, db, cfg.Season)
}

// buildHistoryConfig creates a Config from the history command flags.
// The season comes from the positional argument when given, otherwise from
// the league file. Listing without either fails; --show-id needs neither.
func buildHistoryConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.NewConfig()

	var err error

	if len(args) == 1 {
		if _, err := fmt.Sscanf(args[0], "%d", &cfg.Season); err != nil {
			return nil, fmt.Errorf("invalid season %q: %w", args[0], err)
		}
	}

	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	if cfg.Season == 0 {
		if configPath := config.FindConfigFile(cfg.ConfigFilePath); configPath != "" {
			league, err := config.LoadConfigFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("failed to load league file %s: %w", configPath, err)
			}
			cfg.League = league
			cfg.Season = league.Season
		}
	}

	cfg.JSONReport, err = cmd.Flags().GetBool("json")
	if err != nil {
		return nil, err
	}
	cfg.MarkdownReport, err = cmd.Flags().GetBool("markdown")
	if err != nil {
		return nil, err
	}
	cfg.CSVReport, err = cmd.Flags().GetBool("csv")
	if err != nil {
		return nil, err
	}
	cfg.HTMLReport, err = cmd.Flags().GetBool("html")
	if err != nil {
		return nil, err
	}
	cfg.ReportFile, err = cmd.Flags().GetString("output")
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// listSnapshots prints the stored snapshots for a season, newest first.
func listSnapshots(ctx context.Context, db *database.SnapshotDB, season int) error {
	if season == 0 {
		return fmt.Errorf("season is required (pass it as an argument or configure a league file)")
	}

	snapshots, err := db.History(ctx, season)
	if err != nil {
		return fmt.Errorf("failed to list snapshots: %w", err)
	}

	if len(snapshots) == 0 {
		fmt.Printf("No snapshots found for season %d.\n", season)
		fmt.Println("\nUse 'ffreport report' to build and save a season report.")
		return nil
	}

	fmt.Printf("Snapshots for season %d (%d):\n\n", season, len(snapshots))
	fmt.Printf("  %-6s  %-20s  %-6s  %-14s  %-8s  %s\n",
		"ID", "Saved", "Week", "Phase", "Status", "Divisions")
	fmt.Println("  " + strings.Repeat("-", 76))

	for _, meta := range snapshots {
		status := "complete"
		if meta.Partial {
			status = "partial"
		}
		fmt.Printf("  %-6d  %-20s  %-6d  %-14s  %-8s  %s\n",
			meta.ID,
			meta.Timestamp.Format("2006-01-02 15:04:05"),
			meta.Week,
			meta.Phase,
			status,
			strings.Join(meta.Divisions, ", "),
		)
	}

	fmt.Println("\nUse 'ffreport history --show-id <id>' to replay a snapshot.")

	return nil
}

// showSnapshot renders a stored snapshot with the configured report writer.
func showSnapshot(ctx context.Context, db *database.SnapshotDB, cfg *config.Config, id int64) error {
	seasonSummary, err := db.SnapshotByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to load snapshot %d: %w", id, err)
	}
	if seasonSummary == nil {
		return fmt.Errorf("snapshot with ID %d not found", id)
	}

	output, closeOutput, err := openOutput(cfg)
	if err != nil {
		return err
	}

	if _, err := newWriter(cfg, output).Write(seasonSummary); err != nil {
		_ = closeOutput()
		return fmt.Errorf("failed to render snapshot: %w", err)
	}
	return closeOutput()
}
