package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/spf13/cobra"

	"github.com/ffreport/ffreport/internal/challenge"
	"github.com/ffreport/ffreport/internal/config"
	"github.com/ffreport/ffreport/internal/database"
	"github.com/ffreport/ffreport/internal/espn"
	"github.com/ffreport/ffreport/internal/log"
	"github.com/ffreport/ffreport/internal/model"
	"github.com/ffreport/ffreport/internal/report"
	"github.com/ffreport/ffreport/internal/summary"
)

// NewReportCmd creates the report command.
func NewReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Build the season report for every configured division",
		Long: `Report fetches every division of the meta-league from ESPN, verifies the
divisions are in lockstep, and renders the season report.

The report covers whatever the season has produced so far:
- Regular-season standings and division champions
- Season challenge winners
- Playoff brackets for every round reached
- The cross-division championship leaderboard

By default the report fails unless the season is complete. Use --partial to
report a season still in progress.

Examples:
  # Full report to the terminal
  ffreport report

  # Mid-season report as of week 10
  ffreport report --week 10 --partial

  # Markdown report for the league chat
  ffreport report --markdown -o report.md

  # Only divisions matching "east"
  ffreport report -d east --partial

League file (.ffreport) example:
  season: 2025
  divisions:
    - name: East
      leagueId: 111111
    - name: West
      leagueId: 222222`,
		Args: cobra.NoArgs,
		RunE: runReportCmd,
	}

	// League selection flags
	cmd.Flags().StringP("config", "c", "",
		"League file path (default: .ffreport in current or home directory)")
	cmd.Flags().IntP("season", "s", 0,
		"Season year (default: season from the league file)")
	cmd.Flags().IntP("week", "w", 0,
		"Report as of the given week instead of the current week")
	cmd.Flags().StringP("division", "d", "",
		"Only include divisions whose names match (fuzzy)")

	// Behavior flags
	cmd.Flags().Bool("partial", false,
		"Report a season still in progress instead of failing")
	cmd.Flags().Int("concurrency", config.DefaultConcurrency,
		"Number of divisions fetched concurrently")
	cmd.Flags().DurationP("timeout", "t", config.DefaultTimeout,
		"Timeout for each ESPN API request")
	cmd.Flags().Bool("no-save", false,
		"Do not save the summary to the snapshot database")

	// Report flags
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON report (mutually exclusive with other format flags)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown report (mutually exclusive with other format flags)")
	cmd.Flags().Bool("csv", false,
		"Output CSV report (mutually exclusive with other format flags)")
	cmd.Flags().Bool("html", false,
		"Output HTML report (mutually exclusive with other format flags)")
	cmd.Flags().StringP("output", "o", "",
		"Write report to specified file path (creates directories if needed)")

	return cmd
}

// runReportCmd executes the report command.
func runReportCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	// Set up structured logging with credential masking
	verbose := getVerboseFlag(cmd)
	logger := log.NewSecureLogger(os.Stderr, verbose)
	slog.SetDefault(logger)

	// Set up context with signal handling for graceful shutdown
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("received shutdown signal, cancelling...")
		cancel()
	}()

	return runReport(ctx, cfg, logger)
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// buildConfig creates a Config from cobra command flags and the league file.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()

	var err error

	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	// If the user explicitly specified a league file path, error if not
	// found. Otherwise search the standard locations.
	explicitConfigPath := cfg.ConfigFilePath != ""
	configPath := config.FindConfigFile(cfg.ConfigFilePath)
	if configPath == "" {
		if explicitConfigPath {
			return nil, fmt.Errorf("league file not found: %s", cfg.ConfigFilePath)
		}
		return nil, fmt.Errorf("no league file found (run %q to create one)", "ffreport init")
	}
	cfg.League, err = config.LoadConfigFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load league file %s: %w", configPath, err)
	}

	cfg.Season, err = cmd.Flags().GetInt("season")
	if err != nil {
		return nil, err
	}
	if cfg.Season == 0 {
		cfg.Season = cfg.League.Season
	}

	cfg.Week, err = cmd.Flags().GetInt("week")
	if err != nil {
		return nil, err
	}

	cfg.Partial, err = cmd.Flags().GetBool("partial")
	if err != nil {
		return nil, err
	}

	cfg.DivisionFilter, err = cmd.Flags().GetString("division")
	if err != nil {
		return nil, err
	}

	cfg.Concurrency, err = cmd.Flags().GetInt("concurrency")
	if err != nil {
		return nil, err
	}

	cfg.Timeout, err = cmd.Flags().GetDuration("timeout")
	if err != nil {
		return nil, err
	}

	noSave, err := cmd.Flags().GetBool("no-save")
	if err != nil {
		return nil, err
	}
	cfg.SaveToDB = !noSave

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

// selectDivisions applies the fuzzy division filter to the league file.
func selectDivisions(cfg *config.Config) ([]summary.Division, error) {
	divisions := make([]summary.Division, 0, len(cfg.League.Divisions))
	for _, division := range cfg.League.Divisions {
		if cfg.DivisionFilter != "" && !fuzzy.MatchFold(cfg.DivisionFilter, division.Name) {
			continue
		}
		divisions = append(divisions, summary.Division{
			Name:     division.Name,
			LeagueID: division.LeagueID,
		})
	}

	if len(divisions) == 0 {
		names := make([]string, 0, len(cfg.League.Divisions))
		for _, division := range cfg.League.Divisions {
			names = append(names, division.Name)
		}
		return nil, fmt.Errorf("no division matches %q (configured: %s)",
			cfg.DivisionFilter, strings.Join(names, ", "))
	}
	return divisions, nil
}

// runReport fetches, aggregates, renders, and optionally snapshots the
// season report.
func runReport(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	divisions, err := selectDivisions(cfg)
	if err != nil {
		return err
	}

	creds, err := config.LoadCredentials()
	if err != nil {
		return err
	}

	logger.Info("building season report",
		"season", cfg.Season,
		"divisions", len(divisions),
		"partial", cfg.Partial,
	)

	client := espn.NewClient(cfg.Season,
		espn.Auth{ESPNS2: creds.ESPNS2, SWID: creds.SWID},
		espn.WithHTTPClient(&http.Client{Timeout: cfg.Timeout}),
		espn.WithLogger(logger),
	)

	aggOpts := []summary.Option{
		summary.WithLogger(logger),
		summary.WithPartialMode(cfg.Partial),
		summary.WithConcurrency(cfg.Concurrency),
	}
	if cfg.Week > 0 {
		aggOpts = append(aggOpts, summary.WithWeekOverride(cfg.Week))
	}
	agg := summary.New(client, challenge.NewEngine(challenge.WithLogger(logger)), aggOpts...)

	startTime := time.Now()
	seasonSummary, err := agg.Build(ctx, cfg.Season, divisions)
	if err != nil {
		return err
	}
	logger.Info("season report built", "elapsed", time.Since(startTime).Round(time.Millisecond))

	if err := outputReport(cfg, seasonSummary); err != nil {
		return err
	}

	if cfg.SaveToDB {
		if err := saveSnapshot(ctx, cfg, seasonSummary, logger); err != nil {
			// A failed snapshot should not discard an already-rendered report.
			logger.Error("failed to save snapshot", "error", err)
		}
	}

	return nil
}

// outputReport renders the summary in the requested format.
func outputReport(cfg *config.Config, seasonSummary *model.SeasonSummary) error {
	output, closeOutput, err := openOutput(cfg)
	if err != nil {
		return err
	}

	if _, err := newWriter(cfg, output).Write(seasonSummary); err != nil {
		_ = closeOutput()
		return fmt.Errorf("failed to write report: %w", err)
	}
	if err := closeOutput(); err != nil {
		return fmt.Errorf("failed to close output file: %w", err)
	}

	if cfg.ReportFile != "" {
		fmt.Fprintf(os.Stderr, "Report saved to: %s\n", cfg.ReportFile)
	}
	return nil
}

// saveSnapshot persists the summary to the snapshot database.
func saveSnapshot(ctx context.Context, cfg *config.Config, seasonSummary *model.SeasonSummary, logger *slog.Logger) error {
	db, err := database.Open(cfg.DBDir, database.DefaultOptions())
	if err != nil {
		return fmt.Errorf("failed to open snapshot database: %w", err)
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			logger.Warn("failed to close snapshot database", "error", closeErr)
		}
	}()

	if err := db.SaveSnapshot(ctx, seasonSummary); err != nil {
		return err
	}
	logger.Debug("snapshot saved",
		"season", seasonSummary.Season,
		"week", seasonSummary.Week,
	)
	return nil
}

// openOutput returns the report destination, creating directories and the
// output file when a path is configured.
func openOutput(cfg *config.Config) (io.Writer, func() error, error) {
	if cfg.ReportFile == "" {
		return os.Stdout, func() error { return nil }, nil
	}

	dir := filepath.Dir(cfg.ReportFile)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	f, err := os.OpenFile(cfg.ReportFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return f, f.Close, nil
}

// newWriter picks the report writer for the configured format.
func newWriter(cfg *config.Config, output io.Writer) report.Writer {
	switch {
	case cfg.JSONReport:
		return report.NewJSONWriter(output, getVersion(), report.WithPrettyPrint())
	case cfg.MarkdownReport:
		return report.NewMarkdownWriter(output)
	case cfg.CSVReport:
		return report.NewCSVWriter(output)
	case cfg.HTMLReport:
		return report.NewHTMLWriter(output)
	default:
		return report.NewConsoleWriter(output, report.WithShowEmpty(cfg.Partial))
	}
}
