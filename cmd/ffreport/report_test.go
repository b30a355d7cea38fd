package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ffreport/ffreport/internal/config"
	"github.com/ffreport/ffreport/internal/report"
)

// writeLeagueFile creates a minimal valid league file for tests.
func writeLeagueFile(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), ".ffreport")
	content := []byte(`season: 2025
divisions:
  - name: East
    leagueId: 111111
  - name: West
    leagueId: 222222
`)
	if err := os.WriteFile(path, content, 0600); err != nil {
		t.Fatalf("failed to write league file: %v", err)
	}
	return path
}

// TestNewReportCmd tests the report command creation.
func TestNewReportCmd(t *testing.T) {
	t.Parallel()

	cmd := NewReportCmd()

	t.Run("has correct use", func(t *testing.T) {
		t.Parallel()
		if cmd.Use != "report" {
			t.Errorf("expected use 'report', got %q", cmd.Use)
		}
	})

	t.Run("has short description", func(t *testing.T) {
		t.Parallel()
		if cmd.Short == "" {
			t.Error("expected non-empty short description")
		}
	})

	t.Run("has long description", func(t *testing.T) {
		t.Parallel()
		if cmd.Long == "" {
			t.Error("expected non-empty long description")
		}
	})

	t.Run("has config flag", func(t *testing.T) {
		t.Parallel()
		flag := cmd.Flags().Lookup("config")
		if flag == nil {
			t.Fatal("expected config flag")
		}
		if flag.Shorthand != "c" {
			t.Errorf("expected shorthand 'c', got %q", flag.Shorthand)
		}
	})

	t.Run("has season flag", func(t *testing.T) {
		t.Parallel()
		flag := cmd.Flags().Lookup("season")
		if flag == nil {
			t.Fatal("expected season flag")
		}
		if flag.Shorthand != "s" {
			t.Errorf("expected shorthand 's', got %q", flag.Shorthand)
		}
	})

	t.Run("has week flag", func(t *testing.T) {
		t.Parallel()
		flag := cmd.Flags().Lookup("week")
		if flag == nil {
			t.Fatal("expected week flag")
		}
		if flag.Shorthand != "w" {
			t.Errorf("expected shorthand 'w', got %q", flag.Shorthand)
		}
	})

	t.Run("has division flag", func(t *testing.T) {
		t.Parallel()
		flag := cmd.Flags().Lookup("division")
		if flag == nil {
			t.Fatal("expected division flag")
		}
		if flag.Shorthand != "d" {
			t.Errorf("expected shorthand 'd', got %q", flag.Shorthand)
		}
	})

	t.Run("has partial flag", func(t *testing.T) {
		t.Parallel()
		flag := cmd.Flags().Lookup("partial")
		if flag == nil {
			t.Fatal("expected partial flag")
		}
		if flag.DefValue != "false" {
			t.Errorf("expected default 'false', got %q", flag.DefValue)
		}
	})

	t.Run("has timeout flag", func(t *testing.T) {
		t.Parallel()
		flag := cmd.Flags().Lookup("timeout")
		if flag == nil {
			t.Fatal("expected timeout flag")
		}
		if flag.Shorthand != "t" {
			t.Errorf("expected shorthand 't', got %q", flag.Shorthand)
		}
	})

	t.Run("has format flags", func(t *testing.T) {
		t.Parallel()
		for _, name := range []string{"json", "markdown", "csv", "html"} {
			if cmd.Flags().Lookup(name) == nil {
				t.Errorf("expected %s flag", name)
			}
		}
	})

	t.Run("has output flag", func(t *testing.T) {
		t.Parallel()
		flag := cmd.Flags().Lookup("output")
		if flag == nil {
			t.Fatal("expected output flag")
		}
		if flag.Shorthand != "o" {
			t.Errorf("expected shorthand 'o', got %q", flag.Shorthand)
		}
	})

	t.Run("has no-save flag", func(t *testing.T) {
		t.Parallel()
		flag := cmd.Flags().Lookup("no-save")
		if flag == nil {
			t.Fatal("expected no-save flag")
		}
		if flag.DefValue != "false" {
			t.Errorf("expected default 'false', got %q", flag.DefValue)
		}
	})
}

// TestGetVerboseFlag tests the verbose flag retrieval.
func TestGetVerboseFlag(t *testing.T) {
	t.Run("returns false when flag not set", func(t *testing.T) {
		cmd := NewReportCmd()
		result := getVerboseFlag(cmd)
		if result {
			t.Error("expected false when flag not set")
		}
	})

	t.Run("returns value from parent verbose flag", func(t *testing.T) {
		root := NewRootCmd()
		// Set verbose flag to true
		_ = root.PersistentFlags().Set("verbose", "true")

		// Get report subcommand
		reportCmd, _, err := root.Find([]string{"report"})
		if err != nil {
			t.Fatalf("failed to find report command: %v", err)
		}

		result := getVerboseFlag(reportCmd)
		if !result {
			t.Error("expected true from parent verbose flag")
		}
	})
}

// TestBuildConfig tests configuration building from flags.
func TestBuildConfig(t *testing.T) {
	t.Run("builds config with league file defaults", func(t *testing.T) {
		leaguePath := writeLeagueFile(t)

		cmd := NewReportCmd()
		_ = cmd.Flags().Set("config", leaguePath)
		cfg, err := buildConfig(cmd)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if cfg == nil {
			t.Fatal("expected non-nil config")
		}
		if cfg.Season != 2025 {
			t.Errorf("expected season 2025 from league file, got %d", cfg.Season)
		}
		if len(cfg.League.Divisions) != 2 {
			t.Errorf("expected 2 divisions, got %d", len(cfg.League.Divisions))
		}
		if cfg.Timeout != config.DefaultTimeout {
			t.Errorf("expected default timeout, got %v", cfg.Timeout)
		}
		if cfg.Concurrency != config.DefaultConcurrency {
			t.Errorf("expected default concurrency, got %d", cfg.Concurrency)
		}
		if !cfg.SaveToDB {
			t.Error("expected SaveToDB to default to true")
		}
	})

	t.Run("season flag overrides league file", func(t *testing.T) {
		leaguePath := writeLeagueFile(t)

		cmd := NewReportCmd()
		_ = cmd.Flags().Set("config", leaguePath)
		_ = cmd.Flags().Set("season", "2024")
		cfg, err := buildConfig(cmd)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if cfg.Season != 2024 {
			t.Errorf("expected season 2024, got %d", cfg.Season)
		}
	})

	t.Run("builds config with week and partial", func(t *testing.T) {
		leaguePath := writeLeagueFile(t)

		cmd := NewReportCmd()
		_ = cmd.Flags().Set("config", leaguePath)
		_ = cmd.Flags().Set("week", "10")
		_ = cmd.Flags().Set("partial", "true")
		cfg, err := buildConfig(cmd)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if cfg.Week != 10 {
			t.Errorf("expected week 10, got %d", cfg.Week)
		}
		if !cfg.Partial {
			t.Error("expected Partial to be true")
		}
	})

	t.Run("builds config with format and output flags", func(t *testing.T) {
		leaguePath := writeLeagueFile(t)

		cmd := NewReportCmd()
		_ = cmd.Flags().Set("config", leaguePath)
		_ = cmd.Flags().Set("markdown", "true")
		_ = cmd.Flags().Set("output", "/tmp/report.md")
		cfg, err := buildConfig(cmd)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !cfg.MarkdownReport {
			t.Error("expected MarkdownReport to be true")
		}
		if cfg.ReportFile != "/tmp/report.md" {
			t.Errorf("expected ReportFile '/tmp/report.md', got %q", cfg.ReportFile)
		}
	})

	t.Run("no-save flag disables snapshots", func(t *testing.T) {
		leaguePath := writeLeagueFile(t)

		cmd := NewReportCmd()
		_ = cmd.Flags().Set("config", leaguePath)
		_ = cmd.Flags().Set("no-save", "true")
		cfg, err := buildConfig(cmd)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if cfg.SaveToDB {
			t.Error("expected SaveToDB to be false")
		}
	})

	t.Run("builds config with custom timeout", func(t *testing.T) {
		leaguePath := writeLeagueFile(t)

		cmd := NewReportCmd()
		_ = cmd.Flags().Set("config", leaguePath)
		_ = cmd.Flags().Set("timeout", "30s")
		cfg, err := buildConfig(cmd)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if cfg.Timeout != 30*time.Second {
			t.Errorf("expected timeout 30s, got %v", cfg.Timeout)
		}
	})

	t.Run("returns error for missing explicit league file", func(t *testing.T) {
		cmd := NewReportCmd()
		_ = cmd.Flags().Set("config", filepath.Join(t.TempDir(), "nope.yaml"))
		_, err := buildConfig(cmd)
		if err == nil {
			t.Fatal("expected error for missing league file")
		}
		if !strings.Contains(err.Error(), "league file not found") {
			t.Errorf("expected 'league file not found' error, got %v", err)
		}
	})

	t.Run("returns error for invalid league file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".ffreport")
		if err := os.WriteFile(path, []byte("{invalid yaml"), 0600); err != nil {
			t.Fatalf("failed to write league file: %v", err)
		}

		cmd := NewReportCmd()
		_ = cmd.Flags().Set("config", path)
		_, err := buildConfig(cmd)
		if err == nil {
			t.Fatal("expected error for invalid league file")
		}
	})
}

// TestSelectDivisions tests the fuzzy division filter.
func TestSelectDivisions(t *testing.T) {
	t.Parallel()

	newConfig := func(filter string) *config.Config {
		return &config.Config{
			League: &config.File{
				Season: 2025,
				Divisions: []config.DivisionConfig{
					{Name: "East", LeagueID: 111111},
					{Name: "West", LeagueID: 222222},
					{Name: "North", LeagueID: 333333},
				},
			},
			DivisionFilter: filter,
		}
	}

	t.Run("empty filter keeps all divisions", func(t *testing.T) {
		t.Parallel()
		divisions, err := selectDivisions(newConfig(""))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(divisions) != 3 {
			t.Errorf("expected 3 divisions, got %d", len(divisions))
		}
		if divisions[0].Name != "East" || divisions[0].LeagueID != 111111 {
			t.Errorf("unexpected first division: %+v", divisions[0])
		}
	})

	t.Run("filter matches case-insensitively", func(t *testing.T) {
		t.Parallel()
		divisions, err := selectDivisions(newConfig("east"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(divisions) != 1 {
			t.Fatalf("expected 1 division, got %d", len(divisions))
		}
		if divisions[0].Name != "East" {
			t.Errorf("expected East, got %q", divisions[0].Name)
		}
	})

	t.Run("filter matches fuzzily", func(t *testing.T) {
		t.Parallel()
		divisions, err := selectDivisions(newConfig("nth"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(divisions) != 1 {
			t.Fatalf("expected 1 division, got %d", len(divisions))
		}
		if divisions[0].Name != "North" {
			t.Errorf("expected North, got %q", divisions[0].Name)
		}
	})

	t.Run("unmatched filter lists configured divisions", func(t *testing.T) {
		t.Parallel()
		_, err := selectDivisions(newConfig("atlantic"))
		if err == nil {
			t.Fatal("expected error for unmatched filter")
		}
		if !strings.Contains(err.Error(), "East, West, North") {
			t.Errorf("expected configured divisions in error, got %v", err)
		}
	})
}

// TestNewWriter tests report writer selection.
func TestNewWriter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  *config.Config
		want string
	}{
		{name: "default is console", cfg: &config.Config{}, want: "*report.ConsoleWriter"},
		{name: "json", cfg: &config.Config{JSONReport: true}, want: "*report.JSONWriter"},
		{name: "markdown", cfg: &config.Config{MarkdownReport: true}, want: "*report.MarkdownWriter"},
		{name: "csv", cfg: &config.Config{CSVReport: true}, want: "*report.CSVWriter"},
		{name: "html", cfg: &config.Config{HTMLReport: true}, want: "*report.HTMLWriter"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			writer := newWriter(tt.cfg, os.Stdout)
			var got string
			switch writer.(type) {
			case *report.ConsoleWriter:
				got = "*report.ConsoleWriter"
			case *report.JSONWriter:
				got = "*report.JSONWriter"
			case *report.MarkdownWriter:
				got = "*report.MarkdownWriter"
			case *report.CSVWriter:
				got = "*report.CSVWriter"
			case *report.HTMLWriter:
				got = "*report.HTMLWriter"
			default:
				got = "unknown"
			}
			if got != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

// TestOpenOutput tests report destination selection.
func TestOpenOutput(t *testing.T) {
	t.Parallel()

	t.Run("defaults to stdout", func(t *testing.T) {
		t.Parallel()

		output, closeOutput, err := openOutput(&config.Config{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output != os.Stdout {
			t.Error("expected stdout")
		}
		if err := closeOutput(); err != nil {
			t.Errorf("unexpected close error: %v", err)
		}
	})

	t.Run("creates output file and directories", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "reports", "season.md")
		output, closeOutput, err := openOutput(&config.Config{ReportFile: path})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := output.Write([]byte("report")); err != nil {
			t.Fatalf("failed to write: %v", err)
		}
		if err := closeOutput(); err != nil {
			t.Fatalf("failed to close: %v", err)
		}

		content, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("failed to read output file: %v", err)
		}
		if string(content) != "report" {
			t.Errorf("expected 'report', got %q", string(content))
		}
	})
}
