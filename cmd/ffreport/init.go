package main

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ffreport/ffreport/internal/config"
)

//go:embed templates/ffreport.yaml
var leagueTemplate embed.FS

// NewInitCmd creates the init command.
func NewInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new league file",
		Long: `Initialize creates a new .ffreport league file in the current directory.

The generated file includes:
- The season year
- A commented example division list to fill in with your ESPN league IDs
- Documentation for every available option

ESPN credentials are not stored in the league file. Set the ESPN_S2 and SWID
environment variables (or a .env file) before running 'ffreport report'.

Examples:
  # Create .ffreport in current directory
  ffreport init

  # Create a league file at a specific path
  ffreport init -o myleague.yaml

  # Force overwrite existing file
  ffreport init -f`,
		RunE: runInitCmd,
	}

	cmd.Flags().StringP("output", "o", config.DefaultConfigFile,
		"Output file path for the league file")
	cmd.Flags().BoolP("force", "f", false,
		"Overwrite existing league file")

	return cmd
}

// runInitCmd executes the init command.
func runInitCmd(cmd *cobra.Command, _ []string) error {
	outputPath, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}

	force, err := cmd.Flags().GetBool("force")
	if err != nil {
		return err
	}

	// Check if file already exists
	if !force {
		if _, err := os.Stat(outputPath); err == nil {
			return fmt.Errorf("league file already exists: %s (use -f to overwrite)", outputPath)
		}
	}

	// Read template from embedded filesystem
	content, err := leagueTemplate.ReadFile("templates/ffreport.yaml")
	if err != nil {
		return fmt.Errorf("failed to read league template: %w", err)
	}

	// Create parent directories if needed
	dir := filepath.Dir(outputPath)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	// Write league file
	if err := os.WriteFile(outputPath, content, 0600); err != nil {
		return fmt.Errorf("failed to write league file: %w", err)
	}

	fmt.Printf("Created league file: %s\n", outputPath)
	fmt.Println("\nNext steps:")
	fmt.Println("  1. Edit the file and add a division entry per ESPN league")
	fmt.Println("  2. Export ESPN_S2 and SWID (or put them in a .env file)")
	fmt.Println("  3. Run 'ffreport report' to build the season report")

	return nil
}
