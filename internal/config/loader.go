package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the default league file name.
const DefaultConfigFile = ".ffreport"

// DivisionConfig is one division entry in the league file.
type DivisionConfig struct {
	// Name is the division display name used throughout reports.
	Name string `yaml:"name"`

	// LeagueID is the ESPN league identifier for the division.
	LeagueID int `yaml:"leagueId"`
}

// File represents the structure of the .ffreport league file.
type File struct {
	// Season is the default season year to report on.
	// The --season flag overrides it.
	Season int `yaml:"season,omitempty"`

	// Divisions lists every division of the meta-league.
	// Order here is the display order in reports.
	Divisions []DivisionConfig `yaml:"divisions"`
}

// LoadConfigFile loads a league definition from a YAML file.
// If the file does not exist, it returns ErrConfigNotFound.
// Callers should handle this error appropriately based on whether
// the file path was explicitly specified by the user.
func LoadConfigFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(f.Divisions))
	for _, division := range f.Divisions {
		if division.Name == "" {
			return nil, fmt.Errorf("league file %s: division with league ID %d has no name", path, division.LeagueID)
		}
		if division.LeagueID <= 0 {
			return nil, fmt.Errorf("league file %s: division %q has no league ID", path, division.Name)
		}
		if seen[division.Name] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateDivision, division.Name)
		}
		seen[division.Name] = true
	}

	return &f, nil
}

// FindConfigFile searches for the league file in the following order:
// 1. If configPath is specified, use it directly
// 2. Look for .ffreport in the current directory
// 3. Look for .ffreport in the user's home directory
// 4. Look for config.yaml in the XDG config directory
//
// Returns the path to the league file if found, or empty string if not found.
func FindConfigFile(configPath string) string {
	// If explicit path is provided, use it
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	// Check current directory
	cwd, err := os.Getwd()
	if err == nil {
		cwdConfig := filepath.Join(cwd, DefaultConfigFile)
		if _, err := os.Stat(cwdConfig); err == nil {
			return cwdConfig
		}
	}

	// Check home directory
	home, err := os.UserHomeDir()
	if err == nil {
		homeConfig := filepath.Join(home, DefaultConfigFile)
		if _, err := os.Stat(homeConfig); err == nil {
			return homeConfig
		}
	}

	// Check XDG config directory
	xdgConfig := filepath.Join(XDGConfigDir(), "config.yaml")
	if _, err := os.Stat(xdgConfig); err == nil {
		return xdgConfig
	}

	return ""
}
