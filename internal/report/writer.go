package report

import (
	"io"
	"strconv"

	"github.com/ffreport/ffreport/internal/model"
)

// Writer defines the interface for report output.
// Implementations render a season summary in a specific format.
//
// Design decision: We use an interface to allow different output formats
// and destinations. This enables writing to files, stdout, or network
// connections with the same API.
type Writer interface {
	// Write renders the summary to the configured destination.
	// Returns the number of bytes written and any error encountered.
	Write(summary *model.SeasonSummary) (int, error)
}

// MultiWriter writes to multiple Writers simultaneously.
// This is useful for outputting to both terminal and file.
//
// Design decision: We implement this as a separate type rather than
// using io.MultiWriter because our Writer interface is different
// from io.Writer - we write summaries, not raw bytes.
type MultiWriter struct {
	writers []Writer
}

// NewMultiWriter creates a Writer that writes to all provided Writers.
func NewMultiWriter(writers ...Writer) *MultiWriter {
	return &MultiWriter{writers: writers}
}

// Write renders the summary with all configured Writers.
// Returns the total bytes written across all writers.
// Stops on first error encountered.
func (m *MultiWriter) Write(summary *model.SeasonSummary) (int, error) {
	var total int
	for _, w := range m.writers {
		n, err := w.Write(summary)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// baseWriter provides common functionality for report writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}

// challengeTitles maps challenge identifiers to display titles.
var challengeTitles = map[string]string{
	"highest_single_week_score": "Highest Single-Week Score",
	"season_points_leader":      "Season Points Leader",
	"largest_blowout":           "Largest Blowout",
	"closest_victory":           "Closest Victory",
	"longest_win_streak":        "Longest Win Streak",
}

// challengeTitle returns the display title for a challenge identifier,
// falling back to the identifier itself.
func challengeTitle(name string) string {
	if title, ok := challengeTitles[name]; ok {
		return title
	}
	return name
}

// formatScore renders an optional score with two decimals, or a dash when
// the score has not been posted.
func formatScore(score *float64) string {
	if score == nil {
		return "-"
	}
	return strconv.FormatFloat(*score, 'f', 2, 64)
}

// formatRecord renders a win-loss-tie record like "11-3-0".
func formatRecord(team model.TeamRecord) string {
	return strconv.Itoa(team.Wins) + "-" + strconv.Itoa(team.Losses) + "-" + strconv.Itoa(team.Ties)
}
