package report

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/ffreport/ffreport/internal/model"
)

// ConsoleWriter outputs human-readable text reports.
// This format is designed for terminal display with clear section
// formatting.
//
// Design decision: We use plain text with ASCII formatting rather than
// ANSI colors by default because:
// 1. It works in all terminals without compatibility issues
// 2. It's easier to pipe to files or other tools
// 3. Color can be added as an option later if needed
type ConsoleWriter struct {
	baseWriter

	// showEmpty controls whether sections the season has not reached yet
	// are shown with a placeholder.
	showEmpty bool

	// verbose enables additional detail in the output.
	verbose bool

	// printer localizes large point totals with digit grouping.
	printer *message.Printer
}

// ConsoleWriterOption configures a ConsoleWriter.
type ConsoleWriterOption func(*ConsoleWriter)

// WithShowEmpty configures the writer to show sections the season has not
// reached yet.
func WithShowEmpty(show bool) ConsoleWriterOption {
	return func(w *ConsoleWriter) {
		w.showEmpty = show
	}
}

// WithVerbose enables verbose output with additional details.
func WithVerbose(verbose bool) ConsoleWriterOption {
	return func(w *ConsoleWriter) {
		w.verbose = verbose
	}
}

// NewConsoleWriter creates a ConsoleWriter that outputs to the given writer.
func NewConsoleWriter(output io.Writer, opts ...ConsoleWriterOption) *ConsoleWriter {
	w := &ConsoleWriter{
		baseWriter: newBaseWriter(output),
		showEmpty:  false,
		verbose:    false,
		printer:    message.NewPrinter(language.English),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write renders the summary in human-readable format.
func (w *ConsoleWriter) Write(summary *model.SeasonSummary) (int, error) {
	var sb strings.Builder

	w.writeHeader(&sb, summary)
	w.writeStandings(&sb, summary)
	w.writeChallenges(&sb, summary)
	w.writePlayoffs(&sb, summary)
	w.writeChampionship(&sb, summary)
	w.writeFooter(&sb)

	return w.output.Write([]byte(sb.String()))
}

// writeHeader writes the report header with season information.
func (w *ConsoleWriter) writeHeader(sb *strings.Builder, summary *model.SeasonSummary) {
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("                     %d SEASON REPORT\n", summary.Season))
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n\n")

	sb.WriteString(fmt.Sprintf("Divisions:  %s\n", strings.Join(summary.Divisions, ", ")))
	sb.WriteString(fmt.Sprintf("Position:   %s\n", summary.Phase.Describe(summary.Week)))
	sb.WriteString(fmt.Sprintf("Generated:  %s\n", summary.GeneratedAt.Format("2006-01-02 15:04:05 MST")))

	if summary.Partial {
		sb.WriteString("Status:     PARTIAL (season still in progress)\n")
	} else {
		sb.WriteString("Status:     Complete\n")
	}

	sb.WriteString("\n")
}

// writeStandings writes one standings table per division.
func (w *ConsoleWriter) writeStandings(sb *strings.Builder, summary *model.SeasonSummary) {
	if summary.RegularSeason == nil {
		return
	}

	w.writeSectionRule(sb, "REGULAR SEASON")

	for _, division := range summary.Divisions {
		standings := summary.RegularSeason.Standings[division]
		if len(standings) == 0 {
			continue
		}

		sb.WriteString(fmt.Sprintf("%s\n\n", division))
		sb.WriteString(fmt.Sprintf("  %4s  %-24s %-8s %12s %12s\n",
			"Rank", "Team", "Record", "Points For", "Against"))
		for _, standing := range standings {
			sb.WriteString(w.printer.Sprintf("  %4d  %-24s %-8s %12.2f %12.2f\n",
				standing.Rank,
				w.teamLabel(standing.TeamRecord),
				formatRecord(standing.TeamRecord),
				standing.PointsFor,
				standing.PointsAgainst,
			))
		}
		if champ, ok := summary.RegularSeason.Champions[division]; ok {
			sb.WriteString(fmt.Sprintf("\n  Division champion: %s\n", champ.Team))
		}
		sb.WriteString("\n")
	}
}

// teamLabel renders a team name, with the owner appended in verbose mode.
func (w *ConsoleWriter) teamLabel(team model.TeamRecord) string {
	if w.verbose && team.Owner != "" {
		return team.Team + " (" + team.Owner + ")"
	}
	return team.Team
}

// writeChallenges writes the season challenge winners.
func (w *ConsoleWriter) writeChallenges(sb *strings.Builder, summary *model.SeasonSummary) {
	if len(summary.Challenges) == 0 {
		if !w.showEmpty {
			return
		}
		w.writeSectionRule(sb, "SEASON CHALLENGES")
		sb.WriteString("  No challenge results yet\n\n")
		return
	}

	w.writeSectionRule(sb, "SEASON CHALLENGES")

	for _, challenge := range summary.Challenges {
		sb.WriteString(w.printer.Sprintf("  [+] %-28s %s (%s), %.2f\n",
			challengeTitle(challenge.Name),
			challenge.Team,
			challenge.Division,
			challenge.Value,
		))
		if w.verbose && challenge.Detail != "" {
			sb.WriteString(fmt.Sprintf("      %s\n", challenge.Detail))
		}
	}
	sb.WriteString("\n")
}

// writePlayoffs writes every playoff round with its per-division brackets.
func (w *ConsoleWriter) writePlayoffs(sb *strings.Builder, summary *model.SeasonSummary) {
	if len(summary.PlayoffRounds) == 0 {
		if !w.showEmpty {
			return
		}
		w.writeSectionRule(sb, "PLAYOFFS")
		sb.WriteString("  Playoffs have not started\n\n")
		return
	}

	w.writeSectionRule(sb, "PLAYOFFS")

	for _, round := range summary.PlayoffRounds {
		sb.WriteString(fmt.Sprintf("%s (week %d)\n\n", round.Round, round.Week))
		for _, bracket := range round.Brackets {
			sb.WriteString(fmt.Sprintf("  %s\n", bracket.Division))
			for _, matchup := range bracket.Matchups {
				sb.WriteString("    " + w.formatMatchup(matchup) + "\n")
			}
		}
		sb.WriteString("\n")
	}
}

// formatMatchup renders one bracket game on a single line.
func (w *ConsoleWriter) formatMatchup(matchup model.Matchup) string {
	home := fmt.Sprintf("(%d) %s %s", matchup.Home.Seed, matchup.Home.Team, formatScore(matchup.Home.Score))
	away := fmt.Sprintf("(%d) %s %s", matchup.Away.Seed, matchup.Away.Team, formatScore(matchup.Away.Score))

	line := home + "  vs  " + away
	if matchup.Winner != nil {
		line += fmt.Sprintf("  ->  %s advances", matchup.Winner.Team)
	}
	return line
}

// writeChampionship writes the cross-division championship leaderboard.
func (w *ConsoleWriter) writeChampionship(sb *strings.Builder, summary *model.SeasonSummary) {
	if summary.Championship == nil {
		if !w.showEmpty {
			return
		}
		w.writeSectionRule(sb, "CHAMPIONSHIP")
		sb.WriteString("  Championship week has not been reached\n\n")
		return
	}

	w.writeSectionRule(sb, "CHAMPIONSHIP")
	sb.WriteString(fmt.Sprintf("Week %d leaderboard\n\n", summary.Championship.Week))

	for _, entry := range summary.Championship.Entries {
		marker := "   "
		if entry.IsChampion {
			marker = "*  "
		}
		sb.WriteString(fmt.Sprintf("  %s%d. %-24s %-10s %8.2f\n",
			marker, entry.Rank, entry.Team, entry.Division, entry.Score))
	}

	champion := summary.Championship.Champion()
	sb.WriteString(fmt.Sprintf("\n  Overall champion: %s (%s)\n", champion.Team, champion.Division))
	sb.WriteString("\n")
}

// writeSectionRule writes a section title between horizontal rules.
func (w *ConsoleWriter) writeSectionRule(sb *strings.Builder, title string) {
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	sb.WriteString(title)
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n\n")
}

// writeFooter writes the report footer.
func (w *ConsoleWriter) writeFooter(sb *strings.Builder) {
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
	sb.WriteString("Report generated by ffreport\n")
	sb.WriteString("https://github.com/ffreport/ffreport\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
}
