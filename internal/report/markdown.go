package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/nao1215/markdown"

	"github.com/ffreport/ffreport/internal/model"
)

// MarkdownWriter outputs summaries in Markdown format.
// This format is designed for posting to league chats and sharing.
//
// Design decision: We use the nao1215/markdown library for fluent markdown
// generation which provides:
// 1. Type-safe markdown generation
// 2. Support for tables, lists, and code blocks
// 3. GitHub-flavored markdown alerts
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write renders the summary in Markdown format.
func (w *MarkdownWriter) Write(summary *model.SeasonSummary) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, summary)
	w.writeStandings(md, summary)
	w.writeChallenges(md, summary)
	w.writePlayoffs(md, summary)
	w.writeChampionship(md, summary)
	w.writeFooter(md)

	return len(md.String()), md.Build()
}

// writeHeader writes the report header with season information.
func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, summary *model.SeasonSummary) {
	md.H1(fmt.Sprintf("%d Season Report", summary.Season))
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Divisions", strconv.Itoa(len(summary.Divisions))},
			{"Position", summary.Phase.Describe(summary.Week)},
			{"Generated", summary.GeneratedAt.Format("2006-01-02 15:04:05 MST")},
			{"Status", w.statusText(summary)},
		},
	})
	md.PlainText("")

	if summary.Partial {
		md.Warning("Partial report: the season is still in progress, so some sections are incomplete or absent.")
		md.PlainText("")
	}
}

// statusText returns the status cell based on summary state.
func (w *MarkdownWriter) statusText(summary *model.SeasonSummary) string {
	if summary.Partial {
		return "⚠️ Partial (season in progress)"
	}
	return "✅ Complete"
}

// writeStandings writes one standings table per division.
func (w *MarkdownWriter) writeStandings(md *markdown.Markdown, summary *model.SeasonSummary) {
	if summary.RegularSeason == nil {
		return
	}

	md.H2("Regular Season")
	md.PlainText("")

	for _, division := range summary.Divisions {
		standings := summary.RegularSeason.Standings[division]
		if len(standings) == 0 {
			continue
		}

		md.PlainText("### " + division)
		md.PlainText("")

		rows := make([][]string, len(standings))
		for i, standing := range standings {
			team := standing.Team
			if champ, ok := summary.RegularSeason.Champions[division]; ok && champ.TeamID == standing.TeamID {
				team = "**" + team + "** 🏆"
			}
			rows[i] = []string{
				strconv.Itoa(standing.Rank),
				team,
				standing.Owner,
				formatRecord(standing.TeamRecord),
				strconv.FormatFloat(standing.PointsFor, 'f', 2, 64),
				strconv.FormatFloat(standing.PointsAgainst, 'f', 2, 64),
			}
		}

		md.Table(markdown.TableSet{
			Header: []string{"Rank", "Team", "Owner", "Record", "Points For", "Against"},
			Rows:   rows,
		})
		md.PlainText("")
	}
}

// writeChallenges writes the season challenge winners.
func (w *MarkdownWriter) writeChallenges(md *markdown.Markdown, summary *model.SeasonSummary) {
	if len(summary.Challenges) == 0 {
		return
	}

	md.H2("Season Challenges")
	md.PlainText("")

	rows := make([][]string, len(summary.Challenges))
	for i, challenge := range summary.Challenges {
		detail := challenge.Detail
		if detail == "" {
			detail = "-"
		}
		rows[i] = []string{
			challengeTitle(challenge.Name),
			challenge.Team,
			challenge.Division,
			strconv.FormatFloat(challenge.Value, 'f', 2, 64),
			detail,
		}
	}

	md.Table(markdown.TableSet{
		Header: []string{"Challenge", "Winner", "Division", "Value", "Detail"},
		Rows:   rows,
	})
	md.PlainText("")
}

// writePlayoffs writes every playoff round with its per-division brackets.
func (w *MarkdownWriter) writePlayoffs(md *markdown.Markdown, summary *model.SeasonSummary) {
	if len(summary.PlayoffRounds) == 0 {
		return
	}

	md.H2("Playoffs")
	md.PlainText("")

	for _, round := range summary.PlayoffRounds {
		md.PlainTextf("### %s (week %d)", round.Round, round.Week)
		md.PlainText("")

		rows := make([][]string, 0, len(round.Brackets)*2)
		for _, bracket := range round.Brackets {
			for _, matchup := range bracket.Matchups {
				winner := "TBD"
				if matchup.Winner != nil {
					winner = matchup.Winner.Team
				}
				rows = append(rows, []string{
					bracket.Division,
					fmt.Sprintf("(%d) %s", matchup.Home.Seed, matchup.Home.Team),
					formatScore(matchup.Home.Score),
					fmt.Sprintf("(%d) %s", matchup.Away.Seed, matchup.Away.Team),
					formatScore(matchup.Away.Score),
					winner,
				})
			}
		}

		md.Table(markdown.TableSet{
			Header: []string{"Division", "Home", "Score", "Away", "Score", "Winner"},
			Rows:   rows,
		})
		md.PlainText("")
	}
}

// writeChampionship writes the cross-division championship leaderboard.
func (w *MarkdownWriter) writeChampionship(md *markdown.Markdown, summary *model.SeasonSummary) {
	if summary.Championship == nil {
		return
	}

	md.H2("Championship")
	md.PlainText("")
	md.PlainTextf("Week %d leaderboard across all division winners.", summary.Championship.Week)
	md.PlainText("")

	rows := make([][]string, len(summary.Championship.Entries))
	for i, entry := range summary.Championship.Entries {
		team := entry.Team
		if entry.IsChampion {
			team = "**" + team + "** 👑"
		}
		rows[i] = []string{
			strconv.Itoa(entry.Rank),
			team,
			entry.Owner,
			entry.Division,
			strconv.FormatFloat(entry.Score, 'f', 2, 64),
		}
	}

	md.Table(markdown.TableSet{
		Header: []string{"Rank", "Team", "Owner", "Division", "Score"},
		Rows:   rows,
	})
	md.PlainText("")

	champion := summary.Championship.Champion()
	md.Tipf("%s (%s) wins the overall championship with %.2f points.",
		champion.Team, champion.Division, champion.Score)
	md.PlainText("")
}

// writeFooter writes the report footer.
func (w *MarkdownWriter) writeFooter(md *markdown.Markdown) {
	md.HorizontalRule()
	md.PlainText("")
	md.PlainTextf("*Report generated by [ffreport](https://github.com/ffreport/ffreport)*")
}
