package report

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/ffreport/ffreport/internal/model"
)

// csvHeader is the flat schema shared by every section.
var csvHeader = []string{
	"section", "division", "week", "rank", "team", "owner",
	"record", "points_for", "points_against", "score", "note",
}

// CSVWriter outputs summaries as flat CSV rows.
// Every section shares one schema with a leading section column, so the
// whole season can land in a single spreadsheet import.
//
// Design decision: We use standard encoding/csv because RFC 4180 quoting
// is all the format needs and the package handles it correctly.
type CSVWriter struct {
	baseWriter
}

// NewCSVWriter creates a CSVWriter that outputs to the given writer.
func NewCSVWriter(output io.Writer) *CSVWriter {
	return &CSVWriter{
		baseWriter: newBaseWriter(output),
	}
}

// countingWriter tracks bytes written through it.
type countingWriter struct {
	w io.Writer
	n int
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += n
	return n, err
}

// Write renders the summary as CSV.
func (w *CSVWriter) Write(summary *model.SeasonSummary) (int, error) {
	counter := &countingWriter{w: w.output}
	cw := csv.NewWriter(counter)

	rows := [][]string{csvHeader}
	rows = append(rows, standingsRows(summary)...)
	rows = append(rows, challengeRows(summary)...)
	rows = append(rows, playoffRows(summary)...)
	rows = append(rows, championshipRows(summary)...)

	if err := cw.WriteAll(rows); err != nil {
		return counter.n, err
	}
	return counter.n, nil
}

// standingsRows flattens per-division standings.
func standingsRows(summary *model.SeasonSummary) [][]string {
	if summary.RegularSeason == nil {
		return nil
	}

	var rows [][]string
	for _, division := range summary.Divisions {
		for _, standing := range summary.RegularSeason.Standings[division] {
			note := ""
			if champ, ok := summary.RegularSeason.Champions[division]; ok && champ.TeamID == standing.TeamID {
				note = "division champion"
			}
			rows = append(rows, []string{
				"regular_season",
				division,
				"",
				strconv.Itoa(standing.Rank),
				standing.Team,
				standing.Owner,
				formatRecord(standing.TeamRecord),
				formatFloat(standing.PointsFor),
				formatFloat(standing.PointsAgainst),
				"",
				note,
			})
		}
	}
	return rows
}

// challengeRows flattens the challenge winners.
func challengeRows(summary *model.SeasonSummary) [][]string {
	var rows [][]string
	for _, challenge := range summary.Challenges {
		rows = append(rows, []string{
			"challenge",
			challenge.Division,
			"",
			"",
			challenge.Team,
			challenge.Owner,
			"",
			"",
			"",
			formatFloat(challenge.Value),
			challengeNote(challenge),
		})
	}
	return rows
}

// challengeNote combines the challenge title with its optional detail.
func challengeNote(challenge model.ChallengeResult) string {
	note := challengeTitle(challenge.Name)
	if challenge.Detail != "" {
		note += ": " + challenge.Detail
	}
	return note
}

// playoffRows flattens every bracket game, one row per side.
func playoffRows(summary *model.SeasonSummary) [][]string {
	var rows [][]string
	for _, round := range summary.PlayoffRounds {
		for _, bracket := range round.Brackets {
			for _, matchup := range bracket.Matchups {
				for _, side := range []model.Side{matchup.Home, matchup.Away} {
					note := round.Round
					if matchup.Winner != nil && matchup.Winner.Team == side.Team {
						note += ", advanced"
					}
					rows = append(rows, []string{
						"playoff",
						bracket.Division,
						strconv.Itoa(round.Week),
						strconv.Itoa(side.Seed),
						side.Team,
						side.Owner,
						"",
						"",
						"",
						sideScore(side),
						note,
					})
				}
			}
		}
	}
	return rows
}

// championshipRows flattens the championship leaderboard.
func championshipRows(summary *model.SeasonSummary) [][]string {
	if summary.Championship == nil {
		return nil
	}

	var rows [][]string
	for _, entry := range summary.Championship.Entries {
		note := ""
		if entry.IsChampion {
			note = "overall champion"
		}
		rows = append(rows, []string{
			"championship",
			entry.Division,
			strconv.Itoa(summary.Championship.Week),
			strconv.Itoa(entry.Rank),
			entry.Team,
			entry.Owner,
			"",
			"",
			"",
			formatFloat(entry.Score),
			note,
		})
	}
	return rows
}

// sideScore renders an optional side score, empty when unposted.
func sideScore(side model.Side) string {
	if side.Score == nil {
		return ""
	}
	return formatFloat(*side.Score)
}

// formatFloat renders a score with two decimals for spreadsheet cells.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
