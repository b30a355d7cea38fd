package report

import (
	"html/template"
	"io"

	"github.com/ffreport/ffreport/internal/model"
)

// HTMLWriter outputs summaries as a standalone HTML page.
// The page carries its own styles so it can be attached to a league email
// or dropped on any static host.
//
// Design decision: We use html/template rather than string concatenation
// because it escapes team and owner names, which are user-controlled
// strings fetched from the platform.
type HTMLWriter struct {
	baseWriter

	tmpl *template.Template
}

// NewHTMLWriter creates an HTMLWriter that outputs to the given writer.
func NewHTMLWriter(output io.Writer) *HTMLWriter {
	return &HTMLWriter{
		baseWriter: newBaseWriter(output),
		tmpl:       htmlTemplate,
	}
}

// Write renders the summary as an HTML page.
func (w *HTMLWriter) Write(summary *model.SeasonSummary) (int, error) {
	counter := &countingWriter{w: w.output}
	if err := w.tmpl.Execute(counter, summary); err != nil {
		return counter.n, err
	}
	return counter.n, nil
}

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"score":     formatScore,
	"float":     formatFloat,
	"record":    formatRecord,
	"challenge": challengeTitle,
}).Parse(htmlPage))

const htmlPage = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Season}} Season Report</title>
<style>
body { font-family: Georgia, serif; max-width: 60rem; margin: 2rem auto; color: #222; }
h1 { border-bottom: 3px solid #1a5c38; padding-bottom: .3rem; }
h2 { color: #1a5c38; margin-top: 2rem; }
table { border-collapse: collapse; width: 100%; margin: .5rem 0 1.5rem; }
th, td { border: 1px solid #ccc; padding: .35rem .6rem; text-align: left; }
th { background: #f0f4f1; }
.champion { font-weight: bold; background: #fdf6e3; }
.meta { color: #666; font-size: .9rem; }
.partial { background: #fff3cd; border: 1px solid #e0c26e; padding: .6rem 1rem; }
footer { margin-top: 3rem; color: #888; font-size: .85rem; }
</style>
</head>
<body>
<h1>{{.Season}} Season Report</h1>
<p class="meta">{{.Phase.Describe .Week}} &middot; generated {{.GeneratedAt.Format "2006-01-02 15:04 MST"}}</p>
{{if .Partial}}<p class="partial">Partial report: the season is still in progress.</p>{{end}}

{{if .RegularSeason}}
<h2>Regular Season</h2>
{{$rs := .RegularSeason}}
{{range $division := .Divisions}}
{{$standings := index $rs.Standings $division}}
{{if $standings}}
<h3>{{$division}}</h3>
<table>
<tr><th>Rank</th><th>Team</th><th>Owner</th><th>Record</th><th>Points For</th><th>Against</th></tr>
{{range $standings}}
<tr{{if eq .Rank 1}} class="champion"{{end}}>
<td>{{.Rank}}</td><td>{{.Team}}</td><td>{{.Owner}}</td>
<td>{{record .TeamRecord}}</td><td>{{float .PointsFor}}</td><td>{{float .PointsAgainst}}</td>
</tr>
{{end}}
</table>
{{end}}
{{end}}
{{end}}

{{if .Challenges}}
<h2>Season Challenges</h2>
<table>
<tr><th>Challenge</th><th>Winner</th><th>Division</th><th>Value</th><th>Detail</th></tr>
{{range .Challenges}}
<tr><td>{{challenge .Name}}</td><td>{{.Team}}</td><td>{{.Division}}</td><td>{{float .Value}}</td><td>{{.Detail}}</td></tr>
{{end}}
</table>
{{end}}

{{if .PlayoffRounds}}
<h2>Playoffs</h2>
{{range .PlayoffRounds}}
<h3>{{.Round}} (week {{.Week}})</h3>
<table>
<tr><th>Division</th><th>Home</th><th>Score</th><th>Away</th><th>Score</th><th>Winner</th></tr>
{{range .Brackets}}
{{$division := .Division}}
{{range .Matchups}}
<tr>
<td>{{$division}}</td>
<td>({{.Home.Seed}}) {{.Home.Team}}</td><td>{{score .Home.Score}}</td>
<td>({{.Away.Seed}}) {{.Away.Team}}</td><td>{{score .Away.Score}}</td>
<td>{{if .Winner}}{{.Winner.Team}}{{else}}TBD{{end}}</td>
</tr>
{{end}}
{{end}}
</table>
{{end}}
{{end}}

{{if .Championship}}
<h2>Championship</h2>
<p class="meta">Week {{.Championship.Week}} leaderboard across all division winners.</p>
<table>
<tr><th>Rank</th><th>Team</th><th>Owner</th><th>Division</th><th>Score</th></tr>
{{range .Championship.Entries}}
<tr{{if .IsChampion}} class="champion"{{end}}>
<td>{{.Rank}}</td><td>{{.Team}}</td><td>{{.Owner}}</td><td>{{.Division}}</td><td>{{float .Score}}</td>
</tr>
{{end}}
</table>
{{end}}

<footer>Report generated by <a href="https://github.com/ffreport/ffreport">ffreport</a></footer>
</body>
</html>
`
