// Package report renders season summaries in multiple output formats.
//
// Every writer renders the same immutable model.SeasonSummary; no writer
// recomputes results or reorders sections. Available formats are console
// text, JSON, Markdown, CSV, and a standalone HTML page. MultiWriter fans a
// summary out to several destinations at once, which is how the CLI writes
// to both the terminal and a file.
package report
