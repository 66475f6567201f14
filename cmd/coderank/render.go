package main

import (
	"encoding/json"
	"fmt"
	"io"

	"coderank/internal/leaderboard"
	"coderank/internal/viewport"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-runewidth"
)

func render(w io.Writer, format string, view *leaderboard.ViewState, cellWidth int) error {
	cols := view.Columns()
	rows := view.Visible()

	switch format {
	case "json":
		return renderJSON(w, cols, rows)
	case "csv":
		newWriter(w, cols, rows, 0).RenderCSV()
		return nil
	case "markdown":
		if len(rows) == 0 {
			_, _ = fmt.Fprintln(w, "(0 rows)")
			return nil
		}
		newWriter(w, cols, rows, 0).RenderMarkdown()
		return nil
	default:
		return renderTable(w, view, cols, rows, cellWidth)
	}
}

// newWriter fills a go-pretty writer. A positive cellWidth caps every column
// at its resolved pixel width converted to terminal cells.
func newWriter(w io.Writer, cols []leaderboard.ResolvedColumn, rows []leaderboard.Row, cellWidth int) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.Style().Format.Header = text.FormatDefault

	header := make(table.Row, len(cols))
	for i, c := range cols {
		header[i] = c.Label
	}
	t.AppendHeader(header)

	limits := make([]int, len(cols))
	if cellWidth > 0 {
		configs := make([]table.ColumnConfig, len(cols))
		for i, c := range cols {
			limits[i] = viewport.PixelsToCells(c.PixelWidth, cellWidth)
			configs[i] = table.ColumnConfig{Number: i + 1, WidthMax: limits[i]}
		}
		t.SetColumnConfigs(configs)
	}

	for _, r := range rows {
		row := make(table.Row, len(cols))
		for i, c := range cols {
			row[i] = truncate(r.Get(c.Key), limits[i])
		}
		t.AppendRow(row)
	}
	return t
}

func renderTable(w io.Writer, view *leaderboard.ViewState, cols []leaderboard.ResolvedColumn, rows []leaderboard.Row, cellWidth int) error {
	if len(rows) == 0 {
		_, _ = fmt.Fprintln(w, "(0 rows)")
		return nil
	}
	newWriter(w, cols, rows, cellWidth).Render()

	p := view.Pager()
	_, _ = fmt.Fprintf(w, "(%d rows, page %d of %d)\n", p.Total(), p.Page()+1, p.Pages())
	return nil
}

func renderJSON(w io.Writer, cols []leaderboard.ResolvedColumn, rows []leaderboard.Row) error {
	out := make([]map[string]string, len(rows))
	for i, r := range rows {
		m := make(map[string]string, len(cols))
		for _, c := range cols {
			m[c.Key] = r.Get(c.Key)
		}
		out[i] = m
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// truncate shortens s to limit display cells. limit <= 0 means no limit.
func truncate(s string, limit int) string {
	if limit <= 0 || runewidth.StringWidth(s) <= limit {
		return s
	}
	return runewidth.Truncate(s, limit, "…")
}
