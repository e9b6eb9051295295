package commands

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/jedib0t/go-pretty/v6/table"
)

// frameRecords flattens a frame into header + rows for rendering.
// Missing values render as empty strings, floats without trailing
// zeros.
func frameRecords(df dataframe.DataFrame) ([]string, [][]string) {
	names := df.Names()
	types := df.Types()

	cols := make([]series.Series, len(names))
	for j, name := range names {
		cols[j] = df.Col(name)
	}

	rows := make([][]string, df.Nrow())
	for i := range rows {
		row := make([]string, len(names))
		for j := range names {
			e := cols[j].Elem(i)
			switch {
			case e.IsNA():
				row[j] = ""
			case types[j] == series.Float:
				row[j] = strconv.FormatFloat(e.Float(), 'g', -1, 64)
			default:
				row[j] = e.String()
			}
		}
		rows[i] = row
	}
	return names, rows
}

func renderRecords(w io.Writer, cols []string, rows [][]string, format string) error {
	switch format {
	case "json":
		return renderJSON(w, cols, rows)
	case "csv":
		return renderCSV(w, cols, rows)
	case "md", "markdown":
		return renderMarkdown(w, cols, rows)
	default:
		return renderTable(w, cols, rows)
	}
}

func renderTable(w io.Writer, cols []string, rows [][]string) error {
	if len(rows) == 0 {
		_, _ = fmt.Fprintln(w, "(0 rows)")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)

	headerRow := make(table.Row, len(cols))
	for i, col := range cols {
		headerRow[i] = col
	}
	t.AppendHeader(headerRow)

	for _, rec := range rows {
		row := make(table.Row, len(rec))
		for i, v := range rec {
			row[i] = v
		}
		t.AppendRow(row)
	}

	t.Render()
	_, _ = fmt.Fprintf(w, "(%d rows)\n", len(rows))
	return nil
}

func renderMarkdown(w io.Writer, cols []string, rows [][]string) error {
	if len(rows) == 0 {
		_, _ = fmt.Fprintln(w, "(0 rows)")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)

	headerRow := make(table.Row, len(cols))
	for i, col := range cols {
		headerRow[i] = col
	}
	t.AppendHeader(headerRow)
	for _, rec := range rows {
		row := make(table.Row, len(rec))
		for i, v := range rec {
			row[i] = v
		}
		t.AppendRow(row)
	}

	t.RenderMarkdown()
	return nil
}

func renderCSV(w io.Writer, cols []string, rows [][]string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(cols); err != nil {
		return err
	}
	for _, row := range rows {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func renderJSON(w io.Writer, cols []string, rows [][]string) error {
	results := make([]map[string]string, len(rows))
	for i, row := range rows {
		m := make(map[string]string, len(cols))
		for j, col := range cols {
			m[col] = row[j]
		}
		results[i] = m
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}
