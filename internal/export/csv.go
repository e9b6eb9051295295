// Package export writes the tidy table to its output sinks: a CSV
// file, or a DuckDB table for downstream SQL analysis.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// WriteCSV writes the frame row-wise. Missing values become empty
// fields, never a literal "NaN" and never zero.
func WriteCSV(w io.Writer, df dataframe.DataFrame) error {
	if df.Err != nil {
		return df.Err
	}

	cw := csv.NewWriter(w)
	names := df.Names()
	if err := cw.Write(names); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	types := df.Types()
	cols := make([]series.Series, len(names))
	for j, name := range names {
		cols[j] = df.Col(name)
	}

	row := make([]string, len(names))
	for i := 0; i < df.Nrow(); i++ {
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
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row %d: %w", i, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteCSVFile writes the frame to path, creating parent directories.
func WriteCSVFile(path string, df dataframe.DataFrame) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	if err := WriteCSV(f, df); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
