// Package wbdata reads the raw World Bank indicators export into a
// dataframe and inspects its schema. Cells are kept as verbatim
// strings; interpreting missing tokens and typing values belongs to
// the transform, so there is a single place that decides what counts
// as "no observation".
package wbdata

import (
	"fmt"
	"io"
	"os"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/ericamarie9016/eds221-m2021-day6-interactive/internal/tidy"
)

// LeadingColumns are the fixed identifier columns the export starts
// with, in order.
var LeadingColumns = []string{"Country Name", "Country Code", "Series Name", "Series Code"}

// ReadFile reads a World Bank indicators CSV from disk.
func ReadFile(path string) (dataframe.DataFrame, error) {
	f, err := os.Open(path)
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("opening indicators file: %w", err)
	}
	defer f.Close()

	df, err := Read(f)
	if err != nil {
		return df, fmt.Errorf("%s: %w", path, err)
	}
	return df, nil
}

// Read parses an indicators CSV and verifies the fixed leading
// columns. All columns come back as strings.
func Read(r io.Reader) (dataframe.DataFrame, error) {
	df := dataframe.ReadCSV(r,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
	)
	if df.Err != nil {
		return df, fmt.Errorf("reading indicators csv: %w", df.Err)
	}
	if err := checkLeadingColumns(df.Names()); err != nil {
		return dataframe.DataFrame{}, err
	}
	return df, nil
}

func checkLeadingColumns(names []string) error {
	if len(names) < len(LeadingColumns) {
		return fmt.Errorf("%w: expected at least %d columns, have %d",
			tidy.ErrSchemaMismatch, len(LeadingColumns), len(names))
	}
	for i, want := range LeadingColumns {
		if names[i] != want {
			return fmt.Errorf("%w: column %d is %q, want %q",
				tidy.ErrSchemaMismatch, i+1, names[i], want)
		}
	}
	return nil
}
