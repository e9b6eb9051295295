package wbdata

import (
	"fmt"
	"strings"

	"github.com/go-gota/gota/dataframe"

	"github.com/ericamarie9016/eds221-m2021-day6-interactive/internal/tidy"
)

// Schema describes the shape of a raw indicators table.
type Schema struct {
	Rows      int
	Columns   []string
	YearStart int
	YearEnd   int
	Series    []string // distinct non-empty series names, first-seen order
}

// Inspect derives the schema of a raw indicators frame. Year columns
// must all parse and form one contiguous span; anything else is
// reported as an error rather than guessed around.
func Inspect(df dataframe.DataFrame) (Schema, error) {
	if df.Err != nil {
		return Schema{}, df.Err
	}
	names := df.Names()
	if err := checkLeadingColumns(names); err != nil {
		return Schema{}, err
	}

	s := Schema{Rows: df.Nrow(), Columns: names}

	var years []int
	for _, n := range names[len(LeadingColumns):] {
		y, err := tidy.ParseYearLabel(n)
		if err != nil {
			return Schema{}, err
		}
		years = append(years, y)
	}
	if len(years) == 0 {
		return Schema{}, fmt.Errorf("%w: no year columns present", tidy.ErrSchemaMismatch)
	}
	for i := 1; i < len(years); i++ {
		if years[i] != years[i-1]+1 {
			return Schema{}, fmt.Errorf("%w: year columns not contiguous around %d",
				tidy.ErrSchemaMismatch, years[i])
		}
	}
	s.YearStart = years[0]
	s.YearEnd = years[len(years)-1]

	seen := make(map[string]bool)
	for _, name := range df.Col(tidy.RawSeriesCol).Records() {
		name = strings.TrimSpace(name)
		if name == "" || name == ".." || name == "NaN" {
			continue
		}
		if !seen[name] {
			seen[name] = true
			s.Series = append(s.Series, name)
		}
	}
	return s, nil
}
