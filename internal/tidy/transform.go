// Package tidy reshapes the wide World Bank indicator table into an
// analysis-ready tidy table: one row per country and year, one column
// per indicator series.
//
// The pipeline is wide-to-long (Longer), drop of rows with an undefined
// series identity, then long-to-wide on the series name (Wider). None
// of the dataframe libraries in use export a pivot, so the reshapes
// walk the frame's records and rebuild it column by column.
package tidy

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// Report carries the audit counters of a transform run. Rows dropped
// for an undefined series name are counted, never silently discarded.
type Report struct {
	WideRows        int // data rows in the raw wide table
	YearCols        int // year columns in the declared range
	LongRows        int // rows in the long table (WideRows * YearCols)
	TidyRows        int // rows in the tidy table
	DroppedNoSeries int // long rows dropped for a missing series name
	BadValues       int // cells neither numeric nor a declared missing token
}

// ParseYearLabel extracts the numeric year from a raw year-column
// label of the form "<YYYY> [YR<YYYY>]". Anything else is a ParseError.
func ParseYearLabel(label string) (int, error) {
	head, rest, ok := strings.Cut(label, " ")
	if !ok {
		return 0, &ParseError{Label: label, Reason: `want "<year> [YR<year>]"`}
	}
	year, err := strconv.Atoi(head)
	if err != nil {
		return 0, &ParseError{Label: label, Reason: "year part is not numeric"}
	}
	if rest != fmt.Sprintf("[YR%d]", year) {
		return 0, &ParseError{Label: label, Reason: "bracket suffix does not match year"}
	}
	return year, nil
}

// Longer reshapes the wide indicator table into long form: one row per
// (country, series, year) with a single float value column. Cells equal
// to a missing token become NaN. Every non-identifier column of the
// input must parse as a year label, and every year of the declared
// range must be present.
func Longer(df dataframe.DataFrame, opts Options) (dataframe.DataFrame, Report, error) {
	var rep Report
	if df.Err != nil {
		return df, rep, df.Err
	}
	if opts.YearStart > opts.YearEnd {
		return dataframe.DataFrame{}, rep, fmt.Errorf("%w: year range %d-%d is inverted",
			ErrSchemaMismatch, opts.YearStart, opts.YearEnd)
	}

	names := df.Names()
	colIdx := make(map[string]int, len(names))
	for i, n := range names {
		colIdx[n] = i
	}

	countryIdx, ok := colIdx[RawCountryCol]
	if !ok {
		return dataframe.DataFrame{}, rep, fmt.Errorf("%w: column %q absent", ErrSchemaMismatch, RawCountryCol)
	}
	seriesIdx, ok := colIdx[RawSeriesCol]
	if !ok {
		return dataframe.DataFrame{}, rep, fmt.Errorf("%w: column %q absent", ErrSchemaMismatch, RawSeriesCol)
	}

	// Every column past the four identifiers must be a well-formed year
	// label. A bare "2001" or similar aborts the run.
	identifier := map[string]bool{
		"Country Name": true, "Country Code": true,
		"Series Name": true, "Series Code": true,
	}
	yearCol := make(map[int]int) // year -> column index
	for i, n := range names {
		if identifier[n] {
			continue
		}
		y, err := ParseYearLabel(n)
		if err != nil {
			return dataframe.DataFrame{}, rep, err
		}
		yearCol[y] = i
	}

	years := make([]int, 0, opts.YearEnd-opts.YearStart+1)
	for y := opts.YearStart; y <= opts.YearEnd; y++ {
		if _, ok := yearCol[y]; !ok {
			return dataframe.DataFrame{}, rep, fmt.Errorf("%w: year column %q not in input",
				ErrSchemaMismatch, fmt.Sprintf("%d [YR%d]", y, y))
		}
		years = append(years, y)
	}

	records := df.Records()[1:] // skip header
	if len(records) == 0 {
		return dataframe.DataFrame{}, rep, fmt.Errorf("%w: input has no data rows", ErrSchemaMismatch)
	}
	rep.WideRows = len(records)
	rep.YearCols = len(years)

	n := len(records) * len(years)
	countries := make([]string, 0, n)
	seriesNames := make([]string, 0, n)
	yearVals := make([]int, 0, n)
	values := make([]float64, 0, n)

	for _, rec := range records {
		for _, y := range years {
			cell := rec[yearCol[y]]
			v := math.NaN()
			if !opts.isMissing(cell) {
				f, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
				if err != nil || math.IsNaN(f) {
					rep.BadValues++
				} else {
					v = f
				}
			}
			countries = append(countries, rec[countryIdx])
			seriesNames = append(seriesNames, rec[seriesIdx])
			yearVals = append(yearVals, y)
			values = append(values, v)
		}
	}

	long := dataframe.New(
		series.New(countries, series.String, ColCountry),
		series.New(seriesNames, series.String, ColSeries),
		series.New(yearVals, series.Int, ColYear),
		series.New(values, series.Float, ColValue),
	)
	if long.Err != nil {
		return long, rep, fmt.Errorf("building long table: %w", long.Err)
	}
	rep.LongRows = long.Nrow()
	return long, rep, nil
}

// Wider pivots the long table on the series name, grouped by
// (country, year). Rows whose series name is missing are dropped first
// and counted; without that drop the pivot would manufacture a column
// standing for "no series". Every distinct surviving series name
// becomes a column, but a (country, year) row only exists when at
// least one series recorded a non-missing value for it. Absent
// (country, year, series) combinations come out as NaN.
func Wider(long dataframe.DataFrame, opts Options) (dataframe.DataFrame, Report, error) {
	var rep Report
	if long.Err != nil {
		return long, rep, long.Err
	}

	names := long.Names()
	colIdx := make(map[string]int, len(names))
	for i, n := range names {
		colIdx[n] = i
	}
	for _, need := range []string{ColCountry, ColSeries, ColYear, ColValue} {
		if _, ok := colIdx[need]; !ok {
			return dataframe.DataFrame{}, rep, fmt.Errorf("%w: long table lacks column %q", ErrSchemaMismatch, need)
		}
	}

	type key struct {
		country string
		year    int
	}

	var (
		rowOrder    []key
		rowIdx      = make(map[key]int)
		seriesOrder []string
		seriesSeen  = make(map[string]bool)
		cells       = make(map[key]map[string]float64)
	)

	for _, rec := range long.Records()[1:] {
		sname := strings.TrimSpace(rec[colIdx[ColSeries]])
		if sname == "" || opts.isMissing(sname) || sname == "NaN" {
			rep.DroppedNoSeries++
			continue
		}

		if !seriesSeen[sname] {
			seriesSeen[sname] = true
			seriesOrder = append(seriesOrder, sname)
		}

		year, err := strconv.Atoi(rec[colIdx[ColYear]])
		if err != nil {
			return dataframe.DataFrame{}, rep, fmt.Errorf("non-numeric year %q in long table", rec[colIdx[ColYear]])
		}
		v, err := strconv.ParseFloat(rec[colIdx[ColValue]], 64)
		if err != nil || math.IsNaN(v) {
			// Missing values never materialize a (country, year) row
			// on their own.
			continue
		}

		k := key{country: rec[colIdx[ColCountry]], year: year}
		if _, ok := rowIdx[k]; !ok {
			rowIdx[k] = len(rowOrder)
			rowOrder = append(rowOrder, k)
			cells[k] = make(map[string]float64)
		}
		cells[k][sname] = v
	}

	if len(rowOrder) == 0 {
		return dataframe.DataFrame{}, rep, fmt.Errorf("no non-missing observations after reshape")
	}

	countries := make([]string, len(rowOrder))
	years := make([]int, len(rowOrder))
	for i, k := range rowOrder {
		countries[i] = k.country
		years[i] = k.year
	}

	cols := make([]series.Series, 0, len(seriesOrder)+2)
	cols = append(cols,
		series.New(countries, series.String, ColCountry),
		series.New(years, series.Int, ColYear),
	)
	for _, sname := range seriesOrder {
		vals := make([]float64, len(rowOrder))
		for i, k := range rowOrder {
			if v, ok := cells[k][sname]; ok {
				vals[i] = v
			} else {
				vals[i] = math.NaN()
			}
		}
		cols = append(cols, series.New(vals, series.Float, sname))
	}

	tidy := dataframe.New(cols...)
	if tidy.Err != nil {
		return tidy, rep, fmt.Errorf("building tidy table: %w", tidy.Err)
	}
	rep.TidyRows = tidy.Nrow()
	return tidy, rep, nil
}

// Transform runs the full pipeline: Longer, Wider, then the name-keyed
// rename of series columns to short identifiers. The source is never
// mutated; a fresh frame is returned along with the audit report.
func Transform(df dataframe.DataFrame, opts Options) (dataframe.DataFrame, Report, error) {
	long, rep, err := Longer(df, opts)
	if err != nil {
		return dataframe.DataFrame{}, rep, err
	}

	tidy, wrep, err := Wider(long, opts)
	if err != nil {
		return dataframe.DataFrame{}, rep, err
	}
	rep.DroppedNoSeries = wrep.DroppedNoSeries
	rep.TidyRows = wrep.TidyRows

	used := map[string]bool{ColCountry: true, ColYear: true}
	for _, name := range tidy.Names() {
		if name == ColCountry || name == ColYear {
			continue
		}
		target, ok := opts.Renames[name]
		if !ok {
			target = Slug(name)
		}
		if used[target] {
			return dataframe.DataFrame{}, rep, fmt.Errorf("rename collision: two series map to column %q", target)
		}
		used[target] = true
		if target != name {
			tidy = tidy.Rename(target, name)
			if tidy.Err != nil {
				return tidy, rep, fmt.Errorf("renaming %q: %w", name, tidy.Err)
			}
		}
	}
	return tidy, rep, nil
}

// Slug derives a column identifier from a raw series name:
// "CO2 emissions (kt)" becomes "co2_emissions_kt".
func Slug(name string) string {
	var b strings.Builder
	pending := false
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			if pending && b.Len() > 0 {
				b.WriteByte('_')
			}
			pending = false
			b.WriteRune(r)
		default:
			pending = true
		}
	}
	return b.String()
}
