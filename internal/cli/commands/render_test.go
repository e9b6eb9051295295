package commands

import (
	"bytes"
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

func renderFixture() dataframe.DataFrame {
	return dataframe.New(
		series.New([]string{"Sweden", "Norway"}, series.String, "country"),
		series.New([]int{2019, 2020}, series.Int, "year"),
		series.New([]float64{1234, math.NaN()}, series.Float, "co2_emissions_kt"),
	)
}

func TestFrameRecords(t *testing.T) {
	cols, rows := frameRecords(renderFixture())

	if len(cols) != 3 || cols[2] != "co2_emissions_kt" {
		t.Errorf("cols = %v", cols)
	}
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}
	if rows[0][2] != "1234" {
		t.Errorf("float cell = %q, want 1234 without trailing zeros", rows[0][2])
	}
	if rows[1][2] != "" {
		t.Errorf("missing cell = %q, want empty string", rows[1][2])
	}
}

func TestRenderRecords_Table(t *testing.T) {
	var buf bytes.Buffer
	cols, rows := frameRecords(renderFixture())
	if err := renderRecords(&buf, cols, rows, "table"); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "Sweden") || !strings.Contains(out, "(2 rows)") {
		t.Errorf("unexpected table output:\n%s", out)
	}
}

func TestRenderRecords_JSON(t *testing.T) {
	var buf bytes.Buffer
	cols, rows := frameRecords(renderFixture())
	if err := renderRecords(&buf, cols, rows, "json"); err != nil {
		t.Fatal(err)
	}

	var results []map[string]string
	if err := json.Unmarshal(buf.Bytes(), &results); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(results) != 2 || results[0]["country"] != "Sweden" {
		t.Errorf("unexpected JSON: %v", results)
	}
}

func TestRenderRecords_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := renderRecords(&buf, []string{"a"}, nil, "table"); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "(0 rows)") {
		t.Errorf("empty render = %q", buf.String())
	}
}
