package tidy

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadSeriesMap(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "series_map.yaml")
	content := `"CO2 emissions (kt)": co2_emissions_kt
"Access to electricity (% of population)": access_electricity_pp
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	m, err := LoadSeriesMap(path)
	if err != nil {
		t.Fatalf("LoadSeriesMap: %v", err)
	}
	if len(m) != 2 {
		t.Fatalf("entries = %d, want 2", len(m))
	}
	if m["CO2 emissions (kt)"] != "co2_emissions_kt" {
		t.Errorf("unexpected mapping: %v", m)
	}
}

func TestLoadSeriesMap_EmptyIdentifier(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "series_map.yaml")
	if err := os.WriteFile(path, []byte(`"CO2 emissions (kt)": ""`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSeriesMap(path); err == nil {
		t.Fatal("expected error for empty identifier")
	}
}

func TestLoadSeriesMap_MissingFile(t *testing.T) {
	if _, err := LoadSeriesMap(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
