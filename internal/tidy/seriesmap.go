package tidy

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadSeriesMap reads a YAML file mapping raw series names to short
// column identifiers, e.g.
//
//	"CO2 emissions (kt)": co2_emissions_kt
//	"Access to electricity (% of population)": access_electricity_pp
//
// The map is keyed by name, never by position.
func LoadSeriesMap(path string) (map[string]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading series map: %w", err)
	}
	m := make(map[string]string)
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("parsing series map %s: %w", path, err)
	}
	for name, id := range m {
		if id == "" {
			return nil, fmt.Errorf("series map %s: empty identifier for %q", path, name)
		}
	}
	return m, nil
}
