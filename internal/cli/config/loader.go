package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

var (
	configFileUsed string
	currentConfig  *Config // last successfully loaded config, for command access
)

// findConfigFile finds the config file to use.
// Priority: explicit path > wbtidy.yaml > wbtidy.yml
func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	for _, name := range []string{"wbtidy.yaml", "wbtidy.yml"} {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

// GetConfigFileUsed reports which config file the last Load consumed.
func GetConfigFileUsed() string {
	return configFileUsed
}

// Load resolves configuration with the precedence
// flags > env vars (WBTIDY_) > config file > defaults.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	// 1. Defaults
	if err := k.Load(confmap.Provider(map[string]interface{}{
		"input":          DefaultInputPath,
		"out":            DefaultOutputPath,
		"state":          DefaultStateFile,
		"year_start":     DefaultYearStart,
		"year_end":       DefaultYearEnd,
		"missing_tokens": []string{"..", ""},
		"verbose":        false,
		"output":         DefaultOutput,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Config file
	configFileUsed = findConfigFile(cfgFile)
	if configFileUsed != "" {
		if err := k.Load(file.Provider(configFileUsed), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", configFileUsed, err)
		}
	}

	// 3. Environment variables: WBTIDY_YEAR_START -> year_start
	if err := k.Load(env.Provider("WBTIDY_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "WBTIDY_"))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. Flags (highest priority)
	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed {
				return "", nil
			}
			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	currentConfig = &cfg
	return &cfg, nil
}

// GetCurrentConfig returns the config from the last successful Load,
// or nil if none has been loaded.
func GetCurrentConfig() *Config {
	return currentConfig
}

// ResetConfig clears loader state. Used for testing.
func ResetConfig() {
	configFileUsed = ""
	currentConfig = nil
}
