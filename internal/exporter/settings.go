package exporter

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	LinkStrategyRegex = "regex"
	LinkStrategySplit = "split"
)

// Settings configures a static build. Values come from an optional YAML
// file with CLI flags layered on top.
type Settings struct {
	CSVDir       string `yaml:"csv_dir"`
	OutputDir    string `yaml:"output_dir"`
	LinkStrategy string `yaml:"link_strategy"`
}

func DefaultSettings() *Settings {
	return &Settings{
		CSVDir:       "scrapped_output",
		OutputDir:    "api",
		LinkStrategy: LinkStrategyRegex,
	}
}

// LoadSettings reads a YAML settings file over the defaults. An empty path
// returns the defaults unchanged.
func LoadSettings(path string) (*Settings, error) {
	settings := DefaultSettings()
	if path == "" {
		return settings, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading settings file: %w", err)
	}
	if err := yaml.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("parsing settings file: %w", err)
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return settings, nil
}

func (s *Settings) Validate() error {
	if s.LinkStrategy != LinkStrategyRegex && s.LinkStrategy != LinkStrategySplit {
		return fmt.Errorf("unknown link strategy %q (want %q or %q)", s.LinkStrategy, LinkStrategyRegex, LinkStrategySplit)
	}
	return nil
}
