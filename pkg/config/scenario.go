package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario is one named benchmark entry: a topology plus the algorithms to
// compare on it. An empty algorithm list means "all".
type Scenario struct {
	Name       string         `yaml:"name"`
	Topology   TopologyConfig `yaml:"topology"`
	Algorithms []string       `yaml:"algorithms"`
}

// Suite is a scenario file.
type Suite struct {
	Scenarios []Scenario `yaml:"scenarios"`
}

// LoadSuite reads and validates a YAML scenario file.
func LoadSuite(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read suite %s: %w", path, err)
	}

	var suite Suite
	if err := yaml.Unmarshal(data, &suite); err != nil {
		return nil, fmt.Errorf("parse suite %s: %w", path, err)
	}
	if len(suite.Scenarios) == 0 {
		return nil, fmt.Errorf("suite %s defines no scenarios", path)
	}

	for i := range suite.Scenarios {
		s := &suite.Scenarios[i]
		if s.Name == "" {
			return nil, fmt.Errorf("suite %s: scenario %d has no name", path, i)
		}
		if err := s.Topology.Normalize(); err != nil {
			return nil, fmt.Errorf("scenario %q: %w", s.Name, err)
		}
	}
	return &suite, nil
}
