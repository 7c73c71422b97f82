// Package config defines default generation parameters and scenario files.
package config

import "fmt"

// Topology kinds.
const (
	KindGeometric = "geometric"
	KindGrid      = "grid"
)

// TopologyConfig describes how an interference network is generated.
type TopologyConfig struct {
	// Kind selects the generator: "geometric" or "grid".
	Kind string `yaml:"kind"`

	// Geometric parameters.
	Nodes  int     `yaml:"nodes"`
	Radius float64 `yaml:"radius"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Seed   int64   `yaml:"seed"`

	// Grid parameters.
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// Defaults.
const (
	DefaultNodes  = 100
	DefaultRadius = 250.0
	DefaultWidth  = 1000.0
	DefaultHeight = 1000.0
	DefaultSeed   = 1
	DefaultRows   = 8
	DefaultCols   = 8
)

// DefaultGeometric returns the default random geometric network parameters.
func DefaultGeometric() TopologyConfig {
	return TopologyConfig{
		Kind:   KindGeometric,
		Nodes:  DefaultNodes,
		Radius: DefaultRadius,
		Width:  DefaultWidth,
		Height: DefaultHeight,
		Seed:   DefaultSeed,
	}
}

// DefaultGrid returns the default cellular grid parameters.
func DefaultGrid() TopologyConfig {
	return TopologyConfig{
		Kind: KindGrid,
		Rows: DefaultRows,
		Cols: DefaultCols,
	}
}

// Normalize fills zero values with defaults and validates the kind.
func (c *TopologyConfig) Normalize() error {
	switch c.Kind {
	case KindGeometric, "":
		c.Kind = KindGeometric
		if c.Nodes <= 0 {
			c.Nodes = DefaultNodes
		}
		if c.Radius <= 0 {
			c.Radius = DefaultRadius
		}
		if c.Width <= 0 {
			c.Width = DefaultWidth
		}
		if c.Height <= 0 {
			c.Height = DefaultHeight
		}
		if c.Seed == 0 {
			c.Seed = DefaultSeed
		}
	case KindGrid:
		if c.Rows <= 0 {
			c.Rows = DefaultRows
		}
		if c.Cols <= 0 {
			c.Cols = DefaultCols
		}
	default:
		return fmt.Errorf("unknown topology kind %q", c.Kind)
	}
	return nil
}
