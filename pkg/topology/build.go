package topology

import (
	"fmt"
	"math/rand"

	"github.com/DrSkyle/spectra/pkg/config"
	"github.com/DrSkyle/spectra/pkg/graph"
)

// Build constructs the network described by cfg. Geometric topologies seed
// their own random source from the config, so equal configs produce equal
// graphs.
func Build(cfg config.TopologyConfig) (*graph.Graph, error) {
	if err := cfg.Normalize(); err != nil {
		return nil, err
	}
	switch cfg.Kind {
	case config.KindGeometric:
		rng := rand.New(rand.NewSource(cfg.Seed))
		return RandomGeometric(rng, cfg.Nodes, cfg.Radius, cfg.Width, cfg.Height), nil
	case config.KindGrid:
		return CellularGrid(cfg.Rows, cfg.Cols), nil
	default:
		return nil, fmt.Errorf("unknown topology kind %q", cfg.Kind)
	}
}
