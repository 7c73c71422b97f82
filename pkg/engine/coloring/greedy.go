package coloring

import (
	"time"

	"github.com/DrSkyle/spectra/pkg/graph"
)

// Greedy colors nodes in the store's insertion order with no sorting at
// all. It is the baseline: result quality depends entirely on the
// incidental order the generator produced.
type Greedy struct{}

func (a *Greedy) Name() string { return "Greedy" }

func (a *Greedy) Color(g *graph.Graph) Result {
	g.ResetColors()

	start := time.Now()
	for _, n := range g.Nodes() {
		n.Color = graph.SmallestAvailableColor(g.NeighborColors(n.ID))
	}
	elapsed := time.Since(start)

	return Result{Colors: distinctColors(g), Elapsed: elapsed}
}
