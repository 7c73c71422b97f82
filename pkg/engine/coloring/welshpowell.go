package coloring

import (
	"time"

	"github.com/DrSkyle/spectra/pkg/graph"
)

// WelshPowell colors nodes in descending-degree order (ties by ascending
// id) using first-fit. Coloring the most-constrained nodes first tends to
// use fewer colors than arbitrary order.
type WelshPowell struct{}

func (a *WelshPowell) Name() string { return "Welsh-Powell" }

func (a *WelshPowell) Color(g *graph.Graph) Result {
	g.ResetColors()

	start := time.Now()
	for _, id := range byDegreeDesc(g) {
		g.Node(id).Color = graph.SmallestAvailableColor(g.NeighborColors(id))
	}
	elapsed := time.Since(start)

	return Result{Colors: distinctColors(g), Elapsed: elapsed}
}
