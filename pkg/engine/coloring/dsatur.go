package coloring

import (
	"time"

	"github.com/DrSkyle/spectra/pkg/graph"
)

// DSATUR colors the most color-constrained node next: highest saturation
// first, ties by highest degree, remaining ties by ascending id. On an
// empty coloring every saturation is zero, so the first pick is simply the
// highest-degree node and first-fit hands it color 0.
//
// Saturation is always the exact count of distinct colors among a node's
// neighbors. After each assignment it is recomputed for the affected
// uncolored neighbors only; no incremental counter that could drift.
type DSATUR struct{}

func (a *DSATUR) Name() string { return "DSATUR" }

func (a *DSATUR) Color(g *graph.Graph) Result {
	g.ResetColors()

	start := time.Now()
	uncolored := make(map[int]*graph.Node, g.NumNodes())
	for _, n := range g.Nodes() {
		uncolored[n.ID] = n
	}

	for len(uncolored) > 0 {
		n := selectNext(uncolored)
		n.Color = graph.SmallestAvailableColor(g.NeighborColors(n.ID))
		delete(uncolored, n.ID)

		for _, nid := range n.Neighbors() {
			if nb, ok := uncolored[nid]; ok {
				nb.Saturation = len(g.NeighborColors(nid))
			}
		}
	}
	elapsed := time.Since(start)

	return Result{Colors: distinctColors(g), Elapsed: elapsed}
}

// selectNext applies the saturation/degree/id ordering. The comparator is
// total, so the winner is independent of map iteration order.
func selectNext(uncolored map[int]*graph.Node) *graph.Node {
	var best *graph.Node
	for _, n := range uncolored {
		if best == nil || better(n, best) {
			best = n
		}
	}
	return best
}

func better(a, b *graph.Node) bool {
	if a.Saturation != b.Saturation {
		return a.Saturation > b.Saturation
	}
	if a.Degree != b.Degree {
		return a.Degree > b.Degree
	}
	return a.ID < b.ID
}
