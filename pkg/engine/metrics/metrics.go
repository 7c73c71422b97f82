// Package metrics evaluates a coloring. Everything here is read-only over
// the graph store.
package metrics

import "github.com/DrSkyle/spectra/pkg/graph"

// ChromaticNumber counts the distinct colors in use. First-fit always
// produces a consecutive range starting at 0, but nothing here assumes it.
func ChromaticNumber(g *graph.Graph) int {
	colors := make(map[int]struct{})
	for _, n := range g.Nodes() {
		if n.Color != graph.Uncolored {
			colors[n.Color] = struct{}{}
		}
	}
	return len(colors)
}

// CountConflicts counts edges whose endpoints are both colored and share a
// color. A correct coloring has zero; anything else is an algorithm defect.
func CountConflicts(g *graph.Graph) int {
	conflicts := 0
	for _, e := range g.Edges() {
		u, v := g.Node(e[0]), g.Node(e[1])
		if u.Color != graph.Uncolored && v.Color != graph.Uncolored && u.Color == v.Color {
			conflicts++
		}
	}
	return conflicts
}

// Efficiency is the color reuse percentage relative to one color per node:
// (nodes - chromatic) / nodes * 100. Undefined for an empty graph; returns 0.
func Efficiency(g *graph.Graph) float64 {
	n := g.NumNodes()
	if n == 0 {
		return 0
	}
	return float64(n-ChromaticNumber(g)) / float64(n) * 100.0
}

// Summary bundles the evaluation of a single coloring pass for reporting.
type Summary struct {
	Nodes           int
	Edges           int
	ChromaticNumber int
	Conflicts       int
	Efficiency      float64
}

// Summarize evaluates the graph's current coloring.
func Summarize(g *graph.Graph) Summary {
	return Summary{
		Nodes:           g.NumNodes(),
		Edges:           g.NumEdges(),
		ChromaticNumber: ChromaticNumber(g),
		Conflicts:       CountConflicts(g),
		Efficiency:      Efficiency(g),
	}
}
