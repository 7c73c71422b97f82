// Package coloring implements the greedy-family frequency assignment
// algorithms. Every algorithm shares one contract: reset all colors on
// entry, leave every node with a non-negative color on exit, and never
// touch the node or edge sets.
package coloring

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/DrSkyle/spectra/pkg/graph"
)

// Result describes one coloring pass. Elapsed covers the pass only, never
// the reset or any I/O around it.
type Result struct {
	Colors  int
	Elapsed time.Duration
}

// Algorithm colors a graph in place.
type Algorithm interface {
	Name() string
	Color(g *graph.Graph) Result
}

var registry = []Algorithm{
	&Greedy{},
	&WelshPowell{},
	&DSATUR{},
}

// All returns every registered algorithm in presentation order.
func All() []Algorithm {
	out := make([]Algorithm, len(registry))
	copy(out, registry)
	return out
}

// ByName resolves an algorithm by case-insensitive name.
func ByName(name string) (Algorithm, error) {
	for _, a := range registry {
		if strings.EqualFold(a.Name(), name) {
			return a, nil
		}
	}
	return nil, fmt.Errorf("unknown algorithm %q (have: %s)", name, strings.Join(Names(), ", "))
}

// Names lists the registered algorithm names.
func Names() []string {
	names := make([]string, len(registry))
	for i, a := range registry {
		names[i] = a.Name()
	}
	return names
}

// distinctColors counts the colors in use across the graph.
func distinctColors(g *graph.Graph) int {
	seen := make(map[int]struct{})
	for _, n := range g.Nodes() {
		if n.Color != graph.Uncolored {
			seen[n.Color] = struct{}{}
		}
	}
	return len(seen)
}

// byDegreeDesc orders ids by descending degree, ties by ascending id.
// The explicit tie-break keeps Welsh-Powell output reproducible.
func byDegreeDesc(g *graph.Graph) []int {
	nodes := g.Nodes()
	ids := make([]int, len(nodes))
	degree := make(map[int]int, len(nodes))
	for i, n := range nodes {
		ids[i] = n.ID
		degree[n.ID] = n.Degree
	}
	sort.Slice(ids, func(i, j int) bool {
		if degree[ids[i]] != degree[ids[j]] {
			return degree[ids[i]] > degree[ids[j]]
		}
		return ids[i] < ids[j]
	})
	return ids
}
