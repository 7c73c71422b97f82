// Package topology builds interference graphs from geometric layouts. The
// generators only speak the graph's ingestion interface (AddNode, AddEdge);
// the coloring core never learns how positions or links were derived.
package topology

import (
	"math"
	"math/rand"

	"github.com/DrSkyle/spectra/pkg/graph"
)

// CellSpacing is the distance between adjacent towers in a cellular grid.
const CellSpacing = 100.0

// RandomGeometric places n nodes uniformly in a width x height rectangle
// and links every pair within radius of each other. The caller supplies the
// random source, so a fixed seed reproduces the exact same network.
func RandomGeometric(rng *rand.Rand, n int, radius, width, height float64) *graph.Graph {
	g := graph.NewGraph()

	xs := make([]float64, n)
	ys := make([]float64, n)
	for i := 0; i < n; i++ {
		xs[i] = rng.Float64() * width
		ys[i] = rng.Float64() * height
		g.AddNode(i, xs[i], ys[i])
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if math.Hypot(xs[i]-xs[j], ys[i]-ys[j]) <= radius {
				// Both endpoints exist by construction.
				_ = g.AddEdge(i, j)
			}
		}
	}
	return g
}

// CellularGrid places rows x cols towers on a lattice and links each cell
// to its right and lower neighbors plus both lower diagonals, giving the
// hex-like interference pattern of a cellular layout.
func CellularGrid(rows, cols int) *graph.Graph {
	g := graph.NewGraph()

	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			g.AddNode(i*cols+j, float64(j)*CellSpacing, float64(i)*CellSpacing)
		}
	}

	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			id := i*cols + j
			if j < cols-1 {
				_ = g.AddEdge(id, id+1)
			}
			if i < rows-1 {
				_ = g.AddEdge(id, id+cols)
			}
			if i < rows-1 && j > 0 {
				_ = g.AddEdge(id, id+cols-1)
			}
			if i < rows-1 && j < cols-1 {
				_ = g.AddEdge(id, id+cols+1)
			}
		}
	}
	return g
}
