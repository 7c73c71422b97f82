// Package graph owns the interference graph: node records, the edge list,
// and the adjacency sets derived from it. Adjacency is always a projection
// of the edge list; nothing mutates neighbor sets except AddEdge.
package graph

import (
	"errors"
	"fmt"
)

// Uncolored marks a node with no frequency assigned.
const Uncolored = -1

// ErrUnknownNode indicates an edge referenced a node id that was never added.
var ErrUnknownNode = errors.New("unknown node")

// Node is a single transmitter in the interference graph.
type Node struct {
	ID         int
	Color      int
	Degree     int
	Saturation int

	// Placement metadata from the generator. Never read by the algorithms.
	X, Y float64

	neighbors map[int]struct{}
}

// Neighbors returns the ids adjacent to the node. Order is unspecified.
func (n *Node) Neighbors() []int {
	ids := make([]int, 0, len(n.neighbors))
	for id := range n.neighbors {
		ids = append(ids, id)
	}
	return ids
}

// Adjacent reports whether id is a neighbor of the node.
func (n *Node) Adjacent(id int) bool {
	_, ok := n.neighbors[id]
	return ok
}

// Graph is an in-memory interference graph. Nodes live in a dense slice
// addressed through an id-to-index map, so iteration order is insertion
// order and stays stable across runs.
//
// The graph is exclusively owned by a single caller for the duration of any
// mutating call. Concurrent mutation is undefined.
type Graph struct {
	nodes []*Node
	idMap map[int]int // node id -> index into nodes
	edges [][2]int
}

func NewGraph() *Graph {
	return &Graph{
		nodes: make([]*Node, 0, 256),
		idMap: make(map[int]int),
	}
}

// AddNode inserts a node with the given id and position. Adding an id that
// already exists is a no-op, not an update.
func (g *Graph) AddNode(id int, x, y float64) {
	if _, ok := g.idMap[id]; ok {
		return
	}
	g.idMap[id] = len(g.nodes)
	g.nodes = append(g.nodes, &Node{
		ID:        id,
		Color:     Uncolored,
		X:         x,
		Y:         y,
		neighbors: make(map[int]struct{}),
	})
}

// AddEdge records the undirected edge {u, v} and updates both adjacency
// sets. Self-loops and duplicate edges are no-ops. Referencing an id that
// was never added fails with ErrUnknownNode; the graph is left unchanged.
func (g *Graph) AddEdge(u, v int) error {
	ui, ok := g.idMap[u]
	if !ok {
		return fmt.Errorf("edge {%d,%d}: %w: %d", u, v, ErrUnknownNode, u)
	}
	vi, ok := g.idMap[v]
	if !ok {
		return fmt.Errorf("edge {%d,%d}: %w: %d", u, v, ErrUnknownNode, v)
	}
	if u == v {
		return nil
	}
	if _, dup := g.nodes[ui].neighbors[v]; dup {
		return nil
	}

	g.edges = append(g.edges, [2]int{u, v})
	g.nodes[ui].neighbors[v] = struct{}{}
	g.nodes[vi].neighbors[u] = struct{}{}
	g.nodes[ui].Degree++
	g.nodes[vi].Degree++
	return nil
}

// Node returns the node with the given id, or nil.
func (g *Graph) Node(id int) *Node {
	idx, ok := g.idMap[id]
	if !ok {
		return nil
	}
	return g.nodes[idx]
}

// Nodes returns all nodes in insertion order.
func (g *Graph) Nodes() []*Node {
	// Return copy.
	result := make([]*Node, len(g.nodes))
	copy(result, g.nodes)
	return result
}

// Edges returns the stored edge list, one entry per undirected pair.
func (g *Graph) Edges() [][2]int {
	result := make([][2]int, len(g.edges))
	copy(result, g.edges)
	return result
}

func (g *Graph) NumNodes() int { return len(g.nodes) }

func (g *Graph) NumEdges() int { return len(g.edges) }

// ResetColors returns every node to the uncolored state with zero
// saturation. Every coloring run starts here so re-runs are idempotent.
func (g *Graph) ResetColors() {
	for _, n := range g.nodes {
		n.Color = Uncolored
		n.Saturation = 0
	}
}

// NeighborColors returns the distinct colors currently assigned among the
// neighbors of id, excluding uncolored. O(degree).
func (g *Graph) NeighborColors(id int) map[int]struct{} {
	colors := make(map[int]struct{})
	n := g.Node(id)
	if n == nil {
		return colors
	}
	for nid := range n.neighbors {
		if c := g.nodes[g.idMap[nid]].Color; c != Uncolored {
			colors[c] = struct{}{}
		}
	}
	return colors
}

// SmallestAvailableColor returns the smallest non-negative integer absent
// from used. This is the first-fit rule shared by all coloring algorithms.
func SmallestAvailableColor(used map[int]struct{}) int {
	color := 0
	for {
		if _, taken := used[color]; !taken {
			return color
		}
		color++
	}
}
