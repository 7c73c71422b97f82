package graph

import (
	"errors"
	"testing"
)

func TestAddNodeIdempotent(t *testing.T) {
	g := NewGraph()
	g.AddNode(1, 10.0, 20.0)
	g.AddNode(1, 99.0, 99.0) // Same id, different position: must be ignored.

	if g.NumNodes() != 1 {
		t.Fatalf("expected 1 node, got %d", g.NumNodes())
	}
	n := g.Node(1)
	if n.X != 10.0 || n.Y != 20.0 {
		t.Errorf("re-adding an id must not update position, got (%v, %v)", n.X, n.Y)
	}
}

func TestAddEdgeUnknownNode(t *testing.T) {
	g := NewGraph()
	g.AddNode(1, 0, 0)

	err := g.AddEdge(1, 42)
	if !errors.Is(err, ErrUnknownNode) {
		t.Fatalf("expected ErrUnknownNode, got %v", err)
	}
	if g.NumEdges() != 0 {
		t.Errorf("failed AddEdge must leave the graph unchanged, got %d edges", g.NumEdges())
	}
	if g.Node(1).Degree != 0 {
		t.Errorf("failed AddEdge must not touch degree, got %d", g.Node(1).Degree)
	}
}

func TestNoSelfLoops(t *testing.T) {
	g := NewGraph()
	g.AddNode(7, 0, 0)

	if err := g.AddEdge(7, 7); err != nil {
		t.Fatalf("self-loop must be a silent no-op, got %v", err)
	}
	if g.NumEdges() != 0 {
		t.Errorf("self-loop must not be stored, got %d edges", g.NumEdges())
	}
	if g.Node(7).Adjacent(7) {
		t.Error("node must never be its own neighbor")
	}
}

func TestSymmetricAdjacency(t *testing.T) {
	g := NewGraph()
	for i := 0; i < 3; i++ {
		g.AddNode(i, 0, 0)
	}
	if err := g.AddEdge(0, 1); err != nil {
		t.Fatal(err)
	}
	if err := g.AddEdge(1, 2); err != nil {
		t.Fatal(err)
	}
	// Duplicate, both orientations.
	if err := g.AddEdge(0, 1); err != nil {
		t.Fatal(err)
	}
	if err := g.AddEdge(1, 0); err != nil {
		t.Fatal(err)
	}

	if g.NumEdges() != 2 {
		t.Fatalf("duplicate edges must be no-ops, got %d edges", g.NumEdges())
	}

	for _, e := range g.Edges() {
		u, v := e[0], e[1]
		if !g.Node(u).Adjacent(v) || !g.Node(v).Adjacent(u) {
			t.Errorf("edge {%d,%d} not symmetric in adjacency sets", u, v)
		}
	}

	for _, n := range g.Nodes() {
		if n.Degree != len(n.Neighbors()) {
			t.Errorf("node %d: degree %d != neighbor count %d", n.ID, n.Degree, len(n.Neighbors()))
		}
	}
	if g.Node(1).Degree != 2 {
		t.Errorf("node 1 degree = %d, want 2", g.Node(1).Degree)
	}
}

func TestResetColorsIdempotent(t *testing.T) {
	g := NewGraph()
	g.AddNode(0, 0, 0)
	g.AddNode(1, 0, 0)
	g.Node(0).Color = 3
	g.Node(0).Saturation = 2
	g.Node(1).Color = 0

	g.ResetColors()
	g.ResetColors() // Second call must be harmless.

	for _, n := range g.Nodes() {
		if n.Color != Uncolored {
			t.Errorf("node %d color = %d after reset, want Uncolored", n.ID, n.Color)
		}
		if n.Saturation != 0 {
			t.Errorf("node %d saturation = %d after reset, want 0", n.ID, n.Saturation)
		}
	}
}

func TestNeighborColors(t *testing.T) {
	g := NewGraph()
	for i := 0; i < 4; i++ {
		g.AddNode(i, 0, 0)
	}
	// Star around 0.
	for i := 1; i < 4; i++ {
		if err := g.AddEdge(0, i); err != nil {
			t.Fatal(err)
		}
	}

	g.Node(1).Color = 0
	g.Node(2).Color = 2
	// Node 3 stays uncolored and must be excluded.

	colors := g.NeighborColors(0)
	if len(colors) != 2 {
		t.Fatalf("expected 2 distinct neighbor colors, got %d", len(colors))
	}
	for _, want := range []int{0, 2} {
		if _, ok := colors[want]; !ok {
			t.Errorf("missing neighbor color %d", want)
		}
	}
}

func TestSmallestAvailableColor(t *testing.T) {
	cases := []struct {
		name string
		used []int
		want int
	}{
		{"empty", nil, 0},
		{"gap", []int{0, 1, 3}, 2},
		{"dense", []int{0, 1, 2}, 3},
		{"hole at zero", []int{1, 2, 5}, 0},
	}

	for _, tc := range cases {
		used := make(map[int]struct{}, len(tc.used))
		for _, c := range tc.used {
			used[c] = struct{}{}
		}
		if got := SmallestAvailableColor(used); got != tc.want {
			t.Errorf("%s: SmallestAvailableColor = %d, want %d", tc.name, got, tc.want)
		}
	}
}

func TestInsertionOrderStable(t *testing.T) {
	g := NewGraph()
	ids := []int{5, 3, 9, 1}
	for _, id := range ids {
		g.AddNode(id, 0, 0)
	}

	nodes := g.Nodes()
	for i, n := range nodes {
		if n.ID != ids[i] {
			t.Fatalf("iteration order must match insertion order, got %d at %d", n.ID, i)
		}
	}
}
