// Package export writes the frequency assignment artifact: a UTF-8 JSON
// document consumed by downstream planning tools. Field order is part of
// the format and must not change.
package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/DrSkyle/spectra/pkg/engine/metrics"
	"github.com/DrSkyle/spectra/pkg/graph"
)

// ErrIOFailure indicates the output target could not be written. The
// operation is skipped; no partial file is left behind.
var ErrIOFailure = errors.New("export target unavailable")

// Assignment is one node's slot in the artifact.
type Assignment struct {
	ID        int `json:"id"`
	Frequency int `json:"frequency"`
	Degree    int `json:"degree"`
}

// Artifact is the on-disk export format. Struct order fixes the JSON field
// order: algorithm, chromatic_number, conflicts, nodes, edges, assignments.
type Artifact struct {
	Algorithm       string       `json:"algorithm"`
	ChromaticNumber int          `json:"chromatic_number"`
	Conflicts       int          `json:"conflicts"`
	Nodes           int          `json:"nodes"`
	Edges           int          `json:"edges"`
	Assignments     []Assignment `json:"assignments"`
}

// Build snapshots the graph's current coloring into an artifact. Nodes
// appear in the store's iteration order.
func Build(g *graph.Graph, algorithm string) Artifact {
	art := Artifact{
		Algorithm:       algorithm,
		ChromaticNumber: metrics.ChromaticNumber(g),
		Conflicts:       metrics.CountConflicts(g),
		Nodes:           g.NumNodes(),
		Edges:           g.NumEdges(),
		Assignments:     make([]Assignment, 0, g.NumNodes()),
	}
	for _, n := range g.Nodes() {
		art.Assignments = append(art.Assignments, Assignment{
			ID:        n.ID,
			Frequency: n.Color,
			Degree:    n.Degree,
		})
	}
	return art
}

// WriteFile renders the artifact and writes it to path. Failures wrap
// ErrIOFailure so callers can report and continue.
func WriteFile(art Artifact, path string) error {
	data, err := json.MarshalIndent(art, "", "  ")
	if err != nil {
		return fmt.Errorf("encode artifact: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("%w: %v", ErrIOFailure, err)
	}
	return nil
}

// ReadFile loads an artifact back from disk.
func ReadFile(path string) (Artifact, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Artifact{}, fmt.Errorf("%w: %v", ErrIOFailure, err)
	}
	var art Artifact
	if err := json.Unmarshal(data, &art); err != nil {
		return Artifact{}, fmt.Errorf("decode artifact: %w", err)
	}
	return art, nil
}
