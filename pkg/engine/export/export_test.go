package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"

	"github.com/DrSkyle/spectra/pkg/engine/coloring"
	"github.com/DrSkyle/spectra/pkg/topology"
)

func TestRoundTrip(t *testing.T) {
	g := topology.CellularGrid(3, 3)
	algo, err := coloring.ByName("dsatur")
	require.NoError(t, err)
	algo.Color(g)

	art := Build(g, algo.Name())
	path := filepath.Join(t.TempDir(), "assignment.json")
	require.NoError(t, WriteFile(art, path))

	got, err := ReadFile(path)
	require.NoError(t, err)

	require.Equal(t, art.Algorithm, got.Algorithm)
	require.Equal(t, art.ChromaticNumber, got.ChromaticNumber)
	require.Equal(t, art.Conflicts, got.Conflicts)
	require.Equal(t, art.Nodes, got.Nodes)
	require.Equal(t, art.Edges, got.Edges)
	require.Equal(t, art.Assignments, got.Assignments, "exact (id, frequency, degree) triples must survive the round trip")
}

func TestWriteFileIOFailure(t *testing.T) {
	g := topology.CellularGrid(2, 2)
	(&coloring.Greedy{}).Color(g)

	path := filepath.Join(t.TempDir(), "missing", "out.json")
	err := WriteFile(Build(g, "Greedy"), path)
	require.ErrorIs(t, err, ErrIOFailure)

	_, statErr := os.Stat(path)
	require.True(t, os.IsNotExist(statErr), "no partial file may be left behind")
}

func TestArtifactGolden(t *testing.T) {
	// 2x2 cellular grid is complete, so Welsh-Powell (ties by ascending id)
	// assigns frequency i to node i. Fully deterministic artifact.
	g := topology.CellularGrid(2, 2)
	algo := &coloring.WelshPowell{}
	algo.Color(g)

	art := Build(g, algo.Name())
	path := filepath.Join(t.TempDir(), "grid.json")
	require.NoError(t, WriteFile(art, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	gld := goldie.New(t)
	gld.Assert(t, "grid_welshpowell", data)
}

func TestBuildIterationOrder(t *testing.T) {
	g := topology.CellularGrid(2, 3)
	(&coloring.Greedy{}).Color(g)

	art := Build(g, "Greedy")
	require.Len(t, art.Assignments, 6)
	for i, a := range art.Assignments {
		require.Equal(t, i, a.ID, "assignments must follow store iteration order")
	}
}
