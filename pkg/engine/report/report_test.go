package report

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/DrSkyle/spectra/pkg/engine"
	"github.com/DrSkyle/spectra/pkg/engine/metrics"
	"github.com/DrSkyle/spectra/pkg/topology"
)

func TestComparisonOutput(t *testing.T) {
	e, err := engine.New(context.Background(), engine.WithConfig(engine.Config{
		SkipTelemetry: true,
		Logger:        slog.New(slog.DiscardHandler),
	}))
	if err != nil {
		t.Fatal(err)
	}

	g := topology.CellularGrid(3, 3)
	cmp, err := e.Compare(context.Background(), g)
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	Network(&buf, g)
	Comparison(&buf, cmp)
	out := buf.String()

	for _, want := range []string{"NETWORK", "9 nodes", "Greedy", "Welsh-Powell", "DSATUR", "BEST"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRunOutput(t *testing.T) {
	run := engine.RunResult{
		Algorithm: "DSATUR",
		Elapsed:   1500 * time.Microsecond,
		Summary: metrics.Summary{
			Nodes:           10,
			Edges:           12,
			ChromaticNumber: 3,
			Conflicts:       0,
			Efficiency:      70.0,
		},
	}

	var buf bytes.Buffer
	Run(&buf, run)
	out := buf.String()

	for _, want := range []string{"DSATUR Results", "Chromatic Number: 3", "Efficiency:       70.0%", "Conflicts:        0"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRunOutputEmptyGraph(t *testing.T) {
	run := engine.RunResult{Algorithm: "Greedy", Summary: metrics.Summary{}}

	var buf bytes.Buffer
	Run(&buf, run)

	// Efficiency is undefined for an empty graph and must be suppressed.
	if strings.Contains(buf.String(), "Efficiency") {
		t.Errorf("efficiency printed for empty graph:\n%s", buf.String())
	}
}
