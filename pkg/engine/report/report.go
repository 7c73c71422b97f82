// Package report renders coloring results for the terminal.
package report

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/DrSkyle/spectra/pkg/engine"
	"github.com/DrSkyle/spectra/pkg/graph"
)

// "Hacker Slate" palette, same as the CLI help.
var (
	subtle    = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#64748B"}
	highlight = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#6366F1"}
	special   = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#10B981"}
	danger    = lipgloss.AdaptiveColor{Light: "#FF0000", Dark: "#F43F5E"}

	titleStyle = lipgloss.NewStyle().Foreground(highlight).Bold(true)
	dimStyle   = lipgloss.NewStyle().Foreground(subtle)
	bestStyle  = lipgloss.NewStyle().Foreground(special).Bold(true)
	failStyle  = lipgloss.NewStyle().Foreground(danger).Bold(true)
)

// Network prints a one-line summary of a generated topology.
func Network(w io.Writer, g *graph.Graph) {
	fmt.Fprintf(w, "%s %d nodes, %d interference links\n",
		titleStyle.Render("NETWORK"), g.NumNodes(), g.NumEdges())
}

// Comparison prints one row per algorithm run plus a winner line.
func Comparison(w io.Writer, cmp *engine.Comparison) {
	fmt.Fprintln(w, titleStyle.Render("ALGORITHM COMPARISON"))
	fmt.Fprintln(w, dimStyle.Render(fmt.Sprintf("  %-14s %8s %10s %11s %12s", "ALGORITHM", "COLORS", "CONFLICTS", "EFFICIENCY", "TIME")))

	for i, run := range cmp.Runs {
		marker := " "
		if i == cmp.Best {
			marker = bestStyle.Render("*")
		}

		conflicts := fmt.Sprintf("%10d", run.Summary.Conflicts)
		if run.Summary.Conflicts > 0 {
			conflicts = failStyle.Render(conflicts)
		}

		efficiency := "         --"
		if run.Summary.Nodes > 0 {
			efficiency = fmt.Sprintf("%10.1f%%", run.Summary.Efficiency)
		}

		fmt.Fprintf(w, "%s %-14s %8d %s %s %12s\n",
			marker, run.Algorithm, run.Summary.ChromaticNumber, conflicts, efficiency, run.Elapsed)
	}

	best := cmp.BestRun()
	fmt.Fprintf(w, "%s %s (%d colors)\n", titleStyle.Render("BEST"), best.Algorithm, best.Summary.ChromaticNumber)
}

// Run prints a single algorithm's result block, printStats style.
func Run(w io.Writer, run engine.RunResult) {
	fmt.Fprintf(w, "\n%s\n", titleStyle.Render(fmt.Sprintf("%s Results", run.Algorithm)))
	fmt.Fprintf(w, "  Nodes:            %d\n", run.Summary.Nodes)
	fmt.Fprintf(w, "  Edges:            %d\n", run.Summary.Edges)
	fmt.Fprintf(w, "  Chromatic Number: %d\n", run.Summary.ChromaticNumber)
	if run.Summary.Conflicts > 0 {
		fmt.Fprintf(w, "  Conflicts:        %s\n", failStyle.Render(fmt.Sprintf("%d", run.Summary.Conflicts)))
	} else {
		fmt.Fprintf(w, "  Conflicts:        0\n")
	}
	if run.Summary.Nodes > 0 {
		fmt.Fprintf(w, "  Efficiency:       %.1f%%\n", run.Summary.Efficiency)
	}
	fmt.Fprintf(w, "  Time:             %s\n", run.Elapsed)
}
