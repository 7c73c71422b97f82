package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/DrSkyle/spectra/pkg/config"
	"github.com/DrSkyle/spectra/pkg/engine"
	"github.com/DrSkyle/spectra/pkg/engine/export"
	"github.com/DrSkyle/spectra/pkg/engine/report"
	"github.com/DrSkyle/spectra/pkg/graph"
	"github.com/DrSkyle/spectra/pkg/topology"
)

var (
	planTopology config.TopologyConfig
	planOut      string
	planPick     bool
	planNoExport bool
)

var PlanCmd = &cobra.Command{
	Use:   "plan",
	Short: "Generate a network, compare algorithms, export the best assignment",
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := engine.New(cmd.Context(), engine.WithConfig(engineConfig))
		if err != nil {
			return err
		}

		g, err := topology.Build(planTopology)
		if err != nil {
			return err
		}
		report.Network(os.Stdout, g)

		if planPick {
			choice, err := PromptForAlgorithm()
			if err != nil {
				return err
			}
			run, err := eng.Apply(cmd.Context(), g, choice)
			if err != nil {
				return err
			}
			report.Run(os.Stdout, run)
			exportAssignment(eng, g, run.Algorithm)
			return nil
		}

		cmp, err := eng.Compare(cmd.Context(), g)
		if err != nil {
			return err
		}
		report.Comparison(os.Stdout, cmp)

		// Re-apply the winner so the graph holds its assignment, then export.
		best := cmp.BestRun()
		if _, err := eng.Apply(cmd.Context(), g, best.Algorithm); err != nil {
			return err
		}
		exportAssignment(eng, g, best.Algorithm)
		return nil
	},
}

// exportAssignment writes the artifact. An unwritable target is reported
// and skipped, never fatal.
func exportAssignment(eng *engine.Engine, g *graph.Graph, algorithm string) {
	if planNoExport {
		return
	}
	art := export.Build(g, algorithm)
	if err := export.WriteFile(art, planOut); err != nil {
		eng.Logger.Warn("export skipped", "path", planOut, "error", err)
		return
	}
	fmt.Printf("Exported %s assignment to %s\n", algorithm, planOut)
}

func init() {
	PlanCmd.Flags().StringVar(&planTopology.Kind, "topology", config.KindGeometric, "Topology kind: geometric or grid")
	PlanCmd.Flags().IntVar(&planTopology.Nodes, "nodes", config.DefaultNodes, "Node count (geometric)")
	PlanCmd.Flags().Float64Var(&planTopology.Radius, "radius", config.DefaultRadius, "Interference radius (geometric)")
	PlanCmd.Flags().Float64Var(&planTopology.Width, "width", config.DefaultWidth, "Area width (geometric)")
	PlanCmd.Flags().Float64Var(&planTopology.Height, "height", config.DefaultHeight, "Area height (geometric)")
	PlanCmd.Flags().Int64Var(&planTopology.Seed, "seed", config.DefaultSeed, "Random seed (geometric)")
	PlanCmd.Flags().IntVar(&planTopology.Rows, "rows", config.DefaultRows, "Grid rows")
	PlanCmd.Flags().IntVar(&planTopology.Cols, "cols", config.DefaultCols, "Grid columns")
	PlanCmd.Flags().StringVar(&planOut, "out", "frequency_assignment.json", "Export path for the assignment artifact")
	PlanCmd.Flags().BoolVar(&planPick, "pick", false, "Pick the algorithm interactively")
	PlanCmd.Flags().BoolVar(&planNoExport, "no-export", false, "Skip writing the artifact")
}
