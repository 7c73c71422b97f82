package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/DrSkyle/spectra/pkg/config"
	"github.com/DrSkyle/spectra/pkg/engine"
	"github.com/DrSkyle/spectra/pkg/engine/report"
	"github.com/DrSkyle/spectra/pkg/topology"
)

var benchSuite string

var BenchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Run a YAML scenario suite and compare algorithms per scenario",
	RunE: func(cmd *cobra.Command, args []string) error {
		suite, err := config.LoadSuite(benchSuite)
		if err != nil {
			return err
		}

		eng, err := engine.New(cmd.Context(), engine.WithConfig(engineConfig))
		if err != nil {
			return err
		}

		for _, scenario := range suite.Scenarios {
			g, err := topology.Build(scenario.Topology)
			if err != nil {
				return fmt.Errorf("scenario %q: %w", scenario.Name, err)
			}

			fmt.Printf("\n=== %s ===\n", scenario.Name)
			report.Network(os.Stdout, g)

			// Scenario algorithm lists override the global flag.
			cmp, err := eng.CompareAlgorithms(cmd.Context(), g, scenario.Algorithms)
			if err != nil {
				return fmt.Errorf("scenario %q: %w", scenario.Name, err)
			}
			report.Comparison(os.Stdout, cmp)
		}
		return nil
	},
}

func init() {
	BenchCmd.Flags().StringVar(&benchSuite, "suite", "scenarios.yaml", "Path to the scenario suite")
}
