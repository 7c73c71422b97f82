package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/DrSkyle/spectra/pkg/engine"
	"github.com/DrSkyle/spectra/pkg/version"
)

var (
	cfgFile      string
	engineConfig engine.Config
)

var rootCmd = &cobra.Command{
	Use:   "spectra",
	Short: "Radio frequency assignment planner",
	Long: `Spectra - Interference Graph Coloring

Generate. Color. Compare.`,
	Version: version.Current,
	// Run: nil (Forces help output).
	Run: nil,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	// Persistent Flags
	rootCmd.PersistentFlags().StringSliceVar(&engineConfig.Algorithms, "algorithms", nil, "Algorithms to run (default: all)")
	rootCmd.PersistentFlags().BoolVar(&engineConfig.JsonLogs, "json-logs", false, "Emit JSON diagnostics on stderr")
	rootCmd.PersistentFlags().StringVar(&engineConfig.OtelEndpoint, "otel-endpoint", "", "OTLP HTTP endpoint for traces")
	rootCmd.PersistentFlags().MarkHidden("otel-endpoint")

	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		renderHelp(cmd)
	})

	rootCmd.AddCommand(PlanCmd)
	rootCmd.AddCommand(BenchCmd)
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.SetConfigFile(filepath.Join(home, ".spectra.yaml"))
			viper.SetConfigType("yaml")
		}
	}
	viper.AutomaticEnv()
	viper.ReadInConfig()
}

func renderHelp(cmd *cobra.Command) {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#00FF99")).
		MarginBottom(1)

	flagStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#AAAAAA"))

	fmt.Println(titleStyle.Render(fmt.Sprintf("SPECTRA %s", version.Current)))
	fmt.Println("Frequency assignment for interference networks.")

	fmt.Println(titleStyle.Render("USAGE"))
	fmt.Printf("  %s\n\n", cmd.UseLine())

	fmt.Println(titleStyle.Render("COMMANDS"))
	for _, c := range cmd.Commands() {
		if c.IsAvailableCommand() {
			fmt.Printf("  %-12s %s\n", c.Name(), c.Short)
		}
	}
	fmt.Println("")

	fmt.Println(titleStyle.Render("EXAMPLES"))
	fmt.Println("  spectra plan --topology geometric --nodes 100 --radius 250")
	fmt.Println("  spectra plan --topology grid --rows 6 --cols 8 --pick")
	fmt.Println("  spectra bench --suite scenarios.yaml")
	fmt.Println("")

	fmt.Println(titleStyle.Render("FLAGS"))
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if f.Hidden {
			return
		}
		output := fmt.Sprintf("  --%-15s %s", f.Name, f.Usage)
		if f.DefValue != "" && f.DefValue != "false" && f.DefValue != "0" {
			output += fmt.Sprintf(" (default %s)", f.DefValue)
		}
		fmt.Println(flagStyle.Render(output))
	})
	fmt.Println("")
}
