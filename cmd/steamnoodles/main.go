// Command steamnoodles demonstrates the SteamNoodles feedback and
// visualization agents.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
)

var version = "dev"

var noColor bool

var rootCmd = &cobra.Command{
	Use:     "steamnoodles",
	Short:   "SteamNoodles customer feedback agents",
	Version: version,
	Long: `SteamNoodles customer feedback agents.

Routes customer reviews through an LLM to classify sentiment and draft
replies, and renders time-windowed sentiment charts from the reviews CSV
via a tool-selecting agent.

Run without a subcommand for the full demo, or:
  steamnoodles feedback      feedback-agent demo
  steamnoodles viz           visualization-agent demo
  steamnoodles interactive   menu-driven manual testing
  steamnoodles generate      regenerate the sample dataset`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{NoColor: noColor})))
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runFullDemo(cmd.Context())
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(feedbackCmd)
	rootCmd.AddCommand(vizCmd)
	rootCmd.AddCommand(interactiveCmd)
	rootCmd.AddCommand(generateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
