// Command valens is the command-line front-end for the valency analyzer.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// outputFlag selects text or JSON rendering, shared by all subcommands.
var outputFlag string

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "valens",
		Short: "valens - verb valency analysis",
		Long: `valens analyzes verb valency over small fixed in-memory tables:
it resolves inflected forms to canonical stems, looks up the semantic
arguments a verb requires, extracts coarse semantic roles, and ranks
candidate verb readings by an ambiguity heuristic.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVarP(&outputFlag, "output", "o", "text", "Output format (text|json)")

	rootCmd.AddCommand(
		newCheckCommand(),
		newBatchCommand(),
		newDisambiguateCommand(),
		newRolesCommand(),
		newFootprintCommand(),
	)
	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
