package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	valens "github.com/valens-nlp/valens"
)

func newDisambiguateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "disambiguate <sentence>...",
		Short: "Rank verb readings of a sentence by ambiguity",
		Long: `Tokenizes the sentence on whitespace, analyzes every token, and prints
the successful readings ranked ascending by ambiguity score (least
ambiguous first). Tokens that are not known verbs are discarded.`,
		Example: `  valens disambiguate The system processes the data`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			an := valens.New()
			interpretations, err := an.EliminateAmbiguity(strings.Join(args, " "))
			if err != nil {
				return err
			}
			if outputFlag == "json" {
				return json.NewEncoder(os.Stdout).Encode(interpretations)
			}
			renderInterpretations(interpretations)
			return nil
		},
	}
}

func newRolesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "roles <sentence>...",
		Short: "Assign semantic roles to sentence tokens by position",
		Example: `  valens roles The system processes the data`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			an := valens.New()
			analysis, err := an.AnalyzeRoles(strings.Join(args, " "))
			if err != nil {
				return err
			}
			if outputFlag == "json" {
				return json.NewEncoder(os.Stdout).Encode(analysis)
			}
			fmt.Printf("main verb: %s\n", analysis.Verb)
			for _, role := range valens.Roles() {
				if token, ok := analysis.Roles[role]; ok {
					fmt.Printf("  %-10s %s\n", role, token)
				}
			}
			return nil
		},
	}
}

func renderInterpretations(interpretations []valens.Interpretation) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"#", "Verb", "Valency", "Roles", "Score"})
	for i, in := range interpretations {
		t.AppendRow(table.Row{
			i + 1,
			in.Verb,
			in.Valency,
			joinRoles(in.Roles),
			fmt.Sprintf("%.2f", in.Score),
		})
	}
	t.Render()
}
