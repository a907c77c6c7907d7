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

func newCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check <word>",
		Short: "Analyze the valency of a single word",
		Example: `  # Analyze a canonical stem
  valens check eat

  # Inflected forms resolve through the stemma
  valens check running

  # JSON output
  valens check eat --output json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			an := valens.New()
			res, err := an.Check(args[0])
			if err != nil {
				return err
			}
			if outputFlag == "json" {
				return json.NewEncoder(os.Stdout).Encode(res)
			}
			fmt.Print(valens.Visualize(res))
			return nil
		},
	}
}

func newBatchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "batch <word>...",
		Short: "Analyze several words concurrently",
		Example: `  valens batch eat running zzz
  valens batch eat give put --output json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			an := valens.New()
			results := an.CheckBatch(args)
			if outputFlag == "json" {
				return json.NewEncoder(os.Stdout).Encode(batchJSON(results))
			}
			renderBatch(results)
			return nil
		},
	}
}

type batchItem struct {
	Word     string                 `json:"word"`
	Analysis *valens.AnalysisResult `json:"analysis,omitempty"`
	Error    string                 `json:"error,omitempty"`
}

func batchJSON(results []valens.BatchResult) []batchItem {
	out := make([]batchItem, 0, len(results))
	for _, r := range results {
		item := batchItem{Word: r.Word, Analysis: r.Analysis}
		if r.Err != nil {
			item.Error = r.Err.Error()
		}
		out = append(out, item)
	}
	return out
}

func renderBatch(results []valens.BatchResult) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Word", "Stem", "Valency", "Required", "Ambiguity", "Error"})
	for _, r := range results {
		if r.Err != nil {
			t.AppendRow(table.Row{r.Word, "", "", "", "", r.Err.Error()})
			continue
		}
		t.AppendRow(table.Row{
			r.Word,
			r.Analysis.Stem,
			r.Analysis.Valency,
			joinRoles(r.Analysis.Required),
			fmt.Sprintf("%.2f", r.Analysis.Ambiguity),
			"",
		})
	}
	t.Render()
}

func joinRoles(roles []valens.SemanticRole) string {
	parts := make([]string, len(roles))
	for i, r := range roles {
		parts[i] = string(r)
	}
	return strings.Join(parts, ", ")
}
