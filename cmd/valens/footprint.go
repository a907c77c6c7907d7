package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	valens "github.com/valens-nlp/valens"
)

func newFootprintCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "footprint",
		Short: "Report the serialized size of the static tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fp := valens.New().MemoryFootprint()
			if outputFlag == "json" {
				return json.NewEncoder(os.Stdout).Encode(fp)
			}
			t := table.NewWriter()
			t.SetOutputMirror(os.Stdout)
			t.AppendHeader(table.Row{"Table", "Bytes", "KB"})
			t.AppendRow(table.Row{"lexicon", fp.LexiconBytes, fmt.Sprintf("%.2f", fp.LexiconKB)})
			t.AppendRow(table.Row{"stemma", fp.StemmaBytes, fmt.Sprintf("%.2f", fp.StemmaKB)})
			t.AppendFooter(table.Row{"total", fp.TotalBytes, fmt.Sprintf("%.2f", fp.TotalKB)})
			t.Render()
			return nil
		},
	}
}
