package cmd

import (
	"context"
	"os"
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/msto63/pyanalyzer/foundation/pylang/symtab"
	"github.com/msto63/pyanalyzer/internal/report"
	"github.com/spf13/cobra"
)

var symbolsMatch string

var symbolsCmd = &cobra.Command{
	Use:     "symbols [datei|-]",
	Aliases: []string{"sym"},
	Short:   "Zeigt die Symboltabelle",
	Long: `Zeigt die Symboltabelle mit ID, Bezeichner, Typ und Wert.

Mit --match werden die Bezeichner unscharf gefiltert und nach
Aehnlichkeit sortiert.

Beispiele:
  pyan symbols programm.py
  pyan symbols --match cnt programm.py`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSymbols,
}

func init() {
	rootCmd.AddCommand(symbolsCmd)

	symbolsCmd.Flags().StringVarP(&symbolsMatch, "match", "m", "", "Unscharfer Filter fuer Bezeichner")
}

func runSymbols(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	result, _, err := a.analyze(context.Background(), args, false)
	if err != nil {
		return err
	}

	return report.WriteSymbols(os.Stdout, matchSymbols(result.Symbols.Entries(), symbolsMatch))
}

// matchSymbols keeps the entries whose name fuzzily matches query, best
// match first. An empty query keeps the ID order.
func matchSymbols(entries []symtab.Entry, query string) []symtab.Entry {
	if query == "" {
		return entries
	}

	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	ranks := fuzzy.RankFindFold(query, names)
	sort.Stable(ranks)

	out := make([]symtab.Entry, 0, len(ranks))
	for _, r := range ranks {
		out = append(out, entries[r.OriginalIndex])
	}
	return out
}
