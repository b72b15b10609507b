package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/msto63/pyanalyzer/internal/history"
	"github.com/msto63/pyanalyzer/internal/settings"
	"github.com/spf13/cobra"

	mdwstringx "github.com/msto63/pyanalyzer/foundation/utils/stringx"
)

var (
	historyLimit  int
	historySource string
	historyFailed bool
	historySince  time.Duration
	historyFormat string
	historyKeep   int
)

var historyCmd = &cobra.Command{
	Use:     "history",
	Aliases: []string{"hist", "runs"},
	Short:   "Zeigt gespeicherte Analyselaeufe",
	Long: `Zeigt die mit "pyan analyze" gespeicherten Analyselaeufe.

Die Historie liegt in einer SQLite-Datenbank (history.path in der
Config) und kann mit history.enabled = false abgeschaltet werden.

Beispiele:
  pyan history
  pyan history --failed --limit 10
  pyan history show 3f2a
  pyan history stats
  pyan history prune --keep 100`,
	Args: cobra.NoArgs,
	RunE: runHistoryList,
}

var historyShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Zeigt einen Lauf mit seinen Fehlern",
	Long: `Zeigt einen gespeicherten Lauf. Ein eindeutiger Anfang der ID
genuegt.`,
	Args: cobra.ExactArgs(1),
	RunE: runHistoryShow,
}

var historyStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Zeigt Statistiken ueber die Historie",
	Args:  cobra.NoArgs,
	RunE:  runHistoryStats,
}

var historyPruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Loescht alte Laeufe",
	Long: `Loescht alle Laeufe bis auf die neuesten --keep Eintraege
(default: history.keep aus der Config).`,
	Args: cobra.NoArgs,
	RunE: runHistoryPrune,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.AddCommand(historyShowCmd)
	historyCmd.AddCommand(historyStatsCmd)
	historyCmd.AddCommand(historyPruneCmd)

	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Maximale Anzahl der Laeufe")
	historyCmd.Flags().StringVar(&historySource, "source", "", "Nur Laeufe dieser Quelle")
	historyCmd.Flags().BoolVar(&historyFailed, "failed", false, "Nur Laeufe mit Fehlern")
	historyCmd.Flags().DurationVar(&historySince, "since", 0, "Nur Laeufe der letzten Zeitspanne (z.B. 24h)")

	historyShowCmd.Flags().StringVarP(&historyFormat, "format", "f", settings.FormatText, "Ausgabeformat (text, json, yaml)")

	historyPruneCmd.Flags().IntVar(&historyKeep, "keep", -1, "Anzahl der behaltenen Laeufe")
}

// withHistory opens the history store for the duration of fn
func withHistory(fn func(ctx context.Context, a *app, store history.RunStore) error) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	if !a.settings.History.Enabled {
		return fmt.Errorf("die Historie ist abgeschaltet (history.enabled = false)")
	}
	store, err := a.openHistory()
	if err != nil {
		return err
	}
	defer store.Close()

	return fn(context.Background(), a, store)
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	return withHistory(func(ctx context.Context, a *app, store history.RunStore) error {
		filter := history.RunFilter{
			Source:     historySource,
			FailedOnly: historyFailed,
			Limit:      historyLimit,
		}
		if historySince > 0 {
			filter.Since = time.Now().Add(-historySince)
		}

		runs, err := store.List(ctx, filter)
		if err != nil {
			return err
		}
		if len(runs) == 0 {
			fmt.Println("Keine Laeufe gespeichert.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tZEIT\tQUELLE\tTOKENS\tFEHLER\tDAUER")
		for _, r := range runs {
			fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%s\n",
				shortID(r.ID),
				r.Timestamp.Local().Format("2006-01-02 15:04:05"),
				mdwstringx.Truncate(r.Source, 40),
				r.Tokens,
				r.LexicalErrors+r.SyntaxErrors,
				r.Duration.Round(time.Microsecond))
		}
		return w.Flush()
	})
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	return withHistory(func(ctx context.Context, a *app, store history.RunStore) error {
		run, err := store.Get(ctx, args[0])
		switch {
		case errors.Is(err, history.ErrNotFound):
			return fmt.Errorf("kein Lauf mit ID %q gefunden", args[0])
		case errors.Is(err, history.ErrAmbiguous):
			return fmt.Errorf("ID %q ist nicht eindeutig", args[0])
		case err != nil:
			return err
		}

		switch historyFormat {
		case settings.FormatJSON:
			return writeJSON(run)
		case settings.FormatYAML:
			return writeYAML(run)
		}

		fmt.Printf("Lauf:      %s\n", run.ID)
		fmt.Printf("Zeit:      %s\n", run.Timestamp.Local().Format(time.RFC3339))
		fmt.Printf("Quelle:    %s\n", run.Source)
		fmt.Printf("Tokens:    %d\n", run.Tokens)
		fmt.Printf("Symbole:   %d\n", run.Symbols)
		fmt.Printf("Dauer:     %s\n", run.Duration)
		fmt.Printf("Status:    %s\n", run.Status)
		if len(run.Diagnostics) > 0 {
			fmt.Println()
			for _, d := range run.Diagnostics {
				fmt.Println(d.String())
			}
		}
		return nil
	})
}

func runHistoryStats(cmd *cobra.Command, args []string) error {
	return withHistory(func(ctx context.Context, a *app, store history.RunStore) error {
		stats, err := store.Stats(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("Datenbank:     %s\n", a.settings.History.Path)
		fmt.Printf("Laeufe:        %d\n", stats.Total)
		fmt.Printf("Mit Fehlern:   %d\n", stats.Failed)
		fmt.Printf("Quellen:       %d\n", stats.Sources)
		if !stats.Latest.IsZero() {
			fmt.Printf("Letzter Lauf:  %s\n", stats.Latest.Local().Format(time.RFC3339))
		}
		return nil
	})
}

func runHistoryPrune(cmd *cobra.Command, args []string) error {
	return withHistory(func(ctx context.Context, a *app, store history.RunStore) error {
		keep := historyKeep
		if keep < 0 {
			keep = a.settings.History.Keep
		}
		deleted, err := store.Prune(ctx, keep)
		if err != nil {
			return err
		}
		if sqlite, ok := store.(*history.SQLiteRunStore); ok && deleted > 0 {
			if err := sqlite.Vacuum(ctx); err != nil {
				a.logger.WarnWithErr("vacuum failed", err)
			}
		}
		fmt.Printf("%d Laeufe geloescht, %d behalten.\n", deleted, keep)
		return nil
	})
}

// shortID returns the first block of a run ID
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
