package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/msto63/pyanalyzer/internal/report"
	"github.com/spf13/cobra"
)

var (
	analyzeFormat    string
	analyzeNoColor   bool
	analyzeNoHistory bool
	analyzeStrict    bool
)

var analyzeCmd = &cobra.Command{
	Use:     "analyze [datei|-]",
	Aliases: []string{"a", "check"},
	Short:   "Analysiert eine Quelldatei",
	Long: `Analysiert eine Quelldatei und gibt Tokens, Fehler, Symboltabelle,
Parse-Baum und Status aus.

Lexikalische Fehler verhindern das Parsen, Syntaxfehler die Anzeige
des Parse-Baums. Ohne Datei oder mit "-" wird von stdin gelesen.

Beispiele:
  pyan analyze programm.py
  pyan analyze --format json programm.py
  cat programm.py | pyan analyze
  pyan analyze --strict programm.py  # Exit-Code 1 bei Fehlern`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringVarP(&analyzeFormat, "format", "f", "", "Ausgabeformat (text, json, yaml, dot; default aus Config)")
	analyzeCmd.Flags().BoolVar(&analyzeNoColor, "no-color", false, "Farbige Ausgabe abschalten")
	analyzeCmd.Flags().BoolVar(&analyzeNoHistory, "no-history", false, "Lauf nicht in der Historie speichern")
	analyzeCmd.Flags().BoolVar(&analyzeStrict, "strict", false, "Exit-Code 1, wenn Fehler gefunden wurden")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	result, _, err := a.analyze(context.Background(), args, !analyzeNoHistory)
	if err != nil {
		return err
	}

	format := analyzeFormat
	if format == "" {
		format = a.settings.Output.Format
	}
	opts := report.Options{Color: a.settings.Output.Color && !analyzeNoColor}
	if err := report.Write(os.Stdout, format, result, opts); err != nil {
		return err
	}

	if analyzeStrict && result.HasErrors() {
		return fmt.Errorf("%d Fehler gefunden", result.ErrorCount())
	}
	return nil
}
