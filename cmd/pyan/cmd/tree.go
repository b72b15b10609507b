package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/msto63/pyanalyzer/foundation/pylang/ast"
	"github.com/msto63/pyanalyzer/internal/report"
	"github.com/msto63/pyanalyzer/internal/settings"
	"github.com/spf13/cobra"
)

var treeFormat string

var treeCmd = &cobra.Command{
	Use:     "tree [datei|-]",
	Aliases: []string{"ast", "parse"},
	Short:   "Zeigt den Parse-Baum",
	Long: `Zeigt den Parse-Baum einer Quelldatei.

Der Baum wird nur ausgegeben, wenn weder lexikalische noch
Syntaxfehler gefunden wurden; sonst werden die Fehler gelistet.

Formate:
  text  - eingerueckte Baumdarstellung
  dot   - Graphviz (pyan tree -f dot x.py | dot -Tsvg > baum.svg)
  json  - Knoten mit Art, Wert, Position und Kindern

Beispiele:
  pyan tree programm.py
  pyan tree --format dot programm.py`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTree,
}

func init() {
	rootCmd.AddCommand(treeCmd)

	treeCmd.Flags().StringVarP(&treeFormat, "format", "f", settings.FormatText, "Ausgabeformat (text, dot, json)")
}

func runTree(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	result, _, err := a.analyze(context.Background(), args, false)
	if err != nil {
		return err
	}

	if !result.TreeVisible() {
		_ = report.Write(os.Stderr, settings.FormatText, result, report.Options{
			Sections: report.SectionDiagnostics | report.SectionStatus,
		})
		return errReported{fmt.Errorf("%s", result.Status())}
	}

	switch treeFormat {
	case settings.FormatText:
		return ast.Fprint(os.Stdout, result.Tree)
	case settings.FormatDOT:
		return report.WriteDOT(os.Stdout, result.Tree)
	case settings.FormatJSON:
		return writeJSON(result.Tree)
	default:
		return fmt.Errorf("unbekanntes Format fuer den Parse-Baum: %s", treeFormat)
	}
}
