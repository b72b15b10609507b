package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "pyan",
	Short: "pyanalyzer - Analyse von Python-aehnlichem Quelltext",
	Long: `pyanalyzer zerlegt Quelltext in einer eingeschraenkten,
Python-aehnlichen Sprache und zeigt die Ergebnisse der einzelnen
Analysestufen an.

Stufen:
  lexer   - Tokens, Einrueckung (INDENT/DEDENT), Zahlformate
  fold    - Typ- und Wertableitung einfacher Zuweisungen
  parser  - Parse-Baum mit Fehlerbehandlung pro Anweisung

Ausgaben:
  text, json, yaml und dot (Graphviz, nur Parse-Baum)`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil && !isReported(err) {
		fmt.Fprintf(os.Stderr, "Fehler: %v\n", err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config-Datei (default: ./pyan.toml oder ./configs/pyan.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose Output")
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "Fehler: %s: %v\n", msg, err)
}
