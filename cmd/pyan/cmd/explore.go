// ============================================================================
// pyanalyzer (pyan) - Analysewerkzeug fuer Python-aehnlichen Quelltext
// ============================================================================
//
// Package:     cmd
// Description: CLI command for the interactive pyan Explorer TUI
// Author:      Mike Stoffels
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package cmd

import (
	"io"
	"os"

	"github.com/msto63/pyanalyzer/internal/tui/explorer"
	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/pyanalyzer/foundation/core/error"
)

var exploreWatch bool

var exploreCmd = &cobra.Command{
	Use:     "explore [datei|-]",
	Aliases: []string{"tui", "x"},
	Short:   "Startet den interaktiven Explorer",
	Long: `Startet den interaktiven pyan Explorer.

Der Explorer zeigt die Analyseergebnisse in einer Terminal-UI an:

  - Tokens und Symboltabelle als Tabellen
  - Parse-Baum und Fehlerliste
  - Unscharfer Filter fuer Tokens und Symbole
  - Automatisches Neuladen mit --watch

Tastenkuerzel:
  1-4 / Tab   Ansicht wechseln
  /           Filter eingeben (Enter uebernehmen, Esc leeren)
  r           Neu analysieren
  Pfeiltasten Navigieren
  q / Ctrl+C  Beenden`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExplore,
}

func init() {
	rootCmd.AddCommand(exploreCmd)

	exploreCmd.Flags().BoolVarP(&exploreWatch, "watch", "w", false, "Datei beobachten und bei Aenderung neu analysieren")
}

func runExplore(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	// log lines would corrupt the alternate screen
	logger := a.logger.WithOutput(io.Discard)

	cfg := explorer.Config{
		Watch:    exploreWatch,
		Analyzer: a.settings.AnalyzerOptions(logger),
		Logger:   logger,
	}
	if len(args) == 0 || args[0] == "-" {
		src, _, err := readSource(args, os.Stdin)
		if err != nil {
			return err
		}
		cfg.Source = src
	} else {
		if _, err := os.Stat(args[0]); err != nil {
			return mdwerror.Wrap(err, "source file not accessible").
				WithCode(mdwerror.CodeNotFound).
				WithDetail("path", args[0])
		}
		cfg.Path = args[0]
	}

	return explorer.Run(cfg)
}
