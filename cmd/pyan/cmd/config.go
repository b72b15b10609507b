package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/msto63/pyanalyzer/internal/settings"
	"github.com/spf13/cobra"

	mdwconfig "github.com/msto63/pyanalyzer/foundation/core/config"
)

var (
	configWatch bool
	configPaths bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Zeigt die wirksame Konfiguration",
	Long: `Zeigt die wirksame Konfiguration nach Datei, Umgebung
(PYAN_...) und Defaults.

Beispiele:
  pyan config
  pyan config --paths          # Suchpfade der Config-Datei
  pyan config --watch          # Aenderungen live anzeigen
  PYAN_ANALYZER_TAB_WIDTH=4 pyan config`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)

	configCmd.Flags().BoolVarP(&configWatch, "watch", "w", false, "Config-Datei beobachten und Aenderungen anzeigen")
	configCmd.Flags().BoolVar(&configPaths, "paths", false, "Suchpfade der Config-Datei anzeigen")
}

func runConfig(cmd *cobra.Command, args []string) error {
	if configPaths {
		for _, path := range mdwconfig.ListPossibleConfigFiles(mdwconfig.DefaultDiscoveryOptions()) {
			fmt.Println(path)
		}
		return nil
	}

	a, err := newApp()
	if err != nil {
		return err
	}
	fmt.Print(a.settings.String())

	if !configWatch {
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = settings.Watch(ctx, a.config, func(s *settings.Settings) {
		fmt.Println()
		fmt.Println("Konfiguration neu geladen:")
		fmt.Print(s.String())
	}, func(err error) {
		printError("Konfiguration ungueltig", err)
	})
	if err != nil {
		return err
	}
	defer a.config.StopWatching()

	fmt.Println()
	fmt.Printf("Beobachte %s (Ctrl+C zum Beenden)...\n", a.config.FilePath())
	<-ctx.Done()
	return nil
}
