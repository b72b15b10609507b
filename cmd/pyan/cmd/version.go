package cmd

import (
	"fmt"
	"runtime"

	"github.com/msto63/pyanalyzer/pkg/core/version"
	"github.com/spf13/cobra"
)

var (
	Version   = version.Platform
	GitCommit = "development"
	BuildDate = "unknown"
)

var versionComponents bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Zeigt die Version an",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("pyanalyzer v%s\n", Version)
		fmt.Printf("  Git Commit: %s\n", GitCommit)
		fmt.Printf("  Build Date: %s\n", BuildDate)
		fmt.Printf("  Grammatik:  %s\n", version.Grammar)
		fmt.Printf("  Go Version: %s\n", runtime.Version())
		fmt.Printf("  OS/Arch:    %s/%s\n", runtime.GOOS, runtime.GOARCH)
		if versionComponents {
			fmt.Println("  Komponenten:")
			for _, name := range version.Components {
				fmt.Printf("    %-10s %s\n", name, version.ComponentVersion(name))
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)

	versionCmd.Flags().BoolVar(&versionComponents, "components", false, "Versionen der Komponenten anzeigen")
}
