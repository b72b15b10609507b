package main

import (
	"os"

	"github.com/msto63/pyanalyzer/cmd/pyan/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
