package main

import (
	"os"

	"github.com/celestiaorg/liquidburn/cmd/liquidburn/cmd"
)

func main() {
	rootCmd := cmd.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
