package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/baamageddon/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default game configuration",
	Long: `Prints the built-in YAML configuration. Save it as ~/.baa/configs/baa.yaml
or ./configs/baa.yaml and edit the keys you want to change.

Examples:
  baa config > configs/baa.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func runConfig(_ *cobra.Command, _ []string) {
	if _, err := os.Stdout.Write(config.GetDefaultYAML("baamageddon")); err != nil {
		fail("%v", err)
	}
}
