package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-memory/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default game configuration",
	Long: `Print the built-in configuration as YAML. Save it to
~/.memory/configs/memory.yaml or ./configs/memory.yaml to customize
catalogs, the guess limit and the mismatch delay.

Examples:
  memory config > ~/.memory/configs/memory.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func runConfig(_ *cobra.Command, _ []string) {
	fmt.Print(string(config.GetDefaultYAML("memory")))
}
