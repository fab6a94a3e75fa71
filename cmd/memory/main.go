// memory is a card-matching concentration game for the terminal.
//
// Usage:
//
//	memory list              - List available game modes
//	memory play [mode]       - Play a game (default: memory)
//	memory menu              - Start menu to pick a mode interactively
//	memory serve             - Start SSH server for remote play
//	memory scores <mode>     - Show best results for a mode
//	memory config            - Print the default configuration
//
// Global flags:
//
//	--fps <rate>           - Set tick rate (default: 30)
//	--seed <value>         - Set RNG seed for reproducible deals
//	--db <path>            - Set database path (default: ~/.memory/results.db)
//	--config <path>        - Use a custom game config YAML
//	--difficulty <preset>  - easy, normal or hard
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-memory/internal/games/memory"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
)

// logger reports warnings and errors on stderr, outside the alternate screen.
var logger = log.NewWithOptions(os.Stderr, log.Options{
	Prefix: "memory",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "memory",
	Short: "Memory - Match pairs of cards in your terminal",
	Long: `Memory is a terminal take on the classic concentration game.
Cards are dealt face down; turn two at a time and find every pair.

In challenge mode you only have so many guesses. Zen mode has no limit.

Available commands:
  list     - Show all game modes
  play     - Play a mode directly
  menu     - Interactive mode picker
  serve    - Start SSH server for remote play
  scores   - View best results
  config   - Print the default configuration

Examples:
  memory play
  memory play memory_zen --pairs 8
  memory menu
  memory serve --ssh :2222
  memory scores memory`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.memory/results.db", "Path to results database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}
