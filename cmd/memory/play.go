package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-memory/internal/games/memory"
	"github.com/vovakirdan/tui-memory/internal/platform/tui"
	"github.com/vovakirdan/tui-memory/internal/registry"
)

var (
	flagPairs   int
	flagCatalog string
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a game",
	Long: `Start playing the specified mode (memory or memory_zen).

Without --pairs a deck menu asks how many pairs to deal.

Controls:
  Arrows/hjkl/wasd  - Move the cursor
  Space/Enter/Click - Turn the card over
  O                 - Settings (sound, challenge mode)
  M                 - Sound on/off
  N                 - Deal a new table
  R                 - Play again (after the game ends)
  Esc/B             - Back (after the game ends)
  Q/Ctrl+C          - Quit

Difficulty options:
  easy   - Half again as many guesses, longer look at mismatches
  normal - Guesses and delay as configured
  hard   - A third fewer guesses, shorter look at mismatches

Examples:
  memory play
  memory play memory_zen
  memory play --pairs 6 --catalog letters
  memory play --difficulty hard
  memory play --config ./my-memory.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagPairs, "pairs", 0, "Pairs to deal (skips the deck menu)")
	playCmd.Flags().StringVar(&flagCatalog, "catalog", "", "Face catalog to deal from")
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := "memory"
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'memory list' to see available modes", gameID)
	}
	if flagPairs < 0 {
		return fmt.Errorf("--pairs must not be negative, got %d", flagPairs)
	}
	gameCfg, err := applyGameFlags()
	if err != nil {
		return err
	}
	catalog := gameCfg.Deck.Catalog
	if flagCatalog != "" {
		catalog = flagCatalog
	}
	if err := gameCfg.CheckPairs(catalog, flagPairs); err != nil {
		return fmt.Errorf("--pairs %d --catalog %s: %w", flagPairs, catalog, err)
	}

	cfg := runtimeConfig()

	if flagPairs > 0 {
		memory.SetPairs(flagPairs)
		memory.SetCatalog(flagCatalog)
	} else {
		ok, err := chooseDeck(cfg)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		if flagCatalog != "" {
			memory.SetCatalog(flagCatalog)
		}
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	sessionID := uuid.NewString()
	logger.Debug("starting game", "game", gameID, "session", sessionID)

	if _, err := tui.Run(game, store, cfg, sessionID); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
