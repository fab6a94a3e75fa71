package main

import (
	"os"

	"golang.org/x/term"

	"github.com/vovakirdan/tui-memory/internal/config"
	"github.com/vovakirdan/tui-memory/internal/core"
	"github.com/vovakirdan/tui-memory/internal/games/memory"
	"github.com/vovakirdan/tui-memory/internal/platform/tui"
	"github.com/vovakirdan/tui-memory/internal/storage"
)

// applyGameFlags checks the config file and hands its path and the
// difficulty to the game package before any game is created. A config
// that does not load or validate stops the command.
func applyGameFlags() (config.MemoryConfig, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.MemoryConfig{}, err
	}
	cfg, err := config.LoadMemory(flagConfig)
	if err != nil {
		return config.MemoryConfig{}, err
	}
	memory.SetConfigPath(flagConfig)
	memory.SetDifficultyPreset(preset)
	return cfg, nil
}

// catalogNames lists the face catalogs of the active config.
func catalogNames() ([]string, error) {
	cfg, err := config.LoadMemory(flagConfig)
	if err != nil {
		return nil, err
	}
	return cfg.CatalogNames(), nil
}

// chooseDeck shows the deck menu and applies the choice.
// Returns false if the player backed out.
func chooseDeck(cfg core.RuntimeConfig) (bool, error) {
	catalogs, err := catalogNames()
	if err != nil {
		return false, err
	}
	selection, err := tui.RunDeckSizeSelector(catalogs, cfg)
	if err != nil {
		return false, err
	}
	if selection == nil {
		return false, nil
	}
	memory.SetPairs(selection.Pairs)
	memory.SetCatalog(selection.Catalog)
	return true, nil
}

// runtimeConfig builds the runtime config from the terminal size and flags.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// openStore opens the results database, or returns nil when it cannot;
// games still work without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open results database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}
