package config

import (
	_ "embed"
)

//go:embed defaults/memory.yaml
var defaultMemoryYAML []byte

// DefaultCatalog is the catalog dealt when none is configured.
const DefaultCatalog = "snes"

// DefaultMemoryConfig returns the default memory game configuration.
func DefaultMemoryConfig() MemoryConfig {
	return MemoryConfig{
		Deck: DeckConfig{
			Catalog: DefaultCatalog,
			Pairs:   0,
		},
		Catalogs: map[string][]string{
			"snes": {
				"RPG", "METRD", "SMW", "CHRNO", "ZELDA", "EARTH",
				"MMX", "DKC", "KART", "ALLST", "DKC2", "YOSHI",
			},
			"letters": {
				"A", "B", "C", "D", "E", "F",
				"G", "H", "I", "J", "K", "L",
			},
			"symbols": {
				"♠", "♥", "♦", "♣", "★", "☀",
				"☂", "♪", "☯", "⚑", "✿", "☾",
			},
		},
		Rules: RulesConfig{
			ChallengeMode:   true,
			MaxGuesses:      50,
			MismatchDelayMS: 1000,
		},
		Sound: SoundConfig{
			Enabled: true,
		},
		UI: UIConfig{
			SettingsOnStart: true,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "memory", "memory_zen":
		return defaultMemoryYAML
	default:
		return nil
	}
}
