package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a flag value into a preset. An empty value is normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyHard:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// ApplyMemoryPreset modifies the config based on a difficulty preset.
// Easy allows half again as many guesses and a longer look at mismatches;
// hard takes a third of the guesses away and shortens the look.
func ApplyMemoryPreset(cfg *MemoryConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Rules.MaxGuesses += cfg.Rules.MaxGuesses / 2
		cfg.Rules.MismatchDelayMS += cfg.Rules.MismatchDelayMS / 2
	case DifficultyHard:
		cfg.Rules.MaxGuesses -= cfg.Rules.MaxGuesses / 3
		cfg.Rules.MismatchDelayMS -= cfg.Rules.MismatchDelayMS / 3
	}
	if cfg.Rules.MaxGuesses < 1 {
		cfg.Rules.MaxGuesses = 1
	}
}
