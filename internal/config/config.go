// Package config provides YAML-based game configuration loading and
// difficulty presets for the memory game.
package config

import (
	"errors"
	"fmt"
	"sort"
	"time"
)

// MemoryConfig contains all configuration for the memory game.
type MemoryConfig struct {
	Deck     DeckConfig          `yaml:"deck"`
	Catalogs map[string][]string `yaml:"catalogs"` // Named face lists, one entry per pair
	Rules    RulesConfig         `yaml:"rules"`
	Sound    SoundConfig         `yaml:"sound"`
	UI       UIConfig            `yaml:"ui"`
}

// DeckConfig selects which faces are dealt.
type DeckConfig struct {
	Catalog string `yaml:"catalog"`
	Pairs   int    `yaml:"pairs"` // 0 deals the whole catalog
}

// RulesConfig defines the rules a new game starts with.
type RulesConfig struct {
	ChallengeMode   bool `yaml:"challenge_mode"`
	MaxGuesses      int  `yaml:"max_guesses"`
	MismatchDelayMS int  `yaml:"mismatch_delay_ms"`
}

// SoundConfig defines the initial sound setting.
type SoundConfig struct {
	Enabled bool `yaml:"enabled"`
}

// UIConfig defines front end behaviour.
type UIConfig struct {
	SettingsOnStart bool `yaml:"settings_on_start"` // Show the settings dialog before the first deal
}

var (
	ErrUnknownCatalog = errors.New("config: unknown catalog")
	ErrEmptyCatalog   = errors.New("config: catalog has no faces")
	ErrTooManyPairs   = errors.New("config: more pairs than catalog faces")
)

// Validate checks that the configuration can deal a game.
func (c MemoryConfig) Validate() error {
	if c.Rules.MaxGuesses <= 0 {
		return fmt.Errorf("config: rules.max_guesses must be greater than zero, got %d", c.Rules.MaxGuesses)
	}
	if c.Rules.MismatchDelayMS < 0 {
		return fmt.Errorf("config: rules.mismatch_delay_ms must not be negative, got %d", c.Rules.MismatchDelayMS)
	}
	if c.Deck.Pairs < 0 {
		return fmt.Errorf("config: deck.pairs must not be negative, got %d", c.Deck.Pairs)
	}
	for name, faces := range c.Catalogs {
		if len(uniqueFaces(faces)) == 0 {
			return fmt.Errorf("%w: %q", ErrEmptyCatalog, name)
		}
	}
	if _, ok := c.Catalogs[c.Deck.Catalog]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCatalog, c.Deck.Catalog)
	}
	return c.CheckPairs(c.Deck.Catalog, c.Deck.Pairs)
}

// CheckPairs reports whether catalog has at least pairs distinct faces.
// A pair count of zero always fits.
func (c MemoryConfig) CheckPairs(catalog string, pairs int) error {
	raw, ok := c.Catalogs[catalog]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCatalog, catalog)
	}
	if n := len(uniqueFaces(raw)); pairs > n {
		return fmt.Errorf("%w: %q has %d, asked for %d", ErrTooManyPairs, catalog, n, pairs)
	}
	return nil
}

// Faces returns the faces to deal: the selected catalog with blanks and
// repeats dropped, cut down to Deck.Pairs when that is set. A Deck.Pairs
// larger than the catalog deals the whole catalog; callers that must not
// cap check CheckPairs first.
func (c MemoryConfig) Faces() ([]string, error) {
	raw, ok := c.Catalogs[c.Deck.Catalog]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCatalog, c.Deck.Catalog)
	}
	faces := uniqueFaces(raw)
	if len(faces) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrEmptyCatalog, c.Deck.Catalog)
	}
	if c.Deck.Pairs > 0 && c.Deck.Pairs < len(faces) {
		faces = faces[:c.Deck.Pairs]
	}
	return faces, nil
}

// CatalogNames returns the configured catalog names, sorted.
func (c MemoryConfig) CatalogNames() []string {
	names := make([]string, 0, len(c.Catalogs))
	for name := range c.Catalogs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// MismatchDelay returns how long a mismatched pair stays face up.
func (c MemoryConfig) MismatchDelay() time.Duration {
	return time.Duration(c.Rules.MismatchDelayMS) * time.Millisecond
}

func uniqueFaces(raw []string) []string {
	seen := make(map[string]struct{}, len(raw))
	faces := make([]string, 0, len(raw))
	for _, f := range raw {
		if f == "" {
			continue
		}
		if _, dup := seen[f]; dup {
			continue
		}
		seen[f] = struct{}{}
		faces = append(faces, f)
	}
	return faces
}
