package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-memory/internal/config"
)

func withFlags(t *testing.T, cfgPath, difficulty string) {
	t.Helper()
	oldCfg, oldDiff := flagConfig, flagDifficulty
	flagConfig, flagDifficulty = cfgPath, difficulty
	t.Cleanup(func() { flagConfig, flagDifficulty = oldCfg, oldDiff })
}

func TestApplyGameFlagsRejectsBadConfig(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("rules:\n  max_guesses: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	good := filepath.Join(dir, "good.yaml")
	if err := os.WriteFile(good, []byte("deck:\n  catalog: letters\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name       string
		path       string
		difficulty string
		wantErr    bool
	}{
		{name: "valid file", path: good},
		{name: "invalid rules", path: bad, wantErr: true},
		{name: "missing file", path: filepath.Join(dir, "missing.yaml"), wantErr: true},
		{name: "unknown difficulty", path: good, difficulty: "brutal", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withFlags(t, tt.path, tt.difficulty)
			cfg, err := applyGameFlags()
			if (err != nil) != tt.wantErr {
				t.Fatalf("applyGameFlags() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && cfg.Deck.Catalog != "letters" {
				t.Errorf("Deck.Catalog = %q, want letters", cfg.Deck.Catalog)
			}
		})
	}
}

func TestRunPlayRejectsPairsBeyondCatalog(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	withFlags(t, "", "")
	oldPairs, oldCatalog := flagPairs, flagCatalog
	flagPairs, flagCatalog = 13, "letters"
	t.Cleanup(func() { flagPairs, flagCatalog = oldPairs, oldCatalog })

	err := runPlay(playCmd, nil)
	if !errors.Is(err, config.ErrTooManyPairs) {
		t.Errorf("runPlay() error = %v, want ErrTooManyPairs", err)
	}
}
