package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func win(gameID string, guesses int, d time.Duration) Result {
	return Result{
		GameID:     gameID,
		SessionID:  "s1",
		Won:        true,
		Challenge:  true,
		Pairs:      12,
		Matches:    12,
		Guesses:    guesses,
		MaxGuesses: 50,
		Duration:   d,
	}
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveResult(win("memory", 30, 90*time.Second))
	if err != nil {
		t.Fatalf("SaveResult() failed: %v", err)
	}
	if id <= 0 {
		t.Errorf("SaveResult() id = %d, want > 0", id)
	}

	results, err := store.RecentResults(10)
	if err != nil {
		t.Fatalf("RecentResults() failed: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}

	r := results[0]
	if r.ResultID == "" {
		t.Error("ResultID should be generated on save")
	}
	if !r.Won || !r.Challenge {
		t.Errorf("flags = won %v challenge %v, want true true", r.Won, r.Challenge)
	}
	if r.Guesses != 30 || r.Pairs != 12 || r.Matches != 12 || r.MaxGuesses != 50 {
		t.Errorf("unexpected counts: %+v", r)
	}
	if r.Duration != 90*time.Second {
		t.Errorf("Duration = %v, want 1m30s", r.Duration)
	}
	if r.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}

	byID, err := store.ResultByID(r.ResultID)
	if err != nil {
		t.Fatalf("ResultByID() failed: %v", err)
	}
	if byID == nil || byID.ID != r.ID {
		t.Errorf("ResultByID() = %+v, want id %d", byID, r.ID)
	}

	missing, err := store.ResultByID("no-such-id")
	if err != nil || missing != nil {
		t.Errorf("ResultByID(missing) = %v, %v; want nil, nil", missing, err)
	}
}

func TestStoreBestResultsOrdering(t *testing.T) {
	store := openTestStore(t)

	saves := []Result{
		win("memory", 40, time.Minute),
		win("memory", 28, 2*time.Minute),
		win("memory", 28, time.Minute),
		{GameID: "memory", Won: false, Guesses: 10},
		win("memory_zen", 20, time.Minute),
	}
	for _, r := range saves {
		if _, err := store.SaveResult(r); err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}

	best, err := store.BestResults("memory", 10)
	if err != nil {
		t.Fatalf("BestResults() failed: %v", err)
	}
	if len(best) != 3 {
		t.Fatalf("got %d wins, want 3 (losses and other games excluded)", len(best))
	}

	want := []struct {
		guesses int
		d       time.Duration
	}{
		{28, time.Minute},
		{28, 2 * time.Minute},
		{40, time.Minute},
	}
	for i, w := range want {
		if best[i].Guesses != w.guesses || best[i].Duration != w.d {
			t.Errorf("best[%d] = %d guesses in %v, want %d in %v", i, best[i].Guesses, best[i].Duration, w.guesses, w.d)
		}
	}

	top1, err := store.BestResults("memory", 1)
	if err != nil {
		t.Fatalf("BestResults(limit 1) failed: %v", err)
	}
	if len(top1) != 1 {
		t.Errorf("limit 1 returned %d rows", len(top1))
	}
}

func TestStoreRecentAndSessionResults(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		r := win("memory", 20+i, time.Minute)
		if i%2 == 1 {
			r.SessionID = "s2"
		}
		if _, err := store.SaveResult(r); err != nil {
			t.Fatal(err)
		}
	}

	recent, err := store.RecentResults(2)
	if err != nil {
		t.Fatalf("RecentResults() failed: %v", err)
	}
	if len(recent) != 2 || recent[0].Guesses != 24 || recent[1].Guesses != 23 {
		t.Errorf("RecentResults(2) = %+v, want the last two saves newest first", recent)
	}

	s2, err := store.SessionResults("s2")
	if err != nil {
		t.Fatalf("SessionResults() failed: %v", err)
	}
	if len(s2) != 2 || s2[0].Guesses != 21 || s2[1].Guesses != 23 {
		t.Errorf("SessionResults(s2) = %+v", s2)
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("memory")
	if err != nil {
		t.Fatalf("GetGameStats() on empty store failed: %v", err)
	}
	if empty.GamesCount != 0 || empty.BestGuesses != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	for _, r := range []Result{
		win("memory", 30, time.Minute),
		win("memory", 20, time.Minute),
		{GameID: "memory", Won: false, Challenge: true, Guesses: 51, MaxGuesses: 50},
	} {
		if _, err := store.SaveResult(r); err != nil {
			t.Fatal(err)
		}
	}

	stats, err := store.GetGameStats("memory")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 3 || stats.Wins != 2 || stats.Losses() != 1 {
		t.Errorf("counts = %+v", stats)
	}
	if stats.BestGuesses != 20 {
		t.Errorf("BestGuesses = %d, want 20", stats.BestGuesses)
	}
	if stats.AvgGuesses != 25 {
		t.Errorf("AvgGuesses = %v, want 25", stats.AvgGuesses)
	}
	if got := stats.WinRate(); got < 0.66 || got > 0.67 {
		t.Errorf("WinRate = %v, want 2/3", got)
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if all["memory"] == nil || all["memory"].Wins != 2 {
		t.Errorf("GetAllGamesStats()[memory] = %+v", all["memory"])
	}
}

func TestStoreClearResults(t *testing.T) {
	store := openTestStore(t)

	store.SaveResult(win("memory", 30, time.Minute))     //nolint:errcheck
	store.SaveResult(win("memory_zen", 30, time.Minute)) //nolint:errcheck

	if err := store.ClearResults("memory"); err != nil {
		t.Fatalf("ClearResults() failed: %v", err)
	}

	best, _ := store.BestResults("memory", 10)
	if len(best) != 0 {
		t.Errorf("memory should have no results, got %d", len(best))
	}
	zen, _ := store.BestResults("memory_zen", 10)
	if len(zen) != 1 {
		t.Errorf("memory_zen should keep its result, got %d", len(zen))
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestParseTime(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC)
	if got := parseTime(now); !got.Equal(now) {
		t.Errorf("parseTime(time.Time) = %v", got)
	}
	if got := parseTime("2024-05-01 12:30:00"); !got.Equal(now) {
		t.Errorf("parseTime(string) = %v", got)
	}
	if got := parseTime(42); !got.IsZero() {
		t.Errorf("parseTime(int) = %v, want zero", got)
	}
}
