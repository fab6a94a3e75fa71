package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-memory/internal/registry"
	"github.com/vovakirdan/tui-memory/internal/storage"
)

var (
	flagRecent bool
	flagClear  bool
	flagResult string
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show best results",
	Long: `Display the 10 best wins for a mode, fewest guesses first, with
win/loss statistics. Without a mode, shows statistics for every mode.

Examples:
  memory scores memory
  memory scores memory_zen
  memory scores --recent
  memory scores --result 6f1c...
  memory scores memory --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "Show the most recent games of every mode")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all results for the mode")
	scoresCmd.Flags().StringVar(&flagResult, "result", "", "Show a single result by ID")
}

func runScores(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening results database: %w", err)
	}
	defer store.Close()

	switch {
	case flagResult != "":
		return showResult(store, flagResult)
	case flagRecent:
		return showRecent(store)
	case len(args) == 0:
		return showAllStats(store)
	}

	gameID := args[0]
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'memory list' to see available modes", gameID)
	}

	if flagClear {
		if err := store.ClearResults(gameID); err != nil {
			return err
		}
		fmt.Printf("Cleared results for %s.\n", gameID)
		return nil
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	results, err := store.BestResults(gameID, 10)
	if err != nil {
		return err
	}

	fmt.Printf("Best Games - %s\n", game.Title())
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("No wins recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'memory play %s' to set the first one!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-7s  %-6s  %-5s  %s\n", "Rank", "Guesses", "Time", "Pairs", "Date")
	fmt.Printf("  %-4s  %-7s  %-6s  %-5s  %s\n", "----", "-------", "----", "-----", "----")
	for i, r := range results {
		fmt.Printf("  %-4d  %-7d  %-6s  %-5d  %s\n",
			i+1, r.Guesses, formatDuration(r.Duration), r.Pairs, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, err := store.GetGameStats(gameID); err == nil {
		fmt.Println()
		printStats(stats)
	}
	return nil
}

func showResult(store *storage.Store, id string) error {
	r, err := store.ResultByID(id)
	if err != nil {
		return err
	}
	if r == nil {
		return fmt.Errorf("no result with ID %q", id)
	}

	outcome := "lost"
	if r.Won {
		outcome = "won"
	}
	limit := "none"
	if r.Challenge {
		limit = fmt.Sprintf("%d", r.MaxGuesses)
	}
	fmt.Printf("Result %s\n\n", r.ResultID)
	fmt.Printf("  Mode:        %s\n", r.GameID)
	fmt.Printf("  Outcome:     %s\n", outcome)
	fmt.Printf("  Pairs:       %d/%d\n", r.Matches, r.Pairs)
	fmt.Printf("  Guesses:     %d (limit %s)\n", r.Guesses, limit)
	fmt.Printf("  Time:        %s\n", formatDuration(r.Duration))
	fmt.Printf("  Played:      %s\n", r.CreatedAt.Format("2006-01-02 15:04"))
	fmt.Printf("  Session:     %s\n", r.SessionID)
	return nil
}

func showRecent(store *storage.Store) error {
	results, err := store.RecentResults(20)
	if err != nil {
		return err
	}
	if len(results) == 0 {
		fmt.Println("No games recorded yet.")
		return nil
	}

	fmt.Println("Recent Games")
	fmt.Println()
	fmt.Printf("  %-12s  %-4s  %-7s  %-6s  %-16s  %s\n", "Mode", "Won", "Guesses", "Time", "Date", "ID")
	for _, r := range results {
		won := "no"
		if r.Won {
			won = "yes"
		}
		fmt.Printf("  %-12s  %-4s  %-7d  %-6s  %-16s  %s\n",
			r.GameID, won, r.Guesses, formatDuration(r.Duration), r.CreatedAt.Format("2006-01-02 15:04"), r.ResultID)
	}
	return nil
}

func showAllStats(store *storage.Store) error {
	all, err := store.GetAllGamesStats()
	if err != nil {
		return err
	}
	if len(all) == 0 {
		fmt.Println("No games recorded yet.")
		return nil
	}

	for _, g := range registry.List() {
		stats, ok := all[g.ID]
		if !ok {
			continue
		}
		fmt.Println(g.Title)
		printStats(stats)
		fmt.Println()
	}
	return nil
}

func printStats(s *storage.GameStats) {
	fmt.Printf("  Played %d, won %d, lost %d (%.0f%% wins)\n", s.GamesCount, s.Wins, s.Losses(), s.WinRate()*100)
	if s.Wins > 0 {
		fmt.Printf("  Best: %d guesses, average %.1f\n", s.BestGuesses, s.AvgGuesses)
	}
	if !s.LastPlayed.IsZero() {
		fmt.Printf("  Last played %s\n", s.LastPlayed.Format("2006-01-02 15:04"))
	}
}

func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	return fmt.Sprintf("%d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}
