package memory

import "testing"

func mustDeck(t *testing.T, order ...Face) Deck {
	t.Helper()
	deck, err := DeckFromOrder(order...)
	if err != nil {
		t.Fatalf("DeckFromOrder(%v): %v", order, err)
	}
	return deck
}

func TestEngineMatchScenario(t *testing.T) {
	e := NewEngine(mustDeck(t, "A", "B", "A", "B"))

	steps := []struct {
		pos     int
		want    Outcome
		matches int
		phase   Phase
	}{
		{0, OutcomeFirstPick, 0, PhaseOnePicked},
		{2, OutcomeSecondPickMatch, 1, PhaseIdle},
		{1, OutcomeFirstPick, 1, PhaseOnePicked},
		{3, OutcomeGameWon, 2, PhaseWon},
	}
	for i, s := range steps {
		if got := e.SelectCard(s.pos); got != s.want {
			t.Fatalf("step %d: SelectCard(%d) = %v, want %v", i, s.pos, got, s.want)
		}
		if e.MatchesFound() != s.matches {
			t.Errorf("step %d: MatchesFound = %d, want %d", i, e.MatchesFound(), s.matches)
		}
		if e.Phase() != s.phase {
			t.Errorf("step %d: Phase = %v, want %v", i, e.Phase(), s.phase)
		}
	}
	if !e.Won() {
		t.Error("engine should report Won")
	}
	for pos := 0; pos < 4; pos++ {
		if e.CanSelect(pos) {
			t.Errorf("position %d should not be selectable after the win", pos)
		}
	}
}

func TestEngineMismatchScenario(t *testing.T) {
	e := NewEngine(mustDeck(t, "A", "B", "A", "B"))

	if got := e.SelectCard(0); got != OutcomeFirstPick {
		t.Fatalf("first pick = %v", got)
	}
	if got := e.SelectCard(1); got != OutcomeSecondPickMismatch {
		t.Fatalf("second pick = %v, want SecondPickMismatch", got)
	}
	if e.Phase() != PhaseResolving {
		t.Fatalf("Phase = %v, want resolving", e.Phase())
	}
	if got := e.SelectCard(2); got != OutcomeIgnored {
		t.Errorf("pick while resolving = %v, want Ignored", got)
	}

	hidden, ok := e.ResolveMismatch()
	if !ok {
		t.Fatal("ResolveMismatch should succeed while resolving")
	}
	if len(hidden) != 2 || hidden[0] != 0 || hidden[1] != 1 {
		t.Errorf("hidden = %v, want [0 1]", hidden)
	}
	for _, pos := range []int{0, 1} {
		if e.IsRevealed(pos) || e.IsMatched(pos) {
			t.Errorf("position %d should be hidden and unmatched", pos)
		}
	}

	if got := e.SelectCard(0); got != OutcomeFirstPick {
		t.Errorf("re-selecting position 0 = %v, want FirstPick", got)
	}
}

func TestEngineIgnoredSelections(t *testing.T) {
	e := NewEngine(mustDeck(t, "A", "B", "A", "B"))

	if got := e.SelectCard(-1); got != OutcomeIgnored {
		t.Errorf("negative position = %v, want Ignored", got)
	}
	if got := e.SelectCard(4); got != OutcomeIgnored {
		t.Errorf("position past the end = %v, want Ignored", got)
	}

	e.SelectCard(0)
	for i := 0; i < 3; i++ {
		if got := e.SelectCard(0); got != OutcomeIgnored {
			t.Errorf("same position again = %v, want Ignored", got)
		}
	}
	if e.Phase() != PhaseOnePicked {
		t.Errorf("Phase = %v, want one_picked", e.Phase())
	}

	e.SelectCard(2)
	if got := e.SelectCard(0); got != OutcomeIgnored {
		t.Errorf("matched position = %v, want Ignored", got)
	}
	if got := e.SelectCard(2); got != OutcomeIgnored {
		t.Errorf("matched position = %v, want Ignored", got)
	}
}

func TestEngineInteractionDisabled(t *testing.T) {
	e := NewEngine(mustDeck(t, "A", "A"))
	e.SetInteractionEnabled(false)
	if got := e.SelectCard(0); got != OutcomeIgnored {
		t.Errorf("SelectCard with interaction off = %v, want Ignored", got)
	}
	e.SetInteractionEnabled(true)
	if got := e.SelectCard(0); got != OutcomeFirstPick {
		t.Errorf("SelectCard with interaction on = %v, want FirstPick", got)
	}
}

func TestEngineLockFirstPicks(t *testing.T) {
	e := NewEngine(mustDeck(t, "A", "B", "A", "B"))
	e.SelectCard(0)
	e.LockFirstPicks()

	if got := e.SelectCard(1); got != OutcomeSecondPickMismatch {
		t.Fatalf("second pick after lock = %v, want SecondPickMismatch", got)
	}
	e.ResolveMismatch()
	if got := e.SelectCard(0); got != OutcomeIgnored {
		t.Errorf("first pick after lock = %v, want Ignored", got)
	}
}

func TestEngineResolveMismatchOutsideResolving(t *testing.T) {
	e := NewEngine(mustDeck(t, "A", "B", "A", "B"))
	if _, ok := e.ResolveMismatch(); ok {
		t.Error("ResolveMismatch in idle should do nothing")
	}
	e.SelectCard(0)
	if _, ok := e.ResolveMismatch(); ok {
		t.Error("ResolveMismatch with one pick should do nothing")
	}
	if !e.IsRevealed(0) {
		t.Error("the single pick should stay revealed")
	}
}

// GameWon is returned exactly once, on the move that finds the last pair.
func TestEngineGameWonOnce(t *testing.T) {
	deck := mustDeck(t, "A", "B", "C", "C", "B", "A")
	e := NewEngine(deck)

	wins := 0
	order := []int{0, 1, 0, 5, 1, 4, 2, 3, 2, 3}
	for _, pos := range order {
		if e.Phase() == PhaseResolving {
			e.ResolveMismatch()
		}
		if e.SelectCard(pos) == OutcomeGameWon {
			wins++
		}
	}
	if wins != 1 {
		t.Errorf("GameWon returned %d times, want 1", wins)
	}
	if e.MatchesFound() != deck.Pairs() {
		t.Errorf("MatchesFound = %d, want %d", e.MatchesFound(), deck.Pairs())
	}
}

func TestOutcomeString(t *testing.T) {
	if OutcomeGameWon.String() != "GameWon" {
		t.Errorf("OutcomeGameWon.String() = %q", OutcomeGameWon.String())
	}
	if Outcome(99).String() != "Unknown" {
		t.Errorf("Outcome(99).String() = %q", Outcome(99).String())
	}
}
