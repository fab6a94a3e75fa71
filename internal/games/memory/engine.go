package memory

import (
	"context"

	"github.com/looplab/fsm"
)

// Phase is the match engine's position in the pick/compare cycle.
type Phase string

const (
	PhaseIdle      Phase = "idle"       // no picks outstanding
	PhaseOnePicked Phase = "one_picked" // waiting for the second card
	PhaseResolving Phase = "resolving"  // two mismatched cards shown, waiting for ResolveMismatch
	PhaseWon       Phase = "won"        // terminal
)

// Phase machine events.
const (
	eventFirstPick        = "first_pick"
	eventSecondPick       = "second_pick"
	eventMatched          = "matched"
	eventLastMatch        = "last_match"
	eventMismatchResolved = "mismatch_resolved"
)

// Outcome is the result of a single SelectCard call.
type Outcome int

const (
	OutcomeIgnored Outcome = iota
	OutcomeFirstPick
	OutcomeSecondPickMatch
	OutcomeSecondPickMismatch
	OutcomeGameWon
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeIgnored:
		return "Ignored"
	case OutcomeFirstPick:
		return "FirstPick"
	case OutcomeSecondPickMatch:
		return "SecondPickMatch"
	case OutcomeSecondPickMismatch:
		return "SecondPickMismatch"
	case OutcomeGameWon:
		return "GameWon"
	default:
		return "Unknown"
	}
}

// Engine resolves picks against a dealt deck.
// It owns the selection state and match progress for one game.
type Engine struct {
	deck  Deck
	phase *fsm.FSM

	matched  []bool
	revealed []bool
	picks    []int // positions in the current comparison, at most two

	matchesFound     int
	interaction      bool
	firstPicksLocked bool
}

// NewEngine creates an engine for the given deck with interaction enabled.
func NewEngine(deck Deck) *Engine {
	return &Engine{
		deck:        deck,
		phase:       newPhaseMachine(),
		matched:     make([]bool, len(deck)),
		revealed:    make([]bool, len(deck)),
		picks:       make([]int, 0, 2),
		interaction: true,
	}
}

func newPhaseMachine() *fsm.FSM {
	return fsm.NewFSM(
		string(PhaseIdle),
		fsm.Events{
			{Name: eventFirstPick, Src: []string{string(PhaseIdle)}, Dst: string(PhaseOnePicked)},
			{Name: eventSecondPick, Src: []string{string(PhaseOnePicked)}, Dst: string(PhaseResolving)},
			{Name: eventMatched, Src: []string{string(PhaseResolving)}, Dst: string(PhaseIdle)},
			{Name: eventLastMatch, Src: []string{string(PhaseResolving)}, Dst: string(PhaseWon)},
			{Name: eventMismatchResolved, Src: []string{string(PhaseResolving)}, Dst: string(PhaseIdle)},
		},
		fsm.Callbacks{},
	)
}

// fire moves the phase machine. Callers check the phase first, so an error
// here means the engine's own bookkeeping is wrong.
func (e *Engine) fire(event string) error {
	return e.phase.Event(context.Background(), event)
}

// Phase returns the current phase.
func (e *Engine) Phase() Phase {
	return Phase(e.phase.Current())
}

// Deck returns the dealt deck.
func (e *Engine) Deck() Deck {
	return e.deck
}

// Pairs returns the number of pairs needed to win.
func (e *Engine) Pairs() int {
	return e.deck.Pairs()
}

// MatchesFound returns the number of pairs matched so far.
func (e *Engine) MatchesFound() int {
	return e.matchesFound
}

// Won reports whether every pair has been found.
func (e *Engine) Won() bool {
	return e.Phase() == PhaseWon
}

// Picks returns the positions currently in the comparison.
func (e *Engine) Picks() []int {
	return append([]int(nil), e.picks...)
}

// IsMatched reports whether pos belongs to a found pair.
func (e *Engine) IsMatched(pos int) bool {
	return e.inRange(pos) && e.matched[pos]
}

// IsRevealed reports whether the card at pos is face up.
func (e *Engine) IsRevealed(pos int) bool {
	return e.inRange(pos) && e.revealed[pos]
}

// SetInteractionEnabled turns card selection on or off (e.g. while a dialog is open).
func (e *Engine) SetInteractionEnabled(enabled bool) {
	e.interaction = enabled
}

// LockFirstPicks stops the engine from starting new comparisons.
// A comparison already in flight can still complete and resolve.
func (e *Engine) LockFirstPicks() {
	e.firstPicksLocked = true
}

func (e *Engine) inRange(pos int) bool {
	return pos >= 0 && pos < len(e.deck)
}

// CanSelect reports whether SelectCard(pos) would be accepted.
func (e *Engine) CanSelect(pos int) bool {
	if !e.interaction || !e.inRange(pos) || e.matched[pos] {
		return false
	}
	switch e.Phase() {
	case PhaseIdle:
		return !e.firstPicksLocked
	case PhaseOnePicked:
		return pos != e.picks[0]
	default:
		return false
	}
}

// SelectCard turns over the card at pos and resolves the comparison when it
// is the second pick. Selections that are not allowed return OutcomeIgnored
// and leave the engine untouched.
func (e *Engine) SelectCard(pos int) Outcome {
	if !e.CanSelect(pos) {
		return OutcomeIgnored
	}

	if e.Phase() == PhaseIdle {
		if err := e.fire(eventFirstPick); err != nil {
			return OutcomeIgnored
		}
		e.revealed[pos] = true
		e.picks = append(e.picks[:0], pos)
		return OutcomeFirstPick
	}

	if err := e.fire(eventSecondPick); err != nil {
		return OutcomeIgnored
	}
	e.revealed[pos] = true
	e.picks = append(e.picks, pos)

	first := e.picks[0]
	if e.deck[first] != e.deck[pos] {
		return OutcomeSecondPickMismatch
	}

	e.matched[first] = true
	e.matched[pos] = true
	e.matchesFound++
	e.picks = e.picks[:0]

	if e.matchesFound == e.Pairs() {
		//nolint:errcheck // Resolving -> Won is always defined
		e.fire(eventLastMatch)
		return OutcomeGameWon
	}
	//nolint:errcheck // Resolving -> Idle is always defined
	e.fire(eventMatched)
	return OutcomeSecondPickMatch
}

// ResolveMismatch hides the two mismatched cards and returns to Idle.
// It returns the hidden positions, or ok=false when no mismatch is pending.
func (e *Engine) ResolveMismatch() (hidden []int, ok bool) {
	if e.Phase() != PhaseResolving {
		return nil, false
	}
	if err := e.fire(eventMismatchResolved); err != nil {
		return nil, false
	}

	hidden = append(hidden, e.picks...)
	for _, pos := range hidden {
		e.revealed[pos] = false
	}
	e.picks = e.picks[:0]
	return hidden, true
}
