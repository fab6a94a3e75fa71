// Package memory implements Concentration: a table of face-down cards where
// the player turns over two at a time looking for pairs. Matched pairs stay
// face up; mismatched pairs are turned back after a short delay. An optional
// challenge mode limits how many cards may be turned over.
//
// Session is the entry point for front ends. It combines the deck, the match
// engine, the guess budget and the settings controller, and reports every
// visible effect through a Collaborator.
package memory

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-memory/internal/core"
)

// Result is what a front end learns from one SelectCard call.
type Result struct {
	Outcome Outcome
	Budget  BudgetStatus

	// Lost is set on the selection that exhausted the guess budget.
	Lost bool

	// Epoch identifies the game the selection belonged to. Pass it back to
	// ResolveMismatch after a SecondPickMismatch.
	Epoch uint64
}

// Session runs consecutive games for one player. It is not safe for
// concurrent use; front ends feed it one event at a time.
type Session struct {
	ui       Collaborator
	rng      *rand.Rand
	settings *SettingsController

	faces      []Face
	maxGuesses int
	engine     *Engine
	budget     *Budget
	epoch      uint64
	picks      int
	lost       bool
}

// NewSession creates a session with no game dealt yet. A nil ui is replaced
// by NopCollaborator and a nil rng is seeded from the clock.
func NewSession(ui Collaborator, rng *rand.Rand, initial Settings) *Session {
	if ui == nil {
		ui = NopCollaborator{}
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Session{
		ui:       ui,
		rng:      rng,
		settings: NewSettingsController(initial),
	}
}

// StartNewGame deals a fresh shuffled table. Invalid faces or a
// non-positive maxGuesses are rejected with a *ConfigError and leave the
// current game untouched.
func (s *Session) StartNewGame(faces []Face, challenge bool, maxGuesses int) error {
	if maxGuesses <= 0 {
		return &ConfigError{Field: "max guesses", Err: fmt.Errorf("%w: got %d", ErrInvalidMaxGuesses, maxGuesses)}
	}
	deck, err := GenerateDeck(faces, s.rng)
	if err != nil {
		return err
	}
	s.deal(deck, challenge, maxGuesses)
	return nil
}

// StartWithDeck starts a game on a table laid out in a known order.
func (s *Session) StartWithDeck(deck Deck, challenge bool, maxGuesses int) error {
	if maxGuesses <= 0 {
		return &ConfigError{Field: "max guesses", Err: fmt.Errorf("%w: got %d", ErrInvalidMaxGuesses, maxGuesses)}
	}
	if err := deck.Validate(); err != nil {
		return err
	}
	s.deal(append(Deck(nil), deck...), challenge, maxGuesses)
	return nil
}

// deal replaces every piece of per-game state at once.
func (s *Session) deal(deck Deck, challenge bool, maxGuesses int) {
	if s.engine != nil {
		for pos := range s.engine.Deck() {
			if s.engine.IsRevealed(pos) {
				s.ui.HideCard(pos)
			}
		}
	}

	s.epoch++
	s.faces = deck.Faces()
	s.maxGuesses = maxGuesses
	s.engine = NewEngine(deck)
	s.engine.SetInteractionEnabled(!s.settings.IsOpen())
	s.budget = NewBudget(challenge, maxGuesses)
	s.picks = 0
	s.lost = false

	if challenge {
		s.ui.ShowMessage(fmt.Sprintf("Find %d pairs in %d guesses", deck.Pairs(), maxGuesses), StyleInfo)
	} else {
		s.ui.ShowMessage(fmt.Sprintf("Find %d pairs", deck.Pairs()), StyleInfo)
	}
}

// SelectCard handles a click on the card at pos.
func (s *Session) SelectCard(pos int) Result {
	if s.engine == nil || s.lost || !s.engine.CanSelect(pos) {
		return s.result(OutcomeIgnored)
	}

	firstPick := s.engine.Phase() == PhaseIdle
	status := s.budget.RecordSelectionIfNew(pos)
	if status.Exhausted && firstPick {
		// The card that breaks the budget never starts a new comparison.
		s.declareLoss()
		res := s.result(OutcomeIgnored)
		res.Lost = true
		return res
	}

	outcome := s.engine.SelectCard(pos)
	if outcome == OutcomeIgnored {
		return s.result(outcome)
	}
	s.picks++
	s.ui.RevealCard(pos)
	s.play(core.SoundClick)

	switch outcome {
	case OutcomeFirstPick:
		if !status.Unbounded() && !status.Exhausted {
			s.ui.ShowMessage(fmt.Sprintf("%d guesses left", status.Remaining), StyleInfo)
		}
	case OutcomeSecondPickMatch:
		s.budget.Release(s.lastPair(pos)...)
		s.play(core.SoundMatch)
		s.ui.ShowMessage("It's a match!", StyleSuccess)
	case OutcomeSecondPickMismatch:
		s.ui.ShowMessage("No match", StyleInfo)
	case OutcomeGameWon:
		s.budget.Release(s.lastPair(pos)...)
		s.play(core.SoundMatch)
		s.play(core.SoundWin)
		s.ui.ShowMessage("Play Again?", StyleSuccess)
		s.ui.AnnounceGameWon()
		// A win on the same action beats running out of guesses.
		return s.result(outcome)
	}

	res := s.result(outcome)
	if status.Exhausted {
		s.declareLoss()
		res.Lost = true
	}
	return res
}

// lastPair returns the positions of the pair just matched by the pick at pos.
func (s *Session) lastPair(pos int) []int {
	face := s.engine.Deck().FaceAt(pos)
	pair := make([]int, 0, 2)
	for i, f := range s.engine.Deck() {
		if f == face {
			pair = append(pair, i)
		}
	}
	return pair
}

func (s *Session) declareLoss() {
	s.engine.LockFirstPicks()
	if !s.budget.TakeLossReport() {
		return
	}
	s.lost = true
	s.ui.ShowMessage("Out of guesses!", StyleWarning)
	s.ui.AnnounceGameLost()
}

func (s *Session) result(o Outcome) Result {
	r := Result{Outcome: o, Epoch: s.epoch}
	if s.budget != nil {
		r.Budget = s.budget.Status()
	}
	return r
}

// ResolveMismatch turns a pending mismatched pair face down again.
// A call carrying the epoch of an earlier game does nothing, so a delayed
// callback from an abandoned game cannot touch the current one.
func (s *Session) ResolveMismatch(epoch uint64) bool {
	if s.engine == nil || epoch != s.epoch {
		return false
	}
	hidden, ok := s.engine.ResolveMismatch()
	if !ok {
		return false
	}
	for _, pos := range hidden {
		s.ui.HideCard(pos)
	}
	s.budget.Release(hidden...)
	return true
}

// OpenSettingsView starts editing settings and disables card selection.
func (s *Session) OpenSettingsView() {
	s.settings.OpenView()
	s.setInteraction(false)
}

// SetDraft edits one field of the open settings view.
func (s *Session) SetDraft(f Field, v bool) error {
	return s.settings.SetDraft(f, v)
}

// CommitSettings applies next and closes the settings view. Turning challenge
// mode on or off deals a new game, since the guess budget counts from the deal.
func (s *Session) CommitSettings(next Settings) error {
	if !s.settings.IsOpen() {
		return ErrViewClosed
	}
	prev := s.settings.Committed()
	//nolint:errcheck // both fields are known
	s.settings.SetDraft(FieldSound, next.SoundEnabled)
	//nolint:errcheck // both fields are known
	s.settings.SetDraft(FieldChallengeMode, next.ChallengeMode)
	committed := s.settings.Commit()
	s.setInteraction(true)

	if committed.ChallengeMode != prev.ChallengeMode && s.engine != nil {
		s.deal(s.reshuffle(), committed.ChallengeMode, s.maxGuesses)
	}
	return nil
}

// reshuffle deals the current faces again. The faces were validated when the
// current game was dealt, so this cannot fail.
func (s *Session) reshuffle() Deck {
	deck, err := GenerateDeck(s.faces, s.rng)
	if err != nil {
		return append(Deck(nil), s.engine.Deck()...)
	}
	return deck
}

// CancelSettingsView discards the draft and re-enables card selection.
func (s *Session) CancelSettingsView() {
	s.settings.Cancel()
	s.setInteraction(true)
}

// ToggleSound flips sound immediately. It does nothing while the settings
// view is open; the view has its own sound field.
func (s *Session) ToggleSound() bool {
	return s.settings.ToggleSound()
}

func (s *Session) setInteraction(enabled bool) {
	if s.engine != nil {
		s.engine.SetInteractionEnabled(enabled)
	}
	s.ui.SetInteractionEnabled(enabled)
}

// play asks the front end for a sound. Playback failures never affect the game.
func (s *Session) play(kind core.Sound) {
	if !s.settings.Committed().SoundEnabled {
		return
	}
	//nolint:errcheck // Best-effort playback
	s.ui.PlaySound(kind)
}

// Settings returns the committed settings.
func (s *Session) Settings() Settings {
	return s.settings.Committed()
}

// DraftSettings returns the settings being edited in the open view.
func (s *Session) DraftSettings() Settings {
	return s.settings.Draft()
}

// SettingsOpen reports whether the settings view is open.
func (s *Session) SettingsOpen() bool {
	return s.settings.IsOpen()
}

// Epoch identifies the current game; it changes on every deal.
func (s *Session) Epoch() uint64 {
	return s.epoch
}

// Deck returns the current table, or nil before the first deal.
func (s *Session) Deck() Deck {
	if s.engine == nil {
		return nil
	}
	return s.engine.Deck()
}

// Phase returns the match engine phase.
func (s *Session) Phase() Phase {
	if s.engine == nil {
		return PhaseIdle
	}
	return s.engine.Phase()
}

// MatchesFound returns the number of pairs found in the current game.
func (s *Session) MatchesFound() int {
	if s.engine == nil {
		return 0
	}
	return s.engine.MatchesFound()
}

// Pairs returns the number of pairs on the table.
func (s *Session) Pairs() int {
	if s.engine == nil {
		return 0
	}
	return s.engine.Pairs()
}

// Guesses returns how many cards have been turned over this game.
func (s *Session) Guesses() int {
	return s.picks
}

// Budget returns the guess budget for the current game.
func (s *Session) Budget() BudgetStatus {
	if s.budget == nil {
		return BudgetStatus{Remaining: UnboundedGuesses}
	}
	return s.budget.Status()
}

// ChallengeActive reports whether the current game has a guess limit.
func (s *Session) ChallengeActive() bool {
	return s.budget != nil && s.budget.Enabled()
}

// MaxGuesses returns the guess limit used for the current game.
func (s *Session) MaxGuesses() int {
	return s.maxGuesses
}

// Won reports whether the current game has been won.
func (s *Session) Won() bool {
	return s.engine != nil && s.engine.Won()
}

// Lost reports whether the current game ran out of guesses.
func (s *Session) Lost() bool {
	return s.lost
}

// IsMatched reports whether pos belongs to a found pair.
func (s *Session) IsMatched(pos int) bool {
	return s.engine != nil && s.engine.IsMatched(pos)
}

// IsRevealed reports whether the card at pos is face up.
func (s *Session) IsRevealed(pos int) bool {
	return s.engine != nil && s.engine.IsRevealed(pos)
}

// Picks returns the positions in the current comparison.
func (s *Session) Picks() []int {
	if s.engine == nil {
		return nil
	}
	return s.engine.Picks()
}
