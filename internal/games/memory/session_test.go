package memory

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-memory/internal/core"
)

type recorder struct {
	faceUp      map[int]bool
	sounds      []core.Sound
	messages    []string
	styles      []MessageStyle
	won         int
	lost        int
	interaction []bool
	soundErr    error
}

func newRecorder() *recorder {
	return &recorder{faceUp: make(map[int]bool)}
}

func (r *recorder) RevealCard(pos int) { r.faceUp[pos] = true }
func (r *recorder) HideCard(pos int) { delete(r.faceUp, pos) }
func (r *recorder) AnnounceGameWon() { r.won++ }
func (r *recorder) AnnounceGameLost() { r.lost++ }

func (r *recorder) PlaySound(s core.Sound) error {
	r.sounds = append(r.sounds, s)
	return r.soundErr
}

func (r *recorder) ShowMessage(text string, style MessageStyle) {
	r.messages = append(r.messages, text)
	r.styles = append(r.styles, style)
}

func (r *recorder) SetInteractionEnabled(enabled bool) {
	r.interaction = append(r.interaction, enabled)
}

func (r *recorder) lastMessage() string {
	if len(r.messages) == 0 {
		return ""
	}
	return r.messages[len(r.messages)-1]
}

func newTestSession(t *testing.T, ui *recorder, challenge bool, maxGuesses int, order ...Face) *Session {
	t.Helper()
	s := NewSession(ui, rand.New(rand.NewSource(1)), Settings{SoundEnabled: true, ChallengeMode: challenge})
	if err := s.StartWithDeck(mustDeck(t, order...), challenge, maxGuesses); err != nil {
		t.Fatalf("StartWithDeck error: %v", err)
	}
	return s
}

func TestSessionWinFlow(t *testing.T) {
	ui := newRecorder()
	s := newTestSession(t, ui, false, DefaultMaxGuesses, "A", "B", "A", "B")

	for _, pos := range []int{0, 2, 1} {
		s.SelectCard(pos)
	}
	res := s.SelectCard(3)
	if res.Outcome != OutcomeGameWon {
		t.Fatalf("last pick = %v, want GameWon", res.Outcome)
	}
	if ui.won != 1 {
		t.Errorf("AnnounceGameWon called %d times, want 1", ui.won)
	}
	if ui.lastMessage() != "Play Again?" {
		t.Errorf("last message = %q, want %q", ui.lastMessage(), "Play Again?")
	}
	if len(ui.faceUp) != 4 {
		t.Errorf("%d cards face up, want 4", len(ui.faceUp))
	}

	want := []core.Sound{
		core.SoundClick,
		core.SoundClick, core.SoundMatch,
		core.SoundClick,
		core.SoundClick, core.SoundMatch, core.SoundWin,
	}
	if len(ui.sounds) != len(want) {
		t.Fatalf("sounds = %v, want %v", ui.sounds, want)
	}
	for i := range want {
		if ui.sounds[i] != want[i] {
			t.Errorf("sound %d = %v, want %v", i, ui.sounds[i], want[i])
		}
	}
	if s.Guesses() != 4 {
		t.Errorf("Guesses = %d, want 4", s.Guesses())
	}
}

func TestSessionMismatchResolve(t *testing.T) {
	ui := newRecorder()
	s := newTestSession(t, ui, false, DefaultMaxGuesses, "A", "B", "A", "B")

	s.SelectCard(0)
	res := s.SelectCard(1)
	if res.Outcome != OutcomeSecondPickMismatch {
		t.Fatalf("second pick = %v, want SecondPickMismatch", res.Outcome)
	}
	if !ui.faceUp[0] || !ui.faceUp[1] {
		t.Fatal("mismatched cards should stay face up until resolved")
	}

	if !s.ResolveMismatch(res.Epoch) {
		t.Fatal("ResolveMismatch should hide the pair")
	}
	if len(ui.faceUp) != 0 {
		t.Errorf("face up after resolve = %v, want none", ui.faceUp)
	}
	if got := s.SelectCard(0); got.Outcome != OutcomeFirstPick {
		t.Errorf("re-pick after resolve = %v, want FirstPick", got.Outcome)
	}
}

func TestSessionStaleResolveIgnored(t *testing.T) {
	ui := newRecorder()
	s := newTestSession(t, ui, false, DefaultMaxGuesses, "A", "B", "A", "B")

	s.SelectCard(0)
	stale := s.SelectCard(1).Epoch

	if err := s.StartWithDeck(mustDeck(t, "A", "B", "B", "A"), false, DefaultMaxGuesses); err != nil {
		t.Fatal(err)
	}
	if len(ui.faceUp) != 0 {
		t.Errorf("new game should hide old cards, face up = %v", ui.faceUp)
	}

	s.SelectCard(0)
	if got := s.SelectCard(2).Outcome; got != OutcomeSecondPickMismatch {
		t.Fatalf("second pick = %v", got)
	}
	if s.ResolveMismatch(stale) {
		t.Error("a resolution from the previous game must be ignored")
	}
	if !ui.faceUp[0] || !ui.faceUp[2] {
		t.Error("current mismatch should still be face up")
	}
	if !s.ResolveMismatch(s.Epoch()) {
		t.Error("current epoch should resolve")
	}
}

func TestSessionChallengeLossOnSecondPick(t *testing.T) {
	ui := newRecorder()
	s := newTestSession(t, ui, true, 3, "A", "B", "C", "D", "A", "B", "C", "D")

	s.SelectCard(0)
	epoch := s.SelectCard(1).Epoch
	s.ResolveMismatch(epoch)
	s.SelectCard(2)
	res := s.SelectCard(3)

	if res.Outcome != OutcomeSecondPickMismatch {
		t.Errorf("exceeding second pick = %v, want SecondPickMismatch", res.Outcome)
	}
	if !res.Lost || !res.Budget.Exhausted {
		t.Errorf("result = %+v, want lost and exhausted", res)
	}
	if ui.lost != 1 {
		t.Errorf("AnnounceGameLost called %d times, want 1", ui.lost)
	}

	s.ResolveMismatch(res.Epoch)
	for pos := 0; pos < 8; pos++ {
		if got := s.SelectCard(pos).Outcome; got != OutcomeIgnored {
			t.Errorf("SelectCard(%d) after loss = %v, want Ignored", pos, got)
		}
	}
	if ui.lost != 1 {
		t.Errorf("loss reported %d times, want 1", ui.lost)
	}
	if !s.Lost() {
		t.Error("session should report Lost")
	}
}

func TestSessionChallengeRefusesExceedingFirstPick(t *testing.T) {
	ui := newRecorder()
	s := newTestSession(t, ui, true, 2, "A", "B", "A", "B")

	s.SelectCard(0)
	s.ResolveMismatch(s.SelectCard(1).Epoch)

	res := s.SelectCard(2)
	if res.Outcome != OutcomeIgnored || !res.Lost {
		t.Errorf("exceeding first pick = %+v, want Ignored and lost", res)
	}
	if ui.faceUp[2] {
		t.Error("refused card must stay face down")
	}
	if ui.lost != 1 {
		t.Errorf("AnnounceGameLost called %d times, want 1", ui.lost)
	}
	if ui.lastMessage() != "Out of guesses!" {
		t.Errorf("last message = %q", ui.lastMessage())
	}
}

func TestSessionWinBeatsExhaustion(t *testing.T) {
	ui := newRecorder()
	s := newTestSession(t, ui, true, 1, "A", "A")

	s.SelectCard(0)
	res := s.SelectCard(1)
	if res.Outcome != OutcomeGameWon {
		t.Fatalf("final pick = %v, want GameWon", res.Outcome)
	}
	if res.Lost || s.Lost() {
		t.Error("a win on the exhausting pick must not count as a loss")
	}
	if ui.won != 1 || ui.lost != 0 {
		t.Errorf("won=%d lost=%d, want 1 and 0", ui.won, ui.lost)
	}
}

func TestSessionChallengeOffNeverExhausts(t *testing.T) {
	ui := newRecorder()
	s := newTestSession(t, ui, false, 3, "A", "B", "A", "B")

	for i := 0; i < 500; i++ {
		s.SelectCard(0)
		res := s.SelectCard(1)
		if res.Budget.Exhausted || res.Lost {
			t.Fatalf("iteration %d: budget exhausted with challenge off", i)
		}
		s.ResolveMismatch(res.Epoch)
	}
	if ui.lost != 0 {
		t.Errorf("AnnounceGameLost called %d times", ui.lost)
	}
	if s.Guesses() != 1000 {
		t.Errorf("Guesses = %d, want 1000", s.Guesses())
	}
}

func TestSessionSoundSettings(t *testing.T) {
	ui := newRecorder()
	ui.soundErr = errors.New("no audio device")
	s := newTestSession(t, ui, false, DefaultMaxGuesses, "A", "A")

	if got := s.SelectCard(0).Outcome; got != OutcomeFirstPick {
		t.Fatalf("playback failure must not affect the game, got %v", got)
	}
	if len(ui.sounds) != 1 {
		t.Errorf("sounds = %v, want one click", ui.sounds)
	}

	if !s.ToggleSound() {
		t.Fatal("ToggleSound should apply")
	}
	if got := s.SelectCard(1).Outcome; got != OutcomeGameWon {
		t.Fatalf("final pick = %v", got)
	}
	if len(ui.sounds) != 1 {
		t.Errorf("no sounds expected while muted, got %v", ui.sounds)
	}
}

func TestSessionSettingsViewBlocksSelection(t *testing.T) {
	ui := newRecorder()
	s := newTestSession(t, ui, false, DefaultMaxGuesses, "A", "B", "A", "B")

	s.OpenSettingsView()
	if got := s.SelectCard(0).Outcome; got != OutcomeIgnored {
		t.Errorf("selection with settings open = %v, want Ignored", got)
	}
	if s.ToggleSound() {
		t.Error("ToggleSound must be refused while the view is open")
	}
	s.CancelSettingsView()
	if got := s.SelectCard(0).Outcome; got != OutcomeFirstPick {
		t.Errorf("selection after cancel = %v, want FirstPick", got)
	}

	want := []bool{false, true}
	if len(ui.interaction) != 2 || ui.interaction[0] != want[0] || ui.interaction[1] != want[1] {
		t.Errorf("interaction calls = %v, want %v", ui.interaction, want)
	}
}

func TestSessionCommitSettings(t *testing.T) {
	ui := newRecorder()
	s := newTestSession(t, ui, false, 10, "A", "B", "A", "B")
	s.SelectCard(0)

	if err := s.CommitSettings(DefaultSettings()); !errors.Is(err, ErrViewClosed) {
		t.Errorf("commit with view closed = %v, want ErrViewClosed", err)
	}

	before := s.Epoch()
	s.OpenSettingsView()
	if err := s.CommitSettings(Settings{SoundEnabled: false, ChallengeMode: false}); err != nil {
		t.Fatalf("CommitSettings error: %v", err)
	}
	if s.Epoch() != before {
		t.Error("changing only sound must keep the current game")
	}
	if s.Settings().SoundEnabled {
		t.Error("sound should be off after commit")
	}

	s.OpenSettingsView()
	if err := s.CommitSettings(Settings{SoundEnabled: false, ChallengeMode: true}); err != nil {
		t.Fatalf("CommitSettings error: %v", err)
	}
	if s.Epoch() != before+1 {
		t.Errorf("Epoch = %d, want %d after enabling challenge mode", s.Epoch(), before+1)
	}
	if !s.ChallengeActive() {
		t.Error("new game should run with a guess limit")
	}
	if st := s.Budget(); st.Remaining != 10 {
		t.Errorf("Remaining = %d, want 10", st.Remaining)
	}
	if s.Deck().Len() != 4 {
		t.Errorf("redealt deck has %d cards, want 4", s.Deck().Len())
	}
	if len(ui.faceUp) != 0 {
		t.Errorf("redeal should hide every card, face up = %v", ui.faceUp)
	}
}

func TestSessionStartNewGameValidation(t *testing.T) {
	s := NewSession(nil, rand.New(rand.NewSource(3)), DefaultSettings())

	err := s.StartNewGame([]Face{"A", "B"}, true, 0)
	if !errors.Is(err, ErrInvalidMaxGuesses) {
		t.Errorf("maxGuesses=0 error = %v, want ErrInvalidMaxGuesses", err)
	}
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Errorf("error %v is not a *ConfigError", err)
	}
	if s.Epoch() != 0 {
		t.Error("a rejected game must not be dealt")
	}

	if err := s.StartNewGame(nil, true, 5); !errors.Is(err, ErrNoFaces) {
		t.Errorf("no faces error = %v, want ErrNoFaces", err)
	}

	if err := s.StartNewGame([]Face{"A", "B", "C"}, true, 5); err != nil {
		t.Fatalf("StartNewGame error: %v", err)
	}
	if s.Deck().Len() != 6 || s.Epoch() != 1 {
		t.Errorf("deck len %d epoch %d, want 6 and 1", s.Deck().Len(), s.Epoch())
	}
	if s.Budget().Remaining != 5 {
		t.Errorf("Remaining = %d, want 5", s.Budget().Remaining)
	}
}

func TestSessionBeforeFirstDeal(t *testing.T) {
	s := NewSession(nil, nil, DefaultSettings())
	if got := s.SelectCard(0).Outcome; got != OutcomeIgnored {
		t.Errorf("SelectCard before deal = %v, want Ignored", got)
	}
	if s.ResolveMismatch(0) {
		t.Error("ResolveMismatch before deal should do nothing")
	}
	s.OpenSettingsView()
	if err := s.CommitSettings(Settings{ChallengeMode: false}); err != nil {
		t.Errorf("CommitSettings before deal: %v", err)
	}
}
