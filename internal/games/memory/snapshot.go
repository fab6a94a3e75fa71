package memory

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateSettings    GameStateType = "settings"
	StateWon         GameStateType = "won"
	StateLost        GameStateType = "lost"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick     uint64
	Mode     string
	Epoch    uint64
	Deck     []Face
	FaceUp   []bool
	Matched  []bool
	Phase    Phase
	Matches  int
	Guesses  int
	Budget   BudgetStatus
	Cursor   int
	Message  string
	Settings Settings
	State    GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:    g.tick,
		Mode:    string(g.mode),
		Cursor:  g.cursor,
		Message: g.message,
		FaceUp:  append([]bool(nil), g.faceUp...),
		State:   StatePlaying,
	}
	if g.session == nil {
		return snap
	}

	snap.Epoch = g.session.Epoch()
	snap.Deck = append([]Face(nil), g.session.Deck()...)
	snap.Matched = make([]bool, len(snap.Deck))
	for i := range snap.Matched {
		snap.Matched[i] = g.session.IsMatched(i)
	}
	snap.Phase = g.session.Phase()
	snap.Matches = g.session.MatchesFound()
	snap.Guesses = g.session.Guesses()
	snap.Budget = g.session.Budget()
	snap.Settings = g.session.Settings()

	switch {
	case g.tooSmall:
		snap.State = StatePausedSmall
	case g.session.Won():
		snap.State = StateWon
	case g.session.Lost():
		snap.State = StateLost
	case g.session.SettingsOpen():
		snap.State = StateSettings
	}
	return snap
}
