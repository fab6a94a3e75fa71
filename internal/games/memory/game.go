package memory

import (
	"fmt"
	"math"
	"math/rand"
	"time"
	"unicode/utf8"

	"github.com/vovakirdan/tui-memory/internal/config"
	"github.com/vovakirdan/tui-memory/internal/core"
	"github.com/vovakirdan/tui-memory/internal/registry"
)

// Mode represents the game variant.
type Mode string

const (
	ModeClassic Mode = "classic" // challenge mode from config
	ModeZen     Mode = "zen"     // starts without a guess limit
)

type banner int

const (
	bannerNone banner = iota
	bannerWon
	bannerLost
)

// pendingMismatch counts down the ticks until a mismatched pair is hidden.
type pendingMismatch struct {
	epoch uint64
	ticks int
}

// Game adapts a Session to the platform's tick-driven Game interface and
// plays the Collaborator role for it.
type Game struct {
	mode     Mode
	rng      *rand.Rand
	tick     uint64
	tickRate int

	cfg     config.MemoryConfig
	session *Session
	dealt   bool // a Session has been created at least once

	// Screen dimensions
	screenW  int
	screenH  int
	layout   core.GridLayout
	tooSmall bool

	// Collaborator view of the table
	faceUp       []bool
	message      string
	messageStyle MessageStyle
	banner       banner
	interaction  bool
	sounds       []core.Sound

	cursor        int
	settingsField Field
	pending       *pendingMismatch
	viewEpoch     uint64 // session epoch the view was built for
	configErr     error  // set when Reset could not load the config
}

// Package-level variables for config
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	selectedPairs    int
	selectedCatalog  string
)

// SetConfigPath sets a custom config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset applied on the next Reset.
func SetDifficultyPreset(preset config.DifficultyPreset) {
	difficultyPreset = preset
}

// SetPairs overrides how many pairs are dealt. 0 uses the configured value.
func SetPairs(n int) {
	selectedPairs = n
}

// SetCatalog overrides which face catalog is dealt. Empty uses the configured one.
func SetCatalog(name string) {
	selectedCatalog = name
}

// New creates a memory game whose challenge mode comes from config.
func New() *Game {
	return &Game{mode: ModeClassic}
}

// NewZen creates a memory game that starts without a guess limit.
func NewZen() *Game {
	return &Game{mode: ModeZen}
}

func init() {
	registry.Register("memory", func() registry.Game {
		return New()
	})
	registry.Register("memory_zen", func() registry.Game {
		return NewZen()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeZen {
		return "memory_zen"
	}
	return "memory"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeZen {
		return "Memory (Zen)"
	}
	return "Memory"
}

// Reset deals a new game. Committed settings carry over from the previous
// game; the settings dialog is only shown before the very first deal.
// A config that fails to load leaves the table empty with the error shown.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = core.DefaultConfig().TickRate
	}
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH

	g.faceUp = nil
	g.banner = bannerNone
	g.message = ""
	g.sounds = nil
	g.pending = nil
	g.cursor = 0
	g.settingsField = FieldSound
	g.interaction = true
	g.configErr = nil

	if err := g.loadConfig(); err != nil {
		g.configErr = err
		g.session = nil
		g.tooSmall = false
		g.ShowMessage(err.Error(), StyleWarning)
		return
	}

	initial := Settings{
		SoundEnabled:  g.cfg.Sound.Enabled,
		ChallengeMode: g.cfg.Rules.ChallengeMode && g.mode != ModeZen,
	}
	if g.session != nil {
		initial = g.session.Settings()
	}

	g.session = NewSession(g, g.rng, initial)
	g.deal()

	if !g.dealt && g.cfg.UI.SettingsOnStart {
		g.session.OpenSettingsView()
	}
	g.dealt = true
}

// ConfigErr returns why the last Reset could not deal, or nil.
func (g *Game) ConfigErr() error {
	return g.configErr
}

// loadConfig applies the config file, difficulty preset and overrides.
func (g *Game) loadConfig() error {
	cfg, err := config.LoadMemory(configPath)
	if err != nil {
		return err
	}
	if difficultyPreset != "" {
		config.ApplyMemoryPreset(&cfg, difficultyPreset)
	}
	if selectedCatalog != "" {
		if _, ok := cfg.Catalogs[selectedCatalog]; !ok {
			return fmt.Errorf("%w: %q", config.ErrUnknownCatalog, selectedCatalog)
		}
		cfg.Deck.Catalog = selectedCatalog
	}
	if selectedPairs > 0 {
		cfg.Deck.Pairs = selectedPairs
	}
	g.cfg = cfg
	return nil
}

// deal starts a new game in the session with the current settings.
func (g *Game) deal() {
	names, err := g.cfg.Faces()
	if err != nil {
		g.ShowMessage(err.Error(), StyleWarning)
		return
	}
	faces := make([]Face, len(names))
	for i, n := range names {
		faces[i] = Face(n)
	}

	if err := g.session.StartNewGame(faces, g.session.Settings().ChallengeMode, g.cfg.Rules.MaxGuesses); err != nil {
		g.ShowMessage(err.Error(), StyleWarning)
		return
	}
	g.onNewDeal()

	if err := g.cfg.CheckPairs(g.cfg.Deck.Catalog, g.cfg.Deck.Pairs); err != nil {
		g.ShowMessage(fmt.Sprintf("Only %d faces in %s, dealt %d pairs", len(names), g.cfg.Deck.Catalog, len(names)), StyleWarning)
	}
}

// onNewDeal resets the per-table view after the session dealt.
func (g *Game) onNewDeal() {
	g.faceUp = make([]bool, g.session.Deck().Len())
	g.viewEpoch = g.session.Epoch()
	g.banner = bannerNone
	g.pending = nil
	g.cursor = 0
	g.updateLayout()
}

// Resize follows a terminal resize without dealing again.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	g.updateLayout()
}

// delayTicks converts the configured mismatch delay into ticks.
func (g *Game) delayTicks() int {
	ticks := int(g.cfg.MismatchDelay() * time.Duration(g.tickRate) / time.Second)
	if ticks < 1 {
		ticks = 1
	}
	return ticks
}

// updateLayout sizes and centres the card grid for the current screen.
func (g *Game) updateLayout() {
	n := len(g.faceUp)
	if n == 0 {
		g.tooSmall = false
		return
	}

	cols := gridColumns(n)
	rows := (n + cols - 1) / cols

	cellW := 7
	for _, f := range g.session.Deck().Faces() {
		if w := utf8.RuneCountInString(string(f)) + 4; w > cellW {
			cellW = w
		}
	}

	layout := core.GridLayout{Cols: cols, Rows: rows, CellW: cellW, CellH: 3, Gap: 1}
	bounds := layout.Bounds()
	layout.Origin = core.Point{
		X: (g.screenW - bounds.W) / 2,
		Y: hudHeight + (g.screenH-hudHeight-footerHeight-bounds.H)/2,
	}
	if layout.Origin.Y < hudHeight {
		layout.Origin.Y = hudHeight
	}
	g.layout = layout

	g.tooSmall = bounds.W+2 > g.screenW || bounds.H+hudHeight+footerHeight > g.screenH ||
		g.screenW < settingsBoxW+2
}

// gridColumns picks the narrowest column count, no narrower than square,
// that fills every row. Counts with no such divisor get a ragged last row.
func gridColumns(n int) int {
	square := int(math.Ceil(math.Sqrt(float64(n))))
	for c := square; c <= maxColumns; c++ {
		if n%c == 0 {
			return c
		}
	}
	return core.Clamp(square, 1, maxColumns)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	g.sounds = nil

	if g.session == nil || g.tooSmall {
		return g.result()
	}

	if g.pending != nil {
		g.pending.ticks--
		if g.pending.ticks <= 0 {
			g.session.ResolveMismatch(g.pending.epoch)
			g.pending = nil
		}
	}

	if g.session.SettingsOpen() {
		g.stepSettings(in)
		return g.result()
	}

	switch {
	case in.Has(core.ActionSettings):
		g.settingsField = FieldSound
		g.session.OpenSettingsView()
		return g.result()
	case in.Has(core.ActionToggleSound):
		if g.session.ToggleSound() {
			if g.session.Settings().SoundEnabled {
				g.ShowMessage("Sound on", StyleInfo)
			} else {
				g.ShowMessage("Sound off", StyleInfo)
			}
		}
		return g.result()
	case in.Has(core.ActionNewGame):
		g.deal()
		return g.result()
	}

	if g.session.Won() || g.session.Lost() {
		// Restart is handled by the platform through Reset.
		return g.result()
	}

	g.moveCursor(in)

	if p, ok := in.ClickAt(); ok {
		if pos, hit := g.layout.IndexAt(p.X, p.Y, len(g.faceUp)); hit {
			g.cursor = pos
			g.selectCard(pos)
		}
	} else if in.Has(core.ActionFlip) || in.Has(core.ActionConfirm) {
		g.selectCard(g.cursor)
	}

	return g.result()
}

// stepSettings drives the settings dialog.
func (g *Game) stepSettings(in core.InputFrame) {
	switch {
	case in.Has(core.ActionConfirm):
		//nolint:errcheck // the view is open
		g.session.CommitSettings(g.session.DraftSettings())
		if g.session.Epoch() != g.viewEpoch {
			g.onNewDeal()
		}
	case in.Has(core.ActionBack), in.Has(core.ActionSettings):
		g.session.CancelSettingsView()
	case in.Has(core.ActionUp):
		g.settingsField = FieldSound
	case in.Has(core.ActionDown):
		g.settingsField = FieldChallengeMode
	case in.Has(core.ActionFlip), in.Has(core.ActionLeft), in.Has(core.ActionRight):
		draft := g.session.DraftSettings()
		v, err := draft.Get(g.settingsField)
		if err == nil {
			//nolint:errcheck // the view is open and the field is known
			g.session.SetDraft(g.settingsField, !v)
		}
	}
}

func (g *Game) moveCursor(in core.InputFrame) {
	n := len(g.faceUp)
	if n == 0 {
		return
	}
	cols := g.layout.Cols
	switch {
	case in.Has(core.ActionLeft):
		if g.cursor%cols > 0 {
			g.cursor--
		}
	case in.Has(core.ActionRight):
		if g.cursor%cols < cols-1 && g.cursor+1 < n {
			g.cursor++
		}
	case in.Has(core.ActionUp):
		if g.cursor-cols >= 0 {
			g.cursor -= cols
		}
	case in.Has(core.ActionDown):
		if g.cursor+cols < n {
			g.cursor += cols
		}
	}
}

func (g *Game) selectCard(pos int) {
	res := g.session.SelectCard(pos)
	if res.Outcome == OutcomeSecondPickMismatch {
		g.pending = &pendingMismatch{epoch: res.Epoch, ticks: g.delayTicks()}
	}
}

func (g *Game) result() core.StepResult {
	return core.StepResult{State: g.State(), Sounds: g.sounds}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	st := core.GameState{
		Matches:   g.session.MatchesFound(),
		Pairs:     g.session.Pairs(),
		Guesses:   g.session.Guesses(),
		Challenge: g.session.ChallengeActive(),
		Won:       g.session.Won(),
		Lost:      g.session.Lost(),
		Paused:    g.session.SettingsOpen() || g.tooSmall,
		Dialog:    g.session.SettingsOpen(),
		Round:     g.session.Epoch(),
	}
	if st.Challenge {
		st.MaxGuesses = g.session.MaxGuesses()
	}
	st.GameOver = st.Won || st.Lost
	return st
}

// Cursor returns the card position under the cursor.
func (g *Game) Cursor() int {
	return g.cursor
}

// CardRect returns where the card at pos is drawn.
func (g *Game) CardRect(pos int) core.Rect {
	return g.layout.CellRect(pos)
}

// Session exposes the underlying session.
func (g *Game) Session() *Session {
	return g.session
}

// RevealCard implements Collaborator.
func (g *Game) RevealCard(pos int) {
	if pos >= 0 && pos < len(g.faceUp) {
		g.faceUp[pos] = true
	}
}

// HideCard implements Collaborator.
func (g *Game) HideCard(pos int) {
	if pos >= 0 && pos < len(g.faceUp) {
		g.faceUp[pos] = false
	}
}

// PlaySound implements Collaborator by queueing the sound for the platform.
func (g *Game) PlaySound(s core.Sound) error {
	g.sounds = append(g.sounds, s)
	return nil
}

// ShowMessage implements Collaborator.
func (g *Game) ShowMessage(text string, style MessageStyle) {
	g.message = text
	g.messageStyle = style
}

// AnnounceGameWon implements Collaborator.
func (g *Game) AnnounceGameWon() {
	g.banner = bannerWon
}

// AnnounceGameLost implements Collaborator.
func (g *Game) AnnounceGameLost() {
	g.banner = bannerLost
}

// SetInteractionEnabled implements Collaborator.
func (g *Game) SetInteractionEnabled(enabled bool) {
	g.interaction = enabled
}

var _ Collaborator = (*Game)(nil)

