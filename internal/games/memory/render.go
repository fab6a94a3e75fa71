package memory

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/tui-memory/internal/core"
)

const (
	hudHeight    = 2  // Title and status lines
	footerHeight = 3  // Message line, blank, help line
	maxColumns   = 8  // Widest card grid
	settingsBoxW = 36 // Settings dialog width
	settingsBoxH = 9  // Settings dialog height
)

const hiddenFill = '░'

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.configErr != nil {
		g.renderConfigError(dst)
		return
	}
	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}
	if g.session == nil {
		return
	}

	g.renderHUD(dst)
	g.renderCards(dst)
	g.renderFooter(dst)

	switch {
	case g.session.SettingsOpen():
		g.renderSettings(dst)
	case g.banner != bannerNone:
		g.renderBanner(dst)
	}
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small", core.ColorYellow)
	dst.DrawTextCentered(y+1, "Please resize terminal", core.ColorDefault)
}

// renderConfigError explains why no cards were dealt.
func (g *Game) renderConfigError(dst *core.Screen) {
	y := g.screenH/2 - 1
	dst.DrawTextCentered(y, "Cannot start: invalid configuration", core.ColorRed)
	dst.DrawTextCentered(y+1, g.message, core.ColorYellow)
	dst.DrawTextCentered(y+3, "Fix the config file and restart. Q: Quit", core.ColorGray)
}

// renderHUD draws the title, progress and guess counter.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawTextCentered(0, strings.ToUpper(g.Title()), core.ColorBrightYellow)

	left := g.layout.Origin.X
	right := g.layout.Origin.X + g.layout.Bounds().W

	pairs := fmt.Sprintf("Pairs: %d/%d", g.session.MatchesFound(), g.session.Pairs())
	dst.DrawText(left, 1, pairs)

	sound := "♪ on"
	if !g.session.Settings().SoundEnabled {
		sound = "♪ off"
	}
	dst.DrawTextColored((left+right-utf8.RuneCountInString(sound))/2, 1, sound, core.ColorGray)

	guesses := g.guessText()
	color := core.ColorDefault
	if st := g.session.Budget(); !st.Unbounded() && (st.Exhausted || st.Remaining <= 4) {
		color = core.ColorRed
	}
	dst.DrawTextColored(right-utf8.RuneCountInString(guesses), 1, guesses, color)
}

func (g *Game) guessText() string {
	st := g.session.Budget()
	switch {
	case st.Unbounded():
		return fmt.Sprintf("Guesses: %d", g.session.Guesses())
	case st.Exhausted:
		return "Guesses left: 0"
	default:
		return fmt.Sprintf("Guesses left: %d", st.Remaining)
	}
}

// renderCards draws every card at its grid position.
func (g *Game) renderCards(dst *core.Screen) {
	deck := g.session.Deck()
	for pos := range g.faceUp {
		r := g.layout.CellRect(pos)

		var border, text core.Color
		switch {
		case g.session.IsMatched(pos):
			border, text = core.ColorGreen, core.ColorBrightGreen
		case g.faceUp[pos]:
			border, text = core.ColorYellow, core.ColorWhite
		default:
			border, text = core.ColorGray, core.ColorBlue
		}
		if pos == g.cursor && g.interaction {
			border = core.ColorCyan
		}

		dst.DrawBox(r, border)
		inner := core.NewRect(r.X+1, r.Y+1, r.W-2, r.H-2)
		if g.faceUp[pos] {
			label := string(deck.FaceAt(pos))
			x := inner.X + (inner.W-utf8.RuneCountInString(label))/2
			dst.DrawTextColored(x, inner.Y, label, text)
		} else {
			dst.DrawRect(inner, hiddenFill, text)
		}
	}
}

// renderFooter draws the status message and key help.
func (g *Game) renderFooter(dst *core.Screen) {
	if g.message != "" {
		dst.DrawTextCentered(g.screenH-footerHeight, g.message, messageColor(g.messageStyle))
	}
	help := "arrows/mouse: move  space: flip  o: settings  m: sound  n: new  q: quit"
	if utf8.RuneCountInString(help) > g.screenW {
		help = "space: flip  o: settings  q: quit"
	}
	dst.DrawTextCentered(g.screenH-1, help, core.ColorGray)
}

func messageColor(style MessageStyle) core.Color {
	switch style {
	case StyleSuccess:
		return core.ColorBrightGreen
	case StyleWarning:
		return core.ColorRed
	default:
		return core.ColorWhite
	}
}

// renderBanner draws the win or loss overlay over the table.
func (g *Game) renderBanner(dst *core.Screen) {
	title, hint, color := "YOU WIN!", "Play Again? [R]", core.ColorBrightGreen
	if g.banner == bannerLost {
		title, hint, color = "OUT OF GUESSES", "Press R to try again", core.ColorRed
	}
	detail := fmt.Sprintf("%d pairs in %d guesses", g.session.MatchesFound(), g.session.Guesses())

	w := 26
	_, cy := g.layout.Bounds().Center()
	box := core.NewRect((g.screenW-w)/2, cy-3, w, 6)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, color)
	dst.DrawTextCentered(box.Y+1, title, color)
	dst.DrawTextCentered(box.Y+2, detail, core.ColorWhite)
	dst.DrawTextCentered(box.Y+4, hint, core.ColorYellow)
}

// renderSettings draws the settings dialog with the draft values.
func (g *Game) renderSettings(dst *core.Screen) {
	box := core.NewRect((g.screenW-settingsBoxW)/2, (g.screenH-settingsBoxH)/2, settingsBoxW, settingsBoxH)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorCyan)
	dst.DrawTextCentered(box.Y+1, "Settings", core.ColorBrightYellow)

	draft := g.session.DraftSettings()
	rows := []struct {
		field Field
		label string
		on    bool
	}{
		{FieldSound, "Sound", draft.SoundEnabled},
		{FieldChallengeMode, fmt.Sprintf("Challenge (%d guesses)", g.cfg.Rules.MaxGuesses), draft.ChallengeMode},
	}
	for i, row := range rows {
		mark := "[ ]"
		if row.on {
			mark = "[x]"
		}
		prefix, color := "  ", core.ColorDefault
		if row.field == g.settingsField {
			prefix, color = "> ", core.ColorCyan
		}
		dst.DrawTextColored(box.X+3, box.Y+3+i, prefix+mark+" "+row.label, color)
	}

	dst.DrawTextCentered(box.Y+6, "space: toggle  enter: start", core.ColorGray)
	dst.DrawTextCentered(box.Y+7, "esc: cancel", core.ColorGray)
}
