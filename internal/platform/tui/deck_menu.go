package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-memory/internal/core"
)

// deckSizes are the pair counts offered before a game; 0 deals the whole catalog.
var deckSizes = []int{6, 8, 10, 12, 0}

// DeckSelection holds the user's choice from the deck menu.
type DeckSelection struct {
	Pairs   int    // 0 deals every face of the catalog
	Catalog string // Empty keeps the configured catalog
}

// DeckSizeModel lets users choose how many pairs to deal and which faces to use.
type DeckSizeModel struct {
	catalogs        []string
	cursor          int
	catalogCursor   int
	inCatalogSelect bool
	width           int
	height          int
	keyMapper       *KeyMapper
	selection       DeckSelection
	choosing        bool
	quitting        bool
	back            bool
}

// NewDeckSizeModel creates a new deck selection model. catalogs lists the
// face catalogs the player may pick from.
func NewDeckSizeModel(catalogs []string, width, height int) DeckSizeModel {
	return DeckSizeModel{
		catalogs:  catalogs,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		choosing:  true,
	}
}

// Init initializes the model.
func (m DeckSizeModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m DeckSizeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m DeckSizeModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	if m.inCatalogSelect {
		return m.handleCatalogKey(action)
	}
	return m.handleSizeKey(action)
}

// sizeOptions is the number of rows in the size list, including "Choose faces...".
func (m DeckSizeModel) sizeOptions() int {
	if len(m.catalogs) > 1 {
		return len(deckSizes) + 1
	}
	return len(deckSizes)
}

func (m DeckSizeModel) handleSizeKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < m.sizeOptions()-1 {
			m.cursor++
		}
	case MenuActionSelect:
		if m.cursor == len(deckSizes) {
			m.inCatalogSelect = true
			return m, nil
		}
		m.choosing = false
		m.selection.Pairs = deckSizes[m.cursor]
		return m, tea.Quit
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}

	return m, nil
}

func (m DeckSizeModel) handleCatalogKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.catalogCursor > 0 {
			m.catalogCursor--
		}
	case MenuActionDown:
		if m.catalogCursor < len(m.catalogs)-1 {
			m.catalogCursor++
		}
	case MenuActionSelect:
		m.selection.Catalog = m.catalogs[m.catalogCursor]
		m.inCatalogSelect = false
	case MenuActionBack:
		m.inCatalogSelect = false
	}

	return m, nil
}

// View renders the size or catalog list.
func (m DeckSizeModel) View() string {
	if m.quitting || m.back || !m.choosing {
		return ""
	}

	if m.inCatalogSelect {
		return m.viewCatalogSelect()
	}
	return m.viewSizeSelect()
}

func (m DeckSizeModel) viewSizeSelect() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("M E M O R Y", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("How many pairs?", m.width))
	b.WriteString("\n\n")

	for i, n := range deckSizes {
		label := fmt.Sprintf("%d pairs", n)
		if n == 0 {
			label = "Whole catalog"
		}
		b.WriteString(centerText(cursorPrefix(i == m.cursor)+label, m.width))
		b.WriteString("\n")
	}
	if len(m.catalogs) > 1 {
		label := "Choose faces..."
		if m.selection.Catalog != "" {
			label = fmt.Sprintf("Faces: %s", m.selection.Catalog)
		}
		b.WriteString(centerText(cursorPrefix(m.cursor == len(deckSizes))+label, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

func (m DeckSizeModel) viewCatalogSelect() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("CHOOSE FACES", m.width))
	b.WriteString("\n\n")

	for i, name := range m.catalogs {
		b.WriteString(centerText(cursorPrefix(i == m.catalogCursor)+name, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

func cursorPrefix(active bool) string {
	if active {
		return "> "
	}
	return "  "
}

// Selected returns the selection, or nil if still choosing.
func (m DeckSizeModel) Selected() *DeckSelection {
	if m.choosing {
		return nil
	}
	return &m.selection
}

// IsQuitting returns true if user wants to quit.
func (m DeckSizeModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m DeckSizeModel) WantsBack() bool {
	return m.back
}

// RunDeckSizeSelector runs the deck menu and returns the selection,
// or nil when the player backed out or quit.
func RunDeckSizeSelector(catalogs []string, cfg core.RuntimeConfig) (*DeckSelection, error) {
	model := NewDeckSizeModel(catalogs, cfg.ScreenW, cfg.ScreenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	m, ok := finalModel.(DeckSizeModel)
	if !ok || m.IsQuitting() || m.WantsBack() {
		return nil, nil
	}

	return m.Selected(), nil
}
