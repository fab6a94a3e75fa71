package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-memory/internal/registry"
	"github.com/vovakirdan/tui-memory/internal/storage"
)

const (
	maxResults    = 100 // Rows loaded per view
	boardMinWidth = 60  // Below this the date column is dropped
)

// boardView selects which results the scoreboard lists.
type boardView int

const (
	viewBest    boardView = iota // Wins ranked by guesses, then time
	viewRecent                   // Latest games of the selected mode, won or lost
	viewSession                  // Games played in this session
)

func (v boardView) title() string {
	switch v {
	case viewRecent:
		return "RECENT GAMES"
	case viewSession:
		return "THIS SESSION"
	default:
		return "BEST GAMES"
	}
}

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boardMutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	boardTabStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Padding(0, 1)
	boardActiveTab  = boardTabStyle.Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	boardFrameStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextGame key.Binding
	PrevGame key.Binding
	View     key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextGame, k.View, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextGame, k.PrevGame},
		{k.View, k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		NextGame: key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab", "next mode")),
		PrevGame: key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("S-tab", "prev mode")),
		View:     key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "best/recent/session")),
		Back:     key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc/b", "back")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ScoreboardModel lists stored results for one game mode at a time.
type ScoreboardModel struct {
	games      []registry.GameInfo
	gameCursor int
	view       boardView
	store      *storage.Store
	sessionID  string // Empty hides the session view
	results    []storage.Result
	stats      *storage.GameStats
	table      table.Model
	help       help.Model
	keys       ScoreboardKeyMap
	width      int
	height     int
	quitting   bool
	goingBack  bool
}

// NewScoreboardModel creates a scoreboard. sessionID enables the view of
// games played in the current session.
func NewScoreboardModel(store *storage.Store, sessionID string, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		games:     registry.List(),
		store:     store,
		sessionID: sessionID,
		keys:      DefaultScoreboardKeyMap(),
		help:      help.New(),
		width:     width,
		height:    height,
	}
	m.help.Width = width
	m.table = m.newTable()
	m.reload()
	return m
}

func (m *ScoreboardModel) columns() []table.Column {
	cols := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Result", Width: 7},
		{Title: "Guesses", Width: 8},
		{Title: "Pairs", Width: 6},
		{Title: "Time", Width: 6},
		{Title: "Limit", Width: 6},
	}
	if m.width >= boardMinWidth {
		cols = append(cols, table.Column{Title: "Date", Width: 13})
	}
	return cols
}

func (m *ScoreboardModel) newTable() table.Model {
	height := m.height - 10 // Title, tabs, stats, frame and help
	if height < 3 {
		height = 3
	}
	t := table.New(
		table.WithColumns(m.columns()),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

func (m *ScoreboardModel) currentGame() string {
	if len(m.games) == 0 {
		return ""
	}
	return m.games[m.gameCursor].ID
}

// reload fetches the rows for the current mode and view.
func (m *ScoreboardModel) reload() {
	m.results = nil
	m.stats = nil

	gameID := m.currentGame()
	if m.store != nil && gameID != "" {
		var results []storage.Result
		var err error
		switch m.view {
		case viewBest:
			results, err = m.store.BestResults(gameID, maxResults)
		case viewRecent:
			results, err = m.store.RecentResults(maxResults)
		case viewSession:
			results, err = m.store.SessionResults(m.sessionID)
		}
		if err == nil {
			m.results = filterGame(results, gameID)
		}
		if stats, err := m.store.GetGameStats(gameID); err == nil {
			m.stats = stats
		}
	}

	m.table.SetRows(m.rows())
	m.table.GotoTop()
}

func filterGame(results []storage.Result, gameID string) []storage.Result {
	out := results[:0]
	for _, r := range results {
		if r.GameID == gameID {
			out = append(out, r)
		}
	}
	return out
}

func (m *ScoreboardModel) rows() []table.Row {
	withDate := m.width >= boardMinWidth
	rows := make([]table.Row, 0, len(m.results))
	for i, r := range m.results {
		outcome := "lost"
		if r.Won {
			outcome = "won"
		}
		limit := "-"
		if r.Challenge {
			limit = fmt.Sprintf("%d", r.MaxGuesses)
		}
		row := table.Row{
			fmt.Sprintf("%d", i+1),
			outcome,
			fmt.Sprintf("%d", r.Guesses),
			fmt.Sprintf("%d/%d", r.Matches, r.Pairs),
			formatDuration(r.Duration),
			limit,
		}
		if withDate {
			row = append(row, r.CreatedAt.Format("Jan 02 15:04"))
		}
		rows = append(rows, row)
	}
	return rows
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextGame):
			m.shiftGame(1)
			return m, nil
		case key.Matches(msg, m.keys.PrevGame):
			m.shiftGame(-1)
			return m, nil
		case key.Matches(msg, m.keys.View):
			m.nextView()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.table = m.newTable()
		m.table.SetRows(m.rows())
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *ScoreboardModel) shiftGame(delta int) {
	if len(m.games) == 0 {
		return
	}
	m.gameCursor = (m.gameCursor + delta + len(m.games)) % len(m.games)
	m.reload()
}

func (m *ScoreboardModel) nextView() {
	m.view = (m.view + 1) % 3
	if m.view == viewSession && m.sessionID == "" {
		m.view = viewBest
	}
	m.reload()
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(boardTitleStyle.Render(centerText(m.view.title(), m.width)))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.renderTabs(), m.width))
	b.WriteString("\n")
	if line := m.statsSummary(); line != "" {
		b.WriteString(boardMutedStyle.Render(centerText(line, m.width)))
	}
	b.WriteString("\n")
	b.WriteString(boardFrameStyle.Render(m.renderTableContent()))
	b.WriteString("\n")
	b.WriteString(boardMutedStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// renderTabs shows every mode with the selected one highlighted.
func (m ScoreboardModel) renderTabs() string {
	if len(m.games) == 0 {
		return ""
	}
	tabs := make([]string, len(m.games))
	for i, g := range m.games {
		if i == m.gameCursor {
			tabs[i] = boardActiveTab.Render(g.Title)
		} else {
			tabs[i] = boardTabStyle.Render(g.Title)
		}
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
	if lipgloss.Width(row) > m.width {
		return fmt.Sprintf("< %s >", m.games[m.gameCursor].Title)
	}
	return row
}

func (m ScoreboardModel) renderTableContent() string {
	if len(m.results) > 0 {
		return m.table.View()
	}
	empty := boardMutedStyle.Italic(true).Padding(1, 4)
	switch m.view {
	case viewBest:
		return empty.Render("No wins recorded yet.\nClear a table to get on the board!")
	case viewSession:
		return empty.Render("Nothing played this session.")
	default:
		return empty.Render("No games recorded yet.")
	}
}

// statsSummary renders the aggregate line under the tabs.
func (m ScoreboardModel) statsSummary() string {
	if m.stats == nil || m.stats.GamesCount == 0 {
		return ""
	}
	return fmt.Sprintf("Played %d  |  Won %d  |  Lost %d  |  Win rate %.0f%%  |  Avg guesses %.1f",
		m.stats.GamesCount, m.stats.Wins, m.stats.Losses(), m.stats.WinRate()*100, m.stats.AvgGuesses)
}

// formatDuration renders a game length as m:ss.
func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	return fmt.Sprintf("%d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store *storage.Store, sessionID string, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(
		NewScoreboardModel(store, sessionID, width, height),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
