package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-asteroids/internal/registry"
	"github.com/vovakirdan/tui-asteroids/internal/storage"
)

const (
	minWidthForRounds = 90  // Below this only the score table is shown
	maxScores         = 100 // Scores loaded per mode
	maxRounds         = 50  // Rounds loaded per mode
)

var (
	sbTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	sbStatsStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	sbHelpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	sbTabStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	sbActiveTab   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Padding(0, 1)
	sbPanelStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	sbFocusStyle  = sbPanelStyle.BorderForeground(lipgloss.Color("57"))
	sbEmptyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(1, 2)
	sbHeaderStyle = lipgloss.NewStyle().Bold(true)
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextMode key.Binding
	PrevMode key.Binding
	Focus    key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextMode, k.Focus, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextMode, k.PrevMode},
		{k.Focus, k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextMode: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next mode"),
		),
		PrevMode: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev mode"),
		),
		Focus: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "switch table"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel shows top scores, aggregate stats and recent rounds per mode.
type ScoreboardModel struct {
	modes       []registry.GameInfo
	modeCursor  int
	store       *storage.Store
	scores      []storage.ScoreEntry
	rounds      []storage.RoundRecord
	stats       *storage.GameStats
	scoreTable  table.Model
	roundTable  table.Model
	roundsFocus bool // Scroll keys go to the rounds table
	help        help.Model
	keys        ScoreboardKeyMap
	width       int
	height      int
	quitting    bool
	goingBack   bool
}

// NewScoreboardModel creates a new scoreboard model.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	h := help.New()
	h.Width = width

	m := ScoreboardModel{
		modes:  registry.List(),
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}
	m.buildTables()
	m.load()
	return m
}

func (m ScoreboardModel) showRounds() bool {
	return m.width >= minWidthForRounds
}

// buildTables sizes both tables for the current window.
func (m *ScoreboardModel) buildTables() {
	height := max(m.height-10, 3) // Title, stats, tabs, borders and help

	m.scoreTable = newTable([]table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Score", Width: 8},
		{Title: "Date", Width: 13},
	}, height)

	m.roundTable = newTable([]table.Column{
		{Title: "Result", Width: 6},
		{Title: "Score", Width: 7},
		{Title: "Wave", Width: 4},
		{Title: "Rocks", Width: 5},
		{Title: "Time", Width: 6},
		{Title: "Session", Width: 8},
	}, height)

	m.setFocus(m.roundsFocus && m.showRounds())
	m.fillRows()
}

func newTable(cols []table.Column, height int) table.Model {
	t := table.New(
		table.WithColumns(cols),
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

func (m *ScoreboardModel) setFocus(rounds bool) {
	m.roundsFocus = rounds
	if rounds {
		m.scoreTable.Blur()
		m.roundTable.Focus()
	} else {
		m.roundTable.Blur()
		m.scoreTable.Focus()
	}
}

// load reads scores, stats and rounds for the selected mode.
func (m *ScoreboardModel) load() {
	m.scores, m.rounds, m.stats = nil, nil, nil
	if m.store != nil && len(m.modes) > 0 {
		id := m.modes[m.modeCursor].ID
		if scores, err := m.store.TopScores(id, maxScores); err == nil {
			m.scores = scores
		}
		if rounds, err := m.store.RecentRounds(id, maxRounds); err == nil {
			m.rounds = rounds
		}
		if stats, err := m.store.GetGameStats(id); err == nil {
			m.stats = stats
		}
	}
	m.fillRows()
}

func (m *ScoreboardModel) fillRows() {
	scoreRows := make([]table.Row, len(m.scores))
	for i, s := range m.scores {
		scoreRows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", s.Score),
			s.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.scoreTable.SetRows(scoreRows)
	m.scoreTable.GotoTop()

	roundRows := make([]table.Row, len(m.rounds))
	for i, r := range m.rounds {
		roundRows[i] = table.Row{
			r.Outcome,
			fmt.Sprintf("%d", r.Score),
			fmt.Sprintf("%d", r.Wave),
			fmt.Sprintf("%d", r.Asteroids),
			formatFrames(r.Frames),
			shortSession(r.SessionID),
		}
	}
	m.roundTable.SetRows(roundRows)
	m.roundTable.GotoTop()
}

// formatFrames renders a frame count as m:ss at 60 frames per second.
func formatFrames(frames uint64) string {
	secs := frames / 60
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

func shortSession(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func (m *ScoreboardModel) cycleMode(delta int) {
	if len(m.modes) == 0 {
		return
	}
	m.modeCursor = (m.modeCursor + delta + len(m.modes)) % len(m.modes)
	m.load()
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
		case key.Matches(msg, m.keys.NextMode):
			m.cycleMode(1)
			return m, nil
		case key.Matches(msg, m.keys.PrevMode):
			m.cycleMode(-1)
			return m, nil
		case key.Matches(msg, m.keys.Focus):
			m.setFocus(!m.roundsFocus && m.showRounds())
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.buildTables()
		return m, nil
	}

	var cmd tea.Cmd
	if m.roundsFocus {
		m.roundTable, cmd = m.roundTable.Update(msg)
	} else {
		m.scoreTable, cmd = m.scoreTable.Update(msg)
	}
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	b.WriteString(sbTitleStyle.Render(centerText("HIGH SCORES", m.width)))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.renderTabs(), m.width))
	b.WriteString("\n")
	b.WriteString(sbStatsStyle.Render(centerText(m.statsLine(), m.width)))
	b.WriteString("\n")

	scores := m.panel("Top scores", m.scoreTable.View(), len(m.scores) == 0, !m.roundsFocus)
	if m.showRounds() {
		rounds := m.panel("Recent rounds", m.roundTable.View(), len(m.rounds) == 0, m.roundsFocus)
		b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center,
			lipgloss.JoinHorizontal(lipgloss.Top, scores, "  ", rounds)))
	} else {
		b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, scores))
	}

	b.WriteString("\n")
	b.WriteString(sbHelpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

func (m ScoreboardModel) renderTabs() string {
	tabs := make([]string, len(m.modes))
	for i, mode := range m.modes {
		if i == m.modeCursor {
			tabs[i] = sbActiveTab.Render(mode.Title)
		} else {
			tabs[i] = sbTabStyle.Render(mode.Title)
		}
	}
	return strings.Join(tabs, " ")
}

func (m ScoreboardModel) panel(title, body string, empty, focused bool) string {
	if empty {
		body = sbEmptyStyle.Render("Nothing recorded yet.\nShoot some rocks!")
	}
	style := sbPanelStyle
	if focused {
		style = sbFocusStyle
	}
	return style.Render(sbHeaderStyle.Render(title) + "\n" + body)
}

// statsLine summarises the selected mode's history.
func (m ScoreboardModel) statsLine() string {
	if m.stats == nil || m.stats.GamesCount == 0 {
		return ""
	}
	line := fmt.Sprintf("Games: %d  Best: %d  Avg: %.0f  Cleared: %d",
		m.stats.GamesCount, m.stats.HighScore, m.stats.AvgScore, m.stats.Wins)
	if m.stats.BestWave > 1 {
		line += fmt.Sprintf("  Best wave: %d", m.stats.BestWave)
	}
	return line
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
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	model := NewScoreboardModel(store, width, height)

	p := tea.NewProgram(
		model,
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
