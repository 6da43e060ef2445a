package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/registry"
)

// MenuItem is one selectable game mode.
type MenuItem struct {
	GameID string
	Title  string
}

// Selection is what the player picked in the menu.
type Selection struct {
	GameID string
	Preset config.DifficultyPreset
}

var modeBlurbs = map[string]string{
	"asteroids":       "Clear the field to win the round.",
	"asteroids_waves": "Every cleared field brings a bigger wave.",
}

var (
	menuTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	menuPromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	menuHintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	menuItemStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("250")).PaddingLeft(2)
	menuActiveStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).PaddingLeft(2).PaddingRight(2)
	menuBlurbStyle = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("245"))
)

// MenuModel is the two-step picker: game mode first, then difficulty.
type MenuModel struct {
	items         []MenuItem
	presets       []config.DifficultyPreset
	counts        config.DifficultyConfig
	modeIdx       int
	presetIdx     int
	pickingPreset bool
	width         int
	height        int
	config        core.RuntimeConfig
	keyMapper     *KeyMapper
	quitting      bool
	selected      *Selection
	wantsScores   bool
}

// NewMenuModel lists the registered modes. counts supplies the asteroid
// count shown next to each difficulty.
func NewMenuModel(cfg core.RuntimeConfig, counts config.DifficultyConfig) MenuModel {
	var items []MenuItem
	for _, info := range registry.List() {
		items = append(items, MenuItem{GameID: info.ID, Title: info.Title})
	}

	presets := config.Presets()
	presetIdx := 0
	for i, p := range presets {
		if p == config.DifficultyNormal {
			presetIdx = i
		}
	}

	return MenuModel{
		items:     items,
		presets:   presets,
		counts:    counts,
		presetIdx: presetIdx,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

// Init implements tea.Model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.onKey(m.keyMapper.MapKeyToMenuAction(msg))
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.config.ScreenW, m.config.ScreenH = msg.Width, msg.Height
	}
	return m, nil
}

// moveCursor steps cur by delta, clamped to [0, n).
func moveCursor(cur, delta, n int) int {
	return max(0, min(cur+delta, n-1))
}

func (m MenuModel) onKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp, MenuActionDown:
		delta := 1
		if action == MenuActionUp {
			delta = -1
		}
		if m.pickingPreset {
			m.presetIdx = moveCursor(m.presetIdx, delta, len(m.presets))
		} else {
			m.modeIdx = moveCursor(m.modeIdx, delta, len(m.items))
		}
	case MenuActionSelect:
		switch {
		case len(m.items) == 0:
		case !m.pickingPreset:
			m.pickingPreset = true
		default:
			m.selected = &Selection{
				GameID: m.items[m.modeIdx].GameID,
				Preset: m.presets[m.presetIdx],
			}
			return m, tea.Quit
		}
	case MenuActionBack:
		m.pickingPreset = false
	case MenuActionScoreboard:
		if !m.pickingPreset {
			m.wantsScores = true
			return m, tea.Quit
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var (
		prompt  string
		entries []string
		active  int
		blurb   string
		hint    string
	)
	if m.pickingPreset {
		item := m.items[m.modeIdx]
		prompt = item.Title + ": choose difficulty"
		for _, p := range m.presets {
			entries = append(entries, fmt.Sprintf("%-7s %3d asteroids", presetLabel(p), m.counts.CountForPreset(p)))
		}
		active = m.presetIdx
		hint = "enter start  esc back  q quit"
	} else {
		prompt = "Choose a mode"
		for _, item := range m.items {
			entries = append(entries, item.Title)
		}
		active = m.modeIdx
		if len(m.items) > 0 {
			blurb = modeBlurbs[m.items[m.modeIdx].GameID]
		}
		hint = "up/down move  enter select  tab scores  q quit"
	}

	lines := []string{
		"",
		menuTitleStyle.Render("A S T E R O I D S"),
		"",
		menuPromptStyle.Render(prompt),
		"",
		renderEntries(entries, active),
		"",
		menuBlurbStyle.Render(blurb),
		"",
		menuHintStyle.Render(hint),
	}

	var b strings.Builder
	for _, l := range lines {
		for _, row := range strings.Split(l, "\n") {
			b.WriteString(centerText(row, m.width))
			b.WriteString("\n")
		}
	}
	return b.String()
}

func renderEntries(entries []string, active int) string {
	rendered := make([]string, len(entries))
	for i, e := range entries {
		if i == active {
			rendered[i] = menuActiveStyle.Render(e)
		} else {
			rendered[i] = menuItemStyle.Render(e)
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, rendered...)
}

func presetLabel(p config.DifficultyPreset) string {
	s := string(p)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// Selected returns the selection, or nil if none was made.
func (m MenuModel) Selected() *Selection {
	return m.selected
}

// IsQuitting reports whether the player quit from the menu.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard reports whether the player asked for the scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.wantsScores
}

// Config returns the runtime config, updated by any resize seen in the menu.
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText left-pads text so it sits in the middle of width columns.
func centerText(text string, width int) string {
	pad := (width - lipgloss.Width(text)) / 2
	if pad <= 0 {
		return text
	}
	return strings.Repeat(" ", pad) + text
}

// MenuResult is what RunMenu hands back to the caller's loop.
type MenuResult struct {
	Selection       *Selection
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu shows the menu full screen until the player picks, opens the
// scoreboard or quits.
func RunMenu(cfg core.RuntimeConfig, counts config.DifficultyConfig) (MenuResult, error) {
	final, err := tea.NewProgram(NewMenuModel(cfg, counts), tea.WithAltScreen()).Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := final.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	res := MenuResult{Config: m.Config(), Selection: m.Selected(), WantsScoreboard: m.WantsScoreboard()}
	res.Quit = res.Selection == nil && !res.WantsScoreboard
	return res, nil
}
