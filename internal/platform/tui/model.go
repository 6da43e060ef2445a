package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/games/asteroids"
	"github.com/vovakirdan/tui-asteroids/internal/registry"
	"github.com/vovakirdan/tui-asteroids/internal/storage"
)

// Model is the Bubble Tea model for running a single game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	sessionID  string
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	input      HoldInput
	gameState  core.GameState
	ticks      uint64
	embedded   bool // Owned by a SessionModel; never quits the program on Back
	quitting   bool
	backToMenu bool
	roundSaved bool // Whether the current round has been recorded
}

// ModelOption customises a Model.
type ModelOption func(*Model)

// WithLogger sets the logger used for round results.
func WithLogger(l *log.Logger) ModelOption {
	return func(m *Model) { m.logger = l }
}

// WithSessionID tags recorded rounds with the given session.
func WithSessionID(id string) ModelOption {
	return func(m *Model) { m.sessionID = id }
}

// WithHoldTicks overrides how long steering keys stay held.
func WithHoldTicks(n int) ModelOption {
	return func(m *Model) { m.input = NewHoldInput(n) }
}

func embedded() ModelOption {
	return func(m *Model) { m.embedded = true }
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...ModelOption) Model {
	cfg = cfg.WithDefaults()

	m := Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:     store,
		logger:    log.Default(),
		sessionID: "local",
		config:    cfg,
		keyMapper: NewKeyMapper(),
		input:     NewHoldInput(DefaultHoldTicks),
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Debug("round started", "game", m.game.ID(), "session", m.sessionID, "seed", m.config.Seed)
	return tickCmd(m.config)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.abandonRound()
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionBack:
		if m.gameState.GameOver || m.gameState.Paused {
			m.abandonRound()
			m.backToMenu = true
			if !m.embedded {
				return m, tea.Quit
			}
		}
		return m, nil
	case core.ActionRestart:
		if !m.gameState.GameOver {
			return m, nil
		}
	}

	m.input.Press(action)
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(msg.Width, msg.Height)
		return m, nil
	}

	// Games without resize support restart at the new size
	if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting || m.backToMenu {
		return m, nil
	}

	frame := m.input.Next()

	if frame.Has(core.ActionRestart) && m.gameState.GameOver {
		// Reset seed for new game
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.ticks = 0
		m.roundSaved = false
		m.input.Release()
		return m, tickCmd(m.config)
	}

	result := m.game.Step(frame)
	m.gameState = result.State
	m.ticks++

	if m.gameState.GameOver && !m.roundSaved {
		outcome := storage.OutcomeLost
		if m.gameState.Won {
			outcome = storage.OutcomeWon
		}
		m.finishRound(outcome)
	}

	return m, tickCmd(m.config)
}

// abandonRound records a round left before it ended.
func (m *Model) abandonRound() {
	if m.roundSaved || m.ticks == 0 {
		return
	}
	m.finishRound(storage.OutcomeQuit)
}

// finishRound saves the score and the round history once per round.
func (m *Model) finishRound(outcome string) {
	m.roundSaved = true

	rec := storage.RoundRecord{
		SessionID: m.sessionID,
		GameID:    m.game.ID(),
		Outcome:   outcome,
		Score:     m.gameState.Score,
		Wave:      1,
		Frames:    m.ticks,
	}
	if s, ok := m.game.(interface{ Snapshot() asteroids.Snapshot }); ok {
		snap := s.Snapshot()
		rec.Wave = snap.Wave
		rec.Asteroids = snap.Asteroids
		rec.Frames = snap.View.Frame
	}

	m.logger.Info("round finished",
		"game", rec.GameID,
		"session", rec.SessionID,
		"outcome", rec.Outcome,
		"score", rec.Score,
		"wave", rec.Wave,
		"frames", rec.Frames,
	)

	if m.store == nil {
		return
	}
	if outcome != storage.OutcomeQuit && rec.Score > 0 {
		if _, err := m.store.SaveScore(rec.GameID, rec.Score); err != nil {
			m.logger.Warn("could not save score", "error", err)
		}
	}
	if _, err := m.store.SaveRound(rec); err != nil {
		m.logger.Warn("could not save round", "error", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".asteroids", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given model.
// It returns true when the player asked to go back to the menu.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...ModelOption) (bool, error) {
	model := NewModel(game, store, cfg, opts...)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(Model)
	return ok && m.BackToMenu(), nil
}
