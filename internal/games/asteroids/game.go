package asteroids

import (
	"math/rand"
	"sync"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/registry"
)

// GameMode represents the game mode.
type GameMode int

const (
	ModeClassic GameMode = iota // Clearing the field wins the round
	ModeWaves                   // Clearing the field starts the next, larger wave
)

// GameStateType represents the current round state.
type GameStateType string

const (
	StatePlaying  GameStateType = "playing"
	StateWon      GameStateType = "won"
	StateLost     GameStateType = "lost"
	StateTooSmall GameStateType = "too_small"
)

// Minimum terminal size the playfield needs.
const (
	MinScreenW = 20
	MinScreenH = 8
)

// Options customise how a game instance loads its configuration.
type Options struct {
	ConfigPath string                  // Custom YAML path; empty uses the search order
	Config     *config.AsteroidsConfig // Explicit config; skips loading when set
	Preset     config.DifficultyPreset // Applied after loading when non-empty
	Asteroids  int                     // Initial count override when > 0
	Policy     config.ShipHitPolicy    // Ship-hit policy override when non-empty
}

var (
	defaultOpts   Options
	defaultOptsMu sync.RWMutex
)

// SetDefaultOptions sets the options used by registry-created games.
func SetDefaultOptions(opts Options) {
	defaultOptsMu.Lock()
	defer defaultOptsMu.Unlock()
	defaultOpts = opts
}

func currentDefaultOptions() Options {
	defaultOptsMu.RLock()
	defer defaultOptsMu.RUnlock()
	return defaultOpts
}

// Game implements the asteroids game logic on top of a World.
type Game struct {
	mode GameMode
	opts Options

	world *World
	rng   *rand.Rand

	score    int
	health   int
	wave     int
	initial  int // Asteroid count of the first wave
	state    GameStateType
	paused   bool
	tooSmall bool

	runtime core.RuntimeConfig
	cfg     config.AsteroidsConfig
}

// New creates a classic-mode game using the default options.
func New() *Game {
	return NewWithOptions(ModeClassic, currentDefaultOptions())
}

// NewWaves creates an endless waves-mode game using the default options.
func NewWaves() *Game {
	return NewWithOptions(ModeWaves, currentDefaultOptions())
}

// NewWithOptions creates a game in the given mode with explicit options.
func NewWithOptions(mode GameMode, opts Options) *Game {
	return &Game{mode: mode, opts: opts}
}

// ModeFromID maps a registry ID to its game mode.
func ModeFromID(id string) (GameMode, bool) {
	switch id {
	case "asteroids":
		return ModeClassic, true
	case "asteroids_waves":
		return ModeWaves, true
	}
	return ModeClassic, false
}

// String returns the mode name used by the --mode flag.
func (m GameMode) String() string {
	if m == ModeWaves {
		return "waves"
	}
	return "classic"
}

// ParseMode is the inverse of GameMode.String. An empty name means classic.
func ParseMode(name string) (GameMode, bool) {
	switch name {
	case "", "classic":
		return ModeClassic, true
	case "waves":
		return ModeWaves, true
	}
	return ModeClassic, false
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModeWaves {
		return "asteroids_waves"
	}
	return "asteroids"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModeWaves {
		return "Asteroids (Waves)"
	}
	return "Asteroids"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.cfg = g.loadConfig()

	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.score = 0
	g.health = g.cfg.Rules.Health
	g.wave = 1
	g.initial = g.cfg.Difficulty.Asteroids
	g.state = StatePlaying
	g.paused = false
	g.tooSmall = tooSmall(runtime)

	vp := g.viewport()
	g.world = NewWorld(ParamsFromConfig(g.cfg), g.rng, vp)
	g.world.Populate(g.initial, vp)
}

// loadConfig resolves the effective config from the options.
func (g *Game) loadConfig() config.AsteroidsConfig {
	var cfg config.AsteroidsConfig
	if g.opts.Config != nil {
		cfg = *g.opts.Config
	} else {
		loaded, err := config.LoadAsteroids(g.opts.ConfigPath)
		if err != nil {
			loaded = config.DefaultAsteroidsConfig()
		}
		cfg = loaded
	}

	if g.opts.Preset != "" {
		config.ApplyAsteroidsPreset(&cfg, g.opts.Preset)
	}
	if g.opts.Asteroids > 0 {
		cfg.Difficulty.Asteroids = g.opts.Asteroids
	}
	if g.opts.Policy != "" {
		cfg.Rules.ShipHitPolicy = g.opts.Policy
	}
	if cfg.Rules.Health < 1 {
		cfg.Rules.Health = 1
	}
	return cfg
}

// Resize follows a terminal resize without restarting the round.
// The viewport is re-sampled on the next Step.
func (g *Game) Resize(screenW, screenH int) {
	g.runtime.ScreenW = screenW
	g.runtime.ScreenH = screenH
	g.tooSmall = tooSmall(g.runtime)
}

func tooSmall(rc core.RuntimeConfig) bool {
	return rc.ScreenW < MinScreenW || rc.ScreenH < MinScreenH
}

// viewport converts the screen size to world units. The top row is the HUD.
func (g *Game) viewport() Bounds {
	rows := g.runtime.ScreenH - 1
	if rows < 1 {
		rows = 1
	}
	cols := g.runtime.ScreenW
	if cols < 1 {
		cols = 1
	}
	return Bounds{
		W: float64(cols) * g.cfg.World.CellWidth,
		H: float64(rows) * g.cfg.World.CellHeight,
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.state != StatePlaying {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	frame := g.world.Step(Intents{
		RotateLeft:  in.Has(core.ActionRotateLeft),
		RotateRight: in.Has(core.ActionRotateRight),
		Thrust:      in.Has(core.ActionThrust),
		FirePressed: in.Has(core.ActionFire),
	}, g.viewport())

	for _, size := range frame.MissileKills {
		g.score += g.points(size)
	}

	if frame.ShipDestroyed {
		g.shipHit()
	}
	if g.state == StatePlaying && frame.Won {
		g.fieldCleared()
	}

	return core.StepResult{State: g.State()}
}

// shipHit applies the configured ship-hit policy.
func (g *Game) shipHit() {
	switch g.cfg.Rules.ShipHitPolicy {
	case config.PolicyInstant:
		g.health = 0
		g.state = StateLost
	default:
		g.health--
		if g.health <= 0 {
			g.health = 0
			g.state = StateLost
			return
		}
		g.world.Shield(g.cfg.Rules.InvulnerableFrames)
	}
}

// fieldCleared ends a classic round or starts the next wave.
func (g *Game) fieldCleared() {
	if g.mode != ModeWaves {
		g.state = StateWon
		return
	}
	g.wave++
	g.world.Populate(g.cfg.Waves.WaveCount(g.initial, g.wave), g.viewport())
}

// points returns the score for destroying an asteroid of the given tier.
func (g *Game) points(size Size) int {
	switch {
	case sameSize(size, SizeLarge):
		return g.cfg.Scoring.Large
	case sameSize(size, SizeMedium):
		return g.cfg.Scoring.Medium
	case sameSize(size, SizeSmall):
		return g.cfg.Scoring.Small
	default:
		return 0
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.state == StateWon || g.state == StateLost,
		Won:      g.state == StateWon,
		Paused:   g.paused,
	}
}

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Mode      string
	State     GameStateType
	Score     int
	Health    int
	Wave      int
	Asteroids int // Initial asteroid count of the round
	View      View
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := g.state
	if state == StatePlaying && g.tooSmall {
		state = StateTooSmall
	}
	mode := "classic"
	if g.mode == ModeWaves {
		mode = "waves"
	}
	return Snapshot{
		Mode:      mode,
		State:     state,
		Score:     g.score,
		Health:    g.health,
		Wave:      g.wave,
		Asteroids: g.initial,
		View:      g.world.View(),
	}
}

// TurnRate returns the ship's rotation per frame in radians.
func (g *Game) TurnRate() float64 {
	return g.cfg.Ship.TurnRate
}

// Register the game modes with the registry
func init() {
	registry.Register("asteroids", func() registry.Game {
		return New()
	})
	registry.Register("asteroids_waves", func() registry.Game {
		return NewWaves()
	})
}
