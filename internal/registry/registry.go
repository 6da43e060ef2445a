// Package registry maps game IDs to factories. Game packages register their
// modes from init(), so the CLI and the SSH server can list and create them
// without importing each mode by name.
package registry

import (
	"fmt"
	"sync"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// Game is the contract between a game and the platform that runs it.
// Implementations are pure logic: the platform owns timing, input mapping
// and terminal output.
type Game interface {
	// ID is the stable identifier used on the command line and as the
	// score-table key, e.g. "asteroids".
	ID() string

	// Title is the display name, e.g. "Asteroids".
	Title() string

	// Reset starts a new round for the given screen size and seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current frame into dst.
	Render(dst *core.Screen)

	// State reports score, pause and game-over status.
	State() core.GameState
}

// Resizer is implemented by games that can follow a terminal resize without
// restarting. The platform falls back to Reset for games that do not.
type Resizer interface {
	Resize(screenW, screenH int)
}

// GameInfo describes a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a fresh game instance.
type Factory func() Game

type entry struct {
	info    GameInfo
	factory Factory
}

var (
	mu      sync.RWMutex
	entries []entry
	byID    = make(map[string]int)
)

// Register adds a game factory under id. It panics on a duplicate id.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := byID[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	byID[id] = len(entries)
	entries = append(entries, entry{
		info:    GameInfo{ID: id, Title: f().Title()},
		factory: f,
	})
}

// List returns the registered games in registration order.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]GameInfo, len(entries))
	for i, e := range entries {
		out[i] = e.info
	}
	return out
}

// Create instantiates the game registered under id.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	i, ok := byID[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return entries[i].factory(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := byID[id]
	return ok
}
