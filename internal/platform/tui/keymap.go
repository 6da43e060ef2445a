package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// DefaultHoldTicks is how long a steering key stays down after its last key event.
// Terminals report repeats, not releases, so a held key is a stream of presses.
const DefaultHoldTicks = 8

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	}

	switch key {
	case "a", "left":
		return core.ActionRotateLeft, false
	case "d", "right":
		return core.ActionRotateRight, false
	case "w", "up":
		return core.ActionThrust, false
	case " ", "f":
		return core.ActionFire, false
	case "enter":
		return core.ActionConfirm, false
	case "b", "esc":
		return core.ActionBack, false
	case "p":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	}

	return core.ActionNone, false
}

// HoldInput accumulates key events between ticks.
// Steering actions stay set for a few ticks after each event; everything else
// fires on exactly one tick. It is a value type so Bubble Tea models can copy it.
type HoldInput struct {
	holdTicks int
	left      int
	right     int
	thrust    int
	pending   core.InputFrame
}

// NewHoldInput creates an input accumulator. holdTicks <= 0 uses DefaultHoldTicks.
func NewHoldInput(holdTicks int) HoldInput {
	if holdTicks <= 0 {
		holdTicks = DefaultHoldTicks
	}
	return HoldInput{holdTicks: holdTicks, pending: core.NewInputFrame()}
}

// Press records a key event.
func (h *HoldInput) Press(a core.Action) {
	switch a {
	case core.ActionRotateLeft:
		h.left, h.right = h.holdTicks, 0
	case core.ActionRotateRight:
		h.right, h.left = h.holdTicks, 0
	case core.ActionThrust:
		h.thrust = h.holdTicks
	case core.ActionNone:
	default:
		h.pending.Set(a)
	}
}

// Next returns the input for the coming tick and ages the held keys.
func (h *HoldInput) Next() core.InputFrame {
	frame := h.pending
	h.pending.Clear()

	if h.left > 0 {
		frame.Set(core.ActionRotateLeft)
		h.left--
	}
	if h.right > 0 {
		frame.Set(core.ActionRotateRight)
		h.right--
	}
	if h.thrust > 0 {
		frame.Set(core.ActionThrust)
		h.thrust--
	}
	return frame
}

// Release drops all held and pending input.
func (h *HoldInput) Release() {
	h.left, h.right, h.thrust = 0, 0, 0
	h.pending.Clear()
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
	MenuActionScoreboard
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}
