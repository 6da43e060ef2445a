package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{runeKey("a"), core.ActionRotateLeft, false},
		{tea.KeyMsg{Type: tea.KeyLeft}, core.ActionRotateLeft, false},
		{runeKey("d"), core.ActionRotateRight, false},
		{tea.KeyMsg{Type: tea.KeyUp}, core.ActionThrust, false},
		{tea.KeyMsg{Type: tea.KeySpace}, core.ActionFire, false},
		{runeKey("p"), core.ActionPause, false},
		{tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, false},
		{runeKey("q"), core.ActionQuit, true},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{runeKey("z"), core.ActionNone, false},
	}
	for _, tt := range tests {
		action, quit := km.MapKey(tt.msg)
		require.Equal(t, tt.action, action, "key %q", tt.msg.String())
		require.Equal(t, tt.quit, quit, "key %q", tt.msg.String())
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	require.Equal(t, MenuActionUp, km.MapKeyToMenuAction(runeKey("k")))
	require.Equal(t, MenuActionDown, km.MapKeyToMenuAction(tea.KeyMsg{Type: tea.KeyDown}))
	require.Equal(t, MenuActionSelect, km.MapKeyToMenuAction(tea.KeyMsg{Type: tea.KeyEnter}))
	require.Equal(t, MenuActionScoreboard, km.MapKeyToMenuAction(tea.KeyMsg{Type: tea.KeyTab}))
	require.Equal(t, MenuActionNone, km.MapKeyToMenuAction(runeKey("x")))
}

func TestHoldInputKeepsSteeringHeld(t *testing.T) {
	h := NewHoldInput(3)
	h.Press(core.ActionThrust)

	for i := 0; i < 3; i++ {
		require.True(t, h.Next().Has(core.ActionThrust), "tick %d", i)
	}
	require.True(t, h.Next().Empty(), "thrust released after hold window")
}

func TestHoldInputOneShotActions(t *testing.T) {
	h := NewHoldInput(3)
	h.Press(core.ActionFire)
	h.Press(core.ActionPause)

	first := h.Next()
	require.True(t, first.Has(core.ActionFire))
	require.True(t, first.Has(core.ActionPause))
	require.True(t, h.Next().Empty())
}

func TestHoldInputOppositeRotationCancels(t *testing.T) {
	h := NewHoldInput(5)
	h.Press(core.ActionRotateLeft)
	h.Next()
	h.Press(core.ActionRotateRight)

	in := h.Next()
	require.True(t, in.Has(core.ActionRotateRight))
	require.False(t, in.Has(core.ActionRotateLeft))
}

func TestHoldInputRelease(t *testing.T) {
	h := NewHoldInput(0)
	require.Equal(t, DefaultHoldTicks, h.holdTicks)

	h.Press(core.ActionThrust)
	h.Press(core.ActionFire)
	h.Release()
	require.True(t, h.Next().Empty())
}
