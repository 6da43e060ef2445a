package core

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(12, 4)
	require.Equal(t, 12, s.Width())
	require.Equal(t, 4, s.Height())
	require.Equal(t, strings.Repeat(strings.Repeat(" ", 12)+"\n", 3)+strings.Repeat(" ", 12), s.String())

	empty := NewScreen(-3, 2)
	require.Equal(t, 0, empty.Width())
	require.Equal(t, "\n", empty.String())
}

func TestScreenBoundsAreClipped(t *testing.T) {
	s := NewScreen(5, 3)
	for _, p := range [][2]int{{-1, 0}, {5, 0}, {0, -1}, {0, 3}} {
		s.Set(p[0], p[1], 'X')
		require.Equal(t, ' ', s.Get(p[0], p[1]))
	}
	require.NotContains(t, s.String(), "X")

	s.DrawText(3, 1, "hello")
	require.Equal(t, "   he", s.Row(1))
	require.Equal(t, "     ", s.Row(7))
}

func TestScreenColors(t *testing.T) {
	s := NewScreen(10, 5)
	s.SetColored(1, 2, '*', ColorBrightCyan)
	require.Equal(t, Cell{Rune: '*', Color: ColorBrightCyan}, s.GetCell(1, 2))

	s.DrawTextColored(0, 0, "♥♥", ColorBrightRed)
	require.Equal(t, Cell{Rune: '♥', Color: ColorBrightRed}, s.GetCell(1, 0))
	require.Equal(t, blank, s.GetCell(2, 0), "multi-byte runes take one cell each")

	s.Clear()
	require.Equal(t, blank, s.GetCell(1, 2))
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(11, 1)
	s.DrawTextCentered(0, "abc")
	require.Equal(t, "    abc    ", s.Row(0))
}

func TestScreenDrawPanel(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawText(0, 1, "xxxxxx")
	s.DrawPanel(0, 0, 5, 3)

	require.Equal(t, "┌───┐ ", s.Row(0))
	require.Equal(t, "│   │x", s.Row(1))
	require.Equal(t, "└───┘ ", s.Row(2))

	// Degenerate panels draw nothing
	s.Clear()
	s.DrawPanel(0, 0, 1, 3)
	require.Equal(t, "      ", s.Row(0))
}

func TestScreenResize(t *testing.T) {
	tests := []struct {
		name       string
		w, h       int
		wantRow0   string
		wantHeight int
	}{
		{"grow", 6, 3, "ab    ", 3},
		{"shrink", 1, 1, "a", 1},
		{"same", 3, 2, "ab ", 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScreen(3, 2)
			s.DrawText(0, 0, "ab")
			s.DrawText(0, 1, "cd")

			s.Resize(tt.w, tt.h)
			require.Equal(t, tt.w, s.Width())
			require.Equal(t, tt.wantHeight, s.Height())
			require.Equal(t, tt.wantRow0, s.Row(0))
			if tt.h > 1 {
				require.Equal(t, 'c', s.Get(0, 1))
			}
		})
	}
}
