package asteroids

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// Visual characters for rendering
const (
	MissileChar = '•'
	FlameChar   = '*'
	HeartChar   = '♥'
)

// Asteroid glyphs by tier
var asteroidGlyphs = map[Size]rune{
	SizeLarge:  '▓',
	SizeMedium: '▒',
	SizeSmall:  '░',
}

// Ship glyphs by heading octant, starting at "right" and turning clockwise (screen y grows down).
var shipGlyphs = [8]rune{'→', '↘', '↓', '↙', '←', '↖', '↑', '↗'}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		dst.DrawTextCentered(dst.Height()/2, "Window too small")
		return
	}

	view := g.world.View()
	proj := projector{cellW: g.cfg.World.CellWidth, cellH: g.cfg.World.CellHeight, top: 1}

	for _, a := range view.Asteroids {
		proj.drawAsteroid(dst, a)
	}
	for _, m := range view.Missiles {
		if m.Active {
			x, y := proj.cell(m.Pos)
			dst.SetColored(x, y, MissileChar, core.ColorBrightYellow)
		}
	}
	g.drawShip(dst, proj, view.Ship)
	g.drawHUD(dst, len(view.Asteroids))

	if g.paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}

	switch g.state {
	case StateWon:
		drawCenteredMessage(dst, "FIELD CLEARED", fmt.Sprintf("Score: %d  |  Press R to restart", g.score))
	case StateLost:
		drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", g.score))
	}
}

// projector maps world units to screen cells below the HUD row.
type projector struct {
	cellW, cellH float64
	top          int
}

func (p projector) cell(pos core.Vec2) (int, int) {
	return int(math.Floor(pos.X / p.cellW)), int(math.Floor(pos.Y/p.cellH)) + p.top
}

// drawAsteroid fills every cell whose centre lies inside the asteroid's circle.
// The centre cell is always drawn so small rocks stay visible.
func (p projector) drawAsteroid(dst *core.Screen, a AsteroidView) {
	glyph, ok := asteroidGlyphs[a.Size]
	if !ok {
		glyph = '#'
	}

	minX, minY := p.cell(a.Pos.Sub(core.V(a.Radius, a.Radius)))
	maxX, maxY := p.cell(a.Pos.Add(core.V(a.Radius, a.Radius)))
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			centre := core.V((float64(x)+0.5)*p.cellW, (float64(y-p.top)+0.5)*p.cellH)
			if centre.Distance(a.Pos) <= a.Radius {
				dst.SetColored(x, y, glyph, core.ColorGray)
			}
		}
	}

	cx, cy := p.cell(a.Pos)
	dst.SetColored(cx, cy, glyph, core.ColorGray)
}

func (g *Game) drawShip(dst *core.Screen, p projector, s ShipView) {
	// Blink while shielded
	if s.Shielded && g.world.Frame()/8%2 == 1 {
		return
	}

	if s.Thrusting {
		fx, fy := p.cell(s.Pos.Sub(core.FromAngle(s.Heading).Scale(p.cellW * 1.5)))
		dst.SetColored(fx, fy, FlameChar, core.ColorOrange)
	}

	x, y := p.cell(s.Pos)
	dst.SetColored(x, y, shipGlyph(s.Heading), core.ColorBrightCyan)
}

// shipGlyph picks the arrow closest to the heading.
func shipGlyph(heading float64) rune {
	octant := int(math.Round(heading/(math.Pi/4))) % 8
	if octant < 0 {
		octant += 8
	}
	return shipGlyphs[octant]
}

func (g *Game) drawHUD(dst *core.Screen, asteroids int) {
	hud := fmt.Sprintf(" Score: %d  Health: ", g.score)
	dst.DrawText(0, 0, hud)
	dst.DrawTextColored(len(hud), 0, strings.Repeat(string(HeartChar), g.health), core.ColorBrightRed)

	right := fmt.Sprintf("Asteroids: %d ", asteroids)
	if g.mode == ModeWaves {
		right = fmt.Sprintf("Wave: %d  %s", g.wave, right)
	}
	dst.DrawText(dst.Width()-len(right), 0, right)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawPanel(boxX, boxY, boxW, boxH)

	dst.DrawTextColored(boxX+(boxW-len(title))/2, boxY+1, title, core.ColorBrightWhite)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
