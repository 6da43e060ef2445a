package asteroids

import "github.com/vovakirdan/tui-asteroids/internal/core"

// Missile travels in a straight line until it leaves the viewport or hits an asteroid.
type Missile struct {
	Pos    core.Vec2
	Vel    core.Vec2
	Active bool
	radius float64
}

// NewMissile launches a missile from pos along heading.
func NewMissile(pos core.Vec2, heading, speed, radius float64) *Missile {
	return &Missile{
		Pos:    pos,
		Vel:    core.FromAngle(heading).Scale(speed),
		Active: true,
		radius: radius,
	}
}

// Position returns the missile's centre.
func (m *Missile) Position() core.Vec2 { return m.Pos }

// Radius returns the fixed collision radius.
func (m *Missile) Radius() float64 { return m.radius }

// Move advances an active missile and deactivates it once it leaves the viewport.
// Inactive missiles never move again.
func (m *Missile) Move(vp Viewport) {
	if !m.Active {
		return
	}
	m.Pos = m.Pos.Add(m.Vel)
	if !inBounds(m.Pos, vp) {
		m.Active = false
	}
}
