package asteroids

import (
	"math"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// Ship is the player's craft. It drifts with inertia and wraps around the playfield.
type Ship struct {
	Pos       core.Vec2
	Vel       core.Vec2
	Heading   float64 // Radians; 0 points right, -Pi/2 points up
	Thrusting bool
	radius    float64
}

// NewShip creates a ship at rest at pos, pointing up.
func NewShip(pos core.Vec2, radius float64) *Ship {
	return &Ship{
		Pos:     pos,
		Heading: -math.Pi / 2,
		radius:  radius,
	}
}

// Position returns the ship's centre.
func (s *Ship) Position() core.Vec2 { return s.Pos }

// Radius returns the fixed collision radius.
func (s *Ship) Radius() float64 { return s.radius }

// Rotate turns the ship by delta radians, keeping the heading in [-Pi, Pi).
func (s *Ship) Rotate(delta float64) {
	h := math.Mod(s.Heading+delta+math.Pi, 2*math.Pi)
	if h < 0 {
		h += 2 * math.Pi
	}
	s.Heading = h - math.Pi
}

// Move applies thrust, advances and wraps the position, then applies drag.
// Drag applies every frame whether or not the ship is thrusting.
func (s *Ship) Move(vp Viewport, thrust, drag float64) {
	if s.Thrusting {
		s.Vel = s.Vel.Add(core.FromAngle(s.Heading).Scale(thrust))
	}
	s.Pos = wrap(s.Pos.Add(s.Vel), vp)
	s.Vel = s.Vel.Scale(drag)
}

// Nose returns the point on the hull the ship is facing, where missiles launch.
func (s *Ship) Nose() core.Vec2 {
	return s.Pos.Add(core.FromAngle(s.Heading).Scale(s.radius))
}
