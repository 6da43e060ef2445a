package asteroids

import (
	"math"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// Autopilot is a scripted player for headless runs. It turns toward the
// nearest asteroid and fires once lined up. It never thrusts.
// Its output depends only on the views it is fed, so runs stay deterministic.
type Autopilot struct {
	TurnRate  float64 // Must match the ship's turn rate
	Tolerance float64 // Heading error below which it fires
	Cooldown  int     // Frames between shots

	sinceShot int
}

// NewAutopilot creates an autopilot for a ship turning turnRate radians per frame.
func NewAutopilot(turnRate float64) *Autopilot {
	return &Autopilot{
		TurnRate:  turnRate,
		Tolerance: 0.15,
		Cooldown:  10,
		sinceShot: 10,
	}
}

// Input returns the input for the frame after v.
func (a *Autopilot) Input(v View) core.InputFrame {
	in := core.NewInputFrame()
	a.sinceShot++

	target, ok := nearest(v)
	if !ok {
		return in
	}

	to := target.Sub(v.Ship.Pos)
	diff := angleDiff(math.Atan2(to.Y, to.X), v.Ship.Heading)

	switch {
	case diff > a.TurnRate/2:
		in.Set(core.ActionRotateRight)
	case diff < -a.TurnRate/2:
		in.Set(core.ActionRotateLeft)
	}

	if math.Abs(diff) < a.Tolerance && a.sinceShot >= a.Cooldown {
		in.Set(core.ActionFire)
		a.sinceShot = 0
	}
	return in
}

// nearest returns the position of the asteroid closest to the ship.
func nearest(v View) (core.Vec2, bool) {
	best := math.Inf(1)
	var pos core.Vec2
	for _, a := range v.Asteroids {
		if d := a.Pos.Distance(v.Ship.Pos); d < best {
			best, pos = d, a.Pos
		}
	}
	return pos, len(v.Asteroids) > 0
}

// angleDiff returns target-current normalized to [-π, π).
func angleDiff(target, current float64) float64 {
	d := math.Mod(target-current+math.Pi, 2*math.Pi)
	if d < 0 {
		d += 2 * math.Pi
	}
	return d - math.Pi
}
