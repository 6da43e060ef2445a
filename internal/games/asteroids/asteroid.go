package asteroids

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// Size is an asteroid tier. Its value is the asteroid's diameter in world units.
type Size float64

// Asteroid tiers.
const (
	SizeSmall  Size = 10
	SizeMedium Size = 30
	SizeLarge  Size = 60
)

// sizeEpsilon bounds the float comparison used to decide "same tier".
const sizeEpsilon = 1e-6

// String returns the tier name.
func (s Size) String() string {
	switch {
	case sameSize(s, SizeLarge):
		return "large"
	case sameSize(s, SizeMedium):
		return "medium"
	case sameSize(s, SizeSmall):
		return "small"
	default:
		return "invalid"
	}
}

// smaller returns the next tier down.
// The second result is false for SMALL and for values that are not a tier.
func (s Size) smaller() (Size, bool) {
	switch {
	case sameSize(s, SizeLarge):
		return SizeMedium, true
	case sameSize(s, SizeMedium):
		return SizeSmall, true
	default:
		return 0, false
	}
}

func sameSize(a, b Size) bool {
	return math.Abs(float64(a-b)) < sizeEpsilon
}

// Asteroid is a drifting rock that wraps around the playfield.
type Asteroid struct {
	Pos  core.Vec2
	Vel  core.Vec2
	Size Size
}

// NewAsteroid creates an asteroid at pos heading in a uniformly random direction.
func NewAsteroid(rng *rand.Rand, pos core.Vec2, size Size, speed float64) *Asteroid {
	return &Asteroid{
		Pos:  pos,
		Vel:  randomHeading(rng).Scale(speed),
		Size: size,
	}
}

// SpawnAsteroid creates a large asteroid within margin of a random viewport
// edge, keeping fresh rocks away from the ship at the centre.
func SpawnAsteroid(rng *rand.Rand, vp Viewport, speed, margin float64) *Asteroid {
	w, h := vp.Width(), vp.Height()
	depth := func(limit float64) float64 {
		return rng.Float64() * math.Min(margin, limit/2)
	}

	var pos core.Vec2
	switch rng.Intn(4) {
	case 0: // left
		pos = core.V(depth(w), rng.Float64()*h)
	case 1: // right
		pos = core.V(w-depth(w), rng.Float64()*h)
	case 2: // top
		pos = core.V(rng.Float64()*w, depth(h))
	default: // bottom
		pos = core.V(rng.Float64()*w, h-depth(h))
	}

	return NewAsteroid(rng, pos, SizeLarge, speed)
}

// Position returns the asteroid's centre.
func (a *Asteroid) Position() core.Vec2 { return a.Pos }

// Radius returns half the tier diameter.
func (a *Asteroid) Radius() float64 { return float64(a.Size) / 2 }

// Move advances the asteroid by its velocity and wraps it into the viewport.
func (a *Asteroid) Move(vp Viewport) {
	a.Pos = wrap(a.Pos.Add(a.Vel), vp)
}

// Split returns the fragments produced when this asteroid is destroyed:
// two asteroids one tier smaller at (+offset, +offset) and (-offset, -offset)
// from its position, each with a fresh random heading. Small asteroids and
// invalid tiers produce none. The receiver is not modified.
func (a *Asteroid) Split(rng *rand.Rand, offset, speed float64) []*Asteroid {
	next, ok := a.Size.smaller()
	if !ok {
		return nil
	}

	return []*Asteroid{
		NewAsteroid(rng, a.Pos.Add(core.V(offset, offset)), next, speed),
		NewAsteroid(rng, a.Pos.Add(core.V(-offset, -offset)), next, speed),
	}
}

func randomHeading(rng *rand.Rand) core.Vec2 {
	return core.FromAngle(rng.Float64() * 2 * math.Pi)
}
