package asteroids

import "github.com/vovakirdan/tui-asteroids/internal/core"

// Viewport supplies the current playfield size in world units.
// It is sampled every frame so the field follows terminal resizes.
type Viewport interface {
	Width() float64
	Height() float64
}

// Bounds is a fixed-size Viewport.
type Bounds struct {
	W, H float64
}

// Width returns the playfield width.
func (b Bounds) Width() float64 { return b.W }

// Height returns the playfield height.
func (b Bounds) Height() float64 { return b.H }

// Center returns the middle of the viewport.
func Center(vp Viewport) core.Vec2 {
	return core.V(vp.Width()/2, vp.Height()/2)
}

// Bound wraps a single coordinate into the playfield.
// Negative coordinates become max - coord (not max + coord), so -10 on a
// 100-wide field lands at 110 and re-enters on the next frame's wrap.
func Bound(coord, max float64) float64 {
	switch {
	case coord < 0:
		return max - coord
	case coord > max:
		return coord - max
	default:
		return coord
	}
}

// wrap applies Bound to both axes independently.
func wrap(p core.Vec2, vp Viewport) core.Vec2 {
	return core.V(Bound(p.X, vp.Width()), Bound(p.Y, vp.Height()))
}

// inBounds reports whether p lies inside [0, width] x [0, height].
func inBounds(p core.Vec2, vp Viewport) bool {
	return p.X >= 0 && p.X <= vp.Width() && p.Y >= 0 && p.Y <= vp.Height()
}
