// Package asteroids implements an Asteroids-style arcade game.
// The player pilots a ship with inertia through a wrap-around field of
// asteroids, firing missiles that split large rocks into smaller ones.
package asteroids

import "github.com/vovakirdan/tui-asteroids/internal/core"

// Entity is anything that takes part in collision detection.
// Ships, asteroids and missiles differ only in their radius.
type Entity interface {
	Position() core.Vec2
	Radius() float64
}

// Collide reports whether the collision circles of a and b overlap.
// Touching circles (distance exactly equal to the radius sum) do not collide.
func Collide(a, b Entity) bool {
	return a.Position().Distance(b.Position()) < a.Radius()+b.Radius()
}
