package asteroids

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// View is a read-only copy of one frame of the world, handed to renderers.
type View struct {
	Frame     uint64
	Ship      ShipView
	Asteroids []AsteroidView
	Missiles  []MissileView
}

// ShipView is the renderable state of the ship.
type ShipView struct {
	Pos       core.Vec2
	Heading   float64
	Thrusting bool
	Shielded  bool
}

// AsteroidView is the renderable state of an asteroid.
type AsteroidView struct {
	Pos    core.Vec2
	Size   Size
	Radius float64
}

// MissileView is the renderable state of a missile.
type MissileView struct {
	Pos    core.Vec2
	Active bool
}

// Digest hashes every field of the view. Two runs with the same seed and
// inputs produce the same digest frame for frame.
func (v View) Digest() uint64 {
	d := xxhash.New()
	var buf [8]byte

	putU := func(u uint64) {
		binary.LittleEndian.PutUint64(buf[:], u)
		//nolint:errcheck // xxhash.Digest.Write never fails
		d.Write(buf[:])
	}
	putF := func(f float64) { putU(math.Float64bits(f)) }
	putB := func(b bool) {
		if b {
			putU(1)
		} else {
			putU(0)
		}
	}

	putU(v.Frame)
	putF(v.Ship.Pos.X)
	putF(v.Ship.Pos.Y)
	putF(v.Ship.Heading)
	putB(v.Ship.Thrusting)
	putB(v.Ship.Shielded)

	putU(uint64(len(v.Asteroids)))
	for _, a := range v.Asteroids {
		putF(a.Pos.X)
		putF(a.Pos.Y)
		putF(float64(a.Size))
	}

	putU(uint64(len(v.Missiles)))
	for _, m := range v.Missiles {
		putF(m.Pos.X)
		putF(m.Pos.Y)
		putB(m.Active)
	}

	return d.Sum64()
}
