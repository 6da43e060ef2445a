package asteroids

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
)

var testBounds = Bounds{W: 640, H: 384}

// newTestWorld returns an empty world with the default physics and a fixed seed.
func newTestWorld(t *testing.T) *World {
	t.Helper()
	params := ParamsFromConfig(config.DefaultAsteroidsConfig())
	return NewWorld(params, rand.New(rand.NewSource(7)), testBounds)
}

// still returns an asteroid with zero velocity.
func still(x, y float64, size Size) *Asteroid {
	return &Asteroid{Pos: core.V(x, y), Size: size}
}

func sizesOf(list []*Asteroid) map[Size]int {
	counts := make(map[Size]int)
	for _, a := range list {
		counts[a.Size]++
	}
	return counts
}

func TestBound(t *testing.T) {
	tests := []struct {
		name       string
		coord, max float64
		expected   float64
	}{
		{"in bounds", 50, 100, 50},
		{"zero edge", 0, 100, 0},
		{"max edge", 100, 100, 100},
		{"below zero reflects past far edge", -10, 100, 110},
		{"past max", 110, 100, 10},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, Bound(tc.coord, tc.max))
		})
	}
}

func TestCollideSymmetricAndStrict(t *testing.T) {
	ship := NewShip(core.V(0, 0), 12)
	rock := still(17, 0, SizeSmall) // radius 5, exactly touching
	missile := NewMissile(core.V(20, 0), 0, 8, 3)

	require.False(t, Collide(ship, rock), "touching circles must not collide")
	require.Equal(t, Collide(ship, rock), Collide(rock, ship))

	rock.Pos = core.V(17-1e-9, 0)
	require.True(t, Collide(ship, rock))
	require.True(t, Collide(rock, ship))

	require.Equal(t, Collide(rock, missile), Collide(missile, rock))
	require.True(t, Collide(rock, missile))
}

func TestSplitArityAndPositions(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	tests := []struct {
		size     Size
		children int
		next     Size
	}{
		{SizeLarge, 2, SizeMedium},
		{SizeMedium, 2, SizeSmall},
		{SizeSmall, 0, 0},
		{Size(42), 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.size.String(), func(t *testing.T) {
			parent := still(200, 150, tc.size)
			children := parent.Split(rng, 20, 1)
			require.Len(t, children, tc.children)
			require.Equal(t, core.V(200, 150), parent.Pos, "split must not move the parent")

			if tc.children == 0 {
				return
			}
			require.Equal(t, core.V(220, 170), children[0].Pos)
			require.Equal(t, core.V(180, 130), children[1].Pos)
			for _, c := range children {
				require.Equal(t, tc.next, c.Size)
				require.InDelta(t, 1.0, c.Vel.Len(), 1e-9)
			}
		})
	}
}

func TestSpawnAsteroidNearEdge(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 200; i++ {
		a := SpawnAsteroid(rng, testBounds, 1, 60)
		require.Equal(t, SizeLarge, a.Size)
		require.InDelta(t, 1.0, a.Vel.Len(), 1e-9)

		edgeDist := math.Min(
			math.Min(a.Pos.X, testBounds.W-a.Pos.X),
			math.Min(a.Pos.Y, testBounds.H-a.Pos.Y),
		)
		require.LessOrEqual(t, edgeDist, 60.0)
	}
}

func TestAsteroidWraps(t *testing.T) {
	a := &Asteroid{Pos: core.V(639.5, 10), Vel: core.V(1, 0), Size: SizeLarge}
	a.Move(testBounds)
	require.InDelta(t, 0.5, a.Pos.X, 1e-9)
	require.InDelta(t, 10, a.Pos.Y, 1e-9)
}

func TestShipThrustAndDrag(t *testing.T) {
	s := NewShip(core.V(100, 100), 12)
	s.Heading = 0
	s.Thrusting = true
	s.Move(testBounds, 0.5, 0.99)

	require.InDelta(t, 100.5, s.Pos.X, 1e-9)
	require.InDelta(t, 0.5*0.99, s.Vel.X, 1e-9)

	s.Thrusting = false
	before := s.Vel
	s.Move(testBounds, 0.5, 0.99)
	require.InDelta(t, before.X*0.99, s.Vel.X, 1e-9, "drag applies without thrust")
}

func TestShipWrapsEveryEdge(t *testing.T) {
	tests := []struct {
		name     string
		pos, vel core.Vec2
		expected core.Vec2
	}{
		{"left reflects past right edge", core.V(1, 100), core.V(-3, 0), core.V(642, 100)},
		{"right", core.V(639, 100), core.V(3, 0), core.V(2, 100)},
		{"top reflects past bottom edge", core.V(100, 1), core.V(0, -3), core.V(100, 386)},
		{"bottom", core.V(100, 383), core.V(0, 3), core.V(100, 2)},
		{"corner", core.V(1, 383), core.V(-3, 3), core.V(642, 2)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewShip(tc.pos, 12)
			s.Vel = tc.vel
			s.Move(testBounds, 0.15, 1)
			require.Equal(t, tc.expected, s.Pos)
		})
	}
}

func TestMissileDeactivatesOnEveryEdge(t *testing.T) {
	tests := []struct {
		name     string
		pos, vel core.Vec2
		active   bool
	}{
		{"left", core.V(2, 100), core.V(-8, 0), false},
		{"top", core.V(100, 2), core.V(0, -8), false},
		{"right", core.V(635, 100), core.V(8, 0), false},
		{"bottom", core.V(100, 380), core.V(0, 8), false},
		{"inside", core.V(100, 100), core.V(8, 8), true},
		{"lands on edge", core.V(8, 100), core.V(-8, 0), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := &Missile{Pos: tc.pos, Vel: tc.vel, Active: true, radius: 3}
			m.Move(testBounds)
			require.Equal(t, tc.active, m.Active)
			require.Equal(t, tc.pos.Add(tc.vel), m.Pos, "missiles are never wrapped")
		})
	}
}

func TestShipRotateNormalizes(t *testing.T) {
	s := NewShip(core.V(0, 0), 12)
	s.Heading = math.Pi - 0.05
	s.Rotate(0.1)
	require.InDelta(t, -math.Pi+0.05, s.Heading, 1e-9)

	s.Rotate(-0.1)
	require.InDelta(t, math.Pi-0.05, s.Heading, 1e-9)
}

func TestMissileLeavesBoundsAndStops(t *testing.T) {
	w := newTestWorld(t)
	m := NewMissile(core.V(635, 100), 0, 8, 3)
	w.AddMissile(m)

	w.Step(Intents{}, testBounds)
	require.False(t, m.Active)
	require.Equal(t, core.V(643, 100), m.Pos)

	m.Move(testBounds)
	require.Equal(t, core.V(643, 100), m.Pos, "inactive missiles never move")

	w.Step(Intents{}, testBounds)
	require.Empty(t, w.Missiles(), "inactive missiles are purged")
}

func TestFireLaunchesOneMissileFromNose(t *testing.T) {
	w := newTestWorld(t)
	w.Step(Intents{FirePressed: true}, testBounds)
	require.Len(t, w.Missiles(), 1)

	m := w.Missiles()[0]
	require.True(t, m.Active)
	require.InDelta(t, 8.0, m.Vel.Len(), 1e-9)
	require.Less(t, m.Pos.Y, w.Ship().Pos.Y, "ship starts pointing up")

	w.Step(Intents{}, testBounds)
	require.Len(t, w.Missiles(), 1)
}

func TestEqualSizeMutualDestruction(t *testing.T) {
	w := newTestWorld(t)
	w.AddAsteroid(still(100, 100, SizeMedium))
	w.AddAsteroid(still(110, 100, SizeMedium))

	res := w.Step(Intents{}, testBounds)
	require.False(t, res.Won)
	require.Len(t, w.Asteroids(), 4)
	require.Equal(t, map[Size]int{SizeSmall: 4}, sizesOf(w.Asteroids()))
}

func TestUnequalSizeAsymmetricDestruction(t *testing.T) {
	w := newTestWorld(t)
	large := still(100, 100, SizeLarge)
	w.AddAsteroid(large)
	w.AddAsteroid(still(130, 100, SizeMedium))

	w.Step(Intents{}, testBounds)
	require.Equal(t, map[Size]int{SizeLarge: 1, SizeSmall: 2}, sizesOf(w.Asteroids()))
	require.Same(t, large, w.Asteroids()[0])
	require.Equal(t, core.V(100, 100), large.Pos)
}

func TestAsteroidPassResolvesFirstHitPerAsteroid(t *testing.T) {
	w := newTestWorld(t)
	w.AddAsteroid(still(100, 100, SizeLarge))
	w.AddAsteroid(still(100, 132, SizeSmall))
	third := still(132, 100, SizeSmall) // overlaps the large one, but i=0 already matched
	w.AddAsteroid(third)

	w.Step(Intents{}, testBounds)
	require.Len(t, w.Asteroids(), 2)
	require.Same(t, third, w.Asteroids()[1])
}

func TestAsteroidMatchedTwiceSplitsTwice(t *testing.T) {
	w := newTestWorld(t)
	w.AddAsteroid(still(100, 100, SizeMedium))
	w.AddAsteroid(still(100, 120, SizeMedium))
	w.AddAsteroid(still(100, 145, SizeMedium))

	w.Step(Intents{}, testBounds)
	require.Equal(t, map[Size]int{SizeSmall: 8}, sizesOf(w.Asteroids()))
}

func TestShipCollisionSplitsAsteroid(t *testing.T) {
	w := newTestWorld(t)
	centre := w.Ship().Pos
	w.AddAsteroid(still(centre.X+20, centre.Y, SizeLarge))

	res := w.Step(Intents{}, testBounds)
	require.True(t, res.ShipDestroyed)
	require.Equal(t, map[Size]int{SizeMedium: 2}, sizesOf(w.Asteroids()))
}

func TestShipPassStopsAtFirstHit(t *testing.T) {
	w := newTestWorld(t)
	centre := w.Ship().Pos
	w.AddAsteroid(still(centre.X-10, centre.Y, SizeSmall))
	second := still(centre.X+10, centre.Y, SizeSmall)
	w.AddAsteroid(second)
	far := still(50, 50, SizeLarge)
	w.AddAsteroid(far)

	res := w.Step(Intents{}, testBounds)
	require.True(t, res.ShipDestroyed)
	require.Len(t, w.Asteroids(), 2, "only the first overlapping asteroid is struck")
	require.Same(t, second, w.Asteroids()[0])
	require.Same(t, far, w.Asteroids()[1])

	res = w.Step(Intents{}, testBounds)
	require.True(t, res.ShipDestroyed, "the remaining overlap is resolved next frame")
	require.Equal(t, []*Asteroid{far}, w.Asteroids())
}

func TestShieldSkipsShipPass(t *testing.T) {
	w := newTestWorld(t)
	centre := w.Ship().Pos
	w.AddAsteroid(still(centre.X, centre.Y, SizeSmall))
	w.Shield(2)

	require.False(t, w.Step(Intents{}, testBounds).ShipDestroyed)
	require.False(t, w.Step(Intents{}, testBounds).ShipDestroyed)
	require.False(t, w.Shielded())
	require.True(t, w.Step(Intents{}, testBounds).ShipDestroyed)
}

func TestMissileDestroysAtMostOneAsteroid(t *testing.T) {
	w := newTestWorld(t)
	w.AddAsteroid(still(100, 100, SizeSmall))
	w.AddAsteroid(still(100, 112, SizeSmall))
	m := NewMissile(core.V(100, 98), math.Pi/2, 8, 3)
	w.AddMissile(m)

	res := w.Step(Intents{}, testBounds)
	require.False(t, m.Active)
	require.Equal(t, []Size{SizeSmall}, res.MissileKills)
	require.Len(t, w.Asteroids(), 1)
	require.Equal(t, core.V(100, 112), w.Asteroids()[0].Pos)
}

func TestMissileOnQueuedAsteroidScoresNothing(t *testing.T) {
	w := newTestWorld(t)
	w.AddAsteroid(still(100, 100, SizeMedium))
	w.AddAsteroid(still(110, 100, SizeMedium))
	m := &Missile{Pos: core.V(100, 90), Vel: core.V(0, 8), Active: true, radius: 3}
	w.AddMissile(m)

	res := w.Step(Intents{}, testBounds)
	require.False(t, m.Active)
	require.Empty(t, res.MissileKills, "the asteroid pass already claimed it")
	// Both mediums split once in the asteroid pass, the first splits again under the missile.
	require.Equal(t, map[Size]int{SizeSmall: 6}, sizesOf(w.Asteroids()))
}

func TestSingleSmallAsteroidEndToEnd(t *testing.T) {
	w := newTestWorld(t)
	w.AddAsteroid(still(100, 100, SizeSmall))

	res := w.Step(Intents{}, testBounds)
	require.False(t, res.Won)
	require.Len(t, w.Asteroids(), 1)
	require.Equal(t, core.V(100, 100), w.Asteroids()[0].Pos)

	w.AddMissile(NewMissile(core.V(100, 90), math.Pi/2, 8, 3))
	res = w.Step(Intents{}, testBounds)
	require.Empty(t, w.Asteroids())
	require.True(t, res.Won)
}

func TestQuitStopsBeforeSimulating(t *testing.T) {
	w := newTestWorld(t)
	w.AddAsteroid(&Asteroid{Pos: core.V(100, 100), Vel: core.V(1, 0), Size: SizeLarge})

	res := w.Step(Intents{Quit: true, Thrust: true}, testBounds)
	require.True(t, res.Quit)
	require.Equal(t, uint64(0), w.Frame())
	require.Equal(t, core.V(100, 100), w.Asteroids()[0].Pos)
}

func TestRemoveIndices(t *testing.T) {
	list := []*Asteroid{
		still(0, 0, SizeSmall),
		still(1, 0, SizeSmall),
		still(2, 0, SizeSmall),
		still(3, 0, SizeSmall),
	}
	keep0, keep3 := list[0], list[3]

	out := removeIndices(list, []int{1, 2, 1, 9, -1})
	require.Len(t, out, 2)
	require.Same(t, keep0, out[0])
	require.Same(t, keep3, out[1])

	require.Len(t, removeIndices(out, nil), 2)
}

func TestViewDigestDeterministic(t *testing.T) {
	run := func() uint64 {
		params := ParamsFromConfig(config.DefaultAsteroidsConfig())
		w := NewWorld(params, rand.New(rand.NewSource(99)), testBounds)
		w.Populate(10, testBounds)
		for i := 0; i < 240; i++ {
			w.Step(Intents{
				RotateLeft:  i%40 < 10,
				Thrust:      i%60 < 20,
				FirePressed: i%15 == 0,
			}, testBounds)
		}
		return w.View().Digest()
	}

	require.Equal(t, run(), run())

	w := newTestWorld(t)
	before := w.View().Digest()
	w.Step(Intents{Thrust: true}, testBounds)
	require.NotEqual(t, before, w.View().Digest())
}
