package asteroids

import (
	"math/rand"
	"slices"

	"github.com/vovakirdan/tui-asteroids/internal/config"
)

// Params holds the physics constants a World runs with.
type Params struct {
	ShipRadius    float64
	Thrust        float64
	Drag          float64
	TurnRate      float64
	MissileRadius float64
	MissileSpeed  float64
	AsteroidSpeed float64
	SplitOffset   float64
	SpawnMargin   float64
}

// ParamsFromConfig extracts simulation constants from a game config.
func ParamsFromConfig(cfg config.AsteroidsConfig) Params {
	return Params{
		ShipRadius:    cfg.Ship.Radius,
		Thrust:        cfg.Ship.Thrust,
		Drag:          cfg.Ship.Drag,
		TurnRate:      cfg.Ship.TurnRate,
		MissileRadius: cfg.Missile.Radius,
		MissileSpeed:  cfg.Missile.Speed,
		AsteroidSpeed: cfg.Asteroids.Speed,
		SplitOffset:   cfg.Asteroids.SplitOffset,
		SpawnMargin:   cfg.Asteroids.SpawnMargin,
	}
}

// Intents is one frame of player input.
// FirePressed must be edge-triggered by the caller: one missile per press.
type Intents struct {
	RotateLeft  bool
	RotateRight bool
	Thrust      bool
	FirePressed bool
	Quit        bool
}

// FrameResult reports what happened during one World.Step.
type FrameResult struct {
	Quit          bool   // Quit was requested; nothing was simulated
	ShipDestroyed bool   // At least one asteroid struck the ship
	Won           bool   // No asteroids remain
	MissileKills  []Size // Tiers of asteroids destroyed by missiles this frame
}

// resolution collects the deferred effects of the collision passes.
// Removal indices refer to the asteroid slice as it was before any pass ran.
type resolution struct {
	remove []int
	spawn  []*Asteroid
}

// World owns every entity and advances them one frame at a time.
// It is not safe for concurrent use.
type World struct {
	params    Params
	rng       *rand.Rand
	ship      *Ship
	asteroids []*Asteroid
	missiles  []*Missile
	shield    int // Frames left during which the ship ignores asteroids
	frame     uint64
}

// NewWorld creates a world with the ship resting at the centre of vp and no asteroids.
func NewWorld(params Params, rng *rand.Rand, vp Viewport) *World {
	return &World{
		params: params,
		rng:    rng,
		ship:   NewShip(Center(vp), params.ShipRadius),
	}
}

// Populate spawns n large asteroids near the edges of vp.
func (w *World) Populate(n int, vp Viewport) {
	for i := 0; i < n; i++ {
		w.asteroids = append(w.asteroids, SpawnAsteroid(w.rng, vp, w.params.AsteroidSpeed, w.params.SpawnMargin))
	}
}

// AddAsteroid places a specific asteroid in the field.
func (w *World) AddAsteroid(a *Asteroid) {
	w.asteroids = append(w.asteroids, a)
}

// AddMissile places a specific missile in the field.
func (w *World) AddMissile(m *Missile) {
	w.missiles = append(w.missiles, m)
}

// Ship returns the player's ship.
func (w *World) Ship() *Ship { return w.ship }

// Asteroids returns the live asteroids. The slice must not be modified.
func (w *World) Asteroids() []*Asteroid { return w.asteroids }

// Missiles returns the tracked missiles. The slice must not be modified.
func (w *World) Missiles() []*Missile { return w.missiles }

// Frame returns the number of simulated frames.
func (w *World) Frame() uint64 { return w.frame }

// Shield makes the ship ignore asteroid collisions for the given number of frames.
func (w *World) Shield(frames int) {
	if frames > w.shield {
		w.shield = frames
	}
}

// Shielded reports whether the ship currently ignores asteroids.
func (w *World) Shielded() bool { return w.shield > 0 }

// Step advances the simulation by one frame:
// input, purge, motion, the three collision passes, then deferred removal and spawning.
func (w *World) Step(in Intents, vp Viewport) FrameResult {
	if in.Quit {
		return FrameResult{Quit: true}
	}
	w.frame++

	w.applyIntents(in)
	w.purgeMissiles()

	w.ship.Move(vp, w.params.Thrust, w.params.Drag)
	for _, a := range w.asteroids {
		a.Move(vp)
	}
	for _, m := range w.missiles {
		m.Move(vp)
	}

	var res resolution
	var result FrameResult

	w.collideAsteroids(&res)
	if w.shield > 0 {
		w.shield--
	} else {
		result.ShipDestroyed = w.collideShip(&res)
	}
	result.MissileKills = w.collideMissiles(&res)

	w.asteroids = removeIndices(w.asteroids, res.remove)
	w.asteroids = append(w.asteroids, res.spawn...)

	result.Won = len(w.asteroids) == 0
	return result
}

func (w *World) applyIntents(in Intents) {
	if in.RotateLeft {
		w.ship.Rotate(-w.params.TurnRate)
	}
	if in.RotateRight {
		w.ship.Rotate(w.params.TurnRate)
	}
	w.ship.Thrusting = in.Thrust

	if in.FirePressed {
		w.missiles = append(w.missiles, NewMissile(
			w.ship.Nose(), w.ship.Heading, w.params.MissileSpeed, w.params.MissileRadius,
		))
	}
}

// purgeMissiles drops inactive missiles before anything moves.
func (w *World) purgeMissiles() {
	live := w.missiles[:0]
	for _, m := range w.missiles {
		if m.Active {
			live = append(live, m)
		}
	}
	for i := len(live); i < len(w.missiles); i++ {
		w.missiles[i] = nil
	}
	w.missiles = live
}

// destroy marks asteroid i for removal and queues its fragments.
func (w *World) destroy(i int, res *resolution) {
	res.remove = append(res.remove, i)
	res.spawn = append(res.spawn, w.asteroids[i].Split(w.rng, w.params.SplitOffset, w.params.AsteroidSpeed)...)
}

// collideAsteroids checks unordered pairs. Each i resolves at most its first hit;
// an asteroid already matched as j may still match again as a later i.
func (w *World) collideAsteroids(res *resolution) {
	for i := 0; i < len(w.asteroids); i++ {
		for j := i + 1; j < len(w.asteroids); j++ {
			a, b := w.asteroids[i], w.asteroids[j]
			if !Collide(a, b) {
				continue
			}
			switch {
			case sameSize(a.Size, b.Size):
				w.destroy(i, res)
				w.destroy(j, res)
			case a.Size < b.Size:
				w.destroy(i, res)
			default:
				w.destroy(j, res)
			}
			break
		}
	}
}

// collideShip destroys the first asteroid touching the ship and reports the hit.
// Further overlapping asteroids are left for later frames.
func (w *World) collideShip(res *resolution) bool {
	for i, a := range w.asteroids {
		if Collide(w.ship, a) {
			w.destroy(i, res)
			return true
		}
	}
	return false
}

// collideMissiles lets each active missile destroy the first asteroid it touches.
// An asteroid already queued by an earlier pass still splits again, but only
// the first missile to claim a fresh asteroid is credited with the kill.
func (w *World) collideMissiles(res *resolution) []Size {
	var kills []Size
	for _, m := range w.missiles {
		if !m.Active {
			continue
		}
		for i, a := range w.asteroids {
			if Collide(m, a) {
				m.Active = false
				if !slices.Contains(res.remove, i) {
					kills = append(kills, a.Size)
				}
				w.destroy(i, res)
				break
			}
		}
	}
	return kills
}

// removeIndices deletes the given positions from list.
// Duplicates and out-of-range indices are ignored; removal runs from the
// highest index down so earlier indices stay valid.
func removeIndices(list []*Asteroid, indices []int) []*Asteroid {
	if len(indices) == 0 {
		return list
	}

	unique := make([]int, 0, len(indices))
	seen := make(map[int]bool, len(indices))
	for _, idx := range indices {
		if !seen[idx] {
			seen[idx] = true
			unique = append(unique, idx)
		}
	}
	slices.Sort(unique)
	slices.Reverse(unique)

	for _, idx := range unique {
		if idx < 0 || idx >= len(list) {
			continue
		}
		list = append(list[:idx], list[idx+1:]...)
	}
	return list
}

// View captures a read-only copy of the frame for rendering.
func (w *World) View() View {
	v := View{
		Frame: w.frame,
		Ship: ShipView{
			Pos:       w.ship.Pos,
			Heading:   w.ship.Heading,
			Thrusting: w.ship.Thrusting,
			Shielded:  w.shield > 0,
		},
		Asteroids: make([]AsteroidView, len(w.asteroids)),
		Missiles:  make([]MissileView, 0, len(w.missiles)),
	}
	for i, a := range w.asteroids {
		v.Asteroids[i] = AsteroidView{Pos: a.Pos, Size: a.Size, Radius: a.Radius()}
	}
	for _, m := range w.missiles {
		v.Missiles = append(v.Missiles, MissileView{Pos: m.Pos, Active: m.Active})
	}
	return v
}
