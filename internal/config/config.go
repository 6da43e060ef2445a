// Package config provides YAML-based game configuration loading and
// difficulty presets for the asteroids game.
package config

import (
	"errors"
	"fmt"
)

// AsteroidsConfig contains all tunable parameters of the asteroids simulation.
type AsteroidsConfig struct {
	World      WorldConfig      `yaml:"world"`
	Ship       ShipConfig       `yaml:"ship"`
	Missile    MissileConfig    `yaml:"missile"`
	Asteroids  AsteroidConfig   `yaml:"asteroids"`
	Rules      RulesConfig      `yaml:"rules"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Waves      WavesConfig      `yaml:"waves"`
}

// WorldConfig maps world units onto terminal cells.
// The viewport is screen columns * CellWidth by screen rows * CellHeight.
type WorldConfig struct {
	CellWidth  float64 `yaml:"cell_width"`
	CellHeight float64 `yaml:"cell_height"`
}

// ShipConfig defines the player ship's physics.
type ShipConfig struct {
	Radius   float64 `yaml:"radius"`
	Thrust   float64 `yaml:"thrust"`    // Velocity gained per thrusting frame
	Drag     float64 `yaml:"drag"`      // Velocity multiplier applied every frame
	TurnRate float64 `yaml:"turn_rate"` // Radians per frame
}

// MissileConfig defines projectile parameters.
type MissileConfig struct {
	Radius float64 `yaml:"radius"`
	Speed  float64 `yaml:"speed"`
}

// AsteroidConfig defines asteroid motion and spawning.
type AsteroidConfig struct {
	Speed       float64 `yaml:"speed"`
	SplitOffset float64 `yaml:"split_offset"`
	SpawnMargin float64 `yaml:"spawn_margin"` // Max distance from an edge for random spawns
}

// ShipHitPolicy decides what a ship-asteroid collision costs the player.
type ShipHitPolicy string

const (
	// PolicyHealth deducts one health point; the round ends when health runs out.
	PolicyHealth ShipHitPolicy = "health"
	// PolicyInstant ends the round on the first hit.
	PolicyInstant ShipHitPolicy = "instant"
)

// RulesConfig defines round rules.
type RulesConfig struct {
	ShipHitPolicy      ShipHitPolicy `yaml:"ship_hit_policy"`
	Health             int           `yaml:"health"`
	InvulnerableFrames int           `yaml:"invulnerable_frames"` // Shield time after a hit (health policy)
}

// ScoringConfig defines points per asteroid tier destroyed by a missile.
type ScoringConfig struct {
	Large  int `yaml:"large"`
	Medium int `yaml:"medium"`
	Small  int `yaml:"small"`
}

// DifficultyConfig maps presets to initial asteroid counts.
type DifficultyConfig struct {
	Asteroids int `yaml:"asteroids"` // Initial count used when no preset is applied
	Easy      int `yaml:"easy"`
	Normal    int `yaml:"normal"`
	Hard      int `yaml:"hard"`
}

// WavesConfig defines endless-mode progression.
type WavesConfig struct {
	Growth int `yaml:"growth"` // Extra asteroids per cleared wave
	Max    int `yaml:"max"`    // Upper bound on a wave's asteroid count
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// Presets lists the difficulty presets in menu order.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard}
}

// ParsePreset converts a CLI string to a preset.
// Returns false for an empty or unknown name.
func ParsePreset(name string) (DifficultyPreset, bool) {
	switch DifficultyPreset(name) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(name), true
	}
	return "", false
}

// CountForPreset returns the initial asteroid count for a preset.
func (d DifficultyConfig) CountForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return d.Easy
	case DifficultyNormal:
		return d.Normal
	case DifficultyHard:
		return d.Hard
	default:
		return d.Asteroids
	}
}

// WaveCount returns the asteroid count for the given 1-based wave.
func (w WavesConfig) WaveCount(initial, wave int) int {
	n := initial + (wave-1)*w.Growth
	if w.Max > 0 && n > w.Max {
		n = w.Max
	}
	if n < 1 {
		n = 1
	}
	return n
}

// Validate reports every invalid field at once.
func (c AsteroidsConfig) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}

	positive("world.cell_width", c.World.CellWidth)
	positive("world.cell_height", c.World.CellHeight)
	positive("ship.radius", c.Ship.Radius)
	positive("missile.radius", c.Missile.Radius)
	positive("missile.speed", c.Missile.Speed)
	positive("asteroids.speed", c.Asteroids.Speed)

	if c.Ship.Drag <= 0 || c.Ship.Drag > 1 {
		errs = append(errs, fmt.Errorf("ship.drag must be in (0, 1], got %v", c.Ship.Drag))
	}
	switch c.Rules.ShipHitPolicy {
	case PolicyHealth, PolicyInstant:
	default:
		errs = append(errs, fmt.Errorf("rules.ship_hit_policy: unknown policy %q", c.Rules.ShipHitPolicy))
	}
	if c.Rules.ShipHitPolicy == PolicyHealth && c.Rules.Health < 1 {
		errs = append(errs, fmt.Errorf("rules.health must be at least 1, got %d", c.Rules.Health))
	}
	if c.Difficulty.Asteroids < 1 {
		errs = append(errs, fmt.Errorf("difficulty.asteroids must be at least 1, got %d", c.Difficulty.Asteroids))
	}

	return errors.Join(errs...)
}
