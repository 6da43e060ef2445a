package config

import (
	_ "embed"
)

//go:embed defaults/asteroids.yaml
var defaultAsteroidsYAML []byte

// DefaultAsteroidsConfig returns the default asteroids configuration.
func DefaultAsteroidsConfig() AsteroidsConfig {
	return AsteroidsConfig{
		World: WorldConfig{
			CellWidth:  8,
			CellHeight: 16,
		},
		Ship: ShipConfig{
			Radius:   12,
			Thrust:   0.15,
			Drag:     0.99,
			TurnRate: 0.1,
		},
		Missile: MissileConfig{
			Radius: 3,
			Speed:  8,
		},
		Asteroids: AsteroidConfig{
			Speed:       1,
			SplitOffset: 20,
			SpawnMargin: 60,
		},
		Rules: RulesConfig{
			ShipHitPolicy:      PolicyHealth,
			Health:             3,
			InvulnerableFrames: 120,
		},
		Scoring: ScoringConfig{
			Large:  20,
			Medium: 50,
			Small:  100,
		},
		Difficulty: DifficultyConfig{
			Asteroids: 5,
			Easy:      5,
			Normal:    30,
			Hard:      100,
		},
		Waves: WavesConfig{
			Growth: 2,
			Max:    100,
		},
	}
}
