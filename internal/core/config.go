package core

import "time"

// DefaultTickRate is the simulation rate when none is configured.
const DefaultTickRate = 60

// RuntimeConfig is what the platform tells a game when it starts a round.
type RuntimeConfig struct {
	ScreenW  int   // Terminal columns
	ScreenH  int   // Terminal rows, including the HUD row
	TickRate int   // Simulation steps per second
	Seed     int64 // Seeds the game's RNG; equal seeds give equal rounds
}

// DefaultConfig returns an 80x24 config at the default tick rate with seed 0.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: DefaultTickRate,
	}
}

// WithDefaults fills a non-positive tick rate and a zero seed.
// The seed comes from the clock, so only interactive callers should use it.
func (c RuntimeConfig) WithDefaults() RuntimeConfig {
	if c.TickRate <= 0 {
		c.TickRate = DefaultTickRate
	}
	if c.Seed == 0 {
		c.Seed = time.Now().UnixNano()
	}
	return c
}

// TickInterval returns the wall-clock time between simulation steps.
func (c RuntimeConfig) TickInterval() time.Duration {
	rate := c.TickRate
	if rate <= 0 {
		rate = DefaultTickRate
	}
	return time.Second / time.Duration(rate)
}

// GameState is the part of a game's state the platform acts on.
type GameState struct {
	Score    int
	GameOver bool // The round has ended, won or lost
	Won      bool // The round ended with the field cleared
	Paused   bool
}

// StepResult is returned by Game.Step after each tick.
type StepResult struct {
	State GameState
}
