package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
// The simulation and render intervals are independent cadences; drivers
// schedule Step and Render on them separately.
type RuntimeConfig struct {
	ScreenW        int           // Screen width in characters
	ScreenH        int           // Screen height in characters
	TickInterval   time.Duration // Time between simulation ticks
	RenderInterval time.Duration // Time between render passes
	Seed           int64         // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:        80,
		ScreenH:        24,
		TickInterval:   100 * time.Millisecond,
		RenderInterval: 50 * time.Millisecond,
		Seed:           0, // 0 means use current time in platform layer
	}
}

// RenderRate converts a frames-per-second value into a render interval.
// Non-positive rates fall back to the default interval.
func RenderRate(fps int) time.Duration {
	if fps <= 0 {
		return DefaultConfig().RenderInterval
	}
	return time.Second / time.Duration(fps)
}

// GameState is the platform-visible summary of a running game.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the session has ended
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State  GameState
	Ticked bool // False when the tick was skipped (paused or over)
}
