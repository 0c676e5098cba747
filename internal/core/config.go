package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Target simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic terrain (0 = platform picks)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0,
	}
}

// FlightOutcome describes how a flight ended.
type FlightOutcome int

const (
	FlightAirborne FlightOutcome = iota
	FlightLanded
	FlightCrashed
)

// String returns a human-readable name for the outcome.
func (o FlightOutcome) String() string {
	switch o {
	case FlightLanded:
		return "landed"
	case FlightCrashed:
		return "crashed"
	default:
		return "airborne"
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int           // Current score
	Outcome  FlightOutcome // How the flight ended, if it has
	Airborne time.Duration // Total simulated flight time
	GameOver bool          // Whether the flight has ended
	Paused   bool          // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation frame.
type StepResult struct {
	State GameState
}
