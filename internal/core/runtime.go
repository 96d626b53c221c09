package core

import "time"

// RuntimeConfig is what the front end hands a game on Reset.
type RuntimeConfig struct {
	ScreenW  int   // Game area width in cells
	ScreenH  int   // Game area height in cells
	TickRate int   // Ticks per second; 60 when unset
	Seed     int64 // RNG seed; the platform replaces 0 with a time-based seed
}

// TickInterval returns the wall-clock time between two ticks.
func (c RuntimeConfig) TickInterval() time.Duration {
	rate := c.TickRate
	if rate <= 0 {
		rate = 60
	}
	return time.Second / time.Duration(rate)
}

// GameState is the part of a game's state the front end shows.
type GameState struct {
	Score    int
	GameOver bool // Player has been hit
	Halted   bool // Simulation stopped after the death delay
	Paused   bool
}

// StepResult is returned by Game.Step after each tick.
type StepResult struct {
	State GameState
}
