package core

// RuntimeConfig is what the host tells a game when it (re)starts one.
type RuntimeConfig struct {
	ScreenW  int   // terminal columns
	ScreenH  int   // terminal rows
	TickRate int   // Step calls per second
	Seed     int64 // 0 lets the host pick one from the clock
}

// DefaultConfig is an 80x24 terminal at 60 ticks a second.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}
}

// FrameTime returns the simulated seconds covered by one tick.
func (c RuntimeConfig) FrameTime() float64 {
	if c.TickRate <= 0 {
		return 1.0 / 60.0
	}
	return 1.0 / float64(c.TickRate)
}

// GameState is the part of a game the host cares about: what to record
// when a game ends and whether the clock is stopped.
type GameState struct {
	Score    int
	Level    int // level reached, counted from 1; 0 before the first deal
	GameOver bool
	Paused   bool
}

// StepResult is what one Step produced.
type StepResult struct {
	State GameState
}

// SessionStore persists opaque saved-game blobs by slot name.
// A missing slot yields (nil, nil).
type SessionStore interface {
	LoadSession(slot string) ([]byte, error)
	SaveSession(slot string, data []byte) error
}
