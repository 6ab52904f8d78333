package config

import (
	_ "embed"
)

//go:embed defaults/matchem.yaml
var defaultMatchemYAML []byte

// DefaultMatchemConfig returns the default Matchem Poker configuration.
func DefaultMatchemConfig() MatchemConfig {
	return MatchemConfig{
		Grid: MatchemGrid{
			Width:  6,
			Height: 8,
		},
		Gameplay: MatchemGameplay{
			Difficulty: 1,
		},
		Screen: MatchemScreen{
			Aspect: 800.0 / 480,
		},
		Particles: MatchemParticles{
			Capacity: 1024,
		},
		Timer: DefaultTimerCurve(),
	}
}
