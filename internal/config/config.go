// Package config provides YAML-based game configuration loading, difficulty
// presets and the level timer curve for Matchem Poker.
package config

// MatchemConfig contains all configuration for Matchem Poker.
type MatchemConfig struct {
	Grid      MatchemGrid      `yaml:"grid"`
	Gameplay  MatchemGameplay  `yaml:"gameplay"`
	Screen    MatchemScreen    `yaml:"screen"`
	Particles MatchemParticles `yaml:"particles"`
	Timer     TimerCurve       `yaml:"timer"`
	Texts     MatchemTexts     `yaml:"texts"`
}

// MatchemGrid defines the board size in cards.
type MatchemGrid struct {
	Width  int `yaml:"width" env:"GRID_WIDTH"`
	Height int `yaml:"height" env:"GRID_HEIGHT"`
}

// MatchemGameplay defines rules that change how the game plays.
type MatchemGameplay struct {
	Difficulty int `yaml:"difficulty" env:"DIFFICULTY"` // 0 lets any two cards swap, 1 only neighbours
}

// MatchemScreen defines the screen space the game draws into.
type MatchemScreen struct {
	Aspect    float64    `yaml:"aspect" env:"ASPECT"` // height in screen widths
	LevelArea AreaConfig `yaml:"level_area"`
}

// AreaConfig is a rectangle in screen space. A zero rectangle picks the
// game's default layout.
type AreaConfig struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// MatchemParticles defines the particle engine size.
type MatchemParticles struct {
	Capacity int `yaml:"capacity" env:"PARTICLE_CAPACITY"`
}

// MatchemTexts holds the strings shown between levels and on the info screen.
type MatchemTexts struct {
	LevelCompleted []string `yaml:"level_completed"`
	Info           []string `yaml:"info"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyKids   DifficultyPreset = "kids"
	DifficultyNormal DifficultyPreset = "normal"
)

// ParsePreset maps a preset name to a DifficultyPreset. Unknown names yield
// the empty preset, which leaves a config untouched.
func ParsePreset(name string) DifficultyPreset {
	switch DifficultyPreset(name) {
	case DifficultyKids, DifficultyNormal:
		return DifficultyPreset(name)
	}
	return ""
}
