package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override, e.g. MATCHEM_GRID_WIDTH.
const EnvPrefix = "MATCHEM_"

// LoadMatchem reads the game config and applies MATCHEM_* overrides.
//
// An explicit path must exist and parse. Without one the first readable
// file among ~/.matchem/configs/matchem.yaml and ./configs/matchem.yaml
// wins, then the embedded defaults.
func LoadMatchem(path string) (MatchemConfig, error) {
	var cfg MatchemConfig
	if path != "" {
		if err := readYAML(path, &cfg); err != nil {
			return cfg, err
		}
	} else {
		cfg = searchMatchem()
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return cfg, fmt.Errorf("config: environment overrides: %w", err)
	}
	return cfg, nil
}

func searchMatchem() MatchemConfig {
	var candidates []string
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, ".matchem", "configs", "matchem.yaml"))
	}
	candidates = append(candidates, filepath.Join("configs", "matchem.yaml"))

	for _, p := range candidates {
		var cfg MatchemConfig
		if readYAML(p, &cfg) == nil {
			return cfg
		}
	}

	var cfg MatchemConfig
	if yaml.Unmarshal(defaultMatchemYAML, &cfg) != nil {
		return DefaultMatchemConfig()
	}
	return cfg
}

func readYAML(path string, cfg *MatchemConfig) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("config: %s: %w", path, err)
	}
	return nil
}

// ApplyMatchemPreset switches cfg to a difficulty preset. Kids may swap any
// two cards, and their timer drains slower and waits longer before it starts.
func ApplyMatchemPreset(cfg *MatchemConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyKids:
		cfg.Gameplay.Difficulty = 0
		if cfg.Timer.IsZero() {
			cfg.Timer = DefaultTimerCurve()
		}
		cfg.Timer.Drain *= 0.75
		cfg.Timer.GraceSeconds *= 1.5
	case DifficultyNormal:
		cfg.Gameplay.Difficulty = 1
	}
}
