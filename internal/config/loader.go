package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// MaxGridSize bounds the number of tiles a board may have.
const MaxGridSize = 36

// LoadWhack loads Whack configuration.
// Search order: customPath -> ~/.arcade/configs/whack.yaml -> ./configs/whack.yaml -> embedded default
// Keys missing from a file keep their built-in default values.
func LoadWhack(customPath string) (WhackConfig, error) {
	cfg := DefaultWhackConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("config: invalid %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory.
	// Unreadable or invalid files here are skipped rather than fatal.
	for _, path := range []string{userConfigPath("whack.yaml"), filepath.Join("configs", "whack.yaml")} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		candidate := DefaultWhackConfig()
		if err := yaml.Unmarshal(data, &candidate); err != nil {
			continue
		}
		if candidate.Validate() == nil {
			return candidate, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultWhackYAML, &cfg); err != nil {
		return DefaultWhackConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// Validate checks every field and reports all problems at once.
func (c WhackConfig) Validate() error {
	var errs []error

	if c.Board.GridSize < 1 || c.Board.GridSize > MaxGridSize {
		errs = append(errs, fmt.Errorf("board.grid_size must be in [1, %d], got %d", MaxGridSize, c.Board.GridSize))
	}
	if c.Round.Duration <= 0 {
		errs = append(errs, fmt.Errorf("round.duration must be positive, got %v", c.Round.Duration))
	}
	if c.Spawn.BaseCount < 0 {
		errs = append(errs, fmt.Errorf("spawn.base_count must not be negative, got %d", c.Spawn.BaseCount))
	}
	if c.Spawn.MaxInterval < 0 || c.Spawn.MinInterval < 0 {
		errs = append(errs, errors.New("spawn intervals must not be negative"))
	}
	if c.Spawn.MinInterval > c.Spawn.MaxInterval {
		errs = append(errs, fmt.Errorf("spawn.min_interval (%v) exceeds spawn.max_interval (%v)", c.Spawn.MinInterval, c.Spawn.MaxInterval))
	}
	if c.Spawn.MoleLifetime < 0 {
		errs = append(errs, fmt.Errorf("spawn.mole_lifetime must not be negative, got %v", c.Spawn.MoleLifetime))
	}
	if c.Scoring.MissPoints < 0 {
		errs = append(errs, fmt.Errorf("scoring.miss_points must not be negative, got %d", c.Scoring.MissPoints))
	}
	if c.Scoring.MissPenalty < 0 {
		errs = append(errs, fmt.Errorf("scoring.miss_penalty must not be negative, got %d", c.Scoring.MissPenalty))
	}
	if c.Difficulty.InitialLevel < 0 || c.Difficulty.InitialLevel > 1 {
		errs = append(errs, fmt.Errorf("difficulty.initial_level must be in [0, 1], got %v", c.Difficulty.InitialLevel))
	}
	switch c.Difficulty.Progression.Type {
	case "score", "time", "none", "":
	default:
		errs = append(errs, fmt.Errorf("difficulty.progression.type %q is not one of score, time, none", c.Difficulty.Progression.Type))
	}

	return errors.Join(errs...)
}

// ApplyWhackPreset modifies the config based on a difficulty preset.
func ApplyWhackPreset(cfg *WhackConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Round.Duration = 90
		cfg.Spawn.MaxInterval = 1.4
		cfg.Scoring.MissPoints = 0
		cfg.Scoring.MissPenalty = 1
	case DifficultyHard:
		cfg.Round.Duration = 45
		cfg.Spawn.MinInterval = 0.25
		cfg.Scoring.MissPoints = 5
		cfg.Scoring.MissPenalty = 2
	}
}

// Marshal renders the configuration as YAML.
func (c WhackConfig) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("config: cannot encode: %w", err)
	}
	return data, nil
}
