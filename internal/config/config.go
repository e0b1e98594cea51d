// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade platform.
package config

import "time"

// WhackConfig contains all configuration for the Whack game.
type WhackConfig struct {
	Board      WhackBoard       `yaml:"board"`
	Round      WhackRound       `yaml:"round"`
	Spawn      WhackSpawn       `yaml:"spawn"`
	Scoring    WhackScoring     `yaml:"scoring"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// WhackBoard defines the board geometry.
type WhackBoard struct {
	GridSize int `yaml:"grid_size"`
}

// WhackRound defines how long a round lasts and when it ends early.
type WhackRound struct {
	Duration       float64 `yaml:"duration"` // Seconds
	EndOnFullBoard bool    `yaml:"end_on_full_board"`
}

// WhackSpawn defines how moles come out of the ground.
type WhackSpawn struct {
	BaseCount    int     `yaml:"base_count"`
	MaxInterval  float64 `yaml:"max_interval"`  // Seconds
	MinInterval  float64 `yaml:"min_interval"`  // Seconds
	MoleLifetime float64 `yaml:"mole_lifetime"` // Seconds, 0 = until hit
}

// WhackScoring defines points and the miss penalty.
type WhackScoring struct {
	HitPoints   int64 `yaml:"hit_points"`
	MissPoints  int64 `yaml:"miss_points"`
	MissPenalty int   `yaml:"miss_penalty"`
}

// RoundDuration returns the round length as a time.Duration.
func (c WhackConfig) RoundDuration() time.Duration {
	return seconds(c.Round.Duration)
}

// MaxInterval returns the slowest spawn interval.
func (c WhackConfig) MaxInterval() time.Duration {
	return seconds(c.Spawn.MaxInterval)
}

// MinInterval returns the fastest spawn interval.
func (c WhackConfig) MinInterval() time.Duration {
	return seconds(c.Spawn.MinInterval)
}

// MoleLifetime returns how long a mole stays up, 0 meaning forever.
func (c WhackConfig) MoleLifetime() time.Duration {
	return seconds(c.Spawn.MoleLifetime)
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
}

// ProgressionConfig defines how difficulty increases during a round.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Points/seconds at which max difficulty is reached
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a flag value to a preset. Empty input yields "".
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	default:
		return "", false
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
