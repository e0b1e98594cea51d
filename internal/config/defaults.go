package config

import (
	_ "embed"
)

//go:embed defaults/whack.yaml
var defaultWhackYAML []byte

// DefaultWhackConfig returns the built-in Whack configuration.
// It mirrors defaults/whack.yaml and backs up keys missing from user files.
func DefaultWhackConfig() WhackConfig {
	return WhackConfig{
		Board: WhackBoard{
			GridSize: 9,
		},
		Round: WhackRound{
			Duration:       60,
			EndOnFullBoard: false,
		},
		Spawn: WhackSpawn{
			BaseCount:    1,
			MaxInterval:  1.0,
			MinInterval:  0.35,
			MoleLifetime: 0,
		},
		Scoring: WhackScoring{
			HitPoints:   10,
			MissPoints:  0,
			MissPenalty: 1,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 500,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "whack", "whack_survival":
		return defaultWhackYAML
	default:
		return nil
	}
}
