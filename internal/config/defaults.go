package config

import (
	_ "embed"
)

//go:embed defaults/match3.yaml
var defaultMatch3YAML []byte

// DefaultMatch3Config returns the default match-three configuration.
func DefaultMatch3Config() Match3Config {
	return Match3Config{
		Board: BoardConfig{
			Size:    9,
			Palette: []string{"red", "blue", "green", "yellow", "purple"},
		},
		Scoring: ScoringConfig{
			PieceScore: 5,
			ComboBonus: 10,
		},
		Chain: ChainConfig{
			MaxSteps: 100,
		},
		Difficulty: DifficultyConfig{
			Default: DifficultyNormal,
			Profiles: map[string]ProfileConfig{
				DifficultyTutorial: {TargetScore: 500, Moves: 99},
				DifficultyEasy:     {TargetScore: 1000, Moves: 30},
				DifficultyNormal:   {TargetScore: 1500, Moves: 20},
				DifficultyHard:     {TargetScore: 2000, Moves: 15},
			},
		},
	}
}
