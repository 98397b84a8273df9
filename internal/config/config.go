// Package config provides YAML-based configuration loading and difficulty
// profiles for the match3 engine.
package config

import (
	"errors"
	"fmt"
	"strings"
)

// Match3Config contains all configuration for the match-three game.
type Match3Config struct {
	Board      BoardConfig      `yaml:"board"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Chain      ChainConfig      `yaml:"chain"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BoardConfig defines the grid dimension and the tile colors in play.
type BoardConfig struct {
	Size    int      `yaml:"size"`
	Palette []string `yaml:"palette"` // Color names: red, blue, green, yellow, purple
}

// ScoringConfig defines point values.
type ScoringConfig struct {
	PieceScore int `yaml:"piece_score"` // Points per cleared tile
	ComboBonus int `yaml:"combo_bonus"` // Points per chain round when a move chains
}

// ChainConfig bounds chain resolution.
type ChainConfig struct {
	MaxSteps int `yaml:"max_steps"` // 0 disables the cap
}

// DifficultyConfig defines the selectable profiles.
type DifficultyConfig struct {
	Default  string                   `yaml:"default"`
	Profiles map[string]ProfileConfig `yaml:"profiles"`
}

// ProfileConfig is a target score and starting move budget.
type ProfileConfig struct {
	TargetScore int `yaml:"target_score"`
	Moves       int `yaml:"moves"`
}

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// knownColors lists the palette names accepted in board.palette.
var knownColors = map[string]bool{
	"red":    true,
	"blue":   true,
	"green":  true,
	"yellow": true,
	"purple": true,
}

// Validate checks that the configuration can drive a game.
func (c Match3Config) Validate() error {
	if c.Board.Size < 3 {
		return fmt.Errorf("%w: board.size must be at least 3, got %d", ErrInvalidConfig, c.Board.Size)
	}

	seen := make(map[string]bool, len(c.Board.Palette))
	for _, name := range c.Board.Palette {
		key := strings.ToLower(strings.TrimSpace(name))
		if !knownColors[key] {
			return fmt.Errorf("%w: unknown palette color %q", ErrInvalidConfig, name)
		}
		seen[key] = true
	}
	// Two adjacency constraints always leave a free color only with three or more
	if len(seen) < 3 {
		return fmt.Errorf("%w: board.palette needs at least 3 distinct colors, got %d", ErrInvalidConfig, len(seen))
	}

	if c.Scoring.PieceScore <= 0 || c.Scoring.ComboBonus < 0 {
		return fmt.Errorf("%w: scoring values must be positive", ErrInvalidConfig)
	}
	if c.Chain.MaxSteps < 0 {
		return fmt.Errorf("%w: chain.max_steps must not be negative", ErrInvalidConfig)
	}

	if len(c.Difficulty.Profiles) == 0 {
		return fmt.Errorf("%w: no difficulty profiles defined", ErrInvalidConfig)
	}
	names := make(map[string]bool, len(c.Difficulty.Profiles))
	for name, p := range c.Difficulty.Profiles {
		key := NormalizeDifficulty(name)
		if names[key] {
			return fmt.Errorf("%w: profile %q is defined twice", ErrInvalidConfig, key)
		}
		names[key] = true
		if p.TargetScore <= 0 {
			return fmt.Errorf("%w: profile %q target_score must be positive", ErrInvalidConfig, name)
		}
		if p.Moves < 0 {
			return fmt.Errorf("%w: profile %q moves must not be negative", ErrInvalidConfig, name)
		}
	}
	if !names[NormalizeDifficulty(c.Difficulty.Default)] {
		return fmt.Errorf("%w: default difficulty %q is not a profile", ErrInvalidConfig, c.Difficulty.Default)
	}

	return nil
}
