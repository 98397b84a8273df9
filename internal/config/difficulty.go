package config

import "strings"

// Built-in difficulty names.
const (
	DifficultyTutorial = "tutorial"
	DifficultyEasy     = "easy"
	DifficultyNormal   = "normal"
	DifficultyHard     = "hard"
)

// NormalizeDifficulty lowercases and trims a user-supplied profile name.
func NormalizeDifficulty(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Profile returns the named profile and its normalized name.
// Unknown or empty names resolve to the configured default, then "normal".
func (c Match3Config) Profile(name string) (string, ProfileConfig) {
	key := NormalizeDifficulty(name)
	if p, ok := c.Difficulty.Profiles[key]; ok {
		return key, p
	}

	key = NormalizeDifficulty(c.Difficulty.Default)
	if p, ok := c.Difficulty.Profiles[key]; ok {
		return key, p
	}

	return DifficultyNormal, c.Difficulty.Profiles[DifficultyNormal]
}
