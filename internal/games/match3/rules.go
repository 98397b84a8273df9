package match3

import (
	"fmt"

	"github.com/vovakirdan/match3/internal/config"
)

// Rules bundles the tunable parameters of a game.
type Rules struct {
	Size           int
	Palette        []Tile
	Scoring        Scoring
	MaxChainSteps  int
	Profiles       ProfileTable
	DefaultProfile string
}

// DefaultRules returns a 9x9 board, five colors, the built-in profiles
// and a chain cap of 100 steps.
func DefaultRules() Rules {
	return Rules{
		Size:           DefaultBoardSize,
		Palette:        DefaultPalette(),
		Scoring:        DefaultScoring(),
		MaxChainSteps:  100,
		Profiles:       DefaultProfiles(),
		DefaultProfile: DefaultProfileName,
	}
}

// RulesFromConfig converts a validated configuration into engine rules.
func RulesFromConfig(cfg config.Match3Config) (Rules, error) {
	if err := cfg.Validate(); err != nil {
		return Rules{}, err
	}

	palette := make([]Tile, 0, len(cfg.Board.Palette))
	seen := make(map[Tile]bool, len(cfg.Board.Palette))
	for _, name := range cfg.Board.Palette {
		t, ok := ParseTile(name)
		if !ok || t == TileEmpty {
			return Rules{}, fmt.Errorf("match3: unknown palette color %q", name)
		}
		if seen[t] {
			continue
		}
		seen[t] = true
		palette = append(palette, t)
	}

	profiles := make(ProfileTable, len(cfg.Difficulty.Profiles))
	for name, p := range cfg.Difficulty.Profiles {
		key := config.NormalizeDifficulty(name)
		profiles[key] = Profile{Name: key, TargetScore: p.TargetScore, StartingMoves: p.Moves}
	}

	defaultName, _ := cfg.Profile(cfg.Difficulty.Default)

	return Rules{
		Size:    cfg.Board.Size,
		Palette: palette,
		Scoring: Scoring{
			PieceScore: cfg.Scoring.PieceScore,
			ComboBonus: cfg.Scoring.ComboBonus,
		},
		MaxChainSteps:  cfg.Chain.MaxSteps,
		Profiles:       profiles,
		DefaultProfile: defaultName,
	}, nil
}

// Profile resolves a difficulty name, falling back to the default profile.
func (r Rules) Profile(name string) Profile {
	if p, ok := r.Profiles[config.NormalizeDifficulty(name)]; ok {
		return p
	}
	if p, ok := r.Profiles[r.DefaultProfile]; ok {
		return p
	}
	return r.Profiles.Lookup(name)
}
