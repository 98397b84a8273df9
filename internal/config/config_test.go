package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultMatch3ConfigValid(t *testing.T) {
	if err := DefaultMatch3Config().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parseMatch3(defaultMatch3YAML)
	if err != nil {
		t.Fatalf("parseMatch3(embedded) failed: %v", err)
	}

	want := DefaultMatch3Config()
	if cfg.Board.Size != want.Board.Size {
		t.Errorf("board.size = %d, want %d", cfg.Board.Size, want.Board.Size)
	}
	if len(cfg.Board.Palette) != len(want.Board.Palette) {
		t.Errorf("palette has %d colors, want %d", len(cfg.Board.Palette), len(want.Board.Palette))
	}
	if cfg.Scoring != want.Scoring {
		t.Errorf("scoring = %+v, want %+v", cfg.Scoring, want.Scoring)
	}
	for name, p := range want.Difficulty.Profiles {
		if cfg.Difficulty.Profiles[name] != p {
			t.Errorf("profile %q = %+v, want %+v", name, cfg.Difficulty.Profiles[name], p)
		}
	}
}

func TestProfileLookup(t *testing.T) {
	cfg := DefaultMatch3Config()

	tests := []struct {
		input      string
		wantName   string
		wantTarget int
		wantMoves  int
	}{
		{"hard", "hard", 2000, 15},
		{"  Easy ", "easy", 1000, 30},
		{"tutorial", "tutorial", 500, 99},
		{"nightmare", "normal", 1500, 20},
		{"", "normal", 1500, 20},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			name, p := cfg.Profile(tt.input)
			if name != tt.wantName {
				t.Errorf("Profile(%q) name = %q, want %q", tt.input, name, tt.wantName)
			}
			if p.TargetScore != tt.wantTarget || p.Moves != tt.wantMoves {
				t.Errorf("Profile(%q) = %+v, want target %d moves %d", tt.input, p, tt.wantTarget, tt.wantMoves)
			}
		})
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Match3Config)
	}{
		{"tiny board", func(c *Match3Config) { c.Board.Size = 2 }},
		{"two colors", func(c *Match3Config) { c.Board.Palette = []string{"red", "blue"} }},
		{"duplicate colors", func(c *Match3Config) { c.Board.Palette = []string{"red", "red", "blue"} }},
		{"unknown color", func(c *Match3Config) { c.Board.Palette = []string{"red", "blue", "teal"} }},
		{"zero piece score", func(c *Match3Config) { c.Scoring.PieceScore = 0 }},
		{"negative chain cap", func(c *Match3Config) { c.Chain.MaxSteps = -1 }},
		{"zero target", func(c *Match3Config) {
			c.Difficulty.Profiles["easy"] = ProfileConfig{TargetScore: 0, Moves: 10}
		}},
		{"missing default", func(c *Match3Config) { c.Difficulty.Default = "insane" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultMatch3Config()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestLoadMatch3CustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte(`
board:
  size: 6
scoring:
  combo_bonus: 25
`)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := LoadMatch3(path)
	if err != nil {
		t.Fatalf("LoadMatch3() failed: %v", err)
	}

	if cfg.Board.Size != 6 {
		t.Errorf("board.size = %d, want 6", cfg.Board.Size)
	}
	if cfg.Scoring.ComboBonus != 25 {
		t.Errorf("combo_bonus = %d, want 25", cfg.Scoring.ComboBonus)
	}
	// Untouched keys keep their defaults
	if cfg.Scoring.PieceScore != 5 {
		t.Errorf("piece_score = %d, want default 5", cfg.Scoring.PieceScore)
	}
	if len(cfg.Difficulty.Profiles) != 4 {
		t.Errorf("expected built-in profiles, got %d", len(cfg.Difficulty.Profiles))
	}
}

func TestLoadMatch3CustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadMatch3(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("board: [unclosed"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if _, err := LoadMatch3(bad); err == nil {
		t.Error("expected error for malformed YAML")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("board:\n  size: 1\n"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if _, err := LoadMatch3(invalid); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("LoadMatch3(invalid) = %v, want ErrInvalidConfig", err)
	}
}

func TestParseMatch3OverridesProfiles(t *testing.T) {
	cfg, err := parseMatch3([]byte(`
difficulty:
  default: zen
  profiles:
    zen:
      target_score: 100
      moves: 5
`))
	if err != nil {
		t.Fatalf("parseMatch3() failed: %v", err)
	}
	if len(cfg.Difficulty.Profiles) != 1 {
		t.Errorf("expected profiles to be replaced, got %v", cfg.Difficulty.Profiles)
	}
	name, p := cfg.Profile("anything")
	if name != "zen" || p.TargetScore != 100 {
		t.Errorf("Profile fallback = %q %+v, want zen", name, p)
	}
}

func TestParseMatch3NormalizesProfileNames(t *testing.T) {
	cfg, err := parseMatch3([]byte(`
difficulty:
  default: hard
  profiles:
    " Hard ":
      target_score: 2500
      moves: 12
    Easy:
      target_score: 800
      moves: 40
`))
	if err != nil {
		t.Fatalf("parseMatch3() failed: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() = %v for mixed-case profile names", err)
	}

	name, p := cfg.Profile("HARD")
	if name != "hard" || p.TargetScore != 2500 || p.Moves != 12 {
		t.Errorf("Profile(HARD) = %q %+v, want hard 2500/12", name, p)
	}
	if _, ok := cfg.Difficulty.Profiles["easy"]; !ok {
		t.Errorf("profiles = %v, want lowercase keys", cfg.Difficulty.Profiles)
	}
}

func TestParseMatch3RejectsDuplicateProfiles(t *testing.T) {
	_, err := parseMatch3([]byte(`
difficulty:
  profiles:
    hard:
      target_score: 2000
      moves: 15
    HARD:
      target_score: 3000
      moves: 10
`))
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("parseMatch3() = %v, want ErrInvalidConfig", err)
	}
}

func TestValidateAcceptsMixedCaseKeys(t *testing.T) {
	cfg := DefaultMatch3Config()
	cfg.Difficulty.Profiles = map[string]ProfileConfig{
		"Hard": {TargetScore: 2000, Moves: 15},
	}
	cfg.Difficulty.Default = "hard"

	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}
