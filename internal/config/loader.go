package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is the file looked up in the user and local config directories.
const ConfigFileName = "match3.yaml"

// LoadMatch3 loads the match-three configuration.
// Search order: customPath -> ~/.match3/configs/match3.yaml -> ./configs/match3.yaml -> embedded default.
// Files only need to set the keys they override; the rest keep their defaults.
func LoadMatch3(customPath string) (Match3Config, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Match3Config{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseMatch3(data)
		if err != nil {
			return Match3Config{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return Match3Config{}, fmt.Errorf("config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(ConfigFileName); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseMatch3(data); err == nil && cfg.Validate() == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", ConfigFileName)); err == nil {
		if cfg, err := parseMatch3(data); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseMatch3(defaultMatch3YAML)
	if err != nil || cfg.Validate() != nil {
		return DefaultMatch3Config(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseMatch3 decodes YAML on top of the hardcoded defaults.
func parseMatch3(data []byte) (Match3Config, error) {
	cfg := DefaultMatch3Config()
	profiles := cfg.Difficulty.Profiles
	cfg.Difficulty.Profiles = nil

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Match3Config{}, err
	}

	// A file that defines no profiles keeps the built-in table
	if len(cfg.Difficulty.Profiles) == 0 {
		cfg.Difficulty.Profiles = profiles
		return cfg, nil
	}

	normalized := make(map[string]ProfileConfig, len(cfg.Difficulty.Profiles))
	for name, p := range cfg.Difficulty.Profiles {
		key := NormalizeDifficulty(name)
		if _, dup := normalized[key]; dup {
			return Match3Config{}, fmt.Errorf("%w: profile %q is defined twice", ErrInvalidConfig, key)
		}
		normalized[key] = p
	}
	cfg.Difficulty.Profiles = normalized
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".match3", "configs", filename)
}
