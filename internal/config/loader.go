package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the file name looked up in the config directories.
const ConfigFile = "baa.yaml"

// LoadBaa loads the game configuration.
// Search order: customPath -> ~/.baa/configs/baa.yaml -> ./configs/baa.yaml -> embedded default.
// Files are decoded on top of DefaultBaaConfig, so a partial file only
// overrides the keys it names.
func LoadBaa(customPath string) (BaaConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultBaaConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := ParseBaa(data)
		if err != nil {
			return DefaultBaaConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(ConfigFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := ParseBaa(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", ConfigFile)); err == nil {
		if cfg, err := ParseBaa(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := ParseBaa(GetDefaultYAML("baamageddon"))
	if err != nil {
		return DefaultBaaConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// ParseBaa decodes YAML onto the default configuration.
func ParseBaa(data []byte) (BaaConfig, error) {
	cfg := DefaultBaaConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultBaaConfig(), err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".baa", "configs", filename)
}

// ApplyBaaPreset modifies the config based on a difficulty preset.
func ApplyBaaPreset(cfg *BaaConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust how eager the wolves are
	switch preset {
	case DifficultyEasy:
		cfg.Wolves.PounceRange = 150
	case DifficultyHard:
		cfg.Wolves.PounceRange = 250
		cfg.Wolves.AlertRange = 600
	}
}
