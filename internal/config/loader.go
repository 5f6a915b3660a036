package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadTetris loads the Tetris configuration.
// Search order: customPath -> ~/.tetris/configs/tetris.yaml -> ./configs/tetris.yaml -> embedded default
func LoadTetris(customPath string) (TetrisConfig, error) {
	var cfg TetrisConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("tetris.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/tetris.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultTetrisYAML, &cfg); err != nil {
		return DefaultTetrisConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tetris", "configs", filename)
}

// FeelPreset names a bundled handling profile.
type FeelPreset string

const (
	FeelRelaxed FeelPreset = "relaxed"
	FeelClassic FeelPreset = "classic"
	FeelFast    FeelPreset = "fast"
)

// ValidFeelPreset reports whether the name matches a known preset.
func ValidFeelPreset(name string) bool {
	switch FeelPreset(name) {
	case FeelRelaxed, FeelClassic, FeelFast:
		return true
	}
	return false
}

// FeelPresetNames returns the known preset names for help text.
func FeelPresetNames() []string {
	return []string{string(FeelRelaxed), string(FeelClassic), string(FeelFast)}
}

// ApplyFeelPreset overwrites the handling parameters with a named profile.
// Unknown presets leave the config untouched.
func ApplyFeelPreset(cfg *TetrisConfig, preset FeelPreset) {
	switch preset {
	case FeelRelaxed:
		cfg.Feel.DASMs = 220
		cfg.Feel.ARRMs = 50
		cfg.Feel.LockDelayMs = 800
		cfg.Feel.GravityMult = 0.7
	case FeelClassic:
		cfg.Feel.DASMs = 170
		cfg.Feel.ARRMs = 30
		cfg.Feel.LockDelayMs = 500
		cfg.Feel.GravityMult = 1.0
	case FeelFast:
		cfg.Feel.DASMs = 120
		cfg.Feel.ARRMs = 0
		cfg.Feel.LockDelayMs = 350
		cfg.Feel.GravityMult = 1.5
	}
}
