package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadHexfall loads Hexfall configuration.
// Search order: customPath -> ~/.hexfall/configs/hexfall.yaml -> ./configs/hexfall.yaml -> embedded default
func LoadHexfall(customPath string) (HexfallConfig, error) {
	var cfg HexfallConfig

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
	if userCfgPath := userConfigPath("hexfall.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/hexfall.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultHexfallYAML, &cfg); err != nil {
		return DefaultHexfallConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".hexfall", "configs", filename)
}

// ApplyHexfallPreset modifies the config based on a difficulty preset.
func ApplyHexfallPreset(cfg *HexfallConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust rules based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Rules.Colors = 4
		cfg.Timing.DropIntervalMs = 800
	case DifficultyHard:
		cfg.Rules.Colors = 6
		cfg.Timing.DropIntervalMs = 500
	}
}
