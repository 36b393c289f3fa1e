package config

import (
	_ "embed"
)

//go:embed defaults/hexfall.yaml
var defaultHexfallYAML []byte

// DefaultHexfallConfig returns the default Hexfall configuration.
func DefaultHexfallConfig() HexfallConfig {
	return HexfallConfig{
		Board: HexfallBoard{
			Cols:        9,
			VisibleRows: 16,
			HiddenRows:  4,
		},
		Timing: HexfallTiming{
			DropIntervalMs:   650,
			SettleIntervalMs: 60,
			SideStep:         0.5,
		},
		Rules: HexfallRules{
			Colors:   5,
			MinGroup: 6,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 10000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.5,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "hexfall":
		return defaultHexfallYAML
	default:
		return nil
	}
}
