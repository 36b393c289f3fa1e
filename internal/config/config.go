// Package config provides YAML-based game configuration loading and
// difficulty management for the hexfall platform.
package config

// HexfallConfig contains all configuration for the Hexfall game.
type HexfallConfig struct {
	Board      HexfallBoard     `yaml:"board"`
	Timing     HexfallTiming    `yaml:"timing"`
	Rules      HexfallRules     `yaml:"rules"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// HexfallBoard defines the hexagonal grid dimensions.
type HexfallBoard struct {
	Cols        int `yaml:"cols"`
	VisibleRows int `yaml:"visible_rows"`
	HiddenRows  int `yaml:"hidden_rows"`
}

// HexfallTiming defines the simulation pacing.
type HexfallTiming struct {
	DropIntervalMs   float64 `yaml:"drop_interval_ms"`
	SettleIntervalMs float64 `yaml:"settle_interval_ms"`
	SideStep         float64 `yaml:"side_step"`
}

// HexfallRules defines the matching rules.
type HexfallRules struct {
	Colors   int `yaml:"colors"`
	MinGroup int `yaml:"min_group"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Drop-speed multiplier at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
