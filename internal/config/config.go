// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade platform.
package config

// MysterionsConfig contains all configuration for the Mysterions game.
type MysterionsConfig struct {
	Board      BoardConfig      `yaml:"board"`
	Agent      AgentConfig      `yaml:"agent"`
	Pursuers   PursuerConfig    `yaml:"pursuers"`
	Coins      CoinConfig       `yaml:"coins"`
	Obstacles  ObstacleConfig   `yaml:"obstacles"`
	Gameplay   GameplayConfig   `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BoardConfig defines the placement grid and world scale.
// Objects are laid out on GridWidth x GridHeight squares of SquareSize
// world units; entities occupy EntitySize x EntitySize boxes.
type BoardConfig struct {
	GridWidth  int     `yaml:"grid_width"`
	GridHeight int     `yaml:"grid_height"`
	SquareSize float64 `yaml:"square_size"`
	EntitySize float64 `yaml:"entity_size"`
}

// AgentConfig defines the player-controlled agent.
type AgentConfig struct {
	Speed        float64 `yaml:"speed"`
	MaxHealth    int     `yaml:"max_health"`
	BorderBuffer int     `yaml:"border_buffer"` // Spawn distance from board edge, in grid squares
}

// PursuerConfig defines pursuer behavior and spawn counts.
type PursuerConfig struct {
	Speed           float64 `yaml:"speed"`
	MinCount        int     `yaml:"min_count"`
	MaxCount        int     `yaml:"max_count"` // Exclusive upper bound
	ChargeThreshold float64 `yaml:"charge_threshold"`
	TurnPacesMin    float64 `yaml:"turn_paces_min"`
	TurnPacesMax    float64 `yaml:"turn_paces_max"`
}

// CoinConfig defines coin spawn counts and score value.
type CoinConfig struct {
	MinCount int `yaml:"min_count"`
	MaxCount int `yaml:"max_count"` // Exclusive upper bound
	Value    int `yaml:"value"`
}

// ObstacleConfig defines obstacle spawn counts.
type ObstacleConfig struct {
	MinCount int `yaml:"min_count"`
	MaxCount int `yaml:"max_count"` // Exclusive upper bound
}

// GameplayConfig defines session-level rules and timing.
type GameplayConfig struct {
	StartingLives       int     `yaml:"starting_lives"`
	MaxLives            int     `yaml:"max_lives"`
	ContactDamage       int     `yaml:"contact_damage"`
	OverlapThreshold    float64 `yaml:"overlap_threshold"` // Required overlap depth for pickups/contact
	HeadStartSeconds    float64 `yaml:"head_start_seconds"`
	IntermissionSeconds float64 `yaml:"intermission_seconds"`
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
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Pursuer speed multiplier at max difficulty
	ExtraPursuers   int     `yaml:"extra_pursuers"`   // Pursuers added to spawn counts at max difficulty
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
