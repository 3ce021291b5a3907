package config

import (
	_ "embed"
)

//go:embed defaults/mysterions.yaml
var defaultMysterionsYAML []byte

// DefaultMysterionsConfig returns the default Mysterions configuration.
// Values mirror defaults/mysterions.yaml and act as a last-resort fallback.
func DefaultMysterionsConfig() MysterionsConfig {
	return MysterionsConfig{
		Board: BoardConfig{
			GridWidth:  15,
			GridHeight: 8,
			SquareSize: 48,
			EntitySize: 32,
		},
		Agent: AgentConfig{
			Speed:        2.0,
			MaxHealth:    100,
			BorderBuffer: 2,
		},
		Pursuers: PursuerConfig{
			Speed:           1.0,
			MinCount:        5,
			MaxCount:        15,
			ChargeThreshold: 40,
			TurnPacesMin:    100,
			TurnPacesMax:    250,
		},
		Coins: CoinConfig{
			MinCount: 10,
			MaxCount: 20,
			Value:    100,
		},
		Obstacles: ObstacleConfig{
			MinCount: 10,
			MaxCount: 30,
		},
		Gameplay: GameplayConfig{
			StartingLives:       3,
			MaxLives:            5,
			ContactDamage:       20,
			OverlapThreshold:    20,
			HeadStartSeconds:    3,
			IntermissionSeconds: 3,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 5000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
				ExtraPursuers:   4,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "mysterions":
		return defaultMysterionsYAML
	default:
		return nil
	}
}
