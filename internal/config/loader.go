package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadMysterions loads the Mysterions configuration.
// Search order: customPath -> ~/.mysterions/configs/mysterions.yaml ->
// ./configs/mysterions.yaml -> embedded default.
func LoadMysterions(customPath string) (MysterionsConfig, error) {
	var cfg MysterionsConfig

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
	if userCfgPath := userConfigPath("mysterions.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/mysterions.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultMysterionsYAML, &cfg); err != nil {
		return DefaultMysterionsConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".mysterions", "configs", filename)
}

// ApplyMysterionsPreset modifies the config based on a difficulty preset.
func ApplyMysterionsPreset(cfg *MysterionsConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.StartingLives = 5
		cfg.Pursuers.MinCount = 3
		cfg.Pursuers.MaxCount = 9
		cfg.Pursuers.Speed = 0.8
	case DifficultyHard:
		cfg.Gameplay.StartingLives = 2
		cfg.Pursuers.MinCount = 9
		cfg.Pursuers.MaxCount = 18
		cfg.Pursuers.Speed = 1.3
	}
}
