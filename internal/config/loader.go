package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadSerpent loads the serpent configuration.
// Search order: customPath -> ~/.serpent/configs/serpent.yaml -> ./configs/serpent.yaml -> embedded default
func LoadSerpent(customPath string) (SerpentConfig, error) {
	var cfg SerpentConfig

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
	if userCfgPath := userConfigPath("serpent.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/serpent.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultSerpentYAML, &cfg); err != nil {
		return DefaultSerpentConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".serpent", "configs", filename)
}

// ApplySerpentPreset overrides the configured difficulty with a named preset.
// Unknown presets leave the config untouched.
func ApplySerpentPreset(cfg *SerpentConfig, preset DifficultyPreset) {
	if ValidPreset(preset) {
		cfg.Difficulty = preset
	}
}
