package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the file name looked up in the user and local config directories.
const ConfigFile = "spacewars.yaml"

// LoadSpaceWars loads Space Wars configuration.
// Search order: customPath -> ~/.arcade/configs/spacewars.yaml -> ./configs/spacewars.yaml -> embedded default
// Sections missing from a file keep their default values.
func LoadSpaceWars(customPath string) (SpaceWarsConfig, error) {
	cfg := DefaultSpaceWarsConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(ConfigFile); userCfgPath != "" {
		if loaded, ok := tryLoad(userCfgPath); ok {
			return loaded, nil
		}
	}

	// Try local configs directory
	if loaded, ok := tryLoad(filepath.Join("configs", ConfigFile)); ok {
		return loaded, nil
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultSpaceWarsYAML, &cfg); err != nil {
		return DefaultSpaceWarsConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// tryLoad reads an optional config file. Missing or unparsable files are skipped.
func tryLoad(path string) (SpaceWarsConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return SpaceWarsConfig{}, false
	}
	cfg := DefaultSpaceWarsConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return SpaceWarsConfig{}, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplySpaceWarsPreset modifies the config based on a difficulty preset.
// Normal and the empty preset leave the config untouched.
func ApplySpaceWarsPreset(cfg *SpaceWarsConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Obstacles.BaseSpeed *= 0.75
		cfg.Spawn.Interval = cfg.Spawn.Interval * 3 / 2
	case DifficultyHard:
		cfg.Obstacles.BaseSpeed *= 1.5
		cfg.Spawn.Interval /= 2
	case DifficultyFixed:
		cfg.Difficulty.Acceleration = 0
	}
}

// Marshal encodes the config as YAML, as written by `config dump`.
func Marshal(cfg SpaceWarsConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: marshal: %w", err)
	}
	return data, nil
}
