package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const desetkaFile = "desetka.yaml"

// LoadDesetka loads the game tuning.
// Search order: customPath -> ~/.desetka/configs/desetka.yaml -> ./configs/desetka.yaml -> embedded default.
// Files are decoded over the defaults, so a partial file only overrides what it names.
func LoadDesetka(customPath string) (DesetkaConfig, error) {
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return cfg, err
		}
		return cfg, cfg.Validate()
	}

	for _, path := range []string{userConfigPath(desetkaFile), filepath.Join("configs", desetkaFile)} {
		if path == "" {
			continue
		}
		if cfg, err := loadFile(path); err == nil {
			return cfg, cfg.Validate()
		}
	}

	cfg := DefaultDesetkaConfig()
	if err := yaml.Unmarshal(defaultDesetkaYAML, &cfg); err != nil {
		return DefaultDesetkaConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, cfg.Validate()
}

func loadFile(path string) (DesetkaConfig, error) {
	cfg := DefaultDesetkaConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Marshal renders cfg as YAML.
func Marshal(cfg DesetkaConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: marshal: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".desetka", "configs", filename)
}
