package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// EmbeddedSource is reported by Locate when no config file is found on disk.
const EmbeddedSource = "embedded"

const configFileName = "duel.yaml"

// Load loads the duel configuration.
// Search order: customPath -> ~/.duoflap/configs/duel.yaml -> ./configs/duel.yaml -> embedded default.
// Values in a file overlay the defaults, so a file may set only what it changes.
func Load(customPath string) (DuelConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DuelConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return DuelConfig{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range searchPaths() {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		cfg, err := Parse(data)
		if err != nil {
			return DuelConfig{}, fmt.Errorf("config: %s: %w", path, err)
		}
		return cfg, nil
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultDuelYAML)
	if err != nil {
		return DefaultDuelConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Locate reports which file Load would read, or EmbeddedSource.
func Locate(customPath string) string {
	if customPath != "" {
		return customPath
	}
	for _, path := range searchPaths() {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return EmbeddedSource
}

// Parse decodes YAML on top of the defaults and validates the result.
func Parse(data []byte) (DuelConfig, error) {
	cfg := DefaultDuelConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DuelConfig{}, fmt.Errorf("failed to parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return DuelConfig{}, err
	}
	return cfg, nil
}

// Marshal renders the configuration as YAML.
func (c DuelConfig) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("config: failed to marshal: %w", err)
	}
	return data, nil
}

func searchPaths() []string {
	paths := make([]string, 0, 2)
	if p := userConfigPath(configFileName); p != "" {
		paths = append(paths, p)
	}
	return append(paths, filepath.Join("configs", configFileName))
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".duoflap", "configs", filename)
}
