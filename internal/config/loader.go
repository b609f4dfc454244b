package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const fileName = "config.yaml"

// Load loads the configuration.
// Search order: customPath -> ~/.termplay/config.yaml -> ./configs/termplay.yaml -> embedded default.
// Files are decoded over the defaults, so a file only needs the keys it changes.
// The returned path is where Save should write, empty when it came from the
// embedded default and no home directory is known.
func Load(customPath string) (Config, string, error) {
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return Default(), customPath, err
		}
		return cfg, customPath, nil
	}

	userPath := UserConfigPath()
	if userPath != "" {
		if cfg, err := loadFile(userPath); err == nil {
			return cfg, userPath, nil
		}
	}

	if cfg, err := loadFile(filepath.Join("configs", "termplay.yaml")); err == nil {
		return cfg, userPath, nil
	}

	cfg := Default()
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return Default(), userPath, nil // Fallback to hardcoded if embed fails
	}
	return cfg, userPath, nil
}

func loadFile(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the configuration as YAML, creating parent directories.
func Save(path string, cfg Config) error {
	if path == "" {
		return fmt.Errorf("config: no path to save to")
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("config: create directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}

// UserConfigPath returns ~/.termplay/config.yaml, or empty if home is unavailable.
func UserConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".termplay", fileName)
}
