package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the match configuration.
// Search order: customPath -> ~/.exodus/config.yaml -> ./configs/exodus.yaml
// -> embedded default. An explicit customPath that cannot be read or parsed
// is an error; the implicit locations fall through silently.
func Load(customPath string) (MatchConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return MatchConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return MatchConfig{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfg := userConfigPath("config.yaml"); userCfg != "" {
		if data, err := os.ReadFile(userCfg); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile("configs/exodus.yaml"); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, nil
		}
	}

	if cfg, err := parse(defaultYAML); err == nil {
		return cfg, nil
	}
	// Fallback to hardcoded if the embed fails
	return Default(), nil
}

// parse unmarshals and validates a YAML config.
func parse(data []byte) (MatchConfig, error) {
	// Start from defaults so partial configs only override what they set.
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return MatchConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return MatchConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if the
// home directory is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".exodus", filename)
}
