package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/pickinsticks.yaml
var defaultYAML []byte

// localConfigName is the config file picked up from the working directory
// when no explicit path is given.
const localConfigName = "pickinsticks.yaml"

// Load loads the game configuration.
// Search order: customPath -> ./pickinsticks.yaml -> embedded default.
// A custom path that cannot be read or parsed is an error; the local file
// is skipped silently when absent or malformed.
func Load(customPath string) (Config, error) {
	var cfg Config

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if data, err := os.ReadFile(localConfigName); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			if err := cfg.Validate(); err == nil {
				return cfg, nil
			}
		}
	}

	return Default(), nil
}

// Default returns the embedded default configuration.
func Default() Config {
	var cfg Config
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		// The embedded default is part of the build; a parse failure here is
		// a packaging bug, not a runtime condition.
		panic(fmt.Sprintf("config: embedded default is malformed: %v", err))
	}
	return cfg
}
