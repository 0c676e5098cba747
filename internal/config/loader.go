package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the tuning config for a variant.
// Search order: customPath -> ~/.moonar/configs/<id>.yaml ->
// ./configs/<id>.yaml -> embedded default.
func Load(variantID, customPath string) (LanderConfig, error) {
	var cfg LanderConfig

	// A custom path is authoritative: failures are reported, not skipped.
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

	filename := variantID + ".yaml"

	if userPath := userConfigPath(filename); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", filename)); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	embedded := GetDefaultYAML(variantID)
	if embedded == nil {
		return cfg, fmt.Errorf("config: no embedded default for variant %q", variantID)
	}
	if err := yaml.Unmarshal(embedded, &cfg); err != nil {
		return cfg, fmt.Errorf("config: embedded default for %q is invalid: %w", variantID, err)
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
	return filepath.Join(home, ".moonar", "configs", filename)
}

// ParsePreset converts a CLI preset string to a Preset.
// The empty string and "normal" both mean no scaling.
func ParsePreset(s string) (Preset, error) {
	switch s {
	case "", string(PresetNormal):
		return PresetNormal, nil
	case string(PresetEasy):
		return PresetEasy, nil
	case string(PresetHard):
		return PresetHard, nil
	default:
		return PresetNormal, fmt.Errorf("config: unknown preset %q", s)
	}
}
