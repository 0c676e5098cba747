package config

import (
	_ "embed"
)

//go:embed defaults/classic.yaml
var defaultClassicYAML []byte

//go:embed defaults/deluxe.yaml
var defaultDeluxeYAML []byte

// DefaultClassic returns the default tuning for the 8-direction variant.
func DefaultClassic() LanderConfig {
	return LanderConfig{
		Physics: PhysicsConfig{
			Gravity:  8.0,
			Thruster: 30.0,
		},
		Craft: CraftConfig{
			NoseLength: 15.0,
			HalfWidth:  7.5,
			StartX:     40.0,
			StartY:     4.0,
		},
		Rotation: RotationConfig{
			Steps:      8,
			FullTurnMs: 0,
		},
		Terrain: TerrainConfig{
			Enabled: false,
		},
		Landing: LandingConfig{
			SafeSpeed: 12.0,
		},
	}
}

// DefaultDeluxe returns the default tuning for the 32-direction variant.
func DefaultDeluxe() LanderConfig {
	return LanderConfig{
		Physics: PhysicsConfig{
			Gravity:  8.0,
			Thruster: 50.0,
		},
		Craft: CraftConfig{
			NoseLength: 15.0,
			HalfWidth:  7.5,
			StartX:     40.0,
			StartY:     4.0,
		},
		Rotation: RotationConfig{
			Steps:      32,
			FullTurnMs: 3000,
		},
		Terrain: TerrainConfig{
			Enabled:     true,
			Length:      40,
			MaxDelta:    3,
			FloorHeight: 0,
		},
		Landing: LandingConfig{
			SafeSpeed: 12.0,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a variant.
func GetDefaultYAML(variantID string) []byte {
	switch variantID {
	case "classic":
		return defaultClassicYAML
	case "deluxe":
		return defaultDeluxeYAML
	default:
		return nil
	}
}
