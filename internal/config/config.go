// Package config provides YAML-based tuning for the lander variants.
package config

// LanderConfig contains all tuning for one lander variant.
type LanderConfig struct {
	Physics  PhysicsConfig  `yaml:"physics"`
	Craft    CraftConfig    `yaml:"craft"`
	Rotation RotationConfig `yaml:"rotation"`
	Terrain  TerrainConfig  `yaml:"terrain"`
	Landing  LandingConfig  `yaml:"landing"`
}

// PhysicsConfig defines the constant forces acting on the craft,
// both expressed in world units per second of velocity gained.
type PhysicsConfig struct {
	Gravity  float64 `yaml:"gravity"`  // Downward acceleration
	Thruster float64 `yaml:"thruster"` // Acceleration along the nose while thrusting
}

// CraftConfig defines the craft geometry and spawn point.
type CraftConfig struct {
	NoseLength float64 `yaml:"nose_length"` // Tip distance forward along local +x
	HalfWidth  float64 `yaml:"half_width"`  // Half the base width of the triangle
	StartX     float64 `yaml:"start_x"`
	StartY     float64 `yaml:"start_y"`
}

// RotationConfig defines the discrete heading model.
// FullTurnMs 0 means the heading snaps instantly to the held arrow
// combination (the 8-way model); otherwise Left/Right step the heading
// one increment per FullTurnMs/Steps milliseconds.
type RotationConfig struct {
	Steps      int `yaml:"steps"`
	FullTurnMs int `yaml:"full_turn_ms"`
}

// TerrainConfig defines the random-walk heightline.
type TerrainConfig struct {
	Enabled     bool `yaml:"enabled"`
	Length      int  `yaml:"length"`       // Number of segments; Length+1 samples
	MaxDelta    int  `yaml:"max_delta"`    // Bound on each random step
	FloorHeight int  `yaml:"floor_height"` // Samples are raised to at least this
}

// LandingConfig defines when touching down counts as a landing
// rather than a crash.
type LandingConfig struct {
	SafeSpeed float64 `yaml:"safe_speed"` // Max descent speed for a soft landing
}

// Preset represents a named difficulty level. Presets scale the constant
// forces once at reset; they never change mid-flight.
type Preset string

const (
	PresetEasy   Preset = "easy"
	PresetNormal Preset = "normal"
	PresetHard   Preset = "hard"
)

// ApplyPreset scales the physics constants for a preset.
// Unknown presets leave the config untouched.
func ApplyPreset(cfg *LanderConfig, preset Preset) {
	switch preset {
	case PresetEasy:
		cfg.Physics.Gravity *= 0.75
		cfg.Physics.Thruster *= 1.25
		cfg.Landing.SafeSpeed *= 1.5
	case PresetHard:
		cfg.Physics.Gravity *= 1.25
		cfg.Physics.Thruster *= 0.9
		cfg.Landing.SafeSpeed *= 0.75
	}
}
