// Package config provides YAML/TOML tuning configuration loading and
// difficulty presets for the smashbing simulation.
package config

import "math"

// Config contains all tuning for a smashbing game.
type Config struct {
	Physics PhysicsConfig `yaml:"physics" toml:"physics"`
	Field   FieldConfig   `yaml:"field" toml:"field"`
}

// PhysicsConfig defines ball dynamics. Units are arena units and seconds.
type PhysicsConfig struct {
	Gravity         float64 `yaml:"gravity" toml:"gravity"`                   // Vertical acceleration (negative = down)
	BounceFactor    float64 `yaml:"bounce_factor" toml:"bounce_factor"`       // Velocity kept on a floor bounce
	BounceThreshold float64 `yaml:"bounce_threshold" toml:"bounce_threshold"` // Below this speed the ball stops on the floor
	FireImpulse     float64 `yaml:"fire_impulse" toml:"fire_impulse"`         // Velocity added per fire
	BlockDamping    float64 `yaml:"block_damping" toml:"block_damping"`       // Velocity kept after hitting a block
	JitterAngle     float64 `yaml:"jitter_angle" toml:"jitter_angle"`         // Max random deflection on block hit (radians)
	AudibleSpeed    float64 `yaml:"audible_speed" toml:"audible_speed"`       // Bounces slower than this are silent
	RestThreshold   float64 `yaml:"rest_threshold" toml:"rest_threshold"`     // Height above floor where gravity is skipped
	MaxCharges      int     `yaml:"max_charges" toml:"max_charges"`
}

// FieldConfig defines the block grid layout.
type FieldConfig struct {
	Cols        int     `yaml:"cols" toml:"cols"`
	Rows        int     `yaml:"rows" toml:"rows"`
	Critters    int     `yaml:"critters" toml:"critters"`
	OriginX     float64 `yaml:"origin_x" toml:"origin_x"`
	OriginY     float64 `yaml:"origin_y" toml:"origin_y"`
	BlockWidth  float64 `yaml:"block_width" toml:"block_width"`
	BlockHeight float64 `yaml:"block_height" toml:"block_height"`
}

// Cells returns the number of grid cells.
func (f FieldConfig) Cells() int {
	return f.Cols * f.Rows
}

// DifficultyPreset represents a named tuning level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// Presets lists the known presets in display order.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard}
}

const defaultJitterAngle = math.Pi / 6
