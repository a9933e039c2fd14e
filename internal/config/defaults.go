package config

import (
	_ "embed"
)

//go:embed defaults/smashbing.yaml
var defaultYAML []byte

// DefaultConfig returns the default (normal difficulty) configuration.
func DefaultConfig() Config {
	return Config{
		Physics: PhysicsConfig{
			Gravity:         -50.0,
			BounceFactor:    0.5,
			BounceThreshold: 3.0,
			FireImpulse:     75.0,
			BlockDamping:    0.35,
			JitterAngle:     defaultJitterAngle,
			AudibleSpeed:    0.7,
			RestThreshold:   0.2,
			MaxCharges:      2,
		},
		Field: FieldConfig{
			Cols:        6,
			Rows:        8,
			Critters:    7,
			OriginX:     8.0,
			OriginY:     16.0,
			BlockWidth:  8.0,
			BlockHeight: 5.0,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultYAML
}
