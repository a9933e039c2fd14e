package config

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownPreset is returned (wrapped) for an unrecognised preset name.
var ErrUnknownPreset = errors.New("config: unknown difficulty preset")

// ParsePreset converts a preset name to a DifficultyPreset.
// The empty string means "no preset" and is accepted.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch DifficultyPreset(strings.ToLower(strings.TrimSpace(name))) {
	case "":
		return "", nil
	case DifficultyEasy:
		return DifficultyEasy, nil
	case DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyHard:
		return DifficultyHard, nil
	default:
		return "", fmt.Errorf("%w %q (want easy, normal or hard)", ErrUnknownPreset, name)
	}
}

// ApplyPreset modifies the physics tuning based on a difficulty preset.
// Field layout is left untouched.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		// Floaty ball, strong shots, blocks slow it less
		cfg.Physics.Gravity = -40
		cfg.Physics.FireImpulse = 80
		cfg.Physics.BlockDamping = 0.4
		cfg.Physics.BounceFactor = 0.55
	case DifficultyNormal:
		d := DefaultConfig().Physics
		cfg.Physics.Gravity = d.Gravity
		cfg.Physics.FireImpulse = d.FireImpulse
		cfg.Physics.BlockDamping = d.BlockDamping
		cfg.Physics.BounceFactor = d.BounceFactor
	case DifficultyHard:
		cfg.Physics.Gravity = -60
		cfg.Physics.FireImpulse = 70
		cfg.Physics.BlockDamping = 0.3
		cfg.Physics.BounceFactor = 0.4
	}
}
