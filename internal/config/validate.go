package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned (wrapped) when a configuration fails validation.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Validate checks that the configuration describes a playable game.
// All problems are reported together.
func (c Config) Validate() error {
	var problems []error

	p := c.Physics
	if p.Gravity > 0 {
		problems = append(problems, fmt.Errorf("physics.gravity must be <= 0, got %g", p.Gravity))
	}
	if p.BounceFactor <= 0 || p.BounceFactor > 1 {
		problems = append(problems, fmt.Errorf("physics.bounce_factor must be in (0, 1], got %g", p.BounceFactor))
	}
	if p.BlockDamping <= 0 || p.BlockDamping > 1 {
		problems = append(problems, fmt.Errorf("physics.block_damping must be in (0, 1], got %g", p.BlockDamping))
	}
	if p.FireImpulse <= 0 {
		problems = append(problems, fmt.Errorf("physics.fire_impulse must be > 0, got %g", p.FireImpulse))
	}
	if p.BounceThreshold < 0 || p.AudibleSpeed < 0 || p.RestThreshold < 0 || p.JitterAngle < 0 {
		problems = append(problems, errors.New("physics thresholds and jitter_angle must be >= 0"))
	}
	if p.MaxCharges < 1 {
		problems = append(problems, fmt.Errorf("physics.max_charges must be >= 1, got %d", p.MaxCharges))
	}

	f := c.Field
	if f.Cols <= 0 || f.Rows <= 0 {
		problems = append(problems, fmt.Errorf("field.cols and field.rows must be > 0, got %dx%d", f.Cols, f.Rows))
	}
	if f.BlockWidth <= 0 || f.BlockHeight <= 0 {
		problems = append(problems, fmt.Errorf("field block size must be > 0, got %gx%g", f.BlockWidth, f.BlockHeight))
	}
	if f.Critters < 0 || f.Critters > f.Cells() {
		problems = append(problems, fmt.Errorf("field.critters must be in [0, %d], got %d", f.Cells(), f.Critters))
	}

	if len(problems) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(problems...))
}
