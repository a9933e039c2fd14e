package smashbing

import (
	"math"

	"github.com/vovakirdan/smashbing/internal/config"
	"github.com/vovakirdan/smashbing/internal/core"
)

// Arena bounds for the ball's position. The arena itself is 64x64 units.
const (
	ArenaSize = 64.0
	MinX      = 3.0
	MaxX      = 60.999
	MinY      = 7.0 // Floor
	MaxY      = 60.999
)

// Default ball placement: resting on the floor in the middle of the arena.
const (
	DefaultBallX = ArenaSize / 2
	DefaultBallY = MinY
)

// BallColor is the suggested colour for drawing the ball.
var BallColor = core.RGBA(0.9, 0.1, 0.1, 1.0)

// Ball is the player's ball: a point mass with fire charges.
type Ball struct {
	Pos core.Vector2
	Vel core.Vector2

	charges int
	physics config.PhysicsConfig
}

// NewBall creates a ball with full charges.
func NewBall(pos, vel core.Vector2, physics config.PhysicsConfig) *Ball {
	return &Ball{
		Pos:     pos,
		Vel:     vel,
		charges: physics.MaxCharges,
		physics: physics,
	}
}

// DefaultBall creates a ball at rest in its starting position.
func DefaultBall(physics config.PhysicsConfig) *Ball {
	return NewBall(core.Vec(DefaultBallX, DefaultBallY), core.Vector2{}, physics)
}

// Charges returns the number of fires left before the ball must touch the floor.
func (b Ball) Charges() int {
	return b.charges
}

// Update advances the ball by dt seconds and resolves wall and floor contact.
// Returns at most one wall sound followed by at most one floor sound.
func (b *Ball) Update(dt float64) []Effect {
	var effects []Effect
	p := b.physics

	// Semi-implicit: move with last tick's velocity, then accelerate
	b.Pos.AddAssign(b.Vel.Scaled(dt))
	// No gravity within the rest band on either side of the floor
	if math.Abs(b.Pos.Y-MinY) >= p.RestThreshold {
		b.Vel.Y += p.Gravity * dt
	}

	// Elastic side and top walls
	hitWall := false
	if b.Pos.X < MinX {
		b.Pos.X = MinX
		b.Vel.X = -b.Vel.X
		hitWall = true
	}
	if b.Pos.X > MaxX {
		b.Pos.X = MaxX
		b.Vel.X = -b.Vel.X
		hitWall = true
	}
	if b.Pos.Y > MaxY {
		b.Pos.Y = MaxY
		b.Vel.Y = -b.Vel.Y
		hitWall = true
	}
	if hitWall && b.Vel.Magnitude() > p.AudibleSpeed {
		effects = append(effects, SoundEffect(SoundBounce))
	}

	// Inelastic floor
	if b.Pos.Y < MinY {
		b.Pos.Y = MinY
		speed := b.Vel.Magnitude()

		recharged := b.charges < p.MaxCharges
		b.charges = p.MaxCharges
		if speed > p.AudibleSpeed {
			if recharged {
				effects = append(effects, SoundEffect(SoundBounceCharge))
			} else {
				effects = append(effects, SoundEffect(SoundBounce))
			}
		}

		if speed < p.BounceThreshold {
			b.Vel = core.Vector2{}
		} else {
			b.Vel.Y *= -p.BounceFactor
			b.Vel.X *= p.BounceFactor
		}
	}

	return effects
}

// BlockCollide damps the ball and deflects it by a random angle after it
// smashes into a block. Always returns exactly one crash sound.
func (b *Ball) BlockCollide(rng core.Rand) []Effect {
	b.Vel.Scale(b.physics.BlockDamping)
	b.Vel.Rotate(core.Uniform(rng, -b.physics.JitterAngle, b.physics.JitterAngle))

	sound := breakSounds[rng.IntN(len(breakSounds))]
	return []Effect{SoundEffect(sound)}
}

// FireAt spends a charge to push the ball towards (x, y).
// The impulse is added to the current velocity. Firing at the ball's own
// position spends the charge without changing velocity.
func (b *Ball) FireAt(x, y float64) []Effect {
	if b.charges == 0 {
		return nil
	}
	b.charges--

	dir := core.Vec(x, y).Sub(b.Pos).Normalized()
	b.Vel.AddAssign(dir.Scaled(b.physics.FireImpulse))

	switch b.charges {
	case 0:
		return []Effect{SoundEffect(SoundImpulseExhaust)}
	case 1:
		return []Effect{SoundEffect(SoundImpulse)}
	default:
		return nil
	}
}
