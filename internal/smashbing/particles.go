package smashbing

import (
	"math"

	"github.com/vovakirdan/smashbing/internal/core"
)

// Particle tuning.
const (
	ParticleMaxAge   = 1.8 // Seconds before a particle is dropped
	particleSpread   = math.Pi / 3
	particleSpeed    = 12.0 // Units per second at spawn
	particleDecay    = 0.4  // Fraction of speed and alpha kept per second
	particleJitterXY = 0.5
)

// Particle is one cosmetic debris fragment.
type Particle struct {
	Pos   core.Vector2
	Vel   core.Vector2
	Color core.Color
	Age   float64
}

// ParticleSet is a bounded pool of particles. Once full, new particles
// overwrite the oldest ones.
type ParticleSet struct {
	max       int
	particles []Particle
	next      int
}

// NewParticleSet creates a pool holding at most capacity particles.
func NewParticleSet(capacity int) *ParticleSet {
	return &ParticleSet{
		max:       capacity,
		particles: make([]Particle, 0, capacity),
	}
}

// Spawn emits a particle at pos heading roughly along dir.
func (ps *ParticleSet) Spawn(pos, dir core.Vector2, color core.Color, rng core.Rand) {
	if ps.max <= 0 {
		return
	}

	vel := dir.Normalized()
	if vel.IsZero() {
		vel = core.Vec(0, 1)
	}
	vel.Rotate(core.Uniform(rng, -particleSpread, particleSpread))
	vel.Scale(particleSpeed)

	p := Particle{
		Pos: pos.Add(core.Vec(
			core.Uniform(rng, -particleJitterXY, particleJitterXY),
			core.Uniform(rng, -particleJitterXY, particleJitterXY),
		)),
		Vel:   vel,
		Color: color,
	}

	if len(ps.particles) < ps.max {
		ps.particles = append(ps.particles, p)
		return
	}
	ps.particles[ps.next] = p
	ps.next = (ps.next + 1) % ps.max
}

// Burst spawns n particles for a smashed block.
func (ps *ParticleSet) Burst(b Block, dir core.Vector2, n int, rng core.Rand) {
	center := b.Rect.Center()
	for range n {
		ps.Spawn(center, dir, b.Color, rng)
	}
}

// Update ages, moves and fades every particle, dropping expired ones.
func (ps *ParticleSet) Update(dt float64) {
	keep := math.Pow(particleDecay, dt)

	alive := ps.particles[:0]
	for _, p := range ps.particles {
		p.Age += dt
		if p.Age > ParticleMaxAge {
			continue
		}
		p.Pos.AddAssign(p.Vel.Scaled(dt))
		p.Vel.Scale(keep)
		p.Color.A *= keep
		alive = append(alive, p)
	}
	ps.particles = alive
	if ps.next >= len(ps.particles) {
		ps.next = 0
	}
}

// Len returns the number of live particles.
func (ps *ParticleSet) Len() int {
	return len(ps.particles)
}

// Particles returns a copy of the live particles.
func (ps *ParticleSet) Particles() []Particle {
	out := make([]Particle, len(ps.particles))
	copy(out, ps.particles)
	return out
}
