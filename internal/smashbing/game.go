// Package smashbing implements the deterministic simulation behind the
// smashbing arcade game: a ball fired around a walled arena to smash a grid
// of blocks and free the critters hidden among them.
//
// The package draws nothing, plays nothing and reads no input. Hosts feed
// commands into Game.Update and execute the returned effects.
package smashbing

import (
	"github.com/vovakirdan/smashbing/internal/config"
	"github.com/vovakirdan/smashbing/internal/core"
)

// Mode reports which field is in play.
type Mode int

const (
	ModePlaying Mode = iota // Block grid
	ModeMenu                // Exit and Reset buttons after a win
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModePlaying:
		return "playing"
	case ModeMenu:
		return "menu"
	default:
		return "unknown"
	}
}

// Game is the root simulation state.
type Game struct {
	cfg config.Config
	rng core.Rand

	ball  *Ball
	field *Field
	mode  Mode
	tick  uint64
}

// New creates a game with a freshly generated field.
// All randomness is drawn from rng, so a seeded source gives a reproducible run.
func New(cfg config.Config, rng core.Rand) *Game {
	g := &Game{cfg: cfg, rng: rng}
	g.Reset()
	return g
}

// NewDefault creates a game with default tuning and the process-wide RNG.
func NewDefault() *Game {
	return New(config.DefaultConfig(), core.GlobalRand())
}

// Reset puts the ball back at its start and generates a new field.
// The tick counter keeps running across resets.
func (g *Game) Reset() {
	g.ball = DefaultBall(g.cfg.Physics)
	g.field = GenerateField(g.cfg.Field, g.rng)
	g.mode = ModePlaying
}

// Update advances the simulation by dt seconds after applying commands.
// Effects are returned in the order: fire sounds, exit requests, block
// crash, wall and floor sounds, win.
func (g *Game) Update(dt float64, commands []Command) []Effect {
	var effects []Effect
	g.tick++

	for _, cmd := range commands {
		if cmd.Kind == CommandFire {
			effects = append(effects, g.ball.FireAt(cmd.X, cmd.Y)...)
		}
	}

	// Contact is tested at the post-fire position, before integration
	pos := g.ball.Pos
	colliding, reset := false, false
	for _, b := range g.field.Containing(pos) {
		switch b.Effect {
		case BlockEffectNone:
			colliding = true
		case BlockEffectReset:
			reset = true
		case BlockEffectExit:
			effects = append(effects, ExitEffect())
		}
	}

	if reset {
		g.Reset()
		return effects
	}

	if colliding {
		effects = append(effects, g.ball.BlockCollide(g.rng)...)
		g.field.RemoveContaining(pos)
	}

	effects = append(effects, g.ball.Update(dt)...)

	if g.field.Len() == 0 {
		effects = append(effects, SoundEffect(SoundWin))
		g.field = MenuField(g.field.critterTotal)
		g.mode = ModeMenu
	}

	return effects
}

// Ball returns a copy of the ball.
func (g *Game) Ball() Ball {
	return *g.ball
}

// Blocks returns a copy of the blocks in play ordered by id.
func (g *Game) Blocks() []Block {
	return g.field.Blocks()
}

// BlockCount returns the number of blocks in play.
func (g *Game) BlockCount() int {
	return g.field.Len()
}

// FreedCritters returns how many critters have been released this round.
// In the menu every critter counts as freed.
func (g *Game) FreedCritters() int {
	return g.field.FreedCritters()
}

// Mode returns which field is in play.
func (g *Game) Mode() Mode {
	return g.mode
}

// Tick returns the number of updates since the game was created.
func (g *Game) Tick() uint64 {
	return g.tick
}

// Config returns the tuning the game was created with.
func (g *Game) Config() config.Config {
	return g.cfg
}
