package headless

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/smashbing/internal/config"
	"github.com/vovakirdan/smashbing/internal/core"
	"github.com/vovakirdan/smashbing/internal/smashbing"
)

// Particle settings for broken blocks.
const (
	DefaultMaxParticles = 256
	particlesPerBlock   = 8
	particleSeedMask    = 0x5bd1e995
)

// Summary reports the outcome of a run.
type Summary struct {
	Name          string
	Seed          int64
	Ticks         int
	Wins          int
	Resets        int
	Exited        bool
	FreedCritters int
	Blocks        int
	Mode          string
	Sounds        map[string]int
	Particles     int // Peak live particle count
	Hash          uint64
	Elapsed       time.Duration
}

// Runner executes scripts against a fresh game.
type Runner struct {
	cfg          config.Config
	logger       *log.Logger
	handlers     []EffectHandler
	maxParticles int
}

// NewRunner creates a runner for the given tuning.
// Every effect is passed to each handler in order.
func NewRunner(cfg config.Config, logger *log.Logger, handlers ...EffectHandler) *Runner {
	return &Runner{
		cfg:          cfg,
		logger:       logger,
		handlers:     handlers,
		maxParticles: DefaultMaxParticles,
	}
}

// SetMaxParticles bounds the particle pool. Zero disables particles.
func (r *Runner) SetMaxParticles(n int) {
	r.maxParticles = max(n, 0)
}

// Run plays the script to completion.
// It stops early on an exit effect, or when ctx is cancelled, in which case
// the partial summary is returned with ctx's error.
func (r *Runner) Run(ctx context.Context, script Script) (Summary, error) {
	if err := script.Validate(); err != nil {
		return Summary{}, err
	}

	cfg := r.cfg
	preset, _ := config.ParsePreset(script.Preset) // Checked by Validate
	config.ApplyPreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return Summary{}, fmt.Errorf("headless: %w", err)
	}

	// Pin a time-based seed so the summary can reproduce the run
	if script.Seed == 0 {
		script.Seed = time.Now().UnixNano()
	}
	game := smashbing.New(cfg, core.NewRand(script.Seed))

	// Particles draw from their own source so they never perturb the game
	fxRng := core.NewRand(script.Seed ^ particleSeedMask)
	particles := smashbing.NewParticleSet(r.maxParticles)
	dt := script.DT()

	sum := Summary{
		Name:   script.Name,
		Seed:   script.Seed,
		Sounds: make(map[string]int),
	}
	start := time.Now()

	r.logger.Info("run started",
		"script", script.Name,
		"seed", script.Seed,
		"ticks", script.Ticks,
		"tick_rate", script.TickRate,
		"preset", preset,
		"bot", script.Bot.Enabled(),
	)

	for tick := range script.Ticks {
		if err := ctx.Err(); err != nil {
			r.finish(&sum, game, start)
			return sum, err
		}

		cmds := make([]smashbing.Command, 0, 2)
		for _, f := range script.FiresAt(tick) {
			cmds = append(cmds, smashbing.Fire(f.X, f.Y))
		}
		if botCmds := script.Bot.Commands(tick, game); len(botCmds) > 0 {
			r.logger.Debug("bot fires", "tick", tick, "command", botCmds[0])
			cmds = append(cmds, botCmds...)
		}

		prevMode := game.Mode()
		before := game.Blocks()
		ballVel := game.Ball().Vel
		effects := game.Update(dt, cmds)
		sum.Ticks++

		exited := false
		broke, won := false, false
		for _, e := range effects {
			for _, h := range r.handlers {
				h.HandleEffect(tick, e)
			}
			switch e.Kind {
			case smashbing.EffectExit:
				exited = true
			case smashbing.EffectSound:
				sum.Sounds[e.Sound.String()]++
				switch {
				case e.Sound == smashbing.SoundWin:
					won = true
				case e.Sound.IsBreak():
					broke = true
				}
			}
		}

		if broke {
			for _, b := range removedBlocks(before, game.Blocks(), won) {
				particles.Burst(b, ballVel.Scaled(-1), particlesPerBlock, fxRng)
			}
		}
		particles.Update(dt)
		sum.Particles = max(sum.Particles, particles.Len())

		if won {
			sum.Wins++
			r.logger.Info("field cleared", "tick", tick, "freed", game.FreedCritters())
		}
		if prevMode == smashbing.ModeMenu && game.Mode() == smashbing.ModePlaying {
			sum.Resets++
			r.logger.Info("game reset", "tick", tick)
		}
		if exited {
			sum.Exited = true
			break
		}
	}

	r.finish(&sum, game, start)
	r.logger.Info("run finished",
		"ticks", sum.Ticks,
		"wins", sum.Wins,
		"exited", sum.Exited,
		"blocks", sum.Blocks,
		"hash", sum.Hash,
	)
	return sum, nil
}

func (r *Runner) finish(sum *Summary, game *smashbing.Game, start time.Time) {
	snap := game.Snapshot()
	sum.FreedCritters = game.FreedCritters()
	sum.Blocks = game.BlockCount()
	sum.Mode = game.Mode().String()
	sum.Hash = snap.Hash()
	sum.Elapsed = time.Since(start)
}

// removedBlocks returns the blocks in before that are missing from after.
// A win replaces the whole field, so everything in before was removed.
func removedBlocks(before, after []smashbing.Block, won bool) []smashbing.Block {
	if won {
		return before
	}
	remaining := make(map[uint32]bool, len(after))
	for _, b := range after {
		remaining[b.ID] = true
	}
	var out []smashbing.Block
	for _, b := range before {
		if !remaining[b.ID] {
			out = append(out, b)
		}
	}
	return out
}
