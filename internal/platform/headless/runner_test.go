package headless

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/smashbing/internal/config"
	"github.com/vovakirdan/smashbing/internal/smashbing"
)

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func botScript(seed int64, ticks int) Script {
	s := DefaultScript()
	s.Seed = seed
	s.Ticks = ticks
	return s
}

func TestRunnerClearsSingleBlock(t *testing.T) {
	h := NewLogHandler(quietLogger())
	r := NewRunner(singleBlockConfig(), quietLogger(), h)

	// One shot at tick 0 reaches the block; no second shot within the run
	script := botScript(1, 60)
	script.Bot.Interval = 60

	sum, err := r.Run(context.Background(), script)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if sum.Ticks != 60 {
		t.Errorf("Ticks = %d, expected 60", sum.Ticks)
	}
	if sum.Wins != 1 {
		t.Errorf("Wins = %d, expected 1", sum.Wins)
	}
	if sum.Mode != "menu" || sum.Blocks != 2 {
		t.Errorf("Mode, Blocks = %s, %d, expected menu, 2", sum.Mode, sum.Blocks)
	}
	if sum.FreedCritters != 1 {
		t.Errorf("FreedCritters = %d, expected 1", sum.FreedCritters)
	}
	if sum.Particles != particlesPerBlock {
		t.Errorf("Particles = %d, expected %d", sum.Particles, particlesPerBlock)
	}
	if sum.Sounds["win"] != 1 || sum.Sounds["impulse"] < 1 {
		t.Errorf("Sounds = %v, expected one win and an impulse", sum.Sounds)
	}
	if got := h.Count(smashbing.SoundEffect(smashbing.SoundWin)); got != 1 {
		t.Errorf("LogHandler.Count(win) = %d, expected 1", got)
	}
}

func TestRunnerDeterminism(t *testing.T) {
	script := botScript(777, 1800)
	script.Fires = []ScriptFire{{Tick: 45, X: 60, Y: 60}, {Tick: 400, X: 5, Y: 50}}

	r := NewRunner(config.DefaultConfig(), quietLogger())
	sum1, err := r.Run(context.Background(), script)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	sum2, err := r.Run(context.Background(), script)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if sum1.Hash != sum2.Hash {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", sum1.Hash, sum2.Hash)
	}
	if sum1.Blocks != sum2.Blocks || sum1.Wins != sum2.Wins {
		t.Errorf("Determinism failed: %+v vs %+v", sum1, sum2)
	}
}

func TestRunnerParticlesDoNotAffectGame(t *testing.T) {
	script := botScript(31, 900)

	with := NewRunner(config.DefaultConfig(), quietLogger())
	without := NewRunner(config.DefaultConfig(), quietLogger())
	without.SetMaxParticles(0)

	a, err := with.Run(context.Background(), script)
	if err != nil {
		t.Fatal(err)
	}
	b, err := without.Run(context.Background(), script)
	if err != nil {
		t.Fatal(err)
	}

	if a.Hash != b.Hash {
		t.Errorf("particles changed the game: %d vs %d", a.Hash, b.Hash)
	}
	if b.Particles != 0 {
		t.Errorf("Particles = %d, expected 0 when disabled", b.Particles)
	}
}

func TestRunnerPinsSeed(t *testing.T) {
	r := NewRunner(config.DefaultConfig(), quietLogger())

	sum, err := r.Run(context.Background(), botScript(0, 10))
	if err != nil {
		t.Fatal(err)
	}
	if sum.Seed == 0 {
		t.Error("Seed = 0, expected the time-based seed to be reported")
	}
}

func TestRunnerCancelled(t *testing.T) {
	r := NewRunner(config.DefaultConfig(), quietLogger())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sum, err := r.Run(ctx, botScript(1, 100))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v, expected context.Canceled", err)
	}
	if sum.Ticks != 0 {
		t.Errorf("Ticks = %d, expected 0", sum.Ticks)
	}
}

func TestRunnerCancelledMidRun(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// The bot's first shot makes a sound on tick 0
	stop := EffectHandlerFunc(func(int, smashbing.Effect) { cancel() })
	r := NewRunner(config.DefaultConfig(), quietLogger(), stop)

	sum, err := r.Run(ctx, botScript(1, 100))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v, expected context.Canceled", err)
	}
	if sum.Ticks != 1 {
		t.Errorf("Ticks = %d, expected 1", sum.Ticks)
	}
}

func TestRunnerRejectsBadInput(t *testing.T) {
	r := NewRunner(config.DefaultConfig(), quietLogger())

	bad := botScript(1, 0)
	if _, err := r.Run(context.Background(), bad); !errors.Is(err, ErrInvalidScript) {
		t.Errorf("Run(ticks=0) error = %v, expected ErrInvalidScript", err)
	}

	cfg := config.DefaultConfig()
	cfg.Physics.FireImpulse = 0
	r = NewRunner(cfg, quietLogger())
	if _, err := r.Run(context.Background(), botScript(1, 10)); !errors.Is(err, config.ErrInvalidConfig) {
		t.Errorf("Run() error = %v, expected ErrInvalidConfig", err)
	}
}

func TestRunnerLogs(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)
	logger.SetLevel(log.DebugLevel)

	r := NewRunner(singleBlockConfig(), logger, NewLogHandler(logger))
	if _, err := r.Run(context.Background(), botScript(1, 60)); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	for _, want := range []string{"run started", "bot fires", "play sound", "field cleared", "run finished"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q", want)
		}
	}
}

func TestRemovedBlocks(t *testing.T) {
	before := []smashbing.Block{{ID: 1}, {ID: 2}, {ID: 3}}
	after := []smashbing.Block{{ID: 1}, {ID: 3}}

	got := removedBlocks(before, after, false)
	if len(got) != 1 || got[0].ID != 2 {
		t.Errorf("removedBlocks() = %+v, expected block 2", got)
	}

	// Menu ids overlap the old field after a win
	if got := removedBlocks(before, []smashbing.Block{{ID: 0}, {ID: 1}}, true); len(got) != 3 {
		t.Errorf("removedBlocks(win) = %d blocks, expected 3", len(got))
	}
}
