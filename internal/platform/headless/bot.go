package headless

import (
	"github.com/vovakirdan/smashbing/internal/smashbing"
)

// Bot fires automatically at the lowest-id target block.
// A zero Interval disables it.
type Bot struct {
	Interval   int  `yaml:"interval" toml:"interval"`
	PreferExit bool `yaml:"prefer_exit" toml:"prefer_exit"`
}

// Enabled reports whether the bot issues commands.
func (b Bot) Enabled() bool {
	return b.Interval > 0
}

// Commands returns the bot's commands for a tick.
// The bot only fires on interval ticks while the ball has charges.
func (b Bot) Commands(tick int, g *smashbing.Game) []smashbing.Command {
	if !b.Enabled() || tick%b.Interval != 0 {
		return nil
	}
	ball := g.Ball()
	if ball.Charges() == 0 {
		return nil
	}

	target, ok := b.Target(g)
	if !ok {
		return nil
	}
	c := target.Rect.Center()
	return []smashbing.Command{smashbing.Fire(c.X, c.Y)}
}

// Target picks the block to aim at: the first breakable block while playing,
// the Reset button in the menu, or Exit when PreferExit is set.
func (b Bot) Target(g *smashbing.Game) (smashbing.Block, bool) {
	want := smashbing.BlockEffectNone
	if g.Mode() == smashbing.ModeMenu {
		want = smashbing.BlockEffectReset
		if b.PreferExit {
			want = smashbing.BlockEffectExit
		}
	}

	// Blocks are sorted by id
	for _, blk := range g.Blocks() {
		if blk.Effect == want {
			return blk, true
		}
	}
	return smashbing.Block{}, false
}
