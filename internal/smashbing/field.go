package smashbing

import (
	"slices"

	"github.com/vovakirdan/smashbing/internal/config"
	"github.com/vovakirdan/smashbing/internal/core"
)

// Menu layout, shown after a win.
const (
	MenuExitX       = 8.0
	MenuResetX      = 48.0
	MenuButtonY     = 26.0
	MenuBlockWidth  = 8.0
	MenuBlockHeight = 5.0

	MenuExitID  uint32 = 0
	MenuResetID uint32 = 1
)

var (
	menuExitColor  = core.RGBA(0.9, 0.1, 0.1, 1.0)
	menuResetColor = core.RGBA(0.1, 0.9, 0.1, 1.0)

	// Normal blocks shade from dark to light green across the grid
	fieldGreenDark  = core.RGBA(0.05, 0.35, 0.1, 1.0)
	fieldGreenLight = core.RGBA(0.45, 0.85, 0.3, 1.0)
)

const (
	blockColorJitter   = 0.3
	critterGrey        = 0.3
	critterColorJitter = 0.2
)

// Field is the set of blocks currently in play, keyed by block identity.
type Field struct {
	blocks       map[uint32]Block
	critterTotal int // Critters the round started with
}

// NewField creates a field holding the given blocks.
// critterTotal is the number of critters a full round contains.
func NewField(critterTotal int, blocks ...Block) *Field {
	f := &Field{
		blocks:       make(map[uint32]Block, len(blocks)),
		critterTotal: critterTotal,
	}
	for _, b := range blocks {
		f.Insert(b)
	}
	return f
}

// Len returns the number of blocks in the field.
func (f *Field) Len() int {
	return len(f.blocks)
}

// Insert adds a block, replacing any block with the same identity.
func (f *Field) Insert(b Block) {
	f.blocks[b.Key()] = b
}

// Get returns the block with the given id.
func (f *Field) Get(id uint32) (Block, bool) {
	b, ok := f.blocks[id]
	return b, ok
}

// Remove deletes the block with the given id. Returns false if absent.
func (f *Field) Remove(id uint32) bool {
	if _, ok := f.blocks[id]; !ok {
		return false
	}
	delete(f.blocks, id)
	return true
}

// Blocks returns a copy of all blocks ordered by id.
func (f *Field) Blocks() []Block {
	out := make([]Block, 0, len(f.blocks))
	for _, b := range f.blocks {
		out = append(out, b)
	}
	slices.SortFunc(out, compareID)
	return out
}

// Containing returns the blocks whose rectangle contains p, ordered by id.
func (f *Field) Containing(p core.Vector2) []Block {
	var out []Block
	for _, b := range f.blocks {
		if b.Rect.Contains(p) {
			out = append(out, b)
		}
	}
	slices.SortFunc(out, compareID)
	return out
}

// RemoveContaining deletes every breakable block containing p.
// Menu buttons are never removed. Returns the number of blocks removed.
func (f *Field) RemoveContaining(p core.Vector2) int {
	removed := 0
	for id, b := range f.blocks {
		if !b.IsSpecial() && b.Rect.Contains(p) {
			delete(f.blocks, id)
			removed++
		}
	}
	return removed
}

// CritterCount returns the number of critter blocks still in the field.
func (f *Field) CritterCount() int {
	n := 0
	for _, b := range f.blocks {
		if b.Critter {
			n++
		}
	}
	return n
}

// FreedCritters returns how many critters have been released this round.
func (f *Field) FreedCritters() int {
	return max(f.critterTotal-f.CritterCount(), 0)
}

// IsMenu reports whether the field only holds menu buttons.
func (f *Field) IsMenu() bool {
	if len(f.blocks) == 0 {
		return false
	}
	for _, b := range f.blocks {
		if !b.IsSpecial() {
			return false
		}
	}
	return true
}

func compareID(a, b Block) int {
	switch {
	case a.ID < b.ID:
		return -1
	case a.ID > b.ID:
		return 1
	default:
		return 0
	}
}

// GenerateField builds a fresh grid of blocks with randomly placed critters.
// Ids are assigned column by column starting from zero.
func GenerateField(cfg config.FieldConfig, rng core.Rand) *Field {
	cells := cfg.Cells()
	critters := pickCritters(cells, min(cfg.Critters, cells), rng)
	maxSum := (cfg.Cols - 1) + (cfg.Rows - 1)

	f := &Field{
		blocks:       make(map[uint32]Block, cells),
		critterTotal: len(critters),
	}

	id := 0
	for col := range cfg.Cols {
		for row := range cfg.Rows {
			x := cfg.OriginX + float64(col)*cfg.BlockWidth
			y := cfg.OriginY + float64(row)*cfg.BlockHeight

			critter := critters[id]
			var color core.Color
			if critter {
				color = critterColor(rng)
			} else {
				color = blockColor(col, row, maxSum, rng)
			}

			f.Insert(NewBlock(uint32(id), x, y, cfg.BlockWidth, cfg.BlockHeight, color, critter, BlockEffectNone)) //#nosec G115 -- cell index is small and non-negative
			id++
		}
	}
	return f
}

// MenuField builds the two-button menu shown after a win.
func MenuField(critterTotal int) *Field {
	return NewField(critterTotal,
		NewBlock(MenuExitID, MenuExitX, MenuButtonY, MenuBlockWidth, MenuBlockHeight, menuExitColor, false, BlockEffectExit),
		NewBlock(MenuResetID, MenuResetX, MenuButtonY, MenuBlockWidth, MenuBlockHeight, menuResetColor, false, BlockEffectReset),
	)
}

// pickCritters chooses k distinct cell indices out of n using a partial
// Fisher-Yates shuffle.
func pickCritters(n, k int, rng core.Rand) map[int]bool {
	picked := make(map[int]bool, k)
	if k <= 0 {
		return picked
	}
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	for i := range k {
		j := i + rng.IntN(n-i)
		idx[i], idx[j] = idx[j], idx[i]
		picked[idx[i]] = true
	}
	return picked
}

func blockColor(col, row, maxSum int, rng core.Rand) core.Color {
	scale := 0.0
	if maxSum > 0 {
		scale = float64(col+row) / float64(maxSum)
	}
	base := fieldGreenDark.Lerp(fieldGreenLight, scale)
	return core.RGBA(
		base.R+core.Uniform(rng, -blockColorJitter, blockColorJitter),
		base.G+core.Uniform(rng, -blockColorJitter, blockColorJitter),
		base.B+core.Uniform(rng, -blockColorJitter, blockColorJitter),
		1.0,
	).Clamped()
}

func critterColor(rng core.Rand) core.Color {
	g := critterGrey + core.Uniform(rng, -critterColorJitter, critterColorJitter)
	return core.RGBA(g, g, g, 1.0).Clamped()
}
