package smashbing

import "github.com/vovakirdan/smashbing/internal/core"

// BlockEffect marks blocks that act as menu buttons instead of breaking.
type BlockEffect int

const (
	BlockEffectNone  BlockEffect = iota // Ordinary breakable block
	BlockEffectReset                    // Restarts the game on contact
	BlockEffectExit                     // Requests exit on contact
)

// String returns the effect name.
func (e BlockEffect) String() string {
	switch e {
	case BlockEffectNone:
		return "none"
	case BlockEffectReset:
		return "reset"
	case BlockEffectExit:
		return "exit"
	default:
		return "unknown"
	}
}

// Block is a rectangular target in the arena.
// Identity is the ID alone; two blocks with equal IDs are the same block
// regardless of geometry or colour.
type Block struct {
	ID      uint32
	Rect    core.Rect
	Color   core.Color
	Critter bool
	Effect  BlockEffect
}

// NewBlock creates a block whose bottom-left corner is at (x, y).
func NewBlock(id uint32, x, y, w, h float64, color core.Color, critter bool, effect BlockEffect) Block {
	return Block{
		ID:      id,
		Rect:    core.NewRect(x, x+w, y, y+h),
		Color:   color,
		Critter: critter,
		Effect:  effect,
	}
}

// Equal reports whether both blocks have the same identity.
func (b Block) Equal(o Block) bool {
	return b.ID == o.ID
}

// Key returns the identity used when blocks are stored in a set.
func (b Block) Key() uint32 {
	return b.ID
}

// IsSpecial reports whether the block is a menu button.
func (b Block) IsSpecial() bool {
	return b.Effect != BlockEffectNone
}
