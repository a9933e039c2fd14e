package smashbing

import "math"

// Snapshot captures the observable game state for determinism checks.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick    uint64
	Mode    int
	Charges int

	BallX, BallY   float64
	BallVX, BallVY float64

	BlockCount    int
	FreedCritters int

	// Each block is 8 values: ID, Left, Bottom, R, G, B, Critter, Effect
	BlockData []float64
}

const blockStride = 8

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	blocks := g.field.Blocks()
	data := make([]float64, 0, len(blocks)*blockStride)
	for _, b := range blocks {
		critter := 0.0
		if b.Critter {
			critter = 1
		}
		data = append(data,
			float64(b.ID),
			b.Rect.Left,
			b.Rect.Bottom,
			b.Color.R,
			b.Color.G,
			b.Color.B,
			critter,
			float64(b.Effect),
		)
	}

	return Snapshot{
		Tick:          g.tick,
		Mode:          int(g.mode),
		Charges:       g.ball.Charges(),
		BallX:         g.ball.Pos.X,
		BallY:         g.ball.Pos.Y,
		BallVX:        g.ball.Vel.X,
		BallVY:        g.ball.Vel.Y,
		BlockCount:    len(blocks),
		FreedCritters: g.field.FreedCritters(),
		BlockData:     data,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Mode)          //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Charges)       //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.BallX)
	h = h*31 + math.Float64bits(snap.BallY)
	h = h*31 + math.Float64bits(snap.BallVX)
	h = h*31 + math.Float64bits(snap.BallVY)
	h = h*31 + uint64(snap.BlockCount)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.FreedCritters) //#nosec G115 -- hash computation

	for _, v := range snap.BlockData {
		h = h*31 + math.Float64bits(v)
	}

	return h
}
