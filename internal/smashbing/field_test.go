package smashbing

import (
	"testing"

	"github.com/vovakirdan/smashbing/internal/config"
	"github.com/vovakirdan/smashbing/internal/core"
)

func TestGenerateFieldLayout(t *testing.T) {
	cfg := config.DefaultConfig().Field
	f := GenerateField(cfg, core.NewRand(1))

	if f.Len() != 48 {
		t.Fatalf("Len() = %d, expected 48", f.Len())
	}
	if f.CritterCount() != 7 {
		t.Errorf("CritterCount() = %d, expected 7", f.CritterCount())
	}
	if f.FreedCritters() != 0 {
		t.Errorf("FreedCritters() = %d, expected 0", f.FreedCritters())
	}
	if f.IsMenu() {
		t.Error("IsMenu() = true, expected false")
	}

	for i, b := range f.Blocks() {
		if b.ID != uint32(i) { //#nosec G115 -- small test index
			t.Fatalf("Blocks()[%d].ID = %d, expected %d", i, b.ID, i)
		}
		if b.IsSpecial() {
			t.Errorf("block %d is special", b.ID)
		}
		if b.Rect.Width() != 8 || b.Rect.Height() != 5 {
			t.Errorf("block %d size = %vx%v, expected 8x5", b.ID, b.Rect.Width(), b.Rect.Height())
		}
	}
}

func TestGenerateFieldColumnMajorIDs(t *testing.T) {
	f := GenerateField(config.DefaultConfig().Field, core.NewRand(1))

	tests := []struct {
		id     uint32
		left   float64
		bottom float64
	}{
		{0, 8, 16},
		{1, 8, 21},
		{7, 8, 51},
		{8, 16, 16},
		{47, 48, 51},
	}

	for _, tt := range tests {
		b, ok := f.Get(tt.id)
		if !ok {
			t.Fatalf("Get(%d) missing", tt.id)
		}
		if b.Rect.Left != tt.left || b.Rect.Bottom != tt.bottom {
			t.Errorf("block %d at (%v, %v), expected (%v, %v)", tt.id, b.Rect.Left, b.Rect.Bottom, tt.left, tt.bottom)
		}
	}
}

func TestGenerateFieldColors(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		f := GenerateField(config.DefaultConfig().Field, core.NewRand(seed))
		for _, b := range f.Blocks() {
			c := b.Color
			for _, ch := range []float64{c.R, c.G, c.B, c.A} {
				if ch < 0 || ch > 1 {
					t.Fatalf("seed %d block %d colour %v out of range", seed, b.ID, c)
				}
			}
			if c.A != 1 {
				t.Errorf("seed %d block %d alpha = %v, expected 1", seed, b.ID, c.A)
			}
			if b.Critter {
				if c.R != c.G || c.G != c.B {
					t.Errorf("critter %d colour %v, expected grey", b.ID, c)
				}
				if c.R < 0.1-eps || c.R > 0.5+eps {
					t.Errorf("critter %d grey = %v, expected [0.1, 0.5]", b.ID, c.R)
				}
			}
		}
	}
}

func TestGenerateFieldDeterministic(t *testing.T) {
	cfg := config.DefaultConfig().Field
	a := GenerateField(cfg, core.NewRand(5)).Blocks()
	b := GenerateField(cfg, core.NewRand(5)).Blocks()

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("block %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestGenerateFieldSmallGrids(t *testing.T) {
	tests := []struct {
		name         string
		cols, rows   int
		critters     int
		wantCritters int
	}{
		{"more critters than cells", 2, 2, 10, 4},
		{"single cell", 1, 1, 1, 1},
		{"no critters", 3, 2, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultConfig().Field
			cfg.Cols, cfg.Rows, cfg.Critters = tt.cols, tt.rows, tt.critters

			f := GenerateField(cfg, core.NewRand(3))
			if f.Len() != tt.cols*tt.rows {
				t.Errorf("Len() = %d, expected %d", f.Len(), tt.cols*tt.rows)
			}
			if f.CritterCount() != tt.wantCritters {
				t.Errorf("CritterCount() = %d, expected %d", f.CritterCount(), tt.wantCritters)
			}
		})
	}
}

func TestMenuField(t *testing.T) {
	f := MenuField(7)

	if f.Len() != 2 || !f.IsMenu() {
		t.Fatalf("Len() = %d, IsMenu() = %v, expected 2, true", f.Len(), f.IsMenu())
	}

	exit, ok := f.Get(MenuExitID)
	if !ok || exit.Effect != BlockEffectExit {
		t.Errorf("block %d = %+v, expected exit button", MenuExitID, exit)
	}
	if exit.Rect != core.NewRect(8, 16, 26, 31) {
		t.Errorf("exit rect = %+v, expected (8..16, 26..31)", exit.Rect)
	}

	reset, ok := f.Get(MenuResetID)
	if !ok || reset.Effect != BlockEffectReset {
		t.Errorf("block %d = %+v, expected reset button", MenuResetID, reset)
	}
	if reset.Rect != core.NewRect(48, 56, 26, 31) {
		t.Errorf("reset rect = %+v, expected (48..56, 26..31)", reset.Rect)
	}

	if f.FreedCritters() != 7 {
		t.Errorf("FreedCritters() = %d, expected 7", f.FreedCritters())
	}
}

func TestFieldIdentity(t *testing.T) {
	a := NewBlock(3, 0, 0, 4, 4, core.RGBA(1, 0, 0, 1), false, BlockEffectNone)
	b := NewBlock(3, 20, 20, 8, 5, core.RGBA(0, 1, 0, 1), true, BlockEffectNone)

	if !a.Equal(b) || a.Key() != b.Key() {
		t.Error("blocks with equal ids should be equal")
	}

	f := NewField(0, a, b)
	if f.Len() != 1 {
		t.Errorf("Len() = %d, expected 1", f.Len())
	}
	got, _ := f.Get(3)
	if got.Rect != b.Rect {
		t.Errorf("Get(3).Rect = %+v, expected the later insert %+v", got.Rect, b.Rect)
	}

	if !f.Remove(3) || f.Remove(3) {
		t.Error("Remove(3) should succeed once")
	}
}

func TestFieldRemoveContaining(t *testing.T) {
	f := NewField(0,
		NewBlock(1, 0, 0, 10, 10, core.Color{}, false, BlockEffectNone),
		NewBlock(2, 5, 5, 10, 10, core.Color{}, false, BlockEffectNone),
		NewBlock(3, 5, 5, 2, 2, core.Color{}, false, BlockEffectReset),
		NewBlock(4, 30, 30, 2, 2, core.Color{}, false, BlockEffectNone),
	)
	p := core.Vec(6, 6)

	containing := f.Containing(p)
	if len(containing) != 3 || containing[0].ID != 1 || containing[2].ID != 3 {
		t.Errorf("Containing() = %+v, expected ids 1, 2, 3", containing)
	}

	if n := f.RemoveContaining(p); n != 2 {
		t.Errorf("RemoveContaining() = %d, expected 2", n)
	}
	if _, ok := f.Get(3); !ok {
		t.Error("special block removed")
	}
	if f.Len() != 2 {
		t.Errorf("Len() = %d, expected 2", f.Len())
	}
}

func TestFieldContainsEdges(t *testing.T) {
	f := NewField(0, NewBlock(1, 8, 16, 8, 5, core.Color{}, false, BlockEffectNone))

	tests := []struct {
		p    core.Vector2
		want bool
	}{
		{core.Vec(8, 16), true},
		{core.Vec(16, 21), true},
		{core.Vec(16.001, 18), false},
		{core.Vec(12, 15.999), false},
	}

	for _, tt := range tests {
		if got := len(f.Containing(tt.p)) == 1; got != tt.want {
			t.Errorf("Containing(%v) = %v, expected %v", tt.p, got, tt.want)
		}
	}
}

func TestFieldFreedCritters(t *testing.T) {
	f := NewField(3,
		NewBlock(0, 0, 0, 1, 1, core.Color{}, true, BlockEffectNone),
		NewBlock(1, 5, 5, 1, 1, core.Color{}, true, BlockEffectNone),
	)

	if f.FreedCritters() != 1 {
		t.Errorf("FreedCritters() = %d, expected 1", f.FreedCritters())
	}
	f.Remove(0)
	if f.FreedCritters() != 2 {
		t.Errorf("FreedCritters() = %d, expected 2", f.FreedCritters())
	}
}
