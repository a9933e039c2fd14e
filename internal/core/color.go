package core

import "fmt"

// Color is an RGBA colour with channels in [0, 1].
type Color struct {
	R, G, B, A float64
}

// RGBA creates a colour from its four channels.
func RGBA(r, g, b, a float64) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// Clamped returns a copy with every channel clamped to [0, 1].
func (c Color) Clamped() Color {
	return Color{
		R: ClampF(c.R, 0, 1),
		G: ClampF(c.G, 0, 1),
		B: ClampF(c.B, 0, 1),
		A: ClampF(c.A, 0, 1),
	}
}

// Lerp linearly interpolates from c to o by t (alpha included).
func (c Color) Lerp(o Color, t float64) Color {
	return Color{
		R: c.R + (o.R-c.R)*t,
		G: c.G + (o.G-c.G)*t,
		B: c.B + (o.B-c.B)*t,
		A: c.A + (o.A-c.A)*t,
	}
}

// Hex returns the colour as "#rrggbb", ignoring alpha.
func (c Color) Hex() string {
	c = c.Clamped()
	return fmt.Sprintf("#%02x%02x%02x", to8(c.R), to8(c.G), to8(c.B))
}

func to8(x float64) uint8 {
	return uint8(x*255 + 0.5)
}
