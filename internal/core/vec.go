package core

import "math"

// Vector2 is a point or direction in arena space (y-up).
// Methods with value receivers return new vectors; pointer receiver methods
// modify the vector in place.
type Vector2 struct {
	X, Y float64
}

// Vec creates a new vector.
func Vec(x, y float64) Vector2 {
	return Vector2{X: x, Y: y}
}

// Magnitude returns the Euclidean length of the vector.
func (v Vector2) Magnitude() float64 {
	return math.Hypot(v.X, v.Y)
}

// IsZero reports whether both components are exactly zero.
func (v Vector2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Rotate rotates the vector counter-clockwise by rads.
func (v *Vector2) Rotate(rads float64) {
	sin, cos := math.Sincos(rads)
	x := v.X*cos - v.Y*sin
	y := v.X*sin + v.Y*cos
	v.X = x
	v.Y = y
}

// Rotated returns a copy rotated counter-clockwise by rads.
func (v Vector2) Rotated(rads float64) Vector2 {
	v.Rotate(rads)
	return v
}

// Scale multiplies both components by scalar.
func (v *Vector2) Scale(scalar float64) {
	v.X *= scalar
	v.Y *= scalar
}

// Scaled returns a copy multiplied by scalar.
func (v Vector2) Scaled(scalar float64) Vector2 {
	return Vector2{X: v.X * scalar, Y: v.Y * scalar}
}

// Normalize scales the vector to unit length.
// The zero vector has no direction and is left unchanged.
func (v *Vector2) Normalize() {
	m := v.Magnitude()
	if m == 0 {
		return
	}
	v.X /= m
	v.Y /= m
}

// Normalized returns a unit-length copy, or the zero vector for zero input.
func (v Vector2) Normalized() Vector2 {
	v.Normalize()
	return v
}

// Add returns v + o.
func (v Vector2) Add(o Vector2) Vector2 {
	return Vector2{X: v.X + o.X, Y: v.Y + o.Y}
}

// AddAssign adds o to v in place.
func (v *Vector2) AddAssign(o Vector2) {
	v.X += o.X
	v.Y += o.Y
}

// Sub returns v - o.
func (v Vector2) Sub(o Vector2) Vector2 {
	return Vector2{X: v.X - o.X, Y: v.Y - o.Y}
}

// SubAssign subtracts o from v in place.
func (v *Vector2) SubAssign(o Vector2) {
	v.X -= o.X
	v.Y -= o.Y
}
