package shiny

import (
	"fmt"
	"math"

	"github.com/chewxy/math32"
	"golang.org/x/image/math/f32"
	"golang.org/x/image/math/fixed"
)

// Vec2 is a 2D float32 vector. It is used both for positions (path points)
// and for displacements; the distinction is left to the caller.
//
// All operations follow IEEE-754 single precision and never fail:
// dividing by zero or normalizing a zero vector yields Inf or NaN.
type Vec2 struct {
	X, Y float32
}

// V2 is a convenience function to create a Vec2.
func V2(x, y float32) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns the sum of two vectors.
func (v Vec2) Add(w Vec2) Vec2 {
	return Vec2{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns the difference of two vectors.
func (v Vec2) Sub(w Vec2) Vec2 {
	return Vec2{X: v.X - w.X, Y: v.Y - w.Y}
}

// Mul returns the vector scaled by a scalar.
func (v Vec2) Mul(s float32) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Scale returns s*v. It is Mul with the operands in scalar-first order.
func Scale(s float32, v Vec2) Vec2 {
	return Vec2{X: s * v.X, Y: s * v.Y}
}

// Div returns the vector divided by a scalar.
func (v Vec2) Div(s float32) Vec2 {
	return Vec2{X: v.X / s, Y: v.Y / s}
}

// Dot returns the dot product of two vectors.
func (v Vec2) Dot(w Vec2) float32 {
	return v.X*w.X + v.Y*w.Y
}

// Length returns the length (magnitude) of the vector.
func (v Vec2) Length() float32 {
	return math32.Sqrt(v.Length2())
}

// Length2 returns the squared length of the vector.
// This is cheaper than Length when only comparing magnitudes.
func (v Vec2) Length2() float32 {
	return v.X*v.X + v.Y*v.Y
}

// Normalize divides the vector by its length.
// A zero vector produces NaN components; this is not guarded.
func (v Vec2) Normalize() Vec2 {
	return v.Div(v.Length())
}

// Lerp performs linear interpolation between two vectors.
// t=0 returns v, t=1 returns w. t is not clamped.
func (v Vec2) Lerp(w Vec2, t float32) Vec2 {
	return v.Add(w.Sub(v).Mul(t))
}

// Approx returns true if two vectors are approximately equal within epsilon.
func (v Vec2) Approx(w Vec2, epsilon float32) bool {
	return math32.Abs(v.X-w.X) <= epsilon && math32.Abs(v.Y-w.Y) <= epsilon
}

// IsNaN reports whether either component is NaN.
func (v Vec2) IsNaN() bool {
	return math32.IsNaN(v.X) || math32.IsNaN(v.Y)
}

// IsInf reports whether either component is infinite.
func (v Vec2) IsInf() bool {
	return math32.IsInf(v.X, 0) || math32.IsInf(v.Y, 0)
}

// F32 returns the vector as an x/image f32.Vec2.
func (v Vec2) F32() f32.Vec2 {
	return f32.Vec2{v.X, v.Y}
}

// Fixed converts the vector to 26.6 fixed point, rounding to nearest.
func (v Vec2) Fixed() fixed.Point26_6 {
	return fixed.Point26_6{
		X: fixed.Int26_6(math.Round(float64(v.X) * 64)),
		Y: fixed.Int26_6(math.Round(float64(v.Y) * 64)),
	}
}

// Vec2FromFixed converts a 26.6 fixed point to a Vec2.
func Vec2FromFixed(p fixed.Point26_6) Vec2 {
	return Vec2{X: float32(p.X) / 64, Y: float32(p.Y) / 64}
}

func (v Vec2) String() string {
	return fmt.Sprintf("(%g, %g)", v.X, v.Y)
}
