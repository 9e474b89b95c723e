package shiny

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Vec4 is a four-lane float32 vector.
//
// The lanes live in a backend chosen at build time (see Backend). The
// backend never leaks into the API: every method behaves the same on every
// target, up to floating-point rounding.
type Vec4 struct {
	v lanes
}

// V4 creates a Vec4 from four scalars.
func V4(x, y, z, w float32) Vec4 {
	return Vec4{v: loadLanes(x, y, z, w)}
}

// Splat4 creates a Vec4 with all lanes set to s.
func Splat4(s float32) Vec4 {
	return V4(s, s, s, s)
}

// Backend names the four-lane implementation compiled into this build.
func Backend() string {
	return backendName
}

// X returns lane 0.
func (v Vec4) X() float32 { return v.v.X() }

// Y returns lane 1.
func (v Vec4) Y() float32 { return v.v.Y() }

// Z returns lane 2.
func (v Vec4) Z() float32 { return v.v.Z() }

// W returns lane 3.
func (v Vec4) W() float32 { return v.v.W() }

// ZWXY returns (z, w, x, y). Applying it twice gives back v.
func (v Vec4) ZWXY() Vec4 {
	return Vec4{v: v.v.ZWXY()}
}

// Max returns the lane-wise maximum.
// If either lane is NaN the result takes the lane from rhs.
func (v Vec4) Max(rhs Vec4) Vec4 {
	return Vec4{v: v.v.Max(rhs.v)}
}

// Min returns the lane-wise minimum, with the same NaN rule as Max.
func (v Vec4) Min(rhs Vec4) Vec4 {
	return Vec4{v: v.v.Min(rhs.v)}
}

// MulElements multiplies lane by lane.
func (v Vec4) MulElements(rhs Vec4) Vec4 {
	return Vec4{v: v.v.Mul(rhs.v)}
}

// DivElements divides lane by lane. Division by zero follows IEEE 754.
func (v Vec4) DivElements(rhs Vec4) Vec4 {
	return Vec4{v: v.v.Div(rhs.v)}
}

// Add returns the lane-wise sum.
func (v Vec4) Add(rhs Vec4) Vec4 {
	return Vec4{v: v.v.Add(rhs.v)}
}

// Sub returns the lane-wise difference.
func (v Vec4) Sub(rhs Vec4) Vec4 {
	return Vec4{v: v.v.Sub(rhs.v)}
}

// Eq reports whether every lane compares equal. NaN lanes never compare equal.
func (v Vec4) Eq(rhs Vec4) bool {
	return v.v.Eq(rhs.v)
}

// EqTuple compares v against four raw scalars.
func (v Vec4) EqTuple(x, y, z, w float32) bool {
	return v.Eq(V4(x, y, z, w))
}

// Approx returns true if every lane is within epsilon of rhs.
func (v Vec4) Approx(rhs Vec4, epsilon float32) bool {
	d := v.Sub(rhs)
	return math32.Abs(d.X()) <= epsilon && math32.Abs(d.Y()) <= epsilon &&
		math32.Abs(d.Z()) <= epsilon && math32.Abs(d.W()) <= epsilon
}

// Array returns the lanes in x, y, z, w order.
func (v Vec4) Array() [4]float32 {
	return [4]float32{v.X(), v.Y(), v.Z(), v.W()}
}

func (v Vec4) String() string {
	return fmt.Sprintf("(%g, %g, %g, %g)", v.X(), v.Y(), v.Z(), v.W())
}
