package shiny

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Rect is an axis-aligned bounding box.
//
// It is packed into a single Vec4 as (minX, minY, -maxX, -maxY). Negating
// the max corner turns both union and point extension into one lane-wise
// Min, and the zero-area "empty" rect into a Vec4 of +Inf.
type Rect struct {
	v Vec4
}

// EmptyRect returns the identity for Union: it contains no point.
func EmptyRect() Rect {
	inf := math32.Inf(1)
	return Rect{v: Splat4(inf)}
}

// RectFromPoints returns the smallest rectangle containing both points.
func RectFromPoints(a, b Vec2) Rect {
	return pointRect(a).Union(pointRect(b))
}

func pointRect(p Vec2) Rect {
	return Rect{v: V4(p.X, p.Y, -p.X, -p.Y)}
}

// Min returns the top-left (minimum) corner.
func (r Rect) Min() Vec2 {
	return Vec2{X: r.v.X(), Y: r.v.Y()}
}

// Max returns the bottom-right (maximum) corner.
func (r Rect) Max() Vec2 {
	return Vec2{X: -r.v.Z(), Y: -r.v.W()}
}

// Size returns (width, height). An empty rect has negative infinite size.
func (r Rect) Size() Vec2 {
	// -(zwxy) = (maxX, maxY, -minX, -minY); subtracting r.v leaves the
	// extents in the low lanes.
	d := Splat4(0).Sub(r.v.ZWXY()).Sub(r.v)
	return Vec2{X: d.X(), Y: d.Y()}
}

// Width returns the width of the rectangle.
func (r Rect) Width() float32 {
	return r.Size().X
}

// Height returns the height of the rectangle.
func (r Rect) Height() float32 {
	return r.Size().Y
}

// IsEmpty reports whether the rectangle contains no point.
func (r Rect) IsEmpty() bool {
	s := r.Size()
	return !(s.X >= 0 && s.Y >= 0)
}

// Union returns the smallest rectangle containing both r and other.
func (r Rect) Union(other Rect) Rect {
	return Rect{v: r.v.Min(other.v)}
}

// Extend returns the smallest rectangle containing r and p.
func (r Rect) Extend(p Vec2) Rect {
	return r.Union(pointRect(p))
}

// Contains returns true if the point is inside the rectangle, edges included.
func (r Rect) Contains(p Vec2) bool {
	q := pointRect(p).v
	return r.v.Max(q).Eq(q)
}

func (r Rect) String() string {
	return fmt.Sprintf("Rect{%v, %v}", r.Min(), r.Max())
}
