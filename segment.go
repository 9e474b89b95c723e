package shiny

import "fmt"

// SegmentKind tags the variant held by a Segment.
type SegmentKind uint8

const (
	// SegmentLine is a straight line from From to To.
	SegmentLine SegmentKind = iota + 1

	// SegmentCubic is a cubic Bézier curve with control points Ctrl1 and Ctrl2.
	SegmentCubic
)

// String returns a string representation of the kind.
func (k SegmentKind) String() string {
	switch k {
	case SegmentLine:
		return "Line"
	case SegmentCubic:
		return "CubicBezier"
	default:
		return "Unknown"
	}
}

// Segment is a single piece of a subpath: either a line or a cubic Bézier.
//
// Kind selects which fields are meaningful. Ctrl1 and Ctrl2 are zero for
// lines.
type Segment struct {
	Kind  SegmentKind
	From  Vec2
	Ctrl1 Vec2
	Ctrl2 Vec2
	To    Vec2
}

// LineSegment creates a line segment.
func LineSegment(from, to Vec2) Segment {
	return Segment{Kind: SegmentLine, From: from, To: to}
}

// CubicSegment creates a cubic Bézier segment.
func CubicSegment(from, ctrl1, ctrl2, to Vec2) Segment {
	return Segment{Kind: SegmentCubic, From: from, Ctrl1: ctrl1, Ctrl2: ctrl2, To: to}
}

// At evaluates the segment at parameter t.
// t=0 returns From and t=1 returns To. Values outside [0, 1] extrapolate
// along the same line or polynomial; they are not clamped.
func (s Segment) At(t float32) Vec2 {
	switch s.Kind {
	case SegmentLine:
		return s.From.Add(s.To.Sub(s.From).Mul(t))
	case SegmentCubic:
		mt := 1 - t
		mt2 := mt * mt
		t2 := t * t
		// (1-t)^3 * P0 + 3(1-t)^2*t * P1 + 3(1-t)*t^2 * P2 + t^3 * P3
		return s.From.Mul(mt2 * mt).
			Add(s.Ctrl1.Mul(3 * mt2 * t)).
			Add(s.Ctrl2.Mul(3 * mt * t2)).
			Add(s.To.Mul(t2 * t))
	default:
		return Vec2{}
	}
}

// Start returns the starting point of the segment.
func (s Segment) Start() Vec2 {
	return s.From
}

// End returns the ending point of the segment.
func (s Segment) End() Vec2 {
	return s.To
}

// Sample evaluates the segment at n+1 evenly spaced parameters from 0 to 1.
// It returns nil for n < 1.
func (s Segment) Sample(n int) []Vec2 {
	if n < 1 {
		return nil
	}
	pts := make([]Vec2, n+1)
	step := 1 / float32(n)
	for i := range pts {
		pts[i] = s.At(float32(i) * step)
	}
	pts[n] = s.At(1)
	return pts
}

// Bounds returns the bounding box of the segment's control polygon.
// For cubics this contains the curve but may be larger than its tight bounds.
func (s Segment) Bounds() Rect {
	r := RectFromPoints(s.From, s.To)
	if s.Kind == SegmentCubic {
		r = r.Extend(s.Ctrl1).Extend(s.Ctrl2)
	}
	return r
}

func (s Segment) String() string {
	switch s.Kind {
	case SegmentLine:
		return fmt.Sprintf("Line{%v, %v}", s.From, s.To)
	case SegmentCubic:
		return fmt.Sprintf("CubicBezier{%v, %v, %v, %v}", s.From, s.Ctrl1, s.Ctrl2, s.To)
	default:
		return "Segment{}"
	}
}
