package shiny

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// bernstein evaluates a cubic Bézier with explicit basis weights, one
// component at a time.
func bernstein(p0, p1, p2, p3 Vec2, t float32) Vec2 {
	mt := 1 - t
	b0 := mt * mt * mt
	b1 := 3 * mt * mt * t
	b2 := 3 * mt * t * t
	b3 := t * t * t
	return Vec2{
		X: b0*p0.X + b1*p1.X + b2*p2.X + b3*p3.X,
		Y: b0*p0.Y + b1*p1.Y + b2*p2.Y + b3*p3.Y,
	}
}

func TestSegment_Endpoints(t *testing.T) {
	tests := []struct {
		name string
		seg  Segment
	}{
		{"line", LineSegment(V2(1, 2), V2(3, 4))},
		{"line degenerate", LineSegment(V2(5, 5), V2(5, 5))},
		{"line negative", LineSegment(V2(-10.5, 3), V2(7.25, -9))},
		{"cubic", CubicSegment(V2(0, 0), V2(25, 100), V2(75, 100), V2(100, 0))},
		{"cubic loop", CubicSegment(V2(0, 0), V2(100, 100), V2(-100, 100), V2(0, 0))},
		{"cubic fractional", CubicSegment(V2(0.1, 0.2), V2(0.3, 0.4), V2(0.5, 0.6), V2(0.7, 0.8))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.seg.At(0); !got.Approx(tt.seg.From, 1e-5) {
				t.Errorf("At(0) = %v, want %v", got, tt.seg.From)
			}
			if got := tt.seg.At(1); !got.Approx(tt.seg.To, 1e-5) {
				t.Errorf("At(1) = %v, want %v", got, tt.seg.To)
			}
			assert.Equal(t, tt.seg.From, tt.seg.Start())
			assert.Equal(t, tt.seg.To, tt.seg.End())
		})
	}
}

func TestSegment_LineAt(t *testing.T) {
	seg := LineSegment(V2(0, 0), V2(10, 20))
	tests := []struct {
		t    float32
		want Vec2
	}{
		{0.25, V2(2.5, 5)},
		{0.5, V2(5, 10)},
		{-1, V2(-10, -20)},
		{2, V2(20, 40)},
	}
	for _, tt := range tests {
		if got := seg.At(tt.t); !got.Approx(tt.want, 1e-5) {
			t.Errorf("At(%v) = %v, want %v", tt.t, got, tt.want)
		}
	}
}

func TestSegment_CubicAtMatchesBernstein(t *testing.T) {
	p0, p1, p2, p3 := V2(0, 0), V2(25, 100), V2(75, 100), V2(100, 0)
	seg := CubicSegment(p0, p1, p2, p3)

	// Hand computed: at t=0.5 the weights are 1/8, 3/8, 3/8, 1/8.
	assert.True(t, seg.At(0.5).Approx(V2(50, 75), 1e-5), "At(0.5) = %v", seg.At(0.5))

	for _, tt := range []float32{0, 0.1, 0.25, 0.333, 0.5, 0.75, 0.9, 1, -0.5, 1.5} {
		want := bernstein(p0, p1, p2, p3, tt)
		got := seg.At(tt)
		if !got.Approx(want, 1e-3) {
			t.Errorf("At(%v) = %v, want %v", tt, got, want)
		}
	}
}

func TestSegment_UnknownKind(t *testing.T) {
	assert.Equal(t, Vec2{}, Segment{}.At(0.5))
	assert.Equal(t, "Unknown", SegmentKind(0).String())
	assert.Equal(t, "Segment{}", Segment{}.String())
}

func TestSegment_Sample(t *testing.T) {
	seg := CubicSegment(V2(0, 0), V2(0, 10), V2(10, 10), V2(10, 0))
	pts := seg.Sample(4)
	assert.Len(t, pts, 5)
	assert.Equal(t, seg.From, pts[0])
	assert.Equal(t, seg.At(1), pts[4])
	assert.True(t, pts[2].Approx(seg.At(0.5), 1e-6))

	assert.Nil(t, seg.Sample(0))
}

func TestSegment_Bounds(t *testing.T) {
	line := LineSegment(V2(3, -1), V2(-2, 4))
	b := line.Bounds()
	assert.Equal(t, V2(-2, -1), b.Min())
	assert.Equal(t, V2(3, 4), b.Max())

	cubic := CubicSegment(V2(0, 0), V2(-5, 10), V2(15, 10), V2(10, 0))
	b = cubic.Bounds()
	assert.Equal(t, V2(-5, 0), b.Min())
	assert.Equal(t, V2(15, 10), b.Max())

	for _, tt := range []float32{0, 0.2, 0.4, 0.6, 0.8, 1} {
		assert.True(t, b.Contains(cubic.At(tt)), "bounds must contain At(%v)", tt)
	}
}

func TestSegment_String(t *testing.T) {
	assert.Equal(t, "Line{(0, 0), (1, 1)}", LineSegment(V2(0, 0), V2(1, 1)).String())
	assert.Equal(t, "CubicBezier{(0, 0), (1, 2), (3, 4), (5, 6)}",
		CubicSegment(V2(0, 0), V2(1, 2), V2(3, 4), V2(5, 6)).String())
	assert.Equal(t, "Line", SegmentLine.String())
	assert.Equal(t, "CubicBezier", SegmentCubic.String())
}
