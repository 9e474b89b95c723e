package shiny

import "github.com/chewxy/math32"

// kappa is the control point distance for a quarter circle of radius 1
// approximated by one cubic: 4/3 * (sqrt(2) - 1).
const kappa = 0.5522847498307936

// Shape helpers each emit one closed subpath. They only use MoveTo, LineTo,
// CubicTo and Close, so they cannot fail.

// AddRect adds an axis-aligned rectangle with corner (x, y).
func (b *PathBuilder) AddRect(x, y, w, h float32) {
	b.MoveTo(V2(x, y))
	b.lineTo(x+w, y)
	b.lineTo(x+w, y+h)
	b.lineTo(x, y+h)
	_ = b.Close()
}

// AddRoundRect adds a rectangle with rounded corners.
// The radius is clamped to half of the smaller side.
func (b *PathBuilder) AddRoundRect(x, y, w, h, r float32) {
	r = min(r, min(w, h)/2)
	k := kappa * r

	b.MoveTo(V2(x+r, y))
	b.lineTo(x+w-r, y)
	b.cubicTo(x+w-r+k, y, x+w, y+r-k, x+w, y+r)
	b.lineTo(x+w, y+h-r)
	b.cubicTo(x+w, y+h-r+k, x+w-r+k, y+h, x+w-r, y+h)
	b.lineTo(x+r, y+h)
	b.cubicTo(x+r-k, y+h, x, y+h-r+k, x, y+h-r)
	b.lineTo(x, y+r)
	b.cubicTo(x, y+r-k, x+r-k, y, x+r, y)
	_ = b.Close()
}

// AddCircle adds a circle as four cubic Béziers.
func (b *PathBuilder) AddCircle(c Vec2, r float32) {
	b.AddEllipse(c, r, r)
}

// AddEllipse adds an axis-aligned ellipse as four cubic Béziers.
func (b *PathBuilder) AddEllipse(c Vec2, rx, ry float32) {
	kx := kappa * rx
	ky := kappa * ry
	cx, cy := c.X, c.Y

	b.MoveTo(V2(cx+rx, cy))
	b.cubicTo(cx+rx, cy+ky, cx+kx, cy+ry, cx, cy+ry)
	b.cubicTo(cx-kx, cy+ry, cx-rx, cy+ky, cx-rx, cy)
	b.cubicTo(cx-rx, cy-ky, cx-kx, cy-ry, cx, cy-ry)
	b.cubicTo(cx+kx, cy-ry, cx+rx, cy-ky, cx+rx, cy)
	_ = b.Close()
}

// AddPolygon adds a regular polygon with the first vertex straight up.
// Fewer than 3 sides adds nothing.
func (b *PathBuilder) AddPolygon(c Vec2, radius float32, sides int) {
	if sides < 3 {
		return
	}

	angleStep := 2 * math32.Pi / float32(sides)
	startAngle := -math32.Pi / 2

	for i := 0; i < sides; i++ {
		angle := startAngle + float32(i)*angleStep
		b.vertex(i, c.X+radius*math32.Cos(angle), c.Y+radius*math32.Sin(angle))
	}
	_ = b.Close()
}

// AddStar adds a star alternating between outer and inner radius.
// Fewer than 3 points adds nothing.
func (b *PathBuilder) AddStar(c Vec2, outerRadius, innerRadius float32, points int) {
	if points < 3 {
		return
	}

	angleStep := math32.Pi / float32(points)
	startAngle := -math32.Pi / 2

	for i := 0; i < points*2; i++ {
		angle := startAngle + float32(i)*angleStep
		r := outerRadius
		if i%2 == 1 {
			r = innerRadius
		}
		b.vertex(i, c.X+r*math32.Cos(angle), c.Y+r*math32.Sin(angle))
	}
	_ = b.Close()
}

func (b *PathBuilder) vertex(i int, x, y float32) {
	if i == 0 {
		b.MoveTo(V2(x, y))
	} else {
		b.lineTo(x, y)
	}
}

// lineTo and cubicTo skip the state check; callers have just issued MoveTo.
func (b *PathBuilder) lineTo(x, y float32) {
	b.push(LineSegment(b.cursor, V2(x, y)))
}

func (b *PathBuilder) cubicTo(c1x, c1y, c2x, c2y, x, y float32) {
	b.push(CubicSegment(b.cursor, V2(c1x, c1y), V2(c2x, c2y), V2(x, y)))
}
