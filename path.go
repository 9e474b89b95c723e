package shiny

import "iter"

// Subpath is one contiguous run of segments started by a MoveTo.
//
// Every segment's From equals the previous segment's To, and the first
// segment starts at Start. A subpath produced by a lone MoveTo has a start
// point and no segments.
type Subpath struct {
	start    Vec2
	segments []Segment
	closed   bool
}

// Start returns the point passed to the MoveTo that opened the subpath.
func (s Subpath) Start() Vec2 {
	return s.start
}

// End returns the last point of the subpath, or Start if it has no segments.
func (s Subpath) End() Vec2 {
	if len(s.segments) == 0 {
		return s.start
	}
	return s.segments[len(s.segments)-1].To
}

// Closed reports whether the subpath was terminated by Close.
// A closed subpath ends at its start point.
func (s Subpath) Closed() bool {
	return s.closed
}

// Len returns the number of segments.
func (s Subpath) Len() int {
	return len(s.segments)
}

// Segment returns the i-th segment.
func (s Subpath) Segment(i int) Segment {
	return s.segments[i]
}

// Segments iterates over the segments in order.
func (s Subpath) Segments() iter.Seq2[int, Segment] {
	return func(yield func(int, Segment) bool) {
		for i, seg := range s.segments {
			if !yield(i, seg) {
				return
			}
		}
	}
}

// Bounds returns the control-polygon bounds of the subpath.
func (s Subpath) Bounds() Rect {
	r := pointRect(s.start)
	for _, seg := range s.segments {
		r = r.Union(seg.Bounds())
	}
	return r
}

// Path is an immutable sequence of subpaths produced by PathBuilder.Build.
//
// No method mutates a Path, so a single Path may be read from any number of
// goroutines without synchronization.
type Path struct {
	subpaths []Subpath
}

// Len returns the number of subpaths.
func (p *Path) Len() int {
	return len(p.subpaths)
}

// Subpath returns the i-th subpath in insertion order.
func (p *Path) Subpath(i int) Subpath {
	return p.subpaths[i]
}

// Subpaths iterates over the subpaths in insertion order.
// The sequence can be ranged over any number of times.
func (p *Path) Subpaths() iter.Seq2[int, Subpath] {
	return func(yield func(int, Subpath) bool) {
		for i, sp := range p.subpaths {
			if !yield(i, sp) {
				return
			}
		}
	}
}

// Segments iterates over every segment of every subpath, in order.
func (p *Path) Segments() iter.Seq[Segment] {
	return func(yield func(Segment) bool) {
		for i := range p.subpaths {
			for _, seg := range p.subpaths[i].segments {
				if !yield(seg) {
					return
				}
			}
		}
	}
}

// NumSegments returns the total number of segments across all subpaths.
func (p *Path) NumSegments() int {
	n := 0
	for i := range p.subpaths {
		n += len(p.subpaths[i].segments)
	}
	return n
}

// Bounds returns the control-polygon bounds of the whole path.
func (p *Path) Bounds() Rect {
	r := EmptyRect()
	for i := range p.subpaths {
		r = r.Union(p.subpaths[i].Bounds())
	}
	return r
}
