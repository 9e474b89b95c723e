package shiny

import (
	"fmt"
	"log/slog"
)

// BuilderState is the construction state of a PathBuilder.
type BuilderState uint8

const (
	// StateEmpty means no subpath is open and nothing has been closed since
	// the builder was created or last built.
	StateEmpty BuilderState = iota

	// StateOpen means a subpath is in progress and the cursor is set.
	StateOpen

	// StateClosed means the last subpath was just closed. Only MoveTo can
	// continue from here.
	StateClosed
)

// String returns a string representation of the state.
func (s BuilderState) String() string {
	switch s {
	case StateEmpty:
		return "Empty"
	case StateOpen:
		return "Open"
	case StateClosed:
		return "Closed"
	default:
		return "Unknown"
	}
}

// PathBuilder turns a sequence of move, line, cubic and close commands into
// an immutable Path.
//
// LineTo, CubicTo and Close require an open subpath (a prior MoveTo). When
// that precondition fails they return ErrNoCurrentPoint and leave the
// builder exactly as it was, so the caller can issue a MoveTo and retry.
//
// Build hands the accumulated subpaths to a new Path and resets the builder
// to StateEmpty, after which it can be reused.
//
// A PathBuilder is not safe for concurrent use.
type PathBuilder struct {
	state    BuilderState
	cursor   Vec2
	current  Subpath
	subpaths []Subpath
	started  bool
	opts     builderOptions
}

// NewPathBuilder creates an empty builder.
func NewPathBuilder(opts ...BuilderOption) *PathBuilder {
	o := defaultBuilderOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &PathBuilder{opts: o}
}

func (b *PathBuilder) logger() *slog.Logger {
	if b.opts.logger != nil {
		return b.opts.logger
	}
	return Logger()
}

// State returns the current construction state.
func (b *PathBuilder) State() BuilderState {
	return b.state
}

// Cursor returns the last point placed in the open subpath.
// ok is false before the first MoveTo and after Close.
func (b *PathBuilder) Cursor() (p Vec2, ok bool) {
	if b.state != StateOpen {
		return Vec2{}, false
	}
	return b.cursor, true
}

// MoveTo starts a new subpath at p. An open subpath is kept as-is (not
// closed). MoveTo is valid in every state.
func (b *PathBuilder) MoveTo(p Vec2) {
	if b.state == StateOpen {
		b.finish()
	}
	b.current = Subpath{
		start:    p,
		segments: make([]Segment, 0, b.opts.capacity),
	}
	b.cursor = p
	b.state = StateOpen
	b.started = true
}

// LineTo appends a line from the cursor to p.
func (b *PathBuilder) LineTo(p Vec2) error {
	if b.state != StateOpen {
		return fmt.Errorf("line to %v: %w", p, ErrNoCurrentPoint)
	}
	b.push(LineSegment(b.cursor, p))
	return nil
}

// CubicTo appends a cubic Bézier from the cursor to end.
func (b *PathBuilder) CubicTo(ctrl1, ctrl2, end Vec2) error {
	if b.state != StateOpen {
		return fmt.Errorf("cubic to %v: %w", end, ErrNoCurrentPoint)
	}
	b.push(CubicSegment(b.cursor, ctrl1, ctrl2, end))
	return nil
}

// Close closes the open subpath. If the cursor is not at the subpath's
// start, a line back to the start is appended first. The cursor is cleared.
func (b *PathBuilder) Close() error {
	if b.state != StateOpen {
		return fmt.Errorf("close: %w", ErrNoCurrentPoint)
	}
	if b.cursor != b.current.start {
		b.push(LineSegment(b.cursor, b.current.start))
	}
	b.current.closed = true
	b.finish()
	b.state = StateClosed
	return nil
}

// Build returns a Path holding every subpath in creation order and resets
// the builder. It returns ErrEmptyPath if MoveTo was never called; the
// builder is unchanged in that case.
func (b *PathBuilder) Build() (*Path, error) {
	if !b.started {
		return nil, ErrEmptyPath
	}
	if b.state == StateOpen {
		b.finish()
	}

	path := &Path{subpaths: b.subpaths}
	b.logger().Debug("shiny: path built",
		"subpaths", path.Len(),
		"segments", path.NumSegments())

	*b = PathBuilder{opts: b.opts}
	return path, nil
}

// push appends seg to the open subpath and advances the cursor.
func (b *PathBuilder) push(seg Segment) {
	b.current.segments = append(b.current.segments, seg)
	b.cursor = seg.To
}

// finish moves the open subpath into the finished list.
func (b *PathBuilder) finish() {
	b.subpaths = append(b.subpaths, b.current)
	b.logger().Debug("shiny: subpath finished",
		"index", len(b.subpaths)-1,
		"segments", len(b.current.segments),
		"closed", b.current.closed)
	b.current = Subpath{}
}
