// Package shiny provides float32 vector primitives and an immutable,
// evaluable path model for 2D vector graphics.
//
// # Overview
//
// Data flows one way:
//
//	draw commands → PathBuilder (mutable) → Path (immutable) → Segment.At
//
// A PathBuilder accepts MoveTo, LineTo, CubicTo and Close. Segments are
// always appended relative to the cursor, the last point placed, so a
// LineTo without a preceding MoveTo fails with ErrNoCurrentPoint and
// leaves the builder untouched.
//
// # Quick Start
//
//	b := shiny.NewPathBuilder()
//	b.MoveTo(shiny.V2(0, 0))
//	_ = b.LineTo(shiny.V2(100, 0))
//	_ = b.CubicTo(shiny.V2(150, 0), shiny.V2(150, 100), shiny.V2(100, 100))
//	_ = b.Close()
//
//	path, err := b.Build()
//	if err != nil {
//	    return err
//	}
//	for _, sp := range path.Subpaths() {
//	    for _, seg := range sp.Segments() {
//	        p := seg.At(0.5)
//	        _ = p
//	    }
//	}
//
// # Vectors
//
// Vec2 is a plain pair of float32. Vec4 holds four lanes in a backend
// selected at build time: a lane array on amd64 and arm64, a scalar
// fallback elsewhere or when built with the purego tag. Both produce the
// same results; Backend reports which one is in use.
//
// All arithmetic follows IEEE-754. Division by zero and normalizing a zero
// vector produce Inf or NaN rather than errors.
//
// # Concurrency
//
// PathBuilder is single-owner. A built Path is never mutated and may be
// shared read-only across goroutines.
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
package shiny
