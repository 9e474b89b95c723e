package shiny

import "errors"

var (
	// ErrNoCurrentPoint is returned by LineTo, CubicTo and Close when no
	// subpath is open. The builder is left unchanged.
	ErrNoCurrentPoint = errors.New("shiny: no current point")

	// ErrEmptyPath is returned by Build when no subpath was started.
	ErrEmptyPath = errors.New("shiny: empty path")
)
