package command

import (
	"fmt"
	"log/slog"

	"github.com/gogpu/shiny"
)

// Stats summarizes one Replay call.
type Stats struct {
	// Commands is the number of commands applied to the builder.
	Commands int

	// Subpaths is the number of MoveTo commands applied.
	Subpaths int

	// Skipped counts shorthand commands dropped for lack of a cursor.
	Skipped int
}

// Option configures Replay.
type Option func(*options)

type options struct {
	strict bool
	logger *slog.Logger
}

// WithStrict makes Replay fail with shiny.ErrNoCurrentPoint on a
// horizontal or vertical shorthand that has no cursor to extend, instead
// of skipping it.
func WithStrict(strict bool) Option {
	return func(o *options) {
		o.strict = strict
	}
}

// WithLogger overrides shiny.Logger for this call.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// Replay applies cmds to b in order.
//
// It stops at the first command the builder rejects and returns the error
// wrapped with the command index; commands before it stay applied.
// HLineTo and VLineTo without a cursor are skipped and counted in
// Stats.Skipped unless WithStrict is set.
func Replay(b *shiny.PathBuilder, cmds []Command, opts ...Option) (Stats, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = shiny.Logger()
	}

	var st Stats
	for i, c := range cmds {
		if c.Op == OpHLineTo || c.Op == OpVLineTo {
			if _, ok := b.Cursor(); !ok {
				if o.strict {
					return st, fmt.Errorf("command %d (%s): %w", i, c.Op, shiny.ErrNoCurrentPoint)
				}
				o.logger.Warn("command: skipping shorthand without current point",
					"index", i,
					"op", c.Op.String())
				st.Skipped++
				continue
			}
		}

		if err := apply(b, c); err != nil {
			return st, fmt.Errorf("command %d (%s): %w", i, c.Op, err)
		}
		st.Commands++
		if c.Op == OpMoveTo {
			st.Subpaths++
		}
	}
	return st, nil
}

// Build replays cmds into a fresh builder and builds the result.
func Build(cmds []Command, opts ...Option) (*shiny.Path, Stats, error) {
	b := shiny.NewPathBuilder()
	st, err := Replay(b, cmds, opts...)
	if err != nil {
		return nil, st, err
	}
	path, err := b.Build()
	if err != nil {
		return nil, st, err
	}
	return path, st, nil
}

func apply(b *shiny.PathBuilder, c Command) error {
	switch c.Op {
	case OpMoveTo:
		b.MoveTo(c.Args[0])
		return nil
	case OpLineTo:
		return b.LineTo(c.Args[0])
	case OpHLineTo:
		cur, _ := b.Cursor()
		return b.LineTo(shiny.V2(c.Args[0].X, cur.Y))
	case OpVLineTo:
		cur, _ := b.Cursor()
		return b.LineTo(shiny.V2(cur.X, c.Args[0].Y))
	case OpQuadTo:
		cur, ok := b.Cursor()
		if !ok {
			return shiny.ErrNoCurrentPoint
		}
		c1, c2 := Elevate(cur, c.Args[0], c.Args[1])
		return b.CubicTo(c1, c2, c.Args[1])
	case OpCubicTo:
		return b.CubicTo(c.Args[0], c.Args[1], c.Args[2])
	case OpClose:
		return b.Close()
	default:
		return fmt.Errorf("%w: %d", ErrUnknownOp, c.Op)
	}
}
