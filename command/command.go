// Package command replays decoded draw commands into a shiny.PathBuilder.
//
// It sits between a producer (a markup path decoder, a font outline) and
// the core builder. Shorthand commands are resolved against the builder's
// cursor and quadratic curves are degree-elevated to cubics, so the core
// only ever sees lines and cubic Béziers.
package command

import (
	"errors"
	"fmt"

	"github.com/gogpu/shiny"
)

// ErrUnknownOp is returned by Replay for a command whose Op is not defined.
var ErrUnknownOp = errors.New("command: unknown op")

// Op is the type of a draw command.
type Op uint8

const (
	// OpMoveTo starts a new subpath.
	OpMoveTo Op = iota

	// OpLineTo draws a line to the target point.
	OpLineTo

	// OpHLineTo draws a horizontal line to the target x.
	OpHLineTo

	// OpVLineTo draws a vertical line to the target y.
	OpVLineTo

	// OpQuadTo draws a quadratic Bézier, replayed as an equivalent cubic.
	OpQuadTo

	// OpCubicTo draws a cubic Bézier.
	OpCubicTo

	// OpClose closes the current subpath.
	OpClose
)

// String returns a string representation of the operation.
func (op Op) String() string {
	switch op {
	case OpMoveTo:
		return "MoveTo"
	case OpLineTo:
		return "LineTo"
	case OpHLineTo:
		return "HLineTo"
	case OpVLineTo:
		return "VLineTo"
	case OpQuadTo:
		return "QuadTo"
	case OpCubicTo:
		return "CubicTo"
	case OpClose:
		return "Close"
	default:
		return "Unknown"
	}
}

// Command is a single decoded draw command in absolute coordinates.
type Command struct {
	// Op is the command type.
	Op Op

	// Args holds the command's points.
	// - MoveTo, LineTo: Args[0] is the target point
	// - HLineTo: Args[0].X is the target x
	// - VLineTo: Args[0].Y is the target y
	// - QuadTo: Args[0] is control, Args[1] is target
	// - CubicTo: Args[0], Args[1] are controls, Args[2] is target
	// - Close: unused
	Args [3]shiny.Vec2
}

// MoveTo creates an OpMoveTo command.
func MoveTo(p shiny.Vec2) Command {
	return Command{Op: OpMoveTo, Args: [3]shiny.Vec2{p}}
}

// LineTo creates an OpLineTo command.
func LineTo(p shiny.Vec2) Command {
	return Command{Op: OpLineTo, Args: [3]shiny.Vec2{p}}
}

// HLineTo creates an OpHLineTo command.
func HLineTo(x float32) Command {
	return Command{Op: OpHLineTo, Args: [3]shiny.Vec2{{X: x}}}
}

// VLineTo creates an OpVLineTo command.
func VLineTo(y float32) Command {
	return Command{Op: OpVLineTo, Args: [3]shiny.Vec2{{Y: y}}}
}

// QuadTo creates an OpQuadTo command.
func QuadTo(ctrl, p shiny.Vec2) Command {
	return Command{Op: OpQuadTo, Args: [3]shiny.Vec2{ctrl, p}}
}

// CubicTo creates an OpCubicTo command.
func CubicTo(ctrl1, ctrl2, p shiny.Vec2) Command {
	return Command{Op: OpCubicTo, Args: [3]shiny.Vec2{ctrl1, ctrl2, p}}
}

// Close creates an OpClose command.
func Close() Command {
	return Command{Op: OpClose}
}

func (c Command) String() string {
	switch c.Op {
	case OpMoveTo, OpLineTo:
		return fmt.Sprintf("%s%v", c.Op, c.Args[0])
	case OpHLineTo:
		return fmt.Sprintf("%s(%g)", c.Op, c.Args[0].X)
	case OpVLineTo:
		return fmt.Sprintf("%s(%g)", c.Op, c.Args[0].Y)
	case OpQuadTo:
		return fmt.Sprintf("%s%v%v", c.Op, c.Args[0], c.Args[1])
	case OpCubicTo:
		return fmt.Sprintf("%s%v%v%v", c.Op, c.Args[0], c.Args[1], c.Args[2])
	default:
		return c.Op.String()
	}
}

// Elevate returns the cubic control points that trace exactly the same
// curve as the quadratic Bézier (p0, ctrl, p1).
func Elevate(p0, ctrl, p1 shiny.Vec2) (ctrl1, ctrl2 shiny.Vec2) {
	const twoThirds = float32(2) / 3
	ctrl1 = p0.Add(ctrl.Sub(p0).Mul(twoThirds))
	ctrl2 = p1.Add(ctrl.Sub(p1).Mul(twoThirds))
	return ctrl1, ctrl2
}

// FromPath decodes a built path back into commands. Replaying the result
// into an empty builder yields an identical path.
func FromPath(p *shiny.Path) []Command {
	cmds := make([]Command, 0, p.Len()*2+p.NumSegments())
	for _, sp := range p.Subpaths() {
		cmds = append(cmds, MoveTo(sp.Start()))
		for _, seg := range sp.Segments() {
			switch seg.Kind {
			case shiny.SegmentLine:
				cmds = append(cmds, LineTo(seg.To))
			case shiny.SegmentCubic:
				cmds = append(cmds, CubicTo(seg.Ctrl1, seg.Ctrl2, seg.To))
			}
		}
		if sp.Closed() {
			cmds = append(cmds, Close())
		}
	}
	return cmds
}
