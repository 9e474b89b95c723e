package command

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"github.com/gogpu/shiny"
)

// FromGeom converts a seehuhn.de/go/geom path into commands.
// Coordinates are narrowed from float64 to float32. Quadratic segments are
// kept as QuadTo and elevated when replayed.
func FromGeom(p path.Path) []Command {
	var cmds []Command
	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			cmds = append(cmds, MoveTo(fromGeomVec(pts[0])))
		case path.CmdLineTo:
			cmds = append(cmds, LineTo(fromGeomVec(pts[0])))
		case path.CmdQuadTo:
			cmds = append(cmds, QuadTo(fromGeomVec(pts[0]), fromGeomVec(pts[1])))
		case path.CmdCubeTo:
			cmds = append(cmds, CubicTo(fromGeomVec(pts[0]), fromGeomVec(pts[1]), fromGeomVec(pts[2])))
		case path.CmdClose:
			cmds = append(cmds, Close())
		}
	}
	return cmds
}

// ToGeom converts p into a geom path. Closed subpaths end with CmdClose
// after their explicit closing line.
func ToGeom(p *shiny.Path) *path.Data {
	d := &path.Data{}
	for _, sp := range p.Subpaths() {
		d.MoveTo(toGeomVec(sp.Start()))
		for _, seg := range sp.Segments() {
			switch seg.Kind {
			case shiny.SegmentLine:
				d.LineTo(toGeomVec(seg.To))
			case shiny.SegmentCubic:
				d.CubeTo(toGeomVec(seg.Ctrl1), toGeomVec(seg.Ctrl2), toGeomVec(seg.To))
			}
		}
		if sp.Closed() {
			d.Close()
		}
	}
	return d
}

func fromGeomVec(v vec.Vec2) shiny.Vec2 {
	return shiny.V2(float32(v.X), float32(v.Y))
}

func toGeomVec(v shiny.Vec2) vec.Vec2 {
	return vec.Vec2{X: float64(v.X), Y: float64(v.Y)}
}
