// Package glyph turns font glyph outlines into shiny paths.
//
// Outlines come either from golang.org/x/image/font/sfnt or from
// github.com/go-text/typesetting. Both are converted to command streams
// and replayed through package command, so quadratic TrueType curves reach
// the builder as cubics. Every contour is closed.
package glyph

import (
	"errors"
	"fmt"

	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/norm"

	"github.com/gogpu/shiny"
	"github.com/gogpu/shiny/command"
)

// ErrNoGlyph is returned when a font has no glyph for a rune.
var ErrNoGlyph = errors.New("glyph: no glyph for rune")

// contourWriter collects commands and closes each contour before the next
// one starts.
type contourWriter struct {
	cmds []command.Command
	open bool
}

func (w *contourWriter) moveTo(p shiny.Vec2) {
	if w.open {
		w.cmds = append(w.cmds, command.Close())
	}
	w.cmds = append(w.cmds, command.MoveTo(p))
	w.open = true
}

func (w *contourWriter) add(c command.Command) {
	w.cmds = append(w.cmds, c)
}

func (w *contourWriter) finish() []command.Command {
	if w.open {
		w.cmds = append(w.cmds, command.Close())
		w.open = false
	}
	return w.cmds
}

// FromSFNT converts segments returned by sfnt.Font.LoadGlyph into commands.
// sfnt coordinates are already Y-down pixels; origin is added to each point.
func FromSFNT(segs sfnt.Segments, origin shiny.Vec2) []command.Command {
	w := contourWriter{cmds: make([]command.Command, 0, len(segs)+4)}
	pt := func(p fixed.Point26_6) shiny.Vec2 {
		return shiny.Vec2FromFixed(p).Add(origin)
	}

	for _, seg := range segs {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			w.moveTo(pt(seg.Args[0]))
		case sfnt.SegmentOpLineTo:
			w.add(command.LineTo(pt(seg.Args[0])))
		case sfnt.SegmentOpQuadTo:
			w.add(command.QuadTo(pt(seg.Args[0]), pt(seg.Args[1])))
		case sfnt.SegmentOpCubeTo:
			w.add(command.CubicTo(pt(seg.Args[0]), pt(seg.Args[1]), pt(seg.Args[2])))
		}
	}
	return w.finish()
}

// FromGoText converts a go-text glyph outline into commands.
// Outline coordinates are Y-up font units; they are multiplied by scale,
// flipped to Y-down and offset by origin.
func FromGoText(o font.GlyphOutline, scale float32, origin shiny.Vec2) []command.Command {
	w := contourWriter{cmds: make([]command.Command, 0, len(o.Segments)+4)}
	pt := func(p opentype.SegmentPoint) shiny.Vec2 {
		return shiny.V2(origin.X+p.X*scale, origin.Y-p.Y*scale)
	}

	for _, s := range o.Segments {
		switch s.Op {
		case opentype.SegmentOpMoveTo:
			w.moveTo(pt(s.Args[0]))
		case opentype.SegmentOpLineTo:
			w.add(command.LineTo(pt(s.Args[0])))
		case opentype.SegmentOpQuadTo:
			w.add(command.QuadTo(pt(s.Args[0]), pt(s.Args[1])))
		case opentype.SegmentOpCubeTo:
			w.add(command.CubicTo(pt(s.Args[0]), pt(s.Args[1]), pt(s.Args[2])))
		}
	}
	return w.finish()
}

// Load builds the outline of r at ppem pixels per em, with the glyph
// origin at (0, 0). A rune without outline (a space) yields
// shiny.ErrEmptyPath.
func Load(f *sfnt.Font, r rune, ppem fixed.Int26_6) (*shiny.Path, error) {
	var buf sfnt.Buffer
	gid, err := f.GlyphIndex(&buf, r)
	if err != nil {
		return nil, fmt.Errorf("glyph %q: %w", r, err)
	}
	if gid == 0 {
		return nil, fmt.Errorf("%w %q", ErrNoGlyph, r)
	}

	segs, err := f.LoadGlyph(&buf, gid, ppem, nil)
	if err != nil {
		return nil, fmt.Errorf("glyph %q: %w", r, err)
	}

	path, st, err := command.Build(FromSFNT(segs, shiny.Vec2{}))
	if err != nil {
		return nil, fmt.Errorf("glyph %q: %w", r, err)
	}
	shiny.Logger().Debug("glyph: outline loaded",
		"rune", string(r),
		"gid", int(gid),
		"contours", st.Subpaths)
	return path, nil
}

// StringPath lays s out on a single baseline starting at (0, 0), advancing
// by each glyph's horizontal advance, and returns the combined outline.
// size is the font size in pixels per em.
//
// s is NFC-normalized first, so a base letter followed by a combining mark
// uses the font's precomposed glyph when the font has one.
func StringPath(face *font.Face, s string, size float32) (*shiny.Path, error) {
	scale := size / float32(face.Upem())
	s = norm.NFC.String(s)

	var cmds []command.Command
	var x float32
	for _, r := range s {
		gid, ok := face.Cmap.Lookup(r)
		if !ok {
			return nil, fmt.Errorf("%w %q", ErrNoGlyph, r)
		}
		if outline, ok := face.GlyphData(gid).(font.GlyphOutline); ok {
			cmds = append(cmds, FromGoText(outline, scale, shiny.V2(x, 0))...)
		}
		x += face.HorizontalAdvance(gid) * scale
	}

	path, _, err := command.Build(cmds)
	if err != nil {
		return nil, fmt.Errorf("text %q: %w", s, err)
	}
	return path, nil
}
