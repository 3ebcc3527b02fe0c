// seehuhn.de/go/pdfdoc - build layered PDF documents in memory
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package graphics

import (
	"errors"

	"golang.org/x/exp/slices"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

type segmentType byte

const (
	segMoveTo segmentType = iota
	segLineTo
	segCurveTo
	segRect
	segClose
)

type segment struct {
	op  segmentType
	pts []vec.Vec2
}

// Path is a vector shape made of straight lines and cubic Bezier curves,
// together with the information how it is painted.
//
// If neither Fill nor Stroke is set, the path is stroked in black.
type Path struct {
	Fill      Color
	Stroke    Color
	LineWidth float64

	// EvenOdd selects the even-odd rule for filling.  By default the
	// nonzero winding number rule is used.
	EvenOdd bool

	segments []segment
	current  vec.Vec2
	hasPoint bool
}

// MoveTo starts a new subpath at p.
func (p *Path) MoveTo(pt vec.Vec2) *Path {
	p.segments = append(p.segments, segment{op: segMoveTo, pts: []vec.Vec2{pt}})
	p.current = pt
	p.hasPoint = true
	return p
}

// LineTo adds a straight line from the current point to pt.
// If the path has no current point, this starts a new subpath at pt.
func (p *Path) LineTo(pt vec.Vec2) *Path {
	if !p.hasPoint {
		return p.MoveTo(pt)
	}
	p.segments = append(p.segments, segment{op: segLineTo, pts: []vec.Vec2{pt}})
	p.current = pt
	return p
}

// CurveTo adds a cubic Bezier curve from the current point to pt, using the
// control points c1 and c2.
// If the path has no current point, this starts a new subpath at c1.
func (p *Path) CurveTo(c1, c2, pt vec.Vec2) *Path {
	if !p.hasPoint {
		p.MoveTo(c1)
	}
	p.segments = append(p.segments, segment{
		op:  segCurveTo,
		pts: []vec.Vec2{p.current, c1, c2, pt},
	})
	p.current = pt
	return p
}

// Rect adds a closed rectangle to the path.
func (p *Path) Rect(r rect.Rect) *Path {
	p.segments = append(p.segments, segment{
		op:  segRect,
		pts: []vec.Vec2{{X: r.LLx, Y: r.LLy}, {X: r.URx - r.LLx, Y: r.URy - r.LLy}},
	})
	p.current = vec.Vec2{X: r.LLx, Y: r.LLy}
	p.hasPoint = true
	return p
}

// Close closes the current subpath.
func (p *Path) Close() *Path {
	if p.hasPoint {
		p.segments = append(p.segments, segment{op: segClose})
	}
	return p
}

// Clone returns a copy of p.  Later changes to p do not affect the copy.
func (p *Path) Clone() *Path {
	c := *p
	c.segments = slices.Clone(p.segments)
	return &c
}

// IsEmpty reports whether the path contains no segments.
func (p *Path) IsEmpty() bool {
	return len(p.segments) == 0
}

// BBox returns a rectangle which encloses all points of the path, including
// the control points of curves.
func (p *Path) BBox() rect.Rect {
	var bbox rect.Rect
	first := true
	add := func(pt vec.Vec2) {
		if first {
			bbox = rect.Rect{LLx: pt.X, LLy: pt.Y, URx: pt.X, URy: pt.Y}
			first = false
			return
		}
		bbox.LLx = min(bbox.LLx, pt.X)
		bbox.LLy = min(bbox.LLy, pt.Y)
		bbox.URx = max(bbox.URx, pt.X)
		bbox.URy = max(bbox.URy, pt.Y)
	}
	for _, seg := range p.segments {
		switch seg.op {
		case segRect:
			ll := seg.pts[0]
			add(ll)
			add(vec.Vec2{X: ll.X + seg.pts[1].X, Y: ll.Y + seg.pts[1].Y})
		case segCurveTo:
			for _, pt := range seg.pts[1:] {
				add(pt)
			}
		default:
			for _, pt := range seg.pts {
				add(pt)
			}
		}
	}
	return bbox
}

// Draw writes the operators which construct and paint the path.
// The graphics state is saved and restored around the path.
func (p *Path) Draw(w *Writer) error {
	if p.IsEmpty() {
		return errEmptyPath
	}

	w.PushGraphicsState()
	if p.Fill != nil {
		w.SetFillColor(p.Fill)
	}
	if p.Stroke != nil {
		w.SetStrokeColor(p.Stroke)
	}
	if p.LineWidth > 0 {
		w.SetLineWidth(p.LineWidth)
	}

	for _, seg := range p.segments {
		switch seg.op {
		case segMoveTo:
			w.MoveTo(seg.pts[0].X, seg.pts[0].Y)
		case segLineTo:
			w.LineTo(seg.pts[0].X, seg.pts[0].Y)
		case segCurveTo:
			q := seg.pts
			w.CurveTo(q[0].X, q[0].Y, q[1].X, q[1].Y, q[2].X, q[2].Y, q[3].X, q[3].Y)
		case segRect:
			w.Rectangle(seg.pts[0].X, seg.pts[0].Y, seg.pts[1].X, seg.pts[1].Y)
		case segClose:
			w.ClosePath()
		}
	}

	switch {
	case p.Fill != nil && p.Stroke != nil && p.EvenOdd:
		w.FillAndStrokeEvenOdd()
	case p.Fill != nil && p.Stroke != nil:
		w.FillAndStroke()
	case p.Fill != nil && p.EvenOdd:
		w.FillEvenOdd()
	case p.Fill != nil:
		w.Fill()
	default:
		w.Stroke()
	}
	w.PopGraphicsState()

	return w.Err
}

var errEmptyPath = errors.New("empty path")
