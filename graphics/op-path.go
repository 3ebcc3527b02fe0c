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

import "fmt"

// This file implements the "Path construction operators" and "Path-painting
// operators".  The operators implemented here are defined in tables 58, 59
// and 60 of ISO 32000-2:2020.

// MoveTo starts a new path at the given coordinates.
//
// This implements the PDF graphics operator "m".
func (w *Writer) MoveTo(x, y float64) {
	if !w.isValid("MoveTo", objPage|objPath) {
		return
	}
	w.currentObject = objPath

	_, w.Err = fmt.Fprintln(w.Content, w.coord(x), w.coord(y), "m")
}

// LineTo appends a straight line segment to the current path.
//
// This implements the PDF graphics operator "l".
func (w *Writer) LineTo(x, y float64) {
	if !w.isValid("LineTo", objPath) {
		return
	}

	_, w.Err = fmt.Fprintln(w.Content, w.coord(x), w.coord(y), "l")
}

// CurveTo appends a cubic Bezier curve to the current path.
// The current point is (x0, y0), which is needed to choose the shortest
// operator.
//
// This implements the PDF graphics operators "c", "v", and "y".
func (w *Writer) CurveTo(x0, y0, x1, y1, x2, y2, x3, y3 float64) {
	if !w.isValid("CurveTo", objPath) {
		return
	}

	if nearlyEqual(x0, x1) && nearlyEqual(y0, y1) {
		_, w.Err = fmt.Fprintln(w.Content, w.coord(x2), w.coord(y2), w.coord(x3), w.coord(y3), "v")
	} else if nearlyEqual(x2, x3) && nearlyEqual(y2, y3) {
		_, w.Err = fmt.Fprintln(w.Content, w.coord(x1), w.coord(y1), w.coord(x3), w.coord(y3), "y")
	} else {
		_, w.Err = fmt.Fprintln(w.Content, w.coord(x1), w.coord(y1), w.coord(x2), w.coord(y2), w.coord(x3), w.coord(y3), "c")
	}
}

// ClosePath closes the current subpath.
//
// This implements the PDF graphics operator "h".
func (w *Writer) ClosePath() {
	if !w.isValid("ClosePath", objPath) {
		return
	}

	_, w.Err = fmt.Fprintln(w.Content, "h")
}

// Rectangle appends a rectangle to the current path as a closed subpath.
//
// This implements the PDF graphics operator "re".
func (w *Writer) Rectangle(x, y, width, height float64) {
	if !w.isValid("Rectangle", objPage|objPath) {
		return
	}
	w.currentObject = objPath

	_, w.Err = fmt.Fprintln(w.Content, w.coord(x), w.coord(y), w.coord(width), w.coord(height), "re")
}

// Stroke strokes the current path.
//
// This implements the PDF graphics operator "S".
func (w *Writer) Stroke() {
	w.paint("Stroke", "S")
}

// CloseAndStroke closes and strokes the current path.
//
// This implements the PDF graphics operator "s".
func (w *Writer) CloseAndStroke() {
	w.paint("CloseAndStroke", "s")
}

// Fill fills the current path, using the nonzero winding number rule.  Any
// subpaths that are open are implicitly closed before being filled.
//
// This implements the PDF graphics operator "f".
func (w *Writer) Fill() {
	w.paint("Fill", "f")
}

// FillEvenOdd fills the current path, using the even-odd rule.
//
// This implements the PDF graphics operator "f*".
func (w *Writer) FillEvenOdd() {
	w.paint("FillEvenOdd", "f*")
}

// FillAndStroke fills and then strokes the current path, using the nonzero
// winding number rule.
//
// This implements the PDF graphics operator "B".
func (w *Writer) FillAndStroke() {
	w.paint("FillAndStroke", "B")
}

// FillAndStrokeEvenOdd fills and then strokes the current path, using the
// even-odd rule.
//
// This implements the PDF graphics operator "B*".
func (w *Writer) FillAndStrokeEvenOdd() {
	w.paint("FillAndStrokeEvenOdd", "B*")
}

// EndPath ends the path without filling and stroking it.
//
// This implements the PDF graphics operator "n".
func (w *Writer) EndPath() {
	w.paint("EndPath", "n")
}

func (w *Writer) paint(cmd, op string) {
	if !w.isValid(cmd, objPath) {
		return
	}
	w.currentObject = objPage

	_, w.Err = fmt.Fprintln(w.Content, op)
}
