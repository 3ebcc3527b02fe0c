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
	"fmt"

	"seehuhn.de/go/geom/matrix"
)

// This file implements the "General graphics state" and "Special graphics
// state" operators, as well as the colour operators, as defined in tables
// 56, 57 and 73 of ISO 32000-2:2020.

// PushGraphicsState saves the current graphics state.
//
// This implements the PDF graphics operator "q".
func (w *Writer) PushGraphicsState() {
	if !w.isValid("PushGraphicsState", objPage) {
		return
	}
	w.push(pairTypeQ)

	_, w.Err = fmt.Fprintln(w.Content, "q")
}

// PopGraphicsState restores the previous graphics state.
//
// This implements the PDF graphics operator "Q".
func (w *Writer) PopGraphicsState() {
	if !w.isValid("PopGraphicsState", objPage) {
		return
	}
	if !w.pop(pairTypeQ) {
		return
	}

	_, w.Err = fmt.Fprintln(w.Content, "Q")
}

// Transform applies a transformation matrix to the coordinate system.
// This function modifies the current transformation matrix.
//
// This implements the PDF graphics operator "cm".
func (w *Writer) Transform(m matrix.Matrix) {
	if !w.isValid("Transform", objPage) {
		return
	}

	_, w.Err = fmt.Fprintln(w.Content,
		w.coord(m[0]), w.coord(m[1]), w.coord(m[2]),
		w.coord(m[3]), w.coord(m[4]), w.coord(m[5]), "cm")
}

// SetLineWidth sets the line width.
//
// This implements the PDF graphics operator "w".
func (w *Writer) SetLineWidth(width float64) {
	if !w.isValid("SetLineWidth", objPage|objText) {
		return
	}
	if width < 0 {
		w.Err = fmt.Errorf("SetLineWidth: negative width %g", width)
		return
	}

	_, w.Err = fmt.Fprintln(w.Content, w.coord(width), "w")
}

// SetFillColor sets the colour used for filling.
//
// This implements the PDF graphics operators "g", "rg" and "k".
func (w *Writer) SetFillColor(c Color) {
	if !w.isValid("SetFillColor", objPage|objText) {
		return
	}
	w.writeColor(c, false)
}

// SetStrokeColor sets the colour used for stroking.
//
// This implements the PDF graphics operators "G", "RG" and "K".
func (w *Writer) SetStrokeColor(c Color) {
	if !w.isValid("SetStrokeColor", objPage|objText) {
		return
	}
	w.writeColor(c, true)
}

func (w *Writer) writeColor(c Color, stroke bool) {
	values, op := c.operator()
	if stroke {
		op = upper(op)
	}
	args := make([]any, 0, len(values)+1)
	for _, v := range values {
		args = append(args, w.coord(v))
	}
	args = append(args, op)
	_, w.Err = fmt.Fprintln(w.Content, args...)
}

func upper(op string) string {
	b := []byte(op)
	for i, c := range b {
		if c >= 'a' && c <= 'z' {
			b[i] = c - 'a' + 'A'
		}
	}
	return string(b)
}
