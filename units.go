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

package pdfdoc

import (
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Mm is a length in millimetres.  All dimensions passed to the construction
// API use this unit.
type Mm float64

// Pt is a length in PDF points, 1/72 of an inch.  This is the unit used
// inside the PDF file.
type Pt float64

// Pt converts a length from millimetres to PDF points.
func (x Mm) Pt() Pt {
	return ToNative(x)
}

// ToNative converts a length from millimetres to PDF points.
func ToNative(x Mm) Pt {
	return Pt(float64(x) * 72 / 25.4)
}

// Mm converts a length from PDF points to millimetres.
func (x Pt) Mm() Mm {
	return Mm(float64(x) * 25.4 / 72)
}

// Point converts a position given in millimetres to PDF points.
func Point(x, y Mm) vec.Vec2 {
	return vec.Vec2{X: float64(x.Pt()), Y: float64(y.Pt())}
}

// Rect converts a rectangle given in millimetres to PDF points.
func Rect(llx, lly, urx, ury Mm) rect.Rect {
	return rect.Rect{
		LLx: float64(llx.Pt()),
		LLy: float64(lly.Pt()),
		URx: float64(urx.Pt()),
		URy: float64(ury.Pt()),
	}
}

// PaperSize is the size of a sheet of paper.
type PaperSize struct {
	Width, Height Mm
}

// Default paper sizes, in portrait orientation.
var (
	A4     = PaperSize{Width: 210, Height: 297}
	A5     = PaperSize{Width: 148, Height: 210}
	Letter = PaperSize{Width: 215.9, Height: 279.4}
)

// Landscape returns the paper size with width and height exchanged.
func (p PaperSize) Landscape() PaperSize {
	return PaperSize{Width: p.Height, Height: p.Width}
}
