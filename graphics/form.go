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
	"bytes"
	"errors"
	"fmt"

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/pdfdoc/pdf"
)

// Form is a self-contained vector graphic which is embedded into a PDF file
// as a Form XObject.  Forms can be drawn any number of times, on any page.
type Form struct {
	// BBox is the bounding box of the form in form space.  If BBox is
	// the zero rectangle, the bounding box of all paths is used.
	BBox rect.Rect

	Paths []*Path
}

// Width returns the width of the form's bounding box.
func (f *Form) Width() float64 {
	b := f.Bounds()
	return b.URx - b.LLx
}

// Height returns the height of the form's bounding box.
func (f *Form) Height() float64 {
	b := f.Bounds()
	return b.URy - b.LLy
}

// Bounds returns the bounding box of the form.  This is BBox if set, and
// the union of the path bounding boxes otherwise.
func (f *Form) Bounds() rect.Rect {
	if f.BBox != (rect.Rect{}) {
		return f.BBox
	}
	var bbox rect.Rect
	for i, p := range f.Paths {
		b := p.BBox()
		if i == 0 {
			bbox = b
			continue
		}
		bbox.LLx = min(bbox.LLx, b.LLx)
		bbox.LLy = min(bbox.LLy, b.LLy)
		bbox.URx = max(bbox.URx, b.URx)
		bbox.URy = max(bbox.URy, b.URy)
	}
	return bbox
}

// Embed writes the form as a Form XObject into out.
func (f *Form) Embed(out *pdf.File, compress bool) (pdf.Reference, error) {
	if len(f.Paths) == 0 {
		return 0, errEmptyForm
	}

	buf := &bytes.Buffer{}
	w := NewWriter(buf)
	for i, p := range f.Paths {
		err := p.Draw(w)
		if err != nil {
			return 0, fmt.Errorf("form path %d: %w", i, err)
		}
	}
	err := w.Close()
	if err != nil {
		return 0, err
	}

	bbox := f.Bounds()
	dict := pdf.Dict{
		"Type":    pdf.Name("XObject"),
		"Subtype": pdf.Name("Form"),
		"BBox": pdf.Array{
			pdf.Number(bbox.LLx), pdf.Number(bbox.LLy),
			pdf.Number(bbox.URx), pdf.Number(bbox.URy),
		},
	}
	stm, err := pdf.FlateStream(dict, buf.Bytes(), compress)
	if err != nil {
		return 0, err
	}
	return out.Add(stm), nil
}

var errEmptyForm = errors.New("form without paths")
