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

package font

import (
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/pdfdoc/pdf"
)

// Descriptor represents a PDF font descriptor.
//
// See section 9.8.1 of ISO 32000-2:2020.
type Descriptor struct {
	FontName string

	IsFixedPitch bool // flag
	IsSerif      bool // flag
	IsSymbolic   bool // flag
	IsScript     bool // flag
	IsItalic     bool // flag
	ForceBold    bool // flag

	FontBBox    rect.Rect
	ItalicAngle float64
	Ascent      float64
	Descent     float64
	CapHeight   float64
	StemV       float64 // 0 = unknown
}

// AsDict converts the font descriptor to a PDF dictionary.
func (d *Descriptor) AsDict() pdf.Dict {
	var flags Flags
	if d.IsFixedPitch {
		flags |= FlagFixedPitch
	}
	if d.IsSerif {
		flags |= FlagSerif
	}
	if d.IsSymbolic {
		flags |= FlagSymbolic
	} else {
		flags |= FlagNonsymbolic
	}
	if d.IsScript {
		flags |= FlagScript
	}
	if d.IsItalic {
		flags |= FlagItalic
	}
	if d.ForceBold {
		flags |= FlagForceBold
	}

	bbox := d.FontBBox
	dict := pdf.Dict{
		"Type":     pdf.Name("FontDescriptor"),
		"FontName": pdf.Name(d.FontName),
		"Flags":    pdf.Integer(flags),
		"FontBBox": pdf.Array{
			pdf.Number(bbox.LLx), pdf.Number(bbox.LLy),
			pdf.Number(bbox.URx), pdf.Number(bbox.URy),
		},
		"ItalicAngle": pdf.Number(d.ItalicAngle),
		"Ascent":      pdf.Number(d.Ascent),
		"Descent":     pdf.Number(d.Descent),
		"CapHeight":   pdf.Number(d.CapHeight),
		"StemV":       pdf.Number(d.StemV),
	}
	return dict
}

// Flags represents PDF Font Descriptor Flags.
// See section 9.8.2 of ISO 32000-2:2020.
type Flags uint32

// Possible values for PDF Font Descriptor Flags.
const (
	FlagFixedPitch  Flags = 1 << 0  // All glyphs have the same width.
	FlagSerif       Flags = 1 << 1  // Glyphs have serifs.
	FlagSymbolic    Flags = 1 << 2  // Font contains glyphs outside the Adobe standard Latin character set.
	FlagScript      Flags = 1 << 3  // Glyphs resemble cursive handwriting.
	FlagNonsymbolic Flags = 1 << 5  // Font uses the Adobe standard Latin character set or a subset of it.
	FlagItalic      Flags = 1 << 6  // Glyphs have dominant vertical strokes that are slanted.
	FlagForceBold   Flags = 1 << 18 // Bold glyphs are painted with extra pixels even at very small text sizes.
)
