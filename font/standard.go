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

// StandardName is the name of one of the 14 standard PDF fonts.
type StandardName string

// The 14 standard PDF fonts.
const (
	Courier              StandardName = "Courier"
	CourierBold          StandardName = "Courier-Bold"
	CourierBoldOblique   StandardName = "Courier-BoldOblique"
	CourierOblique       StandardName = "Courier-Oblique"
	Helvetica            StandardName = "Helvetica"
	HelveticaBold        StandardName = "Helvetica-Bold"
	HelveticaBoldOblique StandardName = "Helvetica-BoldOblique"
	HelveticaOblique     StandardName = "Helvetica-Oblique"
	TimesRoman           StandardName = "Times-Roman"
	TimesBold            StandardName = "Times-Bold"
	TimesBoldItalic      StandardName = "Times-BoldItalic"
	TimesItalic          StandardName = "Times-Italic"
	Symbol               StandardName = "Symbol"
	ZapfDingbats         StandardName = "ZapfDingbats"
)

// IsValid reports whether name is one of the 14 standard fonts.
func (name StandardName) IsValid() bool {
	switch name {
	case Courier, CourierBold, CourierBoldOblique, CourierOblique,
		Helvetica, HelveticaBold, HelveticaBoldOblique, HelveticaOblique,
		TimesRoman, TimesBold, TimesBoldItalic, TimesItalic,
		Symbol, ZapfDingbats:
		return true
	}
	return false
}

// hasBuiltinEncoding reports whether the font uses its own encoding
// instead of WinAnsiEncoding.
func (name StandardName) hasBuiltinEncoding() bool {
	return name == Symbol || name == ZapfDingbats
}

// Standard returns one of the 14 standard PDF fonts.  These fonts are not
// embedded into the PDF file; this is not allowed for PDF/A and PDF/X
// documents.  Standard returns nil if name is not a standard font.
func Standard(name StandardName) *Font {
	if !name.IsValid() {
		return nil
	}
	return &Font{
		kind: KindStandard,
		name: string(name),
	}
}
