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

// Package testfont builds small fonts for use in tests.
//
// All fonts contain the glyphs ".notdef", "space" and "A", where "A" is a
// square.  Glyph space units are 1/1000 of the font size.
package testfont

import (
	"bytes"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/postscript/funit"
	"seehuhn.de/go/postscript/type1"
	"seehuhn.de/go/sfnt"
	"seehuhn.de/go/sfnt/cff"
	"seehuhn.de/go/sfnt/cmap"
	"seehuhn.de/go/sfnt/glyph"
	"seehuhn.de/go/sfnt/os2"
)

// Metrics of the test fonts, in PDF glyph space units.
const (
	NotdefWidth = 500
	SpaceWidth  = 250
	SquareWidth = 500

	SquareLeft   = 100
	SquareRight  = 500
	SquareBottom = 0
	SquareTop    = 700

	Ascent  = 800
	Descent = -200
)

// Type1Name is the PostScript name of the Type 1 font, and OpenTypeFamily
// is the family name of the OpenType font.
const (
	Type1Name      = "SquareType1"
	OpenTypeFamily = "SquareCFF"
)

var fontMatrix = matrix.Matrix{0.001, 0, 0, 0.001, 0, 0}

func private() *type1.PrivateDict {
	return &type1.PrivateDict{
		BlueValues: []funit.Int16{-10, 0, 700, 710},
		BlueScale:  0.039625,
		BlueShift:  7,
		BlueFuzz:   1,
		StdHW:      20,
		StdVW:      20,
	}
}

func drawSquare(path interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
}) {
	path.MoveTo(SquareLeft, SquareBottom)
	path.LineTo(SquareRight, SquareBottom)
	path.LineTo(SquareRight, SquareTop)
	path.LineTo(SquareLeft, SquareTop)
	path.LineTo(SquareLeft, SquareBottom)
}

// Type1 returns a Type 1 font program in PFB format.
func Type1() []byte {
	encoding := make([]string, 256)
	for i := range encoding {
		encoding[i] = ".notdef"
	}
	encoding[' '] = "space"
	encoding['A'] = "A"

	square := &type1.Glyph{WidthX: SquareWidth}
	drawSquare(square)
	square.ClosePath()

	F := &type1.Font{
		FontInfo: &type1.FontInfo{
			FontName:   Type1Name,
			FullName:   "Square Type 1",
			FamilyName: "Square",
			Weight:     "Regular",
			Version:    "1.0",
			FontMatrix: fontMatrix,
		},
		Outlines: &type1.Outlines{
			Glyphs: map[string]*type1.Glyph{
				".notdef": {WidthX: NotdefWidth},
				"space":   {WidthX: SpaceWidth},
				"A":       square,
			},
			Private:  private(),
			Encoding: encoding,
		},
	}

	buf := &bytes.Buffer{}
	err := F.Write(buf, &type1.WriterOptions{Format: type1.FormatPFB})
	if err != nil {
		panic(err)
	}
	return buf.Bytes()
}

// OpenType returns an OpenType font with CFF outlines.
func OpenType() []byte {
	square := cff.NewGlyph("A", SquareWidth)
	drawSquare(square)

	outlines := &cff.Outlines{
		Glyphs: []*cff.Glyph{
			{Name: ".notdef", Width: NotdefWidth},
			{Name: "space", Width: SpaceWidth},
			square,
		},
		Private:  []*type1.PrivateDict{private()},
		FDSelect: func(glyph.ID) int { return 0 },
		Encoding: []glyph.ID{0, 1, 2},
	}

	cmapSubtable := cmap.Format4{' ': 1, 'A': 2}
	F := &sfnt.Font{
		FamilyName: OpenTypeFamily,
		Ascent:     Ascent,
		Descent:    Descent,
		LineGap:    200,
		CapHeight:  SquareTop,
		XHeight:    500,
		Outlines:   outlines,
		Width:      os2.WidthNormal,
		Weight:     os2.WeightNormal,
		IsRegular:  true,
		PermUse:    os2.PermInstall,
		UnitsPerEm: 1000,
		FontMatrix: fontMatrix,
		CMapTable: cmap.Table{
			{PlatformID: 0, EncodingID: 3}: cmapSubtable.Encode(0),
		},
	}

	buf := &bytes.Buffer{}
	_, err := F.Write(buf)
	if err != nil {
		panic(err)
	}
	return buf.Bytes()
}
