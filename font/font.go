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

// Package font loads fonts and embeds them into PDF files as simple fonts
// with WinAnsiEncoding.
//
// Fonts can be loaded from TrueType or OpenType data, or from Type 1 font
// programs (PFA or PFB format).  In addition, the 14 standard PDF fonts
// can be used without embedding.
package font

import (
	"bytes"
	"errors"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/postscript/type1"
	"seehuhn.de/go/sfnt"
)

// Kind describes how a font is stored in the PDF file.
type Kind int

// These are the supported font kinds.
const (
	KindStandard Kind = iota // one of the 14 standard fonts, not embedded
	KindTrueType             // TrueType outlines, embedded as FontFile2
	KindOpenType             // CFF-based OpenType, embedded as FontFile3
	KindType1                // Type 1 font program, embedded as FontFile
)

func (k Kind) String() string {
	switch k {
	case KindStandard:
		return "standard"
	case KindTrueType:
		return "TrueType"
	case KindOpenType:
		return "OpenType"
	case KindType1:
		return "Type1"
	default:
		return "unknown"
	}
}

// Font is a font which can be used to show text.
type Font struct {
	kind   Kind
	name   string
	data   []byte
	sfnt   *sfnt.Font
	type1  *type1.Font
	widths [256]float64
	desc   *Descriptor
}

// Parse loads a font from TrueType, OpenType or Type 1 data.
// If the data is not recognized, a [*ParseError] is returned.
func Parse(data []byte) (*Font, error) {
	if isType1(data) {
		psFont, err := type1.Read(bytes.NewReader(data))
		if err != nil {
			return nil, &ParseError{Format: "Type 1", Err: err}
		}
		return newType1(psFont), nil
	}

	if len(data) < 12 {
		return nil, &ParseError{Format: "font", Err: errors.New("data too short")}
	}
	f, err := sfnt.Read(bytes.NewReader(data))
	if err != nil {
		return nil, &ParseError{Format: "sfnt", Err: err}
	}
	return newSfnt(f, data)
}

func isType1(data []byte) bool {
	return bytes.HasPrefix(data, []byte{0x80, 0x01}) ||
		bytes.HasPrefix(data, []byte("%!PS-AdobeFont")) ||
		bytes.HasPrefix(data, []byte("%!FontType1"))
}

func newSfnt(f *sfnt.Font, data []byte) (*Font, error) {
	res := &Font{
		name: f.PostScriptName(),
		data: data,
		sfnt: f,
	}
	switch {
	case f.IsGlyf():
		res.kind = KindTrueType
	case f.IsCFF():
		res.kind = KindOpenType
	default:
		return nil, &ParseError{Format: "sfnt", Err: errors.New("no glyph outlines")}
	}

	cmap, err := f.CMapTable.GetBest()
	if err != nil {
		return nil, &ParseError{Format: "sfnt", Err: err}
	}
	for c := firstChar; c <= lastChar; c++ {
		gid := cmap.Lookup(decodeWinAnsi(byte(c)))
		if gid != 0 {
			res.widths[c] = f.GlyphWidthPDF(gid)
		}
	}

	q := 1000 / float64(f.UnitsPerEm)
	res.desc = &Descriptor{
		FontName:     res.name,
		IsFixedPitch: f.IsFixedPitch(),
		IsSerif:      f.IsSerif,
		IsScript:     f.IsScript,
		IsItalic:     f.IsItalic,
		FontBBox:     f.FontBBoxPDF(),
		ItalicAngle:  f.ItalicAngle,
		Ascent:       float64(f.Ascent) * q,
		Descent:      float64(f.Descent) * q,
		CapHeight:    float64(f.CapHeight) * q,
	}
	return res, nil
}

func newType1(psFont *type1.Font) *Font {
	res := &Font{
		kind:  KindType1,
		name:  psFont.FontInfo.FontName,
		type1: psFont,
	}

	isSymbolic := false
	standard := make(map[string]bool, len(winAnsiGlyphNames))
	for _, name := range winAnsiGlyphNames {
		standard[name] = true
	}
	for name := range psFont.Glyphs {
		if name != ".notdef" && !standard[name] {
			isSymbolic = true
			break
		}
	}
	for c := firstChar; c <= lastChar; c++ {
		name := winAnsiGlyphNames[c]
		if _, ok := psFont.Glyphs[name]; ok && name != "" {
			res.widths[c] = psFont.GlyphWidthPDF(name)
		}
	}

	bbox := psFont.FontBBoxPDF()
	capHeight := bbox.URy
	if _, ok := psFont.Glyphs["H"]; ok {
		capHeight = psFont.GlyphBBoxPDF("H").URy
	}
	q := 1000 * psFont.FontInfo.FontMatrix[0]
	res.desc = &Descriptor{
		FontName:     res.name,
		IsFixedPitch: psFont.FontInfo.IsFixedPitch,
		IsSymbolic:   isSymbolic,
		IsItalic:     psFont.FontInfo.ItalicAngle != 0,
		ForceBold:    psFont.Private.ForceBold,
		FontBBox:     bbox,
		ItalicAngle:  psFont.FontInfo.ItalicAngle,
		Ascent:       bbox.URy,
		Descent:      bbox.LLy,
		CapHeight:    capHeight,
		StemV:        psFont.Private.StdVW * q,
	}
	return res
}

// Name returns the PostScript name of the font.
func (f *Font) Name() string {
	return f.name
}

// Kind returns the way the font is stored in a PDF file.
func (f *Font) Kind() Kind {
	return f.kind
}

// IsEmbedded reports whether the font program is embedded in the PDF file.
func (f *Font) IsEmbedded() bool {
	return f.kind != KindStandard
}

// BBox returns the font bounding box in PDF glyph space units.
// The result is the zero rectangle for the standard fonts.
func (f *Font) BBox() rect.Rect {
	if f.desc == nil {
		return rect.Rect{}
	}
	return f.desc.FontBBox
}

// Width returns the advance width of the glyph for the WinAnsiEncoding
// character code c, in PDF glyph space units (1/1000 of the font size).
// Zero is returned for the standard fonts, whose metrics are built into
// PDF viewers.
func (f *Font) Width(c byte) float64 {
	return f.widths[c]
}

// TextWidth returns the width of text set at the given font size.
func (f *Font) TextWidth(text string, size float64) float64 {
	var w float64
	for _, c := range Encode(text) {
		w += f.widths[c]
	}
	return w * size / 1000
}
