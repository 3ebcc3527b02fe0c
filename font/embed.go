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
	"bytes"
	"fmt"

	"seehuhn.de/go/pdfdoc/pdf"
)

// Embed adds the font dictionary, and for embedded fonts the font
// descriptor and font program, to out.  The returned reference points
// to the font dictionary.
func (f *Font) Embed(out *pdf.File, compress bool) (pdf.Reference, error) {
	fontDict := pdf.Dict{
		"Type":     pdf.Name("Font"),
		"BaseFont": pdf.Name(f.name),
	}

	if f.kind == KindStandard {
		fontDict["Subtype"] = pdf.Name("Type1")
		if !StandardName(f.name).hasBuiltinEncoding() {
			fontDict["Encoding"] = pdf.Name("WinAnsiEncoding")
		}
		return out.Add(fontDict), nil
	}

	widths := make(pdf.Array, 0, lastChar-firstChar+1)
	for c := firstChar; c <= lastChar; c++ {
		widths = append(widths, pdf.Number(f.widths[c]))
	}
	fontDict["FirstChar"] = pdf.Integer(firstChar)
	fontDict["LastChar"] = pdf.Integer(lastChar)
	fontDict["Widths"] = widths
	if !f.desc.IsSymbolic {
		fontDict["Encoding"] = pdf.Name("WinAnsiEncoding")
	}

	fontFile, key, err := f.fontFile(compress)
	if err != nil {
		return 0, fmt.Errorf("font %q: %w", f.name, err)
	}

	fd := f.desc.AsDict()
	fd[key] = out.Add(fontFile)
	fontDict["FontDescriptor"] = out.Add(fd)

	switch f.kind {
	case KindTrueType:
		fontDict["Subtype"] = pdf.Name("TrueType")
	default:
		fontDict["Subtype"] = pdf.Name("Type1")
	}
	return out.Add(fontDict), nil
}

// fontFile returns the font program stream, together with the name of the
// font descriptor entry which refers to it.
// See section 9.9 of ISO 32000-2:2020.
func (f *Font) fontFile(compress bool) (*pdf.Stream, pdf.Name, error) {
	buf := &bytes.Buffer{}
	switch f.kind {
	case KindTrueType:
		n, err := f.sfnt.WriteTrueTypePDF(buf)
		if err != nil {
			return nil, "", err
		}
		dict := pdf.Dict{"Length1": pdf.Integer(n)}
		stm, err := pdf.FlateStream(dict, buf.Bytes(), compress)
		return stm, "FontFile2", err

	case KindOpenType:
		dict := pdf.Dict{"Subtype": pdf.Name("OpenType")}
		stm, err := pdf.FlateStream(dict, f.data, compress)
		return stm, "FontFile3", err

	case KindType1:
		l1, l2, err := f.type1.WritePDF(buf)
		if err != nil {
			return nil, "", err
		}
		dict := pdf.Dict{
			"Length1": pdf.Integer(l1),
			"Length2": pdf.Integer(l2),
			"Length3": pdf.Integer(0),
		}
		stm, err := pdf.FlateStream(dict, buf.Bytes(), compress)
		return stm, "FontFile", err

	default:
		return nil, "", fmt.Errorf("unexpected font kind %s", f.kind)
	}
}
