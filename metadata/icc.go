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

package metadata

import (
	"errors"
	"fmt"

	"seehuhn.de/go/icc"

	"seehuhn.de/go/pdfdoc/pdf"
)

// ICCProfile is an ICC colour profile used as the destination profile of
// the document's output intent.
type ICCProfile struct {
	// Data is the raw profile.
	Data []byte

	// N is the number of colour components of the profile.
	N int

	// Alternate is the device colour space with N components.
	Alternate pdf.Name

	// Identifier is the output condition identifier, e.g. "FOGRA39".
	Identifier string

	// Condition is a human-readable description of the output condition.
	Condition string

	// Info names the characterized printing condition.
	Info string
}

// NewICCProfile decodes an ICC profile and fills in the number of colour
// components.  The output condition defaults to Coated FOGRA39 and can
// be changed by setting the corresponding fields.
func NewICCProfile(data []byte) (*ICCProfile, error) {
	if len(data) == 0 {
		return nil, errors.New("ICC profile: no data")
	}
	p, err := icc.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("ICC profile: %w", err)
	}

	res := &ICCProfile{
		Data:       data,
		N:          p.ColorSpace.NumComponents(),
		Identifier: "FOGRA39",
		Condition: "Commercial and special offset print according to " +
			"ISO 12647-2:2004 / Amd 1, paper type 1 or 2 (matte or " +
			"gloss-coated offset paper, 115 g/m2), screen ruling 60/cm",
		Info: "Coated FOGRA39 (ISO 12647-2:2004)",
	}
	switch p.ColorSpace {
	case icc.GraySpace:
		res.Alternate = "DeviceGray"
	case icc.RGBSpace:
		res.Alternate = "DeviceRGB"
	case icc.CMYKSpace:
		res.Alternate = "DeviceCMYK"
	case icc.CIELabSpace:
		res.Alternate = "Lab"
	default:
		return nil, fmt.Errorf("ICC profile: unsupported color space %v",
			p.ColorSpace)
	}
	return res, nil
}

// stream returns the (uncompressed) ICC profile stream.
func (p *ICCProfile) stream() *pdf.Stream {
	dict := pdf.Dict{
		"N": pdf.Integer(p.N),
	}
	if p.Alternate != "" && p.Alternate != "Lab" {
		dict["Alternate"] = p.Alternate
	}
	return &pdf.Stream{Dict: dict, Data: p.Data}
}
