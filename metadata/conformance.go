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
	"strconv"

	"seehuhn.de/go/pdfdoc/pdf"
)

// Conformance is a named profile of structural and metadata requirements
// a document can be checked against.
type Conformance int

// These are the supported conformance levels.
const (
	// None imposes no restrictions.
	None Conformance = iota

	// PDFA1B is PDF/A-1b (ISO 19005-1), based on PDF 1.4.
	PDFA1B

	// PDFA2B is PDF/A-2b (ISO 19005-2), based on PDF 1.7.
	PDFA2B

	// PDFA3B is PDF/A-3b (ISO 19005-3), based on PDF 1.7.
	PDFA3B

	// PDFX3 is PDF/X-3:2003 (ISO 15930-6), based on PDF 1.4.
	PDFX3

	// PDFX4 is PDF/X-4 (ISO 15930-7), based on PDF 1.6.
	PDFX4
)

func (c Conformance) String() string {
	switch c {
	case None:
		return "none"
	case PDFA1B:
		return "PDF/A-1b"
	case PDFA2B:
		return "PDF/A-2b"
	case PDFA3B:
		return "PDF/A-3b"
	case PDFX3:
		return "PDF/X-3:2003"
	case PDFX4:
		return "PDF/X-4"
	default:
		return "Conformance(" + strconv.Itoa(int(c)) + ")"
	}
}

// Version returns the PDF version used for files of this conformance level.
func (c Conformance) Version() pdf.Version {
	switch c {
	case PDFA1B, PDFX3:
		return pdf.V1_4
	case PDFX4:
		return pdf.V1_6
	default:
		return pdf.V1_7
	}
}

// IsPDFA reports whether c is one of the PDF/A levels.
func (c Conformance) IsPDFA() bool {
	return c == PDFA1B || c == PDFA2B || c == PDFA3B
}

// IsPDFX reports whether c is one of the PDF/X levels.
func (c Conformance) IsPDFX() bool {
	return c == PDFX3 || c == PDFX4
}

// RequiresICCProfile reports whether documents at this level need an
// output intent with an embedded ICC profile.
func (c Conformance) RequiresICCProfile() bool {
	return c != None
}

// RequiresEmbeddedFonts reports whether all fonts must be embedded.
func (c Conformance) RequiresEmbeddedFonts() bool {
	return c != None
}

// AllowsEncryption reports whether the file may be encrypted.
func (c Conformance) AllowsEncryption() bool {
	return c == None
}

// AllowsOptionalContent reports whether layers may be written as
// optional content groups.  At levels where this is not allowed, layers
// are merged into the page content.
func (c Conformance) AllowsOptionalContent() bool {
	return c != PDFA1B && c != PDFX3
}

// AllowsTransparency reports whether images with soft masks may be used.
func (c Conformance) AllowsTransparency() bool {
	return c != PDFA1B && c != PDFX3
}

// RequiresTitle reports whether the document title must be set.
func (c Conformance) RequiresTitle() bool {
	return c.IsPDFX()
}

// outputIntentSubtype returns the value of the /S entry of the
// output intent dictionary.
func (c Conformance) outputIntentSubtype() pdf.Name {
	if c.IsPDFA() {
		return "GTS_PDFA1"
	}
	return "GTS_PDFX"
}

// part returns the pdfaid:part value for PDF/A levels.
func (c Conformance) part() string {
	switch c {
	case PDFA1B:
		return "1"
	case PDFA2B:
		return "2"
	case PDFA3B:
		return "3"
	default:
		return ""
	}
}
