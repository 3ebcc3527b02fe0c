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

	"seehuhn.de/go/pdfdoc/pdf"
)

// MarkedContentStart begins a marked-content sequence with a property list
// given by name.  The name refers to an entry in the Properties resource
// dictionary.  This is how content is bound to an optional content group.
//
// This implements the PDF graphics operator "BDC".
func (w *Writer) MarkedContentStart(tag, properties pdf.Name) {
	if !w.isValid("MarkedContentStart", objPage|objText) {
		return
	}
	w.push(pairTypeBMC)

	w.writeObjects("BDC", tag, properties)
}

// MarkedContentEnd ends a marked-content sequence.
//
// This implements the PDF graphics operator "EMC".
func (w *Writer) MarkedContentEnd() {
	if !w.isValid("MarkedContentEnd", objPage|objText) {
		return
	}
	if !w.pop(pairTypeBMC) {
		return
	}

	_, w.Err = fmt.Fprintln(w.Content, "EMC")
}
