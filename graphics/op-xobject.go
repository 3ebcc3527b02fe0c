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

import "seehuhn.de/go/pdfdoc/pdf"

// DrawXObject draws an external object, such as an image or a form.  The
// object is given by its name in the XObject resource dictionary.
//
// This implements the PDF graphics operator "Do".
func (w *Writer) DrawXObject(name pdf.Name) {
	if !w.isValid("DrawXObject", objPage) {
		return
	}

	w.writeObjects("Do", name)
}
