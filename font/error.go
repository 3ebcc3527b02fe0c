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

// ParseError indicates that font data could not be parsed as either a
// TrueType/OpenType font or a Type 1 font.
type ParseError struct {
	// Format names the font format which was tried last.
	Format string
	Err    error
}

func (err *ParseError) Error() string {
	if err.Err == nil {
		return "font: unrecognized " + err.Format + " data"
	}
	return "font: invalid " + err.Format + " data: " + err.Err.Error()
}

func (err *ParseError) Unwrap() error {
	return err.Err
}
