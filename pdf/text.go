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

package pdf

import (
	"errors"
	"strings"
	"time"
	"unicode/utf16"
)

// TextString creates a String object using the "text string" encoding.
// Strings which only contain printable ASCII characters are stored as
// they are (ASCII is a subset of PDFDocEncoding), all other strings
// are stored as UTF-16BE with a byte order mark.
func TextString(s string) String {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 0x7f || c < 0x20 && c != '\t' && c != '\n' && c != '\r' {
			goto useUTF
		}
	}
	return String(s)

useUTF:
	enc := utf16.Encode([]rune(s))
	buf := make([]byte, 2*len(enc)+2)
	buf[0] = 0xFE
	buf[1] = 0xFF
	for i, c := range enc {
		buf[2*i+2] = byte(c >> 8)
		buf[2*i+3] = byte(c)
	}
	return String(buf)
}

// AsTextString interprets x as a PDF "text string" and returns
// the corresponding utf-8 encoded string.
func (x String) AsTextString() string {
	if len(x) >= 2 && x[0] == 0xFE && x[1] == 0xFF {
		var u []uint16
		for i := 2; i+1 < len(x); i += 2 {
			u = append(u, uint16(x[i])<<8|uint16(x[i+1]))
		}
		return string(utf16.Decode(u))
	}
	r := make([]rune, len(x))
	for i, c := range x {
		r[i] = rune(c)
	}
	return string(r)
}

// Date creates a PDF String object encoding the given date and time.
func Date(t time.Time) String {
	s := t.Format("D:20060102150405-0700")
	k := len(s) - 2
	s = s[:k] + "'" + s[k:]
	return String(s)
}

// AsDate converts a PDF date string to a time.Time object.
// If the string does not have the correct format, an error is returned.
func (x String) AsDate() (time.Time, error) {
	s := strings.TrimSpace(x.AsTextString())
	s = strings.ReplaceAll(s, "'", "")
	if strings.HasSuffix(s, "Z00") {
		s = s[:len(s)-2]
	}
	formats := []string{
		"D:20060102150405-0700",
		"D:20060102150405Z",
		"D:20060102150405",
		"D:200601021504",
		"D:20060102",
		"D:2006",
	}
	for _, format := range formats {
		t, err := time.Parse(format, s)
		if err == nil {
			return t, nil
		}
	}
	return time.Time{}, errMalformedDate
}

var errMalformedDate = errors.New("malformed date")
