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

package pdfdoc

import (
	"errors"
	"fmt"
	"strings"

	"seehuhn.de/go/pdfdoc/font"
	"seehuhn.de/go/pdfdoc/metadata"
)

// IndexLevel names the level of the document hierarchy at which a handle
// failed to resolve.
type IndexLevel int

// These are the levels of the document hierarchy.
const (
	PageLevel IndexLevel = iota + 1
	LayerLevel
	MarkerLevel
	ContentLevel
)

func (l IndexLevel) String() string {
	switch l {
	case PageLevel:
		return "page"
	case LayerLevel:
		return "layer"
	case MarkerLevel:
		return "marker"
	case ContentLevel:
		return "content"
	default:
		return fmt.Sprintf("IndexLevel(%d)", int(l))
	}
}

// IndexError is returned when a handle does not refer to an existing
// object.  Level gives the first component of a composite handle which
// could not be resolved.
type IndexError struct {
	Level IndexLevel
	Index int
}

func (err *IndexError) Error() string {
	return fmt.Sprintf("pdfdoc: invalid %s index %d", err.Level, err.Index)
}

// FontParseError is returned when font data cannot be parsed.
type FontParseError = font.ParseError

// IOError is returned when writing the output fails.
type IOError struct {
	Err error
}

func (err *IOError) Error() string {
	return "pdfdoc: write failed: " + err.Err.Error()
}

func (err *IOError) Unwrap() error {
	return err.Err
}

// ConformanceError lists the ways in which a document violates its
// declared conformance level.
type ConformanceError struct {
	Conformance metadata.Conformance
	Violations  []metadata.Violation
}

func (err *ConformanceError) Error() string {
	msg := make([]string, len(err.Violations))
	for i, v := range err.Violations {
		msg[i] = v.String()
	}
	return fmt.Sprintf("pdfdoc: document does not conform to %s: %s",
		err.Conformance, strings.Join(msg, "; "))
}

// ErrConsumed is returned by all fallible operations on a document which
// has already been saved.
var ErrConsumed = errors.New("pdfdoc: document has already been saved")
