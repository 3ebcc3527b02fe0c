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
	"seehuhn.de/go/pdfdoc/graphics"
)

// Layer is a named group of content on a page.  When the conformance
// level of the document allows it, every layer becomes an optional
// content group which viewers can show or hide.
type Layer struct {
	// Name is shown in the layer list of PDF viewers.  Names need not be
	// unique.
	Name string

	markers []Marker
	ops     []layerOp
	sealed  bool
}

// layerOp is one drawing operation recorded on a layer.
type layerOp interface {
	isLayerOp()
}

type textOp struct {
	at   Marker
	font ContentHandle
	size float64
	text string
}

type contentOp struct {
	at            Marker
	content       ContentHandle
	width, height Pt // zero means natural size
}

type pathOp struct {
	path *graphics.Path
}

func (*textOp) isLayerOp()    {}
func (*contentOp) isLayerOp() {}
func (*pathOp) isLayerOp()    {}

// AddMarker adds a new marker at position (x, y), measured from the
// bottom-left corner of the page.
//
// AddMarker panics if the document has already been saved.
func (l *Layer) AddMarker(x, y Mm) MarkerIndex {
	if l.sealed {
		panic(ErrConsumed)
	}
	l.markers = append(l.markers, Marker{X: x.Pt(), Y: y.Pt()})
	return MarkerIndex(len(l.markers) - 1)
}

// Marker returns the marker with index i.
func (l *Layer) Marker(i MarkerIndex) (Marker, error) {
	if i < 0 || int(i) >= len(l.markers) {
		return Marker{}, &IndexError{Level: MarkerLevel, Index: int(i)}
	}
	return l.markers[i], nil
}

// NumMarkers returns the number of markers on the layer.
func (l *Layer) NumMarkers() int {
	return len(l.markers)
}

// IsEmpty reports whether no content has been placed on the layer.
func (l *Layer) IsEmpty() bool {
	return len(l.ops) == 0
}
