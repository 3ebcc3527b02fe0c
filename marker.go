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

import "seehuhn.de/go/geom/vec"

// Handles are indices into the arenas owned by a [Document].  They are
// never reused and stay valid for the lifetime of the document.
type (
	// PageIndex identifies a page of a document.
	PageIndex int

	// LayerIndex identifies a layer of a page.  It is only meaningful
	// together with the PageIndex of the page.
	LayerIndex int

	// MarkerIndex identifies a marker on a layer.  It is only meaningful
	// together with the page and layer indices.
	MarkerIndex int

	// ContentHandle identifies an entry of the content registry.
	ContentHandle int

	// FontHandle is a ContentHandle which refers to a font.
	FontHandle ContentHandle
)

// LayerRef addresses a layer within a document.
type LayerRef struct {
	Page  PageIndex
	Layer LayerIndex
}

// MarkerRef addresses a marker within a document.
type MarkerRef struct {
	Page   PageIndex
	Layer  LayerIndex
	Marker MarkerIndex
}

// At returns a reference to marker m on the layer.
func (l LayerRef) At(m MarkerIndex) MarkerRef {
	return MarkerRef{Page: l.Page, Layer: l.Layer, Marker: m}
}

// Marker is a position on a layer, in PDF points.  Content is placed
// relative to markers.
type Marker struct {
	X, Y Pt
}

// Vec returns the marker position as a vector.
func (m Marker) Vec() vec.Vec2 {
	return vec.Vec2{X: float64(m.X), Y: float64(m.Y)}
}
