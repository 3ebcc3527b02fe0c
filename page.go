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

import "weak"

// Page is a page of a document.  Pages own their layers.
type Page struct {
	width, height Pt
	layers        []*Layer

	// doc is used to register shared resources.  It does not keep the
	// document alive.
	doc    weak.Pointer[Document]
	sealed bool
}

// Width returns the page width.
func (p *Page) Width() Pt {
	return p.width
}

// Height returns the page height.
func (p *Page) Height() Pt {
	return p.height
}

// AddLayer appends a new, empty layer to the page.
//
// AddLayer panics if the document has already been saved.
func (p *Page) AddLayer(name string) LayerIndex {
	if p.sealed {
		panic(ErrConsumed)
	}
	p.layers = append(p.layers, &Layer{Name: name})
	return LayerIndex(len(p.layers) - 1)
}

// Layer returns the layer with index i.
func (p *Page) Layer(i LayerIndex) (*Layer, error) {
	if i < 0 || int(i) >= len(p.layers) {
		return nil, &IndexError{Level: LayerLevel, Index: int(i)}
	}
	return p.layers[i], nil
}

// NumLayers returns the number of layers on the page.
func (p *Page) NumLayers() int {
	return len(p.layers)
}

// AddFont parses a font and registers it with the document the page
// belongs to.
func (p *Page) AddFont(data []byte) (FontHandle, error) {
	d, err := p.document()
	if err != nil {
		return 0, err
	}
	return d.AddFont(data)
}

// AddContent registers a content object with the document the page
// belongs to.
func (p *Page) AddContent(c Content) (ContentHandle, error) {
	d, err := p.document()
	if err != nil {
		return 0, err
	}
	return d.AddContent(c)
}

func (p *Page) document() (*Document, error) {
	d := p.doc.Value()
	if d == nil || d.consumed {
		return nil, ErrConsumed
	}
	return d, nil
}

func (p *Page) seal() {
	p.sealed = true
	for _, l := range p.layers {
		l.sealed = true
	}
}
