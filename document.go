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

// Package pdfdoc builds layered PDF documents in memory.
//
// A [Document] owns a list of pages, each page owns a list of layers, and
// each layer owns a list of markers.  These objects are addressed by
// integer handles.  Fonts, images and vector graphics are registered once
// with the document and can then be placed on any layer.  When the
// document is complete, [Document.Save] compiles the whole tree into a PDF
// file.  Saving consumes the document.
package pdfdoc

import (
	"crypto/rand"
	"encoding/hex"
	"time"
	"weak"

	"golang.org/x/text/language"

	"seehuhn.de/go/pdfdoc/metadata"
	"seehuhn.de/go/pdfdoc/pdf"
)

// Producer is the default value of the document's Producer field.
const Producer = "seehuhn.de/go/pdfdoc"

// Document is a PDF document under construction.
type Document struct {
	pages    []*Page
	contents []registryEntry
	meta     metadata.Metadata

	// file receives compiled content objects as they are added.
	file *pdf.File

	consumed bool
}

// New creates a new document with one page of the given size.  The page
// has a single layer with the given name.
func New(title string, width, height Mm, layerName string) (*Document, PageIndex, LayerIndex) {
	now := time.Now()
	d := &Document{
		meta: metadata.Metadata{
			Title:            title,
			Producer:         Producer,
			Language:         language.Und,
			DocumentID:       randomID(),
			Version:          1,
			Conformance:      metadata.None,
			CreationDate:     now,
			ModificationDate: now,
		},
		file: pdf.NewFile(pdf.V1_7),
	}
	page, layer := d.AddPage(width, height, layerName)
	return d, page, layer
}

// AddPage appends a new page with a single layer to the document.
//
// AddPage panics if the document has already been saved.
func (d *Document) AddPage(width, height Mm, layerName string) (PageIndex, LayerIndex) {
	if d.consumed {
		panic(ErrConsumed)
	}
	p := &Page{
		width:  width.Pt(),
		height: height.Pt(),
		doc:    weak.Make(d),
	}
	layer := p.AddLayer(layerName)
	d.pages = append(d.pages, p)
	return PageIndex(len(d.pages) - 1), layer
}

// Page returns the page with index i.
func (d *Document) Page(i PageIndex) (*Page, error) {
	if i < 0 || int(i) >= len(d.pages) {
		return nil, &IndexError{Level: PageLevel, Index: int(i)}
	}
	return d.pages[i], nil
}

// NumPages returns the number of pages in the document.
func (d *Document) NumPages() int {
	return len(d.pages)
}

// Layer returns layer l of page p.
func (d *Document) Layer(p PageIndex, l LayerIndex) (*Layer, error) {
	page, err := d.Page(p)
	if err != nil {
		return nil, err
	}
	return page.Layer(l)
}

// Marker returns marker m of layer l on page p.
func (d *Document) Marker(p PageIndex, l LayerIndex, m MarkerIndex) (Marker, error) {
	layer, err := d.Layer(p, l)
	if err != nil {
		return Marker{}, err
	}
	return layer.Marker(m)
}

// Metadata returns a copy of the document metadata.
func (d *Document) Metadata() metadata.Metadata {
	return d.meta
}

// DocumentID returns the identifier which is shared by all revisions of
// the document.
func (d *Document) DocumentID() string {
	return d.meta.DocumentID
}

// The following methods set document metadata.  Each returns the document,
// to allow chaining.  They panic if the document has already been saved.

// WithDocumentID replaces the randomly generated document ID.
func (d *Document) WithDocumentID(id string) *Document {
	d.mustBeLive()
	d.meta.DocumentID = id
	return d
}

// WithConformance sets the conformance level.  This determines the PDF
// version of the output and the checks made by [Document.CheckForErrors].
func (d *Document) WithConformance(c metadata.Conformance) *Document {
	d.mustBeLive()
	d.meta.Conformance = c
	return d
}

// WithTrapping records whether the document has been trapped.
func (d *Document) WithTrapping(trapped bool) *Document {
	d.mustBeLive()
	d.meta.Trapping = trapped
	return d
}

// WithDocumentVersion sets the revision number of the document.
func (d *Document) WithDocumentVersion(version int) *Document {
	d.mustBeLive()
	d.meta.Version = version
	return d
}

// WithCreationDate sets the creation date.
func (d *Document) WithCreationDate(t time.Time) *Document {
	d.mustBeLive()
	d.meta.CreationDate = t
	return d
}

// WithModificationDate sets the modification date.
func (d *Document) WithModificationDate(t time.Time) *Document {
	d.mustBeLive()
	d.meta.ModificationDate = t
	return d
}

// WithCreator sets the name of the application which created the content.
func (d *Document) WithCreator(creator string) *Document {
	d.mustBeLive()
	d.meta.Creator = creator
	return d
}

// WithProducer sets the name of the application which wrote the PDF file.
func (d *Document) WithProducer(producer string) *Document {
	d.mustBeLive()
	d.meta.Producer = producer
	return d
}

// WithAuthor sets the author.
func (d *Document) WithAuthor(author string) *Document {
	d.mustBeLive()
	d.meta.Author = author
	return d
}

// WithSubject sets the subject.
func (d *Document) WithSubject(subject string) *Document {
	d.mustBeLive()
	d.meta.Subject = subject
	return d
}

// WithKeywords sets the keywords.
func (d *Document) WithKeywords(keywords string) *Document {
	d.mustBeLive()
	d.meta.Keywords = keywords
	return d
}

// WithLanguage sets the natural language of the document.
func (d *Document) WithLanguage(tag language.Tag) *Document {
	d.mustBeLive()
	d.meta.Language = tag
	return d
}

// WithICCProfile sets the ICC profile of the output intent.
func (d *Document) WithICCProfile(profile *metadata.ICCProfile) *Document {
	d.mustBeLive()
	d.meta.ICCProfile = profile
	return d
}

func (d *Document) mustBeLive() {
	if d.consumed {
		panic(ErrConsumed)
	}
}

// consume marks the document as saved.  Pages and layers obtained before
// are sealed, so that later changes cannot go unnoticed.
func (d *Document) consume() {
	d.consumed = true
	for _, p := range d.pages {
		p.seal()
	}
}

// randomID returns 32 random hexadecimal digits.
func randomID() string {
	var buf [16]byte
	_, err := rand.Read(buf[:])
	if err != nil {
		panic(err) // crypto/rand never fails on supported platforms
	}
	return hex.EncodeToString(buf[:])
}
