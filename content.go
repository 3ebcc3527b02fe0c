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

	"seehuhn.de/go/pdfdoc/font"
	"seehuhn.de/go/pdfdoc/graphics"
	"seehuhn.de/go/pdfdoc/pdf"
	"seehuhn.de/go/pdfdoc/raster"
)

// Content is an object which is stored once in the PDF file and can be
// referenced from any number of pages.  The set of content types is
// fixed: [FontContent], [ImageContent], [GraphicContent] and [RawContent].
type Content interface {
	isContent()
}

// FontContent is a font, used to show text.
type FontContent struct {
	Font *font.Font
}

// ImageContent is a raster image, embedded as an Image XObject.
type ImageContent struct {
	Image *raster.Image
}

// GraphicContent is a vector graphic, embedded as a Form XObject.
type GraphicContent struct {
	Form *graphics.Form
}

// RawContent is an arbitrary PDF object, stored as an indirect object.
// If the object is an XObject stream (Subtype Image or Form), it can be
// drawn using [Document.UseContent].  Other raw objects are reached through
// [Document.Reference].
type RawContent struct {
	Object pdf.Object
}

func (FontContent) isContent()    {}
func (ImageContent) isContent()   {}
func (GraphicContent) isContent() {}
func (RawContent) isContent()     {}

type registryEntry struct {
	content Content
	ref     pdf.Reference
}

// embed compiles c into the PDF file.  Streams are stored uncompressed;
// compression is applied when the file is written.
func embed(out *pdf.File, c Content) (pdf.Reference, error) {
	switch c := c.(type) {
	case FontContent:
		if c.Font == nil {
			return 0, errMissingContent
		}
		return c.Font.Embed(out, false)
	case ImageContent:
		if c.Image == nil {
			return 0, errMissingContent
		}
		return c.Image.Embed(out, false)
	case GraphicContent:
		if c.Form == nil {
			return 0, errMissingContent
		}
		return c.Form.Embed(out, false)
	case RawContent:
		if c.Object == nil {
			return 0, errMissingContent
		}
		return out.Add(c.Object), nil
	default:
		return 0, fmt.Errorf("unsupported content type %T", c)
	}
}

// AddContent compiles c into the document and returns a handle which can
// be used to place the content on pages.
func (d *Document) AddContent(c Content) (ContentHandle, error) {
	if d.consumed {
		return 0, ErrConsumed
	}
	ref, err := embed(d.file, c)
	if err != nil {
		return 0, err
	}
	d.contents = append(d.contents, registryEntry{content: c, ref: ref})
	return ContentHandle(len(d.contents) - 1), nil
}

// Content returns the content object registered under h.
func (d *Document) Content(h ContentHandle) (Content, error) {
	if h < 0 || int(h) >= len(d.contents) {
		return nil, &IndexError{Level: ContentLevel, Index: int(h)}
	}
	return d.contents[h].content, nil
}

// Reference returns the reference of the indirect object which holds the
// content registered under h.  The reference can be used inside other
// raw content, to link objects together.
func (d *Document) Reference(h ContentHandle) (pdf.Reference, error) {
	if d.consumed {
		return 0, ErrConsumed
	}
	if h < 0 || int(h) >= len(d.contents) {
		return 0, &IndexError{Level: ContentLevel, Index: int(h)}
	}
	return d.contents[h].ref, nil
}

// AddFont parses a TrueType, OpenType or Type 1 font and registers it.
// If the data cannot be parsed, the error is a [*FontParseError].
func (d *Document) AddFont(data []byte) (FontHandle, error) {
	if d.consumed {
		return 0, ErrConsumed
	}
	f, err := font.Parse(data)
	if err != nil {
		return 0, err
	}
	h, err := d.AddContent(FontContent{Font: f})
	return FontHandle(h), err
}

// AddStandardFont registers one of the 14 standard PDF fonts.  Standard
// fonts are not embedded, which some conformance levels forbid.
func (d *Document) AddStandardFont(name font.StandardName) (FontHandle, error) {
	f := font.Standard(name)
	if f == nil {
		return 0, fmt.Errorf("%q is not a standard font", name)
	}
	h, err := d.AddContent(FontContent{Font: f})
	return FontHandle(h), err
}

// AddImage decodes a PNG, JPEG, GIF, BMP, TIFF or WebP image and
// registers it.
func (d *Document) AddImage(data []byte) (ContentHandle, error) {
	if d.consumed {
		return 0, ErrConsumed
	}
	img, err := raster.Decode(data)
	if err != nil {
		return 0, err
	}
	return d.AddContent(ImageContent{Image: img})
}

// UseText shows text on a layer, starting at the given marker.  Text is
// encoded using WinAnsiEncoding.
func (d *Document) UseText(at MarkerRef, f FontHandle, size float64, text string) error {
	if d.consumed {
		return ErrConsumed
	}
	l, m, err := d.resolveMarker(at)
	if err != nil {
		return err
	}
	c, err := d.Content(ContentHandle(f))
	if err != nil {
		return err
	}
	if _, isFont := c.(FontContent); !isFont {
		return fmt.Errorf("content %d: %w", f, errNotAFont)
	}
	l.ops = append(l.ops, &textOp{at: m, font: ContentHandle(f), size: size, text: text})
	return nil
}

// UseContent draws an image, a vector graphic or a raw XObject on a layer,
// with the bottom-left corner at the given marker.  If width or height is zero,
// the natural size of the content is used for that dimension.
func (d *Document) UseContent(at MarkerRef, h ContentHandle, width, height Mm) error {
	if d.consumed {
		return ErrConsumed
	}
	l, m, err := d.resolveMarker(at)
	if err != nil {
		return err
	}
	c, err := d.Content(h)
	if err != nil {
		return err
	}
	switch c := c.(type) {
	case ImageContent, GraphicContent:
	case RawContent:
		if rawSubtype(c) == "" {
			return fmt.Errorf("content %d: %w", h, errNotDrawable)
		}
	default:
		return fmt.Errorf("content %d: %w", h, errNotDrawable)
	}
	if width < 0 || height < 0 {
		return fmt.Errorf("invalid size %gx%g mm", width, height)
	}
	l.ops = append(l.ops, &contentOp{
		at:      m,
		content: h,
		width:   width.Pt(),
		height:  height.Pt(),
	})
	return nil
}

// UsePath draws a vector path on a layer.  Path coordinates are in PDF
// points, relative to the bottom-left corner of the page.  The layer
// stores a copy of p.
func (d *Document) UsePath(at LayerRef, p *graphics.Path) error {
	if d.consumed {
		return ErrConsumed
	}
	l, err := d.Layer(at.Page, at.Layer)
	if err != nil {
		return err
	}
	if p == nil || p.IsEmpty() {
		return errEmptyPath
	}
	l.ops = append(l.ops, &pathOp{path: p.Clone()})
	return nil
}

// rawSubtype returns the XObject subtype of c, or the empty name if c
// cannot be drawn.
func rawSubtype(c RawContent) pdf.Name {
	stm, ok := c.Object.(*pdf.Stream)
	if !ok {
		return ""
	}
	if tp, ok := stm.Dict["Type"]; ok && tp != pdf.Name("XObject") {
		return ""
	}
	switch sub := stm.Dict["Subtype"]; sub {
	case pdf.Name("Image"), pdf.Name("Form"):
		return sub.(pdf.Name)
	}
	return ""
}

func (d *Document) resolveMarker(at MarkerRef) (*Layer, Marker, error) {
	l, err := d.Layer(at.Page, at.Layer)
	if err != nil {
		return nil, Marker{}, err
	}
	m, err := l.Marker(at.Marker)
	if err != nil {
		return nil, Marker{}, err
	}
	return l, m, nil
}

var (
	errMissingContent = errors.New("content object is nil")
	errNotAFont       = errors.New("not a font")
	errNotDrawable    = errors.New("content cannot be drawn")
	errEmptyPath      = errors.New("empty path")
)
