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
	"bytes"
	"fmt"
	"io"
	"os"

	"golang.org/x/text/language"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/pdfdoc/font"
	"seehuhn.de/go/pdfdoc/graphics"
	"seehuhn.de/go/pdfdoc/metadata"
	"seehuhn.de/go/pdfdoc/pdf"
)

// SaveOptions control how a document is written.
type SaveOptions struct {
	// HumanReadable disables stream compression.
	HumanReadable bool

	// Encryption, if set, protects the file using AES-256 encryption.
	// Encrypted files use PDF version 2.0.  Encryption is not allowed
	// by the PDF/A and PDF/X conformance levels.
	Encryption *pdf.Encryption
}

// imageResolution is the resolution, in pixels per inch, at which images
// are drawn if no size is given.
const imageResolution = 300

// SaveFile writes the document to the named file.  See [Document.Save].
func (d *Document) SaveFile(name string, opt *SaveOptions) error {
	fd, err := os.Create(name)
	if err != nil {
		return &IOError{Err: err}
	}
	err = d.Save(fd, opt)
	closeErr := fd.Close()
	if err == nil && closeErr != nil {
		err = &IOError{Err: closeErr}
	}
	return err
}

// Save compiles the document into a PDF file and writes it to w.
//
// Save consumes the document, whether or not writing succeeds.  Afterwards
// all fallible methods return [ErrConsumed].  Failures of w are reported
// as [*IOError].
//
// Save does not check the document against its conformance level.  Use
// [Document.CheckForErrors] for this.  The only exception is encryption,
// which is rejected before the document is consumed if the conformance
// level does not allow it.
func (d *Document) Save(w io.Writer, opt *SaveOptions) error {
	if d.consumed {
		return ErrConsumed
	}
	if opt == nil {
		opt = &SaveOptions{}
	}
	c := d.meta.Conformance
	if opt.Encryption != nil && !c.AllowsEncryption() {
		return &ConformanceError{
			Conformance: c,
			Violations: []metadata.Violation{{
				Code:        metadata.CodeEncryption,
				Description: "encryption is not allowed",
			}},
		}
	}
	d.consume()

	out := d.file
	out.Version = c.Version()
	if opt.Encryption != nil {
		out.Version = pdf.V2_0
	}

	// Allocation: the page tree root must exist before the pages refer
	// to it.
	pagesRef := out.NewObjectID()
	instanceID := randomID()
	compiled := metadata.Compile(&d.meta, instanceID)
	xmpRef, infoRef, outputIntent, err := compiled.Embed(out, false)
	if err != nil {
		return err
	}

	// Construction
	useOC := c.AllowsOptionalContent()
	var ocgs pdf.Array
	kids := make(pdf.Array, 0, len(d.pages))
	for i, p := range d.pages {
		fonts := pdf.Dict{}
		xObjects := pdf.Dict{}
		properties := pdf.Dict{}
		contents := make(pdf.Array, 0, len(p.layers))
		for j, l := range p.layers {
			var ocName pdf.Name
			if useOC {
				ocg := out.Add(pdf.Dict{
					"Type": pdf.Name("OCG"),
					"Name": pdf.TextString(l.Name),
				})
				ocgs = append(ocgs, ocg)
				ocName = pdf.Name(fmt.Sprintf("L%d", j+1))
				properties[ocName] = ocg
			}

			data, err := d.layerContent(l, ocName, fonts, xObjects)
			if err != nil {
				return fmt.Errorf("page %d, layer %d: %w", i, j, err)
			}
			contents = append(contents, out.Add(&pdf.Stream{Dict: pdf.Dict{}, Data: data}))
		}

		resources := pdf.Dict{}
		if len(fonts) > 0 {
			resources["Font"] = fonts
		}
		if len(xObjects) > 0 {
			resources["XObject"] = xObjects
		}
		if len(properties) > 0 {
			resources["Properties"] = properties
		}

		box := pdf.Array{
			pdf.Integer(0), pdf.Integer(0),
			pdf.Number(p.width), pdf.Number(p.height),
		}
		pageRef := out.Add(pdf.Dict{
			"Type":      pdf.Name("Page"),
			"Parent":    pagesRef,
			"MediaBox":  box,
			"TrimBox":   box,
			"CropBox":   box,
			"Rotate":    pdf.Integer(0),
			"Resources": resources,
			"Contents":  contents,
		})
		kids = append(kids, pageRef)
	}
	err = out.Set(pagesRef, pdf.Dict{
		"Type":  pdf.Name("Pages"),
		"Kids":  kids,
		"Count": pdf.Integer(len(kids)),
	})
	if err != nil {
		return err
	}

	// Finalization
	catalog := pdf.Dict{
		"Type":       pdf.Name("Catalog"),
		"PageLayout": pdf.Name("OneColumn"),
		"PageMode":   pdf.Name("UseNone"),
		"Pages":      pagesRef,
	}
	if xmpRef != 0 {
		catalog["Metadata"] = xmpRef
	}
	if outputIntent != nil {
		catalog["OutputIntents"] = pdf.Array{outputIntent}
	}
	if len(ocgs) > 0 {
		catalog["OCProperties"] = pdf.Dict{
			"OCGs": ocgs,
			"D": pdf.Dict{
				"Order": ocgs,
				"ON":    ocgs,
			},
		}
	}
	if d.meta.Language != language.Und {
		catalog["Lang"] = pdf.TextString(d.meta.Language.String())
	}
	root := out.Add(catalog)

	out.Trailer["Root"] = root
	out.Trailer["Info"] = infoRef
	out.Trailer["ID"] = pdf.Array{
		pdf.String(d.meta.DocumentID),
		pdf.String(instanceID),
	}

	out.DeleteZeroLengthStreams()
	out.Prune()

	sink := &errWriter{w: w}
	_, err = out.Save(sink, &pdf.SaveOptions{
		Encryption: opt.Encryption,
		Compress:   !opt.HumanReadable,
	})
	if sink.err != nil {
		return &IOError{Err: sink.err}
	}
	return err
}

// layerContent generates the content stream for one layer.  Resources
// used by the layer are added to fonts and xObjects.  If ocName is not
// empty, the content is marked as belonging to this optional content
// group.  Layers without content give an empty stream.
func (d *Document) layerContent(l *Layer, ocName pdf.Name, fonts, xObjects pdf.Dict) ([]byte, error) {
	if len(l.ops) == 0 {
		return nil, nil
	}

	buf := &bytes.Buffer{}
	w := graphics.NewWriter(buf)
	if ocName != "" {
		w.MarkedContentStart("OC", ocName)
	}

	for _, op := range l.ops {
		switch op := op.(type) {
		case *textOp:
			entry := d.contents[op.font]
			name := pdf.Name(fmt.Sprintf("F%d", op.font))
			fonts[name] = entry.ref

			w.TextStart()
			w.TextSetFont(name, op.size)
			w.TextFirstLine(float64(op.at.X), float64(op.at.Y))
			w.TextShowRaw(pdf.String(font.Encode(op.text)))
			w.TextEnd()

		case *contentOp:
			entry := d.contents[op.content]
			name := pdf.Name(fmt.Sprintf("X%d", op.content))
			xObjects[name] = entry.ref

			w.PushGraphicsState()
			w.Transform(placement(entry.content, op))
			w.DrawXObject(name)
			w.PopGraphicsState()

		case *pathOp:
			err := op.path.Draw(w)
			if err != nil {
				return nil, err
			}
		}
	}

	if ocName != "" {
		w.MarkedContentEnd()
	}
	err := w.Close()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// placement returns the transformation which maps the content to its
// place on the page.
func placement(c Content, op *contentOp) matrix.Matrix {
	at := op.at.Vec()
	switch c := c.(type) {
	case ImageContent:
		return imagePlacement(at, op, c.Image.Width(), c.Image.Height())

	case GraphicContent:
		return formPlacement(at, op, c.Form.Bounds())

	case RawContent:
		stm := c.Object.(*pdf.Stream)
		if rawSubtype(c) == "Image" {
			w, _ := stm.Dict["Width"].(pdf.Integer)
			h, _ := stm.Dict["Height"].(pdf.Integer)
			return imagePlacement(at, op, int(w), int(h))
		}
		if bbox, ok := asRect(stm.Dict["BBox"]); ok {
			return formPlacement(at, op, bbox)
		}
		return matrix.Translate(at.X, at.Y)

	default:
		return matrix.Translate(at.X, at.Y)
	}
}

// imagePlacement maps the unit square, which images occupy in image space,
// to the page.
func imagePlacement(at vec.Vec2, op *contentOp, pixW, pixH int) matrix.Matrix {
	natW := float64(pixW) * 72 / imageResolution
	natH := float64(pixH) * 72 / imageResolution
	w := pick(float64(op.width), natW)
	h := pick(float64(op.height), natH)
	return matrix.Matrix{w, 0, 0, h, at.X, at.Y}
}

// formPlacement maps the bounding box of a form to the page.
func formPlacement(at vec.Vec2, op *contentOp, bbox rect.Rect) matrix.Matrix {
	sx, sy := 1.0, 1.0
	if fw := bbox.URx - bbox.LLx; op.width > 0 && fw > 0 {
		sx = float64(op.width) / fw
	}
	if fh := bbox.URy - bbox.LLy; op.height > 0 && fh > 0 {
		sy = float64(op.height) / fh
	}
	return matrix.Matrix{sx, 0, 0, sy, at.X - sx*bbox.LLx, at.Y - sy*bbox.LLy}
}

// asRect converts a PDF rectangle array to a rect.Rect.
func asRect(obj pdf.Object) (rect.Rect, bool) {
	a, ok := obj.(pdf.Array)
	if !ok || len(a) != 4 {
		return rect.Rect{}, false
	}
	var x [4]float64
	for i, elem := range a {
		switch v := elem.(type) {
		case pdf.Integer:
			x[i] = float64(v)
		case pdf.Real:
			x[i] = float64(v)
		case pdf.Number:
			x[i] = float64(v)
		default:
			return rect.Rect{}, false
		}
	}
	return rect.Rect{
		LLx: min(x[0], x[2]), LLy: min(x[1], x[3]),
		URx: max(x[0], x[2]), URy: max(x[1], x[3]),
	}, true
}

func pick(size, natural float64) float64 {
	if size > 0 {
		return size
	}
	return natural
}

// errWriter records the first error returned by the underlying writer.
type errWriter struct {
	w   io.Writer
	err error
}

func (w *errWriter) Write(p []byte) (int, error) {
	if w.err != nil {
		return 0, w.err
	}
	n, err := w.w.Write(p)
	if err != nil {
		w.err = err
	}
	return n, err
}
