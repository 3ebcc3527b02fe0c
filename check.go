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
	"fmt"

	"seehuhn.de/go/pdfdoc/font"
	"seehuhn.de/go/pdfdoc/metadata"
	"seehuhn.de/go/pdfdoc/pdf"
)

// CheckForErrors checks the document against its conformance level.  If
// problems are found, the error is a [*ConformanceError] which lists all
// of them.  The document is not modified.
func (d *Document) CheckForErrors() error {
	if d.consumed {
		return ErrConsumed
	}
	c := d.meta.Conformance
	violations := metadata.Check(&d.meta)

	if c != metadata.None {
		for h, entry := range d.contents {
			loc := fmt.Sprintf("content %d", h)
			switch content := entry.content.(type) {
			case FontContent:
				f := content.Font
				if c.RequiresEmbeddedFonts() && !f.IsEmbedded() {
					violations = append(violations, metadata.Violation{
						Code:        metadata.CodeFontNotEmbedded,
						Description: fmt.Sprintf("font %q is not embedded", f.Name()),
						Location:    loc,
					})
				}
				if f.Kind() == font.KindOpenType && c.Version() < pdf.V1_6 {
					violations = append(violations, metadata.Violation{
						Code:        metadata.CodeFontFormat,
						Description: fmt.Sprintf("OpenType font %q requires PDF 1.6", f.Name()),
						Location:    loc,
					})
				}
			case ImageContent:
				if !c.AllowsTransparency() && content.Image.HasAlpha() {
					violations = append(violations, metadata.Violation{
						Code:        metadata.CodeTransparency,
						Description: "image has transparent pixels",
						Location:    loc,
					})
				}
			}
		}

		if !c.AllowsOptionalContent() {
			for i, p := range d.pages {
				if len(p.layers) > 1 {
					violations = append(violations, metadata.Violation{
						Code:        metadata.CodeOptionalContent,
						Description: fmt.Sprintf("%d layers will be merged into one", len(p.layers)),
						Location:    fmt.Sprintf("page %d", i),
					})
				}
			}
		}
	}

	if len(violations) == 0 {
		return nil
	}
	return &ConformanceError{Conformance: c, Violations: violations}
}

// RepairErrors fixes the problems found by [Document.CheckForErrors] which
// can be fixed without user input: an empty document ID is replaced by a
// random one, and a modification date before the creation date is set to
// the creation date.  The remaining problems are returned as by
// CheckForErrors.
func (d *Document) RepairErrors() error {
	if d.consumed {
		return ErrConsumed
	}
	md := &d.meta
	if md.DocumentID == "" {
		md.DocumentID = randomID()
	}
	if !md.CreationDate.IsZero() && md.ModificationDate.Before(md.CreationDate) {
		md.ModificationDate = md.CreationDate
	}
	return d.CheckForErrors()
}
