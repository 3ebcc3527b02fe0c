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

package metadata

import "seehuhn.de/go/xmp"

// basicSchema is the XMP basic namespace.
type basicSchema struct {
	_            xmp.Namespace `xmp:"http://ns.adobe.com/xap/1.0/"`
	_            xmp.Prefix    `xmp:"xmp"`
	CreateDate   xmp.Date
	ModifyDate   xmp.Date
	MetadataDate xmp.Date
	CreatorTool  xmp.AgentName
}

// pdfSchema is the XMP namespace for PDF metadata.
// See https://developer.adobe.com/xmp/docs/XMPNamespaces/pdf/
type pdfSchema struct {
	_          xmp.Namespace `xmp:"http://ns.adobe.com/pdf/1.3/"`
	_          xmp.Prefix    `xmp:"pdf"`
	Keywords   xmp.Text
	PDFVersion xmp.Text
	Producer   xmp.AgentName
	Trapped    xmp.Text
}

// mediaManagementSchema holds the document and instance identifiers.
type mediaManagementSchema struct {
	_              xmp.Namespace `xmp:"http://ns.adobe.com/xap/1.0/mm/"`
	_              xmp.Prefix    `xmp:"xmpMM"`
	DocumentID     xmp.Text
	InstanceID     xmp.Text
	VersionID      xmp.Text
	RenditionClass xmp.Text
}

// pdfaIDSchema identifies the PDF/A part and conformance level.
type pdfaIDSchema struct {
	_           xmp.Namespace `xmp:"http://www.aiim.org/pdfa/ns/id/"`
	_           xmp.Prefix    `xmp:"pdfaid"`
	Part        xmp.Text      `xmp:"part"`
	Conformance xmp.Text      `xmp:"conformance"`
}

// pdfxIDSchema identifies the PDF/X version.
type pdfxIDSchema struct {
	_               xmp.Namespace `xmp:"http://www.npes.org/pdfx/ns/id/"`
	_               xmp.Prefix    `xmp:"pdfxid"`
	GTS_PDFXVersion xmp.Text
}
