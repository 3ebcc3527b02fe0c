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

// Package metadata translates document metadata into the PDF structures
// which describe a document: the XMP metadata stream, the document
// information dictionary and the output intent with its ICC profile.
package metadata

import (
	"bytes"
	"strconv"
	"time"

	"golang.org/x/text/language"
	"seehuhn.de/go/xmp"

	"seehuhn.de/go/pdfdoc/pdf"
)

// Metadata describes a document as a whole.
type Metadata struct {
	Title    string
	Author   string
	Creator  string // the application which created the document content
	Producer string // the application which produced the PDF file
	Subject  string
	Keywords string

	// Language is the natural language of the document, or language.Und.
	Language language.Tag

	// DocumentID identifies the document across all of its revisions.
	DocumentID string

	// Version is the revision number of the document.
	Version int

	// Trapping indicates whether the document has been trapped.
	Trapping bool

	Conformance Conformance

	CreationDate     time.Time
	ModificationDate time.Time

	// ICCProfile, if set, is embedded as the destination profile of the
	// document's output intent.
	ICCProfile *ICCProfile
}

// Compiled holds the PDF objects generated from a [Metadata] value.
type Compiled struct {
	// XMP is the uncompressed XMP metadata stream.
	XMP *pdf.Stream

	// Info is the document information dictionary.
	Info pdf.Dict

	// ICC is the uncompressed ICC profile stream, or nil.
	ICC *pdf.Stream

	// OutputIntent is the output intent dictionary, or nil.  The
	// "DestOutputProfile" entry is filled in by [Compiled.Embed].
	OutputIntent pdf.Dict
}

// Compile generates the XMP metadata stream, the document information
// dictionary and, if an ICC profile is set, the ICC profile stream and
// output intent dictionary.  Compile does not validate md; use
// [Check] for this.
func Compile(md *Metadata, instanceID string) *Compiled {
	res := &Compiled{
		XMP:  &pdf.Stream{Dict: pdf.Dict{"Type": pdf.Name("Metadata"), "Subtype": pdf.Name("XML")}},
		Info: compileInfo(md),
	}

	buf := &bytes.Buffer{}
	err := compileXMP(md, instanceID).Write(buf, &xmp.PacketOptions{Pretty: true})
	if err == nil {
		res.XMP.Data = buf.Bytes()
	}

	if p := md.ICCProfile; p != nil {
		res.ICC = p.stream()
		res.OutputIntent = pdf.Dict{
			"Type":                      pdf.Name("OutputIntent"),
			"S":                         md.Conformance.outputIntentSubtype(),
			"OutputCondition":           pdf.TextString(p.Condition),
			"OutputConditionIdentifier": pdf.TextString(p.Identifier),
			"RegistryName":              pdf.String("http://www.color.org"),
			"Info":                      pdf.TextString(p.Info),
		}
	}

	return res
}

// Embed adds the compiled objects to f.  If compress is set, the ICC
// profile stream is compressed; the XMP stream is always stored
// uncompressed, so that it can be found by tools which do not understand
// PDF.  The returned output intent is nil if no ICC profile is set.
func (c *Compiled) Embed(f *pdf.File, compress bool) (xmpRef, infoRef pdf.Reference, outputIntent pdf.Dict, err error) {
	if len(c.XMP.Data) > 0 {
		xmpRef = f.Add(c.XMP)
	}
	infoRef = f.Add(c.Info)

	if c.ICC != nil {
		stm, err := pdf.FlateStream(c.ICC.Dict, c.ICC.Data, compress)
		if err != nil {
			return 0, 0, nil, err
		}
		iccRef := f.Add(stm)
		outputIntent = c.OutputIntent
		outputIntent["DestOutputProfile"] = iccRef
	}
	return xmpRef, infoRef, outputIntent, nil
}

func compileInfo(md *Metadata) pdf.Dict {
	info := pdf.Dict{
		"Title": pdf.TextString(md.Title),
	}
	setText := func(key pdf.Name, val string) {
		if val != "" {
			info[key] = pdf.TextString(val)
		}
	}
	setText("Author", md.Author)
	setText("Creator", md.Creator)
	setText("Producer", md.Producer)
	setText("Subject", md.Subject)
	setText("Keywords", md.Keywords)

	if !md.CreationDate.IsZero() {
		info["CreationDate"] = pdf.Date(md.CreationDate)
	}
	if !md.ModificationDate.IsZero() {
		info["ModDate"] = pdf.Date(md.ModificationDate)
	}
	if md.Trapping {
		info["Trapped"] = pdf.Name("True")
	} else {
		info["Trapped"] = pdf.Name("False")
	}
	if md.Conformance.IsPDFX() {
		info["GTS_PDFXVersion"] = pdf.String(md.Conformance.String())
	}
	return info
}

// xDefault is the language of the default entry of XMP language
// alternatives.
var xDefault = language.MustParse("x-default")

func compileXMP(md *Metadata, instanceID string) *xmp.Packet {
	packet := xmp.NewPacket()

	dc := &xmp.DublinCore{}
	dc.Title.Set(xDefault, md.Title)
	if md.Language != language.Und {
		dc.Title.Set(md.Language, md.Title)
	}
	if md.Author != "" {
		dc.Creator.Append(xmp.NewProperName(md.Author))
	}
	if md.Subject != "" {
		dc.Description.Set(xDefault, md.Subject)
		if md.Language != language.Und {
			dc.Description.Set(md.Language, md.Subject)
		}
	}

	basic := &basicSchema{}
	if !md.CreationDate.IsZero() {
		basic.CreateDate = xmp.NewDate(md.CreationDate)
	}
	if !md.ModificationDate.IsZero() {
		basic.ModifyDate = xmp.NewDate(md.ModificationDate)
		basic.MetadataDate = xmp.NewDate(md.ModificationDate)
	}
	if md.Creator != "" {
		basic.CreatorTool = xmp.NewAgentName(md.Creator)
	}

	pdfInfo := &pdfSchema{}
	if md.Keywords != "" {
		pdfInfo.Keywords = xmp.NewText(md.Keywords)
	}
	if md.Producer != "" {
		pdfInfo.Producer = xmp.NewAgentName(md.Producer)
	}
	pdfInfo.PDFVersion = xmp.NewText(md.Conformance.Version().String())
	if md.Trapping {
		pdfInfo.Trapped = xmp.NewText("True")
	} else {
		pdfInfo.Trapped = xmp.NewText("False")
	}

	mm := &mediaManagementSchema{
		DocumentID:     xmp.NewText(md.DocumentID),
		InstanceID:     xmp.NewText(instanceID),
		VersionID:      xmp.NewText(strconv.Itoa(md.Version)),
		RenditionClass: xmp.NewText("default"),
	}

	// Errors from Set indicate malformed namespace structs, which are
	// fixed at compile time.
	_ = packet.Set(dc, basic, pdfInfo, mm)

	switch {
	case md.Conformance.IsPDFA():
		_ = packet.Set(&pdfaIDSchema{
			Part:        xmp.NewText(md.Conformance.part()),
			Conformance: xmp.NewText("B"),
		})
	case md.Conformance.IsPDFX():
		_ = packet.Set(&pdfxIDSchema{
			GTS_PDFXVersion: xmp.NewText(md.Conformance.String()),
		})
	}

	return packet
}
