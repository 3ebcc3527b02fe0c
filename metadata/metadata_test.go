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

import (
	"bytes"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/text/language"
	"seehuhn.de/go/icc"
	"seehuhn.de/go/xmp"

	"seehuhn.de/go/pdfdoc/pdf"
)

func testMetadata() *Metadata {
	created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	return &Metadata{
		Title:            "Invoice",
		Author:           "Jane Doe",
		Creator:          "pdfdoc test",
		Producer:         "seehuhn.de/go/pdfdoc",
		Subject:          "an invoice",
		Keywords:         "invoice, test",
		DocumentID:       "0123456789abcdef0123456789abcdef",
		Version:          1,
		Conformance:      PDFX3,
		CreationDate:     created,
		ModificationDate: created.Add(time.Hour),
	}
}

func TestInfo(t *testing.T) {
	md := testMetadata()
	c := Compile(md, "instance")

	want := pdf.Dict{
		"Title":           pdf.String("Invoice"),
		"Author":          pdf.String("Jane Doe"),
		"Creator":         pdf.String("pdfdoc test"),
		"Producer":        pdf.String("seehuhn.de/go/pdfdoc"),
		"Subject":         pdf.String("an invoice"),
		"Keywords":        pdf.String("invoice, test"),
		"CreationDate":    pdf.String("D:20240301120000+00'00"),
		"ModDate":         pdf.String("D:20240301130000+00'00"),
		"Trapped":         pdf.Name("False"),
		"GTS_PDFXVersion": pdf.String("PDF/X-3:2003"),
	}
	if d := cmp.Diff(c.Info, want); d != "" {
		t.Errorf("info dict (-got +want):\n%s", d)
	}
}

func TestInfoEmptyTitle(t *testing.T) {
	md := &Metadata{Trapping: true}
	c := Compile(md, "x")
	if title, ok := c.Info["Title"].(pdf.String); !ok || len(title) != 0 {
		t.Errorf("wrong title %v", c.Info["Title"])
	}
	if c.Info["Trapped"] != pdf.Name("True") {
		t.Errorf("wrong trapping %v", c.Info["Trapped"])
	}
	if _, ok := c.Info["Author"]; ok {
		t.Error("empty author written")
	}
	if c.ICC != nil || c.OutputIntent != nil {
		t.Error("output intent without ICC profile")
	}
}

func TestXMP(t *testing.T) {
	md := testMetadata()
	c := Compile(md, "instance-1")

	if c.XMP.Dict["Type"] != pdf.Name("Metadata") || c.XMP.Dict["Subtype"] != pdf.Name("XML") {
		t.Errorf("wrong stream dict %v", c.XMP.Dict)
	}
	if _, ok := c.XMP.Dict["Filter"]; ok {
		t.Error("XMP stream is compressed")
	}

	packet, err := xmp.Read(bytes.NewReader(c.XMP.Data))
	if err != nil {
		t.Fatal(err)
	}

	dc := &xmp.DublinCore{}
	packet.Get(dc)
	wantDC := &xmp.DublinCore{}
	wantDC.Title.Set(xDefault, "Invoice")
	wantDC.Creator.Append(xmp.NewProperName("Jane Doe"))
	wantDC.Description.Set(xDefault, "an invoice")
	if d := cmp.Diff(dc, wantDC); d != "" {
		t.Errorf("dublin core (-got +want):\n%s", d)
	}
	if !bytes.Contains(c.XMP.Data, []byte(`xml:lang="x-default"`)) {
		t.Error("missing x-default language alternative")
	}
	if bytes.Contains(c.XMP.Data, []byte(`xml:lang="und"`)) {
		t.Error("undetermined language in XMP")
	}

	mm := &mediaManagementSchema{}
	packet.Get(mm)
	if mm.DocumentID.V != md.DocumentID {
		t.Errorf("wrong document ID %q", mm.DocumentID.V)
	}
	if mm.InstanceID.V != "instance-1" {
		t.Errorf("wrong instance ID %q", mm.InstanceID.V)
	}
	if mm.VersionID.V != "1" {
		t.Errorf("wrong version %q", mm.VersionID.V)
	}

	pdfInfo := &pdfSchema{}
	packet.Get(pdfInfo)
	if pdfInfo.Trapped.V != "False" {
		t.Errorf("wrong trapping %q", pdfInfo.Trapped.V)
	}
	if pdfInfo.PDFVersion.V != "1.4" {
		t.Errorf("wrong PDF version %q", pdfInfo.PDFVersion.V)
	}

	pdfx := &pdfxIDSchema{}
	packet.Get(pdfx)
	if pdfx.GTS_PDFXVersion.V != "PDF/X-3:2003" {
		t.Errorf("wrong PDF/X version %q", pdfx.GTS_PDFXVersion.V)
	}
}

func TestXMPPDFA(t *testing.T) {
	md := testMetadata()
	md.Conformance = PDFA2B
	c := Compile(md, "instance")

	packet, err := xmp.Read(bytes.NewReader(c.XMP.Data))
	if err != nil {
		t.Fatal(err)
	}
	id := &pdfaIDSchema{}
	packet.Get(id)
	if id.Part.V != "2" || id.Conformance.V != "B" {
		t.Errorf("wrong PDF/A identification %q %q", id.Part.V, id.Conformance.V)
	}
	if _, ok := c.Info["GTS_PDFXVersion"]; ok {
		t.Error("PDF/X version set for PDF/A file")
	}
}

func TestXMPLanguage(t *testing.T) {
	md := testMetadata()
	md.Language = language.German
	c := Compile(md, "instance")

	packet, err := xmp.Read(bytes.NewReader(c.XMP.Data))
	if err != nil {
		t.Fatal(err)
	}
	dc := &xmp.DublinCore{}
	packet.Get(dc)
	wantDC := &xmp.DublinCore{}
	wantDC.Title.Set(xDefault, "Invoice")
	wantDC.Title.Set(language.German, "Invoice")
	wantDC.Creator.Append(xmp.NewProperName("Jane Doe"))
	wantDC.Description.Set(xDefault, "an invoice")
	wantDC.Description.Set(language.German, "an invoice")
	if d := cmp.Diff(dc, wantDC); d != "" {
		t.Errorf("dublin core (-got +want):\n%s", d)
	}
}

func TestOutputIntent(t *testing.T) {
	profile, err := NewICCProfile(icc.SRGBv2Profile)
	if err != nil {
		t.Fatal(err)
	}
	if profile.N != 3 || profile.Alternate != "DeviceRGB" {
		t.Errorf("wrong profile info: %d %s", profile.N, profile.Alternate)
	}

	md := testMetadata()
	md.ICCProfile = profile
	c := Compile(md, "instance")
	if c.ICC == nil {
		t.Fatal("missing ICC stream")
	}

	f := pdf.NewFile(pdf.V1_4)
	xmpRef, infoRef, intent, err := c.Embed(f, true)
	if err != nil {
		t.Fatal(err)
	}
	if f.Get(xmpRef) == nil || f.Get(infoRef) == nil {
		t.Error("metadata objects not stored")
	}

	iccRef, ok := intent["DestOutputProfile"].(pdf.Reference)
	if !ok {
		t.Fatalf("missing DestOutputProfile: %v", intent)
	}
	stm, ok := f.Get(iccRef).(*pdf.Stream)
	if !ok {
		t.Fatalf("wrong ICC object %v", f.Get(iccRef))
	}
	if stm.Dict["N"] != pdf.Integer(3) {
		t.Errorf("wrong /N %v", stm.Dict["N"])
	}

	want := map[pdf.Name]pdf.Object{
		"Type":                      pdf.Name("OutputIntent"),
		"S":                         pdf.Name("GTS_PDFX"),
		"OutputConditionIdentifier": pdf.String("FOGRA39"),
		"RegistryName":              pdf.String("http://www.color.org"),
	}
	for key, val := range want {
		if d := cmp.Diff(intent[key], val); d != "" {
			t.Errorf("/%s (-got +want):\n%s", key, d)
		}
	}
}

func TestNewICCProfileErrors(t *testing.T) {
	_, err := NewICCProfile(nil)
	if err == nil {
		t.Error("empty profile accepted")
	}
	_, err = NewICCProfile([]byte("not an ICC profile at all"))
	if err == nil {
		t.Error("malformed profile accepted")
	}
}

func TestCheck(t *testing.T) {
	md := testMetadata()
	md.Title = ""
	got := Check(md)

	var codes []string
	for _, v := range got {
		codes = append(codes, v.Code)
	}
	want := []string{CodeMissingICCProfile, CodeMissingTitle}
	if d := cmp.Diff(codes, want); d != "" {
		t.Errorf("violations (-got +want):\n%s", d)
	}

	md.Conformance = None
	if got := Check(md); got != nil {
		t.Errorf("unexpected violations %v", got)
	}

	md.ModificationDate = md.CreationDate.Add(-time.Hour)
	got = Check(md)
	if len(got) != 1 || got[0].Code != CodeDateOrder {
		t.Errorf("wrong violations %v", got)
	}
}

func TestConformance(t *testing.T) {
	cases := []struct {
		c       Conformance
		version pdf.Version
		layers  bool
	}{
		{None, pdf.V1_7, true},
		{PDFA1B, pdf.V1_4, false},
		{PDFA2B, pdf.V1_7, true},
		{PDFA3B, pdf.V1_7, true},
		{PDFX3, pdf.V1_4, false},
		{PDFX4, pdf.V1_6, true},
	}
	for _, test := range cases {
		if v := test.c.Version(); v != test.version {
			t.Errorf("%s: wrong version %s", test.c, v)
		}
		if l := test.c.AllowsOptionalContent(); l != test.layers {
			t.Errorf("%s: optional content %t", test.c, l)
		}
		if a := test.c.AllowsTransparency(); a != test.layers {
			t.Errorf("%s: transparency %t", test.c, a)
		}
		if test.c.IsPDFA() == test.c.IsPDFX() && test.c != None {
			t.Errorf("%s: wrong family", test.c)
		}
	}
}
