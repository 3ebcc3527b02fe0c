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

package raster

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/pdfdoc/pdf"
)

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	buf := &bytes.Buffer{}
	err := png.Encode(buf, img)
	if err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestDecodePNG(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	for y := range 2 {
		for x := range 3 {
			src.SetNRGBA(x, y, color.NRGBA{R: 255, G: uint8(10 * x), B: uint8(10 * y), A: 255})
		}
	}
	src.SetNRGBA(1, 1, color.NRGBA{R: 1, G: 2, B: 3, A: 128})

	im, err := Decode(encodePNG(t, src))
	if err != nil {
		t.Fatal(err)
	}
	if im.Format != "png" || im.Width() != 3 || im.Height() != 2 {
		t.Errorf("wrong image: %s %dx%d", im.Format, im.Width(), im.Height())
	}
	if !im.HasAlpha() {
		t.Error("alpha channel not detected")
	}

	out := pdf.NewFile(pdf.V1_7)
	ref, err := im.Embed(out, false)
	if err != nil {
		t.Fatal(err)
	}
	stm := out.Get(ref).(*pdf.Stream)
	if stm.Dict["ColorSpace"] != pdf.Name("DeviceRGB") {
		t.Errorf("wrong colour space %v", stm.Dict["ColorSpace"])
	}
	if len(stm.Data) != 3*2*3 {
		t.Errorf("wrong sample length %d", len(stm.Data))
	}
	if d := cmp.Diff(stm.Data[:3], []byte{255, 0, 0}); d != "" {
		t.Errorf("first pixel mismatch (-got +want):\n%s", d)
	}

	maskRef, ok := stm.Dict["SMask"].(pdf.Reference)
	if !ok {
		t.Fatal("missing soft mask")
	}
	mask := out.Get(maskRef).(*pdf.Stream)
	wantAlpha := []byte{255, 255, 255, 255, 128, 255}
	if d := cmp.Diff(mask.Data, wantAlpha); d != "" {
		t.Errorf("alpha mismatch (-got +want):\n%s", d)
	}
}

func TestGray(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 4, 4))
	for i := range src.Pix {
		src.Pix[i] = uint8(i * 16)
	}

	im, err := Decode(encodePNG(t, src))
	if err != nil {
		t.Fatal(err)
	}
	if !im.IsGray() {
		t.Error("gray image not detected")
	}
	if im.HasAlpha() {
		t.Error("unexpected alpha channel")
	}

	out := pdf.NewFile(pdf.V1_7)
	ref, err := im.Embed(out, true)
	if err != nil {
		t.Fatal(err)
	}
	stm := out.Get(ref).(*pdf.Stream)
	if stm.Dict["ColorSpace"] != pdf.Name("DeviceGray") {
		t.Errorf("wrong colour space %v", stm.Dict["ColorSpace"])
	}
	if _, hasMask := stm.Dict["SMask"]; hasMask {
		t.Error("unexpected soft mask")
	}
}

func TestJPEGPassThrough(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for i := range src.Pix {
		src.Pix[i] = 200
	}
	buf := &bytes.Buffer{}
	err := jpeg.Encode(buf, src, nil)
	if err != nil {
		t.Fatal(err)
	}
	data := buf.Bytes()

	im, err := Decode(data)
	if err != nil {
		t.Fatal(err)
	}

	out := pdf.NewFile(pdf.V1_7)
	ref, err := im.Embed(out, true)
	if err != nil {
		t.Fatal(err)
	}
	stm := out.Get(ref).(*pdf.Stream)
	if stm.Dict["Filter"] != pdf.Name("DCTDecode") {
		t.Errorf("wrong filter %v", stm.Dict["Filter"])
	}
	if !bytes.Equal(stm.Data, data) {
		t.Error("JPEG data was modified")
	}
	if _, ok := stm.Dict["Decode"]; ok {
		t.Error("unexpected /Decode for RGB JPEG")
	}
}

func TestAdobeMarker(t *testing.T) {
	soi := []byte{0xFF, 0xD8}
	app14 := []byte{0xFF, 0xEE, 0x00, 0x0E, 'A', 'd', 'o', 'b', 'e', 0, 100, 0, 0, 0, 0, 2}
	app0 := []byte{0xFF, 0xE0, 0x00, 0x07, 'J', 'F', 'I', 'F', 0}
	sos := []byte{0xFF, 0xDA, 0x00, 0x02}

	cat := func(parts ...[]byte) []byte {
		return bytes.Join(parts, nil)
	}
	cases := []struct {
		name string
		data []byte
		want bool
	}{
		{"empty", nil, false},
		{"no SOI", cat(app14, sos), false},
		{"APP14 first", cat(soi, app14, sos), true},
		{"APP14 after APP0", cat(soi, app0, app14, sos), true},
		{"fill bytes", cat(soi, []byte{0xFF}, app0, app14), true},
		{"APP14 after SOS", cat(soi, app0, sos, app14), false},
		{"no APP14", cat(soi, app0, sos), false},
		{"truncated", cat(soi, app14[:8]), false},
	}
	for _, test := range cases {
		if got := hasAdobeMarker(test.data); got != test.want {
			t.Errorf("%s: got %t, want %t", test.name, got, test.want)
		}
	}
}

func TestCMYKJPEG(t *testing.T) {
	for _, inverted := range []bool{false, true} {
		im := &Image{
			Format:      "jpeg",
			width:       1,
			height:      1,
			jpegData:    []byte{0xFF, 0xD8, 0xFF, 0xD9},
			components:  4,
			adobeMarker: inverted,
		}
		out := pdf.NewFile(pdf.V1_7)
		ref, err := im.Embed(out, false)
		if err != nil {
			t.Fatal(err)
		}
		dict := out.Get(ref).(*pdf.Stream).Dict
		if dict["ColorSpace"] != pdf.Name("DeviceCMYK") {
			t.Errorf("wrong colour space %v", dict["ColorSpace"])
		}

		var want pdf.Object
		if inverted {
			want = pdf.Array{
				pdf.Integer(1), pdf.Integer(0), pdf.Integer(1), pdf.Integer(0),
				pdf.Integer(1), pdf.Integer(0), pdf.Integer(1), pdf.Integer(0),
			}
		}
		if d := cmp.Diff(dict["Decode"], want); d != "" {
			t.Errorf("inverted=%t: /Decode (-got +want):\n%s", inverted, d)
		}
	}
}

func TestDecodeError(t *testing.T) {
	_, err := Decode([]byte("not an image"))
	var decErr *DecodeError
	if !errors.As(err, &decErr) {
		t.Fatalf("expected DecodeError, got %v", err)
	}
	if !errors.Is(err, image.ErrFormat) {
		t.Errorf("expected image.ErrFormat, got %v", err)
	}
}

func TestFromImage(t *testing.T) {
	src := image.NewNRGBA(image.Rect(5, 5, 7, 6))
	for i := range src.Pix {
		src.Pix[i] = 255
	}
	im := FromImage(src)
	if im.Width() != 2 || im.Height() != 1 {
		t.Errorf("wrong size %dx%d", im.Width(), im.Height())
	}
	if im.HasAlpha() {
		t.Error("unexpected alpha channel")
	}
}
