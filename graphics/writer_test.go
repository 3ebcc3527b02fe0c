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

package graphics

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/pdfdoc/pdf"
)

func TestWriterOperators(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewWriter(buf)

	w.MarkedContentStart("OC", "L1")
	w.PushGraphicsState()
	w.Transform(matrix.Matrix{2, 0, 0, 2, 10, 20.5})
	w.SetFillColor(RGB{R: 1, G: 0.5, B: 0})
	w.SetStrokeColor(CMYK{K: 1})
	w.SetLineWidth(0.25)
	w.MoveTo(0, 0)
	w.LineTo(10, 0)
	w.CurveTo(10, 0, 10, 0, 20, 5, 20, 10)
	w.CurveTo(20, 10, 25, 10, 30, 0, 30, 0)
	w.CurveTo(30, 0, 31, 1, 32, 2, 33, 3)
	w.ClosePath()
	w.FillAndStroke()
	w.PopGraphicsState()
	w.TextStart()
	w.TextSetFont("F1", 12)
	w.TextFirstLine(72, 700)
	w.TextShowRaw(pdf.String("Hi"))
	w.TextEnd()
	w.DrawXObject("X1")
	w.MarkedContentEnd()

	err := w.Close()
	if err != nil {
		t.Fatal(err)
	}

	want := strings.Join([]string{
		"/OC /L1 BDC",
		"q",
		"2 0 0 2 10 20.5 cm",
		"1 0.5 0 rg",
		"0 0 0 1 K",
		"0.25 w",
		"0 0 m",
		"10 0 l",
		"20 5 20 10 v",
		"25 10 30 0 y",
		"31 1 32 2 33 3 c",
		"h",
		"B",
		"Q",
		"BT",
		"/F1 12 Tf",
		"72 700 Td",
		"(Hi) Tj",
		"ET",
		"/X1 Do",
		"EMC",
		"",
	}, "\n")
	if d := cmp.Diff(buf.String(), want); d != "" {
		t.Errorf("content stream mismatch (-got +want):\n%s", d)
	}
}

func TestWriterUnbalanced(t *testing.T) {
	w := NewWriter(&bytes.Buffer{})
	w.PushGraphicsState()
	if err := w.Close(); !errors.Is(err, errUnbalanced) {
		t.Errorf("expected errUnbalanced, got %v", err)
	}

	w = NewWriter(&bytes.Buffer{})
	w.PopGraphicsState()
	if !errors.Is(w.Err, errUnbalanced) {
		t.Errorf("expected errUnbalanced, got %v", w.Err)
	}

	w = NewWriter(&bytes.Buffer{})
	w.MarkedContentStart("OC", "L1")
	w.PushGraphicsState()
	w.MarkedContentEnd()
	if !errors.Is(w.Err, errUnbalanced) {
		t.Errorf("expected errUnbalanced, got %v", w.Err)
	}
}

func TestWriterState(t *testing.T) {
	w := NewWriter(&bytes.Buffer{})
	w.LineTo(1, 2)
	if w.Err == nil {
		t.Error("LineTo without current point succeeded")
	}

	w = NewWriter(&bytes.Buffer{})
	w.MoveTo(1, 2)
	if err := w.Close(); err == nil {
		t.Error("unfinished path not detected")
	}

	w = NewWriter(&bytes.Buffer{})
	w.SetLineWidth(-1)
	if w.Err == nil {
		t.Error("negative line width accepted")
	}
}

func TestPathDraw(t *testing.T) {
	p := &Path{Fill: Gray(0.5), EvenOdd: true}
	p.Rect(rect.Rect{LLx: 10, LLy: 10, URx: 30, URy: 20}).
		MoveTo(vec.Vec2{X: 0, Y: 0}).
		LineTo(vec.Vec2{X: 5, Y: 5}).
		Close()

	buf := &bytes.Buffer{}
	w := NewWriter(buf)
	err := p.Draw(w)
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	want := "q\n0.5 g\n10 10 20 10 re\n0 0 m\n5 5 l\nh\nf*\nQ\n"
	if d := cmp.Diff(buf.String(), want); d != "" {
		t.Errorf("path mismatch (-got +want):\n%s", d)
	}

	bbox := p.BBox()
	wantBBox := rect.Rect{LLx: 0, LLy: 0, URx: 30, URy: 20}
	if bbox != wantBBox {
		t.Errorf("wrong bbox %v, expected %v", bbox, wantBBox)
	}
}

func TestPathDefaultStroke(t *testing.T) {
	p := &Path{}
	p.LineTo(vec.Vec2{X: 1, Y: 1}).LineTo(vec.Vec2{X: 2, Y: 1})

	buf := &bytes.Buffer{}
	err := p.Draw(NewWriter(buf))
	if err != nil {
		t.Fatal(err)
	}
	want := "q\n1 1 m\n2 1 l\nS\nQ\n"
	if d := cmp.Diff(buf.String(), want); d != "" {
		t.Errorf("path mismatch (-got +want):\n%s", d)
	}

	if err := (&Path{}).Draw(NewWriter(&bytes.Buffer{})); !errors.Is(err, errEmptyPath) {
		t.Errorf("expected errEmptyPath, got %v", err)
	}
}

func TestColorClamp(t *testing.T) {
	vals, op := RGB{R: 2, G: -1, B: 0.5}.operator()
	if d := cmp.Diff(vals, []float64{1, 0, 0.5}); d != "" {
		t.Error(d)
	}
	if op != "rg" {
		t.Errorf("wrong operator %q", op)
	}
}

func TestFormEmbed(t *testing.T) {
	line := &Path{Stroke: Black, LineWidth: 2}
	line.MoveTo(vec.Vec2{X: 0, Y: 0}).LineTo(vec.Vec2{X: 100, Y: 50})
	form := &Form{Paths: []*Path{line}}

	if form.Width() != 100 || form.Height() != 50 {
		t.Errorf("wrong form size %gx%g", form.Width(), form.Height())
	}

	out := pdf.NewFile(pdf.V1_7)
	ref, err := form.Embed(out, false)
	if err != nil {
		t.Fatal(err)
	}
	stm, ok := out.Get(ref).(*pdf.Stream)
	if !ok {
		t.Fatalf("expected stream, got %T", out.Get(ref))
	}
	if stm.Dict["Subtype"] != pdf.Name("Form") {
		t.Errorf("wrong subtype %v", stm.Dict["Subtype"])
	}
	wantBBox := pdf.Array{pdf.Number(0), pdf.Number(0), pdf.Number(100), pdf.Number(50)}
	if d := cmp.Diff(stm.Dict["BBox"], pdf.Object(wantBBox)); d != "" {
		t.Errorf("bbox mismatch (-got +want):\n%s", d)
	}
	want := "q\n0 G\n2 w\n0 0 m\n100 50 l\nS\nQ\n"
	if d := cmp.Diff(string(stm.Data), want); d != "" {
		t.Errorf("form content mismatch (-got +want):\n%s", d)
	}

	if _, err := (&Form{}).Embed(out, false); !errors.Is(err, errEmptyForm) {
		t.Errorf("expected errEmptyForm, got %v", err)
	}
}
