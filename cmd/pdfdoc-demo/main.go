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

// Pdfdoc-demo writes a one-page sample invoice as a PDF file.
//
// The output file is given by the -o flag.  Use "-o -" to write to
// standard output; this is refused if standard output is a terminal.
// With -encrypt, the program asks for a password and protects the file
// with AES-256 encryption.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/term"
	"golang.org/x/text/language"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/pdfdoc"
	"seehuhn.de/go/pdfdoc/graphics"
	"seehuhn.de/go/pdfdoc/metadata"
	"seehuhn.de/go/pdfdoc/pdf"
)

var conformanceNames = map[string]metadata.Conformance{
	"none":   metadata.None,
	"pdfa1b": metadata.PDFA1B,
	"pdfa2b": metadata.PDFA2B,
	"pdfa3b": metadata.PDFA3B,
	"pdfx3":  metadata.PDFX3,
	"pdfx4":  metadata.PDFX4,
}

func main() {
	out := flag.String("o", "invoice.pdf", "output file name, or - for standard output")
	force := flag.Bool("f", false, "overwrite output file if it exists")
	fontFile := flag.String("font", "", "TrueType, OpenType or Type 1 font to use (default Go Regular)")
	iccFile := flag.String("icc", "", "ICC profile for the output intent")
	level := flag.String("conformance", "none", "conformance level (none, pdfa1b, pdfa2b, pdfa3b, pdfx3, pdfx4)")
	readable := flag.Bool("readable", false, "write uncompressed content streams")
	encrypt := flag.Bool("encrypt", false, "ask for a password and encrypt the file")
	flag.Parse()

	conformance, ok := conformanceNames[strings.ToLower(*level)]
	if !ok {
		log.Fatalf("unknown conformance level %q", *level)
	}

	fontData := goregular.TTF
	if *fontFile != "" {
		var err error
		fontData, err = os.ReadFile(*fontFile)
		if err != nil {
			log.Fatal(err)
		}
	}

	var profile *metadata.ICCProfile
	if *iccFile != "" {
		data, err := os.ReadFile(*iccFile)
		if err != nil {
			log.Fatal(err)
		}
		profile, err = metadata.NewICCProfile(data)
		if err != nil {
			log.Fatal(err)
		}
	}

	opt := &pdfdoc.SaveOptions{HumanReadable: *readable}
	if *encrypt {
		passwd, err := readPassword()
		if err != nil {
			log.Fatal(err)
		}
		opt.Encryption = &pdf.Encryption{
			UserPassword:  passwd,
			OwnerPassword: passwd,
			Perm:          pdf.PermPrint | pdf.PermCopy,
		}
	}

	doc, err := buildInvoice(fontData, conformance, profile)
	if err != nil {
		log.Fatal(err)
	}

	err = doc.CheckForErrors()
	if err != nil {
		fmt.Fprintln(os.Stderr, "warning:", err)
	}

	if *out == "-" {
		if term.IsTerminal(int(os.Stdout.Fd())) {
			log.Fatal("refusing to write PDF data to a terminal")
		}
		err = doc.Save(os.Stdout, opt)
	} else {
		if !*force {
			if _, err := os.Stat(*out); !os.IsNotExist(err) {
				log.Fatalf("output file %q already exists", *out)
			}
		}
		err = doc.SaveFile(*out, opt)
	}
	if err != nil {
		log.Fatal(err)
	}
}

func readPassword() (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", fmt.Errorf("-encrypt needs a terminal to read the password")
	}
	fmt.Fprint(os.Stderr, "password: ")
	passwd, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", err
	}
	return string(passwd), nil
}

type item struct {
	desc  string
	price float64
}

func buildInvoice(fontData []byte, c metadata.Conformance, profile *metadata.ICCProfile) (*pdfdoc.Document, error) {
	a4 := pdfdoc.A4
	doc, page, body := pdfdoc.New("Invoice", a4.Width, a4.Height, "Body")
	doc.WithConformance(c).
		WithCreator("pdfdoc-demo").
		WithAuthor("Example Ltd.").
		WithSubject("Invoice 2026-001").
		WithLanguage(language.BritishEnglish).
		WithModificationDate(time.Now())
	if profile != nil {
		doc.WithICCProfile(profile)
	}

	font, err := doc.AddFont(fontData)
	if err != nil {
		return nil, err
	}

	layer, err := doc.Layer(page, body)
	if err != nil {
		return nil, err
	}
	bodyRef := pdfdoc.LayerRef{Page: page, Layer: body}

	title := layer.AddMarker(20, 270)
	if err := doc.UseText(bodyRef.At(title), font, 24, "Invoice"); err != nil {
		return nil, err
	}

	items := []item{
		{"Consulting, 3 days", 2400},
		{"Travel expenses", 312.50},
		{"Report (printed copy)", 45},
	}
	total := 0.0
	for i, it := range items {
		y := pdfdoc.Mm(240 - 10*i)
		left := layer.AddMarker(20, y)
		right := layer.AddMarker(160, y)
		if err := doc.UseText(bodyRef.At(left), font, 11, it.desc); err != nil {
			return nil, err
		}
		if err := doc.UseText(bodyRef.At(right), font, 11, fmt.Sprintf("%.2f €", it.price)); err != nil {
			return nil, err
		}
		total += it.price
	}
	sum := layer.AddMarker(160, 200)
	if err := doc.UseText(bodyRef.At(sum), font, 11, fmt.Sprintf("%.2f €", total)); err != nil {
		return nil, err
	}

	p, err := doc.Page(page)
	if err != nil {
		return nil, err
	}
	rules := p.AddLayer("Rules")
	line := &graphics.Path{Stroke: graphics.Gray(0.3), LineWidth: 0.5}
	from := pdfdoc.Point(20, 206)
	to := pdfdoc.Point(190, 206)
	line.MoveTo(from).LineTo(to)
	box := &graphics.Path{Stroke: graphics.RGB{R: 0.2, G: 0.4, B: 0.8}}
	box.Rect(pdfdoc.Rect(15, 195, 195, 250))
	for _, path := range []*graphics.Path{box, line} {
		err := doc.UsePath(pdfdoc.LayerRef{Page: page, Layer: rules}, path)
		if err != nil {
			return nil, err
		}
	}

	logo := &graphics.Form{Paths: []*graphics.Path{
		(&graphics.Path{Fill: graphics.CMYK{C: 1, M: 0.5}}).
			MoveTo(vec.Vec2{X: 0, Y: 0}).
			LineTo(vec.Vec2{X: 20, Y: 0}).
			LineTo(vec.Vec2{X: 10, Y: 17.32}).
			Close(),
	}}
	h, err := doc.AddContent(pdfdoc.GraphicContent{Form: logo})
	if err != nil {
		return nil, err
	}
	logoPos := layer.AddMarker(175, 265)
	err = doc.UseContent(bodyRef.At(logoPos), h, 15, 0)
	if err != nil {
		return nil, err
	}

	return doc, nil
}
