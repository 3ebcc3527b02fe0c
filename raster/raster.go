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

// Package raster embeds raster images in PDF files.
//
// JPEG files are embedded unchanged, using the DCTDecode filter.  All other
// formats are decoded and stored as 8-bit DeviceRGB or DeviceGray samples,
// with transparency represented by a soft mask.
package raster

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/gif" // register GIF decoder
	"image/jpeg"
	_ "image/png" // register PNG decoder

	_ "golang.org/x/image/bmp"  // register BMP decoder
	_ "golang.org/x/image/tiff" // register TIFF decoder
	_ "golang.org/x/image/webp" // register WebP decoder

	"seehuhn.de/go/pdfdoc/pdf"
)

// Image is a raster image which can be embedded into a PDF file.
type Image struct {
	// Format is the name of the file format the image was decoded from,
	// for example "png" or "jpeg".  Images created by [FromImage] use
	// an empty string.
	Format string

	width, height int

	// jpegData is the original file, for images which are embedded
	// without re-encoding.
	jpegData    []byte
	components  int
	adobeMarker bool // APP14 "Adobe" segment present

	img image.Image
}

// Decode reads an image from data.  The format is detected automatically.
func Decode(data []byte) (*Image, error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, &DecodeError{Err: err}
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, &DecodeError{Format: format, Err: errEmptyImage}
	}

	if format == "jpeg" {
		// Decode once, to check that the file is complete.
		_, err = jpeg.Decode(bytes.NewReader(data))
		if err != nil {
			return nil, &DecodeError{Format: format, Err: err}
		}
		return &Image{
			Format:      format,
			width:       cfg.Width,
			height:      cfg.Height,
			jpegData:    data,
			components:  jpegComponents(cfg.ColorModel),
			adobeMarker: hasAdobeMarker(data),
		}, nil
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, &DecodeError{Format: format, Err: err}
	}
	res := FromImage(img)
	res.Format = format
	return res, nil
}

// FromImage wraps an in-memory image.
func FromImage(img image.Image) *Image {
	b := img.Bounds()
	return &Image{
		width:  b.Dx(),
		height: b.Dy(),
		img:    img,
	}
}

func jpegComponents(m color.Model) int {
	switch m {
	case color.GrayModel, color.Gray16Model:
		return 1
	case color.CMYKModel:
		return 4
	default:
		return 3
	}
}

// hasAdobeMarker reports whether the JPEG file has an APP14 segment
// written by Adobe software.  Only the segments before the image data
// are examined.
func hasAdobeMarker(data []byte) bool {
	if len(data) < 2 || data[0] != 0xFF || data[1] != 0xD8 {
		return false
	}
	pos := 2
	for pos+1 < len(data) {
		if data[pos] != 0xFF {
			return false
		}
		marker := data[pos+1]
		switch {
		case marker == 0xFF: // fill byte
			pos++
			continue
		case marker == 0x01 || marker >= 0xD0 && marker <= 0xD7:
			pos += 2
			continue
		case marker == 0xD9 || marker == 0xDA: // EOI, SOS
			return false
		}
		if pos+4 > len(data) {
			return false
		}
		length := int(data[pos+2])<<8 | int(data[pos+3])
		end := pos + 2 + length
		if length < 2 || end > len(data) {
			return false
		}
		if marker == 0xEE && bytes.HasPrefix(data[pos+4:end], []byte("Adobe")) {
			return true
		}
		pos = end
	}
	return false
}

// Width returns the width of the image in pixels.
func (im *Image) Width() int {
	return im.width
}

// Height returns the height of the image in pixels.
func (im *Image) Height() int {
	return im.height
}

// IsGray reports whether the image is stored using the DeviceGray colour
// space.
func (im *Image) IsGray() bool {
	if im.jpegData != nil {
		return im.components == 1
	}
	switch im.img.ColorModel() {
	case color.GrayModel, color.Gray16Model:
		return true
	}
	return false
}

// HasAlpha reports whether the image has any pixels which are not fully
// opaque.  Such images are embedded with a soft mask.
func (im *Image) HasAlpha() bool {
	if im.jpegData != nil {
		return false
	}
	if o, ok := im.img.(interface{ Opaque() bool }); ok {
		return !o.Opaque()
	}
	b := im.img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			_, _, _, a := im.img.At(x, y).RGBA()
			if a != 0xffff {
				return true
			}
		}
	}
	return false
}

// Embed writes the image as an Image XObject into out.
// If compress is set, samples are Flate-compressed.
func (im *Image) Embed(out *pdf.File, compress bool) (pdf.Reference, error) {
	dict := pdf.Dict{
		"Type":             pdf.Name("XObject"),
		"Subtype":          pdf.Name("Image"),
		"Width":            pdf.Integer(im.width),
		"Height":           pdf.Integer(im.height),
		"BitsPerComponent": pdf.Integer(8),
	}

	if im.jpegData != nil {
		switch im.components {
		case 1:
			dict["ColorSpace"] = pdf.Name("DeviceGray")
		case 4:
			dict["ColorSpace"] = pdf.Name("DeviceCMYK")
			if im.adobeMarker {
				// Adobe applications store CMYK JPEG samples inverted.
				dict["Decode"] = pdf.Array{
					pdf.Integer(1), pdf.Integer(0), pdf.Integer(1), pdf.Integer(0),
					pdf.Integer(1), pdf.Integer(0), pdf.Integer(1), pdf.Integer(0),
				}
			}
		default:
			dict["ColorSpace"] = pdf.Name("DeviceRGB")
		}
		dict["Filter"] = pdf.Name("DCTDecode")
		return out.Add(&pdf.Stream{Dict: dict, Data: im.jpegData}), nil
	}

	gray := im.IsGray()
	if gray {
		dict["ColorSpace"] = pdf.Name("DeviceGray")
	} else {
		dict["ColorSpace"] = pdf.Name("DeviceRGB")
	}

	b := im.img.Bounds()
	src := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(src, src.Bounds(), im.img, b.Min, draw.Src)

	hasAlpha := im.HasAlpha()
	n := im.width * im.height
	samples := make([]byte, 0, n*3)
	var alpha []byte
	if hasAlpha {
		alpha = make([]byte, 0, n)
	}
	for i := 0; i < len(src.Pix); i += 4 {
		r, g, bl, a := src.Pix[i], src.Pix[i+1], src.Pix[i+2], src.Pix[i+3]
		if gray {
			samples = append(samples, r)
		} else {
			samples = append(samples, r, g, bl)
		}
		if hasAlpha {
			alpha = append(alpha, a)
		}
	}

	if hasAlpha {
		maskDict := pdf.Dict{
			"Type":             pdf.Name("XObject"),
			"Subtype":          pdf.Name("Image"),
			"Width":            pdf.Integer(im.width),
			"Height":           pdf.Integer(im.height),
			"ColorSpace":       pdf.Name("DeviceGray"),
			"BitsPerComponent": pdf.Integer(8),
		}
		mask, err := pdf.FlateStream(maskDict, alpha, compress)
		if err != nil {
			return 0, err
		}
		dict["SMask"] = out.Add(mask)
	}

	stm, err := pdf.FlateStream(dict, samples, compress)
	if err != nil {
		return 0, err
	}
	return out.Add(stm), nil
}

// DecodeError is returned by [Decode] if the image data cannot be read.
type DecodeError struct {
	// Format is the detected file format, or the empty string if the
	// format could not be determined.
	Format string
	Err    error
}

func (err *DecodeError) Error() string {
	if err.Format == "" {
		return fmt.Sprintf("image: %v", err.Err)
	}
	return fmt.Sprintf("%s image: %v", err.Format, err.Err)
}

func (err *DecodeError) Unwrap() error {
	return err.Err
}

var errEmptyImage = errors.New("image has no pixels")
