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

// Color is a colour in one of the device colour spaces.
type Color interface {
	// operator returns the colour components and the lower case (fill)
	// operator which sets this colour.
	operator() ([]float64, string)
}

// Gray is a colour in the DeviceGray colour space.
// 0 is black, 1 is white.
type Gray float64

func (c Gray) operator() ([]float64, string) {
	return []float64{clamp(float64(c))}, "g"
}

// RGB is a colour in the DeviceRGB colour space.
// Components range from 0 to 1.
type RGB struct {
	R, G, B float64
}

func (c RGB) operator() ([]float64, string) {
	return []float64{clamp(c.R), clamp(c.G), clamp(c.B)}, "rg"
}

// CMYK is a colour in the DeviceCMYK colour space.
// Components range from 0 to 1.
type CMYK struct {
	C, M, Y, K float64
}

func (c CMYK) operator() ([]float64, string) {
	return []float64{clamp(c.C), clamp(c.M), clamp(c.Y), clamp(c.K)}, "k"
}

// Some commonly used colours.
var (
	Black Color = Gray(0)
	White Color = Gray(1)
)

func clamp(x float64) float64 {
	switch {
	case x < 0:
		return 0
	case x > 1:
		return 1
	default:
		return x
	}
}
