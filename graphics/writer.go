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

// Package graphics writes PDF content streams.
//
// A [Writer] emits the PDF graphics operators for paths, colours, text and
// external objects.  [Path] and [Form] describe vector graphics which can
// be drawn onto pages or embedded as Form XObjects.
package graphics

import (
	"errors"
	"fmt"
	"io"
	"math"

	"seehuhn.de/go/pdfdoc/pdf"
)

// Writer writes a PDF content stream.
//
// Errors are sticky: after the first error, all further operations are
// ignored and the error is available in the Err field.
type Writer struct {
	Content io.Writer
	Err     error

	currentObject objectType
	nesting       []pairType
}

type pairType byte

const (
	pairTypeQ   pairType = iota + 1 // q ... Q
	pairTypeBT                      // BT ... ET
	pairTypeBMC                     // BMC/BDC ... EMC
)

// NewWriter allocates a new Writer object.
func NewWriter(out io.Writer) *Writer {
	return &Writer{
		Content:       out,
		currentObject: objPage,
	}
}

// Close checks that all q/Q, BT/ET and BDC/EMC pairs are balanced and
// returns the first error encountered while writing.
func (w *Writer) Close() error {
	if w.Err != nil {
		return w.Err
	}
	if len(w.nesting) > 0 {
		return errUnbalanced
	}
	if w.currentObject != objPage {
		return fmt.Errorf("unfinished %s object", w.currentObject)
	}
	return nil
}

// isValid returns true, if the current graphics object is one of the given
// types and if w.Err is nil.  Otherwise it sets w.Err and returns false.
func (w *Writer) isValid(cmd string, ss objectType) bool {
	if w.Err != nil {
		return false
	}

	if w.currentObject&ss != 0 {
		return true
	}

	w.Err = fmt.Errorf("unexpected state %q for %q", w.currentObject, cmd)
	return false
}

func (w *Writer) push(t pairType) {
	w.nesting = append(w.nesting, t)
}

func (w *Writer) pop(t pairType) bool {
	n := len(w.nesting)
	if n == 0 || w.nesting[n-1] != t {
		w.Err = errUnbalanced
		return false
	}
	w.nesting = w.nesting[:n-1]
	return true
}

func (w *Writer) coord(x float64) string {
	return pdf.FormatNumber(x)
}

// writeObjects writes PDF objects separated by spaces, followed by the
// operator op and a newline.
func (w *Writer) writeObjects(op string, args ...pdf.Object) {
	for _, arg := range args {
		w.Err = arg.PDF(w.Content)
		if w.Err != nil {
			return
		}
		_, w.Err = w.Content.Write([]byte{' '})
		if w.Err != nil {
			return
		}
	}
	_, w.Err = fmt.Fprintln(w.Content, op)
}

type objectType int

const (
	objPage objectType = 1 << iota
	objPath
	objText
)

func (s objectType) String() string {
	switch s {
	case objPage:
		return "page"
	case objPath:
		return "path"
	case objText:
		return "text"
	default:
		return fmt.Sprintf("objectType(%d)", int(s))
	}
}

func nearlyEqual(a, b float64) bool {
	const ε = 1e-6
	return math.Abs(a-b) < ε
}

var errUnbalanced = errors.New("unbalanced q/Q, BT/ET or BDC/EMC operators")
