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

package pdf

import (
	"errors"
	"fmt"
	"io"
	"maps"
)

// SaveOptions control how a [File] is written.
type SaveOptions struct {
	// Encryption, if non-nil, causes all strings and streams in the file
	// to be encrypted.  Encryption requires PDF version 2.0.
	Encryption *Encryption

	// Compress causes all unfiltered streams, except for XML metadata
	// streams, to be compressed using the FlateDecode filter.
	Compress bool
}

// Save writes the file to w.  Objects are written in the order of their
// object numbers, followed by a cross-reference table and the trailer.
// Save returns the number of bytes written.
func (f *File) Save(w io.Writer, opt *SaveOptions) (int64, error) {
	if opt == nil {
		opt = &SaveOptions{}
	}
	if _, ok := f.Trailer["Root"].(Reference); !ok {
		return 0, errors.New("missing /Root in trailer")
	}

	verString, err := f.Version.ToString()
	if err != nil {
		return 0, err
	}

	var sec *secHandler
	var encRef Reference
	if opt.Encryption != nil {
		if f.Version < V2_0 {
			return 0, fmt.Errorf("AES-256 encryption requires PDF 2.0, not %s",
				f.Version)
		}
		sec, err = newSecHandler(opt.Encryption)
		if err != nil {
			return 0, err
		}
		encRef = f.Add(sec.AsDict())
		defer delete(f.objects, encRef.Number())
	}

	pw := &posWriter{w: w}
	_, err = fmt.Fprintf(pw, "%%PDF-%s\n%%\x80\x80\x80\x80\n", verString)
	if err != nil {
		return pw.pos, err
	}

	size := f.next
	xref := make([]int64, size)
	for n := uint32(1); n < size; n++ {
		obj, ok := f.objects[n]
		if !ok {
			xref[n] = -1
			continue
		}
		xref[n] = pw.pos

		if stm, isStream := obj.(*Stream); isStream && opt.Compress && needsCompression(stm) {
			obj, err = FlateStream(maps.Clone(stm.Dict), stm.Data, true)
			if err != nil {
				return pw.pos, err
			}
		}

		_, err = fmt.Fprintf(pw, "%d 0 obj\n", n)
		if err != nil {
			return pw.pos, err
		}
		if sec != nil && n != encRef.Number() {
			pw.sec = sec
		}
		err = writeObject(pw, obj)
		pw.sec = nil
		if err != nil {
			return pw.pos, err
		}
		_, err = pw.Write([]byte("\nendobj\n"))
		if err != nil {
			return pw.pos, err
		}
	}

	xRefPos := pw.pos
	_, err = fmt.Fprintf(pw, "xref\n0 %d\n", size)
	if err != nil {
		return pw.pos, err
	}
	_, err = pw.Write([]byte("0000000000 65535 f\r\n"))
	if err != nil {
		return pw.pos, err
	}
	for n := uint32(1); n < size; n++ {
		if xref[n] >= 0 {
			_, err = fmt.Fprintf(pw, "%010d %05d n\r\n", xref[n], 0)
		} else {
			_, err = pw.Write([]byte("0000000000 65535 f\r\n"))
		}
		if err != nil {
			return pw.pos, err
		}
	}

	trailer := make(Dict, len(f.Trailer)+2)
	for key, val := range f.Trailer {
		trailer[key] = val
	}
	trailer["Size"] = Integer(size)
	if sec != nil {
		trailer["Encrypt"] = encRef
	}
	_, err = pw.Write([]byte("trailer\n"))
	if err != nil {
		return pw.pos, err
	}
	err = trailer.PDF(pw)
	if err != nil {
		return pw.pos, err
	}
	_, err = fmt.Fprintf(pw, "\nstartxref\n%d\n%%%%EOF\n", xRefPos)
	return pw.pos, err
}

func needsCompression(stm *Stream) bool {
	if _, hasFilter := stm.Dict["Filter"]; hasFilter {
		return false
	}
	return stm.Dict["Type"] != Name("Metadata")
}

// posWriter keeps track of the number of bytes written.  If sec is set,
// strings and streams are encrypted as they are written.
type posWriter struct {
	w   io.Writer
	pos int64
	sec *secHandler
}

func (w *posWriter) Write(p []byte) (int, error) {
	n, err := w.w.Write(p)
	w.pos += int64(n)
	return n, err
}
