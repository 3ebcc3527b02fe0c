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
	"bytes"

	"github.com/klauspost/compress/zlib"
)

// FlateStream returns a stream with the given dictionary, holding data
// compressed with the FlateDecode filter.  If compress is false, or if
// compression does not make the data shorter, the data is stored
// uncompressed.
func FlateStream(dict Dict, data []byte, compress bool) (*Stream, error) {
	if dict == nil {
		dict = Dict{}
	}
	if !compress || len(data) == 0 {
		return &Stream{Dict: dict, Data: data}, nil
	}

	buf := &bytes.Buffer{}
	zw, err := zlib.NewWriterLevel(buf, zlib.BestCompression)
	if err != nil {
		return nil, err
	}
	_, err = zw.Write(data)
	if err != nil {
		return nil, err
	}
	err = zw.Close()
	if err != nil {
		return nil, err
	}
	if buf.Len() >= len(data) {
		return &Stream{Dict: dict, Data: data}, nil
	}

	dict["Filter"] = Name("FlateDecode")
	return &Stream{Dict: dict, Data: buf.Bytes()}, nil
}
