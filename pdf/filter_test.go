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
	"io"
	"testing"

	"github.com/klauspost/compress/zlib"
)

func TestFlateStream(t *testing.T) {
	data := bytes.Repeat([]byte("0 0 m 100 100 l S\n"), 50)

	stm, err := FlateStream(Dict{"Type": Name("XObject")}, data, true)
	if err != nil {
		t.Fatal(err)
	}
	if stm.Dict["Filter"] != Name("FlateDecode") {
		t.Fatalf("wrong filter %v", stm.Dict["Filter"])
	}
	if len(stm.Data) >= len(data) {
		t.Errorf("data not compressed: %d >= %d", len(stm.Data), len(data))
	}

	zr, err := zlib.NewReader(bytes.NewReader(stm.Data))
	if err != nil {
		t.Fatal(err)
	}
	out, err := io.ReadAll(zr)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(out, data) {
		t.Error("round trip failed")
	}
}

func TestFlateStreamUncompressed(t *testing.T) {
	data := []byte("BT ET")
	for _, compress := range []bool{false, true} {
		stm, err := FlateStream(nil, data, compress)
		if err != nil {
			t.Fatal(err)
		}
		if _, ok := stm.Dict["Filter"]; ok {
			t.Errorf("compress=%t: unexpected filter", compress)
		}
		if !bytes.Equal(stm.Data, data) {
			t.Errorf("compress=%t: data modified", compress)
		}
	}
}
