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
	"testing"
	"time"
)

func TestFormat(t *testing.T) {
	cases := []struct {
		in  Object
		out string
	}{
		{nil, "null"},
		{Bool(true), "true"},
		{Integer(-7), "-7"},
		{Real(1), "1."},
		{Real(0.5), "0.5"},
		{Number(1), "1"},
		{Number(-1.25), "-1.25"},
		{Number(0.00001), "0"},
		{Number(1.00001), "1"},
		{Number(-0.00001), "0"},
		{String("a"), "(a)"},
		{String("a (test version)"), "(a (test version))"},
		{String("a (test version"), "(a \\(test version)"},
		{String(""), "()"},
		{String("\000"), "<00>"},
		{String("a\\b"), `(a\\b)`},
		{Name("Type"), "/Type"},
		{Name("A B#"), "/A#20B#23"},
		{Array{Integer(1), nil, Integer(3)}, "[1 null 3]"},
		{Dict{"Type": Name("Page"), "A": nil, "Count": Integer(2)},
			"<<\n/Count 2\n/Type /Page\n>>"},
		{NewReference(12, 0), "12 0 R"},
		{NewReference(5, 2), "5 2 R"},
		{&Stream{Dict: Dict{}, Data: []byte("abc")},
			"<<\n/Length 3\n>>\nstream\nabc\nendstream"},
	}
	for _, test := range cases {
		out := Format(test.in)
		if out != test.out {
			t.Errorf("object wrongly formatted, expected %q but got %q",
				test.out, out)
		}
	}
}

func TestStreamLengthNotStored(t *testing.T) {
	stm := &Stream{Dict: Dict{"Type": Name("XObject")}, Data: []byte("12345")}
	_ = Format(stm)
	if _, ok := stm.Dict["Length"]; ok {
		t.Error("Length was added to the stream dictionary")
	}
}

func TestReference(t *testing.T) {
	ref := NewReference(123, 4)
	if ref.Number() != 123 || ref.Generation() != 4 {
		t.Errorf("wrong reference %d %d", ref.Number(), ref.Generation())
	}
	if s := ref.String(); s != "obj_123@4" {
		t.Errorf("wrong string %q", s)
	}
}

func TestTextString(t *testing.T) {
	cases := []string{
		"",
		"hello",
		"\t\n\r",
		"ein Bär",
		"o țesătură",
		"中文",
		"日本語",
	}
	for _, test := range cases {
		enc := TextString(test)
		out := enc.AsTextString()
		if out != test {
			t.Errorf("wrong text: %q != %q", out, test)
		}
	}

	if enc := TextString("Invoice"); string(enc) != "Invoice" {
		t.Errorf("ASCII string was re-encoded: %q", enc)
	}
	if enc := TextString("Bär"); !bytes.HasPrefix(enc, []byte{0xFE, 0xFF}) {
		t.Errorf("missing byte order mark: %q", enc)
	}
}

func TestDateString(t *testing.T) {
	PST := time.FixedZone("PST", -8*60*60)
	cases := []time.Time{
		time.Date(1998, 12, 23, 19, 52, 0, 0, PST),
		time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2020, 12, 24, 16, 30, 12, 0, time.FixedZone("", 90*60)),
	}
	for _, test := range cases {
		enc := Date(test)
		out, err := enc.AsDate()
		if err != nil {
			t.Error(err)
		} else if !test.Equal(out) {
			t.Errorf("wrong time: %s != %s", out, test)
		}
	}

	enc := Date(time.Date(1998, 12, 23, 19, 52, 0, 0, PST))
	if string(enc) != "D:19981223195200-08'00" {
		t.Errorf("wrong date format %q", enc)
	}
}

func TestDecodeDate(t *testing.T) {
	cases := []string{
		"D:19981223195200-08'00'",
		"D:20000101000000Z",
		"D:20201224163012+01'30'",
		"D:20010809191510 ",
		"D:2001",
	}
	for i, test := range cases {
		enc := TextString(test)
		_, err := enc.AsDate()
		if err != nil {
			t.Errorf("%d %q %s\n", i, test, err)
		}
	}

	_, err := String("yesterday").AsDate()
	if err == nil {
		t.Error("malformed date accepted")
	}
}
