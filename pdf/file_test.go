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
	"crypto/aes"
	"crypto/cipher"
	"fmt"
	"regexp"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFileSet(t *testing.T) {
	f := NewFile(V1_7)
	ref := f.NewObjectID()
	if f.Get(ref) != nil {
		t.Error("reserved object is not empty")
	}
	err := f.Set(ref, Integer(7))
	if err != nil {
		t.Fatal(err)
	}
	if got := f.Get(ref); got != Integer(7) {
		t.Errorf("wrong object %v", got)
	}

	err = f.Set(NewReference(100, 0), Integer(1))
	if err == nil {
		t.Error("unallocated reference accepted")
	}
}

func TestResolve(t *testing.T) {
	f := NewFile(V1_7)
	a := f.Add(Name("target"))
	b := f.Add(a)
	if got := f.Resolve(b); got != Name("target") {
		t.Errorf("wrong object %v", got)
	}
	if got := f.Resolve(Integer(1)); got != Integer(1) {
		t.Errorf("wrong object %v", got)
	}
}

func TestPrune(t *testing.T) {
	f := NewFile(V1_7)
	missing := f.NewObjectID() // never set
	leaf := f.Add(Integer(1))
	orphan := f.Add(Dict{"Child": leaf})
	root := f.Add(Dict{
		"Leaf":    leaf,
		"Missing": missing,
		"List":    Array{leaf, missing, Integer(2)},
	})
	f.Trailer["Root"] = root

	removed := f.Prune()
	if d := cmp.Diff(removed, []uint32{orphan.Number()}); d != "" {
		t.Errorf("removed objects (-got +want):\n%s", d)
	}

	rootDict := f.Get(root).(Dict)
	if _, ok := rootDict["Missing"]; ok {
		t.Error("dangling reference not removed from dict")
	}
	if d := cmp.Diff(rootDict["List"], Array{leaf, Integer(2)}); d != "" {
		t.Errorf("array (-got +want):\n%s", d)
	}
	if f.Get(leaf) == nil {
		t.Error("reachable object was removed")
	}
}

func TestDeleteZeroLengthStreams(t *testing.T) {
	f := NewFile(V1_7)
	empty := f.Add(&Stream{Dict: Dict{}})
	full := f.Add(&Stream{Dict: Dict{}, Data: []byte("q Q")})
	root := f.Add(Dict{"Contents": Array{empty, full}})
	f.Trailer["Root"] = root

	removed := f.DeleteZeroLengthStreams()
	if d := cmp.Diff(removed, []uint32{empty.Number()}); d != "" {
		t.Errorf("removed streams (-got +want):\n%s", d)
	}
	got := f.Get(root).(Dict)["Contents"]
	if d := cmp.Diff(got, Array{full}); d != "" {
		t.Errorf("contents (-got +want):\n%s", d)
	}
}

func TestSave(t *testing.T) {
	f := NewFile(V1_7)
	gap := f.NewObjectID()
	info := f.Add(Dict{"Title": TextString("test")})
	root := f.Add(Dict{"Type": Name("Catalog")})
	f.Trailer["Root"] = root
	f.Trailer["Info"] = info

	buf := &bytes.Buffer{}
	n, err := f.Save(buf, nil)
	if err != nil {
		t.Fatal(err)
	}
	if n != int64(buf.Len()) {
		t.Errorf("wrong byte count %d != %d", n, buf.Len())
	}
	body := buf.Bytes()
	if !bytes.HasPrefix(body, []byte("%PDF-1.7\n")) {
		t.Errorf("wrong header %q", body[:10])
	}

	offsets := checkXRef(t, body)
	if len(offsets) != 4 {
		t.Fatalf("wrong xref size %d", len(offsets))
	}
	if offsets[gap.Number()] != -1 {
		t.Error("missing object is not marked as free")
	}
	for _, ref := range []Reference{info, root} {
		if offsets[ref.Number()] < 0 {
			t.Errorf("%s missing from xref table", ref)
		}
	}
}

func TestSaveCompress(t *testing.T) {
	f := NewFile(V1_7)
	content := bytes.Repeat([]byte("0 0 m 10 10 l S\n"), 50)
	stm := &Stream{Dict: Dict{}, Data: content}
	xmlData := bytes.Repeat([]byte("<x/>"), 50)
	meta := &Stream{Dict: Dict{"Type": Name("Metadata")}, Data: xmlData}
	root := f.Add(Dict{
		"Type":     Name("Catalog"),
		"Contents": f.Add(stm),
		"Metadata": f.Add(meta),
	})
	f.Trailer["Root"] = root

	buf := &bytes.Buffer{}
	_, err := f.Save(buf, &SaveOptions{Compress: true})
	if err != nil {
		t.Fatal(err)
	}
	body := buf.Bytes()
	if bytes.Contains(body, content) {
		t.Error("content stream was not compressed")
	}
	if !bytes.Contains(body, xmlData) {
		t.Error("metadata stream was compressed")
	}
	if !bytes.Contains(body, []byte("/Filter /FlateDecode")) {
		t.Error("missing /Filter entry")
	}
	if _, hasFilter := stm.Dict["Filter"]; hasFilter {
		t.Error("stored stream was modified")
	}
}

func TestSaveNoRoot(t *testing.T) {
	f := NewFile(V1_7)
	_, err := f.Save(&bytes.Buffer{}, nil)
	if err == nil {
		t.Error("file without /Root saved")
	}
}

func TestSaveEncrypted(t *testing.T) {
	f := NewFile(V1_7)
	f.Trailer["Root"] = f.Add(Dict{"Type": Name("Catalog")})
	opt := &SaveOptions{Encryption: &Encryption{UserPassword: "secret"}}
	_, err := f.Save(&bytes.Buffer{}, opt)
	if err == nil {
		t.Error("encryption accepted for PDF 1.7")
	}

	f = NewFile(V2_0)
	f.Trailer["Root"] = f.Add(Dict{
		"Type":  Name("Catalog"),
		"Title": String("plain text marker"),
	})
	buf := &bytes.Buffer{}
	_, err = f.Save(buf, opt)
	if err != nil {
		t.Fatal(err)
	}
	body := buf.Bytes()
	if bytes.Contains(body, []byte("plain text marker")) {
		t.Error("string was not encrypted")
	}
	if !bytes.Contains(body, []byte("/Encrypt ")) {
		t.Error("missing /Encrypt in trailer")
	}
	if !bytes.Contains(body, []byte("/CFM /AESV3")) {
		t.Error("encryption dictionary is missing or encrypted")
	}
	checkXRef(t, body)
}

func TestSecurityHandler(t *testing.T) {
	sec, err := newSecHandler(&Encryption{
		UserPassword:  "user",
		OwnerPassword: "owner",
		Perm:          PermPrint | PermCopy,
	})
	if err != nil {
		t.Fatal(err)
	}

	// user password validation and key recovery (algorithm 11)
	if !bytes.Equal(slowHash([]byte("user"), sec.U[32:40], nil), sec.U[:32]) {
		t.Error("user password does not validate")
	}
	key := slowHash([]byte("user"), sec.U[40:48], nil)
	c, _ := aes.NewCipher(key)
	fileKey := make([]byte, 32)
	cipher.NewCBCDecrypter(c, zero16).CryptBlocks(fileKey, sec.UE)
	if !bytes.Equal(fileKey, sec.key) {
		t.Error("wrong file key recovered from UE")
	}

	// owner password validation (algorithm 12)
	if !bytes.Equal(slowHash([]byte("owner"), sec.O[32:40], sec.U), sec.O[:32]) {
		t.Error("owner password does not validate")
	}

	perms := make([]byte, 16)
	c, _ = aes.NewCipher(sec.key)
	c.Decrypt(perms, sec.Perms)
	if string(perms[9:12]) != "adb" {
		t.Errorf("wrong Perms marker %q", perms[9:12])
	}

	msg := []byte("Hello, World!")
	enc, err := sec.encryptBytes(msg)
	if err != nil {
		t.Fatal(err)
	}
	if len(enc) != 32 {
		t.Fatalf("wrong ciphertext length %d", len(enc))
	}
	plain := make([]byte, 16)
	cipher.NewCBCDecrypter(c, enc[:16]).CryptBlocks(plain, enc[16:])
	nPad := int(plain[15])
	if d := cmp.Diff(string(plain[:16-nPad]), string(msg)); d != "" {
		t.Errorf("round trip (-got +want):\n%s", d)
	}
}

func TestPermToP(t *testing.T) {
	if p := stdSecPermToP(PermAll); p != 0xFFFFFFFC {
		t.Errorf("PermAll: wrong P 0x%08x", p)
	}
	p := stdSecPermToP(PermAll &^ PermCopy)
	if p&(1<<4) != 0 {
		t.Errorf("copy bit set: 0x%08x", p)
	}
}

var xrefHeader = regexp.MustCompile(`\nxref\n0 (\d+)\n`)

// checkXRef verifies that every in-use xref entry points at the
// corresponding "n 0 obj" line and that startxref points at the table.
// The returned slice holds the offsets, -1 for free entries.
func checkXRef(t *testing.T, body []byte) []int64 {
	t.Helper()

	m := xrefHeader.FindSubmatchIndex(body)
	if m == nil {
		t.Fatal("no xref table found")
	}
	xrefPos := m[0] + 1
	size, _ := strconv.Atoi(string(body[m[2]:m[3]]))

	tail := fmt.Sprintf("\nstartxref\n%d\n%%%%EOF\n", xrefPos)
	if !bytes.HasSuffix(body, []byte(tail)) {
		t.Errorf("wrong startxref, want offset %d", xrefPos)
	}

	offsets := make([]int64, size)
	pos := m[1]
	for i := range size {
		line := string(body[pos : pos+20])
		pos += 20
		off, err := strconv.ParseInt(line[:10], 10, 64)
		if err != nil || line[10] != ' ' || line[18:] != "\r\n" {
			t.Fatalf("malformed xref entry %d: %q", i, line)
		}
		if line[17] == 'f' {
			offsets[i] = -1
			continue
		}
		offsets[i] = off
		want := fmt.Sprintf("%d 0 obj\n", i)
		if !bytes.HasPrefix(body[off:], []byte(want)) {
			t.Errorf("xref entry %d points to %q", i, body[off:off+10])
		}
	}
	if !bytes.HasPrefix(body[pos:], []byte("trailer\n")) {
		t.Error("trailer does not follow xref table")
	}
	return offsets
}
