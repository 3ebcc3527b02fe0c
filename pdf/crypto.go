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
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/binary"
	"errors"
	"hash"
	"io"

	"github.com/xdg-go/stringprep"
)

// Encryption describes how a file is to be encrypted when written.
// Files are encrypted with AES-256, using revision 6 of the standard
// security handler.  This requires PDF version 2.0.
type Encryption struct {
	// UserPassword is required to open the file.  If this is empty,
	// the file can be opened without a password, but the restrictions
	// in Perm still apply.
	UserPassword string

	// OwnerPassword gives full access to the file.
	OwnerPassword string

	// Perm lists the operations which are permitted with user access.
	Perm Perm
}

// secHandler holds the state of the revision 6 standard security handler.
type secHandler struct {
	key   []byte // the 32-byte file encryption key
	P     uint32
	U, UE []byte
	O, OE []byte
	Perms []byte
}

func newSecHandler(enc *Encryption) (*secHandler, error) {
	userPwd, err := utf8Passwd(enc.UserPassword)
	if err != nil {
		return nil, err
	}
	ownerPwd, err := utf8Passwd(enc.OwnerPassword)
	if err != nil {
		return nil, err
	}

	sec := &secHandler{
		key: make([]byte, 32),
		P:   stdSecPermToP(enc.Perm),
	}
	_, err = io.ReadFull(rand.Reader, sec.key)
	if err != nil {
		return nil, err
	}

	sec.U, sec.UE, err = sec.computeUAndUE(userPwd)
	if err != nil {
		return nil, err
	}
	sec.O, sec.OE, err = sec.computeOAndOE(ownerPwd)
	if err != nil {
		return nil, err
	}
	sec.Perms = sec.computePerms()
	return sec, nil
}

// AsDict returns the encryption dictionary for the file trailer.
func (sec *secHandler) AsDict() Dict {
	return Dict{
		"Filter": Name("Standard"),
		"V":      Integer(5),
		"R":      Integer(6),
		"Length": Integer(256),
		"CF": Dict{
			"StdCF": Dict{
				"Length":    Integer(32),
				"CFM":       Name("AESV3"),
				"AuthEvent": Name("DocOpen"),
			},
		},
		"StmF":  Name("StdCF"),
		"StrF":  Name("StdCF"),
		"O":     String(sec.O),
		"U":     String(sec.U),
		"OE":    String(sec.OE),
		"UE":    String(sec.UE),
		"P":     Integer(int32(sec.P)),
		"Perms": String(sec.Perms),
	}
}

// encryptBytes encrypts buf using AES-256 in CBC mode, with a random
// initialization vector and PKCS#5 padding.  The contents of buf are not
// modified.
func (sec *secHandler) encryptBytes(buf []byte) ([]byte, error) {
	n := len(buf)
	nPad := 16 - n%16
	out := make([]byte, 16+n+nPad) // iv | c(data|padding)

	iv := out[:16]
	_, err := io.ReadFull(rand.Reader, iv)
	if err != nil {
		return nil, err
	}

	copy(out[16:], buf)
	for i := 16 + n; i < len(out); i++ {
		out[i] = byte(nPad)
	}

	c, err := aes.NewCipher(sec.key)
	if err != nil {
		return nil, err
	}
	cbc := cipher.NewCBCEncrypter(c, iv)
	cbc.CryptBlocks(out[16:], out[16:])
	return out, nil
}

// Algorithm 2.B: Computing a hash (revision 6 and later)
func slowHash(passwd, salt, U []byte) []byte {
	h := sha256.New()
	h.Write(passwd)
	h.Write(salt)
	h.Write(U)
	K := h.Sum(nil)

	K1 := make([]byte, 64*(len(passwd)+64+len(U)))

	for i := 0; i < 64 || K1[len(K1)-1] > byte(i-32); i++ {
		K1 = K1[:0]
		for j := 0; j < 64; j++ {
			K1 = append(K1, passwd...)
			K1 = append(K1, K...)
			K1 = append(K1, U...)
		}

		c, _ := aes.NewCipher(K[:16])
		cbc := cipher.NewCBCEncrypter(c, K[16:32])
		// The length of K1 is a multiple of 64, so this is safe.
		cbc.CryptBlocks(K1, K1)

		// (a*256)%3 == a%3, so the remainder of the first 16 bytes taken
		// as a big-endian integer is the remainder of their sum.
		var rem int
		for _, b := range K1[:16] {
			rem += int(b)
		}
		rem %= 3

		var h hash.Hash
		switch rem {
		case 0:
			h = sha256.New()
		case 1:
			h = sha512.New384()
		case 2:
			h = sha512.New()
		}
		h.Write(K1)
		K = h.Sum(K[:0])
	}

	return K[:32]
}

// Algorithm 8: Computing U and UE (Security handlers of revision 6)
func (sec *secHandler) computeUAndUE(utf8UserPwd []byte) ([]byte, []byte, error) {
	buf := make([]byte, 16)
	_, err := io.ReadFull(rand.Reader, buf)
	if err != nil {
		return nil, nil, err
	}

	out := slowHash(utf8UserPwd, buf[:8], nil) // user validation salt
	U := make([]byte, 0, 48)
	U = append(U, out...)
	U = append(U, buf...)

	key := slowHash(utf8UserPwd, buf[8:], nil) // user key salt
	c, _ := aes.NewCipher(key)
	cbc := cipher.NewCBCEncrypter(c, zero16)
	UE := make([]byte, 32)
	cbc.CryptBlocks(UE, sec.key)

	return U, UE, nil
}

// Algorithm 9: Computing O and OE (Security handlers of revision 6)
func (sec *secHandler) computeOAndOE(utf8OwnerPwd []byte) ([]byte, []byte, error) {
	buf := make([]byte, 16)
	_, err := io.ReadFull(rand.Reader, buf)
	if err != nil {
		return nil, nil, err
	}

	out := slowHash(utf8OwnerPwd, buf[:8], sec.U) // owner validation salt
	O := make([]byte, 0, 48)
	O = append(O, out...)
	O = append(O, buf...)

	key := slowHash(utf8OwnerPwd, buf[8:], sec.U) // owner key salt
	c, _ := aes.NewCipher(key)
	cbc := cipher.NewCBCEncrypter(c, zero16)
	OE := make([]byte, 32)
	cbc.CryptBlocks(OE, sec.key)

	return O, OE, nil
}

// Algorithm 10: Computing the Perms value (Security handlers of revision 6)
func (sec *secHandler) computePerms() []byte {
	buf := make([]byte, 16)
	binary.LittleEndian.PutUint32(buf, sec.P)
	buf[4] = 0xFF
	buf[5] = 0xFF
	buf[6] = 0xFF
	buf[7] = 0xFF
	buf[8] = 'T'
	buf[9] = 'a'
	buf[10] = 'd'
	buf[11] = 'b'

	c, _ := aes.NewCipher(sec.key)
	c.Encrypt(buf, buf)
	return buf
}

func utf8Passwd(passwd string) ([]byte, error) {
	prepped, err := stringprep.SASLprep.Prepare(passwd)
	if err != nil {
		return nil, errInvalidPassword
	}
	buf := []byte(prepped)
	if len(buf) > 127 {
		buf = buf[:127]
	}
	return buf, nil
}

var zero16 = make([]byte, 16)

func stdSecPermToP(perm Perm) uint32 {
	forbidden := uint32(3)
	if perm&PermCopy == 0 {
		forbidden |= 1 << (5 - 1)
	}
	if perm&PermPrint == 0 {
		forbidden |= 1 << (12 - 1)
		if perm&PermPrintDegraded == 0 {
			forbidden |= 1 << (3 - 1)
		}
	}
	if perm&PermAnnotate == 0 {
		forbidden |= 1 << (6 - 1)
		if perm&PermForms == 0 {
			forbidden |= 1 << (9 - 1)
		}
	}
	if perm&PermAssemble == 0 {
		forbidden |= 1 << (11 - 1)
	}
	if perm&PermModify == 0 {
		forbidden |= 1 << (4 - 1)
	}
	return ^forbidden
}

// Perm describes which operations are permitted when accessing the document
// with User access (but not Owner access).  The user can always view the
// document.
type Perm int

const (
	// PermCopy allows to extract text and graphics.
	PermCopy Perm = 1 << iota

	// PermPrintDegraded allows printing of a low-level representation of the
	// appearance, possibly of degraded quality.
	PermPrintDegraded

	// PermPrint allows printing a representation from which a faithful digital
	// copy of the PDF content could be generated.  This implies
	// PermPrintDegraded.
	PermPrint

	// PermForms allows to fill in form fields, including signature fields.
	PermForms

	// PermAnnotate allows to add or modify text annotations. This implies
	// PermForms.
	PermAnnotate

	// PermAssemble allows to insert, rotate, or delete pages and to create
	// bookmarks or thumbnail images.
	PermAssemble

	// PermModify allows to modify the document.  This implies PermAssemble.
	PermModify

	permNext

	// PermAll gives the user all permissions, making User access equivalent to
	// Owner access.
	PermAll = permNext - 1
)

var errInvalidPassword = errors.New("invalid password")
