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

// Package memfile provides in-memory files for tests.
package memfile

import (
	"errors"
	"io"
)

// MemFile is an in-memory file.
//
// This type implements the [io.ReadWriteSeeker] interface.
type MemFile struct {
	// Data are the file contents.
	Data []byte

	// Offset is the current file offset.
	Offset int64

	// Limit, if positive, is the maximum file size.  Writes beyond this
	// size fail with [ErrFull], after writing as much as fits.
	Limit int64
}

// New creates a new, empty MemFile.
func New() *MemFile {
	return &MemFile{}
}

// Write writes data at the current offset.
// This implements the [io.Writer] interface.
func (f *MemFile) Write(p []byte) (int, error) {
	var err error
	if f.Limit > 0 && f.Offset+int64(len(p)) > f.Limit {
		fit := max(f.Limit-f.Offset, 0)
		p = p[:fit]
		err = ErrFull
	}

	if f.Offset > int64(len(f.Data)) {
		f.Data = append(f.Data, make([]byte, f.Offset-int64(len(f.Data)))...)
	}

	n := copy(f.Data[f.Offset:], p)
	if n < len(p) {
		f.Data = append(f.Data, p[n:]...)
		n = len(p)
	}

	f.Offset += int64(n)
	return n, err
}

// Read reads data from the current offset.
// This implements the [io.Reader] interface.
func (f *MemFile) Read(p []byte) (n int, err error) {
	if f.Offset >= int64(len(f.Data)) {
		return 0, io.EOF
	}
	n = copy(p, f.Data[f.Offset:])
	f.Offset += int64(n)
	return n, nil
}

// Seek sets the offset for the next Read or Write.
// This implements the [io.Seeker] interface.
func (f *MemFile) Seek(offset int64, whence int) (int64, error) {
	var newOffset int64
	switch whence {
	case io.SeekStart:
		newOffset = offset
	case io.SeekCurrent:
		newOffset = f.Offset + offset
	case io.SeekEnd:
		newOffset = int64(len(f.Data)) + offset
	default:
		return 0, errInvalidWhence
	}

	if newOffset < 0 {
		return 0, errInvalidOffset
	}

	f.Offset = newOffset
	return newOffset, nil
}

// ErrFull is returned by [MemFile.Write] when the file size limit is
// reached.
var ErrFull = errors.New("memfile: file size limit reached")

var (
	errInvalidWhence = errors.New("invalid whence")
	errInvalidOffset = errors.New("invalid offset")
)
