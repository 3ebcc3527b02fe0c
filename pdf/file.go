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

import "fmt"

// File is an in-memory PDF file.  Indirect objects are stored by object
// number, the generation number of all objects is zero.
type File struct {
	// Version is the PDF version written in the file header.
	Version Version

	// Trailer is the trailer dictionary.  The "Size" entry is filled in
	// automatically when the file is written.
	Trailer Dict

	objects map[uint32]Object
	next    uint32
}

// NewFile creates a new, empty PDF file.
func NewFile(ver Version) *File {
	return &File{
		Version: ver,
		Trailer: Dict{},
		objects: make(map[uint32]Object),
		next:    1,
	}
}

// NewObjectID reserves an object number without storing an object.
// The object can be filled in later using [File.Set].  References to
// reserved objects which are never set are removed by [File.Prune].
func (f *File) NewObjectID() Reference {
	ref := NewReference(f.next, 0)
	f.next++
	return ref
}

// Add stores obj as a new indirect object and returns a reference to it.
func (f *File) Add(obj Object) Reference {
	ref := f.NewObjectID()
	f.objects[ref.Number()] = obj
	return ref
}

// Set stores obj under a previously reserved reference.
func (f *File) Set(ref Reference, obj Object) error {
	n := ref.Number()
	if n == 0 || n >= f.next || ref.Generation() != 0 {
		return fmt.Errorf("%s: not allocated", ref)
	}
	if obj == nil {
		delete(f.objects, n)
		return nil
	}
	f.objects[n] = obj
	return nil
}

// Get returns the object stored under ref, or nil if no object is stored.
func (f *File) Get(ref Reference) Object {
	if ref.Generation() != 0 {
		return nil
	}
	return f.objects[ref.Number()]
}

// Len returns the number of objects stored in the file.
func (f *File) Len() int {
	return len(f.objects)
}

// Resolve follows a chain of references and returns the first
// object which is not a reference.
func (f *File) Resolve(obj Object) Object {
	for range f.next {
		ref, ok := obj.(Reference)
		if !ok {
			return obj
		}
		obj = f.Get(ref)
	}
	return nil
}
