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

// Prune removes all objects which cannot be reached from the trailer
// dictionary, and removes all references to objects which do not exist.
// References are removed from dictionaries by deleting the entry and from
// arrays by deleting the element.  The function returns the object numbers
// of the removed objects, in increasing order.
func (f *File) Prune() []uint32 {
	f.Trailer = f.stripDangling(f.Trailer).(Dict)
	for n, obj := range f.objects {
		f.objects[n] = f.stripDangling(obj)
	}

	seen := make(map[uint32]bool)
	todo := []Object{f.Trailer}
	for len(todo) > 0 {
		obj := todo[len(todo)-1]
		todo = todo[:len(todo)-1]

		switch obj := obj.(type) {
		case Reference:
			n := obj.Number()
			if seen[n] {
				continue
			}
			seen[n] = true
			todo = append(todo, f.objects[n])
		case Dict:
			for _, val := range obj {
				todo = append(todo, val)
			}
		case Array:
			todo = append(todo, obj...)
		case *Stream:
			todo = append(todo, obj.Dict)
		}
	}

	var removed []uint32
	for n := uint32(1); n < f.next; n++ {
		if _, exists := f.objects[n]; exists && !seen[n] {
			delete(f.objects, n)
			removed = append(removed, n)
		}
	}
	return removed
}

// DeleteZeroLengthStreams removes all stream objects with empty data,
// together with all references pointing to them.  The function returns
// the object numbers of the removed streams, in increasing order.
func (f *File) DeleteZeroLengthStreams() []uint32 {
	var removed []uint32
	for n := uint32(1); n < f.next; n++ {
		if stm, ok := f.objects[n].(*Stream); ok && len(stm.Data) == 0 {
			delete(f.objects, n)
			removed = append(removed, n)
		}
	}
	if removed != nil {
		f.Trailer = f.stripDangling(f.Trailer).(Dict)
		for n, obj := range f.objects {
			f.objects[n] = f.stripDangling(obj)
		}
	}
	return removed
}

// stripDangling returns a copy of obj where all references to
// missing objects are removed.  Containers are modified in place.
func (f *File) stripDangling(obj Object) Object {
	switch obj := obj.(type) {
	case Dict:
		for key, val := range obj {
			if ref, ok := val.(Reference); ok && !f.exists(ref) {
				delete(obj, key)
				continue
			}
			obj[key] = f.stripDangling(val)
		}
		return obj
	case Array:
		res := make(Array, 0, len(obj))
		for _, val := range obj {
			if ref, ok := val.(Reference); ok && !f.exists(ref) {
				continue
			}
			res = append(res, f.stripDangling(val))
		}
		return res
	case *Stream:
		f.stripDangling(obj.Dict)
		return obj
	default:
		return obj
	}
}

func (f *File) exists(ref Reference) bool {
	if ref.Generation() != 0 {
		return false
	}
	_, ok := f.objects[ref.Number()]
	return ok
}
