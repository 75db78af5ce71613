// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package serial provides type-erased, indexed access to array
// properties held in a host object store ([Array]), and replays the
// same logical edits across the array properties of several objects
// edited at once ([MultiArray]).
package serial

import (
	"fmt"
	"iter"

	"cogentcore.org/editkit/backend"
	"cogentcore.org/editkit/value"
)

// List is the set of operations shared by [Array] and [MultiArray].
type List interface {

	// Len returns the live number of elements.
	Len() int

	// SetLen resizes to the given length, clamped to be >= 0.
	SetLen(n int) error

	// Get returns the element at the given index.
	Get(i int) (any, error)

	// Set sets the element at the given index.
	Set(i int, v any) error

	// Insert inserts the value at the given index,
	// appending it if the index is >= Len.
	Insert(i int, v any) error

	// Append adds the value at the end.
	Append(v any) error

	// Remove removes the first element equal to the value,
	// returning whether one was removed.
	Remove(v any) (bool, error)

	// RemoveAll removes every element equal to the value,
	// returning the number removed.
	RemoveAll(v any) (int, error)

	// RemoveAt removes the element at the given index.
	RemoveAt(i int) error

	// Move moves the element at from to the index to,
	// shifting the elements in between.
	Move(from, to int) error

	// IndexOf returns the index of the first element equal
	// to the value, or -1 if there is none.
	IndexOf(v any) int

	// Contains returns whether an element is equal to the value.
	Contains(v any) bool

	// FirstMatch returns the first element equal to the value.
	FirstMatch(v any) (any, bool)

	// Clear removes all elements.
	Clear() error

	// Values returns a copy of all elements.
	Values() ([]any, error)

	// CopyTo copies all elements into dst starting at dst[start].
	CopyTo(dst []any, start int) error

	// All returns an iterator over the indexes and elements.
	All() iter.Seq2[int, any]

	// Kind returns the element kind, which is only
	// meaningful if Known returns true.
	Kind() value.Kind

	// Known returns whether the element type is one of the
	// registered value kinds. Arrays of other element types
	// hold raw backend values without kind checks.
	Known() bool

	// Path returns the property path.
	Path() string
}

// Open returns the [Array] for the array property at the given dot
// separated path of the given object, resolving its element type
// with the given oracle.
func Open(obj backend.Object, path string, oracle backend.Oracle) (*Array, error) {
	if obj == nil {
		return nil, &ConstructionError{Path: path, Reason: "nil object"}
	}
	if oracle == nil {
		return nil, &ConstructionError{Path: path, Reason: "nil type oracle"}
	}
	ft, err := oracle.ElementType(obj, path)
	if err != nil {
		return nil, &ConstructionError{Path: path, Reason: "cannot resolve element type", Err: err}
	}
	if !ft.Array {
		return nil, &ConstructionError{Path: path, Reason: fmt.Sprintf("property of type %q is not an array", ft.Token)}
	}
	prop, err := obj.Property(path)
	if err != nil {
		return nil, &ConstructionError{Path: path, Reason: "cannot get property", Err: err}
	}
	if prop == nil || !prop.IsArray() {
		return nil, &ConstructionError{Path: path, Reason: "property is not array shaped"}
	}
	a := &Array{obj: obj, prop: prop, path: path, token: ft.Token}
	a.kind, a.known = value.KindForToken(ft.Token)
	a.Typed = Typed{list: a}
	return a, nil
}

// OpenRelative is like [Open] for a path relative to the given
// parent path, for arrays nested inside other properties.
func OpenRelative(obj backend.Object, parent, path string, oracle backend.Oracle) (*Array, error) {
	if parent != "" {
		path = parent + "." + path
	}
	return Open(obj, path, oracle)
}

// OpenSelection opens the array property at the given path of the
// given selection of objects: an [Array] for a single object and a
// [MultiArray] for more than one.
func OpenSelection(objs []backend.Object, path string, oracle backend.Oracle) (List, error) {
	if len(objs) == 1 {
		return Open(objs[0], path, oracle)
	}
	return OpenMulti(objs, path, oracle)
}

// Collect returns all elements of the list as values of type T,
// failing with a [KindMismatchError] if any is not.
func Collect[T any](l List) ([]T, error) {
	vs, err := l.Values()
	if err != nil {
		return nil, err
	}
	res := make([]T, len(vs))
	for i, v := range vs {
		t, ok := v.(T)
		if !ok {
			return nil, &KindMismatchError{Want: l.Kind(), Have: fmt.Sprintf("%T at index %d", v, i)}
		}
		res[i] = t
	}
	return res, nil
}

// copyTo implements CopyTo for both list types.
func copyTo(l List, dst []any, start int) error {
	vs, err := l.Values()
	if err != nil {
		return err
	}
	if start < 0 || start > len(dst) {
		return &IndexError{Index: start, Len: len(dst) + 1, Op: "CopyTo"}
	}
	if len(dst)-start < len(vs) {
		return fmt.Errorf("serial: CopyTo: %d elements do not fit in %d slots from %d", len(vs), len(dst), start)
	}
	copy(dst[start:], vs)
	return nil
}

// all implements All for both list types.
func all(l List) iter.Seq2[int, any] {
	return func(yield func(int, any) bool) {
		for i := 0; i < l.Len(); i++ {
			v, err := l.Get(i)
			if err != nil || !yield(i, v) {
				return
			}
		}
	}
}
