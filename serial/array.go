// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package serial

import (
	"fmt"
	"iter"

	"cogentcore.org/editkit/backend"
	"cogentcore.org/editkit/value"
)

// Array is a handle on one array property of one object in the host
// store. It caches the element kind, but never the length, which is
// always read from the store. Its operations do not open transactions:
// callers wrap mutations with [Array.Apply] or [backend.Apply].
// An Array does not own its object.
type Array struct {
	Typed

	obj   backend.Object
	prop  backend.Property
	path  string
	token string
	kind  value.Kind
	known bool
}

var _ List = (*Array)(nil)

func (a *Array) Kind() value.Kind { return a.kind }

func (a *Array) Known() bool { return a.known }

// Token returns the element type token resolved by the type oracle.
func (a *Array) Token() string { return a.token }

func (a *Array) Path() string { return a.path }

// Object returns the object holding the array property.
func (a *Array) Object() backend.Object { return a.obj }

// Property returns the backend property view.
func (a *Array) Property() backend.Property { return a.prop }

func (a *Array) String() string {
	return fmt.Sprintf("%s.%s [%d]%s", a.obj.Name(), a.path, a.Len(), a.token)
}

// Apply runs fn as one transaction on the array property.
func (a *Array) Apply(fn func() error) error {
	return backend.Apply(a.prop, fn)
}

func (a *Array) wrap(op string, err error) error {
	return fmt.Errorf("serial: %s %s: %w", op, a.path, err)
}

// checkIndex returns an [IndexError] if i is outside of [0, Len()).
func (a *Array) checkIndex(i int, op string) error {
	if n := a.Len(); i < 0 || i >= n {
		return &IndexError{Index: i, Len: n, Op: op}
	}
	return nil
}

// checkValue returns a [KindMismatchError] if v is not of the element kind.
func (a *Array) checkValue(v any) error {
	if a.known && !value.Conforms(a.kind, v) {
		return &KindMismatchError{Want: a.kind, Have: fmt.Sprintf("%T", v)}
	}
	return nil
}

func (a *Array) Len() int { return a.prop.Count() }

func (a *Array) SetLen(n int) error {
	if err := a.prop.SetCount(max(n, 0)); err != nil {
		return a.wrap("SetLen", err)
	}
	return nil
}

func (a *Array) Get(i int) (any, error) {
	if err := a.checkIndex(i, "Get"); err != nil {
		return nil, err
	}
	v, err := a.prop.Element(i)
	if err != nil {
		return nil, a.wrap("Get", err)
	}
	return value.Clone(v), nil
}

func (a *Array) Set(i int, v any) error {
	if err := a.checkIndex(i, "Set"); err != nil {
		return err
	}
	if err := a.checkValue(v); err != nil {
		return err
	}
	if err := a.prop.SetElement(i, value.Clone(v)); err != nil {
		return a.wrap("Set", err)
	}
	return nil
}

// Insert inserts the value at the given index, which must be >= 0.
// For an index >= Len the value is appended. Otherwise the array grows
// by one and the elements from the index on ripple forward one slot.
func (a *Array) Insert(i int, v any) error {
	if i < 0 {
		return &IndexError{Index: i, Len: a.Len() + 1, Op: "Insert"}
	}
	if err := a.checkValue(v); err != nil {
		return err
	}
	n := a.Len()
	if err := a.prop.SetCount(n + 1); err != nil {
		return a.wrap("Insert", err)
	}
	if i > n {
		i = n
	}
	carry := value.Clone(v)
	for j := i; j <= n; j++ {
		var next any
		if j < n {
			var err error
			next, err = a.prop.Element(j)
			if err != nil {
				return a.wrap("Insert", err)
			}
		}
		if err := a.prop.SetElement(j, carry); err != nil {
			return a.wrap("Insert", err)
		}
		carry = next
	}
	return nil
}

func (a *Array) Append(v any) error {
	return a.Insert(a.Len(), v)
}

func (a *Array) Remove(v any) (bool, error) {
	i := a.IndexOf(v)
	if i < 0 {
		return false, nil
	}
	if err := a.RemoveAt(i); err != nil {
		return false, err
	}
	return true, nil
}

// RemoveAll removes every element equal to the value in one pass:
// after a removal the same index is read again, as the following
// elements have shifted down into it.
func (a *Array) RemoveAll(v any) (int, error) {
	removed := 0
	for i := 0; i < a.Len(); {
		e, err := a.prop.Element(i)
		if err != nil {
			return removed, a.wrap("RemoveAll", err)
		}
		if !value.Equal(e, v) {
			i++
			continue
		}
		if err := a.prop.DeleteElement(i); err != nil {
			return removed, a.wrap("RemoveAll", err)
		}
		removed++
	}
	return removed, nil
}

func (a *Array) RemoveAt(i int) error {
	if err := a.checkIndex(i, "RemoveAt"); err != nil {
		return err
	}
	if err := a.prop.DeleteElement(i); err != nil {
		return a.wrap("RemoveAt", err)
	}
	return nil
}

// Move moves the element at from to the index to, keeping the
// relative order of all other elements. It does nothing if from == to.
func (a *Array) Move(from, to int) error {
	if from == to {
		return nil
	}
	if err := a.checkIndex(from, "Move"); err != nil {
		return err
	}
	if err := a.checkIndex(to, "Move"); err != nil {
		return err
	}
	if err := a.prop.MoveElement(from, to); err != nil {
		return a.wrap("Move", err)
	}
	return nil
}

// IndexOf returns the index of the first element equal to the value,
// or -1. Object references compare by identity and all other values
// compare by value.
func (a *Array) IndexOf(v any) int {
	for i := range a.Len() {
		e, err := a.prop.Element(i)
		if err != nil {
			return -1
		}
		if value.Equal(e, v) {
			return i
		}
	}
	return -1
}

func (a *Array) Contains(v any) bool { return a.IndexOf(v) >= 0 }

func (a *Array) FirstMatch(v any) (any, bool) {
	i := a.IndexOf(v)
	if i < 0 {
		return nil, false
	}
	e, err := a.Get(i)
	return e, err == nil
}

func (a *Array) Clear() error { return a.SetLen(0) }

func (a *Array) Values() ([]any, error) {
	n := a.Len()
	vs := make([]any, n)
	for i := range n {
		v, err := a.prop.Element(i)
		if err != nil {
			return nil, a.wrap("Values", err)
		}
		vs[i] = value.Clone(v)
	}
	return vs, nil
}

func (a *Array) CopyTo(dst []any, start int) error { return copyTo(a, dst, start) }

func (a *Array) All() iter.Seq2[int, any] { return all(a) }
