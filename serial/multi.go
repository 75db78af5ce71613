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

// MultiArray replays edits to an array property across several
// objects edited at once. Reads come from the primary target, which
// is the last one in selection order. Every mutation is applied to
// each target in its own transaction, in order; a failing target
// stops the fan-out, leaving earlier targets committed and later
// ones untouched.
//
// Targets may hold arrays of different lengths, and the mutations
// are best effort with respect to them: indexed edits skip the
// targets an index does not fit, and removals and moves locate the
// element by value in each target rather than by position.
type MultiArray struct {
	Typed

	targets []*Array
}

var _ List = (*MultiArray)(nil)

// OpenMulti opens the array property at the given path on every
// given object, in selection order.
func OpenMulti(objs []backend.Object, path string, oracle backend.Oracle) (*MultiArray, error) {
	if len(objs) == 0 {
		return nil, &ConstructionError{Path: path, Reason: "no target objects"}
	}
	m := &MultiArray{targets: make([]*Array, len(objs))}
	for i, obj := range objs {
		a, err := Open(obj, path, oracle)
		if err != nil {
			return nil, err
		}
		m.targets[i] = a
	}
	m.Typed = Typed{list: m}
	return m, nil
}

// Primary returns the handle of the primary target.
func (m *MultiArray) Primary() *Array { return m.targets[len(m.targets)-1] }

// Handles returns the handles of all targets, in selection order.
func (m *MultiArray) Handles() []*Array { return m.targets }

// Targets returns the target objects, in selection order.
func (m *MultiArray) Targets() []backend.Object {
	objs := make([]backend.Object, len(m.targets))
	for i, t := range m.targets {
		objs[i] = t.obj
	}
	return objs
}

func (m *MultiArray) Kind() value.Kind { return m.Primary().Kind() }

func (m *MultiArray) Known() bool { return m.Primary().Known() }

func (m *MultiArray) Path() string { return m.Primary().Path() }

func (m *MultiArray) String() string {
	return fmt.Sprintf("%d x %s", len(m.targets), m.Primary())
}

// each runs fn on every target inside its own transaction.
func (m *MultiArray) each(fn func(t *Array) error) error {
	for _, t := range m.targets {
		if err := t.Apply(func() error { return fn(t) }); err != nil {
			return err
		}
	}
	return nil
}

func (m *MultiArray) Len() int { return m.Primary().Len() }

// SetLen sets every target to the same length.
func (m *MultiArray) SetLen(n int) error {
	return m.each(func(t *Array) error { return t.SetLen(n) })
}

func (m *MultiArray) Get(i int) (any, error) { return m.Primary().Get(i) }

// Set sets the element at the given index in every target long
// enough to have it; shorter targets are skipped, and so are all
// targets for a negative index.
func (m *MultiArray) Set(i int, v any) error {
	if err := m.Primary().checkValue(v); err != nil {
		return err
	}
	if i < 0 {
		return nil
	}
	return m.each(func(t *Array) error {
		if i >= t.Len() {
			return nil
		}
		return t.Set(i, v)
	})
}

// Insert inserts the value into every target, at the given index
// or at the end of targets shorter than that.
func (m *MultiArray) Insert(i int, v any) error {
	if i < 0 {
		return &IndexError{Index: i, Len: m.Len() + 1, Op: "Insert"}
	}
	if err := m.Primary().checkValue(v); err != nil {
		return err
	}
	return m.each(func(t *Array) error { return t.Insert(min(i, t.Len()), v) })
}

// Append adds the value at the end of every target.
func (m *MultiArray) Append(v any) error {
	if err := m.Primary().checkValue(v); err != nil {
		return err
	}
	return m.each(func(t *Array) error { return t.Append(v) })
}

// Remove removes the first element equal to the value from every
// target, returning whether any target removed one.
func (m *MultiArray) Remove(v any) (bool, error) {
	removed := false
	err := m.each(func(t *Array) error {
		ok, err := t.Remove(v)
		removed = removed || ok
		return err
	})
	return removed, err
}

// RemoveAll removes every element equal to the value from every
// target, returning the total number removed.
func (m *MultiArray) RemoveAll(v any) (int, error) {
	total := 0
	err := m.each(func(t *Array) error {
		n, err := t.RemoveAll(v)
		total += n
		return err
	})
	return total, err
}

// current returns the element at the given index of the primary
// target, reloaded from the backend.
func (m *MultiArray) current(i int, op string) (any, error) {
	primary := m.Primary()
	var e any
	err := primary.Apply(func() error {
		if err := primary.checkIndex(i, op); err != nil {
			return err
		}
		var err error
		e, err = primary.Get(i)
		return err
	})
	return e, err
}

// RemoveAt removes the first element equal to the element at the
// given index of the primary target from every target.
func (m *MultiArray) RemoveAt(i int) error {
	e, err := m.current(i, "RemoveAt")
	if err != nil {
		return err
	}
	return m.each(func(t *Array) error {
		_, err := t.Remove(e)
		return err
	})
}

// Move moves the first element equal to the element at from in the
// primary target to the index to, in every target. Targets where to
// is out of range, the element is missing, or already at to, are
// skipped.
func (m *MultiArray) Move(from, to int) error {
	e, err := m.current(from, "Move")
	if err != nil {
		return err
	}
	return m.each(func(t *Array) error {
		if to < 0 || to >= t.Len() {
			return nil
		}
		pos := t.IndexOf(e)
		if pos < 0 || pos == to {
			return nil
		}
		return t.Move(pos, to)
	})
}

func (m *MultiArray) IndexOf(v any) int { return m.Primary().IndexOf(v) }

func (m *MultiArray) Contains(v any) bool { return m.Primary().Contains(v) }

func (m *MultiArray) FirstMatch(v any) (any, bool) { return m.Primary().FirstMatch(v) }

// Clear removes all elements from every target.
func (m *MultiArray) Clear() error { return m.SetLen(0) }

func (m *MultiArray) Values() ([]any, error) { return m.Primary().Values() }

func (m *MultiArray) CopyTo(dst []any, start int) error { return copyTo(m, dst, start) }

func (m *MultiArray) All() iter.Seq2[int, any] { return all(m) }
