// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package serial_test

import (
	"testing"

	"cogentcore.org/editkit/backend"
	"cogentcore.org/editkit/base/errors"
	"cogentcore.org/editkit/memstore"
	"cogentcore.org/editkit/serial"
	"cogentcore.org/editkit/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openMulti(t *testing.T, token string, lists ...[]any) (*serial.MultiArray, []backend.Object) {
	t.Helper()
	s, objs := newStore(t, token, lists...)
	m, err := serial.OpenMulti(objs, "items", s)
	require.NoError(t, err)
	return m, objs
}

// committed returns the committed values of each object's items.
func committed(t *testing.T, objs []backend.Object) [][]any {
	t.Helper()
	res := make([][]any, len(objs))
	for i, o := range objs {
		vs, err := o.(*memstore.Object).Values("items")
		require.NoError(t, err)
		res[i] = vs
	}
	return res
}

func ints(vs ...int32) []any {
	res := make([]any, len(vs))
	for i, v := range vs {
		res[i] = v
	}
	return res
}

func TestMultiSetSkipsShortTargets(t *testing.T) {
	m, objs := openMulti(t, "int", ints(1, 2, 3), ints(1, 2, 3, 4, 5), ints(1, 2, 3, 4, 5))
	require.NoError(t, m.Set(4, int32(9)))
	assert.Equal(t, [][]any{ints(1, 2, 3), ints(1, 2, 3, 4, 9), ints(1, 2, 3, 4, 9)}, committed(t, objs))
	require.NoError(t, m.Set(-1, int32(7)))
	assert.Equal(t, [][]any{ints(1, 2, 3), ints(1, 2, 3, 4, 9), ints(1, 2, 3, 4, 9)}, committed(t, objs))
	assert.ErrorIs(t, m.Set(0, "x"), serial.ErrKindMismatch)
}

func TestMultiRemoveAtByValue(t *testing.T) {
	x, y, z := value.NewObjectRef(), value.NewObjectRef(), value.NewObjectRef()
	m, objs := openMulti(t, "ObjectRef", []any{y, x, z}, []any{x, y, z})
	require.NoError(t, m.RemoveAt(1))
	assert.Equal(t, [][]any{{x, z}, {x, z}}, committed(t, objs))
	assert.ErrorIs(t, m.RemoveAt(2), serial.ErrIndex)
}

func TestMultiRemoveAtFirstMatch(t *testing.T) {
	tests := []struct {
		name  string
		lists [][]any
		index int
		want  [][]any
	}{
		{"aligned duplicates", [][]any{ints(7, 8, 7), ints(7, 8, 7)}, 2, [][]any{ints(8, 7), ints(8, 7)}},
		{"primary duplicate", [][]any{ints(5, 7), ints(7, 5, 7)}, 2, [][]any{ints(5), ints(5, 7)}},
		{"absent in secondary", [][]any{ints(1, 2), ints(3, 4)}, 0, [][]any{ints(1, 2), ints(4)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, objs := openMulti(t, "int", tt.lists...)
			require.NoError(t, m.RemoveAt(tt.index))
			assert.Equal(t, tt.want, committed(t, objs))
		})
	}
}

func TestMultiSetLen(t *testing.T) {
	m, objs := openMulti(t, "int", ints(1), ints(1, 2, 3, 4), ints())
	require.NoError(t, m.SetLen(2))
	assert.Equal(t, [][]any{ints(1, 0), ints(1, 2), ints(0, 0)}, committed(t, objs))
	require.NoError(t, m.SetLen(-1))
	assert.Equal(t, [][]any{{}, {}, {}}, committed(t, objs))
	assert.Equal(t, 0, m.Len())
}

func TestMultiInsert(t *testing.T) {
	m, objs := openMulti(t, "int", ints(1), ints(1, 2, 3))
	require.NoError(t, m.Insert(2, int32(9)))
	assert.Equal(t, [][]any{ints(1, 9), ints(1, 2, 9, 3)}, committed(t, objs))
	require.NoError(t, m.Append(int32(4)))
	assert.Equal(t, [][]any{ints(1, 9, 4), ints(1, 2, 9, 3, 4)}, committed(t, objs))
	assert.ErrorIs(t, m.Insert(-1, int32(0)), serial.ErrIndex)
}

func TestMultiRemove(t *testing.T) {
	m, objs := openMulti(t, "int", ints(1, 2, 2), ints(3))
	ok, err := m.Remove(int32(2))
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = m.Remove(int32(8))
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, [][]any{ints(1, 2), ints(3)}, committed(t, objs))

	m, objs = openMulti(t, "int", ints(1, 2, 2), ints(2, 2, 3))
	n, err := m.RemoveAll(int32(2))
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.Equal(t, [][]any{ints(1), ints(3)}, committed(t, objs))
	require.NoError(t, m.Clear())
	assert.Equal(t, [][]any{{}, {}}, committed(t, objs))
}

func TestMultiMove(t *testing.T) {
	m, objs := openMulti(t, "string",
		[]any{"c", "a", "b"}, // a moves from 1 to 2
		[]any{"a", "x"},      // to is out of range: skipped
		[]any{"x", "y", "z"}, // a is absent: skipped
		[]any{"b", "c", "a"}, // a is already at 2: skipped
		[]any{"a", "b", "c"}, // primary
	)
	require.NoError(t, m.Move(0, 2))
	assert.Equal(t, [][]any{
		{"c", "b", "a"},
		{"a", "x"},
		{"x", "y", "z"},
		{"b", "c", "a"},
		{"b", "c", "a"},
	}, committed(t, objs))
	require.NoError(t, m.Move(2, 0))
	assert.Equal(t, []any{"a", "b", "c"}, values(t, m))
	assert.ErrorIs(t, m.Move(3, 0), serial.ErrIndex)
	assert.ErrorIs(t, m.Move(-1, 0), serial.ErrIndex)
}

func TestMultiMoveTargets(t *testing.T) {
	tests := []struct {
		name     string
		lists    [][]any
		from, to int
		want     [][]any
	}{
		{"to only in range for secondary", [][]any{ints(1, 2, 3, 4), ints(2, 1)}, 0, 3,
			[][]any{ints(1, 3, 4, 2), ints(2, 1)}},
		{"aligned duplicates", [][]any{ints(7, 8, 7), ints(7, 8, 7)}, 2, 0,
			[][]any{ints(7, 8, 7), ints(7, 8, 7)}},
		{"aligned duplicates forward", [][]any{ints(7, 8, 7), ints(7, 8, 7)}, 2, 1,
			[][]any{ints(8, 7, 7), ints(8, 7, 7)}},
		{"same index moves secondaries", [][]any{ints(3, 1, 2), ints(1, 2, 3)}, 2, 2,
			[][]any{ints(1, 2, 3), ints(1, 2, 3)}},
		{"negative to", [][]any{ints(1, 2), ints(1, 2)}, 0, -1,
			[][]any{ints(1, 2), ints(1, 2)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, objs := openMulti(t, "int", tt.lists...)
			require.NoError(t, m.Move(tt.from, tt.to))
			assert.Equal(t, tt.want, committed(t, objs))
		})
	}
}

func TestMultiMoveReadsCommittedState(t *testing.T) {
	m, objs := openMulti(t, "int", ints(1, 2, 3), ints(1, 2, 3))
	// commit through another view of the primary
	other, err := objs[1].(*memstore.Object).View("items")
	require.NoError(t, err)
	require.NoError(t, backend.Apply(other, func() error { return other.MoveElement(0, 2) }))
	require.NoError(t, m.Move(0, 2))
	assert.Equal(t, [][]any{ints(1, 3, 2), ints(3, 1, 2)}, committed(t, objs))
}

func TestMultiReads(t *testing.T) {
	m, objs := openMulti(t, "float", []any{float32(1)}, []any{float32(2), float32(3)})
	assert.Equal(t, 2, m.Len())
	v, err := m.Float32(1)
	require.NoError(t, err)
	assert.Equal(t, float32(3), v)
	_, err = m.Get(m.Len())
	assert.ErrorIs(t, err, serial.ErrIndex)
	_, err = m.Get(-1)
	assert.ErrorIs(t, err, serial.ErrIndex)
	assert.Equal(t, 1, m.IndexOf(float32(3)))
	assert.False(t, m.Contains(float32(1)))
	assert.Equal(t, objs, m.Targets())
	assert.Equal(t, objs[1], m.Primary().Object())
	assert.Equal(t, value.Float32Kind, m.Kind())
	assert.Equal(t, "items", m.Path())
	require.NoError(t, m.SetFloat32(0, 5))
	assert.Equal(t, [][]any{{float32(5)}, {float32(5), float32(3)}}, committed(t, objs))
}

func TestOpenMultiErrors(t *testing.T) {
	s, objs := newStore(t, "int", ints(1))
	_, err := serial.OpenMulti(nil, "items", s)
	assert.ErrorIs(t, err, serial.ErrConstruction)
	_, err = serial.OpenMulti([]backend.Object{objs[0], nil}, "items", s)
	assert.ErrorIs(t, err, serial.ErrConstruction)
}

// failingObject wraps an object so that its property views reject
// SetElement, and counts transactions.
type failingObject struct {
	*memstore.Object
	updates, commits int
}

func (f *failingObject) Property(path string) (backend.Property, error) {
	p, err := f.Object.Property(path)
	if err != nil {
		return nil, err
	}
	return &failingProperty{Property: p, obj: f}, nil
}

type failingProperty struct {
	backend.Property
	obj *failingObject
}

func (p *failingProperty) SetElement(i int, v any) error {
	return errors.New("rejected")
}

func (p *failingProperty) Update() error {
	p.obj.updates++
	return p.Property.Update()
}

func (p *failingProperty) Commit() error {
	p.obj.commits++
	return p.Property.Commit()
}

func TestMultiFailureIsNotRolledBack(t *testing.T) {
	s, objs := newStore(t, "int", ints(1), ints(1), ints(1))
	bad := &failingObject{Object: objs[1].(*memstore.Object)}
	targets := []backend.Object{objs[0], bad, objs[2]}
	m, err := serial.OpenMulti(targets, "items", s)
	require.NoError(t, err)
	err = m.Set(0, int32(7))
	assert.ErrorContains(t, err, "rejected")
	assert.Equal(t, [][]any{ints(7), ints(1), ints(1)}, committed(t, objs))
	assert.Equal(t, 1, bad.updates)
	assert.Equal(t, 1, bad.commits)
}

func TestRemoveDuplicates(t *testing.T) {
	a, b, c := value.NewObjectRef(), value.NewObjectRef(), value.NewObjectRef()
	s, objs := newStore(t, "ObjectRef", []any{a, b, a, c, b})
	arr, err := serial.Open(objs[0], "items", s)
	require.NoError(t, err)
	n, err := serial.RemoveDuplicates(arr)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, [][]any{{a, b, c}}, committed(t, objs))

	n, err = serial.RemoveDuplicates(arr)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}
