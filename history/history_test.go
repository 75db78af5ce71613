// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package history

import (
	"testing"

	"cogentcore.org/editkit/backend"
	"cogentcore.org/editkit/memstore"
	"cogentcore.org/editkit/serial"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func values(t *testing.T, o *memstore.Object) []any {
	t.Helper()
	vs, err := o.Values("items")
	require.NoError(t, err)
	return vs
}

func TestUndoRedo(t *testing.T) {
	s := memstore.New()
	m := Attach(s)
	o := s.Create("Thing", "a")
	require.NoError(t, o.Define("items", "string", true, "x"))
	a, err := serial.Open(o, "items", s)
	require.NoError(t, err)

	assert.False(t, m.IsUndoAvailable())
	require.NoError(t, a.Apply(func() error { return a.Append("y") }))
	require.NoError(t, a.Apply(func() error { return a.Set(0, "z") }))
	assert.Equal(t, []any{"z", "y"}, values(t, o))
	require.Len(t, m.Records, 2)
	assert.Equal(t, "edit items", m.Records[0].Action)

	recs, err := m.Undo()
	require.NoError(t, err)
	assert.Len(t, recs, 1)
	assert.Equal(t, []any{"x", "y"}, values(t, o))
	_, err = m.Undo()
	require.NoError(t, err)
	assert.Equal(t, []any{"x"}, values(t, o))
	recs, err = m.Undo()
	require.NoError(t, err)
	assert.Nil(t, recs)
	assert.True(t, m.IsRedoAvailable())

	_, err = m.Redo()
	require.NoError(t, err)
	assert.Equal(t, []any{"x", "y"}, values(t, o))

	// a new change discards the redo records
	require.NoError(t, a.Property().Update())
	require.NoError(t, a.Apply(func() error { return a.Clear() }))
	assert.False(t, m.IsRedoAvailable())
	assert.Len(t, m.Records, 2)
	recs, err = m.Redo()
	require.NoError(t, err)
	assert.Nil(t, recs)
}

func TestGroup(t *testing.T) {
	s := memstore.New()
	m := Attach(s)
	var objs []backend.Object
	var things []*memstore.Object
	for _, name := range []string{"a", "b", "c"} {
		o := s.Create("Thing", name)
		require.NoError(t, o.Define("items", "int", true, int32(1)))
		objs = append(objs, o)
		things = append(things, o)
	}
	ma, err := serial.OpenMulti(objs, "items", s)
	require.NoError(t, err)
	require.NoError(t, m.Group("append 2", func() error { return ma.Append(int32(2)) }))
	require.NoError(t, ma.Append(int32(3)))
	require.Len(t, m.Records, 6)

	for range 3 {
		recs, err := m.Undo()
		require.NoError(t, err)
		assert.Len(t, recs, 1)
	}
	recs, err := m.Undo()
	require.NoError(t, err)
	require.Len(t, recs, 3)
	assert.Equal(t, "append 2", recs[0].Action)
	for _, o := range things {
		assert.Equal(t, []any{int32(1)}, values(t, o))
	}
	recs, err = m.Redo()
	require.NoError(t, err)
	assert.Len(t, recs, 3)
	for _, o := range things {
		assert.Equal(t, []any{int32(1), int32(2)}, values(t, o))
	}
}

func TestMax(t *testing.T) {
	s := memstore.New()
	m := Attach(s)
	m.Max = 2
	o := s.Create("Thing", "a")
	require.NoError(t, o.Define("items", "int", true))
	a, err := serial.Open(o, "items", s)
	require.NoError(t, err)
	for i := range 4 {
		require.NoError(t, a.Apply(func() error { return a.Append(int32(i)) }))
	}
	assert.Len(t, m.Records, 2)
	assert.Equal(t, 1, m.Index)
	m.Reset()
	assert.False(t, m.IsUndoAvailable())
}
