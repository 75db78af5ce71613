// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package memstore

import (
	"testing"

	"cogentcore.org/editkit/backend"
	"cogentcore.org/editkit/math32"
	"cogentcore.org/editkit/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type changes []Change

func (c *changes) Record(ch Change) { *c = append(*c, ch) }

func TestFind(t *testing.T) {
	s := New()
	s.Create("Material", "Stone")
	s.Create("Material", "Steel")
	s.Create("Mesh", "Stairs")
	objs, err := s.Find("Material", "St*")
	require.NoError(t, err)
	assert.Len(t, objs, 2)
	objs, err = s.Find("", "Sta*")
	require.NoError(t, err)
	require.Len(t, objs, 1)
	assert.Equal(t, "Mesh", objs[0].TypeName())
	objs, err = s.Find("", "")
	require.NoError(t, err)
	assert.Len(t, objs, 3)
	_, err = s.Find("", "[")
	assert.Error(t, err)
}

func TestCreateAndResolve(t *testing.T) {
	s := New()
	a := s.Create("Prefab", "A")
	_, err := s.CreateWithRef(a.Ref(), "Prefab", "B")
	assert.Error(t, err)
	_, err = s.CreateWithRef(value.ObjectRef{}, "Prefab", "B")
	assert.Error(t, err)

	got, err := s.Resolve(a.Ref())
	require.NoError(t, err)
	assert.Equal(t, a, got)
	_, err = s.Resolve(value.NewObjectRef())
	assert.ErrorIs(t, err, backend.ErrNotFound)

	assert.True(t, s.Delete(a.Ref()))
	assert.False(t, s.Delete(a.Ref()))
	assert.Equal(t, 0, s.Len())
	_, err = a.Property("x")
	assert.ErrorIs(t, err, backend.ErrNotFound)
}

func TestDefine(t *testing.T) {
	s := New()
	o := s.Create("Light", "Sun")
	require.NoError(t, o.Define("intensity", "float", false))
	require.NoError(t, o.Define("colors", "Color", true, value.RGBA(1, 1, 1, 1)))
	require.NoError(t, o.Define("settings.bias", "float32", false, float32(0.5)))
	assert.Error(t, o.Define("bad", "float", true, "x"))
	assert.Error(t, o.Define("two", "int", false, int32(1), int32(2)))
	assert.Error(t, o.Define(".x", "int", false))
	assert.Equal(t, []string{"intensity", "colors", "settings.bias"}, o.Paths())

	vs, err := o.Values("intensity")
	require.NoError(t, err)
	assert.Equal(t, []any{float32(0)}, vs)

	ft, err := s.ElementType(o, "colors")
	require.NoError(t, err)
	assert.Equal(t, backend.FieldType{Token: "Color", Array: true}, ft)
	_, err = s.ElementType(o, "missing")
	assert.ErrorIs(t, err, backend.ErrNotFound)
}

func TestPropertyView(t *testing.T) {
	s := New()
	var rec changes
	s.Recorder = &rec
	o := s.Create("Path", "Route")
	require.NoError(t, o.Define("points", "Vector3", true, math32.Vec3(1, 0, 0)))

	p, err := o.View("points")
	require.NoError(t, err)
	assert.True(t, p.IsArray())
	assert.Equal(t, 1, p.Count())
	require.NoError(t, p.SetCount(3))
	v, err := p.Element(2)
	require.NoError(t, err)
	assert.Equal(t, math32.Vector3{}, v)
	assert.Error(t, p.SetElement(1, float32(1)))
	require.NoError(t, p.SetElement(1, math32.Vec3(2, 0, 0)))
	require.NoError(t, p.MoveElement(0, 2))
	_, err = p.Element(3)
	assert.Error(t, err)
	assert.Error(t, p.SetCount(-1))

	// uncommitted changes are not visible in the store, and
	// survive an Update of the view
	vs, _ := o.Values("points")
	assert.Len(t, vs, 1)
	require.NoError(t, p.Update())
	assert.Equal(t, 3, p.Count())

	require.NoError(t, p.Commit())
	vs, _ = o.Values("points")
	assert.Equal(t, []any{math32.Vec3(2, 0, 0), math32.Vector3{}, math32.Vec3(1, 0, 0)}, vs)
	require.Len(t, rec, 1)
	assert.Equal(t, "points", rec[0].Path)
	assert.Len(t, rec[0].Before, 1)
	assert.Len(t, rec[0].After, 3)
	assert.Equal(t, 1, p.Commits())

	// an unchanged commit is not recorded
	require.NoError(t, p.SetElement(0, math32.Vec3(2, 0, 0)))
	require.NoError(t, p.Commit())
	assert.Len(t, rec, 1)

	// a clean view picks up changes made through other views
	q, err := o.View("points")
	require.NoError(t, err)
	require.NoError(t, q.DeleteElement(0))
	require.NoError(t, q.Commit())
	require.NoError(t, p.Update())
	assert.Equal(t, 2, p.Count())
}

func TestSingleProperty(t *testing.T) {
	s := New()
	o := s.Create("Light", "Sun")
	require.NoError(t, o.Define("target", "ObjectRef:Transform", false))
	p, err := o.View("target")
	require.NoError(t, err)
	assert.False(t, p.IsArray())
	assert.Equal(t, 1, p.Count())
	assert.Error(t, p.SetCount(2))
	assert.Error(t, p.DeleteElement(0))
	ref := value.NewObjectRef()
	require.NoError(t, p.SetElement(0, ref))
	require.NoError(t, p.Commit())
	vs, _ := o.Values("target")
	assert.Equal(t, []any{ref}, vs)
}

func TestUnknownToken(t *testing.T) {
	s := New()
	o := s.Create("Thing", "T")
	require.NoError(t, o.Define("bytes", "uint8", true, 1, "anything"))
	p, err := o.View("bytes")
	require.NoError(t, err)
	require.NoError(t, p.SetCount(3))
	v, err := p.Element(2)
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestRestoreAndReset(t *testing.T) {
	s := New()
	var rec changes
	s.Recorder = &rec
	o := s.Create("Thing", "T")
	require.NoError(t, o.Define("n", "int", true, int32(1)))
	require.NoError(t, s.Restore(o.Ref(), "n", []any{int32(5), int32(6)}))
	vs, _ := o.Values("n")
	assert.Equal(t, []any{int32(5), int32(6)}, vs)
	assert.Empty(t, rec)
	assert.ErrorIs(t, s.Restore(o.Ref(), "m", nil), backend.ErrNotFound)

	other := New()
	n := other.Create("Thing", "U")
	s.Reset(other)
	assert.Equal(t, 1, s.Len())
	_, ok := s.Object(n.Ref())
	assert.True(t, ok)
	_, ok = s.Object(o.Ref())
	assert.False(t, ok)
	assert.Nil(t, o.Paths())
}
