// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package oracle

import (
	"testing"

	"cogentcore.org/editkit/backend"
	"cogentcore.org/editkit/math32"
	"cogentcore.org/editkit/memstore"
	"cogentcore.org/editkit/serial"
	"cogentcore.org/editkit/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type lighting struct {
	Probes    []math32.Vector3
	Intensity float32
}

type renderer struct {
	Materials []value.ObjectRef `token:"ObjectRef:Material"`
	Lighting  lighting
	Weights   [4]float64
	Data      []byte
	Tags      []string
	Counts    []int8
}

func TestStatic(t *testing.T) {
	s := memstore.New()
	obj := s.Create("Renderer", "r")
	o := NewStatic().Array("Renderer", "materials", "ObjectRef").Single("Renderer", "enabled", "bool")
	ft, err := o.ElementType(obj, "materials")
	require.NoError(t, err)
	assert.Equal(t, backend.FieldType{Token: "ObjectRef", Array: true}, ft)
	ft, err = o.ElementType(obj, "enabled")
	require.NoError(t, err)
	assert.False(t, ft.Array)
	_, err = o.ElementType(obj, "missing")
	assert.ErrorIs(t, err, backend.ErrNotFound)
	_, err = o.ElementType(s.Create("Mesh", "m"), "materials")
	assert.ErrorIs(t, err, backend.ErrNotFound)
}

func TestSchema(t *testing.T) {
	s := memstore.New()
	obj := s.Create("Renderer", "r")
	o := NewSchema()
	require.NoError(t, Register[renderer](o, "Renderer"))
	assert.Error(t, o.Register("Bad", 3))

	cases := map[string]backend.FieldType{
		"materials":          {Token: "ObjectRef:Material", Array: true},
		"Lighting.Probes":    {Token: "Vector3", Array: true},
		"lighting.intensity": {Token: "Float32"},
		"weights":            {Token: "Float64", Array: true},
		"data":               {Token: "[]uint8"},
		"tags":               {Token: "String", Array: true},
		"counts":             {Token: "int8", Array: true},
	}
	for path, want := range cases {
		ft, err := o.ElementType(obj, path)
		require.NoError(t, err, path)
		assert.Equal(t, want, ft, path)
	}
	_, err := o.ElementType(obj, "lighting.missing")
	assert.ErrorIs(t, err, backend.ErrNotFound)
	_, err = o.ElementType(s.Create("Mesh", "m"), "materials")
	assert.ErrorIs(t, err, backend.ErrNotFound)
}

func TestSchemaOpensArrays(t *testing.T) {
	s := memstore.New()
	obj := s.Create("Renderer", "r")
	require.NoError(t, obj.Define("lighting.probes", "Vector3", true, math32.Vec3(1, 2, 3)))
	require.NoError(t, obj.Define("counts", "int8", true, int8(1)))
	o := NewSchema()
	require.NoError(t, o.Register("Renderer", &renderer{}))

	a, err := serial.OpenRelative(obj, "lighting", "probes", o)
	require.NoError(t, err)
	assert.Equal(t, value.Vector3Kind, a.Kind())
	v, err := a.Vector3(0)
	require.NoError(t, err)
	assert.Equal(t, math32.Vec3(1, 2, 3), v)

	g, err := serial.Open(obj, "counts", o)
	require.NoError(t, err)
	assert.False(t, g.Known())
}
