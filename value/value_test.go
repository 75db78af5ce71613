// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value_test

import (
	"testing"

	"cogentcore.org/editkit/base/errors"
	"cogentcore.org/editkit/math32"
	"cogentcore.org/editkit/value"
	"cogentcore.org/editkit/value/valuetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestRegistryCoversAllKinds(t *testing.T) {
	samples := valuetest.Samples()
	for _, k := range value.KindValues() {
		s, ok := samples[k]
		require.True(t, ok, k.String())
		assert.NotNil(t, k.Type(), k.String())
		assert.True(t, value.Conforms(k, value.Zero(k)), k.String())
		for _, v := range s {
			got, ok := value.KindOf(v)
			assert.True(t, ok)
			assert.Equal(t, k, got)
		}
		assert.False(t, value.Equal(s[0], s[1]), k.String())
		assert.True(t, value.Equal(s[0], value.Clone(s[0])), k.String())
	}
	assert.Nil(t, value.Zero(value.KindN))
	assert.Nil(t, value.KindN.Type())
}

func TestKindEnum(t *testing.T) {
	assert.Equal(t, "Vector3Int", value.Vector3IntKind.String())
	var k value.Kind
	require.NoError(t, k.SetString("Quaternion"))
	assert.Equal(t, value.QuaternionKind, k)
	assert.Error(t, k.SetString("Matrix"))
	b, err := value.ColorKind.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "Color", string(b))
	assert.Len(t, value.KindValues(), int(value.KindN))
}

func TestKindForToken(t *testing.T) {
	cases := map[string]value.Kind{
		"float32":            value.Float32Kind,
		"float":              value.Float32Kind,
		"double":             value.Float64Kind,
		"Vector3":            value.Vector3Kind,
		"vector3int":         value.Vector3IntKind,
		"ObjectRef":          value.ObjectRefKind,
		"ObjectRef:Material": value.ObjectRefKind,
		"AnimationCurve":     value.AnimationCurveKind,
		" Bool ":             value.BoolKind,
	}
	for tok, want := range cases {
		k, ok := value.KindForToken(tok)
		assert.True(t, ok, tok)
		assert.Equal(t, want, k, tok)
	}
	for _, tok := range []string{"int8", "Matrix4x4", "", "Foo:Bar"} {
		_, ok := value.KindForToken(tok)
		assert.False(t, ok, tok)
	}
	for _, k := range value.KindValues() {
		got, ok := value.KindForToken(k.String())
		assert.True(t, ok)
		assert.Equal(t, k, got)
		assert.Equal(t, k.String(), value.TokenForType(k.Type()))
	}
}

func TestEqual(t *testing.T) {
	r := value.NewObjectRef()
	assert.True(t, value.Equal(r, value.ObjectRef{ID: r.ID}))
	assert.False(t, value.Equal(r, value.ObjectRef{}))
	assert.False(t, value.Equal(int32(1), int64(1)))
	assert.False(t, value.Equal(int32(1), int8(1)))
	assert.True(t, value.Equal(int8(3), int8(3)))
	assert.True(t, value.Equal(value.Curve{}, value.Curve{Keys: []value.Keyframe{}}))
}

func TestCloneDoesNotAlias(t *testing.T) {
	c := value.LinearCurve(0, 0, 1, 1)
	cc := value.Clone(c).(value.Curve)
	cc.Keys[0].Value = 5
	assert.Equal(t, float32(0), c.Keys[0].Value)

	g := value.Gradient{AlphaKeys: []value.AlphaKey{{Alpha: 1, Time: 0}}}
	gc := value.Clone(g).(value.Gradient)
	gc.AlphaKeys[0].Alpha = 0
	assert.Equal(t, float32(1), g.AlphaKeys[0].Alpha)
}

func TestEncodeDecodeYAML(t *testing.T) {
	for k, s := range valuetest.Samples() {
		for _, v := range s {
			b, err := yaml.Marshal(value.Encode(k, v))
			require.NoError(t, err)
			var raw any
			require.NoError(t, yaml.Unmarshal(b, &raw))
			got, err := value.Decode(k, raw)
			require.NoError(t, err, "%v: %s", k, b)
			assert.True(t, value.Equal(v, got), "%v: %v != %v", k, v, got)
		}
	}
}

func TestFormatParse(t *testing.T) {
	for k, s := range valuetest.Samples() {
		for _, v := range s {
			txt := value.Format(v)
			got, err := value.Parse(k, txt)
			require.NoError(t, err, "%v: %q", k, txt)
			assert.True(t, value.Equal(v, got), "%v: %q gave %v", k, txt, got)
		}
	}
}

func TestParseForms(t *testing.T) {
	v, err := value.Parse(value.Vector3Kind, "1, 2, 3")
	require.NoError(t, err)
	assert.Equal(t, math32.Vec3(1, 2, 3), v)

	v, err = value.Parse(value.RectKind, "[0, 0, 2, 3]")
	require.NoError(t, err)
	assert.Equal(t, math32.B2(0, 0, 2, 3), v)

	v, err = value.Parse(value.ColorKind, "#ff0000")
	require.NoError(t, err)
	assert.Equal(t, value.RGBA(1, 0, 0, 1), v)

	v, err = value.Parse(value.ColorKind, "#f00")
	require.NoError(t, err)
	assert.Equal(t, value.RGBA(1, 0, 0, 1), v)

	v, err = value.Parse(value.ColorKind, "#00ff0033")
	require.NoError(t, err)
	assert.Equal(t, value.RGBA(0, 1, 0, float32(0x33)/255), v)

	_, err = value.Parse(value.ColorKind, "#ff00")
	assert.ErrorIs(t, err, value.ErrDecode)
	_, err = value.Parse(value.ColorKind, "#gg0000")
	assert.ErrorIs(t, err, value.ErrDecode)

	v, err = value.Parse(value.ColorKind, "[0, 1, 0]")
	require.NoError(t, err)
	assert.Equal(t, value.RGBA(0, 1, 0, 1), v)

	v, err = value.Parse(value.ObjectRefKind, "null")
	require.NoError(t, err)
	assert.True(t, v.(value.ObjectRef).IsNil())

	_, err = value.Parse(value.Vector2Kind, "[1, 2, 3]")
	assert.True(t, errors.Is(err, value.ErrDecode))
	_, err = value.Parse(value.Int32Kind, "5000000000")
	assert.Error(t, err)
	_, err = value.Parse(value.KindN, "1")
	assert.Error(t, err)
}

func TestDecodeNumbers(t *testing.T) {
	v, err := value.Decode(value.UInt64Kind, "18000000000000000000")
	require.NoError(t, err)
	assert.Equal(t, uint64(18000000000000000000), v)

	v, err = value.Decode(value.Float32Kind, int64(3))
	require.NoError(t, err)
	assert.Equal(t, float32(3), v)

	v, err = value.Decode(value.Int64Kind, uint8(7))
	require.NoError(t, err)
	assert.Equal(t, int64(7), v)

	v, err = value.Decode(value.Int64Kind, "0x10")
	require.NoError(t, err)
	assert.Equal(t, int64(16), v)

	v, err = value.Decode(value.Float64Kind, float32(0.5))
	require.NoError(t, err)
	assert.Equal(t, 0.5, v)

	_, err = value.Decode(value.Float64Kind, true)
	assert.ErrorIs(t, err, value.ErrDecode)
	_, err = value.Decode(value.Int32Kind, 1.5)
	assert.Error(t, err)
	_, err = value.Decode(value.UInt32Kind, int64(-1))
	assert.Error(t, err)

	assert.Equal(t, "18000000000000000000", value.Encode(value.UInt64Kind, uint64(18000000000000000000)))
	assert.Equal(t, int64(3), value.Encode(value.UInt64Kind, uint64(3)))
	assert.Equal(t, "x", value.Encode(value.Int32Kind, "x"))
}

func TestHash128(t *testing.T) {
	h, err := value.ParseHash128("0xff")
	require.NoError(t, err)
	assert.Equal(t, value.Hash128{Lo: 0xff}, h)
	assert.Equal(t, "000000000000000000000000000000ff", h.String())
	assert.True(t, h.IsValid())
	_, err = value.ParseHash128("xyz")
	assert.Error(t, err)
}

func TestCurveEvaluate(t *testing.T) {
	c := value.LinearCurve(0, 0, 1, 2)
	assert.InDelta(t, 1, c.Evaluate(0.5), 1e-5)
	assert.InDelta(t, 2, c.Evaluate(5), 1e-5)
	assert.InDelta(t, 0, c.Evaluate(-1), 1e-5)
	c.PostWrap = value.WrapLoop
	assert.InDelta(t, 1, c.Evaluate(1.5), 1e-5)
	c.PostWrap = value.WrapPingPong
	assert.InDelta(t, 1.5, c.Evaluate(1.25), 1e-5)
	assert.Equal(t, float32(0), value.Curve{}.Evaluate(3))

	i := c.AddKey(value.Keyframe{Time: 0.5, Value: 7})
	assert.Equal(t, 1, i)
	assert.Len(t, c.Keys, 3)
	c.AddKey(value.Keyframe{Time: 0.5, Value: 8})
	assert.Len(t, c.Keys, 3)
	assert.InDelta(t, 8, c.Evaluate(0.5), 1e-5)
}

func TestGradientEvaluate(t *testing.T) {
	g := value.Gradient{
		ColorKeys: []value.ColorKey{{Color: value.RGBA(0, 0, 0, 1), Time: 0}, {Color: value.RGBA(1, 1, 1, 1), Time: 1}},
		AlphaKeys: []value.AlphaKey{{Alpha: 1, Time: 0}, {Alpha: 0, Time: 1}},
	}
	c := g.Evaluate(0.5)
	assert.InDelta(t, 0.5, c.R, 1e-5)
	assert.InDelta(t, 0.5, c.A, 1e-5)
	g.Mode = value.GradientFixed
	assert.Equal(t, value.RGBA(1, 1, 1, 0), g.Evaluate(0.5))
	assert.Equal(t, value.RGBA(1, 1, 1, 1), value.Gradient{}.Evaluate(0.3))
}
