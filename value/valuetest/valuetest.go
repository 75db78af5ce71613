// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package valuetest provides sample values of every [value.Kind]
// for use in tests.
package valuetest

import (
	"cogentcore.org/editkit/math32"
	"cogentcore.org/editkit/value"
)

// Samples returns two distinct, non-zero values for every kind.
// Object references are freshly generated on each call.
func Samples() map[value.Kind][2]any {
	return map[value.Kind][2]any{
		value.BoolKind:           {true, false},
		value.Int32Kind:          {int32(-7), int32(42)},
		value.Int64Kind:          {int64(-1) << 40, int64(9)},
		value.UInt32Kind:         {uint32(7), uint32(4000000000)},
		value.UInt64Kind:         {uint64(3), uint64(18000000000000000000)},
		value.Float32Kind:        {float32(1.5), float32(-0.25)},
		value.Float64Kind:        {2.75, -1e-3},
		value.StringKind:         {"alpha", "beta gamma"},
		value.ObjectRefKind:      {value.NewObjectRef(), value.NewObjectRef()},
		value.ColorKind:          {value.RGBA(1, 0.5, 0, 1), value.RGBA(0, 0, 1, 0.25)},
		value.AnimationCurveKind: {value.LinearCurve(0, 0, 1, 1), value.Curve{Keys: []value.Keyframe{{Time: 0.5, Value: 2}}, PostWrap: value.WrapLoop}},
		value.GradientKind: {
			value.Gradient{ColorKeys: []value.ColorKey{{Color: value.RGBA(1, 0, 0, 1), Time: 0}, {Color: value.RGBA(0, 0, 1, 1), Time: 1}}},
			value.Gradient{AlphaKeys: []value.AlphaKey{{Alpha: 0.5, Time: 0.5}}, Mode: value.GradientFixed},
		},
		value.Hash128Kind:    {value.Hash128{Hi: 1, Lo: 2}, value.Hash128{Hi: 0xdeadbeef, Lo: 0xfeed}},
		value.Vector2Kind:    {math32.Vec2(1, 2), math32.Vec2(-3, 0.5)},
		value.Vector2IntKind: {math32.Vec2i(1, 2), math32.Vec2i(-3, 4)},
		value.Vector3Kind:    {math32.Vec3(1, 2, 3), math32.Vec3(-1, 0, 0.5)},
		value.Vector3IntKind: {math32.Vec3i(1, 2, 3), math32.Vec3i(-1, 0, 5)},
		value.Vector4Kind:    {math32.Vec4(1, 2, 3, 4), math32.Vec4(0, 0, 0, 1)},
		value.RectKind:       {math32.B2(0, 0, 1, 1), math32.B2(-1, -2, 3, 4)},
		value.RectIntKind:    {math32.B2i(0, 0, 10, 10), math32.B2i(-1, -2, 3, 4)},
		value.BoundsKind:     {math32.B3(0, 0, 0, 1, 1, 1), math32.B3(-1, -2, -3, 1, 2, 3)},
		value.BoundsIntKind:  {math32.B3i(0, 0, 0, 1, 1, 1), math32.B3i(-1, -2, -3, 1, 2, 3)},
		value.QuaternionKind: {math32.QuatIdentity(), math32.NewQuat(0, 1, 0, 0)},
	}
}
