// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package serial

import (
	"fmt"

	"cogentcore.org/editkit/math32"
	"cogentcore.org/editkit/value"
)

// elements is the part of a [List] the typed accessors are built on.
type elements interface {
	Get(i int) (any, error)
	Set(i int, v any) error
	Kind() value.Kind
	Known() bool
}

// Typed provides the typed accessors of a [List], one getter and
// one setter per [value.Kind]. Accessors for a kind other than the
// element kind of the list, or on a list of an unrecognized element
// type, fail with a [KindMismatchError].
type Typed struct {
	list elements
}

func checkKind(l elements, k value.Kind) error {
	if !l.Known() {
		return &KindMismatchError{Want: k, Have: "unrecognized element type"}
	}
	if l.Kind() != k {
		return &KindMismatchError{Want: l.Kind(), Have: k.String() + " accessor"}
	}
	return nil
}

func get[T any](l elements, i int, k value.Kind) (T, error) {
	var zero T
	if err := checkKind(l, k); err != nil {
		return zero, err
	}
	v, err := l.Get(i)
	if err != nil {
		return zero, err
	}
	t, ok := v.(T)
	if !ok {
		return zero, &KindMismatchError{Want: k, Have: fmt.Sprintf("%T", v)}
	}
	return t, nil
}

func set[T any](l elements, i int, k value.Kind, v T) error {
	if err := checkKind(l, k); err != nil {
		return err
	}
	return l.Set(i, v)
}

// Bool returns the Bool element at the given index.
func (t Typed) Bool(i int) (bool, error) { return get[bool](t.list, i, value.BoolKind) }

// SetBool sets the Bool element at the given index.
func (t Typed) SetBool(i int, v bool) error { return set(t.list, i, value.BoolKind, v) }

// Int32 returns the Int32 element at the given index.
func (t Typed) Int32(i int) (int32, error) { return get[int32](t.list, i, value.Int32Kind) }

// SetInt32 sets the Int32 element at the given index.
func (t Typed) SetInt32(i int, v int32) error { return set(t.list, i, value.Int32Kind, v) }

// Int64 returns the Int64 element at the given index.
func (t Typed) Int64(i int) (int64, error) { return get[int64](t.list, i, value.Int64Kind) }

// SetInt64 sets the Int64 element at the given index.
func (t Typed) SetInt64(i int, v int64) error { return set(t.list, i, value.Int64Kind, v) }

// Uint32 returns the UInt32 element at the given index.
func (t Typed) Uint32(i int) (uint32, error) { return get[uint32](t.list, i, value.UInt32Kind) }

// SetUint32 sets the UInt32 element at the given index.
func (t Typed) SetUint32(i int, v uint32) error { return set(t.list, i, value.UInt32Kind, v) }

// Uint64 returns the UInt64 element at the given index.
func (t Typed) Uint64(i int) (uint64, error) { return get[uint64](t.list, i, value.UInt64Kind) }

// SetUint64 sets the UInt64 element at the given index.
func (t Typed) SetUint64(i int, v uint64) error { return set(t.list, i, value.UInt64Kind, v) }

// Float32 returns the Float32 element at the given index.
func (t Typed) Float32(i int) (float32, error) { return get[float32](t.list, i, value.Float32Kind) }

// SetFloat32 sets the Float32 element at the given index.
func (t Typed) SetFloat32(i int, v float32) error { return set(t.list, i, value.Float32Kind, v) }

// Float64 returns the Float64 element at the given index.
func (t Typed) Float64(i int) (float64, error) { return get[float64](t.list, i, value.Float64Kind) }

// SetFloat64 sets the Float64 element at the given index.
func (t Typed) SetFloat64(i int, v float64) error { return set(t.list, i, value.Float64Kind, v) }

// StringAt returns the String element at the given index.
func (t Typed) StringAt(i int) (string, error) { return get[string](t.list, i, value.StringKind) }

// SetString sets the String element at the given index.
func (t Typed) SetString(i int, v string) error { return set(t.list, i, value.StringKind, v) }

// ObjectRef returns the ObjectRef element at the given index.
func (t Typed) ObjectRef(i int) (value.ObjectRef, error) { return get[value.ObjectRef](t.list, i, value.ObjectRefKind) }

// SetObjectRef sets the ObjectRef element at the given index.
func (t Typed) SetObjectRef(i int, v value.ObjectRef) error { return set(t.list, i, value.ObjectRefKind, v) }

// Color returns the Color element at the given index.
func (t Typed) Color(i int) (value.Color, error) { return get[value.Color](t.list, i, value.ColorKind) }

// SetColor sets the Color element at the given index.
func (t Typed) SetColor(i int, v value.Color) error { return set(t.list, i, value.ColorKind, v) }

// Curve returns the AnimationCurve element at the given index.
func (t Typed) Curve(i int) (value.Curve, error) { return get[value.Curve](t.list, i, value.AnimationCurveKind) }

// SetCurve sets the AnimationCurve element at the given index.
func (t Typed) SetCurve(i int, v value.Curve) error { return set(t.list, i, value.AnimationCurveKind, v) }

// Gradient returns the Gradient element at the given index.
func (t Typed) Gradient(i int) (value.Gradient, error) { return get[value.Gradient](t.list, i, value.GradientKind) }

// SetGradient sets the Gradient element at the given index.
func (t Typed) SetGradient(i int, v value.Gradient) error { return set(t.list, i, value.GradientKind, v) }

// Hash128 returns the Hash128 element at the given index.
func (t Typed) Hash128(i int) (value.Hash128, error) { return get[value.Hash128](t.list, i, value.Hash128Kind) }

// SetHash128 sets the Hash128 element at the given index.
func (t Typed) SetHash128(i int, v value.Hash128) error { return set(t.list, i, value.Hash128Kind, v) }

// Vector2 returns the Vector2 element at the given index.
func (t Typed) Vector2(i int) (math32.Vector2, error) { return get[math32.Vector2](t.list, i, value.Vector2Kind) }

// SetVector2 sets the Vector2 element at the given index.
func (t Typed) SetVector2(i int, v math32.Vector2) error { return set(t.list, i, value.Vector2Kind, v) }

// Vector2i returns the Vector2Int element at the given index.
func (t Typed) Vector2i(i int) (math32.Vector2i, error) { return get[math32.Vector2i](t.list, i, value.Vector2IntKind) }

// SetVector2i sets the Vector2Int element at the given index.
func (t Typed) SetVector2i(i int, v math32.Vector2i) error { return set(t.list, i, value.Vector2IntKind, v) }

// Vector3 returns the Vector3 element at the given index.
func (t Typed) Vector3(i int) (math32.Vector3, error) { return get[math32.Vector3](t.list, i, value.Vector3Kind) }

// SetVector3 sets the Vector3 element at the given index.
func (t Typed) SetVector3(i int, v math32.Vector3) error { return set(t.list, i, value.Vector3Kind, v) }

// Vector3i returns the Vector3Int element at the given index.
func (t Typed) Vector3i(i int) (math32.Vector3i, error) { return get[math32.Vector3i](t.list, i, value.Vector3IntKind) }

// SetVector3i sets the Vector3Int element at the given index.
func (t Typed) SetVector3i(i int, v math32.Vector3i) error { return set(t.list, i, value.Vector3IntKind, v) }

// Vector4 returns the Vector4 element at the given index.
func (t Typed) Vector4(i int) (math32.Vector4, error) { return get[math32.Vector4](t.list, i, value.Vector4Kind) }

// SetVector4 sets the Vector4 element at the given index.
func (t Typed) SetVector4(i int, v math32.Vector4) error { return set(t.list, i, value.Vector4Kind, v) }

// Rect returns the Rect element at the given index.
func (t Typed) Rect(i int) (math32.Box2, error) { return get[math32.Box2](t.list, i, value.RectKind) }

// SetRect sets the Rect element at the given index.
func (t Typed) SetRect(i int, v math32.Box2) error { return set(t.list, i, value.RectKind, v) }

// RectInt returns the RectInt element at the given index.
func (t Typed) RectInt(i int) (math32.Box2i, error) { return get[math32.Box2i](t.list, i, value.RectIntKind) }

// SetRectInt sets the RectInt element at the given index.
func (t Typed) SetRectInt(i int, v math32.Box2i) error { return set(t.list, i, value.RectIntKind, v) }

// Bounds returns the Bounds element at the given index.
func (t Typed) Bounds(i int) (math32.Box3, error) { return get[math32.Box3](t.list, i, value.BoundsKind) }

// SetBounds sets the Bounds element at the given index.
func (t Typed) SetBounds(i int, v math32.Box3) error { return set(t.list, i, value.BoundsKind, v) }

// BoundsInt returns the BoundsInt element at the given index.
func (t Typed) BoundsInt(i int) (math32.Box3i, error) { return get[math32.Box3i](t.list, i, value.BoundsIntKind) }

// SetBoundsInt sets the BoundsInt element at the given index.
func (t Typed) SetBoundsInt(i int, v math32.Box3i) error { return set(t.list, i, value.BoundsIntKind, v) }

// Quaternion returns the Quaternion element at the given index.
func (t Typed) Quaternion(i int) (math32.Quat, error) { return get[math32.Quat](t.list, i, value.QuaternionKind) }

// SetQuaternion sets the Quaternion element at the given index.
func (t Typed) SetQuaternion(i int, v math32.Quat) error { return set(t.list, i, value.QuaternionKind, v) }
