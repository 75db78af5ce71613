// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import (
	"fmt"
	"reflect"
	"strings"

	"cogentcore.org/editkit/base/errors"
	"cogentcore.org/editkit/math32"
	"github.com/jinzhu/copier"
)

// ops is the set of operations registered for one [Kind].
type ops struct {
	typ    reflect.Type
	zero   any
	equal  func(a, b any) bool
	clone  func(v any) any
	parse  func(s string) (any, error)
	encode func(v any) any
	decode func(raw any) (any, error)
}

// registry is indexed by Kind; every Kind must have an entry,
// which is checked in init.
var registry = [KindN]ops{
	BoolKind:           comparableOps(parseBool, func(v bool) any { return v }, decodeBool),
	Int32Kind:          comparableOps(parseInt[int32], func(v int32) any { return int64(v) }, decodeInt[int32]),
	Int64Kind:          comparableOps(parseInt[int64], func(v int64) any { return v }, decodeInt[int64]),
	UInt32Kind:         comparableOps(parseUint[uint32], func(v uint32) any { return int64(v) }, decodeUint[uint32]),
	UInt64Kind:         comparableOps(parseUint[uint64], encodeUint64, decodeUint[uint64]),
	Float32Kind:        comparableOps(parseFloat[float32], func(v float32) any { return float64(v) }, decodeFloat[float32]),
	Float64Kind:        comparableOps(parseFloat[float64], func(v float64) any { return v }, decodeFloat[float64]),
	StringKind:         comparableOps(func(s string) (string, error) { return s, nil }, func(v string) any { return v }, decodeString),
	ObjectRefKind:      comparableOps(ParseObjectRef, func(v ObjectRef) any { return v.String() }, decodeObjectRef),
	ColorKind:          comparableOps(parseColor, encodeColor, decodeColor),
	AnimationCurveKind: deepOps(func(a, b Curve) bool { return a.Equal(b) }, encodeCurve, decodeCurve),
	GradientKind:       deepOps(func(a, b Gradient) bool { return a.Equal(b) }, encodeGradient, decodeGradient),
	Hash128Kind:        comparableOps(ParseHash128, func(v Hash128) any { return v.String() }, decodeHash128),
	Vector2Kind:        comparableOps(parseVia(decodeVector2), encodeVector2, decodeVector2),
	Vector2IntKind:     comparableOps(parseVia(decodeVector2i), encodeVector2i, decodeVector2i),
	Vector3Kind:        comparableOps(parseVia(decodeVector3), encodeVector3, decodeVector3),
	Vector3IntKind:     comparableOps(parseVia(decodeVector3i), encodeVector3i, decodeVector3i),
	Vector4Kind:        comparableOps(parseVia(decodeVector4), encodeVector4, decodeVector4),
	RectKind:           comparableOps(parseVia(decodeRect), encodeRect, decodeRect),
	RectIntKind:        comparableOps(parseVia(decodeRectInt), encodeRectInt, decodeRectInt),
	BoundsKind:         comparableOps(parseVia(decodeBounds), encodeBounds, decodeBounds),
	BoundsIntKind:      comparableOps(parseVia(decodeBoundsInt), encodeBoundsInt, decodeBoundsInt),
	QuaternionKind:     comparableOps(parseVia(decodeQuat), encodeQuat, decodeQuat),
}

func init() {
	for k, o := range registry {
		if o.typ == nil {
			panic(fmt.Sprintf("value: no operations registered for kind %v", Kind(k)))
		}
	}
}

// comparableOps returns the operations for a kind whose Go type
// can be compared with == and copied by assignment.
func comparableOps[T comparable](parse func(string) (T, error), encode func(T) any, decode func(any) (T, error)) ops {
	var zero T
	return ops{
		typ:    reflect.TypeFor[T](),
		zero:   zero,
		equal:  func(a, b any) bool { return a.(T) == b.(T) },
		clone:  func(v any) any { return v },
		parse:  func(s string) (any, error) { return parse(s) },
		encode: func(v any) any { return encode(v.(T)) },
		decode: func(raw any) (any, error) { return decode(raw) },
	}
}

// deepOps returns the operations for a kind whose Go type holds
// slices, so that values must be deep copied to avoid aliasing
// between the store and its callers.
func deepOps[T any](equal func(a, b T) bool, encode func(T) any, decode func(any) (T, error)) ops {
	var zero T
	return ops{
		typ:    reflect.TypeFor[T](),
		zero:   zero,
		equal:  func(a, b any) bool { return equal(a.(T), b.(T)) },
		clone:  func(v any) any { return deepCopy(v.(T)) },
		parse:  func(s string) (any, error) { return parseVia(decode)(s) },
		encode: func(v any) any { return encode(v.(T)) },
		decode: func(raw any) (any, error) { return decode(raw) },
	}
}

func deepCopy[T any](v T) T {
	var c T
	errors.Log(copier.CopyWithOption(&c, &v, copier.Option{DeepCopy: true}))
	return c
}

// Type returns the Go type used to represent values of this kind.
func (i Kind) Type() reflect.Type {
	if !i.IsValid() {
		return nil
	}
	return registry[i].typ
}

// KindOf returns the kind of the given value, and false if the
// value is not of one of the registered Go types.
func KindOf(v any) (Kind, bool) {
	switch v.(type) {
	case bool:
		return BoolKind, true
	case int32:
		return Int32Kind, true
	case int64:
		return Int64Kind, true
	case uint32:
		return UInt32Kind, true
	case uint64:
		return UInt64Kind, true
	case float32:
		return Float32Kind, true
	case float64:
		return Float64Kind, true
	case string:
		return StringKind, true
	case ObjectRef:
		return ObjectRefKind, true
	case Color:
		return ColorKind, true
	case Curve:
		return AnimationCurveKind, true
	case Gradient:
		return GradientKind, true
	case Hash128:
		return Hash128Kind, true
	case math32.Vector2:
		return Vector2Kind, true
	case math32.Vector2i:
		return Vector2IntKind, true
	case math32.Vector3:
		return Vector3Kind, true
	case math32.Vector3i:
		return Vector3IntKind, true
	case math32.Vector4:
		return Vector4Kind, true
	case math32.Box2:
		return RectKind, true
	case math32.Box2i:
		return RectIntKind, true
	case math32.Box3:
		return BoundsKind, true
	case math32.Box3i:
		return BoundsIntKind, true
	case math32.Quat:
		return QuaternionKind, true
	}
	return 0, false
}

// Conforms returns whether the given value is of the given kind.
func Conforms(k Kind, v any) bool {
	vk, ok := KindOf(v)
	return ok && vk == k
}

// Zero returns the default value for new elements of the given kind.
func Zero(k Kind) any {
	if !k.IsValid() {
		return nil
	}
	return registry[k].zero
}

// Equal returns whether the two values are equal. Object references
// compare by the identity of the referenced object, and all other
// kinds compare by value. Values of different kinds are never equal.
// Values that are not of a registered kind compare with [reflect.DeepEqual].
func Equal(a, b any) bool {
	ka, oka := KindOf(a)
	kb, okb := KindOf(b)
	if oka != okb {
		return false
	}
	if !oka {
		return reflect.DeepEqual(a, b)
	}
	if ka != kb {
		return false
	}
	return registry[ka].equal(a, b)
}

// Clone returns a copy of the given value that shares no memory
// with it. Values that are not of a registered kind are returned as is.
func Clone(v any) any {
	k, ok := KindOf(v)
	if !ok {
		return v
	}
	return registry[k].clone(v)
}

// tokenKinds maps lowercase element type tokens to kinds.
var tokenKinds = map[string]Kind{
	"bool":           BoolKind,
	"boolean":        BoolKind,
	"int":            Int32Kind,
	"int32":          Int32Kind,
	"long":           Int64Kind,
	"int64":          Int64Kind,
	"uint":           UInt32Kind,
	"uint32":         UInt32Kind,
	"ulong":          UInt64Kind,
	"uint64":         UInt64Kind,
	"float":          Float32Kind,
	"single":         Float32Kind,
	"float32":        Float32Kind,
	"double":         Float64Kind,
	"float64":        Float64Kind,
	"string":         StringKind,
	"objectref":      ObjectRefKind,
	"object":         ObjectRefKind,
	"color":          ColorKind,
	"animationcurve": AnimationCurveKind,
	"curve":          AnimationCurveKind,
	"gradient":       GradientKind,
	"hash128":        Hash128Kind,
	"vector2":        Vector2Kind,
	"vector2int":     Vector2IntKind,
	"vector3":        Vector3Kind,
	"vector3int":     Vector3IntKind,
	"vector4":        Vector4Kind,
	"rect":           RectKind,
	"rectint":        RectIntKind,
	"bounds":         BoundsKind,
	"boundsint":      BoundsIntKind,
	"quaternion":     QuaternionKind,
	"quat":           QuaternionKind,
}

// KindForToken returns the kind matching an element type token as
// resolved by a type oracle, such as "float32", "Vector3" or
// "ObjectRef:Material" (an object reference constrained to a type).
// Matching is case insensitive. It returns false for tokens that do
// not name a registered kind; callers then fall back to a generic,
// backend-native path for the values.
func KindForToken(token string) (Kind, bool) {
	t := strings.ToLower(strings.TrimSpace(token))
	if base, _, ok := strings.Cut(t, ":"); ok {
		if base == "objectref" || base == "object" {
			return ObjectRefKind, true
		}
		return 0, false
	}
	k, ok := tokenKinds[t]
	return k, ok
}

// TokenForType returns the element type token for the given Go type:
// the kind name for registered types, and the Go type name otherwise.
func TokenForType(typ reflect.Type) string {
	for k, o := range registry {
		if o.typ == typ {
			return Kind(k).String()
		}
	}
	return typ.String()
}
