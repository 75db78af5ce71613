// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import (
	"fmt"
	"image/color"
	"math"
	"reflect"
	"strconv"
	"strings"

	"cogentcore.org/editkit/base/errors"
	"cogentcore.org/editkit/math32"
	"gopkg.in/yaml.v3"
)

// ErrDecode is returned (wrapped) when a document value cannot be
// decoded or a text value cannot be parsed as the requested kind.
var ErrDecode = errors.New("value: cannot decode")

func decodeError(k Kind, raw any) error {
	return fmt.Errorf("%w %T(%v) as %v", ErrDecode, raw, raw, k)
}

// Parse parses the text form of a value of the given kind.
// Scalars use their usual Go text forms. Composite kinds use a
// YAML flow form, such as "[1, 2, 3]" for a Vector3 or
// "{min: [0, 0], max: [1, 1]}" for a Rect; the brackets of a list
// may be omitted. Colors also accept "#rrggbb" and "#rrggbbaa".
func Parse(k Kind, s string) (any, error) {
	if !k.IsValid() {
		return nil, fmt.Errorf("value.Parse: invalid kind %v", k)
	}
	return registry[k].parse(s)
}

// Format returns the text form of the given value, which [Parse]
// accepts for the value's kind.
func Format(v any) string {
	k, ok := KindOf(v)
	if !ok {
		return fmt.Sprint(v)
	}
	switch k {
	case StringKind:
		return v.(string)
	case BoolKind, Int32Kind, Int64Kind, UInt32Kind, UInt64Kind, Float32Kind, Float64Kind, ObjectRefKind, Hash128Kind:
		return fmt.Sprint(v)
	}
	b, err := yaml.Marshal(registry[k].encode(v))
	if err != nil {
		return fmt.Sprint(v)
	}
	return flowYAML(b)
}

// flowYAML reformats block YAML output as a single line flow form.
func flowYAML(b []byte) string {
	var n yaml.Node
	if err := yaml.Unmarshal(b, &n); err != nil {
		return strings.TrimSpace(string(b))
	}
	setFlow(&n)
	out, err := yaml.Marshal(&n)
	if err != nil {
		return strings.TrimSpace(string(b))
	}
	return strings.TrimSpace(string(out))
}

func setFlow(n *yaml.Node) {
	if n.Kind == yaml.SequenceNode || n.Kind == yaml.MappingNode {
		n.Style = yaml.FlowStyle
	}
	for _, c := range n.Content {
		setFlow(c)
	}
}

// Encode returns the generic document form of the given value of the
// given kind: a bool, int64, float64, string, []any or map[string]any.
// Values that are not of the kind are returned as is.
func Encode(k Kind, v any) any {
	if !k.IsValid() || !Conforms(k, v) {
		return v
	}
	return registry[k].encode(v)
}

// Decode converts a generic document value, as produced by [Encode]
// or by a TOML or YAML decoder, to a value of the given kind.
func Decode(k Kind, raw any) (any, error) {
	if !k.IsValid() {
		return nil, fmt.Errorf("value.Decode: invalid kind %v", k)
	}
	if Conforms(k, raw) {
		return Clone(raw), nil
	}
	return registry[k].decode(raw)
}

// parseVia returns a parser that reads the YAML flow form of a
// composite value and decodes it.
func parseVia[T any](decode func(any) (T, error)) func(string) (T, error) {
	return func(s string) (T, error) {
		s = strings.TrimSpace(s)
		if !strings.HasPrefix(s, "[") && !strings.HasPrefix(s, "{") {
			s = "[" + s + "]"
		}
		var raw any
		if err := yaml.Unmarshal([]byte(s), &raw); err != nil {
			var zero T
			return zero, fmt.Errorf("%w: %w", ErrDecode, err)
		}
		return decode(raw)
	}
}

func parseBool(s string) (bool, error) {
	return strconv.ParseBool(strings.TrimSpace(s))
}

func parseInt[T int32 | int64](s string) (T, error) {
	var zero T
	v, err := strconv.ParseInt(strings.TrimSpace(s), 0, bitSize(zero))
	return T(v), err
}

func parseUint[T uint32 | uint64](s string) (T, error) {
	var zero T
	v, err := strconv.ParseUint(strings.TrimSpace(s), 0, bitSize(zero))
	return T(v), err
}

func parseFloat[T float32 | float64](s string) (T, error) {
	var zero T
	v, err := strconv.ParseFloat(strings.TrimSpace(s), bitSize(zero))
	return T(v), err
}

func bitSize(v any) int {
	switch v.(type) {
	case int32, uint32, float32:
		return 32
	}
	return 64
}

// parseColor parses the hex forms #rgb, #rrggbb and #rrggbbaa,
// and otherwise the list form.
func parseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	hex, ok := strings.CutPrefix(s, "#")
	if !ok {
		return parseVia(decodeColor)(s)
	}
	var r, g, b int
	a := 255
	var err error
	switch len(hex) {
	case 3:
		_, err = fmt.Sscanf(hex, "%1x%1x%1x", &r, &g, &b)
		r |= r << 4
		g |= g << 4
		b |= b << 4
	case 6:
		_, err = fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b)
	case 8:
		_, err = fmt.Sscanf(hex, "%02x%02x%02x%02x", &r, &g, &b, &a)
	default:
		return Color{}, fmt.Errorf("%w: color %q must have 3, 6 or 8 hex digits", ErrDecode, s)
	}
	if err != nil {
		return Color{}, fmt.Errorf("%w: color %q: %w", ErrDecode, s, err)
	}
	return ColorFrom(color.NRGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: uint8(a)}), nil
}

func encodeUint64(v uint64) any {
	if v > math.MaxInt64 {
		return strconv.FormatUint(v, 10)
	}
	return int64(v)
}

func decodeBool(raw any) (bool, error) {
	switch x := raw.(type) {
	case bool:
		return x, nil
	case string:
		return parseBool(x)
	}
	return false, decodeError(BoolKind, raw)
}

func decodeString(raw any) (string, error) {
	if s, ok := raw.(string); ok {
		return s, nil
	}
	return "", decodeError(StringKind, raw)
}

func decodeObjectRef(raw any) (ObjectRef, error) {
	switch x := raw.(type) {
	case nil:
		return ObjectRef{}, nil
	case string:
		return ParseObjectRef(x)
	}
	return ObjectRef{}, decodeError(ObjectRefKind, raw)
}

func decodeHash128(raw any) (Hash128, error) {
	if s, ok := raw.(string); ok {
		return ParseHash128(s)
	}
	return Hash128{}, decodeError(Hash128Kind, raw)
}

// toFloat converts any numeric document value, or its text, to a float64.
func toFloat(raw any) (float64, bool) {
	if str, ok := raw.(string); ok {
		f, err := strconv.ParseFloat(strings.TrimSpace(str), 64)
		return f, err == nil
	}
	v := reflect.ValueOf(raw)
	switch vk := v.Kind(); {
	case vk >= reflect.Int && vk <= reflect.Int64:
		return float64(v.Int()), true
	case vk >= reflect.Uint && vk <= reflect.Uint64:
		return float64(v.Uint()), true
	case vk == reflect.Float32 || vk == reflect.Float64:
		return v.Float(), true
	}
	return 0, false
}

// toInt converts an integral document value, or its text, to an int64.
func toInt(raw any) (int64, bool) {
	if str, ok := raw.(string); ok {
		i, err := strconv.ParseInt(strings.TrimSpace(str), 0, 64)
		return i, err == nil
	}
	v := reflect.ValueOf(raw)
	switch vk := v.Kind(); {
	case vk >= reflect.Int && vk <= reflect.Int64:
		return v.Int(), true
	case vk >= reflect.Uint && vk <= reflect.Uint64:
		u := v.Uint()
		return int64(u), u <= math.MaxInt64
	case vk == reflect.Float32 || vk == reflect.Float64:
		f := v.Float()
		return int64(f), float64(int64(f)) == f
	}
	return 0, false
}

func decodeInt[T int32 | int64](raw any) (T, error) {
	i, ok := toInt(raw)
	var zero T
	if !ok || (bitSize(zero) == 32 && (i < math.MinInt32 || i > math.MaxInt32)) {
		return zero, decodeError(kindFor(zero), raw)
	}
	return T(i), nil
}

func decodeUint[T uint32 | uint64](raw any) (T, error) {
	var zero T
	switch x := raw.(type) {
	case uint64:
		if bitSize(zero) == 32 && x > math.MaxUint32 {
			return zero, decodeError(kindFor(zero), raw)
		}
		return T(x), nil
	case string:
		return parseUint[T](x)
	}
	i, ok := toInt(raw)
	if !ok || i < 0 || (bitSize(zero) == 32 && i > math.MaxUint32) {
		return zero, decodeError(kindFor(zero), raw)
	}
	return T(i), nil
}

func decodeFloat[T float32 | float64](raw any) (T, error) {
	f, ok := toFloat(raw)
	if !ok {
		var zero T
		return zero, decodeError(kindFor(zero), raw)
	}
	return T(f), nil
}

func kindFor(v any) Kind {
	k, _ := KindOf(v)
	return k
}

// floats decodes a list of exactly n numbers.
func floats(raw any, n int) ([]float32, bool) {
	list, ok := raw.([]any)
	if !ok || len(list) != n {
		return nil, false
	}
	fs := make([]float32, n)
	for i, e := range list {
		f, ok := toFloat(e)
		if !ok {
			return nil, false
		}
		fs[i] = float32(f)
	}
	return fs, true
}

// ints decodes a list of exactly n integers.
func ints(raw any, n int) ([]int32, bool) {
	list, ok := raw.([]any)
	if !ok || len(list) != n {
		return nil, false
	}
	is := make([]int32, n)
	for i, e := range list {
		v, ok := toInt(e)
		if !ok || v < math.MinInt32 || v > math.MaxInt32 {
			return nil, false
		}
		is[i] = int32(v)
	}
	return is, true
}

func floatList(fs ...float32) []any {
	l := make([]any, len(fs))
	for i, f := range fs {
		l[i] = float64(f)
	}
	return l
}

func intList(is ...int32) []any {
	l := make([]any, len(is))
	for i, v := range is {
		l[i] = int64(v)
	}
	return l
}

func encodeColor(c Color) any { return floatList(c.R, c.G, c.B, c.A) }

func decodeColor(raw any) (Color, error) {
	if f, ok := floats(raw, 4); ok {
		return Color{f[0], f[1], f[2], f[3]}, nil
	}
	if f, ok := floats(raw, 3); ok {
		return Color{f[0], f[1], f[2], 1}, nil
	}
	if s, ok := raw.(string); ok && strings.HasPrefix(s, "#") {
		return parseColor(s)
	}
	return Color{}, decodeError(ColorKind, raw)
}

func encodeVector2(v math32.Vector2) any { return floatList(v.X, v.Y) }

func decodeVector2(raw any) (math32.Vector2, error) {
	if f, ok := floats(raw, 2); ok {
		return math32.Vec2(f[0], f[1]), nil
	}
	return math32.Vector2{}, decodeError(Vector2Kind, raw)
}

func encodeVector2i(v math32.Vector2i) any { return intList(v.X, v.Y) }

func decodeVector2i(raw any) (math32.Vector2i, error) {
	if i, ok := ints(raw, 2); ok {
		return math32.Vec2i(i[0], i[1]), nil
	}
	return math32.Vector2i{}, decodeError(Vector2IntKind, raw)
}

func encodeVector3(v math32.Vector3) any { return floatList(v.X, v.Y, v.Z) }

func decodeVector3(raw any) (math32.Vector3, error) {
	if f, ok := floats(raw, 3); ok {
		return math32.Vec3(f[0], f[1], f[2]), nil
	}
	return math32.Vector3{}, decodeError(Vector3Kind, raw)
}

func encodeVector3i(v math32.Vector3i) any { return intList(v.X, v.Y, v.Z) }

func decodeVector3i(raw any) (math32.Vector3i, error) {
	if i, ok := ints(raw, 3); ok {
		return math32.Vec3i(i[0], i[1], i[2]), nil
	}
	return math32.Vector3i{}, decodeError(Vector3IntKind, raw)
}

func encodeVector4(v math32.Vector4) any { return floatList(v.X, v.Y, v.Z, v.W) }

func decodeVector4(raw any) (math32.Vector4, error) {
	if f, ok := floats(raw, 4); ok {
		return math32.Vec4(f[0], f[1], f[2], f[3]), nil
	}
	return math32.Vector4{}, decodeError(Vector4Kind, raw)
}

func encodeQuat(q math32.Quat) any { return floatList(q.X, q.Y, q.Z, q.W) }

func decodeQuat(raw any) (math32.Quat, error) {
	if f, ok := floats(raw, 4); ok {
		return math32.NewQuat(f[0], f[1], f[2], f[3]), nil
	}
	return math32.Quat{}, decodeError(QuaternionKind, raw)
}

// minMax splits a box document value, which is either a map with
// "min" and "max" entries or a flat list of 2n numbers.
func minMax(raw any, n int) (lo, hi any, ok bool) {
	switch x := raw.(type) {
	case map[string]any:
		lo, okl := x["min"]
		hi, okh := x["max"]
		return lo, hi, okl && okh
	case []any:
		if len(x) != 2*n {
			return nil, nil, false
		}
		return x[:n], x[n:], true
	}
	return nil, nil, false
}

func boxDoc(lo, hi any) any {
	return map[string]any{"min": lo, "max": hi}
}

func encodeRect(b math32.Box2) any {
	return boxDoc(encodeVector2(b.Min), encodeVector2(b.Max))
}

func decodeRect(raw any) (math32.Box2, error) {
	lo, hi, ok := minMax(raw, 2)
	if ok {
		mn, err1 := decodeVector2(lo)
		mx, err2 := decodeVector2(hi)
		if err1 == nil && err2 == nil {
			return math32.Box2{Min: mn, Max: mx}, nil
		}
	}
	return math32.Box2{}, decodeError(RectKind, raw)
}

func encodeRectInt(b math32.Box2i) any {
	return boxDoc(encodeVector2i(b.Min), encodeVector2i(b.Max))
}

func decodeRectInt(raw any) (math32.Box2i, error) {
	lo, hi, ok := minMax(raw, 2)
	if ok {
		mn, err1 := decodeVector2i(lo)
		mx, err2 := decodeVector2i(hi)
		if err1 == nil && err2 == nil {
			return math32.Box2i{Min: mn, Max: mx}, nil
		}
	}
	return math32.Box2i{}, decodeError(RectIntKind, raw)
}

func encodeBounds(b math32.Box3) any {
	return boxDoc(encodeVector3(b.Min), encodeVector3(b.Max))
}

func decodeBounds(raw any) (math32.Box3, error) {
	lo, hi, ok := minMax(raw, 3)
	if ok {
		mn, err1 := decodeVector3(lo)
		mx, err2 := decodeVector3(hi)
		if err1 == nil && err2 == nil {
			return math32.Box3{Min: mn, Max: mx}, nil
		}
	}
	return math32.Box3{}, decodeError(BoundsKind, raw)
}

func encodeBoundsInt(b math32.Box3i) any {
	return boxDoc(encodeVector3i(b.Min), encodeVector3i(b.Max))
}

func decodeBoundsInt(raw any) (math32.Box3i, error) {
	lo, hi, ok := minMax(raw, 3)
	if ok {
		mn, err1 := decodeVector3i(lo)
		mx, err2 := decodeVector3i(hi)
		if err1 == nil && err2 == nil {
			return math32.Box3i{Min: mn, Max: mx}, nil
		}
	}
	return math32.Box3i{}, decodeError(BoundsIntKind, raw)
}

func encodeCurve(c Curve) any {
	keys := make([]any, len(c.Keys))
	for i, k := range c.Keys {
		keys[i] = floatList(k.Time, k.Value, k.InTangent, k.OutTangent)
	}
	return map[string]any{
		"keys": keys,
		"pre":  int64(c.PreWrap),
		"post": int64(c.PostWrap),
	}
}

func decodeCurve(raw any) (Curve, error) {
	m, ok := raw.(map[string]any)
	if !ok {
		return Curve{}, decodeError(AnimationCurveKind, raw)
	}
	var c Curve
	if keys, has := m["keys"]; has {
		list, ok := keys.([]any)
		if !ok {
			return Curve{}, decodeError(AnimationCurveKind, raw)
		}
		for _, e := range list {
			f, ok := floats(e, 4)
			if !ok {
				return Curve{}, decodeError(AnimationCurveKind, raw)
			}
			c.Keys = append(c.Keys, Keyframe{Time: f[0], Value: f[1], InTangent: f[2], OutTangent: f[3]})
		}
	}
	pre, _ := toInt(m["pre"])
	post, _ := toInt(m["post"])
	c.PreWrap, c.PostWrap = WrapModes(pre), WrapModes(post)
	return c, nil
}

func encodeGradient(g Gradient) any {
	colors := make([]any, len(g.ColorKeys))
	for i, k := range g.ColorKeys {
		colors[i] = floatList(k.Color.R, k.Color.G, k.Color.B, k.Color.A, k.Time)
	}
	alphas := make([]any, len(g.AlphaKeys))
	for i, k := range g.AlphaKeys {
		alphas[i] = floatList(k.Alpha, k.Time)
	}
	return map[string]any{
		"mode":   int64(g.Mode),
		"colors": colors,
		"alphas": alphas,
	}
}

func decodeGradient(raw any) (Gradient, error) {
	m, ok := raw.(map[string]any)
	if !ok {
		return Gradient{}, decodeError(GradientKind, raw)
	}
	var g Gradient
	if colors, has := m["colors"]; has {
		list, ok := colors.([]any)
		if !ok {
			return Gradient{}, decodeError(GradientKind, raw)
		}
		for _, e := range list {
			f, ok := floats(e, 5)
			if !ok {
				return Gradient{}, decodeError(GradientKind, raw)
			}
			g.ColorKeys = append(g.ColorKeys, ColorKey{Color: Color{f[0], f[1], f[2], f[3]}, Time: f[4]})
		}
	}
	if alphas, has := m["alphas"]; has {
		list, ok := alphas.([]any)
		if !ok {
			return Gradient{}, decodeError(GradientKind, raw)
		}
		for _, e := range list {
			f, ok := floats(e, 2)
			if !ok {
				return Gradient{}, decodeError(GradientKind, raw)
			}
			g.AlphaKeys = append(g.AlphaKeys, AlphaKey{Alpha: f[0], Time: f[1]})
		}
	}
	mode, _ := toInt(m["mode"])
	g.Mode = GradientModes(mode)
	return g, nil
}
