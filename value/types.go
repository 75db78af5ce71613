// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"cogentcore.org/editkit/math32"
	"github.com/oklog/ulid/v2"
)

// ObjectRef is a reference to a persisted object, identified by
// its ULID. The zero value is the null reference.
type ObjectRef struct {
	ID ulid.ULID
}

// NewObjectRef returns a reference to a new, unique object identity.
func NewObjectRef() ObjectRef {
	return ObjectRef{ID: ulid.Make()}
}

// ParseObjectRef parses the text form of an object reference.
// An empty string, "null" and "nil" parse to the null reference.
func ParseObjectRef(s string) (ObjectRef, error) {
	switch strings.TrimSpace(s) {
	case "", "null", "nil":
		return ObjectRef{}, nil
	}
	id, err := ulid.ParseStrict(strings.TrimSpace(s))
	if err != nil {
		return ObjectRef{}, fmt.Errorf("invalid object reference %q: %w", s, err)
	}
	return ObjectRef{ID: id}, nil
}

// IsNil returns whether this is the null reference.
func (r ObjectRef) IsNil() bool {
	return r.ID == (ulid.ULID{})
}

func (r ObjectRef) String() string {
	if r.IsNil() {
		return "null"
	}
	return r.ID.String()
}

// Color is a color with floating point red, green, blue and alpha
// components, nominally in the range [0, 1].
type Color struct {
	R, G, B, A float32
}

// RGBA returns a new [Color] from the given components.
func RGBA(r, g, b, a float32) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// ColorFrom converts any [color.Color] to a [Color].
func ColorFrom(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{R: float32(n.R) / 255, G: float32(n.G) / 255, B: float32(n.B) / 255, A: float32(n.A) / 255}
}

// AsNRGBA returns the color as a non-premultiplied 8-bit [color.NRGBA],
// clamping components to [0, 1].
func (c Color) AsNRGBA() color.NRGBA {
	conv := func(x float32) uint8 {
		return uint8(math32.Clamp(x, 0, 1)*255 + 0.5)
	}
	return color.NRGBA{R: conv(c.R), G: conv(c.G), B: conv(c.B), A: conv(c.A)}
}

// Lerp returns the component-wise linear interpolation between
// this color and other.
func (c Color) Lerp(other Color, t float32) Color {
	return Color{
		R: math32.Lerp(c.R, other.R, t),
		G: math32.Lerp(c.G, other.G, t),
		B: math32.Lerp(c.B, other.B, t),
		A: math32.Lerp(c.A, other.A, t),
	}
}

func (c Color) String() string {
	return fmt.Sprintf("RGBA(%s, %s, %s, %s)", math32.FormatFloat(c.R), math32.FormatFloat(c.G), math32.FormatFloat(c.B), math32.FormatFloat(c.A))
}

// Hash128 is a 128-bit hash value.
type Hash128 struct {
	Hi, Lo uint64
}

// ParseHash128 parses a hash from its 32 hex digit text form.
// Shorter strings are treated as having leading zeros.
func ParseHash128(s string) (Hash128, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "0x")
	if len(s) == 0 || len(s) > 32 {
		return Hash128{}, fmt.Errorf("invalid hash %q: expected 1 to 32 hex digits", s)
	}
	s = strings.Repeat("0", 32-len(s)) + s
	hi, err := strconv.ParseUint(s[:16], 16, 64)
	if err != nil {
		return Hash128{}, fmt.Errorf("invalid hash %q: %w", s, err)
	}
	lo, err := strconv.ParseUint(s[16:], 16, 64)
	if err != nil {
		return Hash128{}, fmt.Errorf("invalid hash %q: %w", s, err)
	}
	return Hash128{Hi: hi, Lo: lo}, nil
}

// IsValid returns whether the hash is non-zero.
func (h Hash128) IsValid() bool {
	return h.Hi != 0 || h.Lo != 0
}

func (h Hash128) String() string {
	return fmt.Sprintf("%016x%016x", h.Hi, h.Lo)
}
