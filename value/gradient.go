// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import (
	"fmt"
	"slices"

	"cogentcore.org/editkit/math32"
)

// GradientModes determine how a [Gradient] is evaluated between keys.
type GradientModes int32

const (
	// GradientBlend interpolates linearly between keys.
	GradientBlend GradientModes = iota

	// GradientFixed holds the value of the next key.
	GradientFixed
)

// ColorKey is a color stop of a [Gradient]. Its alpha is ignored;
// opacity comes from the alpha keys.
type ColorKey struct {
	Color Color
	Time  float32
}

// AlphaKey is an opacity stop of a [Gradient].
type AlphaKey struct {
	Alpha float32
	Time  float32
}

// Gradient is a color gradient over time in [0, 1], with separate
// color and alpha stops, each sorted by time.
type Gradient struct {
	ColorKeys []ColorKey
	AlphaKeys []AlphaKey
	Mode      GradientModes
}

// Equal returns whether the two gradients have the same keys and mode.
func (g Gradient) Equal(other Gradient) bool {
	return g.Mode == other.Mode && slices.Equal(g.ColorKeys, other.ColorKeys) && slices.Equal(g.AlphaKeys, other.AlphaKeys)
}

// Evaluate returns the color of the gradient at the given time.
// With no color keys the color is white; with no alpha keys it is opaque.
func (g Gradient) Evaluate(t float32) Color {
	c := Color{R: 1, G: 1, B: 1, A: 1}
	if n := len(g.ColorKeys); n > 0 {
		i := slices.IndexFunc(g.ColorKeys, func(k ColorKey) bool { return k.Time >= t })
		switch {
		case i < 0:
			c = g.ColorKeys[n-1].Color
		case i == 0 || g.Mode == GradientFixed:
			c = g.ColorKeys[i].Color
		default:
			k0, k1 := g.ColorKeys[i-1], g.ColorKeys[i]
			c = k0.Color.Lerp(k1.Color, fraction(k0.Time, k1.Time, t))
		}
	}
	c.A = 1
	if n := len(g.AlphaKeys); n > 0 {
		i := slices.IndexFunc(g.AlphaKeys, func(k AlphaKey) bool { return k.Time >= t })
		switch {
		case i < 0:
			c.A = g.AlphaKeys[n-1].Alpha
		case i == 0 || g.Mode == GradientFixed:
			c.A = g.AlphaKeys[i].Alpha
		default:
			k0, k1 := g.AlphaKeys[i-1], g.AlphaKeys[i]
			c.A = math32.Lerp(k0.Alpha, k1.Alpha, fraction(k0.Time, k1.Time, t))
		}
	}
	return c
}

func fraction(t0, t1, t float32) float32 {
	if t1 <= t0 {
		return 1
	}
	return (t - t0) / (t1 - t0)
}

func (g Gradient) String() string {
	return fmt.Sprintf("Gradient(%d colors, %d alphas)", len(g.ColorKeys), len(g.AlphaKeys))
}
