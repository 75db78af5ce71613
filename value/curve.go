// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import (
	"fmt"
	"slices"

	"cogentcore.org/editkit/math32"
)

// WrapModes determine how a [Curve] is evaluated outside
// of the time range covered by its keys.
type WrapModes int32

const (
	// WrapClamp holds the value of the first or last key.
	WrapClamp WrapModes = iota

	// WrapLoop repeats the curve.
	WrapLoop

	// WrapPingPong repeats the curve, reversing direction each time.
	WrapPingPong
)

// Keyframe is one key of a [Curve]: a value at a time, with the
// incoming and outgoing tangents (slopes) at that key.
type Keyframe struct {
	Time       float32
	Value      float32
	InTangent  float32
	OutTangent float32
}

// Curve is an animation curve: a list of keyframes sorted by time,
// interpolated with cubic Hermite splines.
type Curve struct {
	Keys []Keyframe

	// PreWrap is the wrap mode before the first key.
	PreWrap WrapModes

	// PostWrap is the wrap mode after the last key.
	PostWrap WrapModes
}

// LinearCurve returns a straight line curve between the two given points.
func LinearCurve(t0, v0, t1, v1 float32) Curve {
	slope := float32(0)
	if t1 != t0 {
		slope = (v1 - v0) / (t1 - t0)
	}
	return Curve{Keys: []Keyframe{
		{Time: t0, Value: v0, InTangent: slope, OutTangent: slope},
		{Time: t1, Value: v1, InTangent: slope, OutTangent: slope},
	}}
}

// AddKey inserts the given key keeping keys sorted by time,
// and returns its index. A key at an existing time replaces it.
func (c *Curve) AddKey(k Keyframe) int {
	i, found := slices.BinarySearchFunc(c.Keys, k.Time, func(e Keyframe, t float32) int {
		switch {
		case e.Time < t:
			return -1
		case e.Time > t:
			return 1
		}
		return 0
	})
	if found {
		c.Keys[i] = k
		return i
	}
	c.Keys = slices.Insert(c.Keys, i, k)
	return i
}

// Equal returns whether the two curves have the same keys and wrap modes.
func (c Curve) Equal(other Curve) bool {
	return c.PreWrap == other.PreWrap && c.PostWrap == other.PostWrap && slices.Equal(c.Keys, other.Keys)
}

// Evaluate returns the value of the curve at the given time.
// An empty curve evaluates to 0.
func (c Curve) Evaluate(t float32) float32 {
	n := len(c.Keys)
	if n == 0 {
		return 0
	}
	first, last := c.Keys[0], c.Keys[n-1]
	if n == 1 {
		return first.Value
	}
	span := last.Time - first.Time
	if t < first.Time {
		t = wrapTime(t, first.Time, span, c.PreWrap)
	} else if t > last.Time {
		t = wrapTime(t, first.Time, span, c.PostWrap)
	}
	for i := 1; i < n; i++ {
		k1 := c.Keys[i]
		if t > k1.Time {
			continue
		}
		return hermite(c.Keys[i-1], k1, t)
	}
	return last.Value
}

// wrapTime maps t into [start, start+span] according to the wrap mode.
func wrapTime(t, start, span float32, mode WrapModes) float32 {
	if span <= 0 {
		return start
	}
	switch mode {
	case WrapLoop:
		d := math32.Mod(t-start, span)
		if d < 0 {
			d += span
		}
		return start + d
	case WrapPingPong:
		d := math32.Mod(t-start, 2*span)
		if d < 0 {
			d += 2 * span
		}
		if d > span {
			d = 2*span - d
		}
		return start + d
	default:
		return math32.Clamp(t, start, start+span)
	}
}

func hermite(k0, k1 Keyframe, t float32) float32 {
	dt := k1.Time - k0.Time
	if dt <= 0 {
		return k1.Value
	}
	s := (t - k0.Time) / dt
	s2 := s * s
	s3 := s2 * s
	h00 := 2*s3 - 3*s2 + 1
	h10 := s3 - 2*s2 + s
	h01 := -2*s3 + 3*s2
	h11 := s3 - s2
	return h00*k0.Value + h10*dt*k0.OutTangent + h01*k1.Value + h11*dt*k1.InTangent
}

func (c Curve) String() string {
	return fmt.Sprintf("Curve(%d keys)", len(c.Keys))
}
