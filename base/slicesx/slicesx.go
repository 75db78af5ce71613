// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package slicesx provides additional slice functions
// beyond those in the standard [slices] package.
package slicesx

import "slices"

// SetLength sets the length of the given slice, re-using and preserving
// existing values to the extent possible. New elements beyond the
// previous length are zero.
func SetLength[E any](s []E, n int) []E {
	if n < 0 {
		n = 0
	}
	if len(s) >= n {
		clear(s[n:])
		return s[:n]
	}
	s = slices.Grow(s, n-len(s))
	return s[:n]
}

// Move moves the element in the given slice at the given
// old position to the given new position and returns the
// resulting slice. The elements between the two positions
// shift by one to fill the gap.
func Move[E any](s []E, from, to int) []E {
	temp := s[from]
	s = slices.Delete(s, from, from+1)
	s = slices.Insert(s, to, temp)
	return s
}
