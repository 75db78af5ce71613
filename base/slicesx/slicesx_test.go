// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package slicesx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetLength(t *testing.T) {
	var s []int
	s = SetLength(s, 3)
	assert.Equal(t, 3, len(s))

	s[2] = 2
	s = SetLength(s, 40)
	assert.Equal(t, 40, len(s))
	assert.Equal(t, 2, s[2])

	s = SetLength(s, 4)
	assert.Equal(t, 4, len(s))
	assert.Equal(t, 2, s[2])

	s = SetLength(s, 2)
	s = SetLength(s, 3)
	assert.Equal(t, 0, s[2])

	assert.Empty(t, SetLength(s, -1))
}

func TestMove(t *testing.T) {
	s := []string{"a", "b", "c", "d"}
	s = Move(s, 0, 2)
	assert.Equal(t, []string{"b", "c", "a", "d"}, s)
	s = Move(s, 3, 0)
	assert.Equal(t, []string{"d", "b", "c", "a"}, s)
	s = Move(s, 1, 1)
	assert.Equal(t, []string{"d", "b", "c", "a"}, s)
}
