// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package enums

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v3"
)

// it is much easier to test with an independent enum mock
type enum int64

func (e enum) String() string    { return "extended" }
func (e enum) Int64() int64      { return int64(e) }
func (e enum) Desc() string      { return "extendedDesc" }
func (e enum) Values() []Enum    { return nil }
func (e *enum) SetInt64(i int64) { *e = enum(i) }
func (e *enum) SetString(s string) error {
	if s == "Orange" {
		*e = 7
		return nil
	}
	return errors.New("invalid")
}

func TestString(t *testing.T) {
	m := map[enum]string{5: "Apple"}
	assert.Equal(t, "Apple", String(5, m))
	assert.Equal(t, "3", String(3, m))
}

func TestSetString(t *testing.T) {
	valueMap := map[string]enum{"apple": 5}

	i := enum(0)
	assert.NoError(t, SetString(&i, "apple", valueMap, "Fruits"))
	assert.Equal(t, enum(5), i)
	i = enum(4)
	err := SetString(&i, "Apple", valueMap, "Fruits")
	if assert.Error(t, err) {
		assert.Equal(t, "Apple is not a valid value for type Fruits", err.Error())
	}
	assert.Equal(t, enum(4), i)

	assert.NoError(t, SetStringLower(&i, "Apple", valueMap, "Fruits"))
	assert.Equal(t, enum(5), i)
	i = enum(4)
	assert.Error(t, SetStringLower(&i, "Orange", valueMap, "Fruits"))
	assert.Equal(t, enum(4), i)
}

func TestDesc(t *testing.T) {
	descMap := map[enum]string{5: "A red fruit"}
	assert.Equal(t, "A red fruit", Desc(enum(5), descMap))
	assert.Equal(t, "extended", Desc(enum(3), descMap))
}

func TestValues(t *testing.T) {
	assert.Equal(t, []Enum{enum(7), enum(4)}, Values([]enum{7, 4}))
}

func TestUnmarshal(t *testing.T) {
	i := enum(0)

	assert.NoError(t, UnmarshalText(&i, []byte("Orange"), "Fruits"))
	assert.Equal(t, enum(7), i)
	i = 4
	assert.NoError(t, UnmarshalText(&i, []byte("Apple"), "Fruits"))
	assert.Equal(t, enum(4), i)

	assert.NoError(t, UnmarshalYAML(&i, &yaml.Node{Kind: yaml.ScalarNode, Value: "Orange"}, "Fruits"))
	assert.Equal(t, enum(7), i)
	i = 4
	assert.Error(t, UnmarshalYAML(&i, &yaml.Node{Kind: yaml.SequenceNode}, "Fruits"))
	assert.Equal(t, enum(4), i)
}
