// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package backend defines the interfaces of the host object store
// that serialized arrays operate on: objects, their serialized
// properties, the type oracle that resolves element types, and the
// resolver that maps object references back to objects.
package backend

import (
	"cogentcore.org/editkit/base/errors"
	"cogentcore.org/editkit/value"
)

// ErrNotFound is returned (wrapped) when an object, property path or
// field type cannot be resolved.
var ErrNotFound = errors.New("not found")

// FieldType is the type of a property as resolved by an [Oracle].
type FieldType struct {

	// Token names the element type for array properties, or the
	// property type itself for single valued properties.
	// See [value.KindForToken].
	Token string

	// Array is whether the property is array shaped.
	Array bool
}

// Oracle resolves the type of the property at a dot separated path
// on an object.
type Oracle interface {
	ElementType(obj Object, path string) (FieldType, error)
}

// OracleFunc is a function that implements [Oracle].
type OracleFunc func(obj Object, path string) (FieldType, error)

func (f OracleFunc) ElementType(obj Object, path string) (FieldType, error) {
	return f(obj, path)
}

// Object is a persisted object in the host store.
type Object interface {

	// Ref returns the identity of the object.
	Ref() value.ObjectRef

	// Name returns the display name of the object.
	Name() string

	// TypeName returns the name of the type of the object.
	TypeName() string

	// Property returns the serialized view of the property at the
	// given dot separated path, wrapping [ErrNotFound] if there is none.
	Property(path string) (Property, error)
}

// Property is a serialized view of one property of one object.
// Mutations apply to the view, and are made durable by [Property.Commit].
// For single valued properties, Count is 1 and the value is element 0.
type Property interface {

	// Path returns the dot separated path of the property.
	Path() string

	// IsArray returns whether the property is array shaped.
	IsArray() bool

	// Count returns the current number of elements.
	Count() int

	// SetCount resizes the property, default-initializing new elements.
	SetCount(n int) error

	// Element returns the element at the given index.
	Element(i int) (any, error)

	// SetElement sets the element at the given index.
	SetElement(i int, v any) error

	// DeleteElement removes the element at the given index,
	// shifting later elements down.
	DeleteElement(i int) error

	// MoveElement relocates the element at from to index to,
	// shifting the elements in between.
	MoveElement(from, to int) error

	// Update refreshes the view from the store, beginning a transaction.
	Update() error

	// Commit applies the changes made to the view, ending a transaction.
	Commit() error
}

// Resolver resolves object references to objects.
type Resolver interface {
	Resolve(ref value.ObjectRef) (Object, error)
}

// Apply runs fn as one transaction on the given property:
// Update before it and Commit after it, on every exit path.
// The first error of fn and Commit is returned.
func Apply(p Property, fn func() error) (err error) {
	if err := p.Update(); err != nil {
		return err
	}
	defer func() {
		if cerr := p.Commit(); err == nil {
			err = cerr
		}
	}()
	return fn()
}
