// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package link maintains two-way links between objects: a reference
// (or array of references) on one side, and a back-reference on each
// linked object pointing to the objects linking it.
package link

import (
	"fmt"

	"cogentcore.org/editkit/backend"
	"cogentcore.org/editkit/base/errors"
	"cogentcore.org/editkit/serial"
	"cogentcore.org/editkit/value"
)

var (
	// ErrNullReference is returned when linking the null reference.
	ErrNullReference = errors.New("link: null object reference")

	// ErrNotReference is returned for properties that do not
	// hold object references.
	ErrNotReference = errors.New("link: property does not hold object references")
)

func checkNest(owner backend.Object, nested value.ObjectRef, path string, oracle backend.Oracle) (backend.FieldType, error) {
	switch {
	case owner == nil:
		return backend.FieldType{}, fmt.Errorf("link: nil owner object for %q", path)
	case oracle == nil:
		return backend.FieldType{}, fmt.Errorf("link: nil type oracle for %q", path)
	case nested.IsNil():
		return backend.FieldType{}, ErrNullReference
	case path == "":
		return backend.FieldType{}, fmt.Errorf("link: empty property path")
	}
	ft, err := oracle.ElementType(owner, path)
	if err != nil {
		return ft, fmt.Errorf("link: %s.%s: %w", owner.Name(), path, err)
	}
	if k, ok := value.KindForToken(ft.Token); !ok || k != value.ObjectRefKind {
		return ft, fmt.Errorf("%w: %s.%s is %q", ErrNotReference, owner.Name(), path, ft.Token)
	}
	return ft, nil
}

// Nest links the nested object into the property at the given path
// of the owner: for an array property it is appended unless already
// present, and otherwise it replaces the single reference.
// The change is made in one transaction.
func Nest(owner backend.Object, nested value.ObjectRef, path string, oracle backend.Oracle) error {
	ft, err := checkNest(owner, nested, path, oracle)
	if err != nil {
		return err
	}
	if ft.Array {
		a, err := serial.Open(owner, path, oracle)
		if err != nil {
			return err
		}
		if a.Contains(nested) {
			return nil
		}
		return a.Apply(func() error { return a.Append(nested) })
	}
	p, err := owner.Property(path)
	if err != nil {
		return fmt.Errorf("link: %s.%s: %w", owner.Name(), path, err)
	}
	return backend.Apply(p, func() error { return p.SetElement(0, nested) })
}

// Unnest unlinks the nested object from the property at the given
// path of the owner: it is removed from an array property, and a
// single reference is cleared if it currently refers to it.
// The change is made in one transaction.
func Unnest(owner backend.Object, nested value.ObjectRef, path string, oracle backend.Oracle) error {
	ft, err := checkNest(owner, nested, path, oracle)
	if err != nil {
		return err
	}
	if ft.Array {
		a, err := serial.Open(owner, path, oracle)
		if err != nil {
			return err
		}
		return a.Apply(func() error {
			_, err := a.Remove(nested)
			return err
		})
	}
	p, err := owner.Property(path)
	if err != nil {
		return fmt.Errorf("link: %s.%s: %w", owner.Name(), path, err)
	}
	return backend.Apply(p, func() error {
		v, err := p.Element(0)
		if err != nil {
			return err
		}
		if !value.Equal(v, nested) {
			return nil
		}
		return p.SetElement(0, value.ObjectRef{})
	})
}
