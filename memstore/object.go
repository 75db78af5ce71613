// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package memstore

import (
	"fmt"
	"slices"
	"strings"

	"cogentcore.org/editkit/backend"
	"cogentcore.org/editkit/value"
)

// field is the committed state of one property.
type field struct {
	token  string
	array  bool
	kind   value.Kind
	known  bool
	values []any
}

// zero returns the default value for new elements of the field.
func (f *field) zero() any {
	if !f.known {
		return nil
	}
	return value.Zero(f.kind)
}

// check returns an error if v is not a valid element of the field.
func (f *field) check(v any) error {
	if f.known && !value.Conforms(f.kind, v) {
		return fmt.Errorf("value %v of type %T is not a %v", v, v, f.kind)
	}
	return nil
}

// Object is an object in a [Store]. Its properties are declared with
// [Object.Define] and accessed through the views of [Object.Property].
type Object struct {
	store    *Store
	ref      value.ObjectRef
	name     string
	typeName string
	fields   map[string]*field
	paths    []string
}

func (o *Object) Ref() value.ObjectRef { return o.ref }

func (o *Object) Name() string {
	if s := o.store; s != nil {
		s.mu.Lock()
		defer s.mu.Unlock()
	}
	return o.name
}

// SetName renames the object.
func (o *Object) SetName(name string) {
	if s := o.store; s != nil {
		s.mu.Lock()
		defer s.mu.Unlock()
	}
	o.name = name
}

func (o *Object) TypeName() string { return o.typeName }

func (o *Object) String() string {
	return fmt.Sprintf("%s %q (%v)", o.typeName, o.Name(), o.ref)
}

// lock locks the store of the object, returning an error
// if the object has been removed from its store.
func (o *Object) lock() error {
	s := o.store
	if s == nil {
		return fmt.Errorf("memstore: object %v is not in a store: %w", o.ref, backend.ErrNotFound)
	}
	s.mu.Lock()
	return nil
}

func (o *Object) unlock() {
	if s := o.store; s != nil {
		s.mu.Unlock()
	}
}

// Define declares the property at the given dot separated path, with
// the given type token (see [value.KindForToken]) and shape, and its
// initial values. Single valued properties have exactly one value,
// which defaults to the zero value of the kind. Redefining a property
// replaces it.
func (o *Object) Define(path, token string, array bool, values ...any) error {
	if path == "" || strings.HasPrefix(path, ".") || strings.HasSuffix(path, ".") {
		return fmt.Errorf("memstore: invalid property path %q", path)
	}
	f := &field{token: token, array: array}
	f.kind, f.known = value.KindForToken(token)
	if !array {
		switch len(values) {
		case 0:
			values = []any{f.zero()}
		case 1:
		default:
			return fmt.Errorf("memstore: single valued property %q given %d values", path, len(values))
		}
	}
	for _, v := range values {
		if err := f.check(v); err != nil {
			return fmt.Errorf("memstore: property %q: %w", path, err)
		}
	}
	f.values = cloneValues(values)
	if f.values == nil {
		f.values = []any{}
	}
	if err := o.lock(); err != nil {
		return err
	}
	defer o.unlock()
	if _, has := o.fields[path]; !has {
		o.paths = append(o.paths, path)
	}
	o.fields[path] = f
	return nil
}

// Paths returns the paths of the declared properties, in declaration order.
func (o *Object) Paths() []string {
	if err := o.lock(); err != nil {
		return nil
	}
	defer o.unlock()
	return slices.Clone(o.paths)
}

// FieldType returns the declared type of the property at the given path.
func (o *Object) FieldType(path string) (backend.FieldType, bool) {
	if err := o.lock(); err != nil {
		return backend.FieldType{}, false
	}
	defer o.unlock()
	f, ok := o.fields[path]
	if !ok {
		return backend.FieldType{}, false
	}
	return backend.FieldType{Token: f.token, Array: f.array}, true
}

// Values returns a copy of the committed values of the property at the given path.
func (o *Object) Values(path string) ([]any, error) {
	if err := o.lock(); err != nil {
		return nil, err
	}
	defer o.unlock()
	f, ok := o.fields[path]
	if !ok {
		return nil, fmt.Errorf("memstore: %s has no property %q: %w", o.name, path, backend.ErrNotFound)
	}
	return cloneValues(f.values), nil
}

// Property implements [backend.Object], returning a new view of the
// property at the given path, loaded with its committed values.
func (o *Object) Property(path string) (backend.Property, error) {
	return o.View(path)
}

// View is like [Object.Property] but returns the concrete view type.
func (o *Object) View(path string) (*Property, error) {
	p := &Property{obj: o, path: path}
	if err := p.load(); err != nil {
		return nil, err
	}
	return p, nil
}
