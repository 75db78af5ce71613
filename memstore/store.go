// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package memstore provides an in-memory host object store with
// serialized property views, implementing the interfaces of package
// backend. It is used as the reference store of the command line
// tools and as the host in tests.
package memstore

import (
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"cogentcore.org/editkit/backend"
	"cogentcore.org/editkit/value"
	"github.com/gobwas/glob"
)

// Change is one committed change to one property.
type Change struct {
	Object value.ObjectRef
	Path   string
	Before []any
	After  []any
}

// Recorder is notified of every change committed to a [Store].
type Recorder interface {
	Record(c Change)
}

// Store is an in-memory object store. It is safe for concurrent use,
// although the property views it hands out are not.
type Store struct {

	// Recorder, if set, is notified of every committed change.
	Recorder Recorder

	mu      sync.Mutex
	objects map[value.ObjectRef]*Object
	order   []value.ObjectRef
}

// New returns a new empty store.
func New() *Store {
	return &Store{objects: map[value.ObjectRef]*Object{}}
}

// Create adds a new object with a new identity to the store.
func (s *Store) Create(typeName, name string) *Object {
	obj, _ := s.CreateWithRef(value.NewObjectRef(), typeName, name)
	return obj
}

// CreateWithRef adds a new object with the given identity to the store.
// It fails for the null reference and for identities already in use.
func (s *Store) CreateWithRef(ref value.ObjectRef, typeName, name string) (*Object, error) {
	if ref.IsNil() {
		return nil, fmt.Errorf("memstore: cannot create object %q with a null reference", name)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, has := s.objects[ref]; has {
		return nil, fmt.Errorf("memstore: object %v already exists", ref)
	}
	obj := &Object{store: s, ref: ref, name: name, typeName: typeName, fields: map[string]*field{}}
	s.objects[ref] = obj
	s.order = append(s.order, ref)
	slog.Debug("memstore: created object", "ref", ref, "type", typeName, "name", name)
	return obj, nil
}

// Delete removes the object with the given identity, returning
// whether it was present. References to it are left dangling.
func (s *Store) Delete(ref value.ObjectRef) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	obj, has := s.objects[ref]
	if !has {
		return false
	}
	obj.store = nil
	delete(s.objects, ref)
	s.order = slices.DeleteFunc(s.order, func(r value.ObjectRef) bool { return r == ref })
	return true
}

// Len returns the number of objects in the store.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.order)
}

// Object returns the object with the given identity.
func (s *Store) Object(ref value.ObjectRef) (*Object, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	obj, ok := s.objects[ref]
	return obj, ok
}

// Resolve implements [backend.Resolver].
func (s *Store) Resolve(ref value.ObjectRef) (backend.Object, error) {
	if ref.IsNil() {
		return nil, fmt.Errorf("memstore: cannot resolve the null reference: %w", backend.ErrNotFound)
	}
	obj, ok := s.Object(ref)
	if !ok {
		return nil, fmt.Errorf("memstore: object %v: %w", ref, backend.ErrNotFound)
	}
	return obj, nil
}

// Objects returns all objects in creation order.
func (s *Store) Objects() []*Object {
	s.mu.Lock()
	defer s.mu.Unlock()
	objs := make([]*Object, len(s.order))
	for i, ref := range s.order {
		objs[i] = s.objects[ref]
	}
	return objs
}

// Find returns the objects of the given type whose names match the
// given glob pattern, in creation order. An empty type name or
// pattern matches everything.
func (s *Store) Find(typeName, pattern string) ([]*Object, error) {
	var g glob.Glob
	if pattern != "" {
		var err error
		g, err = glob.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("memstore: invalid search pattern %q: %w", pattern, err)
		}
	}
	var res []*Object
	for _, obj := range s.Objects() {
		if typeName != "" && obj.TypeName() != typeName {
			continue
		}
		if g != nil && !g.Match(obj.Name()) {
			continue
		}
		res = append(res, obj)
	}
	return res, nil
}

// Reset replaces the contents of the store with those of the given
// store, which must not be used afterwards. Objects previously
// obtained from this store are detached from it.
func (s *Store) Reset(from *Store) {
	from.mu.Lock()
	objects, order := from.objects, from.order
	from.objects, from.order = nil, nil
	from.mu.Unlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, obj := range s.objects {
		obj.store = nil
	}
	for _, obj := range objects {
		obj.store = s
	}
	s.objects, s.order = objects, order
	slog.Debug("memstore: reset", "objects", len(order))
}

// ElementType implements [backend.Oracle] from the declared
// field types of the objects in the store.
func (s *Store) ElementType(obj backend.Object, path string) (backend.FieldType, error) {
	if obj == nil {
		return backend.FieldType{}, fmt.Errorf("memstore: nil object: %w", backend.ErrNotFound)
	}
	o, ok := s.Object(obj.Ref())
	if !ok {
		return backend.FieldType{}, fmt.Errorf("memstore: object %v: %w", obj.Ref(), backend.ErrNotFound)
	}
	ft, ok := o.FieldType(path)
	if !ok {
		return backend.FieldType{}, fmt.Errorf("memstore: %s has no property %q: %w", o.Name(), path, backend.ErrNotFound)
	}
	return ft, nil
}

// Restore sets the committed values of the property at the given
// path of the given object, without notifying the [Store.Recorder].
func (s *Store) Restore(ref value.ObjectRef, path string, values []any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	obj, ok := s.objects[ref]
	if !ok {
		return fmt.Errorf("memstore: object %v: %w", ref, backend.ErrNotFound)
	}
	f, ok := obj.fields[path]
	if !ok {
		return fmt.Errorf("memstore: %s has no property %q: %w", obj.name, path, backend.ErrNotFound)
	}
	f.values = cloneValues(values)
	return nil
}

func cloneValues(vs []any) []any {
	if vs == nil {
		return nil
	}
	c := make([]any, len(vs))
	for i, v := range vs {
		c[i] = value.Clone(v)
	}
	return c
}

func equalValues(a, b []any) bool {
	return slices.EqualFunc(a, b, value.Equal)
}
