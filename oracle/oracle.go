// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package oracle provides implementations of [backend.Oracle]:
// [Static], a table of property types registered by hand, and
// [Schema], which reads property types from Go struct types.
package oracle

import (
	"fmt"
	"reflect"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"cogentcore.org/editkit/backend"
	"cogentcore.org/editkit/base/reflectx"
	"cogentcore.org/editkit/value"
)

// Static is a [backend.Oracle] over a table of property types
// registered per object type name. It is safe for concurrent use.
type Static struct {
	mu    sync.RWMutex
	types map[string]map[string]backend.FieldType
}

// NewStatic returns a new empty [Static] oracle.
func NewStatic() *Static {
	return &Static{types: map[string]map[string]backend.FieldType{}}
}

// Register sets the type of the property at the given path
// of objects of the given type.
func (s *Static) Register(typeName, path string, ft backend.FieldType) *Static {
	s.mu.Lock()
	defer s.mu.Unlock()
	m := s.types[typeName]
	if m == nil {
		m = map[string]backend.FieldType{}
		s.types[typeName] = m
	}
	m[path] = ft
	return s
}

// Array is a shortcut for registering an array property.
func (s *Static) Array(typeName, path, token string) *Static {
	return s.Register(typeName, path, backend.FieldType{Token: token, Array: true})
}

// Single is a shortcut for registering a single valued property.
func (s *Static) Single(typeName, path, token string) *Static {
	return s.Register(typeName, path, backend.FieldType{Token: token})
}

func (s *Static) ElementType(obj backend.Object, path string) (backend.FieldType, error) {
	if obj == nil {
		return backend.FieldType{}, fmt.Errorf("oracle: nil object: %w", backend.ErrNotFound)
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	ft, ok := s.types[obj.TypeName()][path]
	if !ok {
		return ft, fmt.Errorf("oracle: type %s has no property %q: %w", obj.TypeName(), path, backend.ErrNotFound)
	}
	return ft, nil
}

// Schema is a [backend.Oracle] that resolves property paths against
// Go struct types registered per object type name. Path elements
// match exported field names, with the first letter capitalized as
// needed, so that "lighting.probes" finds the field Lighting.Probes.
//
// Slice and array fields (other than []byte) are array properties
// of their element type. The element type token is the kind name of
// the Go type (see [value.TokenForType]), unless overridden with a
// `token:"..."` struct tag, as in `token:"ObjectRef:Material"`.
type Schema struct {
	mu    sync.RWMutex
	types map[string]reflect.Type
}

// NewSchema returns a new empty [Schema] oracle.
func NewSchema() *Schema {
	return &Schema{types: map[string]reflect.Type{}}
}

// Register registers the struct type of the given value (or pointer
// to it) for objects of the given type name.
func (s *Schema) Register(typeName string, v any) error {
	typ := reflectx.NonPointerType(reflect.TypeOf(v))
	if typ == nil || typ.Kind() != reflect.Struct {
		return fmt.Errorf("oracle: cannot register %T for %s: not a struct", v, typeName)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.types[typeName] = typ
	return nil
}

// Register registers the struct type T for objects of the given type name.
func Register[T any](s *Schema, typeName string) error {
	var v T
	return s.Register(typeName, v)
}

func (s *Schema) ElementType(obj backend.Object, path string) (backend.FieldType, error) {
	if obj == nil {
		return backend.FieldType{}, fmt.Errorf("oracle: nil object: %w", backend.ErrNotFound)
	}
	s.mu.RLock()
	typ, ok := s.types[obj.TypeName()]
	s.mu.RUnlock()
	if !ok {
		return backend.FieldType{}, fmt.Errorf("oracle: no schema for type %s: %w", obj.TypeName(), backend.ErrNotFound)
	}
	fld, ok := reflectx.FieldByPath(typ, path)
	if !ok {
		fld, ok = reflectx.FieldByPath(typ, exportedPath(path))
	}
	if !ok {
		return backend.FieldType{}, fmt.Errorf("oracle: type %s has no property %q: %w", obj.TypeName(), path, backend.ErrNotFound)
	}
	return FieldTypeOf(fld), nil
}

// FieldTypeOf returns the property type of the given struct field.
func FieldTypeOf(fld reflect.StructField) backend.FieldType {
	ft := backend.FieldType{}
	typ := reflectx.NonPointerType(fld.Type)
	switch typ.Kind() {
	case reflect.Slice, reflect.Array:
		if typ.Elem().Kind() != reflect.Uint8 {
			ft.Array = true
			typ = reflectx.NonPointerType(typ.Elem())
		}
	}
	if tok, ok := fld.Tag.Lookup("token"); ok && tok != "" {
		ft.Token = tok
	} else {
		ft.Token = value.TokenForType(typ)
	}
	return ft
}

// exportedPath capitalizes the first letter of each path element.
func exportedPath(path string) string {
	parts := strings.Split(path, ".")
	for i, p := range parts {
		r, n := utf8.DecodeRuneInString(p)
		if n > 0 {
			parts[i] = string(unicode.ToUpper(r)) + p[n:]
		}
	}
	return strings.Join(parts, ".")
}
