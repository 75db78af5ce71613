// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reflectx

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// FieldByPath returns the struct field of the given type at the given
// dot-separated path (for example "Stats.Items"), descending through
// pointers, slices and arrays of structs along the way. Embedded struct
// fields are found by their promoted names. It returns false if any
// element of the path does not name a field.
func FieldByPath(typ reflect.Type, path string) (reflect.StructField, bool) {
	var fld reflect.StructField
	typ = NonPointerType(typ)
	if typ == nil || path == "" {
		return fld, false
	}
	for i, name := range strings.Split(path, ".") {
		if i > 0 {
			typ = ElemStructType(fld.Type)
		}
		if typ == nil || typ.Kind() != reflect.Struct {
			return fld, false
		}
		f, ok := typ.FieldByName(name)
		if !ok {
			return fld, false
		}
		fld = f
	}
	return fld, true
}

// ElemStructType returns the struct type reached from the given type by
// going through pointers and slice or array element types, or nil if
// there is no struct type at the bottom.
func ElemStructType(typ reflect.Type) reflect.Type {
	for typ != nil {
		switch typ.Kind() {
		case reflect.Pointer, reflect.Slice, reflect.Array:
			typ = typ.Elem()
		case reflect.Struct:
			return typ
		default:
			return nil
		}
	}
	return nil
}

// SetFromDefaultTags sets the values of fields in the given struct based on
// `default:` default value struct field tags. It recurses into fields
// that are themselves structs.
func SetFromDefaultTags(obj any) error {
	if obj == nil {
		return nil
	}
	v := NonPointerValue(reflect.ValueOf(obj))
	if !v.IsValid() || v.Kind() != reflect.Struct {
		return fmt.Errorf("reflectx.SetFromDefaultTags: expected a pointer to a struct, not %T", obj)
	}
	if !v.CanSet() {
		return fmt.Errorf("reflectx.SetFromDefaultTags: %T is not settable; pass a pointer", obj)
	}
	typ := v.Type()
	var errs []error
	for i := range typ.NumField() {
		f := typ.Field(i)
		if !f.IsExported() {
			continue
		}
		fv := v.Field(i)
		if f.Type.Kind() == reflect.Struct {
			if err := SetFromDefaultTags(fv.Addr().Interface()); err != nil {
				errs = append(errs, err)
			}
			continue
		}
		def, ok := f.Tag.Lookup("default")
		if !ok {
			continue
		}
		if err := SetFromString(fv, def); err != nil {
			errs = append(errs, fmt.Errorf("field %s: %w", f.Name, err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("reflectx.SetFromDefaultTags: %v", errs)
	}
	return nil
}

// SetFromString sets the given settable value from its string
// representation. It supports strings, bools, numbers, [time.Duration],
// and slices of those (comma separated).
func SetFromString(v reflect.Value, s string) error {
	if v.Type() == reflect.TypeFor[time.Duration]() {
		d, err := time.ParseDuration(s)
		if err != nil {
			return err
		}
		v.SetInt(int64(d))
		return nil
	}
	switch v.Kind() {
	case reflect.String:
		v.SetString(s)
	case reflect.Bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return err
		}
		v.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := strconv.ParseInt(s, 0, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetInt(i)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u, err := strconv.ParseUint(s, 0, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetUint(u)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(s, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetFloat(f)
	case reflect.Slice:
		if s == "" {
			v.Set(reflect.MakeSlice(v.Type(), 0, 0))
			return nil
		}
		parts := strings.Split(s, ",")
		sl := reflect.MakeSlice(v.Type(), len(parts), len(parts))
		for i, p := range parts {
			if err := SetFromString(sl.Index(i), strings.TrimSpace(p)); err != nil {
				return err
			}
		}
		v.Set(sl)
	default:
		return fmt.Errorf("cannot set value of kind %v from string %q", v.Kind(), s)
	}
	return nil
}
