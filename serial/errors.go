// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package serial

import (
	"fmt"

	"cogentcore.org/editkit/base/errors"
	"cogentcore.org/editkit/value"
)

var (
	// ErrConstruction is wrapped by every [ConstructionError].
	ErrConstruction = errors.New("serial: cannot open array")

	// ErrIndex is matched by every [IndexError].
	ErrIndex = errors.New("serial: index out of range")

	// ErrKindMismatch is matched by every [KindMismatchError].
	ErrKindMismatch = errors.New("serial: kind mismatch")
)

// ConstructionError is returned when a handle cannot be opened.
type ConstructionError struct {

	// Path is the property path the handle was opened on.
	Path string

	// Reason describes what was wrong.
	Reason string

	// Err is the underlying error, if any.
	Err error
}

func (e *ConstructionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("serial: cannot open array %q: %s: %v", e.Path, e.Reason, e.Err)
	}
	return fmt.Sprintf("serial: cannot open array %q: %s", e.Path, e.Reason)
}

func (e *ConstructionError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrConstruction}
	}
	return []error{ErrConstruction, e.Err}
}

// IndexError is returned for an index outside of the valid range
// of an operation.
type IndexError struct {
	Index int
	Len   int
	Op    string
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("serial: %s: index %d out of range [0, %d)", e.Op, e.Index, e.Len)
}

func (e *IndexError) Is(target error) bool { return target == ErrIndex }

// KindMismatchError is returned when a value or typed accessor does
// not match the element kind of an array.
type KindMismatchError struct {

	// Want is the kind of the array, or the kind of the accessor
	// for arrays of an unrecognized element type.
	Want value.Kind

	// Have describes what was given instead.
	Have string
}

func (e *KindMismatchError) Error() string {
	return fmt.Sprintf("serial: kind mismatch: want %v, have %s", e.Want, e.Have)
}

func (e *KindMismatchError) Is(target error) bool { return target == ErrKindMismatch }
