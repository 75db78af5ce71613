// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package value defines the closed set of value kinds that can be
// stored as elements of an array property, the Go types that
// represent them, and a registry of per-kind operations
// (zero values, equality, cloning, parsing and encoding).
package value

//go:generate core generate

// Kind is the discriminator for the element type of an array property.
// Every element of a given array has the same Kind. Kind constants carry
// a Kind suffix so that they do not collide with the Go types that
// represent the values of that kind.
type Kind int32 //enums:enum

const (
	// BoolKind is a boolean value.
	BoolKind Kind = iota

	// Int32Kind is a 32-bit signed integer.
	Int32Kind

	// Int64Kind is a 64-bit signed integer.
	Int64Kind

	// UInt32Kind is a 32-bit unsigned integer.
	UInt32Kind

	// UInt64Kind is a 64-bit unsigned integer.
	UInt64Kind

	// Float32Kind is a 32-bit floating point number.
	Float32Kind

	// Float64Kind is a 64-bit floating point number.
	Float64Kind

	// StringKind is a text string.
	StringKind

	// ObjectRefKind is a reference to another persisted object, compared by identity.
	ObjectRefKind

	// ColorKind is a floating point RGBA color.
	ColorKind

	// AnimationCurveKind is a keyframed curve.
	AnimationCurveKind

	// GradientKind is a color gradient with color and alpha keys.
	GradientKind

	// Hash128Kind is a 128-bit hash.
	Hash128Kind

	// Vector2Kind is a 2D float vector.
	Vector2Kind

	// Vector2IntKind is a 2D integer vector.
	Vector2IntKind

	// Vector3Kind is a 3D float vector.
	Vector3Kind

	// Vector3IntKind is a 3D integer vector.
	Vector3IntKind

	// Vector4Kind is a 4D float vector.
	Vector4Kind

	// RectKind is a 2D float rectangle.
	RectKind

	// RectIntKind is a 2D integer rectangle.
	RectIntKind

	// BoundsKind is a 3D float bounding box.
	BoundsKind

	// BoundsIntKind is a 3D integer bounding box.
	BoundsIntKind

	// QuaternionKind is a rotation quaternion.
	QuaternionKind
)
