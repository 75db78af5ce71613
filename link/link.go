// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package link

import (
	"fmt"
	"log/slog"
	"slices"

	"cogentcore.org/editkit/backend"
	"cogentcore.org/editkit/base/errors"
	"cogentcore.org/editkit/serial"
	"cogentcore.org/editkit/value"
)

// Linker is a two-way link from a set of owner objects.
type Linker interface {

	// Link links the given object to the owners,
	// and the owners back to it.
	Link(ref value.ObjectRef) error

	// Unlink undoes [Linker.Link].
	Unlink(ref value.ObjectRef) error

	// Refs returns the linked objects of the primary owner.
	Refs() ([]value.ObjectRef, error)
}

// Options are the collaborators and paths of a link.
type Options struct {

	// Resolver resolves linked objects, to update their back-references.
	Resolver backend.Resolver

	// Oracle resolves property types, of both owners and linked objects.
	Oracle backend.Oracle

	// Path is the path of the reference property in the owners.
	Path string

	// BackPath is the path of the back-reference property in
	// the linked objects.
	BackPath string
}

func (o *Options) validate(owners []backend.Object) error {
	switch {
	case len(owners) == 0:
		return fmt.Errorf("link: no owner objects for %q", o.Path)
	case o.Resolver == nil || o.Oracle == nil:
		return fmt.Errorf("link: %q needs both a resolver and a type oracle", o.Path)
	case o.Path == "" || o.BackPath == "":
		return fmt.Errorf("link: empty property path (path %q, back path %q)", o.Path, o.BackPath)
	}
	for _, obj := range owners {
		if obj == nil {
			return fmt.Errorf("link: nil owner object for %q", o.Path)
		}
	}
	return nil
}

// Open returns the [Linker] for the property at the given path of
// the owners: an [*Array] for array properties, and a [*Property]
// for single references.
func Open(owners []backend.Object, opts Options) (Linker, error) {
	if err := opts.validate(owners); err != nil {
		return nil, err
	}
	ft, err := opts.Oracle.ElementType(owners[len(owners)-1], opts.Path)
	if err != nil {
		return nil, fmt.Errorf("link: %q: %w", opts.Path, err)
	}
	if ft.Array {
		la, err := NewArray(owners, opts)
		if err != nil {
			return nil, err
		}
		return la, nil
	}
	lp, err := NewProperty(owners, opts)
	if err != nil {
		return nil, err
	}
	return lp, nil
}

// link nests ref into every owner, and every owner into ref.
func link(owners []backend.Object, ref value.ObjectRef, opts *Options) error {
	for _, owner := range owners {
		if err := Nest(owner, ref, opts.Path, opts.Oracle); err != nil {
			return err
		}
	}
	nested, err := opts.Resolver.Resolve(ref)
	if err != nil {
		return fmt.Errorf("link: %w", err)
	}
	for _, owner := range owners {
		if err := Nest(nested, owner.Ref(), opts.BackPath, opts.Oracle); err != nil {
			return err
		}
	}
	slog.Debug("link: linked", "object", nested.Name(), "path", opts.Path, "owners", len(owners))
	return nil
}

// unlink unnests ref from every owner, and every owner from ref.
// A ref that no longer resolves has no back-references to remove.
func unlink(owners []backend.Object, ref value.ObjectRef, opts *Options) error {
	for _, owner := range owners {
		if err := Unnest(owner, ref, opts.Path, opts.Oracle); err != nil {
			return err
		}
	}
	nested, err := opts.Resolver.Resolve(ref)
	if errors.Is(err, backend.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("link: %w", err)
	}
	for _, owner := range owners {
		if err := Unnest(nested, owner.Ref(), opts.BackPath, opts.Oracle); err != nil {
			return err
		}
	}
	slog.Debug("link: unlinked", "object", nested.Name(), "path", opts.Path, "owners", len(owners))
	return nil
}

// Array links an array of references in each owner.
type Array struct {
	opts       Options
	owners     []backend.Object
	list       serial.List
	duplicates int
}

// NewArray opens the array of references at opts.Path on the owners,
// and removes duplicate references from each owner's array.
func NewArray(owners []backend.Object, opts Options) (*Array, error) {
	if err := opts.validate(owners); err != nil {
		return nil, err
	}
	list, err := serial.OpenSelection(owners, opts.Path, opts.Oracle)
	if err != nil {
		return nil, err
	}
	if !list.Known() || list.Kind() != value.ObjectRefKind {
		return nil, fmt.Errorf("%w: %q", ErrNotReference, opts.Path)
	}
	la := &Array{opts: opts, owners: owners, list: list}
	for _, h := range la.handles() {
		n, err := serial.RemoveDuplicates(h)
		if err != nil {
			return nil, err
		}
		la.duplicates += n
	}
	return la, nil
}

// handles returns the single target handles of the list.
func (la *Array) handles() []*serial.Array {
	switch l := la.list.(type) {
	case *serial.Array:
		return []*serial.Array{l}
	case *serial.MultiArray:
		return l.Handles()
	}
	return nil
}

// refresh reloads the property views of the handles, which do not
// see changes committed through other views until then.
func (la *Array) refresh() error {
	for _, h := range la.handles() {
		if err := h.Property().Update(); err != nil {
			return err
		}
	}
	return nil
}

// apply runs fn in a transaction on a single target list. A multi
// target list opens its own transactions per target.
func (la *Array) apply(fn func() error) error {
	if a, ok := la.list.(*serial.Array); ok {
		return a.Apply(fn)
	}
	return fn()
}

// Duplicates returns the number of duplicate references
// removed when the array was opened.
func (la *Array) Duplicates() int { return la.duplicates }

// List returns the underlying array handle.
func (la *Array) List() serial.List { return la.list }

func (la *Array) Link(ref value.ObjectRef) error { return link(la.owners, ref, &la.opts) }

func (la *Array) Unlink(ref value.ObjectRef) error { return unlink(la.owners, ref, &la.opts) }

// Move reorders the linked objects.
func (la *Array) Move(from, to int) error {
	if err := la.refresh(); err != nil {
		return err
	}
	return la.apply(func() error { return la.list.Move(from, to) })
}

func (la *Array) Refs() ([]value.ObjectRef, error) {
	if err := la.refresh(); err != nil {
		return nil, err
	}
	return serial.Collect[value.ObjectRef](la.list)
}

// Prune removes the null references, and the references to objects
// that no longer exist, returning the number removed.
func (la *Array) Prune() (int, error) {
	if err := la.refresh(); err != nil {
		return 0, err
	}
	var dead []value.ObjectRef
	for _, h := range la.handles() {
		refs, err := serial.Collect[value.ObjectRef](h)
		if err != nil {
			return 0, err
		}
		for _, r := range refs {
			if r.IsNil() || slices.Contains(dead, r) {
				continue
			}
			if _, err := la.opts.Resolver.Resolve(r); errors.Is(err, backend.ErrNotFound) {
				dead = append(dead, r)
			}
		}
	}
	removed := 0
	err := la.apply(func() error {
		for _, r := range append(dead, value.ObjectRef{}) {
			n, err := la.list.RemoveAll(r)
			removed += n
			if err != nil {
				return err
			}
		}
		return nil
	})
	return removed, err
}

// Property links a single reference in each owner.
type Property struct {
	opts   Options
	owners []backend.Object
}

// NewProperty checks that opts.Path is a single object reference
// on each of the owners.
func NewProperty(owners []backend.Object, opts Options) (*Property, error) {
	if err := opts.validate(owners); err != nil {
		return nil, err
	}
	for _, owner := range owners {
		ft, err := opts.Oracle.ElementType(owner, opts.Path)
		if err != nil {
			return nil, fmt.Errorf("link: %s.%s: %w", owner.Name(), opts.Path, err)
		}
		if k, ok := value.KindForToken(ft.Token); ft.Array || !ok || k != value.ObjectRefKind {
			return nil, fmt.Errorf("%w: %s.%s is not a single reference", ErrNotReference, owner.Name(), opts.Path)
		}
	}
	return &Property{opts: opts, owners: owners}, nil
}

func (lp *Property) Link(ref value.ObjectRef) error { return link(lp.owners, ref, &lp.opts) }

func (lp *Property) Unlink(ref value.ObjectRef) error { return unlink(lp.owners, ref, &lp.opts) }

// Ref returns the reference held by the primary owner.
func (lp *Property) Ref() (value.ObjectRef, error) {
	owner := lp.owners[len(lp.owners)-1]
	p, err := owner.Property(lp.opts.Path)
	if err != nil {
		return value.ObjectRef{}, fmt.Errorf("link: %w", err)
	}
	v, err := p.Element(0)
	if err != nil {
		return value.ObjectRef{}, fmt.Errorf("link: %w", err)
	}
	r, ok := v.(value.ObjectRef)
	if !ok {
		return value.ObjectRef{}, &serial.KindMismatchError{Want: value.ObjectRefKind, Have: fmt.Sprintf("%T", v)}
	}
	return r, nil
}

// Refs returns the reference of the primary owner, if it is set.
func (lp *Property) Refs() ([]value.ObjectRef, error) {
	r, err := lp.Ref()
	if err != nil || r.IsNil() {
		return nil, err
	}
	return []value.ObjectRef{r}, nil
}
