// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package memstore

import (
	"fmt"
	"log/slog"
	"slices"

	"cogentcore.org/editkit/backend"
	"cogentcore.org/editkit/base/slicesx"
)

// Property is a serialized view of one property of an [Object].
// It holds a working copy of the values: mutations apply to the
// working copy and are written back to the store by [Property.Commit].
type Property struct {
	obj     *Object
	path    string
	field   field // type information and working values
	dirty   bool
	commits int
}

// load reloads the working copy from the committed state.
func (p *Property) load() error {
	if err := p.obj.lock(); err != nil {
		return err
	}
	defer p.obj.unlock()
	f, ok := p.obj.fields[p.path]
	if !ok {
		return fmt.Errorf("memstore: %s has no property %q: %w", p.obj.name, p.path, backend.ErrNotFound)
	}
	p.field = *f
	p.field.values = cloneValues(f.values)
	p.dirty = false
	return nil
}

func (p *Property) Path() string { return p.path }

func (p *Property) IsArray() bool { return p.field.array }

// Dirty returns whether the view has uncommitted changes.
func (p *Property) Dirty() bool { return p.dirty }

// Commits returns the number of commits through this view
// that changed the store.
func (p *Property) Commits() int { return p.commits }

func (p *Property) Count() int { return len(p.field.values) }

func (p *Property) checkIndex(i int, op string) error {
	if i < 0 || i >= len(p.field.values) {
		return fmt.Errorf("memstore: %s %s.%s: index %d out of range [0, %d)", op, p.obj.name, p.path, i, len(p.field.values))
	}
	return nil
}

func (p *Property) checkArray(op string) error {
	if !p.field.array {
		return fmt.Errorf("memstore: %s %s.%s: property is not an array", op, p.obj.name, p.path)
	}
	return nil
}

func (p *Property) SetCount(n int) error {
	if err := p.checkArray("SetCount"); err != nil {
		return err
	}
	if n < 0 {
		return fmt.Errorf("memstore: SetCount %s.%s: negative count %d", p.obj.name, p.path, n)
	}
	old := len(p.field.values)
	if n == old {
		return nil
	}
	p.field.values = slicesx.SetLength(p.field.values, n)
	for i := old; i < n; i++ {
		p.field.values[i] = p.field.zero()
	}
	p.dirty = true
	return nil
}

func (p *Property) Element(i int) (any, error) {
	if err := p.checkIndex(i, "Element"); err != nil {
		return nil, err
	}
	return p.field.values[i], nil
}

func (p *Property) SetElement(i int, v any) error {
	if err := p.checkIndex(i, "SetElement"); err != nil {
		return err
	}
	if err := p.field.check(v); err != nil {
		return fmt.Errorf("memstore: SetElement %s.%s: %w", p.obj.name, p.path, err)
	}
	p.field.values[i] = v
	p.dirty = true
	return nil
}

func (p *Property) DeleteElement(i int) error {
	if err := p.checkArray("DeleteElement"); err != nil {
		return err
	}
	if err := p.checkIndex(i, "DeleteElement"); err != nil {
		return err
	}
	p.field.values = slices.Delete(p.field.values, i, i+1)
	p.dirty = true
	return nil
}

func (p *Property) MoveElement(from, to int) error {
	if err := p.checkArray("MoveElement"); err != nil {
		return err
	}
	if err := p.checkIndex(from, "MoveElement"); err != nil {
		return err
	}
	if err := p.checkIndex(to, "MoveElement"); err != nil {
		return err
	}
	if from == to {
		return nil
	}
	p.field.values = slicesx.Move(p.field.values, from, to)
	p.dirty = true
	return nil
}

// Update refreshes the working copy from the store, unless the view
// holds uncommitted changes, which are kept.
func (p *Property) Update() error {
	if p.dirty {
		return nil
	}
	return p.load()
}

// Commit writes uncommitted changes back to the store, notifying
// the store's [Recorder].
func (p *Property) Commit() error {
	if !p.dirty {
		return nil
	}
	if err := p.obj.lock(); err != nil {
		return err
	}
	s := p.obj.store
	f, ok := p.obj.fields[p.path]
	if !ok {
		p.obj.unlock()
		return fmt.Errorf("memstore: %s has no property %q: %w", p.obj.name, p.path, backend.ErrNotFound)
	}
	before := f.values
	changed := !equalValues(before, p.field.values)
	if changed {
		f.values = cloneValues(p.field.values)
	}
	rec := s.Recorder
	p.obj.unlock()
	p.dirty = false
	if !changed {
		return nil
	}
	p.commits++
	slog.Debug("memstore: commit", "object", p.obj.Name(), "path", p.path, "count", len(p.field.values))
	if rec != nil {
		rec.Record(Change{Object: p.obj.ref, Path: p.path, Before: before, After: cloneValues(p.field.values)})
	}
	return nil
}
