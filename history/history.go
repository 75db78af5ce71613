// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package history provides undo and redo of the changes committed
// to a [memstore.Store].
package history

import (
	"fmt"
	"log/slog"
	"sync"

	"cogentcore.org/editkit/memstore"
	"cogentcore.org/editkit/value"
)

// DefaultMax is the default maximum number of records kept.
var DefaultMax = 1000

// Target restores the committed values of properties.
// It is implemented by [memstore.Store].
type Target interface {
	Restore(ref value.ObjectRef, path string, values []any) error
}

// Record is one undo record, for one change to one property.
type Record struct {

	// Action is a description of the change, for the user to see.
	Action string

	// Group is nonzero for records made within one [Manager.Group],
	// which are undone and redone together.
	Group int

	// Change is the committed change.
	Change memstore.Change
}

// Manager is the undo manager. It implements [memstore.Recorder],
// so that setting it as the recorder of a store makes every change
// committed to the store undoable.
type Manager struct {

	// Index is the current index in the records: the record
	// that will be undone next, or -1 if there is none.
	Index int

	// Records are the saved change records.
	Records []*Record

	// Max is the maximum number of records kept, with the oldest
	// dropped first. If it is 0, [DefaultMax] is used.
	Max int

	// Mu protects the manager.
	Mu sync.Mutex

	target    Target
	lastGroup int
	group     int
	action    string
}

// New returns a new manager restoring changes to the given target.
func New(target Target) *Manager {
	return &Manager{Index: -1, target: target}
}

// Attach returns a new manager for the given store, set as its recorder.
func Attach(s *memstore.Store) *Manager {
	m := New(s)
	s.Recorder = m
	return m
}

// Record saves the given change as the next one to be undone,
// discarding any records that were available to redo.
func (m *Manager) Record(c memstore.Change) {
	m.Mu.Lock()
	defer m.Mu.Unlock()
	action := m.action
	if action == "" {
		action = fmt.Sprintf("edit %s", c.Path)
	}
	m.Records = append(m.Records[:m.Index+1], &Record{Action: action, Group: m.group, Change: c})
	m.Index = len(m.Records) - 1
	limit := m.Max
	if limit == 0 {
		limit = DefaultMax
	}
	if over := len(m.Records) - limit; over > 0 {
		clear(m.Records[:over])
		m.Records = m.Records[over:]
		m.Index -= over
	}
}

// Group runs fn, grouping the changes it commits into one action
// with the given description.
func (m *Manager) Group(action string, fn func() error) error {
	m.Mu.Lock()
	m.lastGroup++
	m.group, m.action = m.lastGroup, action
	m.Mu.Unlock()
	defer func() {
		m.Mu.Lock()
		m.group, m.action = 0, ""
		m.Mu.Unlock()
	}()
	return fn()
}

// IsUndoAvailable returns true if there is at least one record to undo.
func (m *Manager) IsUndoAvailable() bool {
	m.Mu.Lock()
	defer m.Mu.Unlock()
	return m.Index >= 0
}

// IsRedoAvailable returns true if there is at least one record to redo.
func (m *Manager) IsRedoAvailable() bool {
	m.Mu.Lock()
	defer m.Mu.Unlock()
	return m.Index < len(m.Records)-1
}

// Undo restores the state before the current record, or the whole
// group it belongs to, and returns the records undone.
// It returns nil if there is nothing to undo.
func (m *Manager) Undo() ([]*Record, error) {
	m.Mu.Lock()
	defer m.Mu.Unlock()
	if m.Index < 0 {
		return nil, nil
	}
	var recs []*Record
	for m.Index >= 0 {
		r := m.Records[m.Index]
		if len(recs) > 0 && (r.Group == 0 || r.Group != recs[0].Group) {
			break
		}
		if err := m.target.Restore(r.Change.Object, r.Change.Path, r.Change.Before); err != nil {
			return recs, fmt.Errorf("history: undo %s: %w", r.Action, err)
		}
		recs = append(recs, r)
		m.Index--
	}
	slog.Debug("history: undo", "action", recs[0].Action, "records", len(recs))
	return recs, nil
}

// Redo reapplies the next record, or the whole group it belongs
// to, and returns the records redone.
// It returns nil if there is nothing to redo.
func (m *Manager) Redo() ([]*Record, error) {
	m.Mu.Lock()
	defer m.Mu.Unlock()
	var recs []*Record
	for m.Index < len(m.Records)-1 {
		r := m.Records[m.Index+1]
		if len(recs) > 0 && (r.Group == 0 || r.Group != recs[0].Group) {
			break
		}
		if err := m.target.Restore(r.Change.Object, r.Change.Path, r.Change.After); err != nil {
			return recs, fmt.Errorf("history: redo %s: %w", r.Action, err)
		}
		recs = append(recs, r)
		m.Index++
	}
	if len(recs) > 0 {
		slog.Debug("history: redo", "action", recs[0].Action, "records", len(recs))
	}
	return recs, nil
}

// Reset discards all records.
func (m *Manager) Reset() {
	m.Mu.Lock()
	defer m.Mu.Unlock()
	m.Records = nil
	m.Index = -1
}
