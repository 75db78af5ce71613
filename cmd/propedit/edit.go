// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"cmp"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"cogentcore.org/editkit/backend"
	"cogentcore.org/editkit/filestore"
	"cogentcore.org/editkit/history"
	"cogentcore.org/editkit/memstore"
	"cogentcore.org/editkit/serial"
	"cogentcore.org/editkit/value"
)

// Request is one edit of the array property at Path of the objects
// whose names match Pattern.
type Request struct {

	// Command is the name of the edit, such as "insert".
	Command string

	// File is the store file.
	File string

	// Pattern is a glob pattern matching the names of the objects.
	Pattern string

	// Path is the dot separated path of the array property.
	Path string

	// Args are the remaining arguments of the command, in order.
	Args []string

	// All removes every matching element for the remove command.
	All bool
}

// nargs is the number of arguments of each array command,
// or -1 for an optional index.
var nargs = map[string]int{
	"len":    0,
	"get":    -1,
	"set":    2,
	"insert": 2,
	"append": 1,
	"remove": 1,
	"delete": 1,
	"move":   2,
	"resize": 1,
	"clear":  0,
	"dedup":  0,
}

// Run loads the store file of the request, performs the request, and
// saves the store if anything changed. With [Config.DryRun] the
// changes are printed instead.
func Run(c *Config, r *Request, w io.Writer) error {
	s, err := filestore.Load(r.File)
	if err != nil {
		return err
	}
	h := history.Attach(s)
	h.Max = c.HistoryMax
	if err := Edit(s, c, r, w); err != nil {
		return err
	}
	if len(h.Records) == 0 && c.Output == "" {
		slog.Info("propedit: no changes", "file", r.File)
		return nil
	}
	if c.DryRun {
		for _, rec := range h.Records {
			obj, _ := s.Object(rec.Change.Object)
			fmt.Fprintf(w, "%s.%s: %s -> %s\n", obj.Name(), rec.Change.Path, formatValues(rec.Change.Before), formatValues(rec.Change.After))
		}
		return nil
	}
	return filestore.Save(s, cmp.Or(c.Output, r.File))
}

// Edit performs the request on the given store, writing any output
// to w.
func Edit(s *memstore.Store, c *Config, r *Request, w io.Writer) error {
	if r.Command == "find" {
		return find(s, c, r, w)
	}
	n, ok := nargs[r.Command]
	if !ok {
		return fmt.Errorf("propedit: unknown command %q", r.Command)
	}
	if n >= 0 && len(r.Args) != n {
		return fmt.Errorf("propedit: %s takes %d arguments, not %d", r.Command, n, len(r.Args))
	}
	if n < 0 && len(r.Args) > 1 {
		return fmt.Errorf("propedit: %s takes at most 1 argument, not %d", r.Command, len(r.Args))
	}
	objs, err := s.Find(c.Type, r.Pattern)
	if err != nil {
		return err
	}
	if len(objs) == 0 {
		return fmt.Errorf("propedit: no objects match %q", r.Pattern)
	}
	targets := make([]backend.Object, len(objs))
	for i, obj := range objs {
		targets[i] = obj
	}
	l, err := serial.OpenSelection(targets, r.Path, s)
	if err != nil {
		return err
	}
	slog.Debug("propedit: editing", "command", r.Command, "path", r.Path, "objects", len(objs))
	if r.Command == "dedup" {
		return dedup(l, w)
	}
	return apply(l, func() error {
		return edit(l, r, w)
	})
}

// apply runs fn in one transaction for a single array. A multi-target
// array opens its own transaction per target.
func apply(l serial.List, fn func() error) error {
	if a, ok := l.(*serial.Array); ok {
		return a.Apply(fn)
	}
	return fn()
}

func edit(l serial.List, r *Request, w io.Writer) error {
	switch r.Command {
	case "len":
		fmt.Fprintln(w, l.Len())
	case "get":
		if len(r.Args) == 0 {
			for i, v := range l.All() {
				fmt.Fprintf(w, "%d: %s\n", i, value.Format(v))
			}
			return nil
		}
		i, err := index(r.Args[0])
		if err != nil {
			return err
		}
		v, err := l.Get(i)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, value.Format(v))
	case "set", "insert":
		i, err := index(r.Args[0])
		if err != nil {
			return err
		}
		v, err := parse(l, r.Args[1])
		if err != nil {
			return err
		}
		if r.Command == "set" {
			return l.Set(i, v)
		}
		return l.Insert(i, v)
	case "append":
		v, err := parse(l, r.Args[0])
		if err != nil {
			return err
		}
		return l.Append(v)
	case "remove":
		v, err := parse(l, r.Args[0])
		if err != nil {
			return err
		}
		n := 0
		if r.All {
			n, err = l.RemoveAll(v)
		} else {
			var removed bool
			removed, err = l.Remove(v)
			if removed {
				n = 1
			}
		}
		if err != nil {
			return err
		}
		fmt.Fprintln(w, n)
	case "delete":
		i, err := index(r.Args[0])
		if err != nil {
			return err
		}
		return l.RemoveAt(i)
	case "move":
		from, err := index(r.Args[0])
		if err != nil {
			return err
		}
		to, err := index(r.Args[1])
		if err != nil {
			return err
		}
		return l.Move(from, to)
	case "resize":
		n, err := index(r.Args[0])
		if err != nil {
			return err
		}
		return l.SetLen(n)
	case "clear":
		return l.Clear()
	}
	return nil
}

// dedup removes the duplicate elements of every target of the list
// and prints the number removed.
func dedup(l serial.List, w io.Writer) error {
	var handles []*serial.Array
	switch l := l.(type) {
	case *serial.Array:
		handles = []*serial.Array{l}
	case *serial.MultiArray:
		handles = l.Handles()
	}
	total := 0
	for _, a := range handles {
		n, err := serial.RemoveDuplicates(a)
		if err != nil {
			return err
		}
		total += n
	}
	fmt.Fprintln(w, total)
	return nil
}

// find prints the objects matching the request, with their properties.
func find(s *memstore.Store, c *Config, r *Request, w io.Writer) error {
	objs, err := s.Find(c.Type, r.Pattern)
	if err != nil {
		return err
	}
	for _, obj := range objs {
		fmt.Fprintln(w, obj)
		for _, path := range obj.Paths() {
			ft, _ := obj.FieldType(path)
			token := ft.Token
			if ft.Array {
				token = "[]" + token
			}
			fmt.Fprintf(w, "\t%s %s\n", path, token)
		}
	}
	return nil
}

func index(s string) (int, error) {
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("propedit: invalid index %q", s)
	}
	return i, nil
}

// parse parses the text form of an element of the list. Elements of
// unregistered types are kept as strings.
func parse(l serial.List, s string) (any, error) {
	if !l.Known() {
		return s, nil
	}
	return value.Parse(l.Kind(), s)
}

func formatValues(vs []any) string {
	strs := make([]string, len(vs))
	for i, v := range vs {
		strs[i] = value.Format(v)
	}
	return "[" + strings.Join(strs, ", ") + "]"
}
