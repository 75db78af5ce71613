// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package filestore saves and loads [memstore.Store] snapshots as
// TOML or YAML documents, and reloads a store when its file changes.
package filestore

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"cogentcore.org/editkit/base/iox/tomlx"
	"cogentcore.org/editkit/base/iox/yamlx"
	"cogentcore.org/editkit/memstore"
	"cogentcore.org/editkit/value"
)

// Formats are the supported document formats.
type Formats int32

const (
	// TOML is the format of .toml files.
	TOML Formats = iota

	// YAML is the format of .yaml and .yml files.
	YAML
)

func (f Formats) String() string {
	if f == YAML {
		return "YAML"
	}
	return "TOML"
}

// FormatOf returns the format for the extension of the given file name.
func FormatOf(filename string) (Formats, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	}
	return TOML, fmt.Errorf("filestore: unknown document format for %q (want .toml, .yaml or .yml)", filename)
}

// Document is the saved form of a store.
type Document struct {
	Objects []ObjectDoc `toml:"objects" yaml:"objects"`
}

// ObjectDoc is the saved form of an object.
type ObjectDoc struct {
	Ref    string     `toml:"ref" yaml:"ref"`
	Type   string     `toml:"type" yaml:"type"`
	Name   string     `toml:"name" yaml:"name"`
	Fields []FieldDoc `toml:"fields" yaml:"fields"`
}

// FieldDoc is the saved form of a property. Values hold the generic
// document form of each element (see [value.Encode]). Single valued
// properties have exactly one value.
type FieldDoc struct {
	Path   string `toml:"path" yaml:"path"`
	Token  string `toml:"token" yaml:"token"`
	Array  bool   `toml:"array" yaml:"array"`
	Values []any  `toml:"values" yaml:"values"`
}

// Encode returns the document for the committed state of the store.
// Elements of unrecognized types are saved as is, except for nil,
// which TOML cannot represent and is saved as the nil value given.
func Encode(s *memstore.Store, nilValue any) (*Document, error) {
	doc := &Document{}
	for _, obj := range s.Objects() {
		od := ObjectDoc{Ref: obj.Ref().String(), Type: obj.TypeName(), Name: obj.Name()}
		for _, path := range obj.Paths() {
			ft, _ := obj.FieldType(path)
			vs, err := obj.Values(path)
			if err != nil {
				return nil, err
			}
			k, known := value.KindForToken(ft.Token)
			fd := FieldDoc{Path: path, Token: ft.Token, Array: ft.Array, Values: make([]any, len(vs))}
			for i, v := range vs {
				switch {
				case known:
					fd.Values[i] = value.Encode(k, v)
				case v == nil:
					fd.Values[i] = nilValue
				default:
					fd.Values[i] = v
				}
			}
			od.Fields = append(od.Fields, fd)
		}
		doc.Objects = append(doc.Objects, od)
	}
	return doc, nil
}

// Decode returns a new store holding the objects of the document.
func (d *Document) Decode() (*memstore.Store, error) {
	s := memstore.New()
	for _, od := range d.Objects {
		ref, err := value.ParseObjectRef(od.Ref)
		if err != nil {
			return nil, fmt.Errorf("filestore: object %q: %w", od.Name, err)
		}
		obj, err := s.CreateWithRef(ref, od.Type, od.Name)
		if err != nil {
			return nil, fmt.Errorf("filestore: %w", err)
		}
		for _, fd := range od.Fields {
			vs := make([]any, len(fd.Values))
			k, known := value.KindForToken(fd.Token)
			for i, raw := range fd.Values {
				if !known {
					vs[i] = raw
					continue
				}
				if vs[i], err = value.Decode(k, raw); err != nil {
					return nil, fmt.Errorf("filestore: %s.%s[%d]: %w", od.Name, fd.Path, i, err)
				}
			}
			if err := obj.Define(fd.Path, fd.Token, fd.Array, vs...); err != nil {
				return nil, fmt.Errorf("filestore: %w", err)
			}
		}
	}
	return s, nil
}

// Save saves the committed state of the store to the given file,
// in the format given by its extension.
func Save(s *memstore.Store, filename string) error {
	format, err := FormatOf(filename)
	if err != nil {
		return err
	}
	var nilValue any
	if format == TOML {
		nilValue = ""
	}
	doc, err := Encode(s, nilValue)
	if err != nil {
		return err
	}
	if format == YAML {
		err = yamlx.Save(doc, filename)
	} else {
		err = tomlx.Save(doc, filename)
	}
	if err != nil {
		return fmt.Errorf("filestore: save %s: %w", filename, err)
	}
	slog.Info("filestore: saved", "file", filename, "objects", len(doc.Objects))
	return nil
}

// Load loads a new store from the given file, in the format given
// by its extension.
func Load(filename string) (*memstore.Store, error) {
	format, err := FormatOf(filename)
	if err != nil {
		return nil, err
	}
	doc := &Document{}
	if format == YAML {
		err = yamlx.Open(doc, filename)
	} else {
		err = tomlx.Open(doc, filename)
	}
	if err != nil {
		return nil, fmt.Errorf("filestore: load %s: %w", filename, err)
	}
	s, err := doc.Decode()
	if err != nil {
		return nil, err
	}
	slog.Debug("filestore: loaded", "file", filename, "objects", s.Len())
	return s, nil
}

// Reload replaces the contents of the given store with those loaded
// from the given file. The store is unchanged if loading fails.
func Reload(s *memstore.Store, filename string) error {
	loaded, err := Load(filename)
	if err != nil {
		return err
	}
	s.Reset(loaded)
	return nil
}
