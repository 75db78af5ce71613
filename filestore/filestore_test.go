// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package filestore

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"cogentcore.org/editkit/memstore"
	"cogentcore.org/editkit/value"
	"cogentcore.org/editkit/value/valuetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleStore(t *testing.T) *memstore.Store {
	t.Helper()
	s := memstore.New()
	o := s.Create("Sampler", "all kinds")
	for k, vs := range valuetest.Samples() {
		require.NoError(t, o.Define("arrays."+k.String(), k.String(), true, vs[0], vs[1]))
		require.NoError(t, o.Define("singles."+k.String(), k.String(), false, vs[1]))
	}
	require.NoError(t, o.Define("empty", "Vector3", true))
	require.NoError(t, o.Define("raw", "uint8", true, "raw"))
	other := s.Create("Sampler", "other")
	require.NoError(t, other.Define("target", "ObjectRef", false, o.Ref()))
	return s
}

func assertSameStore(t *testing.T, want, got *memstore.Store) {
	t.Helper()
	wobjs, gobjs := want.Objects(), got.Objects()
	require.Len(t, gobjs, len(wobjs))
	for i, wo := range wobjs {
		gobj := gobjs[i]
		assert.Equal(t, wo.Ref(), gobj.Ref())
		assert.Equal(t, wo.Name(), gobj.Name())
		assert.Equal(t, wo.TypeName(), gobj.TypeName())
		require.Equal(t, wo.Paths(), gobj.Paths())
		for _, path := range wo.Paths() {
			if path == "raw" {
				continue
			}
			wft, _ := wo.FieldType(path)
			gft, _ := gobj.FieldType(path)
			assert.Equal(t, wft, gft)
			wv, err := wo.Values(path)
			require.NoError(t, err)
			gv, err := gobj.Values(path)
			require.NoError(t, err)
			require.Len(t, gv, len(wv), path)
			for j := range wv {
				assert.True(t, value.Equal(wv[j], gv[j]), "%s[%d]: %v != %v", path, j, wv[j], gv[j])
			}
		}
	}
}

func TestRoundTrip(t *testing.T) {
	s := sampleStore(t)
	for _, name := range []string{"store.toml", "store.yaml", "store.yml"} {
		t.Run(name, func(t *testing.T) {
			fn := filepath.Join(t.TempDir(), name)
			require.NoError(t, Save(s, fn))
			got, err := Load(fn)
			require.NoError(t, err)
			assertSameStore(t, s, got)
		})
	}
}

func TestFormatOf(t *testing.T) {
	f, err := FormatOf("a/b.YAML")
	require.NoError(t, err)
	assert.Equal(t, YAML, f)
	_, err = FormatOf("a.json")
	assert.Error(t, err)
	assert.Error(t, Save(memstore.New(), "a.json"))
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	_, err := Load(filepath.Join(dir, "missing.toml"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte(`objects:
  - ref: "not a ulid"
    type: T
    name: x
`), 0666))
	_, err = Load(bad)
	assert.Error(t, err)

	wrong := filepath.Join(dir, "wrong.yaml")
	ref := value.NewObjectRef()
	require.NoError(t, os.WriteFile(wrong, []byte(`objects:
  - ref: `+ref.String()+`
    type: T
    name: x
    fields:
      - path: v
        token: Vector2
        array: true
        values: [[1, 2, 3]]
`), 0666))
	_, err = Load(wrong)
	assert.ErrorIs(t, err, value.ErrDecode)
}

func TestReload(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "store.toml")
	s := sampleStore(t)
	require.NoError(t, Save(s, fn))
	live := memstore.New()
	live.Create("Thing", "old")
	require.NoError(t, Reload(live, fn))
	assertSameStore(t, s, live)
	assert.Error(t, Reload(live, fn+".missing.toml"))
	assert.Equal(t, s.Len(), live.Len())
}

func TestWatch(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "store.yaml")
	require.NoError(t, Save(memstore.New(), fn))

	live := memstore.New()
	reloaded := make(chan error, 10)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error)
	go func() {
		done <- Watch(ctx, fn, live, func(err error) { reloaded <- err })
	}()

	// give the watcher time to start before changing the file
	time.Sleep(200 * time.Millisecond)
	s := memstore.New()
	s.Create("Thing", "new")
	require.NoError(t, Save(s, fn))

	select {
	case err := <-reloaded:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("store was not reloaded")
	}
	objs, err := live.Find("Thing", "new")
	require.NoError(t, err)
	assert.Len(t, objs, 1)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop")
	}
}
