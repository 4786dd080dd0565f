// SPDX-License-Identifier: Apache-2.0
/*
Copyright (C) 2026 The FFIKit Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package loader

import (
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ffikit/ffi-sdk-go/internal/libtest"
	"github.com/ffikit/ffi-sdk-go/pkg/ffi"
)

func TestMain(m *testing.M) {
	code := m.Run()
	libtest.Cleanup()
	os.Exit(code)
}

// openTestLib opens the library named by FFIKIT_LIB, building it from
// examples/clib when unset.
func openTestLib(t *testing.T) *Library {
	path, err := libtest.Path()
	if errors.Is(err, libtest.ErrNoToolchain) {
		t.Skip(err)
	}
	require.NoError(t, err)
	lib, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { lib.Close() })
	return lib
}

// Every symbol resolved by Open must be declared by the public header.
func TestHeaderDeclaresSymbols(t *testing.T) {
	src, err := os.ReadFile("loader.go")
	require.NoError(t, err)
	hdr, err := os.ReadFile(filepath.Join("..", "ffi", "ffikit.h"))
	require.NoError(t, err)

	syms := regexp.MustCompile(`__LOAD_SYM\((\w+)\);`).FindAllStringSubmatch(string(src), -1)
	assert.Len(t, syms, 19)
	for _, sym := range syms {
		decl := regexp.MustCompile(`[ *]` + sym[1] + `\(`)
		assert.True(t, decl.Match(hdr), "%s is not declared in ffikit.h", sym[1])
	}
}

func TestOpenMissingFile(t *testing.T) {
	_, err := Open("/nonexistent/libffikit.so")
	assert.Error(t, err)
}

func TestOpenMissingSymbols(t *testing.T) {
	lib, err := Open("libc.so.6")
	if err == nil {
		lib.Close()
		t.Fatalf("expected libc to miss the ffikit symbols")
	}
	if !errors.Is(err, ErrMissingSymbol) {
		t.Skipf("libc.so.6 cannot be loaded: %v", err)
	}
	assert.Contains(t, err.Error(), "string_to_uint32")
}

func TestLibraryInfo(t *testing.T) {
	lib := openTestLib(t)
	assert.Equal(t, "hello world", lib.HelloWorld())
	assert.Equal(t, ffi.Name, lib.Name())
	assert.Equal(t, ffi.Version, lib.Version())
}

func TestLibraryParse(t *testing.T) {
	lib := openTestLib(t)

	u, err := lib.ParseUint32("123")
	require.NoError(t, err)
	assert.Equal(t, uint32(123), u)
	assert.NoError(t, lib.LastError())

	i, err := lib.ParseInt32("-123")
	require.NoError(t, err)
	assert.Equal(t, int32(-123), i)

	_, err = lib.ParseUint32("-1")
	assert.True(t, errors.Is(err, ErrCallFailed))
	assert.Error(t, lib.LastError())

	sum, err := lib.Add(5, 7)
	require.NoError(t, err)
	assert.Equal(t, int32(12), sum)
}

func TestLibraryPerson(t *testing.T) {
	lib := openTestLib(t)

	daniel, err := lib.CreatePerson(1, "Daniel")
	require.NoError(t, err)
	defer daniel.Free()
	assert.Equal(t, ffi.Person{ID: 1, Name: "Daniel"}, daniel.Value())

	text, err := daniel.Serialize()
	require.NoError(t, err)
	assert.Equal(t, `{"id":1,"name":"Daniel"}`, text)

	copied, err := lib.DeserializePerson(text)
	require.NoError(t, err)
	defer copied.Free()
	assert.Equal(t, daniel.Value(), copied.Value())

	_, err = lib.CreatePerson(2, "bad\xff")
	assert.True(t, errors.Is(err, ErrCallFailed))

	_, err = lib.DeserializePerson(`{"id":1}`)
	assert.True(t, errors.Is(err, ErrCallFailed))
}

func TestLibraryIntSet(t *testing.T) {
	lib := openTestLib(t)

	set, err := lib.NewIntSet()
	require.NoError(t, err)
	defer set.Free()

	assert.False(t, set.Contains(42))
	set.Insert(42)
	set.Insert(42)
	assert.True(t, set.Contains(42))
	assert.Equal(t, uint64(1), set.Len())
	set.Remove(42)
	assert.False(t, set.Contains(42))
	assert.Equal(t, uint64(0), set.Len())
}

func TestLibraryConfigure(t *testing.T) {
	lib := openTestLib(t)
	defer lib.Configure("")

	require.NoError(t, lib.Configure(`{"maxIntSets":1}`))
	set, err := lib.NewIntSet()
	require.NoError(t, err)
	defer set.Free()

	_, err = lib.NewIntSet()
	assert.True(t, errors.Is(err, ErrCallFailed))

	assert.Error(t, lib.Configure(`{"logLevel":"loud"}`))
}

func TestLibraryClosed(t *testing.T) {
	lib := openTestLib(t)
	require.NoError(t, lib.Close())
	require.NoError(t, lib.Close())

	_, err := lib.ParseUint32("1")
	assert.Equal(t, ErrClosed, err)
	_, err = lib.NewIntSet()
	assert.Equal(t, ErrClosed, err)
	assert.Equal(t, "", lib.HelloWorld())
}
