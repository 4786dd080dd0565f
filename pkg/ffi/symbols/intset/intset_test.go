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

package intset

import (
	"bytes"
	"errors"
	"math"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ffikit/ffi-sdk-go/pkg/ffi"
	"github.com/ffikit/ffi-sdk-go/pkg/log"
)

func TestIntSet(t *testing.T) {
	set := int_set_new()
	require.NotEqual(t, _Ctype_uintptr_t(0), set)
	defer int_set_free(set)

	for _, v := range []_Ctype_size_t{0, 1, 42, math.MaxUint32} {
		if int_set_contain(set, v) {
			t.Errorf("%d was never inserted", v)
		}
	}

	int_set_insert(set, 42)
	int_set_insert(set, 42)
	int_set_insert(set, 7)
	assert.True(t, bool(int_set_contain(set, 42)))
	assert.True(t, bool(int_set_contain(set, 7)))
	assert.False(t, bool(int_set_contain(set, 8)))
	assert.Equal(t, _Ctype_size_t(2), int_set_len(set))

	int_set_remove(set, 42)
	assert.False(t, bool(int_set_contain(set, 42)))
	assert.True(t, bool(int_set_contain(set, 7)))
	assert.Equal(t, _Ctype_size_t(1), int_set_len(set))

	// removing an absent value is a no-op
	int_set_remove(set, 1000)
	assert.Equal(t, _Ctype_size_t(1), int_set_len(set))

	// re-inserting a removed value makes it visible again
	int_set_insert(set, 42)
	assert.True(t, bool(int_set_contain(set, 42)))
}

func TestIntSetIndependent(t *testing.T) {
	a := int_set_new()
	b := int_set_new()
	require.NotEqual(t, a, b)

	int_set_insert(a, 1)
	assert.True(t, bool(int_set_contain(a, 1)))
	assert.False(t, bool(int_set_contain(b, 1)))

	int_set_free(a)
	int_set_insert(b, 2)
	assert.True(t, bool(int_set_contain(b, 2)))
	int_set_free(b)
}

func TestIntSetNull(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	int_set_insert(0, 1)
	int_set_remove(0, 1)
	int_set_free(0)
	assert.Equal(t, _Ctype_size_t(0), int_set_len(0))
	assert.False(t, bool(int_set_contain(0, 1)))
	assert.Contains(t, buf.String(), "int_set_contain")
}

func TestIntSetFreed(t *testing.T) {
	before := ffi.LiveIntSets()
	set := int_set_new()
	assert.Equal(t, before+1, ffi.LiveIntSets())
	int_set_free(set)
	assert.Equal(t, before, ffi.LiveIntSets())

	// using a freed handle is a misuse
	assert.Panics(t, func() { int_set_free(set) })
}

func TestIntSetLimit(t *testing.T) {
	defer ffi.SetMaxIntSets(ffi.MaxIntSets())
	require.NoError(t, ffi.SetMaxIntSets(ffi.LiveIntSets()+1))

	set := int_set_new()
	require.NotEqual(t, _Ctype_uintptr_t(0), set)
	defer int_set_free(set)

	assert.Equal(t, _Ctype_uintptr_t(0), int_set_new())
	assert.True(t, errors.Is(ffi.LastError(), ffi.ErrTooManySets))
}
