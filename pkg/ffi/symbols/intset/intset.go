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

// This package exports the C functions managing integer sets:
// int_set_new, int_set_insert, int_set_remove, int_set_contain,
// int_set_len and int_set_free.
//
// A set is an opaque uintptr_t handle, 0 being the NULL handle. Every
// function accepts the NULL handle and treats it as an empty set that
// cannot be modified. Using a handle after int_set_free is undefined
// behavior. A set is not safe for concurrent mutation.
package intset

/*
#include <stdbool.h>
#include <stddef.h>
#include <stdint.h>
*/
import "C"
import (
	"github.com/ffikit/ffi-sdk-go/pkg/cgo"
	"github.com/ffikit/ffi-sdk-go/pkg/ffi"
	"github.com/ffikit/ffi-sdk-go/pkg/log"
)

func nullSet(symbol string) {
	l := log.Default()
	l.Warn().Str("symbol", symbol).Msg("integer set is a NULL handle")
}

// int_set_new returns an empty set, or 0 if too many sets are alive.
//
//export int_set_new
func int_set_new() C.uintptr_t {
	h, err := ffi.NewIntSetHandle()
	if err != nil {
		ffi.Fail("int_set_new", err)
		return 0
	}
	ffi.SetLastError(nil)
	return C.uintptr_t(h)
}

//export int_set_insert
func int_set_insert(set C.uintptr_t, value C.size_t) {
	if set == 0 {
		return
	}
	ffi.IntSetValue(cgo.Handle(set)).Insert(uint64(value))
}

//export int_set_remove
func int_set_remove(set C.uintptr_t, value C.size_t) {
	if set == 0 {
		return
	}
	ffi.IntSetValue(cgo.Handle(set)).Remove(uint64(value))
}

//export int_set_contain
func int_set_contain(set C.uintptr_t, value C.size_t) C.bool {
	if set == 0 {
		nullSet("int_set_contain")
		return false
	}
	return C.bool(ffi.IntSetValue(cgo.Handle(set)).Contains(uint64(value)))
}

//export int_set_len
func int_set_len(set C.uintptr_t) C.size_t {
	if set == 0 {
		return 0
	}
	return C.size_t(ffi.IntSetValue(cgo.Handle(set)).Len())
}

//export int_set_free
func int_set_free(set C.uintptr_t) {
	if set == 0 {
		return
	}
	ffi.FreeIntSetHandle(cgo.Handle(set))
}
