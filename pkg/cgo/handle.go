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

package cgo

import (
	"fmt"
	"sync/atomic"
	"unsafe"
)

// Handle is an alternative implementation of cgo.Handle introduced by
// Go 1.17, see https://pkg.go.dev/runtime/cgo. It is the opaque value
// handed to C code for every object whose memory is owned by Go, such
// as the integer sets returned by int_set_new.
//
// Like runtime/cgo.Handle, this provides a way to pass values that
// contain Go pointers between Go and C without breaking the cgo pointer
// passing rules. The underlying type of Handle is guaranteed to fit in
// an integer type that is large enough to hold the bit pattern of any pointer.
// The zero value of a Handle is not valid and thus is safe to use as
// the NULL handle in C APIs.
//
// Handles live in a fixed-size table, so the number of simultaneously
// valid handles is capped (see MaxHandle). Running out of slots is the
// only way creating a handle can fail, and TryNewHandle reports it to
// callers that must surface an allocation failure instead of panicking.
//
// Slots are claimed and released with atomic operations, so distinct
// handles may be used from different threads. The values behind a handle
// are not synchronized.
type Handle uintptr

const (
	// MaxHandle is the largest value that an Handle can hold
	MaxHandle = 4096 - 1

	// max number of times we're willing to iterate over the table of
	// reusable handles to do compare-and-swap before giving up
	maxNewHandleRounds = 20
)

var (
	handles  [MaxHandle + 1]unsafe.Pointer // [int]*interface{}
	noHandle unsafe.Pointer                = nil
	live     int64
)

func init() {
	resetHandles()
}

// TryNewHandle returns a handle for a given value, or false if every
// slot of the handle table is in use.
//
// The handle is valid until the program calls Delete on it. The handle
// uses resources, and this package assumes that C code may hold on to
// the handle, so a program must explicitly call Delete when the handle
// is no longer needed. Programs must not retain deleted handles.
func TryNewHandle(v interface{}) (Handle, bool) {
	rounds := 0
	for h := uintptr(1); ; h++ {
		// note: we attempt accessing slots 1..MaxHandle (included)
		if atomic.CompareAndSwapPointer(&handles[h], noHandle, (unsafe.Pointer)(&v)) {
			atomic.AddInt64(&live, 1)
			return Handle(h), true
		}

		if h < MaxHandle {
			continue
		}

		// wrapped around the whole table, slots may have been released
		// in the meantime so retry a bounded number of times
		h = uintptr(0) // note: will be incremented when continuing
		if rounds < maxNewHandleRounds {
			rounds++
			continue
		}
		return 0, false
	}
}

// NewHandle is like TryNewHandle, but panics if no more handles
// are available.
func NewHandle(v interface{}) Handle {
	h, ok := TryNewHandle(v)
	if !ok {
		panic(fmt.Sprintf("ffi-sdk-go/cgo: could not obtain a new handle after round #%d", maxNewHandleRounds))
	}
	return h
}

// Value returns the associated Go value for a valid handle.
//
// The method panics if the handle is invalid.
func (h Handle) Value() interface{} {
	if h > MaxHandle || atomic.LoadPointer(&handles[h]) == noHandle {
		panic(fmt.Sprintf("ffi-sdk-go/cgo: misuse (value) of an invalid Handle %d", h))
	}
	return *(*interface{})(atomic.LoadPointer(&handles[h]))
}

// Delete invalidates a handle. This method should only be called once
// the program no longer needs to pass the handle to C and the C code
// no longer has a copy of the handle value.
//
// The method panics if the handle is invalid.
func (h Handle) Delete() {
	if h > MaxHandle {
		panic(fmt.Sprintf("ffi-sdk-go/cgo: misuse (delete) of an invalid Handle %d", h))
	}
	if old := atomic.SwapPointer(&handles[h], noHandle); old == noHandle {
		panic(fmt.Sprintf("ffi-sdk-go/cgo: misuse (delete) of an invalid Handle %d", h))
	}
	atomic.AddInt64(&live, -1)
}

// Live returns the number of handles currently valid.
func Live() int {
	return int(atomic.LoadInt64(&live))
}

func resetHandles() {
	for i := 0; i <= MaxHandle; i++ {
		atomic.StorePointer(&handles[i], noHandle)
	}
	atomic.StoreInt64(&live, 0)
}
