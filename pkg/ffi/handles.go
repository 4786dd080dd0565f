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

package ffi

import (
	"sync/atomic"

	"github.com/pkg/errors"

	"github.com/ffikit/ffi-sdk-go/pkg/cgo"
)

var (
	maxIntSets  int64 = cgo.MaxHandle
	liveIntSets int64
)

// SetMaxIntSets caps the number of integer sets that can be alive at the
// same time. Lowering the cap below the current count does not release
// anything: new sets are refused until enough are freed.
func SetMaxIntSets(n int) error {
	if n < 1 || n > cgo.MaxHandle {
		return errors.Errorf("max integer sets must be in [1, %d], got %d", cgo.MaxHandle, n)
	}
	atomic.StoreInt64(&maxIntSets, int64(n))
	return nil
}

// MaxIntSets returns the current cap set by SetMaxIntSets.
func MaxIntSets() int {
	return int(atomic.LoadInt64(&maxIntSets))
}

// LiveIntSets returns the number of integer sets not yet freed.
func LiveIntSets() int {
	return int(atomic.LoadInt64(&liveIntSets))
}

// NewIntSetHandle creates an empty IntSet and returns the handle to pass
// to C. The returned error wraps ErrTooManySets when the cap or the
// handle table is exhausted.
func NewIntSetHandle() (cgo.Handle, error) {
	limit := atomic.LoadInt64(&maxIntSets)
	if atomic.AddInt64(&liveIntSets, 1) > limit {
		atomic.AddInt64(&liveIntSets, -1)
		return 0, errors.Wrapf(ErrTooManySets, "limit of %d reached", limit)
	}
	h, ok := cgo.TryNewHandle(NewIntSet())
	if !ok {
		atomic.AddInt64(&liveIntSets, -1)
		return 0, errors.Wrapf(ErrTooManySets, "handle table exhausted, %d handles live", cgo.Live())
	}
	return h, nil
}

// IntSetValue returns the IntSet behind h. It panics if h is not a live
// integer set handle.
func IntSetValue(h cgo.Handle) *IntSet {
	s, ok := h.Value().(*IntSet)
	if !ok {
		panic(errors.Errorf("ffi-sdk-go/ffi: handle %d is not an integer set", h))
	}
	return s
}

// FreeIntSetHandle releases the IntSet behind h and invalidates h.
// It panics if h is not a live integer set handle.
func FreeIntSetHandle(h cgo.Handle) {
	IntSetValue(h).Clear()
	h.Delete()
	atomic.AddInt64(&liveIntSets, -1)
}
