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
	"github.com/RoaringBitmap/roaring/v2/roaring64"
)

// IntSet is a set of distinct machine-word integers, backed by a
// compressed roaring bitmap. The zero value is not usable, use NewIntSet.
//
// IntSet is not safe for concurrent use.
type IntSet struct {
	bm *roaring64.Bitmap
}

// NewIntSet returns an empty set.
func NewIntSet() *IntSet {
	return &IntSet{bm: roaring64.New()}
}

// Insert adds v to the set and reports whether it was absent.
func (s *IntSet) Insert(v uint64) bool {
	return s.bm.CheckedAdd(v)
}

// Remove deletes v from the set and reports whether it was present.
func (s *IntSet) Remove(v uint64) bool {
	return s.bm.CheckedRemove(v)
}

// Contains reports whether v is in the set.
func (s *IntSet) Contains(v uint64) bool {
	return s.bm.Contains(v)
}

// Len returns the number of members.
func (s *IntSet) Len() uint64 {
	return s.bm.GetCardinality()
}

// Clear removes every member.
func (s *IntSet) Clear() {
	s.bm.Clear()
}
