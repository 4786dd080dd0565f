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

// Package ptr contains helpers to move strings across the C boundary
// without unnecessary copies.
package ptr

/*
#include <stdlib.h>
#include <string.h>
*/
import "C"
import (
	"unsafe"
)

const cStringNullTerminator = byte(0)

// GoString returns a Go string view of the NUL-terminated C string
// pointed by charPtr. No copy is made: the returned string shares memory
// with the C buffer and is only valid as long as the buffer is alive and
// unmodified. Returns an empty string if charPtr is nil.
func GoString(charPtr unsafe.Pointer) string {
	if charPtr == nil {
		return ""
	}
	n := int(C.strlen((*C.char)(charPtr)))
	if n == 0 {
		return ""
	}
	return unsafe.String((*byte)(charPtr), n)
}

// StringBuffer is a reusable C-allocated buffer holding a NUL-terminated
// string. The pointer returned by CharPtr can be handed to C code as
// borrowed text: it stays valid until the next Write or Free.
//
// The zero value is an empty buffer ready to use. The memory is out of
// the scope of garbage collection and must be released with Free.
type StringBuffer struct {
	cPtr *C.char
	cap  int
}

// Write copies str into the buffer, growing it if needed.
func (s *StringBuffer) Write(str string) {
	if s.cPtr == nil || len(str) >= s.cap {
		if s.cPtr != nil {
			C.free(unsafe.Pointer(s.cPtr))
		}
		s.cap = len(str) + 1
		s.cPtr = (*C.char)(C.malloc(C.size_t(s.cap)))
	}
	buf := unsafe.Slice((*byte)(unsafe.Pointer(s.cPtr)), s.cap)
	copy(buf, str)
	buf[len(str)] = cStringNullTerminator
}

// String returns a Go string view of the buffer content.
func (s *StringBuffer) String() string {
	if s.cPtr == nil {
		return ""
	}
	return GoString(unsafe.Pointer(s.cPtr))
}

// CharPtr returns the underlying C pointer, or nil if nothing
// has been written yet.
func (s *StringBuffer) CharPtr() unsafe.Pointer {
	return unsafe.Pointer(s.cPtr)
}

// Free releases the C memory. The buffer can be written again afterwards.
func (s *StringBuffer) Free() {
	if s.cPtr != nil {
		C.free(unsafe.Pointer(s.cPtr))
		s.cPtr = nil
		s.cap = 0
	}
}

// Free releases C memory allocated with malloc, such as the strings
// returned by C.CString. A nil p is ignored.
func Free(p unsafe.Pointer) {
	C.free(p)
}

// CString returns a malloc'd NUL-terminated copy of s. The memory is
// owned by the caller and must be released with Free.
func CString(s string) unsafe.Pointer {
	return unsafe.Pointer(C.CString(s))
}
