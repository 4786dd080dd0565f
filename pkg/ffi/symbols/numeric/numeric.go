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

// This package exports the numeric C functions string_to_uint32,
// string_to_int32 and add.
package numeric

/*
#include <stdbool.h>
#include <stdint.h>
*/
import "C"
import (
	"unsafe"

	"github.com/pkg/errors"

	"github.com/ffikit/ffi-sdk-go/pkg/ffi"
	"github.com/ffikit/ffi-sdk-go/pkg/ptr"
)

// string_to_uint32 parses str as a decimal uint32 and stores it in
// *number. On failure *number is left untouched and false is returned.
//
//export string_to_uint32
func string_to_uint32(str *C.char, number *C.uint32_t) C.bool {
	if str == nil || number == nil {
		ffi.Fail("string_to_uint32", errors.Wrap(ffi.ErrNullArgument, "string_to_uint32"))
		return false
	}
	v, err := ffi.ParseUint32(ptr.GoString(unsafe.Pointer(str)))
	if err != nil {
		ffi.Fail("string_to_uint32", err)
		return false
	}
	*number = C.uint32_t(v)
	ffi.SetLastError(nil)
	return true
}

// string_to_int32 parses str as a decimal int32 and stores it in
// *number. On failure *number is left untouched and false is returned.
//
//export string_to_int32
func string_to_int32(str *C.char, number *C.int32_t) C.bool {
	if str == nil || number == nil {
		ffi.Fail("string_to_int32", errors.Wrap(ffi.ErrNullArgument, "string_to_int32"))
		return false
	}
	v, err := ffi.ParseInt32(ptr.GoString(unsafe.Pointer(str)))
	if err != nil {
		ffi.Fail("string_to_int32", err)
		return false
	}
	*number = C.int32_t(v)
	ffi.SetLastError(nil)
	return true
}

//export add
func add(a, b C.int32_t) C.int32_t {
	return C.int32_t(ffi.Add(int32(a), int32(b)))
}
