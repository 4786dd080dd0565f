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

// This package exports a C function free_string() which releases the
// owned text returned by the library, such as the result of
// serialize_person.
//
// In almost all cases, a library should import this package. The *only*
// case where it should not is when it exports its own free_string, paired
// with its own allocator.
package free

/*
#include <stdlib.h>
*/
import "C"
import (
	"unsafe"

	"github.com/ffikit/ffi-sdk-go/pkg/ptr"
)

//export free_string
func free_string(str *C.char) {
	ptr.Free(unsafe.Pointer(str))
}
