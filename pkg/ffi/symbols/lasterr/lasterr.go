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

// This package exports a C function ffi_get_last_error() which returns
// the reason of the last failed call as borrowed text. The text is empty
// if the last call succeeded, and stays valid until the next call of
// ffi_get_last_error.
//
// In almost all cases, a library should import this package.
package lasterr

/*
#include <stdlib.h>
*/
import "C"
import (
	"github.com/ffikit/ffi-sdk-go/pkg/ffi"
)

//export ffi_get_last_error
func ffi_get_last_error() *C.char {
	return (*C.char)(ffi.LastErrorCharPtr())
}
