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

// This package exports the C functions returning static library
// information. Every returned string is borrowed: the same pointer is
// returned on each call and it must not be freed.
package info

/*
#include <stdlib.h>
*/
import "C"
import (
	"github.com/ffikit/ffi-sdk-go/pkg/ffi"
	"github.com/ffikit/ffi-sdk-go/pkg/ptr"
)

// allocated once, never released
var (
	pHelloWorld = (*C.char)(ptr.CString(ffi.HelloWorld))
	pName       = (*C.char)(ptr.CString(ffi.Name))
	pVersion    = (*C.char)(ptr.CString(ffi.Version))
)

//export get_helloWorld
func get_helloWorld() *C.char {
	return pHelloWorld
}

//export ffi_get_name
func ffi_get_name() *C.char {
	return pName
}

//export ffi_get_version
func ffi_get_version() *C.char {
	return pVersion
}
