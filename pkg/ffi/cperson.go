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

/*
#include <stdlib.h>
#include "ffi_types.h"
*/
import "C"
import (
	"unsafe"
)

// NewCPerson allocates a C Person record holding a copy of p. Both the
// record and its name buffer are C memory, out of the scope of garbage
// collection, and must be released with FreeCPerson.
func NewCPerson(p Person) (unsafe.Pointer, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	rec := (*C.Person)(C.malloc(C.sizeof_Person))
	rec.id = C.int(p.ID)
	rec.name = C.CString(p.Name)
	return unsafe.Pointer(rec), nil
}

// CPersonValue copies the C Person record pointed by ptr into a Go value.
// ptr must point to a live record.
func CPersonValue(ptr unsafe.Pointer) Person {
	rec := (*C.Person)(ptr)
	return Person{
		ID:   int32(rec.id),
		Name: C.GoString(rec.name),
	}
}

// FreeCPerson releases a record allocated by NewCPerson. A nil ptr is
// ignored. ptr must not be used afterwards.
func FreeCPerson(ptr unsafe.Pointer) {
	if ptr == nil {
		return
	}
	rec := (*C.Person)(ptr)
	C.free(unsafe.Pointer(rec.name))
	rec.name = nil
	C.free(ptr)
}
