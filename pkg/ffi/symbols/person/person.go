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

// This package exports the C functions managing Person records:
// create_person, free_person, serialize_person and deserialize_person.
//
// Records returned by create_person and deserialize_person are owned by
// the caller and must be released with free_person. Text returned by
// serialize_person is owned by the caller and must be released with
// free_string (see the free package).
package person

/*
#cgo CFLAGS: -I${SRCDIR}/../..
#include "ffi_types.h"
*/
import "C"
import (
	"unsafe"

	"github.com/pkg/errors"

	"github.com/ffikit/ffi-sdk-go/pkg/ffi"
	"github.com/ffikit/ffi-sdk-go/pkg/ptr"
)

// create_person returns a new record holding id and a copy of name, or
// NULL if name is NULL or not valid UTF-8.
//
//export create_person
func create_person(id C.int, name *C.char) *C.Person {
	if name == nil {
		ffi.Fail("create_person", ffi.ErrNullName)
		return nil
	}
	p, err := ffi.NewPerson(int32(id), ptr.GoString(unsafe.Pointer(name)))
	if err != nil {
		ffi.Fail("create_person", err)
		return nil
	}
	rec, err := ffi.NewCPerson(p)
	if err != nil {
		ffi.Fail("create_person", err)
		return nil
	}
	ffi.SetLastError(nil)
	return (*C.Person)(rec)
}

//export free_person
func free_person(person *C.Person) {
	ffi.FreeCPerson(unsafe.Pointer(person))
}

// serialize_person returns the canonical JSON text of person, or NULL if
// person is NULL.
//
//export serialize_person
func serialize_person(person *C.Person) *C.char {
	if person == nil {
		ffi.Fail("serialize_person", errors.Wrap(ffi.ErrNullArgument, "serialize_person"))
		return nil
	}
	text, err := ffi.CPersonValue(unsafe.Pointer(person)).Serialize()
	if err != nil {
		ffi.Fail("serialize_person", err)
		return nil
	}
	ffi.SetLastError(nil)
	return (*C.char)(ptr.CString(text))
}

// deserialize_person returns a new record decoded from a text produced by
// serialize_person, or NULL if text is NULL or malformed.
//
//export deserialize_person
func deserialize_person(text *C.char) *C.Person {
	if text == nil {
		ffi.Fail("deserialize_person", errors.Wrap(ffi.ErrNullArgument, "deserialize_person"))
		return nil
	}
	p, err := ffi.ParsePerson(ptr.GoString(unsafe.Pointer(text)))
	if err != nil {
		ffi.Fail("deserialize_person", err)
		return nil
	}
	rec, err := ffi.NewCPerson(p)
	if err != nil {
		ffi.Fail("deserialize_person", err)
		return nil
	}
	ffi.SetLastError(nil)
	return (*C.Person)(rec)
}
