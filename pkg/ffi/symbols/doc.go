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

// Package symbols provides prebuilt implementations for all the C symbols
// of the ffikit ABI.
//
// The C symbol set is divided in different sub-packages to allow library
// builders to import only the ones they need. Importing one of the
// sub-packages automatically includes its prebuilt symbols in the shared
// library. If one of the prebuilt symbols is imported it would not be
// possible to re-define it in the main package, as this would lead to a
// linking failure due to multiple definitions of the same symbol.
//
// The mapping between the prebuilt C exported symbols and their
// sub-package is designed as follows:
//  - numeric:   string_to_uint32, string_to_int32, add
//  - info:      get_helloWorld, ffi_get_name, ffi_get_version
//  - person:    create_person, free_person, serialize_person,
//               deserialize_person
//  - intset:    int_set_new, int_set_insert, int_set_remove,
//               int_set_contain, int_set_len, int_set_free
//  - free:      free_string
//  - lasterr:   ffi_get_last_error
//  - configure: ffi_configure
//
// There are no horizontal dependencies between the sub-packages. Each
// sub-package only depends on the definitions of the base-level ffi
// package, and occasionally uses constructs from the ptr, cgo, config and
// log packages.
//
// Unless stated otherwise, a symbol that reports failure (false, NULL or
// a zero handle) records the reason, available through
// ffi_get_last_error, and a symbol that succeeds clears it.
package symbols
