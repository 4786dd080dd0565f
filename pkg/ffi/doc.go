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

// Package ffi provides the Go side of the ffikit C ABI: the values that
// live behind the exported symbols and the conversions between their Go
// and C representations.
//
// The exported C symbols themselves are defined in the sub-packages of
// ffi/symbols. A shared library is obtained by importing the desired
// symbol packages from a main package and building it with
// -buildmode=c-shared (see examples/clib).
//
// Memory-ownership contract at the boundary:
//   - Values returned as "owned" must be released by the caller with the
//     matching free function (free_person, int_set_free, free_string).
//   - Values returned as "borrowed" are owned by the library and must not
//     be released.
//   - Handles and records are not safe for concurrent mutation. Callers
//     sharing one across threads must synchronize externally.
package ffi
