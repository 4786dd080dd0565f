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

const (
	// Name is the library name returned by ffi_get_name.
	Name = "ffikit"

	// Version is the library version returned by ffi_get_version.
	Version = "0.1.0"

	// HelloWorld is the static greeting returned by get_helloWorld.
	HelloWorld = "hello world"
)
