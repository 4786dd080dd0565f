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

// This package exports a C function ffi_configure() which validates a
// JSON configuration document and applies it to the library. See the
// config package for the accepted document.
package configure

/*
#include <stdbool.h>
*/
import "C"
import (
	"unsafe"

	"github.com/ffikit/ffi-sdk-go/pkg/config"
	"github.com/ffikit/ffi-sdk-go/pkg/ffi"
	"github.com/ffikit/ffi-sdk-go/pkg/log"
	"github.com/ffikit/ffi-sdk-go/pkg/ptr"
)

// Configure validates doc and applies it. An empty doc restores the
// default configuration. On error nothing is applied.
func Configure(doc string) error {
	cfg, err := config.Parse(doc)
	if err != nil {
		return err
	}
	if err := cfg.Apply(); err != nil {
		return err
	}
	// validated by Apply, cannot fail
	if err := ffi.SetMaxIntSets(cfg.MaxIntSets); err != nil {
		return err
	}
	l := log.Default()
	l.Debug().Str("config", cfg.JSON()).Msg("library configured")
	return nil
}

// ffi_configure returns false if cfg is not a valid configuration. A NULL
// cfg is the same as an empty document.
//
//export ffi_configure
func ffi_configure(cfg *C.char) C.bool {
	if err := Configure(ptr.GoString(unsafe.Pointer(cfg))); err != nil {
		ffi.Fail("ffi_configure", err)
		return false
	}
	ffi.SetLastError(nil)
	return true
}
